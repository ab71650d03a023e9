package petkeep

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Reserved error keys the API uses for errors not tied to a form field.
const (
	// NonFieldKey carries validation errors that span multiple fields.
	NonFieldKey = "non_field_errors"
	// DetailKey carries permission and authentication errors.
	DetailKey = "detail"
)

// APIError is an error response from the PetKeep API: a mapping from field
// name (or a reserved non-field key) to one or more human-readable messages.
//
// The server owns the shape; new keys may appear at any time, so the mapping
// is open-ended. APIError values are constructed solely from server
// responses, never by the client.
type APIError struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Fields maps a field name to its messages.
	Fields map[string][]string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("petkeep: HTTP %d", e.StatusCode)
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
	}
	return fmt.Sprintf("petkeep: HTTP %d: %s", e.StatusCode, strings.Join(parts, ", "))
}

// Field returns the messages for a field, or nil if the field has none.
func (e *APIError) Field(name string) []string {
	return e.Fields[name]
}

// NonField returns messages not attributable to a specific field: the
// "detail" message, if any, followed by any "non_field_errors" entries.
func (e *APIError) NonField() []string {
	var msgs []string
	msgs = append(msgs, e.Fields[DetailKey]...)
	msgs = append(msgs, e.Fields[NonFieldKey]...)
	return msgs
}

// IsValidation returns true if the error is a validation error.
func (e *APIError) IsValidation() bool {
	return e.StatusCode == http.StatusBadRequest
}

// IsUnauthorized returns true if the error is an authentication error.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsNotFound returns true if the error is a not found error.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsForbidden returns true if the error is a permission error.
func (e *APIError) IsForbidden() bool {
	return e.StatusCode == http.StatusForbidden
}

// UnmarshalJSON decodes the server's error body. Values may be a single
// string or an array of strings; both normalize to a message slice.
func (e *APIError) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := make(map[string][]string, len(raw))
	for key, val := range raw {
		var many []string
		if err := json.Unmarshal(val, &many); err == nil {
			fields[key] = many
			continue
		}

		var one string
		if err := json.Unmarshal(val, &one); err == nil {
			fields[key] = []string{one}
			continue
		}

		// Unknown value shape; keep the raw JSON as the message.
		fields[key] = []string{string(val)}
	}

	e.Fields = fields
	return nil
}

// parseAPIError parses an error response body from the API. The body is
// surfaced as-is: a field-keyed mapping when the server sent one, otherwise
// the raw body under the detail key.
func parseAPIError(statusCode int, body []byte) error {
	apiErr := &APIError{StatusCode: statusCode}
	if err := json.Unmarshal(body, apiErr); err == nil && len(apiErr.Fields) > 0 {
		return apiErr
	}

	fields := map[string][]string{}
	if s := strings.TrimSpace(string(body)); s != "" {
		fields[DetailKey] = []string{s}
	}
	return &APIError{StatusCode: statusCode, Fields: fields}
}

// IsAPIError checks if an error is an API error and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
