package petkeep

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerUserAgent     = "User-Agent"
	contentTypeJSON     = "application/json"
	// authScheme is the fixed token prefix expected by the API.
	authScheme   = "Token"
	sdkUserAgent = "petkeep-go/1.0.0"
)

// do performs an HTTP request and handles common error cases.
//
// When authed is true the current session token is read from the store and,
// if present, attached as "Authorization: Token <token>". A missing token is
// not an error: the request is dispatched without credentials and the server
// decides whether to reject it.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, authed bool, result interface{}) error {
	// Build URL
	reqURL, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("failed to build URL: %w", err)
	}

	// Handle query params if path contains them
	if strings.Contains(path, "?") {
		reqURL = c.baseURL + path
	}

	// Prepare request body
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	// Create request
	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers
	req.Header.Set(headerContentType, contentTypeJSON)
	req.Header.Set(headerUserAgent, c.userAgent)
	if authed {
		token, err := c.sessions.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to read session token: %w", err)
		}
		if token != "" {
			req.Header.Set(headerAuthorization, authScheme+" "+token)
		}
	}

	// Execute request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// 204 carries no body; don't attempt to parse one.
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	// Read response body
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Non-2xx: the parsed body is the error value.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp.StatusCode, respBody)
	}

	// Parse successful response
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, path string, authed bool, result interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, authed, result)
}

// post performs a POST request.
func (c *Client) post(ctx context.Context, path string, body interface{}, authed bool, result interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, authed, result)
}

// put performs a PUT request.
func (c *Client) put(ctx context.Context, path string, body interface{}, authed bool, result interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, authed, result)
}

// delete performs a DELETE request.
func (c *Client) delete(ctx context.Context, path string, authed bool) error {
	return c.do(ctx, http.MethodDelete, path, nil, authed, nil)
}
