package cli

import (
	"fmt"
	"strings"

	"github.com/jacksonlmp/petkeep"
)

// apiFailure turns an SDK error into a user-facing message. Non-field
// server messages are shown as-is; field errors keep their field names so
// the user knows what to fix.
func apiFailure(prefix string, err error) error {
	apiErr, ok := petkeep.IsAPIError(err)
	if !ok {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	if msgs := apiErr.NonField(); len(msgs) > 0 {
		return fmt.Errorf("%s: %s", prefix, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("%s: %w", prefix, apiErr)
}
