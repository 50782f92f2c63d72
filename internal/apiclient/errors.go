package apiclient

import (
	"errors"
	"fmt"
)

// Error is a failed backend call. Status is zero when no response arrived;
// Message is then empty and callers show their own fallback text.
type Error struct {
	Method  string
	Path    string
	Status  int
	Message string
	Details any
	Cause   error
}

func (e *Error) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Cause)
	case e.Status != 0:
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Message)
	default:
		return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Message)
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// UserMessage returns the text to show for err: the backend's message when the
// call got an error response, else fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
