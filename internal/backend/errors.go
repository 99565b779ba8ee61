package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// GenericErrMsg is shown to the user when the backend response carries no
// extractable message.
const GenericErrMsg = "something went wrong, please try again"

var (
	ErrUnauthorized = errors.New("credential missing or expired")
	ErrNotFound     = errors.New("not found")
)

// APIError is a business-rule rejection from the backend, e.g. a
// transition requested from the wrong status. The message is the server's
// own wording when it could be extracted.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap maps auth failures onto the package sentinels so callers can use
// errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

func newAPIError(statusCode int, message string) *APIError {
	if message == "" {
		message = GenericErrMsg
	}
	return &APIError{StatusCode: statusCode, Message: message}
}

// UserMessage picks the text to surface for a failed request: the server's
// message for a business rejection, the generic fallback for transport and
// decoding failures.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return GenericErrMsg
}

func wrapTransport(op string, err error) error {
	return fmt.Errorf("%s: backend request failed: %w", op, err)
}
