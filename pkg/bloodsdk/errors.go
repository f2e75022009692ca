package bloodsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrInvalidCredentials is returned when the login step rejects the
	// username/password pair.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidOTP is returned when the verification step rejects the
	// one-time code (wrong or expired).
	ErrInvalidOTP = errors.New("invalid or expired one-time code")

	// ErrUnauthorized is returned when the backend rejects the bearer token.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError represents a non-2xx response from the backend. The Spring
// service replies with plain-text bodies on most errors and occasionally a
// JSON object with a message field; both are folded into Message.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Message is the response body, trimmed
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("backend returned HTTP %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps 401 responses onto ErrUnauthorized so callers can detect a
// rejected bearer with errors.Is instead of inspecting status codes.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// parseErrorResponse converts an error response body into a typed error.
// Returns nil for 2xx status codes.
func parseErrorResponse(statusCode int, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	msg := strings.TrimSpace(string(body))

	// Some endpoints wrap the message in a JSON object.
	var jsonErr struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &jsonErr); err == nil {
		if jsonErr.Message != "" {
			msg = jsonErr.Message
		} else if jsonErr.Error != "" {
			msg = jsonErr.Error
		}
	}

	return &APIError{StatusCode: statusCode, Message: msg}
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}
