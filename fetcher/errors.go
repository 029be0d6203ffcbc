package fetcher

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kbukum/fetchkit/transport"
)

// ErrorEntry is one entry of the backend error contract.
type ErrorEntry struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

// BackendPayload is the structured error body some backends return:
// an object with a non-empty list of {errorCode, message} entries.
type BackendPayload struct {
	Errors []ErrorEntry `json:"errors"`
}

// BackendError is a composite error: a transport-level HTTP error whose
// response body matched the backend error contract. It carries both the
// original transport error and the parsed payload.
type BackendError struct {
	// Payload is the parsed backend error body.
	Payload BackendPayload
	// Cause is the original transport error.
	Cause *transport.Error

	message string
}

// newBackendError builds the composite error. The message is
// "<errorCode>: <message>" from the first entry, falling back to the
// transport error's message when the entry carries none.
func newBackendError(cause *transport.Error, payload BackendPayload) *BackendError {
	first := payload.Errors[0]
	msg := first.Message
	if msg == "" {
		msg = cause.Message
	}
	return &BackendError{
		Payload: payload,
		Cause:   cause,
		message: fmt.Sprintf("%s: %s", first.ErrorCode, msg),
	}
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	return e.message
}

// Unwrap returns the original transport error.
func (e *BackendError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the HTTP status of the original error.
func (e *BackendError) StatusCode() int {
	return e.Cause.StatusCode
}

// decodeBackendPayload parses body against the backend error contract.
// The second return is false when the body is not JSON, is not an object,
// or carries no error entries.
func decodeBackendPayload(body []byte) (BackendPayload, bool) {
	var payload BackendPayload
	if len(body) == 0 {
		return payload, false
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return BackendPayload{}, false
	}
	if len(payload.Errors) == 0 {
		return BackendPayload{}, false
	}
	return payload, true
}

// IsBackendError checks if an error is a normalized backend error.
func IsBackendError(err error) bool {
	var e *BackendError
	return errors.As(err, &e)
}

// AsBackendError extracts a *BackendError from an error chain.
func AsBackendError(err error) (*BackendError, bool) {
	var e *BackendError
	ok := errors.As(err, &e)
	return e, ok
}
