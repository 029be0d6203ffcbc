package transport

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Class categorizes transport errors.
type Class int

const (
	// ClassTimeout indicates a request or connection timeout.
	ClassTimeout Class = iota
	// ClassConnection indicates a connection failure (refused, DNS, etc).
	ClassConnection
	// ClassAuth indicates an authentication/authorization failure (401/403).
	ClassAuth
	// ClassNotFound indicates the resource was not found (404).
	ClassNotFound
	// ClassRateLimit indicates rate limiting (429).
	ClassRateLimit
	// ClassValidation indicates a client-side error (other 4xx, bad request construction).
	ClassValidation
	// ClassServer indicates a server-side error (5xx).
	ClassServer
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassTimeout:
		return "timeout"
	case ClassConnection:
		return "connection"
	case ClassAuth:
		return "auth"
	case ClassNotFound:
		return "not_found"
	case ClassRateLimit:
		return "rate_limit"
	case ClassValidation:
		return "validation"
	case ClassServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is a structured transport error. Errors carrying an HTTP status
// (StatusCode > 0) expose the failed response: headers, raw body, and the
// originating request. StatusCode 0 means the exchange never produced a
// status (connection failure, timeout, malformed request).
type Error struct {
	// StatusCode is the HTTP status code (0 for connection-level errors).
	StatusCode int
	// Class categorizes the error.
	Class Class
	// Message describes the error.
	Message string
	// Headers are the response headers, when a response was received.
	Headers map[string]string
	// Body is the raw response body (may be nil).
	Body []byte
	// Request is the request that produced this error.
	Request *Request
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("transport: %s (HTTP %d): %s", e.Class, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("transport: %s: %s", e.Class, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// JSON decodes the error response body into v.
func (e *Error) JSON(v any) error {
	if len(e.Body) == 0 {
		return fmt.Errorf("transport: error response has no body")
	}
	return json.Unmarshal(e.Body, v)
}

// HasStatus reports whether this error carries an HTTP status, i.e. the
// server answered and answered badly, as opposed to the exchange failing
// before a status line was read.
func (e *Error) HasStatus() bool {
	return e.StatusCode > 0
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(req *Request, err error) *Error {
	return &Error{
		Class:   ClassTimeout,
		Message: err.Error(),
		Request: req,
		Err:     err,
	}
}

// NewConnectionError creates a connection error.
func NewConnectionError(req *Request, err error) *Error {
	return &Error{
		Class:   ClassConnection,
		Message: err.Error(),
		Request: req,
		Err:     err,
	}
}

// NewValidationError creates a request-construction error.
func NewValidationError(req *Request, msg string) *Error {
	return &Error{
		Class:   ClassValidation,
		Message: msg,
		Request: req,
	}
}

// ClassifyStatus converts an HTTP status code into a typed error.
// Returns nil for 2xx status codes.
func ClassifyStatus(statusCode int, headers map[string]string, body []byte, req *Request) *Error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	e := &Error{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Headers:    headers,
		Body:       body,
		Request:    req,
	}
	switch {
	case statusCode == 401 || statusCode == 403:
		e.Class = ClassAuth
	case statusCode == 404:
		e.Class = ClassNotFound
	case statusCode == 429:
		e.Class = ClassRateLimit
	case statusCode >= 400 && statusCode < 500:
		e.Class = ClassValidation
	default:
		e.Class = ClassServer
	}
	return e
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Class == ClassTimeout
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Class == ClassConnection
}

// IsAuth checks if an error is an authentication error.
func IsAuth(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Class == ClassAuth
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Class == ClassNotFound
}

// IsRateLimit checks if an error is a rate-limit error.
func IsRateLimit(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Class == ClassRateLimit
}

// IsServerError checks if an error is a server error.
func IsServerError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Class == ClassServer
}

// IsHTTPStatus checks if an error is a transport error carrying an HTTP
// status code, as opposed to a connection-level failure.
func IsHTTPStatus(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.HasStatus()
}
