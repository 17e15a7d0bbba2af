package errors

import "fmt"

// HTTPError is an error carrying the HTTP status the delivery layer
// should respond with. Domain errors are mapped into HTTPErrors by each
// delivery package's mapError.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with an explicit status code.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// NewUnauthorizedError covers authentication failures and missing local
// state (no session or no OAuth consent).
func NewUnauthorizedError(message string) *HTTPError {
	return &HTTPError{Status: 401, Message: message}
}

// NewUpstreamError covers non-200 responses from the roster service.
func NewUpstreamError(message string) *HTTPError {
	return &HTTPError{Status: 400, Message: message}
}

// NewBadRequestError covers malformed client input.
func NewBadRequestError(message string) *HTTPError {
	return &HTTPError{Status: 400, Message: message}
}

// NewInternalError covers unexpected failures.
func NewInternalError(message string) *HTTPError {
	return &HTTPError{Status: 500, Message: message}
}

// Newf is a convenience for formatted HTTPErrors.
func Newf(status int, format string, args ...any) *HTTPError {
	return &HTTPError{Status: status, Message: fmt.Sprintf(format, args...)}
}
