package errors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
)

// APIError is an error that knows how to present itself to an HTTP client.
// Only Message reaches the response body; Cause is kept for logging.
type APIError struct {
	StatusCode int    `json:"-"`
	ErrorCode  string `json:"-"`
	Message    string `json:"error"`
	Cause      error  `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is and errors.As
func (e *APIError) Unwrap() error {
	return e.Cause
}

// Render implements the render.Renderer interface for chi/render
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// New creates a new APIError with the given parameters
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// Wrap creates an APIError that carries cause for the server log while the
// client only sees message.
func Wrap(statusCode int, errorCode, message string, cause error) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Cause:      cause,
	}
}

// Predefined error types for common scenarios
var (
	// 400 Bad Request
	ErrInvalidRequest   = New(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	ErrMissingParameter = New(http.StatusBadRequest, "MISSING_PARAMETER", "Required parameter is missing")
	ErrInvalidParameter = New(http.StatusBadRequest, "INVALID_PARAMETER", "Invalid parameter value")

	// 404 Not Found
	ErrNotFound = New(http.StatusNotFound, "NOT_FOUND", "Resource not found")

	// 405 Method Not Allowed
	ErrMethodNotAllowed = New(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")

	// 429 Too Many Requests
	ErrRateLimitExceeded = New(http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Rate limit exceeded")

	// 500 Internal Server Error
	ErrInternalServer = New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")

	// 503 Service Unavailable
	ErrServiceUnavailable = New(http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Service temporarily unavailable")
)

// Internal reports a failed route with an opaque message. The cause is
// logged by the ErrorHandler and never rendered.
func Internal(message string, cause error) *APIError {
	return Wrap(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message, cause)
}

// BadRequest creates a 400 error with a client-facing message
func BadRequest(message string) *APIError {
	return New(http.StatusBadRequest, "VALIDATION_FAILED", message)
}

// Unavailable creates a 503 error, used when a dependency cannot be reached
func Unavailable(message string, cause error) *APIError {
	return Wrap(http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", message, cause)
}

// WriteError writes an error response without going through chi/render.
// Used where no request context is available for content negotiation.
func WriteError(w http.ResponseWriter, err *APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	json.NewEncoder(w).Encode(err)
}
