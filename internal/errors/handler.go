package errors

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// ErrorHandler provides centralized error handling
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger.With(slog.String("component", "error_handler")),
	}
}

// HandleError logs err with request context and renders {"error": message}.
// Errors that are not an *APIError become a generic 500.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	apiErr := h.toAPIError(err)

	attrs := []slog.Attr{
		slog.String("error", err.Error()),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", apiErr.StatusCode),
		slog.String("error_code", apiErr.ErrorCode),
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		attrs = append(attrs, slog.String("error_type", string(appErr.Type)))
	}

	level := slog.LevelError
	switch {
	case errors.Is(err, context.Canceled):
		level = slog.LevelWarn
	case apiErr.StatusCode < http.StatusInternalServerError:
		level = slog.LevelWarn
	}
	h.logger.LogAttrs(r.Context(), level, "request failed", attrs...)

	render.Render(w, r, apiErr)
}

func (h *ErrorHandler) toAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Wrap(ErrInternalServer.StatusCode, ErrInternalServer.ErrorCode, ErrInternalServer.Message, err)
}

// NotFound returns a standard 404 error
func (h *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	render.Render(w, r, New(ErrNotFound.StatusCode, ErrNotFound.ErrorCode, ErrNotFound.Message))
}

// MethodNotAllowed returns a standard 405 error
func (h *ErrorHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	render.Render(w, r, New(ErrMethodNotAllowed.StatusCode, ErrMethodNotAllowed.ErrorCode, ErrMethodNotAllowed.Message))
}
