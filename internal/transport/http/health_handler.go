package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// HealthHandler handles health-related HTTP requests
type HealthHandler struct {
	service HealthServiceInterface
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service HealthServiceInterface, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "health")),
	}
}

// RegisterRoutes adds the banner and probe routes to r
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Root)
	r.Get("/health", h.LivenessCheck)
	r.Get("/health/ready", h.ReadinessCheck)
	r.Get("/version", h.Version)
}

var endpoints = []string{
	"GET /health",
	"GET /health/ready",
	"GET /bookings/summary?period=today|this_week|this_month",
	"GET /bookings?cluster=&status=&period=",
	"GET /bookings/export?cluster=&status=&period=&format=csv|xlsx",
	"GET /revenue/summary?period=",
	"GET /revenue/stats?period=",
	"GET /loan-status",
	"GET /demand/details?cluster=",
	"GET /customer?mobile=|unit=",
	"GET /version",
	"GET /metrics",
}

// Root handles GET / with a plain-text list of endpoints
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	b.WriteString(h.service.LivenessCheck())
	b.WriteString("\n\nEndpoints:\n")
	for _, e := range endpoints {
		fmt.Fprintf(&b, "  %s\n", e)
	}
	render.PlainText(w, r, b.String())
}

// LivenessCheck handles GET /health
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, h.service.LivenessCheck())
}

// ReadinessCheck handles GET /health/ready
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.ReadinessCheck(r.Context())
	if err != nil {
		h.logger.WarnContext(r.Context(), "not ready",
			slog.String("source", status.Source),
			slog.String("error", err.Error()))
		render.Status(r, http.StatusServiceUnavailable)
	}
	render.JSON(w, r, status)
}

// Version handles GET /version
func (h *HealthHandler) Version(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.Version())
}
