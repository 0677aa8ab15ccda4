package http

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "bookingdesk/internal/errors"
	"bookingdesk/internal/exporter"
	"bookingdesk/pkg/contracts/domain"
)

// ReportHandler serves the booking, revenue, loan, demand and customer views
type ReportHandler struct {
	service      ReportServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewReportHandler creates a new report handler
func NewReportHandler(service ReportServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ReportHandler {
	return &ReportHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "report_handler")),
		errorHandler: errorHandler,
	}
}

// RegisterRoutes adds the report routes to r
func (h *ReportHandler) RegisterRoutes(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", h.ListBookings)
		r.Get("/summary", h.BookingsSummary)
		r.Get("/export", h.ExportBookings)
	})
	r.Route("/revenue", func(r chi.Router) {
		r.Get("/summary", h.RevenueSummary)
		r.Get("/stats", h.RevenueStats)
	})
	r.Get("/loan-status", h.LoanStatus)
	r.Get("/demand/details", h.DemandDetails)
	r.Get("/customer", h.FindCustomers)
}

// Routes returns the report routes as a standalone router
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

// fail answers a failed view. Rejected input becomes a 400 carrying the
// validation message; anything else becomes a 500 carrying only message.
func (h *ReportHandler) fail(w http.ResponseWriter, r *http.Request, message string, err error) {
	var appErr *apierrors.AppError
	if errors.As(err, &appErr) && appErr.Type == apierrors.ErrTypeValidation {
		h.errorHandler.HandleError(w, r,
			apierrors.Wrap(http.StatusBadRequest, "INVALID_PARAMETER", appErr.Message, err))
		return
	}
	h.errorHandler.HandleError(w, r, apierrors.Internal(message, err))
}

func bookingQuery(r *http.Request) domain.BookingQuery {
	q := r.URL.Query()
	return domain.BookingQuery{
		Cluster: q.Get("cluster"),
		Status:  q.Get("status"),
		Period:  q.Get("period"),
	}
}

// BookingsSummary handles GET /bookings/summary
func (h *ReportHandler) BookingsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.BookingsSummary(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		h.fail(w, r, "Failed to fetch bookings summary", err)
		return
	}
	render.JSON(w, r, summary)
}

// ListBookings handles GET /bookings
func (h *ReportHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListBookings(r.Context(), bookingQuery(r))
	if err != nil {
		h.fail(w, r, "Failed to fetch bookings", err)
		return
	}
	render.JSON(w, r, list)
}

// ExportBookings handles GET /bookings/export. The file is built in memory
// first so a failed load still gets a JSON error instead of a truncated
// download.
func (h *ReportHandler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	format, err := exporter.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.errorHandler.HandleError(w, r,
			apierrors.Wrap(http.StatusBadRequest, "INVALID_PARAMETER", err.Error(), err))
		return
	}

	var buf bytes.Buffer
	if err := h.service.ExportBookings(r.Context(), bookingQuery(r), string(format), &buf); err != nil {
		h.fail(w, r, "Failed to export bookings", err)
		return
	}

	filename := format.Filename("bookings-" + time.Now().Format("20060102"))
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.WarnContext(r.Context(), "export download interrupted",
			slog.String("file", filename),
			slog.String("error", err.Error()))
	}
}

// RevenueSummary handles GET /revenue/summary
func (h *ReportHandler) RevenueSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.RevenueSummary(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		h.fail(w, r, "Failed to fetch revenue summary", err)
		return
	}
	render.JSON(w, r, summary)
}

// RevenueStats handles GET /revenue/stats
func (h *ReportHandler) RevenueStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.RevenueStats(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		h.fail(w, r, "Failed to fetch revenue statistics", err)
		return
	}
	render.JSON(w, r, stats)
}

// LoanStatus handles GET /loan-status
func (h *ReportHandler) LoanStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.LoanStatus(r.Context())
	if err != nil {
		h.fail(w, r, "Failed to fetch loan status", err)
		return
	}
	render.JSON(w, r, status)
}

// DemandDetails handles GET /demand/details
func (h *ReportHandler) DemandDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.DemandDetails(r.Context(), r.URL.Query().Get("cluster"))
	if err != nil {
		h.fail(w, r, "Failed to fetch demand details", err)
		return
	}
	render.JSON(w, r, details)
}

// FindCustomers handles GET /customer
func (h *ReportHandler) FindCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	customers, err := h.service.FindCustomers(r.Context(), domain.CustomerQuery{
		Mobile: q.Get("mobile"),
		Unit:   q.Get("unit"),
	})
	if err != nil {
		h.fail(w, r, "Failed to fetch customer", err)
		return
	}
	render.JSON(w, r, customers)
}
