package http

import (
	"context"
	"io"

	"bookingdesk/pkg/contracts/domain"
)

// ReportServiceInterface defines the report views served over HTTP
type ReportServiceInterface interface {
	BookingsSummary(ctx context.Context, period string) (*domain.BookingsSummary, error)
	ListBookings(ctx context.Context, q domain.BookingQuery) (*domain.BookingList, error)
	ExportBookings(ctx context.Context, q domain.BookingQuery, format string, w io.Writer) error
	RevenueSummary(ctx context.Context, period string) (*domain.RevenueSummary, error)
	RevenueStats(ctx context.Context, period string) (*domain.RevenueStats, error)
	LoanStatus(ctx context.Context) (*domain.LoanStatus, error)
	DemandDetails(ctx context.Context, cluster string) (*domain.DemandDetails, error)
	FindCustomers(ctx context.Context, q domain.CustomerQuery) (*domain.CustomerList, error)
}

// HealthServiceInterface defines the probes
type HealthServiceInterface interface {
	LivenessCheck() string
	ReadinessCheck(ctx context.Context) (domain.Readiness, error)
	Version() map[string]interface{}
}
