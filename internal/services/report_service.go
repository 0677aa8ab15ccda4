package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/montanaflynn/stats"

	"bookingdesk/internal/dataset"
	apperrors "bookingdesk/internal/errors"
	"bookingdesk/internal/exporter"
	"bookingdesk/pkg/contracts/domain"
)

// DatasetLoader supplies a freshly read dataset on every call.
type DatasetLoader interface {
	Load(ctx context.Context) (*dataset.Dataset, error)
	SourceName() string
}

// ReportService computes the booking, revenue, loan, demand and customer
// views over the sheet.
type ReportService struct {
	loader   DatasetLoader
	logger   *slog.Logger
	validate *validator.Validate
	location *time.Location
	now      func() time.Time
}

// Option configures a ReportService.
type Option func(*ReportService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *ReportService) {
		s.now = now
	}
}

// WithLocation sets the zone period windows and sheet dates are read in.
func WithLocation(loc *time.Location) Option {
	return func(s *ReportService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// NewReportService creates a report service.
func NewReportService(loader DatasetLoader, logger *slog.Logger, opts ...Option) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &ReportService{
		loader:   loader,
		logger:   logger.With(slog.String("component", "report_service")),
		validate: validator.New(),
		location: time.Local,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ReportService) clock() time.Time {
	return s.now().In(s.location)
}

func (s *ReportService) load(ctx context.Context, view string) (*dataset.Dataset, error) {
	ds, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", view, err)
	}
	return ds, nil
}

// summaryPeriod defaults an absent period to this_month.
func summaryPeriod(raw string) dataset.Period {
	if strings.TrimSpace(raw) == "" {
		return dataset.PeriodThisMonth
	}
	return dataset.ParsePeriod(raw)
}

// BookingsSummary counts bookings in the period, sold and unsold, and per
// cluster.
func (s *ReportService) BookingsSummary(ctx context.Context, period string) (*domain.BookingsSummary, error) {
	p := summaryPeriod(period)
	ds, err := s.load(ctx, "bookings summary")
	if err != nil {
		return nil, err
	}

	filtered := ds.FilterPeriod(p, dataset.FieldBookingDate, s.clock())
	summary := &domain.BookingsSummary{
		Period:        p.String(),
		TotalBookings: filtered.Len(),
		Sold:          filtered.CountEqual(dataset.FieldStatus, "sold"),
		Unsold:        filtered.CountEqual(dataset.FieldStatus, "unsold"),
		ByCluster:     filtered.GroupCount(dataset.FieldCluster),
	}

	s.logger.DebugContext(ctx, "bookings summary computed",
		slog.String("period", summary.Period),
		slog.Int("rows", ds.Len()),
		slog.Int("total_bookings", summary.TotalBookings))
	return summary, nil
}

func (s *ReportService) filterBookings(ds *dataset.Dataset, q domain.BookingQuery) *dataset.Dataset {
	var preds []dataset.Predicate
	if c := strings.TrimSpace(q.Cluster); c != "" {
		preds = append(preds, dataset.ClusterEquals(c))
	}
	if st := strings.TrimSpace(q.Status); st != "" {
		preds = append(preds, dataset.StatusContains(st))
	}
	out := ds.Where(preds...)
	if strings.TrimSpace(q.Period) != "" {
		out = out.FilterPeriod(dataset.ParsePeriod(q.Period), dataset.FieldBookingDate, s.clock())
	}
	return out
}

// ListBookings returns the raw rows matching the query.
func (s *ReportService) ListBookings(ctx context.Context, q domain.BookingQuery) (*domain.BookingList, error) {
	ds, err := s.load(ctx, "bookings")
	if err != nil {
		return nil, err
	}

	filtered := s.filterBookings(ds, q)
	return &domain.BookingList{
		Count:    filtered.Len(),
		Bookings: filtered.Rows(),
	}, nil
}

// ExportBookings writes the rows matching the query to w in the given
// format, keeping every sheet column in sheet order.
func (s *ReportService) ExportBookings(ctx context.Context, q domain.BookingQuery, format string, w io.Writer) error {
	f, err := exporter.ParseFormat(format)
	if err != nil {
		return apperrors.NewAppValidationError(err.Error(), ErrUnsupportedFormat)
	}

	ds, err := s.load(ctx, "bookings export")
	if err != nil {
		return err
	}

	table := exporter.FromDataset(s.filterBookings(ds, q))
	if err := exporter.Write(w, f, table); err != nil {
		return fmt.Errorf("bookings export: %w", err)
	}

	s.logger.InfoContext(ctx, "bookings exported",
		slog.String("format", string(f)),
		slog.Int("rows", len(table.Rows)))
	return nil
}

// SaveBookings writes the filtered bookings to path. The format is taken
// from format, or from the file extension when format is empty.
func (s *ReportService) SaveBookings(ctx context.Context, q domain.BookingQuery, path, format string) (int, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	f, err := exporter.ParseFormat(format)
	if err != nil {
		return 0, apperrors.NewAppValidationError(err.Error(), ErrUnsupportedFormat)
	}

	ds, err := s.load(ctx, "bookings snapshot")
	if err != nil {
		return 0, err
	}

	table := exporter.FromDataset(s.filterBookings(ds, q))
	if err := exporter.WriteFile(path, f, table); err != nil {
		return 0, fmt.Errorf("bookings snapshot: %w", err)
	}
	return len(table.Rows), nil
}

// RevenueSummary totals the monetary columns over the period.
func (s *ReportService) RevenueSummary(ctx context.Context, period string) (*domain.RevenueSummary, error) {
	p := summaryPeriod(period)
	ds, err := s.load(ctx, "revenue summary")
	if err != nil {
		return nil, err
	}

	filtered := ds.FilterPeriod(p, dataset.FieldBookingDate, s.clock())
	return &domain.RevenueSummary{
		Period:                        p.String(),
		TotalRecords:                  filtered.Len(),
		TotalSalePrice:                filtered.Sum(dataset.FieldSalePrice),
		TotalGrossSaleValueWithoutGST: filtered.Sum(dataset.FieldGrossSaleValue),
		TotalGrossAmountReceived:      filtered.Sum(dataset.FieldGrossAmountReceived),
		TotalPendingDemand:            filtered.Sum(dataset.FieldPendingDemand),
		TotalReceivables:              filtered.Sum(dataset.FieldReceivables),
	}, nil
}

// RevenueStats describes the sale price distribution over the period.
func (s *ReportService) RevenueStats(ctx context.Context, period string) (*domain.RevenueStats, error) {
	p := summaryPeriod(period)
	ds, err := s.load(ctx, "revenue stats")
	if err != nil {
		return nil, err
	}

	prices := stats.Float64Data(ds.FilterPeriod(p, dataset.FieldBookingDate, s.clock()).Numbers(dataset.FieldSalePrice))
	result := &domain.RevenueStats{Period: p.String(), Count: prices.Len()}
	if prices.Len() == 0 {
		return result, nil
	}

	if result.Sum, err = prices.Sum(); err != nil {
		return nil, fmt.Errorf("revenue stats: %w", err)
	}
	if result.Mean, err = prices.Mean(); err != nil {
		return nil, fmt.Errorf("revenue stats: %w", err)
	}
	if result.Median, err = prices.Median(); err != nil {
		return nil, fmt.Errorf("revenue stats: %w", err)
	}
	if result.Min, err = prices.Min(); err != nil {
		return nil, fmt.Errorf("revenue stats: %w", err)
	}
	if result.Max, err = prices.Max(); err != nil {
		return nil, fmt.Errorf("revenue stats: %w", err)
	}
	if result.StdDev, err = prices.StandardDeviationPopulation(); err != nil {
		return nil, fmt.Errorf("revenue stats: %w", err)
	}
	return result, nil
}

// LoanStatus tallies financiers and loan states over every row.
func (s *ReportService) LoanStatus(ctx context.Context) (*domain.LoanStatus, error) {
	ds, err := s.load(ctx, "loan status")
	if err != nil {
		return nil, err
	}
	return &domain.LoanStatus{
		TotalRecords: ds.Len(),
		FinancedBy:   ds.GroupCount(dataset.FieldFinancedBy),
		LoanStatus:   ds.GroupCount(dataset.FieldLoanStatus),
	}, nil
}

// DemandDetails projects the demand columns of every row, optionally for a
// single cluster.
func (s *ReportService) DemandDetails(ctx context.Context, cluster string) (*domain.DemandDetails, error) {
	ds, err := s.load(ctx, "demand details")
	if err != nil {
		return nil, err
	}
	if c := strings.TrimSpace(cluster); c != "" {
		ds = ds.Where(dataset.ClusterEquals(c))
	}

	entries := make([]domain.DemandEntry, 0, ds.Len())
	for _, r := range ds.Records {
		entries = append(entries, domain.DemandEntry{
			Cluster:             r.Get(dataset.FieldCluster),
			UnitNo:              r.Get(dataset.FieldUnitNo),
			CustomerName:        r.Get(dataset.FieldCustomerName),
			BookingDate:         r.Get(dataset.FieldBookingDate),
			SaleAgreementStatus: r.Get(dataset.FieldSaleAgreementStatus),
			DemandPercent:       r.Get(dataset.FieldDemandPercent),
			DemandValue:         r.Number(dataset.FieldDemandValue),
			PendingDemand:       r.Number(dataset.FieldPendingDemand),
			Receivables:         r.Number(dataset.FieldReceivables),
		})
	}
	return &domain.DemandDetails{Count: len(entries), Entries: entries}, nil
}

// FindCustomers returns the rows matching a mobile number and/or a unit
// number. The query is validated before the sheet is read.
func (s *ReportService) FindCustomers(ctx context.Context, q domain.CustomerQuery) (*domain.CustomerList, error) {
	q.Mobile = strings.TrimSpace(q.Mobile)
	q.Unit = strings.TrimSpace(q.Unit)
	if err := s.validate.StructCtx(ctx, q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, apperrors.NewAppValidationError(ErrMissingLookupKey.Error(), ErrMissingLookupKey)
		}
		return nil, fmt.Errorf("customer lookup: %w", err)
	}

	ds, err := s.load(ctx, "customer lookup")
	if err != nil {
		return nil, err
	}

	var preds []dataset.Predicate
	if q.Mobile != "" {
		preds = append(preds, dataset.MobileContains(q.Mobile))
	}
	if q.Unit != "" {
		preds = append(preds, dataset.UnitEquals(q.Unit))
	}
	matched := ds.Where(preds...)

	s.logger.DebugContext(ctx, "customer lookup",
		slog.Bool("by_mobile", q.Mobile != ""),
		slog.Bool("by_unit", q.Unit != ""),
		slog.Int("matches", matched.Len()))
	return &domain.CustomerList{
		Count:     matched.Len(),
		Customers: matched.Rows(),
	}, nil
}
