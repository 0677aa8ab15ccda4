package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apierrors "bookingdesk/internal/errors"
	"bookingdesk/internal/services"
	"bookingdesk/internal/shared/testutil"
	"bookingdesk/pkg/contracts/domain"
)

// MockReportService is a mock implementation of ReportServiceInterface
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) BookingsSummary(ctx context.Context, period string) (*domain.BookingsSummary, error) {
	args := m.Called(period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingsSummary), args.Error(1)
}

func (m *MockReportService) ListBookings(ctx context.Context, q domain.BookingQuery) (*domain.BookingList, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingList), args.Error(1)
}

func (m *MockReportService) ExportBookings(ctx context.Context, q domain.BookingQuery, format string, w io.Writer) error {
	args := m.Called(q, format)
	if data, ok := args.Get(0).(string); ok {
		io.WriteString(w, data)
	}
	return args.Error(1)
}

func (m *MockReportService) RevenueSummary(ctx context.Context, period string) (*domain.RevenueSummary, error) {
	args := m.Called(period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueSummary), args.Error(1)
}

func (m *MockReportService) RevenueStats(ctx context.Context, period string) (*domain.RevenueStats, error) {
	args := m.Called(period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueStats), args.Error(1)
}

func (m *MockReportService) LoanStatus(ctx context.Context) (*domain.LoanStatus, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanStatus), args.Error(1)
}

func (m *MockReportService) DemandDetails(ctx context.Context, cluster string) (*domain.DemandDetails, error) {
	args := m.Called(cluster)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DemandDetails), args.Error(1)
}

func (m *MockReportService) FindCustomers(ctx context.Context, q domain.CustomerQuery) (*domain.CustomerList, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerList), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newReportRouter(svc ReportServiceInterface) chi.Router {
	r := chi.NewRouter()
	NewReportHandler(svc, testLogger(), apierrors.NewErrorHandler(testLogger())).RegisterRoutes(r)
	return r
}

func serve(r http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

var errSheet = apierrors.NewSourceError("failed to read sheet range", errors.New("googleapi: Error 403: forbidden"))

func TestReportHandler_JSONViews(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		setup    func(m *MockReportService)
		wantBody string
	}{
		{
			name:   "bookings summary",
			target: "/bookings/summary?period=today",
			setup: func(m *MockReportService) {
				m.On("BookingsSummary", "today").Return(&domain.BookingsSummary{
					Period: "today", TotalBookings: 3, Sold: 1, Unsold: 1,
					ByCluster: []domain.GroupCount{{Label: "Palm", Count: 3}},
				}, nil)
			},
			wantBody: `{"period":"today","total_bookings":3,"sold":1,"unsold":1,"by_cluster":[{"label":"Palm","count":3}]}`,
		},
		{
			name:   "bookings list passes filters",
			target: "/bookings?cluster=Palm&status=sold&period=this_week",
			setup: func(m *MockReportService) {
				m.On("ListBookings", domain.BookingQuery{Cluster: "Palm", Status: "sold", Period: "this_week"}).
					Return(&domain.BookingList{Count: 1, Bookings: []map[string]string{{"Unit No": "A-101"}}}, nil)
			},
			wantBody: `{"count":1,"bookings":[{"Unit No":"A-101"}]}`,
		},
		{
			name:   "revenue summary",
			target: "/revenue/summary",
			setup: func(m *MockReportService) {
				m.On("RevenueSummary", "").Return(&domain.RevenueSummary{
					Period: "this_month", TotalRecords: 2, TotalSalePrice: 9000000,
				}, nil)
			},
			wantBody: `{"period":"this_month","total_records":2,"total_sale_price":9000000,
				"total_gross_sale_value_without_gst":0,"total_gross_amount_received":0,
				"total_pending_demand":0,"total_receivables":0}`,
		},
		{
			name:   "revenue stats",
			target: "/revenue/stats?period=all",
			setup: func(m *MockReportService) {
				m.On("RevenueStats", "all").Return(&domain.RevenueStats{Period: "all", Count: 1, Sum: 5, Mean: 5, Median: 5, Min: 5, Max: 5}, nil)
			},
			wantBody: `{"period":"all","count":1,"sum":5,"mean":5,"median":5,"min":5,"max":5,"std_dev":0}`,
		},
		{
			name:   "loan status",
			target: "/loan-status",
			setup: func(m *MockReportService) {
				m.On("LoanStatus").Return(&domain.LoanStatus{
					TotalRecords: 2,
					FinancedBy:   []domain.GroupCount{{Label: "HDFC", Count: 2}},
					LoanStatus:   []domain.GroupCount{{Label: "Unknown", Count: 2}},
				}, nil)
			},
			wantBody: `{"total_records":2,"financed_by":[{"label":"HDFC","count":2}],"loan_status":[{"label":"Unknown","count":2}]}`,
		},
		{
			name:   "demand details",
			target: "/demand/details?cluster=Oak",
			setup: func(m *MockReportService) {
				m.On("DemandDetails", "Oak").Return(&domain.DemandDetails{Count: 0, Entries: []domain.DemandEntry{}}, nil)
			},
			wantBody: `{"count":0,"entries":[]}`,
		},
		{
			name:   "customer by mobile",
			target: "/customer?mobile=98450",
			setup: func(m *MockReportService) {
				m.On("FindCustomers", domain.CustomerQuery{Mobile: "98450"}).
					Return(&domain.CustomerList{Count: 0, Customers: []map[string]string{}}, nil)
			},
			wantBody: `{"count":0,"customers":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockReportService)
			tt.setup(svc)

			rec := serve(newReportRouter(svc), tt.target)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestReportHandler_LoadFailureIsOpaque500(t *testing.T) {
	tests := []struct {
		target  string
		setup   func(m *MockReportService)
		message string
	}{
		{"/bookings/summary", func(m *MockReportService) { m.On("BookingsSummary", "").Return(nil, errSheet) }, "Failed to fetch bookings summary"},
		{"/bookings", func(m *MockReportService) { m.On("ListBookings", domain.BookingQuery{}).Return(nil, errSheet) }, "Failed to fetch bookings"},
		{"/revenue/summary", func(m *MockReportService) { m.On("RevenueSummary", "").Return(nil, errSheet) }, "Failed to fetch revenue summary"},
		{"/revenue/stats", func(m *MockReportService) { m.On("RevenueStats", "").Return(nil, errSheet) }, "Failed to fetch revenue statistics"},
		{"/loan-status", func(m *MockReportService) { m.On("LoanStatus").Return(nil, errSheet) }, "Failed to fetch loan status"},
		{"/demand/details", func(m *MockReportService) { m.On("DemandDetails", "").Return(nil, errSheet) }, "Failed to fetch demand details"},
		{"/customer?unit=A-1", func(m *MockReportService) {
			m.On("FindCustomers", domain.CustomerQuery{Unit: "A-1"}).Return(nil, errSheet)
		}, "Failed to fetch customer"},
		{"/bookings/export", func(m *MockReportService) {
			m.On("ExportBookings", domain.BookingQuery{}, "csv").Return(nil, errSheet)
		}, "Failed to export bookings"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			svc := new(MockReportService)
			tt.setup(svc)

			rec := serve(newReportRouter(svc), tt.target)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"error":"`+tt.message+`"}`, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "403")
		})
	}
}

func TestReportHandler_FailureLogsCause(t *testing.T) {
	svc := new(MockReportService)
	svc.On("LoanStatus").Return(nil, errSheet)

	logger, logs := testutil.NewLogCapture()
	r := chi.NewRouter()
	NewReportHandler(svc, logger, apierrors.NewErrorHandler(logger)).RegisterRoutes(r)

	rec := serve(r, "/loan-status")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	entry := testutil.AssertLogged(t, logs, slog.LevelError, "request failed")
	assert.Contains(t, entry.Attrs["error"], "403")
	assert.Equal(t, "SOURCE", entry.Attrs["error_type"])
	assert.Equal(t, "/loan-status", entry.Attrs["path"])
}

func TestReportHandler_CustomerWithoutKeyIs400(t *testing.T) {
	svc := new(MockReportService)
	svc.On("FindCustomers", domain.CustomerQuery{}).Return(nil,
		apierrors.NewAppValidationError(services.ErrMissingLookupKey.Error(), services.ErrMissingLookupKey))

	rec := serve(newReportRouter(svc), "/customer")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"mobile or unit query parameter is required"}`, rec.Body.String())
}

func TestReportHandler_Export(t *testing.T) {
	svc := new(MockReportService)
	svc.On("ExportBookings", domain.BookingQuery{Cluster: "Palm"}, "xlsx").Return("workbook-bytes", nil)

	rec := serve(newReportRouter(svc), "/bookings/export?cluster=Palm&format=XLSX")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Regexp(t, `^attachment; filename="bookings-\d{8}\.xlsx"$`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "14", rec.Header().Get("Content-Length"))
	assert.Equal(t, "workbook-bytes", rec.Body.String())
}

func TestReportHandler_ExportBadFormat(t *testing.T) {
	svc := new(MockReportService)

	rec := serve(newReportRouter(svc), "/bookings/export?format=pdf")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"unsupported export format \"pdf\""}`, rec.Body.String())
	svc.AssertNotCalled(t, "ExportBookings", mock.Anything, mock.Anything)
}
