package infrastructure

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookingdesk/internal/config"
)

func TestOTelInitialization(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	providers, err := InitializeOTel(nil, logger)
	require.NoError(t, err)
	require.NotNil(t, providers)

	assert.Nil(t, providers.TracerProvider, "tracing is off by default")
	assert.NotNil(t, providers.Tracer)
	assert.NotNil(t, providers.MeterProvider)
	assert.NotNil(t, providers.Meter)
	assert.NotNil(t, providers.PrometheusHTTP)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, providers.Shutdown(ctx))
}

func TestOTelConfiguration(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name        string
		cfg         config.TelemetryConfig
		wantErr     bool
		wantTracing bool
		wantMetrics bool
	}{
		{"all off", config.TelemetryConfig{TraceExporter: "none", MetricExporter: "none"}, false, false, false},
		{"stdout tracing", config.TelemetryConfig{TraceExporter: "stdout", MetricExporter: "none", SampleRatio: 1}, false, true, false},
		{"prometheus", config.TelemetryConfig{TraceExporter: "none", MetricExporter: "prometheus"}, false, false, true},
		{"bad trace exporter", config.TelemetryConfig{TraceExporter: "jaeger"}, true, false, false},
		{"bad metric exporter", config.TelemetryConfig{MetricExporter: "statsd"}, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers, err := InitializeOTel(NewOTelConfig(tt.cfg, "test"), logger)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer providers.Shutdown(context.Background())

			assert.Equal(t, tt.wantTracing, providers.TracerProvider != nil)
			assert.Equal(t, tt.wantMetrics, providers.PrometheusHTTP != nil)

			_, err = CreateBusinessMetrics(providers.Meter)
			assert.NoError(t, err, "metrics can be created against no-op meters too")
		})
	}
}

func TestPrometheusEndpointExposesSheetMetrics(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	providers, err := InitializeOTel(DefaultOTelConfig(), logger)
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	metrics, err := CreateBusinessMetrics(providers.Meter)
	require.NoError(t, err)

	ctx := context.Background()
	RecordSheetFetch(ctx, metrics, "google", 120*time.Millisecond, 42, nil)
	RecordSheetFetch(ctx, metrics, "google", time.Second, 0, errors.New("quota"))
	RecordSheetFetch(ctx, nil, "google", time.Second, 0, nil)

	rec := httptest.NewRecorder()
	providers.PrometheusHTTP.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, body, "sheet_fetches_total")
	assert.Contains(t, body, "sheet_fetch_errors_total")
	assert.Contains(t, body, "sheet_rows_loaded")
	assert.Contains(t, body, "go_goroutines")
}

func TestTraceCorrelation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	providers, err := InitializeOTel(NewOTelConfig(config.TelemetryConfig{
		TraceExporter:  "stdout",
		MetricExporter: "none",
		SampleRatio:    1,
	}, "test"), logger)
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	assert.Empty(t, TraceIDFromContext(context.Background()))

	ctx, span := providers.Tracer.Start(context.Background(), "load-sheet")
	defer span.End()

	assert.Len(t, TraceIDFromContext(ctx), 32)

	SetSpanAttributes(ctx, map[string]interface{}{"sheet.rows": 10, "sheet.source": "xlsx", "ok": true})
	RecordError(ctx, errors.New("boom"))
}
