package sheets

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"bookingdesk/internal/infrastructure"
)

// InstrumentedSource wraps a Source with a span, fetch metrics and logs.
type InstrumentedSource struct {
	next    Source
	tracer  trace.Tracer
	metrics *infrastructure.BusinessMetrics
	logger  *slog.Logger
}

// NewInstrumentedSource decorates next. A nil tracer uses the global
// provider; nil metrics disables recording.
func NewInstrumentedSource(next Source, tracer trace.Tracer, metrics *infrastructure.BusinessMetrics, logger *slog.Logger) *InstrumentedSource {
	if tracer == nil {
		tracer = otel.Tracer(infrastructure.MeterName)
	}
	return &InstrumentedSource{
		next:    next,
		tracer:  tracer,
		metrics: metrics,
		logger:  logger.With(slog.String("component", "sheet_source"), slog.String("source", next.Name())),
	}
}

// Name implements Source.
func (s *InstrumentedSource) Name() string {
	return s.next.Name()
}

// Rows implements Source.
func (s *InstrumentedSource) Rows(ctx context.Context) ([][]string, error) {
	ctx, span := s.tracer.Start(ctx, "sheets.rows",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("sheet.source", s.next.Name())),
	)
	defer span.End()

	start := time.Now()
	rows, err := s.next.Rows(ctx)
	elapsed := time.Since(start)

	infrastructure.RecordSheetFetch(ctx, s.metrics, s.next.Name(), elapsed, len(rows), err)

	if err != nil {
		infrastructure.RecordError(ctx, err)
		s.logger.ErrorContext(ctx, "sheet read failed",
			slog.String("error", err.Error()),
			slog.Duration("duration", elapsed))
		return nil, err
	}

	span.SetAttributes(attribute.Int("sheet.rows", len(rows)))
	s.logger.DebugContext(ctx, "sheet read",
		slog.Int("rows", len(rows)),
		slog.Duration("duration", elapsed))
	return rows, nil
}
