package services

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"bookingdesk/pkg/contracts/domain"
)

// Readiness states.
const (
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// HealthService answers liveness and readiness probes.
type HealthService struct {
	loader    DatasetLoader
	version   string
	startTime time.Time
	logger    *slog.Logger
}

// NewHealthService creates a health service reading through loader.
func NewHealthService(loader DatasetLoader, version string, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		loader:    loader,
		version:   version,
		startTime: time.Now(),
		logger:    logger.With(slog.String("component", "health_service")),
	}
}

// LivenessCheck never touches the sheet.
func (hs *HealthService) LivenessCheck() string {
	return "bookingdesk API is running"
}

// ReadinessCheck loads the sheet once and reports what it saw. A failed
// load returns the not-ready body together with the error.
func (hs *HealthService) ReadinessCheck(ctx context.Context) (domain.Readiness, error) {
	status := domain.Readiness{
		Status: StatusNotReady,
		Source: hs.loader.SourceName(),
	}

	ds, err := hs.loader.Load(ctx)
	if err != nil {
		hs.logger.WarnContext(ctx, "readiness check failed",
			slog.String("source", status.Source),
			slog.String("error", err.Error()))
		return status, err
	}

	status.Status = StatusReady
	status.Headers = len(ds.Headers)
	status.Rows = ds.Len()

	hs.logger.DebugContext(ctx, "readiness check completed",
		slog.Int("headers", status.Headers),
		slog.Int("rows", status.Rows))
	return status, nil
}

// Version returns build and runtime information.
func (hs *HealthService) Version() map[string]interface{} {
	return map[string]interface{}{
		"version":    hs.version,
		"go_version": runtime.Version(),
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"uptime":     time.Since(hs.startTime).Seconds(),
		"start_time": hs.startTime.Format(time.RFC3339),
	}
}
