package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"bookingdesk/internal/config"
	apperrors "bookingdesk/internal/errors"
	"bookingdesk/internal/infrastructure"
	customMiddleware "bookingdesk/internal/middleware"
	"bookingdesk/internal/services"
	"bookingdesk/internal/sheets"
	handlers "bookingdesk/internal/transport/http"
	"bookingdesk/pkg/contracts"
)

// Application represents the main application container
type Application struct {
	Config        *config.Config
	Router        *chi.Mux
	Server        *http.Server
	Logger        *slog.Logger
	OTelProviders *infrastructure.OTelProviders

	Reports *services.ReportService
	Health  *services.HealthService
}

// New wires the sheet source, services and HTTP router. ctx must live as
// long as the application; the Google client refreshes tokens with it.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Application, error) {
	providers, err := infrastructure.InitializeOTel(
		infrastructure.NewOTelConfig(cfg.Telemetry, cfg.App.Environment), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	app := &Application{
		Config:        cfg,
		Logger:        logger,
		OTelProviders: providers,
	}

	metrics, err := infrastructure.CreateBusinessMetrics(providers.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}

	loader, err := app.newLoader(ctx, metrics)
	if err != nil {
		return nil, err
	}

	loc, err := cfg.App.Location()
	if err != nil {
		return nil, apperrors.NewConfigError("invalid timezone", err)
	}

	app.Reports = services.NewReportService(loader, logger, services.WithLocation(loc))
	app.Health = services.NewHealthService(loader, contracts.Version, logger)

	app.setupRouter(metrics)
	app.createServer()

	logger.InfoContext(ctx, "Application initialized",
		slog.String("name", config.AppName),
		slog.String("version", contracts.Version),
		slog.String("source", loader.SourceName()),
		slog.String("timezone", loc.String()))

	return app, nil
}

// newLoader builds the configured sheet source behind tracing and metrics.
func (a *Application) newLoader(ctx context.Context, metrics *infrastructure.BusinessMetrics) (*sheets.Loader, error) {
	cfg := a.Config.Sheets

	var src sheets.Source
	switch cfg.Source {
	case config.SourceXLSX:
		src = sheets.NewXLSXSource(cfg.XLSXPath, cfg.Tab)
	default:
		creds, err := cfg.Credentials()
		if err != nil {
			return nil, err
		}
		google, err := sheets.NewGoogleSource(ctx, sheets.GoogleConfig{
			SpreadsheetID: cfg.SpreadsheetID,
			Tab:           cfg.Tab,
			Range:         cfg.Range,
			Credentials:   creds,
		})
		if err != nil {
			return nil, err
		}
		src = google
	}

	catalog, err := a.Config.Catalog()
	if err != nil {
		return nil, apperrors.NewConfigError("invalid column catalog", err)
	}

	instrumented := sheets.NewInstrumentedSource(src, a.OTelProviders.Tracer, metrics, a.Logger)
	return sheets.NewLoader(instrumented, cfg.HeaderRow, catalog), nil
}

// setupRouter configures the HTTP router with all routes.
// Order: RequestID, RealIP, OTel, Logger, Recoverer, headers, CORS, rate limit.
func (a *Application) setupRouter(metrics *infrastructure.BusinessMetrics) {
	r := chi.NewRouter()
	errorHandler := apperrors.NewErrorHandler(a.Logger)

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)
	r.Use(customMiddleware.NewOTelMiddleware(a.OTelProviders.Tracer, metrics, a.Logger).Handler)
	r.Use(customMiddleware.StructuredLogger(a.Logger))
	r.Use(customMiddleware.Recoverer(a.Logger))
	r.Use(customMiddleware.StripSlashes)
	r.Use(customMiddleware.SecurityHeaders)

	if a.Config.Security.EnableCORS {
		r.Use(customMiddleware.CORS(customMiddleware.CORSConfig{
			AllowedOrigins: a.Config.Security.AllowedOrigins,
			Logger:         a.Logger,
		}))
	}

	r.NotFound(errorHandler.NotFound)
	r.MethodNotAllowed(errorHandler.MethodNotAllowed)

	// Metrics scrapes and probes are not rate limited.
	if a.OTelProviders.PrometheusHTTP != nil {
		r.Handle("/metrics", a.OTelProviders.PrometheusHTTP)
	}
	handlers.NewHealthHandler(a.Health, a.Logger).RegisterRoutes(r)

	r.Group(func(r chi.Router) {
		if rl := a.Config.Security.RateLimit; rl.Enabled {
			r.Use(customMiddleware.NewRateLimiter(rl.RPS, rl.Burst, a.Logger).Handler)
		}
		handlers.NewReportHandler(a.Reports, a.Logger, errorHandler).RegisterRoutes(r)
	})

	a.Router = r
}

func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:           fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:        a.Router,
		ReadTimeout:    a.Config.Server.ReadTimeout,
		WriteTimeout:   a.Config.Server.WriteTimeout,
		IdleTimeout:    a.Config.Server.IdleTimeout,
		MaxHeaderBytes: a.Config.Server.MaxHeaderBytes,
	}
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then drains
// in-flight requests within the configured shutdown timeout.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.InfoContext(gctx, "Starting HTTP server",
			slog.String("address", a.Server.Addr),
			slog.String("source", a.Config.Sheets.Source))
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return a.Stop(context.Background())
	})

	return g.Wait()
}

// Stop gracefully stops the application
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down application")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("server shutdown error: %w", err))
	}

	if a.OTelProviders != nil {
		if err := a.OTelProviders.Shutdown(shutdownCtx); err != nil {
			a.Logger.ErrorContext(ctx, "Error shutting down OpenTelemetry", slog.String("error", err.Error()))
		}
	}

	a.Logger.InfoContext(ctx, "Application shutdown complete")
	return errors.Join(errs...)
}
