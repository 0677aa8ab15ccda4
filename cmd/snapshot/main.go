// Command snapshot reads the bookings sheet once and saves the matching rows
// as a CSV or XLSX file.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"bookingdesk/internal/app"
	"bookingdesk/internal/config"
	"bookingdesk/internal/infrastructure"
	"bookingdesk/pkg/contracts"
	"bookingdesk/pkg/contracts/domain"
)

type snapshotOptions struct {
	out    string
	format string
	query  domain.BookingQuery
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts snapshotOptions

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save the bookings sheet to a local file",
		Long: `Read the configured bookings sheet once and write the matching rows
to a CSV or XLSX file. The XLSX output can be used as the xlsx source for
offline runs.

Examples:
  snapshot --out bookings.xlsx
  snapshot --out palm.csv --cluster Palm --period this_month`,
		Version:       contracts.GetFullVersionString(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSnapshot(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.out, "out", "o", fmt.Sprintf("bookings-%s.xlsx", time.Now().Format("20060102")), "output file path")
	flags.StringVarP(&opts.format, "format", "f", "", "csv | xlsx (defaults to the output file extension)")
	flags.StringVar(&opts.query.Cluster, "cluster", "", "only rows in this cluster")
	flags.StringVar(&opts.query.Status, "status", "", "only rows whose status contains this text")
	flags.StringVar(&opts.query.Period, "period", "", "today | this_week | this_month")

	return cmd
}

func runSnapshot(ctx context.Context, opts snapshotOptions) error {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		return err
	}
	cfg.Telemetry.TraceExporter = "none"
	cfg.Telemetry.MetricExporter = "none"

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", slog.String("error", err.Error()))
		return err
	}
	defer infrastructure.CloseLogFile()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize", slog.String("error", err.Error()))
		return err
	}

	ctx = infrastructure.EnsureTraceID(ctx)
	n, err := application.Reports.SaveBookings(ctx, opts.query, opts.out, opts.format)
	if err != nil {
		logger.ErrorContext(ctx, "Snapshot failed", slog.String("error", err.Error()))
		return err
	}

	logger.InfoContext(ctx, "Snapshot written", slog.String("file", opts.out), slog.Int("rows", n))
	return nil
}
