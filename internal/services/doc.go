// Package services implements the report views served by the API.
//
// Every method loads a fresh dataset through a DatasetLoader, narrows it with
// the dataset filters and turns it into a response body from
// pkg/contracts/domain. Nothing is cached between calls, so two identical
// requests against an unchanged sheet give identical answers.
//
// # Periods
//
// Summary views default to this_month when no period is given. An
// unrecognised period means no date bound, but undated rows are still left
// out. The bookings list and export apply a period only when one is given.
//
// # Errors
//
// Load failures are wrapped with the view name and returned. Invalid input
// is reported as a VALIDATION AppError before the sheet is read, so the
// transport layer can answer 400 without a round trip to the source.
//
// # Clock
//
// Period windows are evaluated in the configured time zone. Tests pin the
// clock with WithClock:
//
//	svc := services.NewReportService(loader, logger,
//	    services.WithLocation(loc),
//	    services.WithClock(func() time.Time { return fixed }))
package services
