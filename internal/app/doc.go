// Package app wires configuration, telemetry, the sheet source, the report
// services and the HTTP router into a runnable server.
//
// # Initialization Flow
//
//	1. Load configuration from defaults, YAML and the environment
//	2. Initialize logging and OpenTelemetry
//	3. Build the sheet source (Google Sheets or a local workbook)
//	4. Create the report and health services
//	5. Set up middleware and routes
//
// # Usage
//
//	application, err := app.New(ctx, cfg, logger)
//	if err != nil {
//	    return err
//	}
//	return application.Run(ctx)
//
// Run stops on SIGINT or SIGTERM, finishes in-flight requests and flushes
// telemetry. Errors are returned to the caller; the package never exits the
// process itself.
package app
