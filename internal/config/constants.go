package config

import "time"

// Application constants
const (
	AppName = "bookingdesk"

	// EnvPrefix namespaces every environment variable, e.g.
	// BOOKINGDESK_SERVER_PORT. Bare names such as PORT are accepted as a
	// fallback.
	EnvPrefix = "BOOKINGDESK"

	// ConfigFileEnv points at an explicit YAML config file.
	ConfigFileEnv = "BOOKINGDESK_CONFIG"

	SourceGoogle = "google"
	SourceXLSX   = "xlsx"

	DefaultSheetRange = "A:AZ"
	DefaultHeaderRow  = 1

	DefaultRateLimit = 100 // requests per second
	DefaultBurstSize = 50

	DefaultShutdownTimeout = 30 * time.Second
)
