// Package config provides centralized configuration management for bookingdesk.
// It handles loading configuration from multiple sources, validation, and provides
// a type-safe API for accessing configuration values throughout the application.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML file: $BOOKINGDESK_CONFIG, ./config.yaml or ./configs/config.yaml
//	3. Default values (lowest priority)
//
// A .env file in the working directory is loaded into the environment first.
//
// # Environment Variables
//
// Variables follow the pattern BOOKINGDESK_<SECTION>_<NAME>. The bare name is
// accepted when the prefixed one is unset, so the usual deployment variables
// work unchanged:
//
//	PORT=8080
//	SPREADSHEET_ID=1AbC...
//	SHEET_NAME=Bookings
//	GOOGLE_SERVICE_ACCOUNT_JSON='{"type":"service_account",...}'
//
// # Column Catalog
//
// The columns section of the YAML file overrides the built-in mapping from
// logical fields to sheet headers:
//
//	columns:
//	  mobile:
//	    label: contact number
//	    header: Contact Number
//
// # Validation
//
// Load validates field constraints with go-playground/validator and then the
// rules spanning fields: the google source needs a spreadsheet id and
// credentials, the xlsx source needs a workbook path, and the time zone and
// column overrides must resolve.
package config
