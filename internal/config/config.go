package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"bookingdesk/internal/dataset"
	apperrors "bookingdesk/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Sheets    SheetsConfig    `yaml:"sheets" envconfig:"SHEETS"`
	App       AppConfig       `yaml:"app" envconfig:"APP"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Security  SecurityConfig  `yaml:"security" envconfig:"SECURITY"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`

	// Columns overrides entries of the built-in column catalog, keyed by
	// field name (e.g. "sale_price"). File only.
	Columns map[string]dataset.ColumnSpec `yaml:"columns" ignored:"true"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" validate:"gt=0"`
	MaxHeaderBytes  int           `yaml:"max_header_bytes" envconfig:"MAX_HEADER_BYTES" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

// SheetsConfig locates the spreadsheet that backs every report
type SheetsConfig struct {
	// Source is "google" for the Sheets API or "xlsx" for a local workbook.
	Source        string `yaml:"source" envconfig:"SHEET_SOURCE" validate:"oneof=google xlsx"`
	SpreadsheetID string `yaml:"spreadsheet_id" envconfig:"SPREADSHEET_ID" validate:"required_if=Source google"`
	Tab           string `yaml:"tab" envconfig:"SHEET_NAME" validate:"required_if=Source google"`
	Range         string `yaml:"range" envconfig:"SHEET_RANGE" validate:"required"`
	// HeaderRow is 1-based. Some sheet versions carry a title in row 1.
	HeaderRow int `yaml:"header_row" envconfig:"SHEET_HEADER_ROW" validate:"min=1"`

	CredentialsJSON string `yaml:"credentials_json" envconfig:"GOOGLE_SERVICE_ACCOUNT_JSON"`
	CredentialsFile string `yaml:"credentials_file" envconfig:"GOOGLE_APPLICATION_CREDENTIALS"`

	XLSXPath string `yaml:"xlsx_path" envconfig:"SHEET_XLSX_PATH" validate:"required_if=Source xlsx"`
}

// AppConfig contains report behaviour settings
type AppConfig struct {
	// Timezone is an IANA name used for period windows and date parsing.
	// Empty or "Local" uses the process zone.
	Timezone    string `yaml:"timezone" envconfig:"TIMEZONE"`
	Environment string `yaml:"environment" envconfig:"APP_ENV"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LOG_LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"LOG_FORMAT" validate:"oneof=json"`
	Output   string `yaml:"output" envconfig:"LOG_OUTPUT" validate:"oneof=stdout console file both"`
	FilePath string `yaml:"file_path" envconfig:"LOG_FILE"`
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
	EnableCORS     bool            `yaml:"enable_cors" envconfig:"ENABLE_CORS"`
	RateLimit      RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains inbound rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"RATE_LIMIT_ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RATE_LIMIT_RPS" validate:"gte=0"`
	Burst   int     `yaml:"burst" envconfig:"RATE_LIMIT_BURST" validate:"gte=0"`
}

// TelemetryConfig selects the OpenTelemetry exporters
type TelemetryConfig struct {
	TraceExporter  string  `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER" validate:"oneof=stdout none"`
	MetricExporter string  `yaml:"metric_exporter" envconfig:"METRIC_EXPORTER" validate:"oneof=prometheus none"`
	SampleRatio    float64 `yaml:"sample_ratio" envconfig:"TRACE_SAMPLE_RATIO" validate:"gte=0,lte=1"`
}

var validate = validator.New()

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in that order of increasing precedence. A .env file in the
// working directory is read first; it never overrides variables that are
// already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.NewConfigError("failed to read .env file", err)
	}

	cfg := Default()

	if path := configFilePath(); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, apperrors.NewConfigError("failed to load config from file", err).
				WithContext("path", path)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile overlays the YAML file onto c. Keys absent from the file keep
// their current value.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// Validate checks field constraints and the rules that span fields
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return apperrors.NewConfigError("config validation failed", err)
	}

	if c.Sheets.Source == SourceGoogle &&
		strings.TrimSpace(c.Sheets.CredentialsJSON) == "" &&
		strings.TrimSpace(c.Sheets.CredentialsFile) == "" {
		return apperrors.NewConfigError("config validation failed",
			errors.New("google source needs GOOGLE_SERVICE_ACCOUNT_JSON or a credentials file"))
	}

	switch c.Logging.Output {
	case "file", "both":
		if c.Logging.FilePath == "" {
			return apperrors.NewConfigError("config validation failed",
				errors.New("logging file_path is required when output writes to a file"))
		}
	}

	if _, err := c.App.Location(); err != nil {
		return apperrors.NewConfigError("config validation failed", err)
	}

	if _, err := c.Catalog(); err != nil {
		return apperrors.NewConfigError("config validation failed", err)
	}

	return nil
}

// Location resolves the configured time zone
func (a AppConfig) Location() (*time.Location, error) {
	switch tz := strings.TrimSpace(a.Timezone); tz {
	case "", "Local":
		return time.Local, nil
	default:
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
		}
		return loc, nil
	}
}

// Catalog returns the built-in column catalog with the configured overrides
func (c *Config) Catalog() (dataset.Catalog, error) {
	return dataset.DefaultCatalog().With(c.Columns)
}

// Credentials returns the service-account key, preferring the inline JSON
func (s SheetsConfig) Credentials() ([]byte, error) {
	if blob := strings.TrimSpace(s.CredentialsJSON); blob != "" {
		return []byte(blob), nil
	}
	if s.CredentialsFile == "" {
		return nil, apperrors.NewConfigError("no service account credentials configured", nil)
	}
	data, err := os.ReadFile(s.CredentialsFile)
	if err != nil {
		return nil, apperrors.NewConfigError("failed to read credentials file", err).
			WithContext("path", s.CredentialsFile)
	}
	return data, nil
}

// configFilePath returns the path to the config file, or "" when none exists
func configFilePath() string {
	if explicit := os.Getenv(ConfigFileEnv); explicit != "" {
		return explicit
	}

	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     60 * time.Second,
			MaxHeaderBytes:  1 << 20, // 1MB
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Sheets: SheetsConfig{
			Source:    SourceGoogle,
			Range:     DefaultSheetRange,
			HeaderRow: DefaultHeaderRow,
		},
		App: AppConfig{
			Timezone:    "Local",
			Environment: "development",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "stdout",
			FilePath: "logs/app.log",
		},
		Security: SecurityConfig{
			AllowedOrigins: []string{"*"},
			EnableCORS:     true,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     DefaultRateLimit,
				Burst:   DefaultBurstSize,
			},
		},
		Telemetry: TelemetryConfig{
			TraceExporter:  "none",
			MetricExporter: "prometheus",
			SampleRatio:    1.0,
		},
	}
}
