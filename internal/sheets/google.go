package sheets

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	apperrors "bookingdesk/internal/errors"
)

// GoogleConfig identifies the range to read through the Sheets API.
type GoogleConfig struct {
	SpreadsheetID string
	Tab           string
	Range         string
	// Credentials is a service-account JSON key.
	Credentials []byte
}

// GoogleSource reads a range with the Sheets API v4 using formatted values,
// so cells arrive exactly as the sheet displays them.
type GoogleSource struct {
	svc           *gsheets.Service
	spreadsheetID string
	readRange     string
}

// NewGoogleSource authorises a service account with read-only scope.
// ctx should outlive the source; it backs token refreshes.
func NewGoogleSource(ctx context.Context, cfg GoogleConfig) (*GoogleSource, error) {
	if len(cfg.Credentials) == 0 {
		return nil, apperrors.NewConfigError("service account credentials are empty", nil)
	}

	jwt, err := google.JWTConfigFromJSON(cfg.Credentials, gsheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, apperrors.NewConfigError("failed to parse service account credentials", err)
	}

	svc, err := gsheets.NewService(ctx, option.WithHTTPClient(jwt.Client(ctx)))
	if err != nil {
		return nil, apperrors.NewConfigError("failed to create sheets service", err)
	}

	return NewGoogleSourceFromService(svc, cfg), nil
}

// NewGoogleSourceFromService wraps an already configured Sheets service.
func NewGoogleSourceFromService(svc *gsheets.Service, cfg GoogleConfig) *GoogleSource {
	return &GoogleSource{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		readRange:     A1Range(cfg.Tab, cfg.Range),
	}
}

// Name implements Source.
func (s *GoogleSource) Name() string {
	return "google"
}

// Rows implements Source.
func (s *GoogleSource) Rows(ctx context.Context) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).
		ValueRenderOption("FORMATTED_VALUE").
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, apperrors.NewSourceError("failed to read sheet range", err).
			WithContext("range", s.readRange)
	}

	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		rows[i] = toStrings(row)
	}
	return rows, nil
}

// A1Range builds "'tab'!range". Quotes inside the tab name are doubled as
// A1 notation requires. An empty tab yields the bare range.
func A1Range(tab, rng string) string {
	if tab == "" {
		return rng
	}
	quoted := "'" + strings.ReplaceAll(tab, "'", "''") + "'"
	if rng == "" {
		return quoted
	}
	return quoted + "!" + rng
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		if v == nil {
			continue
		}
		out[i] = fmt.Sprint(v)
	}
	return out
}
