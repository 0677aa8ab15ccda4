package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogCapture(t *testing.T) {
	logger, capture := NewLogCapture()

	logger.With(slog.String("component", "loader")).
		Warn("sheet read failed", slog.Int("status", 403))
	logger.WithGroup("http").Info("request completed", slog.String("method", "GET"))

	records := capture.Records()
	assert.Len(t, records, 2)

	r := AssertLogged(t, capture, slog.LevelWarn, "sheet read")
	assert.Equal(t, "loader", r.Attrs["component"])
	assert.EqualValues(t, 403, r.Attrs["status"])

	r = AssertLogged(t, capture, slog.LevelInfo, "request completed")
	assert.Equal(t, "GET", r.Attrs["http.method"])
	assert.NotContains(t, r.Attrs, "component")

	_, ok := capture.Find(slog.LevelError, "sheet read")
	assert.False(t, ok)
}
