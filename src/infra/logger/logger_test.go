package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"oblog/src/infra/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestPlainHandler(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LogConfig{Level: "info", Format: "plain"}, &buf)

	WithComponent(log, "repo").Info("category inserted", "id", 3)
	log.Debug("hidden")

	assert.Equal(t, "INFO category inserted component=repo id=3\n", buf.String())
}

func TestJSONHandlerWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LogConfig{Level: "info", Format: "json"}, &buf)

	WithRequestID(log, "req-1").Warn("slow request")

	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestNilGuards(t *testing.T) {
	assert.NotPanics(t, func() {
		Debug(nil, "ignored")
		Info(nil, "ignored")
	})
}
