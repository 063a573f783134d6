package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/frontdesk/logger"
)

func newJSONLogger(b *bytes.Buffer, lvl slog.Level) *logger.AppLogger {
	opts := &slog.HandlerOptions{AddSource: true, Level: lvl, ReplaceAttr: logger.TruncSourceAttr}
	return logger.New(slog.New(slog.NewJSONHandler(b, opts)))
}

func TestAppLoggerLevels(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := newJSONLogger(b, slog.LevelWarn)

	// Act
	l.Debug("debug", nil)
	l.Info("info", nil)

	// Assert
	require.Zero(t, b.Len())
	require.Equal(t, slog.LevelWarn, l.LogLevel())

	// Act
	l.Warn("warn", nil)
	l.Error("error", nil)
	l.Fatal("fatal", nil)

	// Assert
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 3)
	for i, expected := range []string{"WARN", "ERROR", "ERROR+4"} {
		m := make(map[string]any)
		require.Nil(t, json.Unmarshal([]byte(lines[i]), &m))
		require.Equal(t, expected, m[slog.LevelKey])
	}
}

func TestAppLoggerSource(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := newJSONLogger(b, slog.LevelDebug)

	// Act
	l.Info("where am i", nil)

	// Assert
	m := make(map[string]any)
	require.Nil(t, json.Unmarshal(b.Bytes(), &m))
	require.Equal(t, "where am i", m[slog.MessageKey])
	require.Contains(t, m[slog.SourceKey], "logger/logger_test.go:")
}

func TestAppLoggerLogContext(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := newJSONLogger(b, slog.LevelDebug)
	r := httptest.NewRequest(http.MethodPost, "https://example.com/?password=hunter2", nil)

	// Act
	l.Error("oops", &logger.LogContext{
		Data:    map[string]any{"method": "formSubmit"},
		Error:   errors.New("test"),
		Request: r,
	})

	// Assert
	var actual struct {
		LogContext struct {
			Data    map[string]any `json:"data"`
			Error   string         `json:"error"`
			Request struct {
				Method string `json:"method"`
				URL    string `json:"url"`
			} `json:"request"`
		} `json:"log_context"`
	}

	require.Nil(t, json.Unmarshal(b.Bytes(), &actual))
	require.Equal(t, map[string]any{"method": "formSubmit"}, actual.LogContext.Data)
	require.Equal(t, "test", actual.LogContext.Error)
	require.Equal(t, http.MethodPost, actual.LogContext.Request.Method)
	require.Equal(t, "https://example.com/?password=xxxxxx", actual.LogContext.Request.URL)
}

func TestAppLoggerAddSkip(t *testing.T) {
	// Arrange
	l := logger.New(nil)

	// Act
	skipped := l.AddSkip(2)

	// Assert
	require.Equal(t, 0, l.Skip())
	require.Equal(t, 2, skipped.Skip())
	require.Equal(t, 1, logger.New(nil, logger.WithSkip(1)).Skip())
}
