package logger

import (
	"fmt"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/xy-planning-network/frontdesk"
)

// A SentryLogger logs through the Logger it wraps
// and ships warnings and errors carrying a LogContext.Error to Sentry.
type SentryLogger struct {
	l Logger
}

// NewSentryLogger initializes the Sentry client for the DSN and wraps l.
// If Sentry cannot initialize, the error is logged and l returns unwrapped.
func NewSentryLogger(env frontdesk.Environment, l Logger, dsn string) Logger {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:          dsn,
		Environment:  env.String(),
		IgnoreErrors: []string{"write: broken pipe"},
	})
	if err != nil {
		err = fmt.Errorf("unable to init Sentry: %s", err)
		l.Error(err.Error(), nil)
		return l
	}

	if sl, ok := l.(SkipLogger); ok {
		l = sl.AddSkip(sl.Skip() + 1)
	}

	return &SentryLogger{l: l}
}

// Debug writes a debug log.
func (sl *SentryLogger) Debug(msg string, ctx *LogContext) { sl.l.Debug(msg, ctx) }

// Error writes an error log and sends it to Sentry.
func (sl *SentryLogger) Error(msg string, ctx *LogContext) {
	sl.l.Error(msg, ctx)
	sl.send(sentry.LevelError, ctx)
}

// Fatal writes a fatal log and sends it to Sentry.
func (sl *SentryLogger) Fatal(msg string, ctx *LogContext) {
	sl.l.Fatal(msg, ctx)
	sl.send(sentry.LevelFatal, ctx)
}

// Info writes an info log.
func (sl *SentryLogger) Info(msg string, ctx *LogContext) { sl.l.Info(msg, ctx) }

// Warn writes a warning log and sends it to Sentry.
func (sl *SentryLogger) Warn(msg string, ctx *LogContext) {
	sl.l.Warn(msg, ctx)
	sl.send(sentry.LevelWarning, ctx)
}

// LogLevel returns the level set for the wrapped Logger.
func (sl *SentryLogger) LogLevel() slog.Level { return sl.l.LogLevel() }

// send ships the LogContext.Error to Sentry,
// including any additional data from LogContext.
func (sl *SentryLogger) send(level sentry.Level, ctx *LogContext) {
	if ctx == nil || ctx.Error == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		if ctx.Request != nil {
			scope.SetRequest(ctx.Request)
		}

		if ctx.Data != nil {
			scope.SetContext("data", ctx.Data)
		}

		scope.SetLevel(level)
		sentry.CaptureException(ctx.Error)
	})
}
