package logger

import (
	"log/slog"
	"net/http"

	"github.com/xy-planning-network/frontdesk"
)

// LogContextKey is the attribute key a *LogContext is logged under.
const LogContextKey = "log_context"

var _ slog.LogValuer = LogContext{}

// A LogContext provides additional information
// for a [Logger] method that cannot be tersely captured in the message itself.
type LogContext struct {
	// Data is any information pertinent at the time of the logging event.
	Data map[string]any

	// Error is the error that may or may not have instigated a logging event.
	Error error

	// Request is the *http.Request that may or may not have been open during the logging event.
	Request *http.Request
}

// LogValue groups the non-zero fields of the LogContext.
//
// The query params and any parsed form of LogContext.Request
// mask "password" values.
//
// LogValue implements [log/slog.LogValuer].
func (lc LogContext) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 3)
	if lc.Data != nil {
		data := make([]slog.Attr, 0, len(lc.Data))
		for k, v := range lc.Data {
			data = append(data, slog.Any(k, v))
		}

		attrs = append(attrs, slog.Attr{Key: "data", Value: slog.GroupValue(data...)})
	}

	if lc.Error != nil {
		attrs = append(attrs, slog.String("error", lc.Error.Error()))
	}

	if lc.Request != nil {
		q := lc.Request.URL.Query()
		frontdesk.Mask(q, "password")

		u := *lc.Request.URL
		u.RawQuery = q.Encode()

		req := []slog.Attr{
			slog.String("method", lc.Request.Method),
			slog.String("url", u.String()),
		}

		if id, ok := lc.Request.Context().Value(frontdesk.RequestIDKey).(string); ok {
			req = append(req, slog.String("id", id))
		}

		if lc.Request.PostForm != nil {
			form := make(map[string][]string, len(lc.Request.PostForm))
			for k, v := range lc.Request.PostForm {
				form[k] = v
			}

			frontdesk.Mask(form, "password")
			req = append(req, slog.Any("form", form))
		}

		attrs = append(attrs, slog.Attr{Key: "request", Value: slog.GroupValue(req...)})
	}

	return slog.GroupValue(attrs...)
}
