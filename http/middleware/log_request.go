package middleware

import (
	"log/slog"
	"net/http"

	"github.com/xy-planning-network/frontdesk"
)

// A LogRequestRecord is the set of attributes LogRequest emits for every request.
type LogRequestRecord struct {
	BodySize       int    `json:"bodySize"`
	Host           string `json:"host"`
	ID             string `json:"id"`
	IPAddr         string `json:"ipAddr"`
	Method         string `json:"method"`
	Path           string `json:"path"`
	Protocol       string `json:"protocol"`
	Referrer       string `json:"referrer"`
	ReqContentType string `json:"reqContentType"`
	Scheme         string `json:"scheme"`
	Status         int    `json:"status"`
	URI            string `json:"uri"`
	UserAgent      string `json:"userAgent"`
}

func (rec LogRequestRecord) attrs() []slog.Attr {
	return []slog.Attr{
		slog.Int("bodySize", rec.BodySize),
		slog.String("host", rec.Host),
		slog.String("id", rec.ID),
		slog.String("ipAddr", rec.IPAddr),
		slog.String("method", rec.Method),
		slog.String("path", rec.Path),
		slog.String("protocol", rec.Protocol),
		slog.String("referrer", rec.Referrer),
		slog.String("reqContentType", rec.ReqContentType),
		slog.String("scheme", rec.Scheme),
		slog.Int("status", rec.Status),
		slog.String("uri", rec.URI),
		slog.String("userAgent", rec.UserAgent),
	}
}

// LogRequest logs a [LogRequestRecord] describing the request and the response written for it
// using the provided [*log/slog.Logger].
//
// LogRequest masks the values for the following query param keys:
// - password
//
// if l is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(l *slog.Logger) Adapter {
	if l == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &recordingWriter{ResponseWriter: w}
			h.ServeHTTP(rw, r)

			uri := r.URL.Path
			q := r.URL.Query()
			frontdesk.Mask(q, "password")
			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			rec := LogRequestRecord{
				BodySize:       rw.size,
				Host:           r.Host,
				Method:         r.Method,
				Path:           r.URL.Path,
				Protocol:       r.Proto,
				Referrer:       r.Referer(),
				ReqContentType: r.Header.Get("Content-Type"),
				Scheme:         r.URL.Scheme,
				Status:         rw.status(),
				URI:            uri,
				UserAgent:      r.UserAgent(),
			}

			if id, ok := r.Context().Value(frontdesk.RequestIDKey).(string); ok {
				rec.ID = id
			}

			if ip, ok := r.Context().Value(frontdesk.IpAddrKey).(string); ok {
				rec.IPAddr = ip
			}

			l.LogAttrs(r.Context(), slog.LevelInfo, "", rec.attrs()...)
		})
	}
}

// recordingWriter tracks the status code and number of bytes written to an http.ResponseWriter.
type recordingWriter struct {
	http.ResponseWriter
	code int
	size int
}

func (rw *recordingWriter) WriteHeader(code int) {
	if rw.code == 0 {
		rw.code = code
	}

	rw.ResponseWriter.WriteHeader(code)
}

func (rw *recordingWriter) Write(b []byte) (int, error) {
	if rw.code == 0 {
		rw.code = http.StatusOK
	}

	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

func (rw *recordingWriter) status() int {
	if rw.code == 0 {
		return http.StatusOK
	}

	return rw.code
}

// Unwrap exposes the original http.ResponseWriter to [net/http.ResponseController].
func (rw *recordingWriter) Unwrap() http.ResponseWriter { return rw.ResponseWriter }
