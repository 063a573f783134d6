package ranger

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/lmittmann/tint"
	"github.com/xy-planning-network/frontdesk"
	"github.com/xy-planning-network/frontdesk/app"
	"github.com/xy-planning-network/frontdesk/http/middleware"
	"github.com/xy-planning-network/frontdesk/logger"
)

const (
	// Base URL defaults
	BaseURLEnvVar = "BASE_URL"

	// App metadata
	AppDescEnvVar   = "APP_DESCRIPTION"
	AppTitleEnvVar  = "APP_TITLE"
	defaultAppTitle = "frontdesk"
	defaultAppDesc  = "Get in touch"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar  = "LOG_LEVEL"
	defaultLogLvl   = slog.LevelInfo
	logJSONEnvVar   = "LOG_JSON"
	defaultLogJSON  = false
	sentryDsnEnvVar = "SENTRY_DSN"

	// Request handling defaults
	corsOriginEnvVar    = "CORS_ORIGIN"
	forceHTTPSEnvVar    = "FORCE_HTTPS"
	maxBodyBytesEnvVar  = "MAX_BODY_BYTES"
	DefaultMaxBodyBytes = 1 << 20
	rateLimitEnvVar     = "RATE_LIMIT"
	DefaultRateLimit    = 5
	rateBurstEnvVar     = "RATE_BURST"
	DefaultRateBurst    = 20

	// Metrics defaults
	metricsAddrEnvVar = "METRICS_ADDR"
	metricsPath       = "/metrics"

	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	shutdownTimeout = 5 * time.Second
)

// defaultAppLogger constructs a [logger.Logger] configured for use in the application.
func defaultAppLogger(env frontdesk.Environment, output io.Writer) logger.Logger {
	slogger := newSlogger(frontdesk.AppLogKind, env, output)
	l := logger.Logger(logger.New(slogger))
	l.Debug("setting up app logger", nil)
	if dsn := frontdesk.EnvVarOrString(sentryDsnEnvVar, ""); dsn != "" {
		l = logger.NewSentryLogger(env, l, dsn)
		l.Debug("using SentryLogger for app logger", nil)
	}

	return l
}

// defaultHTTPLogger constructs a [*log/slog.Logger] for use in HTTP request logging.
func defaultHTTPLogger(env frontdesk.Environment, output io.Writer) *slog.Logger {
	sl := newSlogger(frontdesk.HTTPLogKind, env, output)
	sl.Debug("setting up HTTP router logger")

	return sl
}

// newSlogger toggles contructing the specific [*log/slog.Logger]
// from the given parameters.
func newSlogger(kind slog.Value, env frontdesk.Environment, out io.Writer) *slog.Logger {
	lvl := new(slog.LevelVar)
	lvl.Set(frontdesk.EnvVarOrLogLevel(logLevelEnvVar, defaultLogLvl))

	useJSON := !env.IsDevelopment() || frontdesk.EnvVarOrBool(logJSONEnvVar, defaultLogJSON)
	isHTTP := kind.String() == frontdesk.HTTPLogKind.String()

	var handler slog.Handler
	switch {
	case useJSON && !isHTTP:
		opts := &slog.HandlerOptions{
			AddSource:   true,
			Level:       lvl,
			ReplaceAttr: logger.TruncSourceAttr,
		}
		handler = slog.NewJSONHandler(out, opts)

	case !useJSON && !isHTTP:
		opts := &tint.Options{
			AddSource:  true,
			Level:      lvl,
			TimeFormat: "2006-01-02 15:04:05.000",
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a = logger.ColorizeLevel(groups, a)
				return logger.TruncSourceAttr(groups, a)
			},
		}
		handler = tint.NewHandler(out, opts)

	case useJSON:
		opts := &slog.HandlerOptions{
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a = logger.DeleteLevelAttr(groups, a)
				return logger.DeleteMessageAttr(groups, a)
			},
		}
		handler = slog.NewJSONHandler(out, opts)

	default:
		opts := &slog.HandlerOptions{
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a = logger.DeleteLevelAttr(groups, a)
				return logger.DeleteMessageAttr(groups, a)
			},
		}
		handler = slog.NewTextHandler(out, opts)
	}

	handler = handler.WithAttrs([]slog.Attr{
		{Key: frontdesk.LogKindKey, Value: kind},
	})

	return slog.New(handler)
}

// defaultMetadata reads the APP_TITLE and APP_DESCRIPTION env vars.
func defaultMetadata() app.Metadata {
	return app.Metadata{
		Title:       frontdesk.EnvVarOrString(AppTitleEnvVar, defaultAppTitle),
		Description: frontdesk.EnvVarOrString(AppDescEnvVar, defaultAppDesc),
	}
}

// defaultMiddlewares lists the middleware run on every request, outermost first.
//
// Only GET and HEAD requests are rate limited or redirected to HTTPS;
// an AJAX POST is always answered with its envelope.
func defaultMiddlewares(httpLogger *slog.Logger) []middleware.Adapter {
	visitors := middleware.NewVisitors(
		frontdesk.EnvVarOrFloat(rateLimitEnvVar, DefaultRateLimit),
		frontdesk.EnvVarOrInt(rateBurstEnvVar, DefaultRateBurst),
	)

	return []middleware.Adapter{
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(httpLogger),
		middleware.ForceHTTPS(frontdesk.EnvVarOrBool(forceHTTPSEnvVar, false), http.MethodPost),
		middleware.CORS(frontdesk.EnvVarOrString(corsOriginEnvVar, "")),
		middleware.RateLimit(visitors, http.MethodGet, http.MethodHead),
		middleware.LimitBody(int64(frontdesk.EnvVarOrInt(maxBodyBytesEnvVar, DefaultMaxBodyBytes))),
	}
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context) *http.Server {
	port := frontdesk.EnvVarOrString(portEnvVar, DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:              port,
		IdleTimeout:       frontdesk.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadHeaderTimeout: frontdesk.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		ReadTimeout:       frontdesk.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout:      frontdesk.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}

// defaultMetricsServer constructs the [*http.Server] exposing metrics on METRICS_ADDR,
// or nil when it is not set.
func defaultMetricsServer(ctx context.Context, handler http.Handler) *http.Server {
	addr := frontdesk.EnvVarOrString(metricsAddrEnvVar, "")
	if addr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(metricsPath, handler)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: frontdesk.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}
