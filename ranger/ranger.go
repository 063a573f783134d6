package ranger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/frontdesk"
	"github.com/xy-planning-network/frontdesk/app"
	"github.com/xy-planning-network/frontdesk/http/resp"
	"github.com/xy-planning-network/frontdesk/http/router"
	"github.com/xy-planning-network/frontdesk/logger"
	"github.com/xy-planning-network/frontdesk/metrics"
)

// A Ranger manages and exposes all components of a frontdesk app to one another.
type Ranger struct {
	ctx        context.Context
	cancel     context.CancelFunc
	env        frontdesk.Environment
	fs         fs.FS
	httpLogger *slog.Logger
	l          logger.Logger
	metadata   *app.Metadata
	metrics    *metrics.Recorder
	metricsSrv *http.Server
	output     io.Writer
	router     *router.Router
	srv        *http.Server
	url        *url.URL

	appOpts []app.OptFn

	once        sync.Once
	shutdownErr error
}

// New constructs a Ranger from the provided options.
// Anything the options leave unset is configured from environment variables.
func New(opts ...RangerOption) (*Ranger, error) {
	r := new(Ranger)
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("%w: %s", frontdesk.ErrBadConfig, err)
		}
	}

	if r.ctx == nil {
		r.ctx = context.Background()
	}
	r.ctx, r.cancel = context.WithCancel(r.ctx)

	if r.env == "" {
		r.env = frontdesk.EnvVarOrEnv(environmentEnvVar, frontdesk.Development)
	}

	if r.output == nil {
		r.output = os.Stdout
	}

	if r.l == nil {
		r.l = defaultAppLogger(r.env, r.output)
	}
	r.httpLogger = defaultHTTPLogger(r.env, r.output)

	if r.url == nil {
		host := frontdesk.EnvVarOrString(hostEnvVar, DefaultHost)
		port := frontdesk.EnvVarOrString(portEnvVar, DefaultPort)
		if port[0] != ':' {
			port = ":" + port
		}
		r.url = frontdesk.EnvVarOrURL(BaseURLEnvVar, "http://"+host+port)
	}

	if r.metadata == nil {
		m := defaultMetadata()
		r.metadata = &m
	}

	if r.fs == nil {
		r.fs = os.DirFS(".")
	}

	p := app.NewParser(r.env, *r.metadata, r.url, r.fs)
	responder := resp.NewResponder(
		resp.WithErrTemplate(app.ErrorView),
		resp.WithLayoutTemplate(app.LayoutView),
		resp.WithLogger(r.l),
		resp.WithParser(p),
	)

	appOpts := []app.OptFn{app.WithEnv(r.env), app.WithLogger(r.l)}
	if frontdesk.EnvVarOrString(metricsAddrEnvVar, "") != "" {
		r.metrics = metrics.New()
		r.metricsSrv = defaultMetricsServer(r.ctx, r.metrics.Handler())
		appOpts = append(appOpts, app.WithObserver(r.metrics))
	}

	application, err := app.New(responder, append(appOpts, r.appOpts...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", frontdesk.ErrBadConfig, err)
	}

	r.router = router.New(r.env)
	r.router.OnEveryRequest(defaultMiddlewares(r.httpLogger)...)
	r.router.CatchAll(application)

	if r.srv == nil {
		r.srv = defaultServer(r.ctx)
	}
	r.srv.Handler = r.router

	r.l.Debug(fmt.Sprintf("using env %s", r.env), nil)
	r.l.Debug(fmt.Sprintf("using base url %s", r.url), nil)

	return r, nil
}

func (r *Ranger) EmitLogger() logger.Logger { return r.l }

// Handler exposes the fully assembled [http.Handler] the web server serves.
func (r *Ranger) Handler() http.Handler { return r.router }

// MetricsHandler exposes the handler serving metrics,
// or nil when METRICS_ADDR is not set.
func (r *Ranger) MetricsHandler() http.Handler {
	if r.metrics == nil {
		return nil
	}

	return r.metrics.Handler()
}

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (r *Ranger) Guide() error {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			r.cancel()
		case <-r.ctx.Done():
		}
	}()

	r.listen("web server", r.srv)
	if r.metricsSrv != nil {
		r.listen("metrics server", r.metricsSrv)
	}

	<-r.ctx.Done()
	return r.shutdown()
}

// Shutdown shutdowns the web server.
func (r *Ranger) Shutdown() error {
	r.cancel()
	return r.shutdown()
}

func (r *Ranger) listen(name string, srv *http.Server) {
	go func() {
		r.l.Info(fmt.Sprintf("running %s at %s", name, srv.Addr), nil)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("could not listen: %w", err)
			r.l.Error(err.Error(), nil)
			r.cancel()
		}
	}()
}

func (r *Ranger) shutdown() error {
	r.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		r.l.Info("shutting down web server", nil)
		var errs []error
		if err := r.srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs = append(errs, fmt.Errorf("could not shutdown: %w", err))
		}

		if r.metricsSrv != nil {
			if err := r.metricsSrv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errs = append(errs, fmt.Errorf("could not shutdown metrics: %w", err))
			}
		}

		r.shutdownErr = errors.Join(errs...)
		if r.shutdownErr == nil {
			r.l.Info("web server shutdown successfully", nil)
		}
	})

	return r.shutdownErr
}
