package app

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/frontdesk"
	"github.com/xy-planning-network/frontdesk/http/req"
	"github.com/xy-planning-network/frontdesk/http/resp"
	"github.com/xy-planning-network/frontdesk/logger"
	"github.com/xy-planning-network/frontdesk/metrics"
)

// An Application is the http.Handler every request to the web app goes through.
type Application struct {
	env        frontdesk.Environment
	dispatcher *Dispatcher
	handlers   map[Method]MethodHandler
	logger     logger.Logger
	observer   Observer
	parser     *req.Parser
	responder  *resp.Responder
	routes     RoutingTable

	// routes added through WithRoutes
	extra map[string]map[string]Action
}

// New constructs an *Application answering through responder.
//
// New returns ErrBadConfig if responder is nil
// or the resulting RoutingTable or Dispatcher is misconfigured.
func New(responder *resp.Responder, opts ...OptFn) (*Application, error) {
	if responder == nil {
		return nil, fmt.Errorf("%w: nil *resp.Responder", frontdesk.ErrBadConfig)
	}

	a := &Application{
		env:       frontdesk.Development,
		handlers:  DefaultHandlers(),
		observer:  nopObserver{},
		parser:    req.NewParser(),
		responder: responder,
		extra:     make(map[string]map[string]Action),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = logger.New(nil)
	}

	routes := a.defaultRoutes()
	for controller, actions := range a.extra {
		if routes[controller] == nil {
			routes[controller] = make(map[string]Action, len(actions))
		}

		for name, action := range actions {
			routes[controller][name] = action
		}
	}

	var err error
	if a.routes, err = NewRoutingTable(routes); err != nil {
		return nil, err
	}

	if a.dispatcher, err = NewDispatcher(a.handlers); err != nil {
		return nil, err
	}

	return a, nil
}

// ServeHTTP calls the Dispatcher for a POST and otherwise routes r to an Action.
func (a *Application) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		a.serveAjax(w, r)
		return
	}

	a.serveRoute(w, r)
}

// serveAjax always answers 200 with a JSON envelope.
// An unreadable body is an empty Request.
func (a *Application) serveAjax(w http.ResponseWriter, r *http.Request) {
	fields, err := a.parser.ParseAjax(r)
	if err != nil {
		a.logger.Debug("unreadable AJAX body", &logger.LogContext{Request: r, Error: err})
		fields = nil
	}

	env, m, outcome := a.dispatcher.dispatch(r.Context(), Request(fields))
	a.observer.ObserveAjax(m.String(), outcome)

	if err := a.responder.Json(w, r, resp.Data(env)); err != nil {
		a.logger.Error(err.Error(), &logger.LogContext{Request: r, Error: err})
	}
}

func (a *Application) serveRoute(w http.ResponseWriter, r *http.Request) {
	route := RouteFromRequest(r)
	action, err := a.routes.Resolve(route.Controller, route.Action)
	if scope, ok := scopeOf(err); ok {
		outcome := metrics.RouteControllerNotFound
		if scope == ScopeAction {
			outcome = metrics.RouteActionNotFound
		}

		a.observer.ObserveRoute(route.String(), outcome)
		if err := a.responder.Text(w, r, resp.Code(http.StatusNotFound), resp.Data(err.Error())); err != nil {
			a.logger.Error(err.Error(), &logger.LogContext{Request: r, Error: err})
		}
		return
	}

	ctx := frontdesk.NewAppPropsContext(r.Context(), frontdesk.AppProps{"route": route.String()})
	r = r.WithContext(ctx)

	sw := &statusWriter{ResponseWriter: w}
	if err := action(sw, r); err != nil {
		a.observer.ObserveRoute(route.String(), metrics.RouteFailed)
		if sw.wrote {
			return
		}

		a.responder.Err(w, r, fmt.Errorf("%s failed: %w", route, err))
		return
	}

	a.observer.ObserveRoute(route.String(), metrics.RouteFound)
}

// statusWriter records whether a response was started.
type statusWriter struct {
	http.ResponseWriter
	wrote bool
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.wrote = true
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	sw.wrote = true
	return sw.ResponseWriter.Write(b)
}

func (sw *statusWriter) Unwrap() http.ResponseWriter { return sw.ResponseWriter }
