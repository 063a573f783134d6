package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/frontdesk"
	"github.com/xy-planning-network/frontdesk/http/middleware"
)

// A Route maps a path and HTTP method to an [http.Handler].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
//
// A Route without a Method matches every HTTP method.
// A Route with Prefix set matches every path beginning with Path.
type Route struct {
	Path        string
	Method      string
	Prefix      bool
	Handler     http.Handler
	Middlewares []middleware.Adapter
}

// Router routes requests for resources to the handlers registered for them.
type Router struct {
	env           frontdesk.Environment
	everyReqStack []middleware.Adapter
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
//
// Paths are matched as sent; a request for an unclean path is never redirected.
func New(env frontdesk.Environment) *Router {
	return &Router{env: env, r: mux.NewRouter().SkipClean(true)}
}

// CatchAll sets up a handler every request funnels to,
// no matter the path or method.
//
// Routes registered after calling CatchAll are never matched.
func (r *Router) CatchAll(handler http.Handler) {
	r.Handle(Route{Path: "/", Prefix: true, Handler: handler})
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.Handler] as the default handler
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.Handler) {
	r.r.NotFoundHandler = middleware.Chain(handler, r.stack()...)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := append(r.stack(), middlewares...)
		mws = append(mws, route.Middlewares...)
		handler := middleware.Chain(route.Handler, mws...)

		var mr *mux.Route
		if route.Prefix {
			mr = r.r.PathPrefix(route.Path).Handler(handler)
		} else {
			mr = r.r.Handle(route.Path, handler)
		}

		if route.Method != "" {
			mr.Methods(route.Method)
		}
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Subrouter constructs a [*Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/api/v1") handles requests to endpoints like /api/v1/contact
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		env:           r.env,
		r:             r.r.PathPrefix(prefix).Subrouter(),
		everyReqStack: r.everyReqStack,
	}
}

// stack copies the middlewares applied to every request,
// with panic reporting innermost so every other middleware still observes the response.
func (r *Router) stack() []middleware.Adapter {
	mws := make([]middleware.Adapter, 0, len(r.everyReqStack)+1)
	mws = append(mws, r.everyReqStack...)
	return append(mws, middleware.ReportPanic(r.env))
}
