/*
Package metrics counts what the front controller does with each request
and exposes those counts for Prometheus to scrape.
*/
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "frontdesk"

// Outcomes of dispatching an AJAX request.
const (
	AjaxEmpty       = "empty"
	AjaxUnspecified = "unspecified"
	AjaxUnknown     = "unknown"
	AjaxHandled     = "handled"
)

// Outcomes of resolving a route.
const (
	RouteFound              = "found"
	RouteControllerNotFound = "controller_not_found"
	RouteActionNotFound     = "action_not_found"
	RouteFailed             = "failed"
)

// A Recorder holds the counters in its own registry.
type Recorder struct {
	ajax   *prometheus.CounterVec
	routes *prometheus.CounterVec
	reg    *prometheus.Registry
}

// New constructs a *Recorder whose registry also collects Go runtime and process metrics.
func New() *Recorder {
	r := &Recorder{
		ajax: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ajax_requests_total",
			Help:      "AJAX requests dispatched, by method and outcome.",
		}, []string{"method", "outcome"}),
		routes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_requests_total",
			Help:      "Requests routed to an action, by route and outcome.",
		}, []string{"route", "outcome"}),
		reg: prometheus.NewRegistry(),
	}

	r.reg.MustRegister(
		r.ajax,
		r.routes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// ObserveAjax counts one AJAX request.
// method is empty unless outcome is AjaxHandled, so unknown method names never become labels.
func (r *Recorder) ObserveAjax(method, outcome string) {
	if outcome != AjaxHandled {
		method = ""
	}

	r.ajax.WithLabelValues(method, outcome).Inc()
}

// ObserveRoute counts one routed request.
// route is empty for the not found outcomes, so unknown paths never become labels.
func (r *Recorder) ObserveRoute(route, outcome string) {
	if outcome == RouteControllerNotFound || outcome == RouteActionNotFound {
		route = ""
	}

	r.routes.WithLabelValues(route, outcome).Inc()
}

// Gatherer exposes the registry for tests and custom exporters.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.reg }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
