package app

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/xy-planning-network/frontdesk"
)

const (
	DefaultController = "Application"
	DefaultAction     = "index"
)

// An Action responds to a routed request.
// An Action returning an error has not written a response.
type Action func(w http.ResponseWriter, r *http.Request) error

// A Scope is the part of a RouteRequest that could not be resolved.
type Scope string

const (
	ScopeController Scope = "controller"
	ScopeAction     Scope = "action"
)

// A NotFoundError reports a RouteRequest the RoutingTable does not hold.
type NotFoundError struct {
	Scope Scope
}

func (e *NotFoundError) Error() string { return string(e.Scope) + " not found" }

func (e *NotFoundError) Unwrap() error { return frontdesk.ErrNotExist }

// A RouteRequest names the controller and action a request is routed to.
type RouteRequest struct {
	Controller string `json:"controller"`
	Action     string `json:"action"`
}

func (rr RouteRequest) String() string { return rr.Controller + "/" + rr.Action }

// RouteFromRequest derives the RouteRequest from the path of r.
// The first segment is the controller and everything after it the action,
// falling back to DefaultController and DefaultAction when empty.
// Both are path-unescaped.
func RouteFromRequest(r *http.Request) RouteRequest {
	p := strings.TrimPrefix(r.URL.EscapedPath(), "/")
	controller, action, _ := strings.Cut(p, "/")

	rr := RouteRequest{Controller: unescape(controller), Action: unescape(action)}
	if rr.Controller == "" {
		rr.Controller = DefaultController
	}

	if rr.Action == "" {
		rr.Action = DefaultAction
	}

	return rr
}

func unescape(seg string) string {
	if s, err := url.PathUnescape(seg); err == nil {
		return s
	}

	return seg
}

// A RoutingTable maps a controller to its actions.
type RoutingTable map[string]map[string]Action

// NewRoutingTable copies routes into a RoutingTable,
// returning ErrBadConfig if any name is empty or any Action is nil.
func NewRoutingTable(routes map[string]map[string]Action) (RoutingTable, error) {
	if len(routes) == 0 {
		return nil, fmt.Errorf("%w: no routes", frontdesk.ErrBadConfig)
	}

	rt := make(RoutingTable, len(routes))
	for controller, actions := range routes {
		if controller == "" {
			return nil, fmt.Errorf("%w: empty controller name", frontdesk.ErrBadConfig)
		}

		if len(actions) == 0 {
			return nil, fmt.Errorf("%w: controller %q has no actions", frontdesk.ErrBadConfig, controller)
		}

		rt[controller] = make(map[string]Action, len(actions))
		for name, action := range actions {
			if name == "" {
				return nil, fmt.Errorf("%w: empty action name for controller %q", frontdesk.ErrBadConfig, controller)
			}

			if action == nil {
				return nil, fmt.Errorf("%w: nil action %s/%s", frontdesk.ErrBadConfig, controller, name)
			}

			rt[controller][name] = action
		}
	}

	return rt, nil
}

// Resolve looks up the Action for controller and action by exact match.
// If either is missing, Resolve returns a *NotFoundError scoped to the first one missing.
func (rt RoutingTable) Resolve(controller, action string) (Action, error) {
	actions, ok := rt[controller]
	if !ok {
		return nil, &NotFoundError{Scope: ScopeController}
	}

	fn, ok := actions[action]
	if !ok {
		return nil, &NotFoundError{Scope: ScopeAction}
	}

	return fn, nil
}

// scopeOf returns the Scope of err if it is a *NotFoundError.
func scopeOf(err error) (Scope, bool) {
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		return "", false
	}

	return nf.Scope, true
}
