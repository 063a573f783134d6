package app

import (
	"github.com/xy-planning-network/frontdesk"
	"github.com/xy-planning-network/frontdesk/logger"
)

// An OptFn configures an *Application when constructing it.
type OptFn func(*Application)

// WithEnv sets the Environment, which decides how much the debug view shows.
// The default is [frontdesk.Development].
func WithEnv(env frontdesk.Environment) OptFn {
	return func(a *Application) {
		a.env = env
	}
}

// WithHandlers replaces the MethodHandlers of DefaultHandlers.
func WithHandlers(handlers map[Method]MethodHandler) OptFn {
	return func(a *Application) {
		a.handlers = handlers
	}
}

// WithLogger sets the logger.Logger failures are logged through.
func WithLogger(l logger.Logger) OptFn {
	return func(a *Application) {
		a.logger = l
	}
}

// WithObserver sets the Observer told about every request.
func WithObserver(o Observer) OptFn {
	return func(a *Application) {
		if o != nil {
			a.observer = o
		}
	}
}

// WithRoutes adds routes to the default ones, replacing any with the same controller and action.
func WithRoutes(routes map[string]map[string]Action) OptFn {
	return func(a *Application) {
		for controller, actions := range routes {
			if a.extra[controller] == nil {
				a.extra[controller] = make(map[string]Action, len(actions))
			}

			for name, action := range actions {
				a.extra[controller][name] = action
			}
		}
	}
}
