package app

import (
	"context"
	"fmt"

	"github.com/xy-planning-network/frontdesk"
	"github.com/xy-planning-network/frontdesk/form"
	"github.com/xy-planning-network/frontdesk/metrics"
)

// A Method names a server-side operation an AJAX request can call.
type Method string

const FormSubmit Method = "formSubmit"

// Methods lists every Method a Dispatcher must handle.
func Methods() []Method { return []Method{FormSubmit} }

func (m Method) String() string { return string(m) }

func (m Method) Valid() error {
	switch m {
	case FormSubmit:
		return nil
	default:
		return fmt.Errorf("%w: %q is not a Method", frontdesk.ErrNotValid, string(m))
	}
}

// A Request is a decoded AJAX body holding one value per key.
// The "method" key names the Method and "data" holds its input.
type Request map[string]string

const (
	methodKey = "method"
	dataKey   = "data"
)

// An ErrorEnvelope answers an AJAX request that could not be dispatched.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

var (
	emptyRequest      = ErrorEnvelope{Error: "Empty request!"}
	unspecifiedMethod = ErrorEnvelope{Error: "Unspecified method!"}
	unknownMethod     = ErrorEnvelope{Error: "Unknown method"}
)

// A MethodHandler computes the envelope answering a Method.
type MethodHandler func(ctx context.Context, data string) any

// SubmitForm decodes and validates the contact form.
func SubmitForm(_ context.Context, data string) any {
	return form.Validate(form.Decode(data))
}

// DefaultHandlers registers a MethodHandler for every Method.
func DefaultHandlers() map[Method]MethodHandler {
	return map[Method]MethodHandler{FormSubmit: SubmitForm}
}

// A Dispatcher picks the MethodHandler an AJAX Request names.
type Dispatcher struct {
	handlers map[Method]MethodHandler
}

// NewDispatcher constructs a *Dispatcher over handlers.
// Every Method must have a non-nil MethodHandler,
// and every MethodHandler must be registered to a valid Method,
// otherwise NewDispatcher returns ErrBadConfig.
func NewDispatcher(handlers map[Method]MethodHandler) (*Dispatcher, error) {
	d := &Dispatcher{handlers: make(map[Method]MethodHandler, len(handlers))}
	for m, h := range handlers {
		if err := m.Valid(); err != nil {
			return nil, fmt.Errorf("%w: cannot register handler: %s", frontdesk.ErrBadConfig, err)
		}

		if h == nil {
			return nil, fmt.Errorf("%w: nil handler for %s", frontdesk.ErrBadConfig, m)
		}

		d.handlers[m] = h
	}

	for _, m := range Methods() {
		if _, ok := d.handlers[m]; !ok {
			return nil, fmt.Errorf("%w: no handler for %s", frontdesk.ErrBadConfig, m)
		}
	}

	return d, nil
}

// Handle answers req with the envelope of the MethodHandler it names,
// or an ErrorEnvelope for an empty Request, a missing method or an unknown one.
func (d *Dispatcher) Handle(ctx context.Context, req Request) any {
	env, _, _ := d.dispatch(ctx, req)
	return env
}

// dispatch is Handle also reporting the Method called and the metrics outcome.
func (d *Dispatcher) dispatch(ctx context.Context, req Request) (any, Method, string) {
	if len(req) == 0 {
		return emptyRequest, "", metrics.AjaxEmpty
	}

	name, ok := req[methodKey]
	if !ok {
		return unspecifiedMethod, "", metrics.AjaxUnspecified
	}

	m := Method(name)
	h, ok := d.handlers[m]
	if !ok {
		return unknownMethod, m, metrics.AjaxUnknown
	}

	return h(ctx, req[dataKey]), m, metrics.AjaxHandled
}
