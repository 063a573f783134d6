package resp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"sync"

	"github.com/xy-planning-network/frontdesk"
	"github.com/xy-planning-network/frontdesk/http/template"
	"github.com/xy-planning-network/frontdesk/logger"
)

// NOTE(dlk): the Err closure, (*Responder).do and the exported response method.
const responderFrames = 3

// Responder maintains reusable pieces for responding to HTTP requests.
// It exposes many common methods for writing structured data as an HTTP response.
// These are the forms of response Responder can execute:
//
//	Err
//	Html
//	Json
//	Text
//
// Most oftentimes, setting up a single instance of a Responder suffices for an application.
// Meaning, one needs only application-wide configuration of how HTTP responses should look.
//
// When handling a specific HTTP request, calling code supplies additional data, structure,
// and so forth through Fn functions.
type Responder struct {
	logger logger.Logger

	// Initialized template parser
	parser *template.Parser

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool

	templates struct {
		// Root template to render when an error occurs
		// and no other response can be formed
		err string

		// Root template every Html response is rendered within
		layout string
	}
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := &Responder{
		pool: &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New(nil)
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(l.Skip() + responderFrames)
	}

	return d
}

// Err logs err and wraps http.Error, writing the status text matching the response code.
// The default code is 500.
//
// Use in exceptional circumstances when no Html, Json or Text can occur.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error, opts ...Fn) {
	rr, nested := doer.do(w, r, append([]Fn{Err(err)}, opts...)...)
	if nested != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if rr.code == 0 {
		rr.code = http.StatusInternalServerError
	}

	http.Error(w, http.StatusText(rr.code), rr.code)
}

type htmlData struct {
	Data  any
	Props frontdesk.AppProps
}

// Html composes together HTML templates set in *Responder and by Tmpls.
// When WithLayoutTemplate configured the *Responder,
// the layout is the outermost template rendered.
//
// Data calls populate .Data in the templates
// and the AppProps in the *http.Request.Context populate .Props.
func (doer *Responder) Html(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if doer.parser == nil {
		return doer.handleHtmlError(w, r, fmt.Errorf("%w: no parser configured", ErrBadConfig))
	}

	if len(rr.tmpls) == 0 {
		return doer.handleHtmlError(w, r, fmt.Errorf("%w: no templates to render", ErrMissingData))
	}

	if doer.templates.layout != "" && rr.tmpls[0] != doer.templates.layout {
		rr.tmpls = append([]string{doer.templates.layout}, rr.tmpls...)
	}

	tmpl, err := doer.parser.Parse(rr.tmpls...)
	if err != nil {
		return doer.handleHtmlError(w, r, fmt.Errorf("cannot parse: %w", err))
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	data := htmlData{Data: rr.data, Props: frontdesk.AppPropsFromContext(r.Context())}
	if err := tmpl.ExecuteTemplate(b, path.Base(rr.tmpls[0]), data); err != nil {
		return doer.handleHtmlError(w, r, err)
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(rr.code)
	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}

// Json responds with the data set by Data encoded as JSON, without wrapping it.
// The default code is 200.
func (doer *Responder) Json(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := json.NewEncoder(b).Encode(rr.data); err != nil {
		doer.Err(w, r, err)
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rr.code)
	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}

// Text responds with the data set by Data written as a plain text body.
// Data must be a string, []byte or fmt.Stringer.
// The default code is 200.
func (doer *Responder) Text(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	var body []byte
	switch d := rr.data.(type) {
	case nil:
	case string:
		body = []byte(d)
	case []byte:
		body = d
	case fmt.Stringer:
		body = []byte(d.String())
	default:
		err := fmt.Errorf("%w: cannot write %T as text", ErrInvalid, rr.data)
		doer.Err(w, r, err)
		return err
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(rr.code)
	if _, err := w.Write(body); err != nil {
		return err
	}

	return nil
}

// do applies all options to a new *Response for the passed in http.ResponseWriter and *http.Request.
//
// do reads what remains of the *http.Request.Body and closes it.
// No calling code can read from it again.
//
// Should all options apply successfully, do returns a validly formed *Response.
func (doer *Responder) do(w http.ResponseWriter, r *http.Request, opts ...Fn) (*Response, error) {
	if r.Body != nil {
		defer func() {
			_, _ = io.Copy(io.Discard, r.Body)
			r.Body.Close()
		}()
	}

	resp := &Response{
		w:     w,
		r:     r,
		tmpls: make([]string, 0),
	}

	for _, opt := range opts {
		select {
		case <-r.Context().Done():
			return nil, fmt.Errorf("%w", ErrDone)
		default:
			if err := opt(*doer, resp); err != nil {
				return nil, err
			}
		}
	}

	return resp, nil
}

// handleHtmlError specially renders the error template set on the Responder
// and reports errors.
func (doer *Responder) handleHtmlError(w http.ResponseWriter, r *http.Request, err error) error {
	doer.logger.Error(err.Error(), &logger.LogContext{Request: r, Error: err})

	if doer.templates.err == "" || doer.parser == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	tmpl, nested := doer.parser.Parse(doer.templates.err)
	if nested != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("%w: %s", nested, err)
	}

	if nested = tmpl.Execute(b, htmlData{Data: http.StatusText(http.StatusInternalServerError)}); nested != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("%w: %s", nested, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	if _, nested = b.WriteTo(w); nested != nil {
		return fmt.Errorf("%w: %s", nested, err)
	}

	return err
}
