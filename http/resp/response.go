package resp

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/frontdesk/logger"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder response method builds while applying all
// functional options.
type Response struct {
	w     http.ResponseWriter
	r     *http.Request
	code  int
	data  any
	tmpls []string
}

// Code sets the response status code.
//
// Code returns ErrInvalid if c is not a valid HTTP status code.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		if c < 100 || c > 999 {
			return fmt.Errorf("%w: %d is not a status code", ErrInvalid, c)
		}

		r.code = c
		return nil
	}
}

// Data stores the provided value for writing to the client.
//
// Used with Responder.Html, Responder.Json and Responder.Text.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// Err sets the status code http.StatusInternalServerError and logs the error.
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		if e != nil {
			d.logger.Error(e.Error(), &logger.LogContext{Request: r.r, Error: e})
		}

		r.code = http.StatusInternalServerError
		return nil
	}
}

// Tmpls appends to the templates to be rendered.
//
// Used with Responder.Html.
func Tmpls(fps ...string) Fn {
	return func(_ Responder, r *Response) error {
		r.tmpls = append(r.tmpls, fps...)
		return nil
	}
}
