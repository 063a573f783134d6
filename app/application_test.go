package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/frontdesk"
	"github.com/xy-planning-network/frontdesk/app"
	"github.com/xy-planning-network/frontdesk/http/resp"
	"github.com/xy-planning-network/frontdesk/logger"
	"github.com/xy-planning-network/frontdesk/metrics"
)

const validForm = `{"name":"John Smith","phone":"+38 (067) 123-45-67","email":"","comment":""}`

type observation struct {
	name    string
	outcome string
}

type testObserver struct {
	mu     sync.Mutex
	ajax   []observation
	routes []observation
}

func (o *testObserver) ObserveAjax(method, outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ajax = append(o.ajax, observation{method, outcome})
}

func (o *testObserver) ObserveRoute(route, outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.routes = append(o.routes, observation{route, outcome})
}

func newTestApp(t *testing.T, env frontdesk.Environment, opts ...app.OptFn) (*app.Application, *testObserver, *bytes.Buffer) {
	t.Helper()

	b := new(bytes.Buffer)
	l := logger.New(slog.New(slog.NewTextHandler(b, &slog.HandlerOptions{Level: slog.LevelDebug})))
	root, err := url.ParseRequestURI("http://localhost:3000")
	require.Nil(t, err)

	p := app.NewParser(env, app.Metadata{Title: "front desk", Description: "Contact us"}, root)
	responder := resp.NewResponder(
		resp.WithErrTemplate(app.ErrorView),
		resp.WithLayoutTemplate(app.LayoutView),
		resp.WithLogger(l),
		resp.WithParser(p),
	)

	o := new(testObserver)
	opts = append([]app.OptFn{app.WithEnv(env), app.WithLogger(l), app.WithObserver(o)}, opts...)
	a, err := app.New(responder, opts...)
	require.Nil(t, err)

	return a, o, b
}

func TestNew(t *testing.T) {
	// Act
	a, err := app.New(nil)

	// Assert
	require.ErrorIs(t, err, frontdesk.ErrBadConfig)
	require.Nil(t, a)

	// Act
	a, err = app.New(resp.NewResponder(), app.WithRoutes(map[string]map[string]app.Action{"x": {"y": nil}}))

	// Assert
	require.ErrorIs(t, err, frontdesk.ErrBadConfig)
	require.Nil(t, a)

	// Act
	a, err = app.New(resp.NewResponder(), app.WithHandlers(map[app.Method]app.MethodHandler{}))

	// Assert
	require.ErrorIs(t, err, frontdesk.ErrBadConfig)
	require.Nil(t, a)
}

func TestApplicationServeHTTPRoutes(t *testing.T) {
	tcs := []struct {
		name        string
		method      string
		target      string
		code        int
		contentType string
		body        string
		outcome     string
	}{
		{"Robots", http.MethodGet, "/robots.txt", http.StatusOK, "text/plain; charset=utf-8", "User-Agent: *\nDisallow: /", metrics.RouteFound},
		{"Robots-Head", http.MethodHead, "/robots.txt", http.StatusOK, "text/plain; charset=utf-8", "User-Agent: *\nDisallow: /", metrics.RouteFound},
		{"No-Controller", http.MethodGet, "/nope", http.StatusNotFound, "text/plain; charset=utf-8", "controller not found", metrics.RouteControllerNotFound},
		{"No-Action", http.MethodGet, "/Application/nope", http.StatusNotFound, "text/plain; charset=utf-8", "action not found", metrics.RouteActionNotFound},
		{"No-Robots-Action", http.MethodGet, "/robots.txt/debug", http.StatusNotFound, "text/plain; charset=utf-8", "action not found", metrics.RouteActionNotFound},
		{"Case-Sensitive", http.MethodGet, "/application", http.StatusNotFound, "text/plain; charset=utf-8", "controller not found", metrics.RouteControllerNotFound},
		{"Put-Routes", http.MethodPut, "/nope", http.StatusNotFound, "text/plain; charset=utf-8", "controller not found", metrics.RouteControllerNotFound},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			a, o, _ := newTestApp(t, frontdesk.Testing)
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.target, nil)

			// Act
			a.ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, tc.contentType, w.Header().Get("Content-Type"))
			require.Equal(t, tc.body, w.Body.String())
			require.Len(t, o.routes, 1)
			require.Equal(t, tc.outcome, o.routes[0].outcome)
			require.Empty(t, o.ajax)
		})
	}
}

func TestApplicationServeHTTPIndex(t *testing.T) {
	// Arrange
	a, o, _ := newTestApp(t, frontdesk.Testing)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	// Act
	a.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	require.Contains(t, body, "<title>front desk</title>")
	require.Contains(t, body, "<h1>Front Desk</h1>")
	require.Contains(t, body, `data-route="Application/index"`)
	require.Contains(t, body, `data-env="TESTING"`)
	require.Contains(t, body, `<form id="contact"`)
	require.Equal(t, []observation{{"Application/index", metrics.RouteFound}}, o.routes)
}

func TestFormatValid(t *testing.T) {
	require.Nil(t, app.FormatHTML.Valid())
	require.Nil(t, app.FormatJSON.Valid())
	require.ErrorIs(t, app.Format("xml").Valid(), frontdesk.ErrNotValid)
	require.Equal(t, "json", app.FormatJSON.String())
}

func TestApplicationServeHTTPDebug(t *testing.T) {
	t.Run("Html", func(t *testing.T) {
		// Arrange
		a, _, _ := newTestApp(t, frontdesk.Testing)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/Application/debug", nil)
		r.Header.Set("Cookie", "secret=1")
		r.Header.Set("X-Test", "visible")

		// Act
		a.ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		require.Contains(t, body, "<dd>TESTING</dd>")
		require.Contains(t, body, "<dd>Application/debug</dd>")
		require.Contains(t, body, "<th>X-Test</th><td>visible</td>")
		require.Contains(t, body, "<th>Cookie</th><td>xxxxxx</td>")
		require.NotContains(t, body, "secret=1")
	})

	t.Run("Alias-Json", func(t *testing.T) {
		// Arrange
		a, _, _ := newTestApp(t, frontdesk.Testing)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/debug?format=json", nil)
		r = r.WithContext(context.WithValue(r.Context(), frontdesk.RequestIDKey, "abc"))

		// Act
		a.ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var actual app.Diagnostics
		require.Nil(t, json.NewDecoder(w.Body).Decode(&actual))
		require.Equal(t, "TESTING", actual.Environment)
		require.Equal(t, app.RouteRequest{Controller: "debug", Action: "index"}, actual.Route)
		require.Equal(t, http.MethodGet, actual.Method)
		require.Equal(t, "/debug?format=json", actual.URI)
		require.Equal(t, "abc", actual.RequestID)
		require.NotEmpty(t, actual.GoVersion)
	})

	t.Run("Production", func(t *testing.T) {
		// Arrange
		a, _, _ := newTestApp(t, frontdesk.Production)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/Application/debug?format=json", nil)
		r.Header.Set("X-Test", "hidden")

		// Act
		a.ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"environment":"PRODUCTION","route":{"controller":"Application","action":"debug"}}`, w.Body.String())
	})

	t.Run("Production-Html", func(t *testing.T) {
		// Arrange
		a, _, _ := newTestApp(t, frontdesk.Production)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/Application/debug", nil)

		// Act
		a.ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Request details are hidden in PRODUCTION.")
		require.NotContains(t, w.Body.String(), "<table>")
	})

	t.Run("Explicit-Html", func(t *testing.T) {
		// Arrange
		a, _, _ := newTestApp(t, frontdesk.Testing)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/Application/debug?format=html", nil)

		// Act
		a.ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "<dd>TESTING</dd>")
	})

	t.Run("Bad-Format", func(t *testing.T) {
		// Arrange
		a, _, _ := newTestApp(t, frontdesk.Testing)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/Application/debug?format=xml", nil)

		// Act
		a.ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "format must be html or json", w.Body.String())
	})
}

func TestApplicationServeHTTPActionErr(t *testing.T) {
	// Arrange
	a, o, b := newTestApp(t, frontdesk.Testing, app.WithRoutes(map[string]map[string]app.Action{
		"broken": {"index": func(http.ResponseWriter, *http.Request) error { return errors.New("boom") }},
	}))
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/broken", nil)

	// Act
	a.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "Internal Server Error\n", w.Body.String())
	require.Contains(t, b.String(), "level=ERROR")
	require.Contains(t, b.String(), "broken/index failed: boom")
	require.Equal(t, []observation{{"broken/index", metrics.RouteFailed}}, o.routes)
}

func TestApplicationServeHTTPTemplateErr(t *testing.T) {
	// Arrange
	a, o, _ := newTestApp(t, frontdesk.Testing, app.WithRoutes(map[string]map[string]app.Action{
		"Application": {"index": func(w http.ResponseWriter, r *http.Request) error {
			return resp.NewResponder().Html(w, r, resp.Tmpls("missing.tmpl"))
		}},
	}))
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	// Act
	a.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "Internal Server Error\n", w.Body.String())
	require.Equal(t, []observation{{"Application/index", metrics.RouteFailed}}, o.routes)
}

func TestApplicationServeHTTPAjax(t *testing.T) {
	tcs := []struct {
		name        string
		target      string
		contentType string
		body        string
		expected    string
		observed    observation
	}{
		{
			name:     "Empty",
			target:   "/",
			expected: `{"error":"Empty request!"}`,
			observed: observation{"", metrics.AjaxEmpty},
		},
		{
			name:        "No-Method",
			target:      "/",
			contentType: "application/x-www-form-urlencoded",
			body:        "data=...",
			expected:    `{"error":"Unspecified method!"}`,
			observed:    observation{"", metrics.AjaxUnspecified},
		},
		{
			name:        "Bogus",
			target:      "/Application/debug",
			contentType: "application/x-www-form-urlencoded",
			body:        "method=bogus",
			expected:    `{"error":"Unknown method"}`,
			observed:    observation{"bogus", metrics.AjaxUnknown},
		},
		{
			name:        "Garbled-JSON",
			target:      "/",
			contentType: "application/json",
			body:        `{"method":`,
			expected:    `{"error":"Empty request!"}`,
			observed:    observation{"", metrics.AjaxEmpty},
		},
		{
			name:        "Form-Submit",
			target:      "/nowhere/at/all",
			contentType: "application/x-www-form-urlencoded",
			body:        url.Values{"method": {"formSubmit"}, "data": {validForm}}.Encode(),
			expected:    `{"result":true,"error":{},"array":{"name":"John Smith","phone":"+38 (067) 123-45-67"}}`,
			observed:    observation{"formSubmit", metrics.AjaxHandled},
		},
		{
			name:        "Form-Submit-Invalid",
			target:      "/",
			contentType: "application/x-www-form-urlencoded",
			body:        url.Values{"method": {"formSubmit"}, "data": {`[{"name":"name","value":"Jane"},{"name":"phone","value":"123-456"}]`}}.Encode(),
			expected:    `{"result":false,"error":{"phone":"phone does not match the standard +DD (DDD) DDD-DD-DD"},"array":{"name":"Jane","phone":"123-456"}}`,
			observed:    observation{"formSubmit", metrics.AjaxHandled},
		},
		{
			name:        "Form-Submit-JSON",
			target:      "/robots.txt",
			contentType: "application/json",
			body:        `{"method":"formSubmit","data":{"name":"John5","phone":"+38 (067) 123-45-67"}}`,
			expected:    `{"result":false,"error":{"name":"name must not be a digit and no more than 64 characters"},"array":{"name":"John5","phone":"+38 (067) 123-45-67"}}`,
			observed:    observation{"formSubmit", metrics.AjaxHandled},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			a, o, _ := newTestApp(t, frontdesk.Testing)
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, tc.target, strings.NewReader(tc.body))
			if tc.contentType != "" {
				r.Header.Set("Content-Type", tc.contentType)
			}

			// Act
			a.ServeHTTP(w, r)

			// Assert
			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, "application/json", w.Header().Get("Content-Type"))
			require.JSONEq(t, tc.expected, w.Body.String())
			require.Equal(t, []observation{tc.observed}, o.ajax)
			require.Empty(t, o.routes)
		})
	}
}

func TestApplicationServeHTTPAjaxTooLarge(t *testing.T) {
	// Arrange
	a, _, b := newTestApp(t, frontdesk.Testing)
	w := httptest.NewRecorder()
	body := url.Values{"method": {"formSubmit"}, "data": {validForm}}.Encode()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Body = http.MaxBytesReader(w, r.Body, 16)

	// Act
	a.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"error":"Empty request!"}`, w.Body.String())
	require.Contains(t, b.String(), "unreadable AJAX body")
}
