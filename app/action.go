package app

import (
	"embed"
	"fmt"
	"net/http"
	"runtime"
	"sort"
	"strings"

	"github.com/xy-planning-network/frontdesk"
	"github.com/xy-planning-network/frontdesk/http/resp"
)

// Views holds the templates the default actions render.
//
//go:embed tmpl/*
var Views embed.FS

const (
	LayoutView = "tmpl/layout.tmpl"
	ErrorView  = "tmpl/error.tmpl"
	IndexView  = "tmpl/index.tmpl"
	DebugView  = "tmpl/debug.tmpl"
)

const robotsTxt = "User-Agent: *\nDisallow: /"

// defaultRoutes binds the actions every Application serves.
// debug/index is kept as an alias for Application/debug.
func (a *Application) defaultRoutes() map[string]map[string]Action {
	return map[string]map[string]Action{
		DefaultController: {
			DefaultAction: a.index,
			"debug":       a.debug,
		},
		"robots.txt": {DefaultAction: a.robots},
		"debug":      {DefaultAction: a.debug},
	}
}

func (a *Application) index(w http.ResponseWriter, r *http.Request) error {
	return a.responder.Html(w, r, resp.Tmpls(IndexView))
}

func (a *Application) robots(w http.ResponseWriter, r *http.Request) error {
	return a.responder.Text(w, r, resp.Data(robotsTxt))
}

// A Format is a representation the debug view answers with.
type Format string

const (
	FormatHTML Format = "html"
	FormatJSON Format = "json"
)

func (f Format) String() string { return string(f) }

func (f Format) Valid() error {
	switch f {
	case FormatHTML, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q is not a Format", frontdesk.ErrNotValid, string(f))
	}
}

type debugQuery struct {
	Format Format `schema:"format" validate:"omitempty,enum"`
}

func (a *Application) debug(w http.ResponseWriter, r *http.Request) error {
	var q debugQuery
	if err := a.parser.ParseQueryParams(r.URL.Query(), &q); err != nil {
		return a.responder.Text(w, r, resp.Code(http.StatusBadRequest), resp.Data("format must be html or json"))
	}

	d := a.diagnose(r)
	if q.Format == FormatJSON {
		return a.responder.Json(w, r, resp.Data(d))
	}

	return a.responder.Html(w, r, resp.Tmpls(DebugView), resp.Data(d))
}

// Diagnostics describes the request the debug view answers.
// Only Environment and Route are filled outside environments with diagnostics enabled.
type Diagnostics struct {
	Environment string            `json:"environment"`
	Route       RouteRequest      `json:"route"`
	Method      string            `json:"method,omitempty"`
	URI         string            `json:"uri,omitempty"`
	RequestID   string            `json:"requestId,omitempty"`
	IPAddress   string            `json:"ipAddress,omitempty"`
	Headers     []Header          `json:"headers,omitempty"`
	GoVersion   string            `json:"goVersion,omitempty"`
	Runtime     map[string]string `json:"runtime,omitempty"`
}

// A Header is one request header, its values joined.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

var maskedHeaders = map[string]bool{
	"Authorization":       true,
	"Cookie":              true,
	"Proxy-Authorization": true,
}

func (a *Application) diagnose(r *http.Request) Diagnostics {
	d := Diagnostics{Environment: a.env.String(), Route: RouteFromRequest(r)}
	if !a.env.DiagnosticsEnabled() {
		return d
	}

	d.Method = r.Method
	d.URI = r.URL.RequestURI()
	d.RequestID, _ = r.Context().Value(frontdesk.RequestIDKey).(string)
	d.IPAddress, _ = r.Context().Value(frontdesk.IpAddrKey).(string)
	d.GoVersion = runtime.Version()
	d.Runtime = map[string]string{"os": runtime.GOOS, "arch": runtime.GOARCH}

	names := make([]string, 0, len(r.Header))
	for name := range r.Header {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		val := strings.Join(r.Header.Values(name), ", ")
		if maskedHeaders[name] {
			val = frontdesk.LogMaskVal
		}

		d.Headers = append(d.Headers, Header{Name: name, Value: val})
	}

	return d
}
