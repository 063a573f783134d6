package app

import (
	"io/fs"
	"net/url"

	"github.com/xy-planning-network/frontdesk"
	"github.com/xy-planning-network/frontdesk/http/template"
)

// Metadata describes the web app to its views.
type Metadata struct {
	Title       string
	Description string
}

// NewParser constructs the *template.Parser for Views.
// Templates in fss override those in Views at the same path.
//
// These functions are available in a template:
//
//   - "env"
//   - "title" returns m.Title
//   - "description" returns m.Description
//   - "metadata" returns m
//   - "nonce"
//   - "rootUrl"
//   - "titleCase"
//   - "diagnostics" reports whether env prints request details
func NewParser(env frontdesk.Environment, m Metadata, root *url.URL, fss ...fs.FS) *template.Parser {
	p := template.NewParser(append(fss, Views))
	p = p.AddFn(template.Env(env))
	p = p.AddFn("title", func() string { return m.Title })
	p = p.AddFn("description", func() string { return m.Description })
	p = p.AddFn("metadata", func() Metadata { return m })
	p = p.AddFn(template.Nonce())
	p = p.AddFn(template.RootUrl(root))
	p = p.AddFn(template.TitleCase())
	p = p.AddFn("diagnostics", env.DiagnosticsEnabled)

	return p
}
