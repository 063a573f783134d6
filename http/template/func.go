package template

import (
	html "html/template"
	"net/url"

	"github.com/google/uuid"
	"github.com/xy-planning-network/frontdesk"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AddFn includes the named function in a copy of the *Parser's function map,
// returning the copy.
func (p *Parser) AddFn(name string, fn any) *Parser {
	fns := make(html.FuncMap, len(p.fns)+1)
	for k, v := range p.fns {
		fns[k] = v
	}
	fns[name] = fn

	return &Parser{fs: p.fs, fns: fns}
}

// Env encloses some string representing an environment.
// It returns "env" as the name of the function for convenient passing to a template.FuncMap
// and returns a function returning the enclosed value when called.
func Env(e frontdesk.Environment) (string, func() string) {
	return "env", func() string { return e.String() }
}

// Nonce returns "nonce" as the name of the function for convenient passing to a template.FuncMap
// and returns a function generating a uuid.
func Nonce() (string, func() string) {
	return "nonce", func() string { return uuid.NewString() }
}

// RootUrl encloses the *url.URL representing the base URL of the web app.
// It returns "rootUrl" as the name of the function for convenient passing to a template.FuncMap
// and returns a function returning its *url.URL.String().
// If u is nil, that function will always return an empty string.
func RootUrl(u *url.URL) (string, func() string) {
	if u == nil {
		return "rootUrl", func() string { return "" }
	}

	s := u.String()
	return "rootUrl", func() string { return s }
}

// TitleCase returns "titleCase" as the name of the function for convenient passing to a template.FuncMap
// and returns a function converting a string to English title case.
func TitleCase() (string, func(string) string) {
	return "titleCase", func(s string) string { return cases.Title(language.English).String(s) }
}
