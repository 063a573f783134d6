package template

import (
	"fmt"
	html "html/template"
	"io/fs"
	"path"
)

// Parser parses HTML templates with the functions provided.
// A Parser looks up templates in its fs.FS in the order provided,
// so earlier ones override later ones.
type Parser struct {
	fs  fs.FS
	fns html.FuncMap
}

// NewParser constructs a *Parser searching each fs.FS in order.
func NewParser(fss []fs.FS, opts ...ParserOptFn) *Parser {
	p := &Parser{fs: newMergeFS(fss...), fns: make(html.FuncMap)}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse parses the files found with the functions added previously.
// The first non-empty file path names the returned template.
func (p *Parser) Parse(fps ...string) (*html.Template, error) {
	files := make([]string, 0, len(fps))
	for _, fp := range fps {
		if fp != "" {
			files = append(files, fp)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w", ErrNoFiles)
	}

	if p.fs == nil {
		return nil, fmt.Errorf("%w: no filesystem to parse %s from", ErrNoFiles, files[0])
	}

	return html.New(path.Base(files[0])).Funcs(p.fns).ParseFS(p.fs, files...)
}
