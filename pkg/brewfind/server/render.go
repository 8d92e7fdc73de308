package server

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates/*.html
var templateFiles embed.FS

type renderer struct {
	set *pongo2.TemplateSet
}

func newRenderer() (*renderer, error) {
	files, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	return &renderer{
		set: pongo2.NewSet("brewfind", pongo2.NewFSLoader(files)),
	}, nil
}

// render executes the named template into a buffer so that a failing
// template never leaves a half written page behind.
func (p *renderer) render(w http.ResponseWriter, status int, name string, data pongo2.Context) error {
	tmpl, err := p.set.FromCache(name)
	if err != nil {
		return fmt.Errorf("load template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(data, &buf); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}
