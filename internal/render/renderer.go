// Package render wraps the pongo2 template engine behind the small
// contract the generator needs: load a template from a directory,
// execute it against a namespace, and report load and render failures
// as distinct, categorized errors.
package render

import (
	"path/filepath"

	"github.com/flosch/pongo2/v6"

	zerrors "github.com/zpodfactory/zpodtg/internal/errors"
)

// Renderer renders templates from a single search directory.
//
// Undefined namespace keys resolve to empty output (pongo2's default),
// so templates referencing enrichment data that failed to fetch still
// render. Structural problems (missing template, syntax errors,
// execution failures) are hard errors wrapping ErrTemplate.
type Renderer struct {
	set *pongo2.TemplateSet
}

// New creates a renderer with its search path rooted at dir.
func New(dir string) (*Renderer, error) {
	loader, err := pongo2.NewLocalFileSystemLoader(dir)
	if err != nil {
		return nil, zerrors.Wrapf(zerrors.ErrTemplate, err, "initializing template loader")
	}
	return &Renderer{set: pongo2.NewSet("zpodtg", loader)}, nil
}

// Render loads the named template and executes it against the namespace.
// Output is returned verbatim, trailing newline included.
func (r *Renderer) Render(name string, ns map[string]any) (string, error) {
	tpl, err := r.set.FromFile(name)
	if err != nil {
		return "", zerrors.Wrapf(zerrors.ErrTemplate, err, "loading template")
	}

	out, err := tpl.Execute(pongo2.Context(ns))
	if err != nil {
		return "", zerrors.Wrapf(zerrors.ErrTemplate, err, "rendering template")
	}

	return out, nil
}

// RenderFile renders a template given its full path, using the file's
// directory as the search path (so {% include %} resolves siblings).
func RenderFile(path string, ns map[string]any) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerrors.Wrapf(zerrors.ErrTemplate, err, "resolving template path")
	}

	r, err := New(filepath.Dir(abs))
	if err != nil {
		return "", err
	}
	return r.Render(filepath.Base(abs), ns)
}
