// Package web renders named html/template views into HTML fragments.
// Views are parsed once at construction so template errors surface at
// startup rather than on first request.
package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"strings"
)

// ErrViewNotFound indicates no view is registered under the requested name.
var ErrViewNotFound = errors.New("web: view not found")

// Extension is the file extension of view templates.
const Extension = ".html"

// Views holds pre-parsed view templates keyed by dotted name.
// The file "menus/main.html" is registered as "menus.main".
type Views struct {
	views map[string]*template.Template
	funcs template.FuncMap
}

// NewViews parses every view beneath fsys. A nil fsys yields an empty set.
func NewViews(fsys fs.FS, funcs template.FuncMap) (*Views, error) {
	v := &Views{
		views: make(map[string]*template.Template),
		funcs: funcs,
	}
	if fsys == nil {
		return v, nil
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != Extension {
			return nil
		}

		src, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read view %s: %w", p, err)
		}

		name := ViewName(p)
		t, err := template.New(name).Funcs(funcs).Parse(string(src))
		if err != nil {
			return fmt.Errorf("parse view %s: %w", p, err)
		}
		v.views[name] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Has reports whether name is a registered view.
func (v *Views) Has(name string) bool {
	_, ok := v.views[name]
	return ok
}

// Len returns the number of registered views.
func (v *Views) Len() int {
	return len(v.views)
}

// Render executes the named view with data.
func (v *Views) Render(name string, data any) (template.HTML, error) {
	t, ok := v.views[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrViewNotFound, name)
	}
	return execute(t, data)
}

// RenderFile parses and executes the template file at filename. It is used
// for views registered at runtime by path rather than by name.
func (v *Views) RenderFile(filename string, data any) (template.HTML, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("read view %s: %w", filename, err)
	}

	t, err := template.New(path.Base(filename)).Funcs(v.funcs).Parse(string(src))
	if err != nil {
		return "", fmt.Errorf("parse view %s: %w", filename, err)
	}
	return execute(t, data)
}

// ViewName converts a slash-separated view path into its dotted name.
func ViewName(p string) string {
	trimmed := strings.TrimSuffix(p, Extension)
	return strings.ReplaceAll(trimmed, "/", ".")
}

func execute(t *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute view %s: %w", t.Name(), err)
	}
	return template.HTML(buf.String()), nil
}
