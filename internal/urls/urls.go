// Package urls builds absolute application URLs.
package urls

import "strings"

// Generator joins application-relative paths onto a base URL.
type Generator struct {
	base string
}

// New creates a Generator rooted at base. An empty base yields
// root-relative URLs.
func New(base string) *Generator {
	return &Generator{base: strings.TrimSuffix(base, "/")}
}

// To returns the URL for path. Leading slashes on path are ignored.
func (g *Generator) To(path string) string {
	return g.base + "/" + strings.TrimLeft(path, "/")
}
