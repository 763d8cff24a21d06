package quarx

import (
	"html/template"
	"strings"

	"github.com/JaimeStill/quarx/internal/modules"
	"github.com/JaimeStill/quarx/internal/urls"
)

// ConvertToURL lowercases ASCII letters in s, turns spaces into hyphens and
// drops every character outside [A-Za-z0-9-]. Non-ASCII letters are dropped
// rather than case-mapped, so "İstanbul" becomes "stanbul".
func ConvertToURL(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == ' ' || r == '-':
			b.WriteByte('-')
		case 'A' <= r && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case ('a' <= r && r <= 'z') || ('0' <= r && r <= '9'):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ConvertToURL is the service form of the package function.
func (s *Service) ConvertToURL(str string) string {
	return ConvertToURL(str)
}

// TemplateFuncs returns helpers available to quarx views. route builds URLs
// beneath basePath, the quarx mount prefix.
func TemplateFuncs(gen *urls.Generator, basePath string) template.FuncMap {
	segment := routeSegment(basePath)
	route := func(p string) string {
		return gen.To(segment + "/" + strings.TrimLeft(p, "/"))
	}
	return template.FuncMap{
		"url":          gen.To,
		"route":        route,
		"ucfirst":      modules.Ucfirst,
		"convertToURL": ConvertToURL,
	}
}
