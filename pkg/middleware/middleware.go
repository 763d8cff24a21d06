// Package middleware provides composable http.Handler wrappers.
package middleware

import "net/http"

// System accumulates middleware and applies it to a handler.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type middleware struct {
	stack []func(http.Handler) http.Handler
}

// New creates an empty middleware stack.
func New() System {
	return &middleware{
		stack: []func(http.Handler) http.Handler{},
	}
}

// Use appends mw to the stack. The first middleware registered is outermost.
func (m *middleware) Use(mw func(http.Handler) http.Handler) {
	m.stack = append(m.stack, mw)
}

func (m *middleware) Apply(handler http.Handler) http.Handler {
	for i := len(m.stack) - 1; i >= 0; i-- {
		handler = m.stack[i](handler)
	}
	return handler
}
