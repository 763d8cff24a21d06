// Package auth carries the request user and decides whether they may
// manage quarx content.
package auth

import (
	"context"
	"net/http"
	"slices"
	"strings"
)

// User is the identity attached to a request.
type User struct {
	ID    string
	Roles []string
}

// HasRole reports whether u holds role, compared case-insensitively.
func (u User) HasRole(role string) bool {
	return slices.ContainsFunc(u.Roles, func(r string) bool {
		return strings.EqualFold(r, role)
	})
}

type userKey struct{}

// WithUser returns a context carrying u.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFrom returns the user carried by ctx, if any.
func UserFrom(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userKey{}).(User)
	return u, ok
}

// Gate decides whether the user in ctx may manage quarx content.
type Gate interface {
	Allows(ctx context.Context) bool
}

// RoleGate allows users holding any of its roles.
type RoleGate struct {
	roles []string
}

// NewRoleGate creates a gate admitting any of roles.
func NewRoleGate(roles ...string) *RoleGate {
	return &RoleGate{roles: roles}
}

func (g *RoleGate) Allows(ctx context.Context) bool {
	u, ok := UserFrom(ctx)
	if !ok {
		return false
	}
	for _, role := range g.roles {
		if u.HasRole(role) {
			return true
		}
	}
	return false
}

// GateFunc adapts a function to Gate.
type GateFunc func(ctx context.Context) bool

func (f GateFunc) Allows(ctx context.Context) bool {
	return f(ctx)
}

// TrustedHeaders returns middleware that reads the user from headers set by
// an authenticating proxy. Roles are comma separated. Requests without the
// user header pass through anonymous.
func TrustedHeaders(userHeader, rolesHeader string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(userHeader))
			if id == "" {
				next.ServeHTTP(w, r)
				return
			}

			user := User{ID: id}
			if rolesHeader != "" {
				for role := range strings.SplitSeq(r.Header.Get(rolesHeader), ",") {
					if role = strings.TrimSpace(role); role != "" {
						user.Roles = append(user.Roles, role)
					}
				}
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
