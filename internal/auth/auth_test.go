package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/quarx/internal/auth"
)

func TestRoleGate_Allows(t *testing.T) {
	gate := auth.NewRoleGate("admin", "editor")

	tests := []struct {
		name string
		ctx  context.Context
		want bool
	}{
		{"anonymous", context.Background(), false},
		{"no roles", auth.WithUser(context.Background(), auth.User{ID: "u1"}), false},
		{"other role", auth.WithUser(context.Background(), auth.User{ID: "u1", Roles: []string{"viewer"}}), false},
		{"admin", auth.WithUser(context.Background(), auth.User{ID: "u1", Roles: []string{"admin"}}), true},
		{"case insensitive", auth.WithUser(context.Background(), auth.User{ID: "u1", Roles: []string{"Editor"}}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gate.Allows(tt.ctx); got != tt.want {
				t.Errorf("Allows() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGateFunc(t *testing.T) {
	allow := auth.GateFunc(func(context.Context) bool { return true })
	if !allow.Allows(context.Background()) {
		t.Error("GateFunc did not delegate")
	}
}

func TestTrustedHeaders(t *testing.T) {
	var got auth.User
	var found bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = auth.UserFrom(r.Context())
	})
	wrapped := auth.TrustedHeaders("X-Forwarded-User", "X-Forwarded-Roles")(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-User", "ada")
	req.Header.Set("X-Forwarded-Roles", "admin, editor,,")
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	if !found {
		t.Fatal("user not attached to context")
	}
	if got.ID != "ada" {
		t.Errorf("ID = %q, want ada", got.ID)
	}
	if len(got.Roles) != 2 || got.Roles[0] != "admin" || got.Roles[1] != "editor" {
		t.Errorf("Roles = %v, want [admin editor]", got.Roles)
	}
}

func TestTrustedHeaders_Anonymous(t *testing.T) {
	var found bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = auth.UserFrom(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Roles", "admin")
	auth.TrustedHeaders("X-Forwarded-User", "X-Forwarded-Roles")(handler).ServeHTTP(httptest.NewRecorder(), req)

	if found {
		t.Error("roles without a user should not attach an identity")
	}
}
