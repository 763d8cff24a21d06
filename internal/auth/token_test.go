package auth_test

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JaimeStill/quarx/internal/auth"
	"github.com/golang-jwt/jwt/v5"
)

func newVerifier(t *testing.T, secret, issuer string) *auth.TokenVerifier {
	t.Helper()
	v, err := auth.NewTokenVerifier([]byte(secret), issuer)
	if err != nil {
		t.Fatalf("NewTokenVerifier() failed: %v", err)
	}
	return v
}

func claims(sub string, ttl time.Duration, roles ...string) auth.Claims {
	return auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		Roles: roles,
	}
}

func TestNewTokenVerifier_RequiresSecret(t *testing.T) {
	if _, err := auth.NewTokenVerifier(nil, ""); err == nil {
		t.Error("NewTokenVerifier(nil) succeeded, want error")
	}
}

func TestTokenVerifier_Verify(t *testing.T) {
	v := newVerifier(t, "shared-secret", "quarx")

	token, err := v.Sign(claims("u1", time.Hour, "admin"))
	if err != nil {
		t.Fatalf("Sign() failed: %v", err)
	}

	user, err := v.Verify(token)
	if err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
	if user.ID != "u1" || !user.HasRole("admin") {
		t.Errorf("Verify() = %+v, want u1 with admin", user)
	}
}

func TestTokenVerifier_Rejects(t *testing.T) {
	v := newVerifier(t, "shared-secret", "quarx")
	other := newVerifier(t, "other-secret", "quarx")
	foreign := newVerifier(t, "shared-secret", "elsewhere")

	expired, _ := v.Sign(claims("u1", -time.Minute))
	wrongKey, _ := other.Sign(claims("u1", time.Hour))
	wrongIssuer, _ := foreign.Sign(claims("u1", time.Hour))
	noSubject, _ := v.Sign(claims("", time.Hour))

	tests := map[string]string{
		"expired":      expired,
		"wrong key":    wrongKey,
		"wrong issuer": wrongIssuer,
		"no subject":   noSubject,
		"garbage":      "not.a.token",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := v.Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
				t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestBearerTokens(t *testing.T) {
	v := newVerifier(t, "shared-secret", "")
	valid, _ := v.Sign(claims("u1", time.Hour, "editor"))

	var got auth.User
	var found bool
	handler := auth.BearerTokens(v, slog.New(slog.DiscardHandler))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = auth.UserFrom(r.Context())
	}))

	tests := []struct {
		name   string
		header string
		wantID string
	}{
		{"valid", "Bearer " + valid, "u1"},
		{"missing", "", ""},
		{"wrong scheme", "Basic " + valid, ""},
		{"invalid", "Bearer nope", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found = auth.User{}, false
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if tt.wantID == "" {
				if found {
					t.Errorf("user = %+v, want anonymous", got)
				}
				return
			}
			if !found || got.ID != tt.wantID {
				t.Errorf("user = %+v (found %v), want %s", got, found, tt.wantID)
			}
		})
	}
}
