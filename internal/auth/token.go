package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken indicates a bearer token that failed verification.
var ErrInvalidToken = errors.New("auth: invalid bearer token")

// Claims is the bearer token payload. The subject is the user id.
type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles,omitempty"`
}

// TokenVerifier checks HS256 bearer tokens signed with a shared secret.
type TokenVerifier struct {
	secret []byte
	issuer string
}

// NewTokenVerifier creates a verifier. An empty issuer accepts any issuer.
func NewTokenVerifier(secret []byte, issuer string) (*TokenVerifier, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("token secret required")
	}
	return &TokenVerifier{secret: secret, issuer: issuer}, nil
}

// Verify parses token and returns the user it identifies.
func (v *TokenVerifier) Verify(token string) (User, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return User{}, fmt.Errorf("%w: subject required", ErrInvalidToken)
	}
	return User{ID: claims.Subject, Roles: claims.Roles}, nil
}

// Sign issues a token for claims. Used by tooling and tests.
func (v *TokenVerifier) Sign(claims Claims) (string, error) {
	if v.issuer != "" && claims.Issuer == "" {
		claims.Issuer = v.issuer
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// BearerTokens returns middleware that resolves the user from an
// "Authorization: Bearer" header. Requests with a missing or invalid token
// pass through anonymous; an existing user on the context is kept.
func BearerTokens(v *TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserFrom(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := v.Verify(strings.TrimSpace(token))
			if err != nil {
				logger.Debug("bearer token rejected", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
