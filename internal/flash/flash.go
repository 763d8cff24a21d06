// Package flash stores one-time notifications for the next rendered page.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
)

// CookieName is the cookie carrying the pending notification.
const CookieName = "quarx_flash"

// DefaultSeverity applies when a notification names none.
const DefaultSeverity = "info"

// Notice is a pending notification. Type holds the alert class, such as
// "alert-success".
type Notice struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Store persists notices between requests.
type Store interface {
	Put(w http.ResponseWriter, r *http.Request, notice Notice)
	Pop(w http.ResponseWriter, r *http.Request) (Notice, bool)
}

// AlertClass returns the alert class for severity.
func AlertClass(severity string) string {
	severity = strings.TrimSpace(severity)
	if severity == "" {
		severity = DefaultSeverity
	}
	return "alert-" + severity
}

// CookieStore keeps the notice in a base64url JSON cookie.
type CookieStore struct{}

// NewCookieStore creates a cookie-backed Store.
func NewCookieStore() *CookieStore {
	return &CookieStore{}
}

// Put writes notice, replacing any pending one.
func (CookieStore) Put(w http.ResponseWriter, r *http.Request, notice Notice) {
	payload, err := json.Marshal(notice)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop reads the pending notice and expires the cookie.
func (CookieStore) Pop(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	return decode(cookie.Value)
}

func decode(raw string) (Notice, bool) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(decoded, &notice); err != nil {
		return Notice{}, false
	}
	if notice.Message == "" {
		return Notice{}, false
	}
	return notice, true
}

func isHTTPS(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
