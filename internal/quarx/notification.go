package quarx

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/JaimeStill/quarx/internal/flash"
)

// Notification stores message for the next rendered page with the alert
// class "alert-<severity>". An empty severity means "info".
func (s *Service) Notification(w http.ResponseWriter, r *http.Request, message, severity string) {
	s.flash.Put(w, r, flash.Notice{
		Message: message,
		Type:    flash.AlertClass(severity),
	})
}

// PendingNotification consumes the stored notification and renders it as an
// alert. It returns the empty string when none is pending.
func (s *Service) PendingNotification(w http.ResponseWriter, r *http.Request) template.HTML {
	notice, ok := s.flash.Pop(w, r)
	if !ok {
		return ""
	}
	return template.HTML(fmt.Sprintf(
		`<div class="alert %s">%s</div>`,
		template.HTMLEscapeString(notice.Type),
		template.HTMLEscapeString(notice.Message),
	))
}
