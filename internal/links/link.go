// Package links provides read access to menu links.
package links

import "time"

// Link is one entry of a menu. External links carry their own URL;
// internal links reference a page.
type Link struct {
	ID          int64     `json:"id"`
	MenuID      int64     `json:"menu_id"`
	Name        string    `json:"name"`
	External    bool      `json:"external"`
	ExternalURL *string   `json:"external_url,omitempty"`
	PageID      *int64    `json:"page_id,omitempty"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Href returns the external URL, or the empty string for internal links.
func (l Link) Href() string {
	if l.ExternalURL == nil {
		return ""
	}
	return *l.ExternalURL
}
