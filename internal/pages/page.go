// Package pages provides read access to content pages.
package pages

import (
	"time"

	"github.com/google/uuid"
)

// Page is a routable content page.
type Page struct {
	ID          int64     `json:"id"`
	UUID        uuid.UUID `json:"uuid"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Entry       string    `json:"entry"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
