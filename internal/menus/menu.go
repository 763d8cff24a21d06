// Package menus provides read access to navigation menus.
package menus

import (
	"time"

	"github.com/google/uuid"
)

// Menu is a named, ordered collection of links.
type Menu struct {
	ID        int64     `json:"id"`
	UUID      uuid.UUID `json:"uuid"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
