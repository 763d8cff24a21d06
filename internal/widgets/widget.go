// Package widgets provides read access to reusable content blocks.
package widgets

import (
	"time"

	"github.com/google/uuid"
)

// Widget is a named block of trusted HTML content.
type Widget struct {
	ID        int64     `json:"id"`
	UUID      uuid.UUID `json:"uuid"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
