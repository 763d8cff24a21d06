package menus

import (
	"context"

	"github.com/google/uuid"
)

// System defines read operations on menus.
type System interface {
	FindByUUID(ctx context.Context, id uuid.UUID) (*Menu, error)
	FindBySlug(ctx context.Context, slug string) (*Menu, error)
	List(ctx context.Context) ([]Menu, error)
}
