package widgets

import (
	"context"

	"github.com/google/uuid"
)

// System defines read operations on widgets.
type System interface {
	FindByUUID(ctx context.Context, id uuid.UUID) (*Widget, error)
	FindBySlug(ctx context.Context, slug string) (*Widget, error)
}
