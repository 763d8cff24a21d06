package widgets

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/JaimeStill/quarx/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a widgets repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "widgets"),
	}
}

func (r *repo) FindByUUID(ctx context.Context, id uuid.UUID) (*Widget, error) {
	q, args := singleQuery("UUID", id)

	w, err := repository.QueryOne(ctx, r.db, q, args, scanWidget)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &w, nil
}

func (r *repo) FindBySlug(ctx context.Context, slug string) (*Widget, error) {
	q, args := singleQuery("Slug", slug)

	w, err := repository.QueryOne(ctx, r.db, q, args, scanWidget)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &w, nil
}
