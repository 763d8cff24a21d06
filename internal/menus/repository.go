package menus

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/quarx/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a menus repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "menus"),
	}
}

func (r *repo) FindByUUID(ctx context.Context, id uuid.UUID) (*Menu, error) {
	q, args := singleQuery("UUID", id)

	m, err := repository.QueryOne(ctx, r.db, q, args, scanMenu)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &m, nil
}

func (r *repo) FindBySlug(ctx context.Context, slug string) (*Menu, error) {
	q, args := singleQuery("Slug", slug)

	m, err := repository.QueryOne(ctx, r.db, q, args, scanMenu)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &m, nil
}

func (r *repo) List(ctx context.Context) ([]Menu, error) {
	q, args := listQuery()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanMenu)
	if err != nil {
		return nil, fmt.Errorf("query menus: %w", err)
	}
	return items, nil
}
