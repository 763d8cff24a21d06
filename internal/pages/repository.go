package pages

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/JaimeStill/quarx/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a pages repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "pages"),
	}
}

func (r *repo) FindByID(ctx context.Context, id int64) (*Page, error) {
	q, args := byIDQuery(id)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanPage)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

// FindByURL returns the published page served at url.
func (r *repo) FindByURL(ctx context.Context, url string) (*Page, error) {
	q, args := publishedByURLQuery(url)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanPage)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}
