package links

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/quarx/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a links repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "links"),
	}
}

func (r *repo) ByMenu(ctx context.Context, menuID int64) ([]Link, error) {
	q, args := byMenuQuery(menuID)

	items, err := repository.QueryMany(ctx, r.db, q, args, scanLink)
	if err != nil {
		return nil, fmt.Errorf("query links for menu %d: %w", menuID, err)
	}
	return items, nil
}
