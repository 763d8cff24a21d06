// Package database manages the PostgreSQL connection pool used by the
// content repositories.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/JaimeStill/quarx/pkg/lifecycle"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// System owns the connection pool and its lifecycle.
type System interface {
	Connection() *sql.DB
	Start(lc *lifecycle.Coordinator) error
}

type database struct {
	conn       *sql.DB
	cfg        *Config
	migrations fs.FS
	logger     *slog.Logger
}

// New opens a pooled connection. The pool is verified during Start.
// When migrations is non-nil and cfg.AutoMigrate is set, pending migrations
// are applied during startup.
func New(cfg *Config, migrations fs.FS, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		conn:       db,
		cfg:        cfg,
		migrations: migrations,
		logger:     logger.With("system", "database"),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

func (d *database) Start(lc *lifecycle.Coordinator) error {
	d.logger.Info("starting database system", "host", d.cfg.Host, "name", d.cfg.Name)

	lc.OnStartup(func() {
		ctx, cancel := context.WithTimeout(lc.Context(), d.cfg.ConnTimeoutDuration())
		defer cancel()

		if err := d.conn.PingContext(ctx); err != nil {
			d.logger.Error("database ping failed", "error", err)
			return
		}

		if d.cfg.AutoMigrate && d.migrations != nil {
			if err := Migrate(d.conn, d.migrations, d.logger); err != nil {
				d.logger.Error("database migration failed", "error", err)
				return
			}
		}

		d.logger.Info("database connection established")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})

	return nil
}
