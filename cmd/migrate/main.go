// Package main applies or reverts the embedded schema migrations.
package main

import (
	"database/sql"
	"flag"
	"log"
	"os"

	"github.com/JaimeStill/quarx/migrations"
	"github.com/JaimeStill/quarx/pkg/database"
	"github.com/JaimeStill/quarx/pkg/logging"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const EnvDatabaseDSN = "DATABASE_DSN"

func main() {
	var (
		dsn  = flag.String("dsn", "", "Database connection string")
		down = flag.Int("down", 0, "Number of migrations to revert (0 applies all pending)")
	)
	flag.Parse()

	if *dsn == "" {
		*dsn = os.Getenv(EnvDatabaseDSN)
	}
	if *dsn == "" {
		log.Fatalf("database connection string required: use -dsn flag or %s env var", EnvDatabaseDSN)
	}

	logger := logging.New(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatText})

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if *down > 0 {
		if err := database.Rollback(db, migrations.FS, *down, logger); err != nil {
			log.Fatalf("rollback failed: %v", err)
		}
		return
	}

	if err := database.Migrate(db, migrations.FS, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}
