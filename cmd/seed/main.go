// Package main seeds the content database with demo pages, menus, links
// and widgets, and the asset store with demo stylesheets and scripts.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/JaimeStill/quarx/pkg/storage"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	EnvDatabaseDSN = "DATABASE_DSN"
	EnvStoragePath = "STORAGE_BASE_PATH"
)

func main() {
	var (
		dsn     = flag.String("dsn", "", "Database connection string")
		all     = flag.Bool("all", false, "Run all seeders")
		content = flag.Bool("content", false, "Seed pages, menus, links and widgets")
		assets  = flag.Bool("assets", false, "Seed demo assets into the asset store")
		store   = flag.String("storage", "", "Asset store base path (default $STORAGE_BASE_PATH or public)")
		file    = flag.String("file", "", "External seed file (overrides embedded)")
		list    = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	ctx := context.Background()

	if *all || *assets {
		if err := configureAssets(*store); err != nil {
			log.Fatalf("failed to open asset store: %v", err)
		}
	}

	if *assets && !*all {
		seeder, _ := getSeeder("assets")
		if err := seeder.Seed(ctx, nil); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("assets seeded successfully")
		return
	}

	if *dsn == "" {
		*dsn = os.Getenv(EnvDatabaseDSN)
	}
	if *dsn == "" {
		log.Fatalf("database connection string required: use -dsn flag or %s env var", EnvDatabaseDSN)
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	switch {
	case *all:
		if err := runAllSeeders(ctx, db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("all seeders completed successfully")

	case *content:
		if *file != "" {
			if seeder, ok := getSeeder("content"); ok {
				seeder.(*ContentSeeder).SetFile(*file)
			}
		}
		if err := runSeeder(ctx, db, "content"); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("content seeded successfully")

	default:
		fmt.Println("usage: seed -dsn <connection-string> [-all|-content|-assets] [-file <path>] [-storage <path>] [-list]")
		flag.PrintDefaults()
	}
}

func configureAssets(basePath string) error {
	if basePath == "" {
		basePath = os.Getenv(EnvStoragePath)
	}
	if basePath == "" {
		basePath = "public"
	}

	store, err := storage.New(&storage.Config{BasePath: basePath}, slog.Default())
	if err != nil {
		return err
	}

	seeder, _ := getSeeder("assets")
	seeder.(*AssetSeeder).SetStore(store)
	return nil
}
