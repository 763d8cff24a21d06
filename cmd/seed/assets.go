package main

import (
	"bytes"
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log"

	"github.com/JaimeStill/quarx/pkg/storage"
)

//go:embed seeds/assets
var assetFiles embed.FS

func init() {
	registerSeeder(&AssetSeeder{})
}

// AssetSeeder copies the embedded demo stylesheets and scripts into the
// asset store. Keys mirror the paths beneath seeds/assets.
type AssetSeeder struct {
	store storage.System
}

func (s *AssetSeeder) Name() string {
	return "assets"
}

func (s *AssetSeeder) Description() string {
	return "Writes demo stylesheets and scripts into the asset store"
}

// SetStore configures the asset store the seeder writes to.
func (s *AssetSeeder) SetStore(store storage.System) {
	s.store = store
}

// Seed writes every embedded asset. Files whose stored contents already
// match are left untouched. The transaction is not used.
func (s *AssetSeeder) Seed(ctx context.Context, _ *sql.Tx) error {
	if s.store == nil {
		return fmt.Errorf("asset store not configured")
	}

	root, err := fs.Sub(assetFiles, "seeds/assets")
	if err != nil {
		return fmt.Errorf("open embedded assets: %w", err)
	}

	return fs.WalkDir(root, ".", func(key string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		data, err := fs.ReadFile(root, key)
		if err != nil {
			return fmt.Errorf("read %s: %w", key, err)
		}

		unchanged, err := s.matches(ctx, key, data)
		if err != nil {
			return err
		}
		if unchanged {
			log.Printf("asset %s unchanged", key)
			return nil
		}

		if err := s.store.Store(ctx, key, data); err != nil {
			return fmt.Errorf("store %s: %w", key, err)
		}
		log.Printf("asset %s stored", key)
		return nil
	})
}

func (s *AssetSeeder) matches(ctx context.Context, key string, data []byte) (bool, error) {
	exists, err := s.store.Validate(ctx, key)
	if err != nil || !exists {
		return false, err
	}

	current, err := s.store.Retrieve(ctx, key)
	if err != nil {
		return false, fmt.Errorf("retrieve %s: %w", key, err)
	}
	return bytes.Equal(current, data), nil
}
