package main

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
)

//go:embed seeds/*.toml
var seedFiles embed.FS

func init() {
	registerSeeder(&ContentSeeder{})
}

// ContentSeedData represents the TOML structure for content seed files.
type ContentSeedData struct {
	Pages   []PageSeed   `toml:"pages"`
	Menus   []MenuSeed   `toml:"menus"`
	Widgets []WidgetSeed `toml:"widgets"`
}

type PageSeed struct {
	UUID      uuid.UUID `toml:"uuid"`
	Title     string    `toml:"title"`
	URL       string    `toml:"url"`
	Entry     string    `toml:"entry"`
	Published bool      `toml:"published"`
}

type MenuSeed struct {
	UUID  uuid.UUID  `toml:"uuid"`
	Name  string     `toml:"name"`
	Slug  string     `toml:"slug"`
	Links []LinkSeed `toml:"links"`
}

// LinkSeed targets a page by its url, or an external address when
// ExternalURL is set.
type LinkSeed struct {
	Name        string `toml:"name"`
	Page        string `toml:"page"`
	ExternalURL string `toml:"external_url"`
	Position    int    `toml:"position"`
}

type WidgetSeed struct {
	UUID    uuid.UUID `toml:"uuid"`
	Name    string    `toml:"name"`
	Slug    string    `toml:"slug"`
	Content string    `toml:"content"`
}

// ContentSeeder implements Seeder for pages, menus, links and widgets.
// It loads seed data from an embedded file or an external file path.
type ContentSeeder struct {
	file string
}

func (s *ContentSeeder) Name() string {
	return "content"
}

func (s *ContentSeeder) Description() string {
	return "Seeds demo pages, menus with their links, and widgets"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *ContentSeeder) SetFile(path string) {
	s.file = path
}

// Seed loads content data and upserts it. Re-running updates existing rows.
func (s *ContentSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := s.loadSeedData()
	if err != nil {
		return err
	}

	pageIDs := make(map[string]int64, len(data.Pages))
	for _, p := range data.Pages {
		id, err := savePage(ctx, tx, p)
		if err != nil {
			return fmt.Errorf("save page %s: %w", p.URL, err)
		}
		pageIDs[p.URL] = id
	}

	for _, m := range data.Menus {
		menuID, err := saveMenu(ctx, tx, m)
		if err != nil {
			return fmt.Errorf("save menu %s: %w", m.Slug, err)
		}

		for _, l := range m.Links {
			if err := saveLink(ctx, tx, menuID, l, pageIDs); err != nil {
				return fmt.Errorf("save link %s for menu %s: %w", l.Name, m.Slug, err)
			}
		}
	}

	for _, w := range data.Widgets {
		if err := saveWidget(ctx, tx, w); err != nil {
			return fmt.Errorf("save widget %s: %w", w.Slug, err)
		}
	}

	return nil
}

func (s *ContentSeeder) loadSeedData() (*ContentSeedData, error) {
	var content []byte
	var err error

	if s.file != "" {
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile("seeds/content.toml")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	return parseContent(content)
}

func parseContent(content []byte) (*ContentSeedData, error) {
	var data ContentSeedData
	if err := toml.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	pages := make(map[string]bool, len(data.Pages))
	for _, p := range data.Pages {
		pages[p.URL] = true
	}
	for _, m := range data.Menus {
		for _, l := range m.Links {
			if l.ExternalURL == "" && !pages[l.Page] {
				return nil, fmt.Errorf("menu %s link %s: unknown page %q", m.Slug, l.Name, l.Page)
			}
		}
	}

	return &data, nil
}

func savePage(ctx context.Context, tx *sql.Tx, p PageSeed) (int64, error) {
	const query = `
		INSERT INTO pages (uuid, title, url, entry, is_published)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (url) DO UPDATE SET
			title = EXCLUDED.title,
			entry = EXCLUDED.entry,
			is_published = EXCLUDED.is_published,
			updated_at = NOW()
		RETURNING id`

	var id int64
	err := tx.QueryRowContext(ctx, query, p.UUID, p.Title, p.URL, p.Entry, p.Published).Scan(&id)
	return id, err
}

func saveMenu(ctx context.Context, tx *sql.Tx, m MenuSeed) (int64, error) {
	const query = `
		INSERT INTO menus (uuid, name, slug)
		VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			updated_at = NOW()
		RETURNING id`

	var id int64
	err := tx.QueryRowContext(ctx, query, m.UUID, m.Name, m.Slug).Scan(&id)
	return id, err
}

func saveLink(ctx context.Context, tx *sql.Tx, menuID int64, l LinkSeed, pageIDs map[string]int64) error {
	const query = `
		INSERT INTO links (menu_id, name, external, external_url, page_id, position)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (menu_id, name) DO UPDATE SET
			external = EXCLUDED.external,
			external_url = EXCLUDED.external_url,
			page_id = EXCLUDED.page_id,
			position = EXCLUDED.position,
			updated_at = NOW()`

	var (
		externalURL *string
		pageID      *int64
	)
	if l.ExternalURL != "" {
		externalURL = &l.ExternalURL
	} else {
		id := pageIDs[l.Page]
		pageID = &id
	}

	_, err := tx.ExecContext(ctx, query, menuID, l.Name, externalURL != nil, externalURL, pageID, l.Position)
	return err
}

func saveWidget(ctx context.Context, tx *sql.Tx, w WidgetSeed) error {
	const query = `
		INSERT INTO widgets (uuid, name, slug, content)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			content = EXCLUDED.content,
			updated_at = NOW()`

	_, err := tx.ExecContext(ctx, query, w.UUID, w.Name, w.Slug, w.Content)
	return err
}
