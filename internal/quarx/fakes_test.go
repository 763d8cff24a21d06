package quarx_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/JaimeStill/quarx/internal/auth"
	"github.com/JaimeStill/quarx/internal/crypto"
	"github.com/JaimeStill/quarx/internal/flash"
	"github.com/JaimeStill/quarx/internal/links"
	"github.com/JaimeStill/quarx/internal/menus"
	"github.com/JaimeStill/quarx/internal/modules"
	"github.com/JaimeStill/quarx/internal/pages"
	"github.com/JaimeStill/quarx/internal/quarx"
	"github.com/JaimeStill/quarx/internal/urls"
	"github.com/JaimeStill/quarx/internal/widgets"
	"github.com/JaimeStill/quarx/pkg/storage"
	"github.com/JaimeStill/quarx/pkg/web"
	"github.com/google/uuid"
)

var (
	mainMenuID  = uuid.MustParse("6f1c2b1e-3d55-4b8e-9a37-0c4b9f6a1e01")
	bannerID    = uuid.MustParse("0c7d9d58-8f5a-4f8e-a3a1-6c1d2e3f4a02")
	missingID   = uuid.MustParse("00000000-0000-0000-0000-0000000000ff")
	externalURL = "https://example.com/docs?a=1&b=2"
	aboutPageID = int64(7)
	goneID      = int64(99)
)

type fakeMenus struct{ items map[uuid.UUID]menus.Menu }

func (f fakeMenus) FindByUUID(_ context.Context, id uuid.UUID) (*menus.Menu, error) {
	m, ok := f.items[id]
	if !ok {
		return nil, menus.ErrNotFound
	}
	return &m, nil
}

func (f fakeMenus) FindBySlug(_ context.Context, slug string) (*menus.Menu, error) {
	for _, m := range f.items {
		if m.Slug == slug {
			return &m, nil
		}
	}
	return nil, menus.ErrNotFound
}

func (f fakeMenus) List(context.Context) ([]menus.Menu, error) {
	out := make([]menus.Menu, 0, len(f.items))
	for _, m := range f.items {
		out = append(out, m)
	}
	return out, nil
}

type fakeLinks struct{ byMenu map[int64][]links.Link }

func (f fakeLinks) ByMenu(_ context.Context, menuID int64) ([]links.Link, error) {
	return f.byMenu[menuID], nil
}

type fakePages struct{ items map[int64]pages.Page }

func (f fakePages) FindByID(_ context.Context, id int64) (*pages.Page, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, pages.ErrNotFound
	}
	return &p, nil
}

func (f fakePages) FindByURL(_ context.Context, url string) (*pages.Page, error) {
	for _, p := range f.items {
		if p.URL == url {
			return &p, nil
		}
	}
	return nil, pages.ErrNotFound
}

type fakeWidgets struct{ items map[uuid.UUID]widgets.Widget }

func (f fakeWidgets) FindByUUID(_ context.Context, id uuid.UUID) (*widgets.Widget, error) {
	w, ok := f.items[id]
	if !ok {
		return nil, widgets.ErrNotFound
	}
	return &w, nil
}

func (f fakeWidgets) FindBySlug(context.Context, string) (*widgets.Widget, error) {
	return nil, widgets.ErrNotFound
}

func testDomain() quarx.Domain {
	return quarx.Domain{
		Menus: fakeMenus{items: map[uuid.UUID]menus.Menu{
			mainMenuID: {ID: 3, UUID: mainMenuID, Name: "Main", Slug: "main"},
		}},
		Links: fakeLinks{byMenu: map[int64][]links.Link{
			3: {
				{ID: 1, MenuID: 3, Name: "Docs", External: true, ExternalURL: &externalURL, Position: 0},
				{ID: 2, MenuID: 3, Name: "About <us>", PageID: &aboutPageID, Position: 1},
				{ID: 3, MenuID: 3, Name: "Gone", PageID: &goneID, Position: 2},
			},
		}},
		Pages: fakePages{items: map[int64]pages.Page{
			aboutPageID: {ID: aboutPageID, Title: "About", URL: "about-us", IsPublished: true},
		}},
		Widgets: fakeWidgets{items: map[uuid.UUID]widgets.Widget{
			bannerID: {ID: 12, UUID: bannerID, Name: "Banner", Slug: "banner", Content: "<p>Hello</p>"},
		}},
	}
}

// fixture wires a Service against temp directories.
type fixture struct {
	svc       *quarx.Service
	sealer    *crypto.Sealer
	assetDir  string
	moduleDir string
	logs      *bytes.Buffer
}

var allowAll = auth.GateFunc(func(context.Context) bool { return true })
var denyAll = auth.GateFunc(func(context.Context) bool { return false })

func newFixture(t *testing.T, gate auth.Gate) *fixture {
	t.Helper()
	return newMountedFixture(t, gate, "")
}

// newMountedFixture wires a Service whose handler is mounted at basePath.
func newMountedFixture(t *testing.T, gate auth.Gate, basePath string) *fixture {
	t.Helper()
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
	root := t.TempDir()

	assetDir := filepath.Join(root, "public")
	moduleDir := filepath.Join(root, "modules")
	configDir := filepath.Join(root, "config")

	writeFile(t, filepath.Join(assetDir, "css", "app.css"), "body{}")
	writeFile(t, filepath.Join(assetDir, "big.bin"), "0123456789abcdef")
	writeFile(t, filepath.Join(moduleDir, "Blog", "Assets", "js", "blog.js"), "console.log(1)")
	writeFile(t, filepath.Join(moduleDir, "Blog", modules.ConfigFile), "[menu]\nurl = \"blog\"\n")
	writeFile(t, filepath.Join(configDir, "quarx.toml"), "theme = \"default\"\n")
	writeFile(t, filepath.Join(root, "secret.txt"), "top secret")

	sealer, err := crypto.New("0123456789abcdef-test")
	if err != nil {
		t.Fatal(err)
	}

	storeCfg := &storage.Config{BasePath: assetDir, MaxAssetSize: "10B"}
	if err := storeCfg.Finalize(nil); err != nil {
		t.Fatal(err)
	}
	store, err := storage.New(storeCfg, logger)
	if err != nil {
		t.Fatal(err)
	}

	gen := urls.New("http://example.com")
	views, err := web.NewViews(fstest.MapFS{
		"menus/nav.html": {Data: []byte(`<nav data-count="{{ len .Links }}">{{ .LinksAsHTML }}</nav>`)},
	}, quarx.TemplateFuncs(gen, basePath))
	if err != nil {
		t.Fatal(err)
	}

	svc := quarx.New(quarx.Dependencies{
		BasePath: basePath,
		Domain:   testDomain(),
		Gate:     gate,
		Flash:    flash.NewCookieStore(),
		Crypto:   sealer,
		URLs:     gen,
		Views:    views,
		Modules:  modules.NewLoader(moduleDir, configDir, logger),
		Assets:   store,
	}, logger)

	return &fixture{svc: svc, sealer: sealer, assetDir: assetDir, moduleDir: moduleDir, logs: logs}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
