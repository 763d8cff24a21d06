package quarx_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JaimeStill/quarx/internal/modules"
	"github.com/JaimeStill/quarx/internal/quarx"
	"github.com/JaimeStill/quarx/pkg/web"
)

func tokens(t *testing.T, rawURL, prefix string) (string, string) {
	t.Helper()
	rest, ok := strings.CutPrefix(rawURL, prefix)
	if !ok {
		t.Fatalf("URL %q does not start with %q", rawURL, prefix)
	}
	rest, _, _ = strings.Cut(rest, "?")
	parts := strings.Split(strings.TrimSuffix(rest, "/"), "/")
	if len(parts) != 2 {
		t.Fatalf("URL %q has %d token segments, want 2", rawURL, len(parts))
	}
	return parts[0], parts[1]
}

func TestAsset_EncryptedURL(t *testing.T) {
	f := newFixture(t, denyAll)

	tests := []struct {
		name        string
		contentType string
		wantType    string
	}{
		{"explicit type", "text/css", "text/css"},
		{"empty type", "", quarx.NullContentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := f.svc.Asset("css/app.css", tt.contentType, true)
			if err != nil {
				t.Fatalf("Asset() failed: %v", err)
			}

			pathTok, typeTok := tokens(t, u, "http://example.com/quarx/asset/")
			if got, _ := f.sealer.Decrypt(pathTok); got != "css/app.css" {
				t.Errorf("decrypted path = %q", got)
			}
			if got, _ := f.sealer.Decrypt(typeTok); got != tt.wantType {
				t.Errorf("decrypted type = %q, want %q", got, tt.wantType)
			}
		})
	}
}

func TestAsset_LocalPath(t *testing.T) {
	f := newFixture(t, denyAll)

	got, err := f.svc.Asset("css/app.css", "", false)
	if err != nil {
		t.Fatalf("Asset() failed: %v", err)
	}
	if want := filepath.Join(f.assetDir, "css", "app.css"); got != want {
		t.Errorf("Asset() = %q, want %q", got, want)
	}
}

func TestModuleAsset(t *testing.T) {
	f := newFixture(t, denyAll)

	u, err := f.svc.ModuleAsset("blog", "js/blog.js", "application/javascript")
	if err != nil {
		t.Fatalf("ModuleAsset() failed: %v", err)
	}
	if !strings.HasSuffix(u, "/?isModule=true") {
		t.Errorf("ModuleAsset() = %q, want isModule suffix", u)
	}

	pathTok, _ := tokens(t, u, "http://example.com/quarx/asset/")
	got, _ := f.sealer.Decrypt(pathTok)
	if want := filepath.Join(f.moduleDir, "Blog", "Assets", "js", "blog.js"); got != want {
		t.Errorf("decrypted path = %q, want %q", got, want)
	}

	if _, err := f.svc.ModuleAsset("../x", "a.js", ""); !errors.Is(err, modules.ErrInvalidKey) {
		t.Errorf("ModuleAsset(traversal) error = %v, want ErrInvalidKey", err)
	}
}

func TestMountedBasePath(t *testing.T) {
	f := newMountedFixture(t, allowAll, "/cms/")
	const prefix = "http://example.com/cms/"

	asset, err := f.svc.Asset("css/app.css", "text/css", true)
	if err != nil {
		t.Fatalf("Asset() failed: %v", err)
	}
	tokens(t, asset, prefix+"asset/")

	moduleAsset, err := f.svc.ModuleAsset("blog", "js/blog.js", "")
	if err != nil {
		t.Fatalf("ModuleAsset() failed: %v", err)
	}
	tokens(t, moduleAsset, prefix+"asset/")

	withID, _ := f.svc.EditButton(context.Background(), "pages", "5")
	if !strings.Contains(string(withID), `href="`+prefix+`pages/`) {
		t.Errorf("EditButton(id) = %q, want link beneath %s", withID, prefix)
	}

	withoutID, _ := f.svc.EditButton(context.Background(), "menus", "")
	if !strings.Contains(string(withoutID), `href="`+prefix+`menus/edit"`) {
		t.Errorf("EditButton() = %q, want %smenus/edit", withoutID, prefix)
	}

	if strings.Contains(asset+moduleAsset+string(withID)+string(withoutID), "/quarx/") {
		t.Error("URLs still reference the default mount prefix")
	}
}

func TestModuleConfigAndConfig(t *testing.T) {
	f := newFixture(t, denyAll)

	v, err := f.svc.ModuleConfig("blog", "menu.url")
	if err != nil || v != "blog" {
		t.Errorf("ModuleConfig() = %v, %v, want blog", v, err)
	}

	v, err = f.svc.Config("quarx.frontend.theme")
	if err != nil || v != "default" {
		t.Errorf("Config() = %v, %v, want default", v, err)
	}
}

func TestDecodeModuleConfig(t *testing.T) {
	f := newFixture(t, denyAll)

	type menu struct {
		URL string `toml:"url"`
	}

	got, err := quarx.DecodeModuleConfig[menu](f.svc, "blog", "menu")
	if err != nil {
		t.Fatalf("DecodeModuleConfig() failed: %v", err)
	}
	if got.URL != "blog" {
		t.Errorf("URL = %q, want blog", got.URL)
	}

	if _, err := quarx.DecodeModuleConfig[menu](f.svc, "blog", "menu.missing"); !errors.Is(err, modules.ErrNotFound) {
		t.Errorf("missing path error = %v, want ErrNotFound", err)
	}
}

func TestAssignArrayByPath(t *testing.T) {
	f := newFixture(t, denyAll)
	root := map[string]any{}

	if err := f.svc.AssignArrayByPath(root, "site.nav.title").Set("Home"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	got, ok := f.svc.AssignArrayByPath(root, "site.nav.title").Get()
	if !ok || got != "Home" {
		t.Errorf("Get() = %v, %v, want Home", got, ok)
	}
}

func TestBreadcrumbs(t *testing.T) {
	f := newFixture(t, denyAll)

	got := f.svc.Breadcrumbs([]quarx.Crumb{
		quarx.Link("home", "/"),
		quarx.Link("blog", "/blog?tag=a&b"),
		quarx.Label("my <post>"),
	})

	want := `<li><a href="/">Home</a></li>` +
		`<li><a href="/blog?tag=a&amp;b">Blog</a></li>` +
		`<li>My &lt;post&gt;</li>`
	if string(got) != want {
		t.Errorf("Breadcrumbs() =\n%s\nwant\n%s", got, want)
	}

	if f.svc.Breadcrumbs(nil) != "" {
		t.Error("Breadcrumbs(nil) should be empty")
	}
}

func TestEditButton(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		f := newFixture(t, denyAll)
		got, err := f.svc.EditButton(context.Background(), "pages", "5")
		if err != nil || got != "" {
			t.Errorf("EditButton() = %q, %v, want empty", got, err)
		}
	})

	t.Run("with id", func(t *testing.T) {
		f := newFixture(t, allowAll)
		got, err := f.svc.EditButton(context.Background(), "pages", "5")
		if err != nil {
			t.Fatalf("EditButton() failed: %v", err)
		}
		s := string(got)
		if !strings.Contains(s, `class="btn btn-default pull-right"`) || !strings.HasSuffix(s, `Edit</a>`) {
			t.Errorf("EditButton() = %q", s)
		}

		href := s[strings.Index(s, `href="`)+6:]
		href = href[:strings.Index(href, `"`)]
		tok, ok := strings.CutPrefix(href, "http://example.com/quarx/pages/")
		tok, ok2 := strings.CutSuffix(tok, "/edit")
		if !ok || !ok2 {
			t.Fatalf("href = %q", href)
		}
		if id, _ := f.sealer.Decrypt(tok); id != "5" {
			t.Errorf("decrypted id = %q, want 5", id)
		}
	})

	t.Run("without id", func(t *testing.T) {
		f := newFixture(t, allowAll)
		got, _ := f.svc.EditButton(context.Background(), "menus", "")
		if !strings.Contains(string(got), `href="http://example.com/quarx/menus/edit"`) {
			t.Errorf("EditButton() = %q, want menus edit link", got)
		}
	})
}

func TestWidget(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		f := newFixture(t, denyAll)
		got, err := f.svc.Widget(context.Background(), bannerID)
		if err != nil || got != "<p>Hello</p>" {
			t.Errorf("Widget() = %q, %v", got, err)
		}
	})

	t.Run("authorized", func(t *testing.T) {
		f := newFixture(t, allowAll)
		got, err := f.svc.Widget(context.Background(), bannerID)
		if err != nil {
			t.Fatalf("Widget() failed: %v", err)
		}
		s := string(got)
		if !strings.HasPrefix(s, "<p>Hello</p><a href=\"http://example.com/quarx/widgets/") {
			t.Errorf("Widget() = %q", s)
		}
		if !strings.Contains(s, `/edit" class="btn btn-default">`) {
			t.Errorf("Widget() edit link = %q", s)
		}
	})

	t.Run("missing", func(t *testing.T) {
		f := newFixture(t, allowAll)
		got, err := f.svc.Widget(context.Background(), missingID)
		if err != nil || got != "" {
			t.Errorf("Widget() = %q, %v, want empty", got, err)
		}
		if !strings.Contains(f.logs.String(), "widget not found") {
			t.Errorf("logs = %q, want widget not found warning", f.logs.String())
		}
	})
}

func TestMenu(t *testing.T) {
	wantLinks := `<a href="https://example.com/docs?a=1&amp;b=2">Docs</a>` +
		`<a href="http://example.com/page/about-us">About &lt;us&gt;</a>`

	t.Run("links", func(t *testing.T) {
		f := newFixture(t, denyAll)
		got, err := f.svc.Menu(context.Background(), mainMenuID, "")
		if err != nil {
			t.Fatalf("Menu() failed: %v", err)
		}
		if string(got) != wantLinks {
			t.Errorf("Menu() =\n%s\nwant\n%s", got, wantLinks)
		}
	})

	t.Run("view", func(t *testing.T) {
		f := newFixture(t, denyAll)
		got, err := f.svc.Menu(context.Background(), mainMenuID, "menus.nav")
		if err != nil {
			t.Fatalf("Menu() failed: %v", err)
		}
		if want := `<nav data-count="3">` + wantLinks + `</nav>`; string(got) != want {
			t.Errorf("Menu() =\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("missing view", func(t *testing.T) {
		f := newFixture(t, denyAll)
		_, err := f.svc.Menu(context.Background(), mainMenuID, "menus.none")
		if !errors.Is(err, web.ErrViewNotFound) {
			t.Errorf("Menu() error = %v, want ErrViewNotFound", err)
		}
	})

	t.Run("authorized", func(t *testing.T) {
		f := newFixture(t, allowAll)
		got, _ := f.svc.Menu(context.Background(), mainMenuID, "")
		s := string(got)
		if !strings.HasPrefix(s, wantLinks+`<a href="http://example.com/quarx/menus/`) {
			t.Errorf("Menu() = %q, want edit link appended", s)
		}
	})

	t.Run("missing", func(t *testing.T) {
		f := newFixture(t, allowAll)
		got, err := f.svc.Menu(context.Background(), missingID, "")
		if err != nil || got != "" {
			t.Errorf("Menu() = %q, %v, want empty", got, err)
		}
		if !strings.Contains(f.logs.String(), "menu not found") {
			t.Errorf("logs = %q, want menu not found warning", f.logs.String())
		}
	})
}

func TestConvertToURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"About Us!", "about-us"},
		{"  spaced  out ", "--spaced--out-"},
		{"Crème Brûlée", "crme-brle"},
		{"İstanbul", "stanbul"},
		{"ÀBC Ωmega", "bc-mega"},
		{"already-fine-123", "already-fine-123"},
		{"a_b.c/d", "abcd"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := quarx.ConvertToURL(tt.in)
			if got != tt.want {
				t.Errorf("ConvertToURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := quarx.ConvertToURL(got); again != got {
				t.Errorf("ConvertToURL not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestNotification(t *testing.T) {
	f := newFixture(t, denyAll)

	w := httptest.NewRecorder()
	f.svc.Notification(w, httptest.NewRequest(http.MethodPost, "/", nil), "Saved <ok>", "")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}

	got := f.svc.PendingNotification(httptest.NewRecorder(), req)
	if want := `<div class="alert alert-info">Saved &lt;ok&gt;</div>`; string(got) != want {
		t.Errorf("PendingNotification() = %q, want %q", got, want)
	}

	if f.svc.PendingNotification(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)) != "" {
		t.Error("PendingNotification() without cookie should be empty")
	}
}

func TestPackages(t *testing.T) {
	f := newFixture(t, denyAll)
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "a-blog.html"), `<li><a href="{{ url "blog" }}">Blog</a></li>`)
	writeFile(t, filepath.Join(dir, "b-shop.html"), `<li>{{ ucfirst "shop" }}</li>`)

	if err := f.svc.AddToPackages(dir); err != nil {
		t.Fatalf("AddToPackages() failed: %v", err)
	}
	if err := f.svc.AddToPackages(dir); err != nil {
		t.Fatalf("AddToPackages() failed: %v", err)
	}

	if got := len(f.svc.PackageViews()); got != 4 {
		t.Errorf("PackageViews() len = %d, want 4 (no dedup)", got)
	}

	got, err := f.svc.PackageMenus(nil)
	if err != nil {
		t.Fatalf("PackageMenus() failed: %v", err)
	}
	one := `<li><a href="http://example.com/blog">Blog</a></li><li>Shop</li>`
	if string(got) != one+one {
		t.Errorf("PackageMenus() = %q, want %q", got, one+one)
	}
}

func TestPackages_EmptyDir(t *testing.T) {
	f := newFixture(t, denyAll)

	if err := f.svc.AddToPackages(filepath.Join(t.TempDir(), "missing")); err != nil {
		t.Fatalf("AddToPackages() failed: %v", err)
	}
	got, err := f.svc.PackageMenus(nil)
	if err != nil || got != "" {
		t.Errorf("PackageMenus() = %q, %v, want empty", got, err)
	}
}

func TestPackages_Concurrent(t *testing.T) {
	f := newFixture(t, denyAll)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one.html"), `x`)

	done := make(chan struct{})
	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			f.svc.AddToPackages(dir)
			f.svc.PackageViews()
		}()
	}
	for range 8 {
		<-done
	}

	if got := len(f.svc.PackageViews()); got != 8 {
		t.Errorf("PackageViews() len = %d, want 8", got)
	}
}
