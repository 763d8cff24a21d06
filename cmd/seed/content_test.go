package main

import (
	"strings"
	"testing"
)

func TestParseContent_Embedded(t *testing.T) {
	raw, err := seedFiles.ReadFile("seeds/content.toml")
	if err != nil {
		t.Fatalf("read embedded seeds: %v", err)
	}

	data, err := parseContent(raw)
	if err != nil {
		t.Fatalf("parseContent() failed: %v", err)
	}

	if len(data.Pages) == 0 || len(data.Menus) == 0 || len(data.Widgets) == 0 {
		t.Fatalf("seed data incomplete: %d pages, %d menus, %d widgets",
			len(data.Pages), len(data.Menus), len(data.Widgets))
	}

	menu := data.Menus[0]
	if menu.Slug != "main" || len(menu.Links) != 3 {
		t.Errorf("menu = %s with %d links, want main with 3", menu.Slug, len(menu.Links))
	}
	if menu.Links[2].ExternalURL == "" {
		t.Error("third link should be external")
	}
}

func TestParseContent_UnknownPage(t *testing.T) {
	raw := []byte(`
[[menus]]
uuid = "9d4e8a61-2b7c-4c55-8f11-3e6a7b8c9d01"
name = "Main"
slug = "main"

  [[menus.links]]
  name = "Missing"
  page = "nowhere"
`)

	_, err := parseContent(raw)
	if err == nil || !strings.Contains(err.Error(), "unknown page") {
		t.Errorf("parseContent() error = %v, want unknown page", err)
	}
}

func TestParseContent_Malformed(t *testing.T) {
	if _, err := parseContent([]byte("[[pages]\n")); err == nil {
		t.Error("parseContent() on malformed TOML succeeded, want error")
	}
}

func TestRegistry_ContentRegistered(t *testing.T) {
	s, ok := getSeeder("content")
	if !ok {
		t.Fatal("content seeder not registered")
	}
	if s.Description() == "" {
		t.Error("Description() empty")
	}
}
