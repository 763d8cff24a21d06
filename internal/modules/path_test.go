package modules_test

import (
	"errors"
	"testing"

	"github.com/JaimeStill/quarx/internal/modules"
)

func TestAssignByPath_SetThenGet(t *testing.T) {
	root := map[string]any{}

	if err := modules.AssignByPath(root, "a.b.c").Set(42); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	got, ok := modules.AssignByPath(root, "a.b.c").Get()
	if !ok || got != 42 {
		t.Errorf("Get() = %v, %v, want 42, true", got, ok)
	}

	a, ok := root["a"].(map[string]any)
	if !ok {
		t.Fatalf("root[a] = %T, want map", root["a"])
	}
	if _, ok := a["b"].(map[string]any); !ok {
		t.Errorf("root[a][b] = %T, want map", a["b"])
	}
}

func TestAssignByPath_Get(t *testing.T) {
	root := map[string]any{
		"frontend": map[string]any{
			"theme": "default",
			"menus": []any{
				map[string]any{"name": "main"},
				"footer",
			},
		},
		"count": int64(3),
	}

	tests := []struct {
		name   string
		path   string
		want   any
		wantOK bool
	}{
		{"leaf", "frontend.theme", "default", true},
		{"top level", "count", int64(3), true},
		{"list element", "frontend.menus.1", "footer", true},
		{"through list", "frontend.menus.0.name", "main", true},
		{"missing leaf", "frontend.missing", nil, false},
		{"out of range", "frontend.menus.5", nil, false},
		{"through scalar", "count.value", nil, false},
		{"walk stops on empty segment", "frontend..ignored", nil, true},
		{"zero is a key", "0", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := modules.AssignByPath(root, tt.path).Get()
			if ok != tt.wantOK {
				t.Fatalf("Get() ok = %v, want %v", ok, tt.wantOK)
			}
			if tt.want != nil && got != tt.want {
				t.Errorf("Get() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAssignByPath_EmptyPath(t *testing.T) {
	root := map[string]any{"x": 1}
	ref := modules.AssignByPath(root, "")

	got, ok := ref.Get()
	if !ok {
		t.Fatal("Get() on empty path should return root")
	}
	if m, _ := got.(map[string]any); m["x"] != 1 {
		t.Errorf("Get() = %v, want root", got)
	}

	if err := ref.Set(2); !errors.Is(err, modules.ErrAssignRoot) {
		t.Errorf("Set() error = %v, want ErrAssignRoot", err)
	}
}

func TestAssignByPath_SetErrors(t *testing.T) {
	root := map[string]any{
		"name": "quarx",
		"list": []any{"a"},
	}

	if err := modules.AssignByPath(root, "name.first").Set("x"); !errors.Is(err, modules.ErrNotContainer) {
		t.Errorf("Set through scalar error = %v, want ErrNotContainer", err)
	}
	if err := modules.AssignByPath(root, "list.3").Set("x"); !errors.Is(err, modules.ErrIndexOutOfRange) {
		t.Errorf("Set past list end error = %v, want ErrIndexOutOfRange", err)
	}
	if err := modules.AssignByPath(root, "list.0").Set("b"); err != nil {
		t.Errorf("Set list element failed: %v", err)
	}
	if root["list"].([]any)[0] != "b" {
		t.Errorf("list[0] = %v, want b", root["list"].([]any)[0])
	}
}
