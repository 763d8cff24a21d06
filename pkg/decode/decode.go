// Package decode converts loosely typed configuration values into structs.
package decode

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

type envelope[T any] struct {
	Value T `toml:"value"`
}

// Into re-encodes v as TOML and decodes it into T, so values read from
// TOML files decode with the same `toml` struct tags.
func Into[T any](v any) (T, error) {
	var env envelope[T]

	b, err := toml.Marshal(map[string]any{"value": v})
	if err != nil {
		return env.Value, fmt.Errorf("encode value: %w", err)
	}
	if err := toml.Unmarshal(b, &env); err != nil {
		return env.Value, fmt.Errorf("decode value: %w", err)
	}
	return env.Value, nil
}
