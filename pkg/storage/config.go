package storage

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

// Config contains asset storage configuration.
type Config struct {
	// BasePath is the root directory assets are served from.
	// Default: "assets"
	BasePath string `toml:"base_path"`

	// MaxAssetSize caps the size of a single served asset, in human units.
	// Default: "25MB"
	MaxAssetSize    string `toml:"max_asset_size"`
	maxAssetSizeVal int64
}

// Env names the environment variables that override storage settings.
type Env struct {
	BasePath     string
	MaxAssetSize string
}

// MaxAssetSizeBytes returns the parsed MaxAssetSize. Valid after Finalize.
func (c *Config) MaxAssetSizeBytes() int64 {
	return c.maxAssetSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the storage configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if size, err := units.FromHumanSize(overlay.MaxAssetSize); err == nil {
		c.MaxAssetSize = overlay.MaxAssetSize
		c.maxAssetSizeVal = size
	}
}

func (c *Config) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "assets"
	}
	if c.MaxAssetSize == "" {
		c.MaxAssetSize = "25MB"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.BasePath != "" {
		if v := os.Getenv(env.BasePath); v != "" {
			c.BasePath = v
		}
	}
	if env.MaxAssetSize != "" {
		if v := os.Getenv(env.MaxAssetSize); v != "" {
			c.MaxAssetSize = v
		}
	}
}

func (c *Config) validate() error {
	if c.BasePath == "" {
		return fmt.Errorf("base_path required")
	}

	size, err := units.FromHumanSize(c.MaxAssetSize)
	if err != nil {
		return fmt.Errorf("invalid max_asset_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_asset_size must be positive")
	}
	c.maxAssetSizeVal = size

	return nil
}
