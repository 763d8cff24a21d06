package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	EnvQuarxBasePath           = "QUARX_BASE_PATH"
	EnvQuarxAppURL             = "QUARX_APP_URL"
	EnvQuarxAppKey             = "QUARX_APP_KEY"
	EnvQuarxModuleDirectory    = "QUARX_MODULE_DIRECTORY"
	EnvQuarxPublishedConfigDir = "QUARX_PUBLISHED_CONFIG_DIR"
	EnvQuarxViewDirectory      = "QUARX_VIEW_DIRECTORY"
	EnvQuarxAdminRoles         = "QUARX_ADMIN_ROLES"
	EnvQuarxTrustedUserHeader  = "QUARX_TRUSTED_USER_HEADER"
	EnvQuarxTrustedRolesHeader = "QUARX_TRUSTED_ROLES_HEADER"
	EnvQuarxAssetCacheMaxAge   = "QUARX_ASSET_CACHE_MAX_AGE"
	EnvQuarxPackageMenus       = "QUARX_PACKAGE_MENUS"
	EnvQuarxTokenSecret        = "QUARX_TOKEN_SECRET"
	EnvQuarxTokenIssuer        = "QUARX_TOKEN_ISSUER"
)

// minAppKeyLength is the shortest app_key accepted for key derivation.
const minAppKeyLength = 16

// QuarxConfig contains settings for the content helper service.
type QuarxConfig struct {
	// BasePath is the single-segment mount prefix of the quarx module.
	BasePath string `toml:"base_path"`

	// AppURL is prefixed to every generated URL. Empty yields root-relative URLs.
	AppURL string `toml:"app_url"`

	// AppKey is the secret encryption keys are derived from.
	AppKey string `toml:"app_key"`

	ModuleDirectory    string   `toml:"module_directory"`
	PublishedConfigDir string   `toml:"published_config_dir"`
	ViewDirectory      string   `toml:"view_directory"`
	AdminRoles         []string `toml:"admin_roles"`

	// TrustedUserHeader and TrustedRolesHeader name request headers set by an
	// authenticating proxy. Identity resolution is disabled when empty.
	TrustedUserHeader  string `toml:"trusted_user_header"`
	TrustedRolesHeader string `toml:"trusted_roles_header"`

	// TokenSecret enables HS256 bearer token identity when set.
	TokenSecret string `toml:"token_secret"`
	TokenIssuer string `toml:"token_issuer"`

	AssetCacheMaxAge string `toml:"asset_cache_max_age"`

	// PackageMenus lists directories whose view files are registered as
	// package menus at startup.
	PackageMenus []string `toml:"package_menus"`
}

// AssetCacheMaxAgeDuration parses and returns the asset cache lifetime.
func (c *QuarxConfig) AssetCacheMaxAgeDuration() time.Duration {
	d, _ := time.ParseDuration(c.AssetCacheMaxAge)
	return d
}

// TrustedHeadersEnabled reports whether identity is read from proxy headers.
func (c *QuarxConfig) TrustedHeadersEnabled() bool {
	return c.TrustedUserHeader != ""
}

// TokensEnabled reports whether identity is read from bearer tokens.
func (c *QuarxConfig) TokensEnabled() bool {
	return c.TokenSecret != ""
}

// Finalize applies defaults, loads environment overrides, and validates the quarx configuration.
func (c *QuarxConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *QuarxConfig) Merge(overlay *QuarxConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.AppURL != "" {
		c.AppURL = overlay.AppURL
	}
	if overlay.AppKey != "" {
		c.AppKey = overlay.AppKey
	}
	if overlay.ModuleDirectory != "" {
		c.ModuleDirectory = overlay.ModuleDirectory
	}
	if overlay.PublishedConfigDir != "" {
		c.PublishedConfigDir = overlay.PublishedConfigDir
	}
	if overlay.ViewDirectory != "" {
		c.ViewDirectory = overlay.ViewDirectory
	}
	if len(overlay.AdminRoles) > 0 {
		c.AdminRoles = overlay.AdminRoles
	}
	if overlay.TrustedUserHeader != "" {
		c.TrustedUserHeader = overlay.TrustedUserHeader
	}
	if overlay.TrustedRolesHeader != "" {
		c.TrustedRolesHeader = overlay.TrustedRolesHeader
	}
	if overlay.AssetCacheMaxAge != "" {
		c.AssetCacheMaxAge = overlay.AssetCacheMaxAge
	}
	if overlay.TokenSecret != "" {
		c.TokenSecret = overlay.TokenSecret
	}
	if overlay.TokenIssuer != "" {
		c.TokenIssuer = overlay.TokenIssuer
	}
	if len(overlay.PackageMenus) > 0 {
		c.PackageMenus = overlay.PackageMenus
	}
}

func (c *QuarxConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/quarx"
	}
	if c.ModuleDirectory == "" {
		c.ModuleDirectory = "modules"
	}
	if c.PublishedConfigDir == "" {
		c.PublishedConfigDir = "config"
	}
	if c.ViewDirectory == "" {
		c.ViewDirectory = "views"
	}
	if len(c.AdminRoles) == 0 {
		c.AdminRoles = []string{"admin"}
	}
	if c.TrustedUserHeader != "" && c.TrustedRolesHeader == "" {
		c.TrustedRolesHeader = "X-Forwarded-Roles"
	}
	if c.AssetCacheMaxAge == "" {
		c.AssetCacheMaxAge = "24h"
	}
}

func (c *QuarxConfig) loadEnv() {
	if v := os.Getenv(EnvQuarxBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvQuarxAppURL); v != "" {
		c.AppURL = v
	}
	if v := os.Getenv(EnvQuarxAppKey); v != "" {
		c.AppKey = v
	}
	if v := os.Getenv(EnvQuarxModuleDirectory); v != "" {
		c.ModuleDirectory = v
	}
	if v := os.Getenv(EnvQuarxPublishedConfigDir); v != "" {
		c.PublishedConfigDir = v
	}
	if v := os.Getenv(EnvQuarxViewDirectory); v != "" {
		c.ViewDirectory = v
	}
	if v := os.Getenv(EnvQuarxAdminRoles); v != "" {
		c.AdminRoles = splitList(v)
	}
	if v := os.Getenv(EnvQuarxTrustedUserHeader); v != "" {
		c.TrustedUserHeader = v
	}
	if v := os.Getenv(EnvQuarxTrustedRolesHeader); v != "" {
		c.TrustedRolesHeader = v
	}
	if v := os.Getenv(EnvQuarxAssetCacheMaxAge); v != "" {
		c.AssetCacheMaxAge = v
	}
	if v := os.Getenv(EnvQuarxTokenSecret); v != "" {
		c.TokenSecret = v
	}
	if v := os.Getenv(EnvQuarxTokenIssuer); v != "" {
		c.TokenIssuer = v
	}
	if v := os.Getenv(EnvQuarxPackageMenus); v != "" {
		c.PackageMenus = splitList(v)
	}
}

func splitList(v string) []string {
	items := strings.Split(v, ",")
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	return items
}

func (c *QuarxConfig) validate() error {
	if !strings.HasPrefix(c.BasePath, "/") || strings.Count(c.BasePath, "/") != 1 || len(c.BasePath) < 2 {
		return fmt.Errorf("base_path must be a single segment like /quarx, got %q", c.BasePath)
	}
	if len(c.AppKey) < minAppKeyLength {
		return fmt.Errorf("app_key must be at least %d characters", minAppKeyLength)
	}
	if d, err := time.ParseDuration(c.AssetCacheMaxAge); err != nil {
		return fmt.Errorf("invalid asset_cache_max_age: %w", err)
	} else if d < 0 {
		return fmt.Errorf("asset_cache_max_age must not be negative")
	}
	c.AppURL = strings.TrimSuffix(c.AppURL, "/")
	return nil
}
