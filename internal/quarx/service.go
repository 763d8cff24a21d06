// Package quarx implements the content helper service: encrypted asset URLs,
// menu, widget and breadcrumb fragments, module configuration lookups, edit
// affordances for authorized users, flash notifications and package menus.
package quarx

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/JaimeStill/quarx/internal/auth"
	"github.com/JaimeStill/quarx/internal/crypto"
	"github.com/JaimeStill/quarx/internal/flash"
	"github.com/JaimeStill/quarx/internal/links"
	"github.com/JaimeStill/quarx/internal/menus"
	"github.com/JaimeStill/quarx/internal/modules"
	"github.com/JaimeStill/quarx/internal/pages"
	"github.com/JaimeStill/quarx/internal/urls"
	"github.com/JaimeStill/quarx/internal/widgets"
	"github.com/JaimeStill/quarx/pkg/storage"
	"github.com/JaimeStill/quarx/pkg/web"
)

// Domain groups the content repositories the service reads from.
type Domain struct {
	Menus   menus.System
	Links   links.System
	Pages   pages.System
	Widgets widgets.System
}

// DefaultBasePath is the mount prefix used when Dependencies.BasePath is empty.
const DefaultBasePath = "/quarx"

// Dependencies are the collaborators a Service delegates to. BasePath is
// the prefix the quarx handler is mounted under; generated asset and edit
// URLs start with it.
type Dependencies struct {
	BasePath string
	Domain   Domain
	Gate     auth.Gate
	Flash    flash.Store
	Crypto   crypto.Encrypter
	URLs     *urls.Generator
	Views    *web.Views
	Modules  *modules.Loader
	Assets   storage.System
}

// Service is the quarx helper. It is safe for concurrent use.
type Service struct {
	route   string
	domain  Domain
	gate    auth.Gate
	flash   flash.Store
	crypto  crypto.Encrypter
	urls    *urls.Generator
	views   *web.Views
	modules *modules.Loader
	assets  storage.System
	logger  *slog.Logger

	mu       sync.RWMutex
	packages []string
}

// New creates a Service.
func New(deps Dependencies, logger *slog.Logger) *Service {
	return &Service{
		route:   routeSegment(deps.BasePath),
		domain:  deps.Domain,
		gate:    deps.Gate,
		flash:   deps.Flash,
		crypto:  deps.Crypto,
		urls:    deps.URLs,
		views:   deps.Views,
		modules: deps.Modules,
		assets:  deps.Assets,
		logger:  logger.With("system", "quarx"),
	}
}

// routeURL returns the URL of p beneath the quarx mount prefix.
func (s *Service) routeURL(p string) string {
	return s.urls.To(s.route + "/" + strings.TrimLeft(p, "/"))
}

func routeSegment(basePath string) string {
	if basePath = strings.Trim(basePath, "/"); basePath == "" {
		return strings.Trim(DefaultBasePath, "/")
	}
	return basePath
}
