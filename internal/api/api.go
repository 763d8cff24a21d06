// Package api assembles the quarx module: collaborators, service, routes
// and middleware.
package api

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/JaimeStill/quarx/internal/auth"
	"github.com/JaimeStill/quarx/internal/config"
	"github.com/JaimeStill/quarx/internal/crypto"
	"github.com/JaimeStill/quarx/internal/flash"
	"github.com/JaimeStill/quarx/internal/infrastructure"
	"github.com/JaimeStill/quarx/internal/modules"
	"github.com/JaimeStill/quarx/internal/quarx"
	"github.com/JaimeStill/quarx/internal/urls"
	"github.com/JaimeStill/quarx/pkg/middleware"
	"github.com/JaimeStill/quarx/pkg/module"
	"github.com/JaimeStill/quarx/pkg/routes"
	"github.com/JaimeStill/quarx/pkg/web"
)

// NewModule builds the quarx service and mounts its handler under the
// configured base path. The service is returned so callers can register
// package menus.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, *quarx.Service, error) {
	runtime := NewRuntime(infra)
	qc := &cfg.Quarx

	sealer, err := crypto.New(qc.AppKey)
	if err != nil {
		return nil, nil, fmt.Errorf("encryption init failed: %w", err)
	}

	gen := urls.New(qc.AppURL)

	views, err := web.NewViews(viewFS(qc.ViewDirectory), quarx.TemplateFuncs(gen, qc.BasePath))
	if err != nil {
		return nil, nil, fmt.Errorf("views init failed: %w", err)
	}

	svc := quarx.New(quarx.Dependencies{
		BasePath: qc.BasePath,
		Domain:   NewDomain(runtime),
		Gate:     auth.NewRoleGate(qc.AdminRoles...),
		Flash:    flash.NewCookieStore(),
		Crypto:   sealer,
		URLs:     gen,
		Views:    views,
		Modules:  modules.NewLoader(qc.ModuleDirectory, qc.PublishedConfigDir, runtime.Logger),
		Assets:   runtime.Storage,
	}, runtime.Logger)

	handler := quarx.NewHandler(svc, quarx.HandlerConfig{
		MaxAssetSize: cfg.Storage.MaxAssetSizeBytes(),
		CacheMaxAge:  qc.AssetCacheMaxAgeDuration(),
	}, runtime.Logger)

	mux := http.NewServeMux()
	routes.Register(mux, handler.Routes()...)

	m := module.New(qc.BasePath, mux)
	m.Use(middleware.Logger(runtime.Logger))
	if qc.TrustedHeadersEnabled() {
		m.Use(auth.TrustedHeaders(qc.TrustedUserHeader, qc.TrustedRolesHeader))
	}
	if qc.TokensEnabled() {
		verifier, err := auth.NewTokenVerifier([]byte(qc.TokenSecret), qc.TokenIssuer)
		if err != nil {
			return nil, nil, fmt.Errorf("token verifier init failed: %w", err)
		}
		m.Use(auth.BearerTokens(verifier, runtime.Logger))
	}

	runtime.Logger.Info("quarx module initialized", "base_path", qc.BasePath, "views", views.Len())

	return m, svc, nil
}

// viewFS returns nil when dir does not exist so the module starts with an
// empty view set.
func viewFS(dir string) fs.FS {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return nil
	}
	return os.DirFS(dir)
}
