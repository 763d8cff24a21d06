package main

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/quarx/internal/api"
	"github.com/JaimeStill/quarx/internal/config"
	"github.com/JaimeStill/quarx/internal/infrastructure"
	"github.com/JaimeStill/quarx/pkg/module"
)

// Modules holds the HTTP modules mounted on the root router.
type Modules struct {
	Quarx *module.Module
}

// NewModules builds the quarx module and registers the configured package
// menu directories.
func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	quarxModule, svc, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	for _, dir := range cfg.Quarx.PackageMenus {
		if err := svc.AddToPackages(dir); err != nil {
			return nil, fmt.Errorf("register package menus %s: %w", dir, err)
		}
	}

	return &Modules{Quarx: quarxModule}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.Quarx)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return router
}
