package api

import (
	"github.com/JaimeStill/quarx/internal/infrastructure"
)

// Runtime scopes the shared infrastructure to the quarx module.
type Runtime struct {
	*infrastructure.Infrastructure
}

// NewRuntime creates a module runtime with a module-scoped logger.
func NewRuntime(infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "quarx"),
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
	}
}
