package quarx

import (
	"github.com/JaimeStill/quarx/internal/modules"
	"github.com/JaimeStill/quarx/pkg/decode"
)

// ModuleConfig returns the value at the dot-separated path inside the
// configuration file of module.
func (s *Service) ModuleConfig(module, path string) (any, error) {
	return s.modules.ModuleConfig(module, path)
}

// Config returns a published configuration value.
func (s *Service) Config(key string) (any, error) {
	return s.modules.Config(key)
}

// AssignArrayByPath returns a reference to root[a][b][c] for the path
// "a.b.c", creating intermediate maps along the way.
func (s *Service) AssignArrayByPath(root map[string]any, path string) *modules.Ref {
	return modules.AssignByPath(root, path)
}

// DecodeModuleConfig reads the value at path in the configuration of module
// and decodes it into T using `toml` struct tags.
func DecodeModuleConfig[T any](s *Service, module, path string) (T, error) {
	v, err := s.ModuleConfig(module, path)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode.Into[T](v)
}
