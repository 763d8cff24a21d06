// Package modules reads module and published configuration files and
// resolves dotted paths inside them.
package modules

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the per-module configuration file name.
const ConfigFile = "config.toml"

// Loader resolves configuration beneath the module and published directories.
type Loader struct {
	moduleDir    string
	publishedDir string
	logger       *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(moduleDir, publishedDir string, logger *slog.Logger) *Loader {
	return &Loader{
		moduleDir:    moduleDir,
		publishedDir: publishedDir,
		logger:       logger.With("system", "modules"),
	}
}

// ModuleDir returns the directory of module, with its name upper-cased
// on the first letter.
func (l *Loader) ModuleDir(module string) (string, error) {
	if err := validName(module); err != nil {
		return "", err
	}
	return filepath.Join(l.moduleDir, Ucfirst(module)), nil
}

// ModuleDirectory returns the root directory holding every module.
func (l *Loader) ModuleDirectory() string {
	return l.moduleDir
}

// ModuleConfig returns the value at path inside the config file of module.
func (l *Loader) ModuleConfig(module, path string) (any, error) {
	dir, err := l.ModuleDir(module)
	if err != nil {
		return nil, err
	}

	root, err := LoadFile(filepath.Join(dir, ConfigFile))
	if err != nil {
		return nil, err
	}

	v, ok := AssignByPath(root, path).Get()
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrNotFound, module, path)
	}
	return v, nil
}

// Config resolves a published key of the form "<file>.<group>.<name>".
// The file segment selects <published>/<file>.toml; the file and group
// prefixes are then removed and the remainder is looked up, first as a
// literal key and then as a dotted path.
func (l *Loader) Config(key string) (any, error) {
	segments := strings.Split(key, ".")
	if len(segments) < 2 || segments[0] == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if err := validName(segments[0]); err != nil {
		return nil, err
	}

	root, err := LoadFile(filepath.Join(l.publishedDir, segments[0]+".toml"))
	if err != nil {
		return nil, err
	}

	stripped := strings.TrimPrefix(key, segments[0]+".")
	stripped = strings.TrimPrefix(stripped, segments[1]+".")

	if v, ok := root[stripped]; ok {
		return v, nil
	}
	if v, ok := AssignByPath(root, stripped).Get(); ok && stripped != "" {
		return v, nil
	}

	l.logger.Debug("published config key missing", "key", key, "lookup", stripped)
	return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
}

// LoadFile decodes a TOML file into a nested map.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	root := map[string]any{}
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return root, nil
}

// Ucfirst upper-cases the first letter of s.
func Ucfirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func validName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, name)
	}
	return nil
}
