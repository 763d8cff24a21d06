package quarx

import (
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
)

// AddToPackages appends every entry of dir to the package menu list in
// glob order. Entries are not deduplicated.
func (s *Service) AddToPackages(dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*"))
	if err != nil {
		return fmt.Errorf("glob package views %s: %w", dir, err)
	}

	s.mu.Lock()
	s.packages = append(s.packages, files...)
	s.mu.Unlock()

	s.logger.Debug("package views added", "dir", dir, "count", len(files))
	return nil
}

// PackageViews returns a copy of the registered package view files.
func (s *Service) PackageViews() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.packages))
	copy(out, s.packages)
	return out
}

// PackageMenus renders every registered package view in order and returns
// the concatenated output.
func (s *Service) PackageMenus(data any) (template.HTML, error) {
	var b strings.Builder
	for _, file := range s.PackageViews() {
		out, err := s.views.RenderFile(file, data)
		if err != nil {
			return "", err
		}
		b.WriteString(string(out))
	}
	return template.HTML(b.String()), nil
}
