package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/JaimeStill/quarx/pkg/lifecycle"
)

type filesystem struct {
	basePath string
	maxSize  int64
	logger   *slog.Logger
}

// New creates a filesystem asset store rooted at cfg.BasePath.
// The base path is resolved to an absolute path during construction.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	if cfg.BasePath == "" {
		return nil, fmt.Errorf("base_path required")
	}

	absPath, err := filepath.Abs(cfg.BasePath)
	if err != nil {
		return nil, fmt.Errorf("resolve base_path: %w", err)
	}

	return &filesystem{
		basePath: absPath,
		maxSize:  cfg.MaxAssetSizeBytes(),
		logger:   logger.With("system", "storage"),
	}, nil
}

func (f *filesystem) Start(lc *lifecycle.Coordinator) error {
	f.logger.Info("starting storage system", "base_path", f.basePath)

	lc.OnStartup(func() {
		if err := os.MkdirAll(f.basePath, 0755); err != nil {
			f.logger.Error("storage initialization failed", "error", err)
			return
		}
		f.logger.Info("storage directory initialized")
	})

	return nil
}

func (f *filesystem) Store(ctx context.Context, key string, data []byte) error {
	path, err := f.Path(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func (f *filesystem) Retrieve(ctx context.Context, key string) ([]byte, error) {
	path, err := f.Path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mapFSError(err, "read file")
	}
	return data, nil
}

func (f *filesystem) Open(ctx context.Context, key string) (*Object, error) {
	path, err := f.Path(key)
	if err != nil {
		return nil, err
	}
	return OpenFile(path, f.maxSize)
}

func (f *filesystem) Validate(ctx context.Context, key string) (bool, error) {
	path, err := f.Path(key)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, mapFSError(err, "stat file")
	}
	return true, nil
}

func (f *filesystem) Path(key string) (string, error) {
	return Resolve(f.basePath, key)
}

// Resolve joins key onto root, rejecting empty keys, absolute keys, and any
// key that escapes root after cleaning.
func Resolve(root, key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}

	cleaned := filepath.Clean(key)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", ErrInvalidKey
	}

	full := filepath.Join(root, cleaned)
	if full != root && !strings.HasPrefix(full, root+string(filepath.Separator)) {
		return "", ErrInvalidKey
	}
	return full, nil
}

// OpenFile opens path as an Object, enforcing maxSize when positive.
func OpenFile(path string, maxSize int64) (*Object, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, mapFSError(err, "open file")
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, mapFSError(err, "stat file")
	}
	if info.IsDir() {
		file.Close()
		return nil, ErrNotFound
	}
	if maxSize > 0 && info.Size() > maxSize {
		file.Close()
		return nil, ErrTooLarge
	}

	return &Object{
		ReadSeekCloser: file,
		Name:           info.Name(),
		Size:           info.Size(),
		ModTime:        info.ModTime(),
	}, nil
}

func mapFSError(err error, op string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
