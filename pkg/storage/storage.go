// Package storage provides the filesystem-backed asset store that encrypted
// asset URLs resolve against.
package storage

import (
	"context"
	"io"
	"time"

	"github.com/JaimeStill/quarx/pkg/lifecycle"
)

// Object is an open stored file.
type Object struct {
	io.ReadSeekCloser
	Name    string
	Size    int64
	ModTime time.Time
}

// System defines the asset storage operations.
type System interface {
	// Store saves data at key, creating parent directories as needed.
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve returns the full contents stored at key.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Open returns a seekable handle to key. Returns ErrTooLarge when the
	// object exceeds the configured maximum size.
	Open(ctx context.Context, key string) (*Object, error)

	// Validate reports whether key exists and is readable.
	Validate(ctx context.Context, key string) (bool, error)

	// Path resolves key to its absolute filesystem path without touching disk.
	Path(key string) (string, error)

	// Start registers lifecycle hooks; the base directory is created on startup.
	Start(lc *lifecycle.Coordinator) error
}
