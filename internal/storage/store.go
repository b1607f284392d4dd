// Package storage provides the key-value persistence adapters behind the
// wizard's durable progress: an in-memory store for tests, a JSON file store
// guarded by a process lock, and a SQLite store.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
)

// ErrNotFound is returned by Load when no value is stored under the key.
var ErrNotFound = errors.New("key not found")

// Store is a durable key-value store.
//
// Implementations must be safe for concurrent use.
type Store interface {
	// Load returns the bytes stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the value stored under key.
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the store.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Options configures Open.
type Options struct {
	Backend string
	// Dir is the data directory for file and sqlite backends.
	Dir string
}

// Open creates the store selected by opts.Backend.
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile, "":
		return NewFileStore(opts.Dir)
	case BackendSQLite:
		return NewSQLiteStore(filepath.Join(opts.Dir, "homewhisper.db"))
	default:
		return nil, fmt.Errorf("unknown store backend %q (supported: memory, file, sqlite)", opts.Backend)
	}
}

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

func validateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("invalid store key %q", key)
	}
	return nil
}
