package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	errs "github.com/felixgeelhaar/homewhisper/internal/errors"
)

// FileStore keeps one JSON file per key under a directory.
//
// Writes go to a temp file that is renamed into place while holding an
// exclusive flock on "<key>.json.lock"; reads take a shared lock. Readers in
// other processes therefore never observe a partial write.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errs.New(errs.ErrCodeStoreOpen, "file store needs a data directory")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errs.Wrap(errs.ErrCodeStoreOpen, fmt.Sprintf("create data directory %s", dir), err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the data directory.
func (f *FileStore) Dir() string { return f.dir }

// PathFor returns the file that holds key.
func (f *FileStore) PathFor(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Load reads the file for key under a shared lock.
func (f *FileStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateKey(key); err != nil {
		return nil, err
	}

	path := f.PathFor(key)
	lock := flock.New(path + ".lock")
	if err := lock.RLock(); err != nil {
		return nil, errs.NewStoreError(errs.ErrCodeStoreLock, BackendFile, key, err)
	}
	defer lock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, errs.NewStoreError(errs.ErrCodeStoreRead, BackendFile, key, err)
	}
	return data, nil
}

// Save atomically replaces the file for key under an exclusive lock.
func (f *FileStore) Save(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	path := f.PathFor(key)
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return errs.NewStoreError(errs.ErrCodeStoreLock, BackendFile, key, err)
	}
	defer lock.Unlock()

	if err := atomicWrite(path, data); err != nil {
		return errs.NewStoreError(errs.ErrCodeStoreWrite, BackendFile, key, err)
	}
	return nil
}

// Delete removes the file for key.
func (f *FileStore) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	path := f.PathFor(key)
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return errs.NewStoreError(errs.ErrCodeStoreLock, BackendFile, key, err)
	}
	defer lock.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errs.NewStoreError(errs.ErrCodeStoreDelete, BackendFile, key, err)
	}
	return nil
}

// Close is a no-op; locks are released after every call.
func (f *FileStore) Close() error { return nil }

// atomicWrite writes data to a temp file in the target directory and
// renames it over path.
func atomicWrite(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}
