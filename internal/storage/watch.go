package storage

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	errs "github.com/felixgeelhaar/homewhisper/internal/errors"
)

// Watch reports changes to key made by any process. Bursts of events are
// coalesced into one notification. The channel is closed when ctx is done.
func (f *FileStore) Watch(ctx context.Context, key string) (<-chan struct{}, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeStoreOpen, "create file watcher", err)
	}
	// The directory is watched because atomic renames replace the file.
	if err := fsw.Add(f.dir); err != nil {
		fsw.Close()
		return nil, errs.Wrap(errs.ErrCodeStoreOpen, "watch data directory "+f.dir, err)
	}

	target := filepath.Base(f.PathFor(key))
	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		defer fsw.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Base(evt.Name) != target {
					continue
				}
				if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) && !evt.Has(fsnotify.Remove) && !evt.Has(fsnotify.Rename) {
					continue
				}
				select {
				case changes <- struct{}{}:
				default:
				}
			case _, ok := <-fsw.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return changes, nil
}
