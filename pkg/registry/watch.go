package registry

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the registry from a manifest file whenever the file is
// written, until the context is canceled. Intended for development: a
// component-pack author can edit loom.yaml and see capability changes on the
// next mount without restarting.
//
// The manifest is loaded once synchronously before Watch returns, so the
// registry is populated even if no write ever happens. onReload, if not nil,
// is called after every reload attempt with its result.
func (r *Registry) Watch(ctx context.Context, path string, onReload func(error)) error {
	if err := r.LoadFile(path); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch manifest %s: %w", path, err)
	}

	go func() {
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				// Only reload on write or create events.
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				err := r.LoadFile(path)
				if onReload != nil {
					onReload(err)
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Continue watching despite errors.
			}
		}
	}()

	return nil
}
