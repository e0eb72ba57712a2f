package tables

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors a tables file for changes and calls onChange with the
// newly loaded Tables each time the file is rewritten. It runs until
// ctx is cancelled.
//
// If a reload fails (invalid YAML, incomplete entry), the error is
// logged and the previous tables remain active — Watch does not call
// onChange.
func Watch(ctx context.Context, path string, onChange func(*Tables)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	slog.Info("tables: watching for changes", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Only reload on write or create events. Editors often write via
			// rename (atomic save), so also catch fsnotify.Create.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			t, err := Load(path)
			if err != nil {
				slog.Error("tables: reload failed — keeping previous tables",
					"path", path, "err", err)
				continue
			}

			slog.Info("tables: reloaded", "path", path)
			onChange(t)

			// Re-add the file in case an atomic save replaced the inode.
			_ = watcher.Add(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("tables: watcher error", "err", err)
		}
	}
}
