// Package file provides a filesystem-backed catalog source.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docdex-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// quietPeriod is how long the watcher waits after the last filesystem event
// before reporting a change. Scanners rewrite the catalog in several writes;
// a burst collapses to a single notification.
const quietPeriod = 500 * time.Millisecond

// Source loads the scanner catalog from a local JSON file.
type Source struct {
	path string
}

// NewSource creates a file source for the catalog at path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Load reads and parses the catalog file.
func (s *Source) Load(ctx context.Context) (*domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrCatalogUnavailable, s.path, err)
	}

	return domain.ParseCatalog(data)
}

// Describe returns the catalog file path.
func (s *Source) Describe() string {
	return s.path
}

// Watch reports catalog file changes via onChange until ctx is cancelled.
// The watch is set on the parent directory because scanners and editors
// replace the file, which would drop a watch set on the file itself.
func (s *Source) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()

		timer := time.NewTimer(quietPeriod)
		stopTimer(timer)

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(s.path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				stopTimer(timer)
				timer.Reset(quietPeriod)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Catalog watcher error: %v", err)

			case <-timer.C:
				logger.Debug("Catalog file changed: %s", s.path)
				onChange()
			}
		}
	}()

	return nil
}

// stopTimer stops a timer and drains its channel if it already fired.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
