package convert

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the dump directory for changes and re-runs conversion.
type Watcher struct {
	service      *Service
	rootDir      string
	watcher      *fsnotify.Watcher
	debounceTime time.Duration
	stopCh       chan struct{}
	doneCh       chan struct{}
	stopOnce     sync.Once
}

// NewWatcher creates a file watcher bound to a conversion service.
func NewWatcher(service *Service) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		service:      service,
		rootDir:      service.inputDir,
		watcher:      watcher,
		debounceTime: 500 * time.Millisecond,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}

	if err := w.addDirectoriesRecursively(service.inputDir); err != nil {
		watcher.Close()
		return nil, err
	}

	return w, nil
}

// Start begins watching for file changes.
func (w *Watcher) Start(ctx context.Context) {
	go w.watch(ctx)
}

// Stop stops the file watcher.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		<-w.doneCh // Wait for goroutine to finish
		w.watcher.Close()
	})
}

// watch is the main event loop with debouncing logic.
func (w *Watcher) watch(ctx context.Context) {
	defer close(w.doneCh)

	var debounceTimer *time.Timer
	reconvertCh := make(chan struct{}, 1)
	changedFiles := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if !w.shouldProcessEvent(event) {
				continue
			}

			relPath, _ := filepath.Rel(w.rootDir, event.Name)
			changedFiles[relPath] = true

			// New directories need to be added to the watcher.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addDirectoriesRecursively(event.Name); err != nil {
						log.Printf("Warning: failed to watch new directory %s: %v", event.Name, err)
					}
				}
			}

			// Reset debounce timer - properly stop and drain
			if debounceTimer != nil {
				if !debounceTimer.Stop() {
					select {
					case <-debounceTimer.C:
					default:
					}
				}
			}

			debounceTimer = time.AfterFunc(w.debounceTime, func() {
				select {
				case reconvertCh <- struct{}{}:
				default:
				}
			})

		case <-reconvertCh:
			w.triggerReconvert(ctx, changedFiles)
			changedFiles = make(map[string]bool)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

// triggerReconvert re-runs the full conversion.
func (w *Watcher) triggerReconvert(ctx context.Context, changedFiles map[string]bool) {
	if len(changedFiles) == 0 {
		return
	}

	log.Printf("Reconverting due to changes in %d file(s)...", len(changedFiles))
	start := time.Now()

	stats, err := w.service.Run(ctx)
	if err != nil {
		log.Printf("Error during reconversion: %v", err)
		return
	}

	log.Printf("Reconversion complete in %v (%d files converted, %d skipped)",
		time.Since(start), stats.FilesConverted, stats.FilesSkipped)
}

// shouldProcessEvent checks if an event should trigger reconversion.
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
		return false
	}

	// Directory creations are processed so new directories get watched.
	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		return event.Op&fsnotify.Create != 0
	}

	return w.service.disc.Matches(event.Name)
}

// addDirectoriesRecursively adds the directory and all subdirectories to the watcher.
func (w *Watcher) addDirectoriesRecursively(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		return w.watcher.Add(path)
	})
}
