package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"barrel/core/lifecycle"
	"barrel/core/logger"
)

const debounceDelay = 500 * time.Millisecond

// Watcher drives the registry lifecycle from filesystem events. It stands
// in for a host build tool's rebuild notifications: events are debounced
// and funnelled into Hooks.OnWatchRebuild. The core never sees fsnotify.
type Watcher struct {
	watcher      *fsnotify.Watcher
	rootDir      string
	excludePaths []string
	hooks        lifecycle.Hooks
	log          logger.Logger

	mu            sync.Mutex
	debounceTimer *time.Timer
}

func New(rootDir string, excludePaths []string, hooks lifecycle.Hooks, log logger.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	excludePaths = append(excludePaths, ".git", "node_modules")

	return &Watcher{
		watcher:      fsw,
		rootDir:      rootDir,
		excludePaths: excludePaths,
		hooks:        hooks,
		log:          logger.OrNop(log),
	}, nil
}

// Watch registers watchers over the whole tree, fires OnEnvironmentInit,
// then blocks processing events until Close is called.
func (w *Watcher) Watch() error {
	if err := w.addWatchersRecursively(w.rootDir); err != nil {
		return fmt.Errorf("failed to add watchers: %w", err)
	}

	if w.hooks.OnEnvironmentInit != nil {
		w.hooks.OnEnvironmentInit()
	}

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if w.shouldExcludePath(event.Name) {
				continue
			}

			w.log.Debug("File event: %s %s", event.Op, event.Name)

			if event.Has(fsnotify.Create) {
				if stat, err := os.Stat(event.Name); err == nil && stat.IsDir() {
					w.log.Debug("Adding watcher for new directory: %s", event.Name)
					w.watcher.Add(event.Name)
				}
			}

			w.debounceRebuild()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) debounceRebuild() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(debounceDelay, func() {
		w.log.Debug("File changes detected, checking components...")
		if w.hooks.OnWatchRebuild != nil {
			start := time.Now()
			w.hooks.OnWatchRebuild(func() {
				w.log.Trace("Rebuild hook finished in %v", time.Since(start))
			})
		}
	})
}

func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	return w.watcher.Close()
}

func (w *Watcher) shouldExcludePath(path string) bool {
	relPath, err := filepath.Rel(w.rootDir, path)
	if err != nil {
		return false
	}

	relPath = filepath.Clean(relPath)

	for _, excludePath := range w.excludePaths {
		excludePath = filepath.Clean(excludePath)

		if relPath == excludePath {
			return true
		}
		if strings.HasPrefix(relPath, excludePath+string(filepath.Separator)) {
			return true
		}
	}

	return false
}

func (w *Watcher) addWatchersRecursively(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		if path != root && w.shouldExcludePath(path) {
			w.log.Debug("Excluding directory: %s", path)
			return filepath.SkipDir
		}

		w.log.Debug("Adding watcher for: %s", path)
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to add watcher for %s: %w", path, err)
		}

		return nil
	})
}
