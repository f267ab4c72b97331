// Package watch invokes a callback when fixture files under a corpus root
// change. Events are debounced so an editor's save burst collapses into a
// single regeneration.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ShafSpecs/testregen/internal/logfields"
)

// DefaultDebounce is used when no debounce interval is given.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors a corpus tree and fires onChange after changes settle.
type Watcher struct {
	root       string
	onChange   func()
	watcher    *fsnotify.Watcher
	mu         sync.Mutex
	stopChan   chan struct{}
	changeChan chan struct{}
	debounce   time.Duration
}

// NewWatcher creates a watcher for the corpus rooted at root. onChange runs
// on the debounce timer's goroutine, one invocation at a time.
func NewWatcher(root string, debounce time.Duration, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("resolve corpus root: %w", err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		root:       absRoot,
		onChange:   onChange,
		watcher:    fsw,
		stopChan:   make(chan struct{}),
		changeChan: make(chan struct{}, 1),
		debounce:   debounce,
	}, nil
}

// Start registers the corpus tree with the watcher and launches the event
// loops. Directories are watched rather than individual files so editors
// that replace files on save stay visible.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.addRecursive(w.root); err != nil {
		return err
	}

	slog.Info("Watching fixture corpus", logfields.Corpus(w.root))

	go w.watchLoop(ctx)
	go w.debounceLoop(ctx)

	return nil
}

// Stop shuts down the event loops and releases the file watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	close(w.stopChan)
	if err := w.watcher.Close(); err != nil {
		slog.Error("Error closing file watcher", logfields.Error(err))
	}
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", path, err)
		}
		if !entry.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(entry.Name(), ".") {
			return fs.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Corpus watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Create != 0 {
		// A new directory needs its own watch before files inside it are
		// visible.
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !strings.HasPrefix(filepath.Base(event.Name), ".") {
				_ = w.watcher.Add(event.Name)
				w.trigger()
			}
			return
		}
	}

	if !strings.HasSuffix(event.Name, ".txt") {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
		slog.Debug("Corpus change detected", logfields.File(event.Name))
		w.trigger()
	}
}

func (w *Watcher) debounceLoop(ctx context.Context) {
	var timer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.changeChan:
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.onChange)
		}
	}
}

func (w *Watcher) trigger() {
	select {
	case w.changeChan <- struct{}{}:
	default:
		// A change is already pending.
	}
}
