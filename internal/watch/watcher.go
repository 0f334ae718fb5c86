// SPDX-License-Identifier: MPL-2.0

// Package watch provides file-watching with debounced change callbacks over
// the cascade's source directories (theme package plus the project's
// override roots).
//
// Events within the debounce window are coalesced so the callback fires once
// with the full set of changed paths. The watcher holds no resolution state:
// consumers re-run the cascade on every callback, which is exactly what the
// cache-free resolution model is for.
package watch

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the delay before firing the callback after the last
// filesystem event, so an editor's write-then-rename dance coalesces into a
// single rebuild.
const defaultDebounce = 300 * time.Millisecond

// defaultIgnores lists path patterns that never trigger callbacks: VCS
// metadata, dependency caches, editor swap files, and OS metadata.
var defaultIgnores = []string{
	"**/.git/**",
	"**/node_modules/**",
	"**/*.swp",
	"**/*.swo",
	"**/*~",
	"**/.DS_Store",
}

type (
	// Config holds the parameters for a Watcher.
	Config struct {
		// Roots are the directories to watch recursively. Roots that do not
		// exist are skipped; they may be created later, but the watcher does
		// not pick them up until restarted.
		Roots []string

		// Ignore are additional doublestar-compatible glob patterns for
		// paths that should never trigger callbacks, merged with the
		// built-in defaults.
		Ignore []string

		// Debounce is the quiet period after the last event before the
		// callback fires. Zero or negative falls back to defaultDebounce.
		Debounce time.Duration

		// OnChange is called after the debounce window closes with the
		// deduplicated list of changed absolute paths. A nil callback is a
		// no-op.
		OnChange func(ctx context.Context, changed []string) error

		// Stderr is the writer for watcher diagnostics. nil defaults to
		// os.Stderr.
		Stderr io.Writer
	}

	// Watcher monitors the configured roots and fires a debounced callback
	// when files change. Run must be called exactly once.
	Watcher struct {
		cfg      Config
		fsw      *fsnotify.Watcher
		ignores  []string
		stderr   io.Writer
		debounce time.Duration
		started  bool
	}
)

// New creates a Watcher from the given Config and registers every
// non-ignored directory under the existing roots.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}

	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &Watcher{
		cfg:      cfg,
		fsw:      fsw,
		ignores:  append(slices.Clone(defaultIgnores), cfg.Ignore...),
		stderr:   stderr,
		debounce: debounce,
	}

	for _, root := range cfg.Roots {
		if err := w.addTree(root); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

// Run processes filesystem events until the context is canceled. It owns
// the fsnotify watcher and closes it on return.
func (w *Watcher) Run(ctx context.Context) error {
	if w.started {
		return fmt.Errorf("watch: Run called twice")
	}
	w.started = true

	var (
		mu      sync.Mutex
		pending = make(map[string]struct{})
		timer   *time.Timer
	)

	fire := func() {
		mu.Lock()
		if len(pending) == 0 {
			mu.Unlock()
			return
		}
		changed := slices.Sorted(maps.Keys(pending))
		clear(pending)
		mu.Unlock()

		if w.cfg.OnChange != nil {
			if err := w.cfg.OnChange(ctx, changed); err != nil {
				fmt.Fprintf(w.stderr, "watch: callback error: %v\n", err)
			}
		}
	}

	defer func() {
		mu.Lock()
		localTimer := timer
		mu.Unlock()
		if localTimer != nil {
			localTimer.Stop()
		}
		if err := w.fsw.Close(); err != nil {
			fmt.Fprintf(w.stderr, "watch: close fsnotify: %v\n", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watch: fsnotify event channel closed unexpectedly")
			}

			if w.isIgnored(evt.Name) {
				continue
			}

			// Extend the watch to directories created after startup so the
			// recursive illusion holds.
			if evt.Has(fsnotify.Create) {
				if info, statErr := os.Stat(evt.Name); statErr == nil && info.IsDir() {
					if addErr := w.addTree(evt.Name); addErr != nil {
						fmt.Fprintf(w.stderr, "watch: %v\n", addErr)
					}
					continue
				}
			}

			mu.Lock()
			pending[evt.Name] = struct{}{}
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watch: fsnotify error channel closed unexpectedly")
			}
			fmt.Fprintf(w.stderr, "watch: fsnotify error: %v\n", err)
		}
	}
}

// addTree registers root and every non-ignored directory below it. A
// missing root is skipped silently; override directories commonly do not
// exist yet.
func (w *Watcher) addTree(root string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("watch: resolve root %q: %w", root, err)
	}
	if _, err := os.Stat(absRoot); os.IsNotExist(err) {
		return nil
	}

	walkErr := filepath.WalkDir(absRoot, func(path string, d os.DirEntry, walkDirErr error) error {
		if walkDirErr != nil {
			// Skip inaccessible branches rather than aborting the walk.
			fmt.Fprintf(w.stderr, "watch: skipping inaccessible path %q: %v\n", path, walkDirErr)
			return nil
		}
		if !d.IsDir() || w.isIgnored(path) {
			return nil
		}
		if addErr := w.fsw.Add(path); addErr != nil {
			fmt.Fprintf(w.stderr, "watch: cannot watch %q: %v\n", path, addErr)
		}
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("watch: walk %q: %w", absRoot, walkErr)
	}
	return nil
}

// isIgnored reports whether path matches any ignore pattern.
func (w *Watcher) isIgnored(path string) bool {
	normalized := filepath.ToSlash(path)
	for _, pat := range w.ignores {
		if matched, err := doublestar.Match(pat, normalized); err == nil && matched {
			return true
		}
	}
	return false
}

// DefaultIgnores returns a copy of the built-in ignore patterns.
func DefaultIgnores() []string {
	return slices.Clone(defaultIgnores)
}
