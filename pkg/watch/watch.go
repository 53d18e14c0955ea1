// Package watch re-validates filings as their extraction dumps change on
// disk. Point a Watcher at a directory of source-document JSON files and it
// re-runs the analyzer and rule checks on every write, delivering fresh
// reports through a callback.
package watch

import (
	"fmt"
	"strings"
	"sync"

	"gopkg.in/fsnotify.v1"

	"github.com/coolbeans/docket/pkg/analyze"
	"github.com/coolbeans/docket/pkg/rules"
	"github.com/coolbeans/docket/pkg/types"
)

// Result is one re-validation outcome. Err is set when the file could not
// be loaded or analyzed; Report is set otherwise.
type Result struct {
	Path   string
	Report *rules.Report
	Err    error
}

// Watcher re-validates extraction dumps in a directory as they change.
type Watcher struct {
	dir     string
	checker *rules.Checker

	watcher  *fsnotify.Watcher
	stopChan chan struct{}
	onResult func(Result)

	mu     sync.RWMutex
	latest map[string]*rules.Report
}

// NewWatcher creates a watcher over dir using the given checker.
func NewWatcher(dir string, checker *rules.Checker) *Watcher {
	return &Watcher{
		dir:     dir,
		checker: checker,
		latest:  make(map[string]*rules.Report),
	}
}

// SetOnResult sets the callback invoked after each re-validation.
func (w *Watcher) SetOnResult(fn func(Result)) {
	w.onResult = fn
}

// Latest returns the most recent report for a path, if any.
func (w *Watcher) Latest(path string) (*rules.Report, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	r, ok := w.latest[path]
	return r, ok
}

// Watch starts watching the directory for changes.
func (w *Watcher) Watch() error {
	if w.dir == "" {
		return fmt.Errorf("no directory configured for watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	w.watcher = watcher
	w.stopChan = make(chan struct{})

	go w.watchLoop()

	if err := watcher.Add(w.dir); err != nil {
		w.watcher.Close()
		return fmt.Errorf("watching directory %s: %w", w.dir, err)
	}

	return nil
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if !strings.HasSuffix(event.Name, ".json") {
				continue
			}

			switch {
			case event.Op&fsnotify.Create == fsnotify.Create:
				w.revalidate(event.Name)

			case event.Op&fsnotify.Write == fsnotify.Write:
				w.revalidate(event.Name)

			case event.Op&fsnotify.Remove == fsnotify.Remove:
				w.forget(event.Name)

			case event.Op&fsnotify.Rename == fsnotify.Rename:
				w.forget(event.Name)
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// Revalidate loads, analyzes, and checks one extraction dump, recording and
// delivering the result.
func (w *Watcher) Revalidate(path string) (*rules.Report, error) {
	doc, err := types.LoadSourceDocument(path)
	if err != nil {
		return nil, err
	}
	md, err := analyze.Analyze(doc)
	if err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", path, err)
	}

	report := rules.NewReport(w.checker.Validate(analyze.BuildChecklist(md)))

	w.mu.Lock()
	w.latest[path] = report
	w.mu.Unlock()

	return report, nil
}

func (w *Watcher) revalidate(path string) {
	report, err := w.Revalidate(path)
	if w.onResult != nil {
		w.onResult(Result{Path: path, Report: report, Err: err})
	}
}

func (w *Watcher) forget(path string) {
	w.mu.Lock()
	delete(w.latest, path)
	w.mu.Unlock()
}

// StopWatch stops watching the directory.
func (w *Watcher) StopWatch() {
	if w.stopChan != nil {
		close(w.stopChan)
	}
	if w.watcher != nil {
		w.watcher.Close()
	}
}
