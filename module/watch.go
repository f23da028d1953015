package module

import (
	"kyfoo/report"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports file changes under a Set's module roots, for a long-running
// driver (eg. an editor-integration server) rather than a one-shot compile.
// It owns nothing resolution-related itself; OnChange is the caller's hook
// to re-run Set.ResolveAll.
type Watcher struct {
	fsw      *fsnotify.Watcher
	reporter *report.Reporter
	OnChange func(absPath string)
}

// NewWatcher opens an fsnotify watcher and registers every module root
// currently in s.
func NewWatcher(s *Set) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{fsw: fsw, reporter: s.reporter}
	for _, m := range s.modules {
		if err := fsw.Add(m.absPath); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

// Run drains filesystem events until the watcher is closed, invoking
// OnChange for every write/create event and logging a warning for any
// watcher-internal error.
func (w *Watcher) Run() {
	diag := report.NewDiagnostics(w.reporter, "watch")
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 && w.OnChange != nil {
				w.OnChange(ev.Name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			diag.Warn(nil, "watch error: %s", err)
		}
	}
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error { return w.fsw.Close() }
