// Package watcher reports changes to a single configuration file.
//
// The parent directory is watched rather than the file itself, so editors
// that save by renaming a temporary file over the original are seen as a
// write. Bursts of events are coalesced and delivered once the file has been
// quiet for the debounce interval.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period before an event is delivered.
const DefaultDebounce = 100 * time.Millisecond

// Event represents a file change event.
type Event struct {
	// Path is the absolute path to the changed file.
	Path string

	// Op is the operation that triggered the event.
	Op Operation

	// Time is when the last coalesced event occurred.
	Time time.Time
}

// Operation represents the type of file operation.
type Operation int

const (
	// OpWrite indicates the file was modified.
	OpWrite Operation = iota

	// OpCreate indicates the file was created.
	OpCreate

	// OpRemove indicates the file was deleted or renamed away.
	OpRemove
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Handler is called when a file change is detected.
type Handler func(event Event)

// ErrorHandler is called for errors reported by the notifier.
type ErrorHandler func(err error)

// Watcher monitors one file for changes.
type Watcher struct {
	mu sync.Mutex

	fsw  *fsnotify.Watcher
	path string

	handlers      []Handler
	errorHandlers []ErrorHandler

	debounce time.Duration
	timer    *time.Timer
	pending  *Event

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce duration. Zero delivers every event.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// New starts watching path. The file need not exist yet, but its
// directory must.
func New(path string, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     absPath,
		debounce: DefaultDebounce,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// OnChange registers a handler for file change events.
func (w *Watcher) OnChange(handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// OnError registers a handler for watch errors.
func (w *Watcher) OnError(handler ErrorHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.errorHandlers = append(w.errorHandlers, handler)
}

// Close stops watching. Pending events are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.pending = nil
	w.mu.Unlock()

	w.wg.Wait()
	return w.fsw.Close()
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleFSEvent(ev)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.emitError(err)
		}
	}
}

func (w *Watcher) handleFSEvent(ev fsnotify.Event) {
	if filepath.Clean(ev.Name) != w.path {
		return
	}

	var op Operation
	switch {
	case ev.Op.Has(fsnotify.Remove), ev.Op.Has(fsnotify.Rename):
		op = OpRemove
	case ev.Op.Has(fsnotify.Create):
		op = OpCreate
	case ev.Op.Has(fsnotify.Write):
		op = OpWrite
	default:
		return
	}

	event := Event{Path: w.path, Op: op, Time: time.Now()}
	if w.debounce == 0 {
		w.emit(event)
		return
	}
	w.queue(event)
}

// queue coalesces events for debounced delivery:
//
//	create + write => create
//	remove + create => write (rename-over save)
//	any + remove => remove
func (w *Watcher) queue(event Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	if w.pending != nil {
		switch {
		case event.Op == OpRemove:
		case w.pending.Op == OpRemove && event.Op == OpCreate:
			event.Op = OpWrite
		case w.pending.Op == OpCreate:
			event.Op = OpCreate
		}
	}
	w.pending = &event

	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.flush)
		return
	}
	w.timer.Reset(w.debounce)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	pending := w.pending
	w.pending = nil
	closed := w.closed
	w.mu.Unlock()

	if pending == nil || closed {
		return
	}
	w.emit(*pending)
}

// emit calls all handlers with the event. A panicking handler does not
// stop the watcher.
func (w *Watcher) emit(event Event) {
	w.mu.Lock()
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	for _, handler := range handlers {
		func() {
			defer func() { _ = recover() }()
			handler(event)
		}()
	}
}

func (w *Watcher) emitError(err error) {
	w.mu.Lock()
	handlers := make([]ErrorHandler, len(w.errorHandlers))
	copy(handlers, w.errorHandlers)
	w.mu.Unlock()

	for _, handler := range handlers {
		handler(err)
	}
}
