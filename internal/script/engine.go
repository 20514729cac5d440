package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/linedit/internal/engine/buffer"
	"github.com/dshills/linedit/internal/input"
)

// Default limits for script execution.
const (
	DefaultOperationLimit = 1_000_000
	DefaultTimeout        = 5 * time.Second
)

// Engine runs scripts against a single buffer.
//
// gopher-lua states are not goroutine-safe; the mutex serializes runs.
type Engine struct {
	L   *lua.LState
	buf *buffer.Buffer

	mu sync.Mutex

	operationLimit int64
	operations     int64
	limitHit       bool
	timeout        time.Duration

	out      io.Writer
	onIntent func(input.Intent)

	closed bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithOperationLimit sets the maximum buffer operations per run.
// Zero or less disables the limit.
func WithOperationLimit(limit int64) Option {
	return func(e *Engine) {
		e.operationLimit = limit
	}
}

// WithTimeout sets the wall clock limit per run. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.timeout = d
	}
}

// WithOutput redirects print() output.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.out = w
	}
}

// WithIntentHook sets a function called after each intent is applied.
func WithIntentHook(fn func(input.Intent)) Option {
	return func(e *Engine) {
		e.onIntent = fn
	}
}

// New creates an engine bound to buf.
func New(buf *buffer.Buffer, opts ...Option) *Engine {
	e := &Engine{
		buf:            buf,
		operationLimit: DefaultOperationLimit,
		timeout:        DefaultTimeout,
		out:            io.Discard,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(e.L)
	e.installSandbox()
	e.installAPI()

	return e
}

// Buffer returns the buffer the engine edits.
func (e *Engine) Buffer() *buffer.Buffer {
	return e.buf
}

// Operations returns the number of buffer operations in the last run.
func (e *Engine) Operations() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.operations
}

// Run executes code. The name identifies the chunk in errors.
func (e *Engine) Run(ctx context.Context, name, code string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}

	fn, err := e.L.LoadString(code)
	if err != nil {
		return &Error{Name: name, Err: err}
	}
	fn.Proto.SourceName = name

	return e.call(ctx, name, fn)
}

// RunFile executes the script at path.
func (e *Engine) RunFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	return e.Run(ctx, path, string(data))
}

// call runs fn with the limits applied.
func (e *Engine) call(ctx context.Context, name string, fn *lua.LFunction) (err error) {
	e.operations = 0
	e.limitHit = false

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	e.L.SetContext(ctx)
	defer e.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = &Error{Name: name, Err: fmt.Errorf("lua panic: %v", r)}
		}
	}()

	e.L.Push(fn)
	if callErr := e.L.PCall(0, lua.MultRet, nil); callErr != nil {
		e.L.SetTop(0)
		switch {
		case e.limitHit:
			return &Error{Name: name, Err: ErrOperationLimit}
		case ctx.Err() != nil:
			return &Error{Name: name, Err: ctx.Err()}
		default:
			return &Error{Name: name, Err: callErr}
		}
	}
	e.L.SetTop(0)
	return nil
}

// Close releases the Lua state. Close is idempotent.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.L.Close()
	e.closed = true
	return nil
}

// IsLimitError reports whether err was caused by the operation limit.
func IsLimitError(err error) bool {
	return errors.Is(err, ErrOperationLimit)
}
