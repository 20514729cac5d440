// Package app wires the buffer, renderer, input translation, scripting and
// configuration into the linedit program.
package app

import (
	"errors"
	"fmt"
)

var (
	// ErrQuit is returned by Run when the quit key ends the session.
	ErrQuit = errors.New("quit requested")

	ErrAlreadyRunning = errors.New("application already running")
	ErrNoBackend      = errors.New("no terminal backend")
)

// OperationError wraps a failure of a headless step such as reading
// stdin, running a script, or writing the result.
type OperationError struct {
	Op     string
	Target string // file path or stream name, may be empty
	Err    error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	what := e.Op
	if e.Target != "" {
		what += " " + e.Target
	}
	if e.Err == nil {
		return what
	}
	return fmt.Sprintf("%s: %v", what, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }

// InitError reports which part of startup failed: config, logging or
// backend.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }
