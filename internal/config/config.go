package config

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dshills/linedit/internal/config/loader"
	"github.com/dshills/linedit/internal/config/watcher"
)

// Config holds the merged settings and reloads them when the file changes.
type Config struct {
	mu sync.RWMutex

	merged    map[string]any
	overrides map[string]any

	path      string
	envPrefix string
	environ   []string
	fs        loader.FileSystem

	enableWatcher bool
	watcher       *watcher.Watcher

	reloadHandlers []func(Settings)
	errorHandlers  []func(error)
}

// Option configures a Config instance.
type Option func(*Config)

// WithFile sets the config file path. The format follows the extension.
func WithFile(path string) Option {
	return func(c *Config) {
		c.path = path
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithEnviron reads environment variables from env instead of the process.
func WithEnviron(env []string) Option {
	return func(c *Config) {
		c.environ = env
	}
}

// WithFS sets the file system used to read the config file.
func WithFS(fs loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fs
	}
}

// WithWatcher enables file watching for live reload.
func WithWatcher(enable bool) Option {
	return func(c *Config) {
		c.enableWatcher = enable
	}
}

// New creates a Config holding only the defaults. Call Load to read the
// file and environment.
func New(opts ...Option) *Config {
	c := &Config{
		merged:    defaultConfig(),
		overrides: make(map[string]any),
		envPrefix: loader.DefaultEnvPrefix,
		fs:        loader.DefaultFS(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads all sources and starts the file watcher when enabled.
func (c *Config) Load(_ context.Context) error {
	if err := c.Reload(); err != nil {
		return err
	}

	if !c.enableWatcher || c.path == "" {
		return nil
	}

	w, err := watcher.New(c.path)
	if err != nil {
		return fmt.Errorf("watching %s: %w", c.path, err)
	}
	w.OnChange(c.handleFileChange)
	w.OnError(c.emitError)

	c.mu.Lock()
	c.watcher = w
	c.mu.Unlock()
	return nil
}

// Reload rebuilds the merged settings from every source. On error the
// previous settings are kept.
func (c *Config) Reload() error {
	merged := defaultConfig()

	if c.path != "" {
		l, err := loader.ForPath(c.fs, c.path)
		if err != nil {
			return err
		}
		data, err := l.Load()
		if err != nil {
			return err
		}
		merged = loader.Overlay(merged, data)
	}

	env := loader.NewEnvLoader(c.envPrefix)
	if c.environ != nil {
		env = loader.NewEnvLoaderFrom(c.envPrefix, c.environ)
	}
	data, err := env.Load()
	if err != nil {
		return fmt.Errorf("loading environment: %w", err)
	}
	merged = loader.Overlay(merged, data)

	c.mu.Lock()
	merged = loader.Overlay(merged, c.overrides)
	c.merged = merged
	c.mu.Unlock()

	return nil
}

// OnReload registers a handler called with fresh settings after the file
// changes and is reloaded successfully.
func (c *Config) OnReload(fn func(Settings)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reloadHandlers = append(c.reloadHandlers, fn)
}

// OnError registers a handler for reload and watch errors.
func (c *Config) OnError(fn func(error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorHandlers = append(c.errorHandlers, fn)
}

// Path returns the config file path, or "" when none is configured.
func (c *Config) Path() string {
	return c.path
}

// Close stops the file watcher.
func (c *Config) Close() {
	c.mu.Lock()
	w := c.watcher
	c.watcher = nil
	c.mu.Unlock()

	if w != nil {
		_ = w.Close()
	}
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return loader.Lookup(c.merged, path)
}

// Set overrides a setting. Overrides take precedence over every source
// and are kept across reloads.
func (c *Config) Set(path string, value any) error {
	if path == "" || strings.HasPrefix(path, ".") || strings.HasSuffix(path, ".") || strings.Contains(path, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	loader.Assign(c.overrides, path, value)
	loader.Assign(c.merged, path, value)
	return nil
}

// Merged returns a copy of the merged configuration.
func (c *Config) Merged() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return loader.Copy(c.merged)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", missing(path)
	}
	s, ok := v.(string)
	if !ok {
		return "", mismatch(path, "string", v)
	}
	return s, nil
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, missing(path)
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		return int(val), nil
	default:
		return 0, mismatch(path, "int", v)
	}
}

// GetBool returns a boolean value at the given path.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, missing(path)
	}
	b, ok := v.(bool)
	if !ok {
		return false, mismatch(path, "bool", v)
	}
	return b, nil
}

// GetDuration returns a duration at the given path. Strings use
// time.ParseDuration syntax; bare numbers are milliseconds.
func (c *Config) GetDuration(path string) (time.Duration, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, missing(path)
	}
	switch val := v.(type) {
	case time.Duration:
		return val, nil
	case string:
		d, err := time.ParseDuration(val)
		if err != nil {
			return 0, mismatch(path, "duration", v)
		}
		return d, nil
	case int:
		return time.Duration(val) * time.Millisecond, nil
	case int64:
		return time.Duration(val) * time.Millisecond, nil
	default:
		return 0, mismatch(path, "duration", v)
	}
}

// handleFileChange reloads the settings after the watcher reports a change.
// A removed file falls back to defaults and environment.
func (c *Config) handleFileChange(event watcher.Event) {
	if err := c.Reload(); err != nil {
		c.emitError(fmt.Errorf("reloading %s after %s: %w", event.Path, event.Op, err))
		return
	}

	s, err := c.Settings()
	if err != nil {
		c.emitError(err)
		return
	}

	c.mu.RLock()
	handlers := make([]func(Settings), len(c.reloadHandlers))
	copy(handlers, c.reloadHandlers)
	c.mu.RUnlock()

	for _, fn := range handlers {
		fn(s)
	}
}

func (c *Config) emitError(err error) {
	c.mu.RLock()
	handlers := make([]func(error), len(c.errorHandlers))
	copy(handlers, c.errorHandlers)
	c.mu.RUnlock()

	for _, fn := range handlers {
		fn(err)
	}
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"logging": map[string]any{
			"level": "info",
			"file":  "",
		},
		"input": map[string]any{
			"quit":        "alt+q",
			"tabAsSpaces": 0,
		},
		"render": map[string]any{
			"showStatus": false,
			"tabWidth":   8,
		},
		"script": map[string]any{
			"operationLimit": 1_000_000,
			"timeout":        "5s",
		},
	}
}
