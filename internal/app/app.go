package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/linedit/internal/config"
	"github.com/dshills/linedit/internal/engine/buffer"
	"github.com/dshills/linedit/internal/input"
	"github.com/dshills/linedit/internal/input/key"
	"github.com/dshills/linedit/internal/renderer"
	"github.com/dshills/linedit/internal/renderer/backend"
)

// Application owns one buffer and drives it from terminal events or a
// script.
type Application struct {
	mu sync.Mutex

	config   *config.Config
	settings atomic.Pointer[config.Settings]
	reloaded atomic.Bool

	logger  *Logger
	logFile *os.File
	session string
	stats   *Stats

	buf        *buffer.Buffer
	backend    backend.Backend
	renderer   *renderer.Renderer
	translator *input.Translator

	running  atomic.Bool
	done     chan struct{}
	stopOnce sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to a TOML or YAML configuration file.
	ConfigPath string

	// LogLevel overrides logging.level when set.
	LogLevel string

	// LogFile overrides logging.file when set.
	LogFile string

	// Watch reloads the configuration file when it changes.
	Watch bool

	// Environ replaces the process environment for LINEDIT_* lookup.
	Environ []string

	// LogOutput is where logs go outside raw mode. Defaults to os.Stderr.
	LogOutput io.Writer
}

// New creates an Application with an empty buffer.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		done:    make(chan struct{}),
		session: uuid.NewString(),
		stats:   NewStats(),
		buf:     buffer.New(),
	}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap loads configuration and sets up logging.
func (app *Application) bootstrap() error {
	cfgOpts := []config.Option{
		config.WithFile(app.opts.ConfigPath),
		config.WithWatcher(app.opts.Watch),
	}
	if app.opts.Environ != nil {
		cfgOpts = append(cfgOpts, config.WithEnviron(app.opts.Environ))
	}
	app.config = config.New(cfgOpts...)

	if app.opts.LogLevel != "" {
		_ = app.config.Set("logging.level", app.opts.LogLevel)
	}
	if app.opts.LogFile != "" {
		_ = app.config.Set("logging.file", app.opts.LogFile)
	}

	if err := app.config.Load(context.Background()); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	s, err := app.config.Settings()
	if err != nil {
		app.config.Close()
		return &InitError{Component: "config", Err: err}
	}
	if _, err := key.Parse(s.QuitKey); err != nil {
		app.config.Close()
		return &InitError{Component: "config", Err: fmt.Errorf("input.quit: %w", err)}
	}
	app.settings.Store(&s)

	out := app.opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	app.logger = NewLogger(LoggerConfig{
		Level:  ParseLogLevel(s.LogLevel),
		Output: out,
		Prefix: "linedit",
	}).WithField("session", app.session)

	app.config.OnReload(app.handleReload)
	app.config.OnError(func(err error) {
		app.logger.WithComponent("config").Warn("reload failed: %v", err)
	})

	app.logger.Debug("config loaded from %q", app.config.Path())
	return nil
}

// handleReload runs on the watcher goroutine. The new settings are swapped
// in atomically and applied by the event loop before the next event.
func (app *Application) handleReload(s config.Settings) {
	if _, err := key.Parse(s.QuitKey); err != nil {
		app.logger.WithComponent("config").Warn("ignoring reload: input.quit: %v", err)
		return
	}
	app.settings.Store(&s)
	app.reloaded.Store(true)
	app.stats.RecordReload()
	app.logger.WithComponent("config").Info("settings reloaded")
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Buffer returns the buffer being edited.
func (app *Application) Buffer() *buffer.Buffer {
	return app.buf
}

// SetBuffer replaces the buffer. Must be called before Run().
func (app *Application) SetBuffer(b *buffer.Buffer) {
	app.buf = b
}

// Session returns the session id attached to every log line.
func (app *Application) Session() string {
	return app.session
}

// Settings returns the current settings.
func (app *Application) Settings() config.Settings {
	return *app.settings.Load()
}

// Config returns the configuration system.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Stats returns the session counters.
func (app *Application) Stats() *Stats {
	return app.stats
}

// Renderer returns the renderer, or nil before Run.
func (app *Application) Renderer() *renderer.Renderer {
	return app.renderer
}

// IsRunning returns true if the event loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Run starts the interactive loop and blocks until quit or Shutdown.
// While the terminal is in raw mode logs go to logging.file, or nowhere.
func (app *Application) Run() error {
	app.mu.Lock()
	be := app.backend
	app.mu.Unlock()
	if be == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.redirectLogs(); err != nil {
		return &InitError{Component: "logging", Err: err}
	}

	if err := be.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer be.Shutdown()

	s := app.Settings()
	app.renderer = renderer.New(be, renderOptions(s))
	app.translator = input.NewTranslator(inputConfig(s))

	app.logger.Info("session started")
	defer func() {
		snap := app.stats.Snapshot()
		app.logger.Info("session ended: events=%d intents=%d frames=%d", snap.Events, snap.Intents, snap.Frames)
	}()

	return app.eventLoop(be)
}

// redirectLogs points the logger at logging.file, or discards output.
func (app *Application) redirectLogs() error {
	path := app.Settings().LogFile
	if path == "" {
		app.logger.Disable()
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	app.logFile = f
	app.logger.SetOutput(f)
	return nil
}

// Shutdown stops the event loop and releases resources. It may be called
// from any goroutine, more than once.
func (app *Application) Shutdown() {
	app.stopOnce.Do(func() {
		close(app.done)

		app.mu.Lock()
		be := app.backend
		app.mu.Unlock()
		if be != nil {
			// Wake a poller blocked on the backend.
			be.PostEvent(backend.Event{Type: backend.EventNone})
		}

		app.config.Close()
	})
}

// Close releases resources held outside the event loop.
func (app *Application) Close() error {
	app.Shutdown()
	if app.logFile != nil {
		return app.logFile.Close()
	}
	return nil
}

func renderOptions(s config.Settings) renderer.Options {
	return renderer.Options{ShowStatus: s.ShowStatus, TabWidth: s.TabWidth}
}

func inputConfig(s config.Settings) input.Config {
	cfg := input.DefaultConfig()
	if spec, err := key.Parse(s.QuitKey); err == nil {
		cfg.Quit = spec
	}
	cfg.TabSpaces = s.TabAsSpaces
	return cfg
}
