package app

import (
	"errors"
	"time"

	"github.com/dshills/linedit/internal/input"
	"github.com/dshills/linedit/internal/renderer/backend"
)

// eventLoop paints the first frame, then handles one event at a time.
// Events are read on a separate goroutine so Shutdown can interrupt a
// blocked poll.
func (app *Application) eventLoop(be backend.Backend) error {
	events := make(chan backend.Event)
	go app.pollEvents(be, events)

	app.render()

	for {
		select {
		case <-app.done:
			return nil

		case ev := <-events:
			if err := app.handleEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					app.logger.Debug("quit requested")
					return nil
				}
				return err
			}
		}
	}
}

func (app *Application) pollEvents(be backend.Backend, out chan<- backend.Event) {
	for {
		ev := be.PollEvent()
		select {
		case out <- ev:
		case <-app.done:
			return
		}
	}
}

// handleEvent translates ev and applies each resulting intent as its own
// mutation, repainting after each one. Returns ErrQuit if the user asked
// to leave.
func (app *Application) handleEvent(ev backend.Event) error {
	if app.reloaded.CompareAndSwap(true, false) {
		app.applySettings()
	}

	if ev.Type == backend.EventResize {
		app.renderer.Resize(ev.Width, ev.Height)
	}

	res := app.translator.Translate(ev)
	app.stats.RecordEvent(len(res.Intents) == 0 && !res.Repaint && !res.Quit)
	if res.Quit {
		return ErrQuit
	}

	for _, in := range res.Intents {
		app.apply(in)
		app.render()
	}
	if res.Repaint && len(res.Intents) == 0 {
		app.render()
	}
	return nil
}

// apply performs one intent on the buffer.
func (app *Application) apply(in input.Intent) {
	in.Apply(app.buf)
	app.stats.RecordIntent()
	app.logger.Debug("%s from %s: %s", in, in.Source, app.buf.Debug())
}

func (app *Application) render() {
	start := time.Now()
	app.renderer.Render(app.buf.Snapshot())
	app.stats.RecordFrame(time.Since(start))
}

// applySettings pushes reloaded settings into the loop's collaborators.
func (app *Application) applySettings() {
	s := app.Settings()
	app.translator.SetConfig(inputConfig(s))
	app.renderer.SetOptions(renderOptions(s))
	app.logger.SetLevel(ParseLogLevel(s.LogLevel))
	app.render()
}
