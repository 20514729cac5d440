package app

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/dshills/linedit/internal/input"
	"github.com/dshills/linedit/internal/script"
)

// RunScript applies the Lua script at path to the buffer without a
// terminal. print() output goes to out, or nowhere when out is nil.
func (app *Application) RunScript(ctx context.Context, path string, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	s := app.Settings()
	log := app.logger.WithComponent("script")

	eng := script.New(app.buf,
		script.WithOperationLimit(s.OperationLimit),
		script.WithTimeout(s.ScriptTimeout),
		script.WithOutput(out),
		script.WithIntentHook(func(in input.Intent) {
			app.stats.RecordIntent()
			log.Debug("%s: %s", in, app.buf.Debug())
		}),
	)
	defer eng.Close()

	if err := eng.RunFile(ctx, path); err != nil {
		return NewOperationError("script", path, err)
	}
	log.Info("script %s done: %d operations", path, eng.Operations())
	return nil
}

// ReadText types the text from r into the buffer one character at a time.
// Carriage returns are dropped so CRLF input yields one newline.
func (app *Application) ReadText(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		ch, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return NewOperationError("read", "input", err)
		}
		if ch == '\r' {
			continue
		}
		app.apply(input.InsertChar(ch).From(input.SourcePaste))
	}
}

// WriteContent writes the rendered content to w, followed by a newline
// when the content does not end in one.
func (app *Application) WriteContent(w io.Writer) error {
	content := app.buf.Content()
	if _, err := io.WriteString(w, content); err != nil {
		return NewOperationError("write", "content", err)
	}
	if content != "" && content[len(content)-1] != '\n' {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return NewOperationError("write", "content", err)
		}
	}
	return nil
}
