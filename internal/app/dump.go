package app

import (
	"github.com/tidwall/sjson"

	"github.com/dshills/linedit/internal/engine/buffer"
)

// MarshalSnapshot renders a buffer snapshot as JSON:
//
//	{"cursor":3,"line":1,"position":{"line":1,"column":0},
//	 "content":"ab\r\n","text":"ab\n","lines":[[0,2],[3,3]],
//	 "debug":"buffer [ ... ]"}
func MarshalSnapshot(text string, snap buffer.Snapshot) ([]byte, error) {
	out := []byte(`{"lines":[]}`)

	fields := []struct {
		path  string
		value any
	}{
		{"cursor", snap.Cursor},
		{"line", snap.Position.Line},
		{"position.line", snap.Position.Line},
		{"position.column", snap.Position.Column},
		{"content", snap.Content},
		{"text", text},
	}

	var err error
	for _, f := range fields {
		if out, err = sjson.SetBytes(out, f.path, f.value); err != nil {
			return nil, err
		}
	}
	for _, lr := range snap.Lines {
		if out, err = sjson.SetBytes(out, "lines.-1", []int{lr.Start(), lr.End()}); err != nil {
			return nil, err
		}
	}
	if out, err = sjson.SetBytes(out, "debug", snap.Debug); err != nil {
		return nil, err
	}
	return out, nil
}

// DumpState renders the buffer and session counters as JSON.
func (app *Application) DumpState() ([]byte, error) {
	out, err := MarshalSnapshot(app.buf.Text(), app.buf.Snapshot())
	if err != nil {
		return nil, NewOperationError("dump", "state", err)
	}

	stats := app.stats.Snapshot()
	fields := []struct {
		path  string
		value any
	}{
		{"session", app.session},
		{"stats.events", stats.Events},
		{"stats.intents", stats.Intents},
		{"stats.frames", stats.Frames},
		{"stats.reloads", stats.Reloads},
	}
	for _, f := range fields {
		if out, err = sjson.SetBytes(out, f.path, f.value); err != nil {
			return nil, NewOperationError("dump", "state", err)
		}
	}
	return out, nil
}
