package script

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/linedit/internal/engine/buffer"
	"github.com/dshills/linedit/internal/input"
)

func run(t *testing.T, code string, opts ...Option) (*buffer.Buffer, error) {
	t.Helper()
	buf := buffer.New()
	e := New(buf, opts...)
	t.Cleanup(func() { e.Close() })
	return buf, e.Run(context.Background(), "test", code)
}

func TestRunEdits(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		text   string
		cursor int
	}{
		{"insert", `insert("abc")`, "abc", 3},
		{"newline", `insert("ab") newline() insert("cd")`, "ab\ncd", 5},
		{"backspace", `insert("abc") backspace()`, "ab", 2},
		{"backspace n", `insert("abc") backspace(2)`, "a", 1},
		{"backspace past start", `insert("a") backspace(5)`, "", 0},
		{"insert newline rune", "insert(\"a\\nb\")", "a\nb", 3},
		{"insert_at", `insert("ac") insert_at(1, "b")`, "abc", 2},
		{"insert_at string", `insert("ad") insert_at(1, "bc")`, "abcd", 3},
		{"remove_at", `insert("abc") remove_at(2)`, "ab", 2},
		{"remove_at zero", `insert("abc") remove_at(0)`, "bc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := run(t, tt.code)
			if err != nil {
				t.Fatalf("Run error: %v", err)
			}
			if got := buf.Text(); got != tt.text {
				t.Errorf("Text() = %q, want %q", got, tt.text)
			}
			if got := buf.Cursor(); got != tt.cursor {
				t.Errorf("Cursor() = %d, want %d", got, tt.cursor)
			}
		})
	}
}

func TestRunMatchesTyping(t *testing.T) {
	buf, err := run(t, `insert("hello") newline() newline() insert("world")`)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	want := buffer.NewFromString("hello\n\nworld")
	if buf.String() != want.String() {
		t.Errorf("script = %s\nwant     %s", buf, want)
	}
}

func TestQueries(t *testing.T) {
	var out bytes.Buffer
	_, err := run(t, `
insert("ab")
newline()
insert("c")
print(cursor(), line(), #lines())
print(content() == "ab\r\nc", text() == "ab\nc")
local ls = lines()
print(ls[1].start, ls[1].finish, ls[2].start, ls[2].finish)
`, WithOutput(&out))
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	want := "4\t1\t2\ntrue\ttrue\n0\t2\t3\t3\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestSandbox(t *testing.T) {
	for _, name := range []string{"io", "os", "debug", "package", "require", "dofile", "loadfile", "load", "loadstring"} {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := run(t, `print(type(`+name+`))`, WithOutput(&out))
			if err != nil {
				t.Fatalf("Run error: %v", err)
			}
			if got := strings.TrimSpace(out.String()); got != "nil" {
				t.Errorf("type(%s) = %q, want nil", name, got)
			}
		})
	}
}

func TestOperationLimit(t *testing.T) {
	buf, err := run(t, `insert("abcdef")`, WithOperationLimit(3))
	if err == nil {
		t.Fatal("expected operation limit error")
	}
	if !IsLimitError(err) {
		t.Errorf("error = %v, want ErrOperationLimit", err)
	}

	var se *Error
	if !errors.As(err, &se) || se.Name != "test" {
		t.Errorf("error = %#v, want *Error named test", err)
	}
	if buf.Text() != "abc" {
		t.Errorf("Text() = %q, want edits before the limit applied", buf.Text())
	}
}

func TestTimeout(t *testing.T) {
	_, err := run(t, `while true do end`, WithTimeout(50*time.Millisecond))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want deadline exceeded", err)
	}
}

func TestSyntaxError(t *testing.T) {
	_, err := run(t, `insert(`)
	var se *Error
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *Error", err)
	}
}

func TestRuntimeError(t *testing.T) {
	_, err := run(t, `insert(nil)`)
	if err == nil {
		t.Fatal("expected error for bad argument")
	}
	if IsLimitError(err) {
		t.Errorf("error = %v, should not be a limit error", err)
	}
}

func TestIntentHook(t *testing.T) {
	var got []input.Intent
	_, err := run(t, `insert("a") newline() backspace()`, WithIntentHook(func(in input.Intent) {
		got = append(got, in)
	}))
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	want := []input.Kind{input.KindInsertChar, input.KindInsertNewline, input.KindDeleteBackward}
	if len(got) != len(want) {
		t.Fatalf("intents = %v", got)
	}
	for i, in := range got {
		if in.Kind != want[i] || in.Source != input.SourceScript {
			t.Errorf("intent[%d] = %+v, want kind %v from script", i, in, want[i])
		}
	}
}

func TestIntentHookPositional(t *testing.T) {
	var got []input.Intent
	buf, err := run(t, `insert("xy") insert_at(0, "ab") remove_at(0)`, WithIntentHook(func(in input.Intent) {
		got = append(got, in)
	}))
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	want := []input.Intent{
		input.InsertChar('x'),
		input.InsertChar('y'),
		input.InsertAt(0, 'a'),
		input.InsertChar('b'),
		input.DeleteAt(0),
	}
	if len(got) != len(want) {
		t.Fatalf("intents = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i].From(input.SourceScript) {
			t.Errorf("intent[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if buf.Text() != "bxy" {
		t.Errorf("Text() = %q, want %q", buf.Text(), "bxy")
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edits.lua")
	if err := os.WriteFile(path, []byte(`insert("x")`), 0o644); err != nil {
		t.Fatal(err)
	}

	buf := buffer.New()
	e := New(buf)
	defer e.Close()

	if err := e.RunFile(context.Background(), path); err != nil {
		t.Fatalf("RunFile error: %v", err)
	}
	if buf.Text() != "x" {
		t.Errorf("Text() = %q, want x", buf.Text())
	}
	if e.Operations() != 1 {
		t.Errorf("Operations() = %d, want 1", e.Operations())
	}

	if err := e.RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestClosed(t *testing.T) {
	e := New(buffer.New())
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
	if err := e.Close(); err != nil {
		t.Errorf("second Close error: %v", err)
	}
	if err := e.Run(context.Background(), "x", ""); !errors.Is(err, ErrEngineClosed) {
		t.Errorf("Run after Close = %v, want ErrEngineClosed", err)
	}
}
