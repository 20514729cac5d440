package loader

import (
	"errors"
	"io/fs"
	"testing"
)

// memFS is an in-memory file system for testing.
type memFS struct {
	files map[string][]byte
}

func newMemFS(files map[string]string) *memFS {
	m := &memFS{files: make(map[string][]byte)}
	for path, content := range files {
		m.files[path] = []byte(content)
	}
	return m
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"/linedit.toml", false},
		{"/linedit.TOML", false},
		{"/linedit.yaml", false},
		{"/linedit.yml", false},
		{"/linedit.json", true},
		{"/linedit", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			l, err := ForPath(newMemFS(nil), tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("ForPath(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
				}
				return
			}
			if err != nil || l == nil {
				t.Fatalf("ForPath(%q) = %v, %v", tt.path, l, err)
			}
		})
	}
}

func TestForPathLoadsBothFormats(t *testing.T) {
	memfs := newMemFS(map[string]string{
		"/a.toml": "[input]\nquit = \"ctrl+q\"\n",
		"/a.yaml": "input:\n  quit: ctrl+q\n",
	})

	for _, path := range []string{"/a.toml", "/a.yaml"} {
		l, err := ForPath(memfs, path)
		if err != nil {
			t.Fatal(err)
		}
		data, err := l.Load()
		if err != nil {
			t.Fatalf("Load(%s) error: %v", path, err)
		}
		if v, _ := Lookup(data, "input.quit"); v != "ctrl+q" {
			t.Errorf("%s input.quit = %v, want ctrl+q", path, v)
		}
	}
}

func TestParseErrorFormat(t *testing.T) {
	tests := []struct {
		err  ParseError
		want string
	}{
		{ParseError{Path: "a.toml", Line: 3, Column: 2, Message: "bad"}, "a.toml:3:2: bad"},
		{ParseError{Path: "a.toml", Line: 3, Message: "bad"}, "a.toml:3: bad"},
		{ParseError{Path: "a.yaml", Message: "bad"}, "a.yaml: bad"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
