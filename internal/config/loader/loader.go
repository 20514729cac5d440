// Package loader reads settings files and environment variables into
// nested maps.
//
// Files are parsed by extension: ".toml" with go-toml, ".yaml" and ".yml"
// with yaml.v3. A missing file is not an error; Load returns nil, nil.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for a file extension with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Loader produces one layer of settings.
type Loader interface {
	Load() (map[string]any, error)
}

// FileSystem is the read access File needs. Tests substitute a map.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

type osFS struct{}

func (osFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// DefaultFS reads from the operating system.
func DefaultFS() FileSystem {
	return osFS{}
}

type decodeFunc func(source string, data []byte) (map[string]any, error)

var (
	_ Loader = (*File)(nil)
	_ Loader = (*EnvLoader)(nil)
)

// File is a settings file in one format.
type File struct {
	fsys   FileSystem
	path   string
	decode decodeFunc
}

// TOML returns a loader for a TOML file. A nil fsys reads from disk.
func TOML(fsys FileSystem, path string) *File {
	return newFile(fsys, path, decodeTOML)
}

// YAML returns a loader for a YAML file. A nil fsys reads from disk.
func YAML(fsys FileSystem, path string) *File {
	return newFile(fsys, path, decodeYAML)
}

func newFile(fsys FileSystem, path string, decode decodeFunc) *File {
	if fsys == nil {
		fsys = DefaultFS()
	}
	return &File{fsys: fsys, path: path, decode: decode}
}

// ForPath picks the decoder from the extension of path.
func ForPath(fsys FileSystem, path string) (*File, error) {
	switch ext := filepath.Ext(path); strings.ToLower(ext) {
	case ".toml":
		return TOML(fsys, path), nil
	case ".yaml", ".yml":
		return YAML(fsys, path), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Path returns the file the loader reads.
func (f *File) Path() string {
	return f.path
}

// Load reads and decodes the file.
func (f *File) Load() (map[string]any, error) {
	data, err := f.fsys.ReadFile(f.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", f.path, err)
	}
	return f.decode(f.path, data)
}

// Decode parses settings from r in the file's format.
func (f *File) Decode(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return f.decode("<reader>", data)
}

// ParseError locates a syntax error in a settings file. Line and Column
// are zero when the decoder does not report them.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc += fmt.Sprintf(":%d", e.Line)
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
	}
	return loc + ": " + e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
