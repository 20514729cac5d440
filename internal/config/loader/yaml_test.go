package loader

import (
	"errors"
	"strings"
	"testing"
)

func TestYAMLLoader_Load(t *testing.T) {
	memfs := newMemFS(map[string]string{"/linedit.yaml": `
logging:
  level: warn
  file: /tmp/linedit.log
input:
  tabAsSpaces: 2
render:
  showStatus: false
script:
  timeout: 2s
`})

	config, err := YAML(memfs, "/linedit.yaml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		path string
		want any
	}{
		{"logging.level", "warn"},
		{"logging.file", "/tmp/linedit.log"},
		{"input.tabAsSpaces", 2},
		{"render.showStatus", false},
		{"script.timeout", "2s"},
	}
	for _, tt := range tests {
		if v, _ := Lookup(config, tt.path); v != tt.want {
			t.Errorf("%s = %v (%T), want %v", tt.path, v, v, tt.want)
		}
	}
}

func TestYAMLLoader_NonStringKeys(t *testing.T) {
	config, err := YAML(nil, "").Decode(strings.NewReader("input:\n  1: one\n"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if v, _ := Lookup(config, "input.1"); v != "one" {
		t.Errorf("input.1 = %v, want one", v)
	}
}

func TestYAMLLoader_LoadInvalid(t *testing.T) {
	memfs := newMemFS(map[string]string{"/bad.yaml": "input: [unclosed\n"})

	_, err := YAML(memfs, "/bad.yaml").Load()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
}

func TestYAMLLoader_LoadNonExistent(t *testing.T) {
	config, err := YAML(newMemFS(nil), "/missing.yml").Load()
	if err != nil || config != nil {
		t.Errorf("Load() = %v, %v; want nil, nil", config, err)
	}
}
