package loader

import "testing"

func TestOverlay(t *testing.T) {
	dst := map[string]any{
		"logging": map[string]any{"level": "info", "file": ""},
		"input":   map[string]any{"quit": "alt+q"},
	}
	src := map[string]any{
		"logging": map[string]any{"level": "debug"},
		"input":   "replaced",
		"render":  map[string]any{"showStatus": true},
	}

	got := Overlay(dst, src)

	if v, _ := Lookup(got, "logging.level"); v != "debug" {
		t.Errorf("logging.level = %v, want debug", v)
	}
	if v, ok := Lookup(got, "logging.file"); !ok || v != "" {
		t.Errorf("logging.file = %v, %v; want kept", v, ok)
	}
	if got["input"] != "replaced" {
		t.Errorf("input = %v, want replaced", got["input"])
	}

	// Merged maps are copies of src.
	src["render"].(map[string]any)["showStatus"] = false
	if v, _ := Lookup(got, "render.showStatus"); v != true {
		t.Errorf("render.showStatus = %v, want true after src mutation", v)
	}
}

func TestOverlay_Nil(t *testing.T) {
	got := Overlay(nil, map[string]any{"a": 1})
	if got["a"] != 1 {
		t.Errorf("Overlay(nil, src) = %v", got)
	}
	if got := Overlay(map[string]any{"a": 1}, nil); got["a"] != 1 {
		t.Errorf("Overlay(dst, nil) = %v", got)
	}
}

func TestCopy(t *testing.T) {
	src := map[string]any{
		"a": map[string]any{"b": []any{1, map[string]any{"c": 2}}},
	}
	dst := Copy(src)

	dst["a"].(map[string]any)["b"].([]any)[0] = 99
	if src["a"].(map[string]any)["b"].([]any)[0] != 1 {
		t.Error("Copy shares slices with source")
	}
	if Copy(nil) != nil {
		t.Error("Copy(nil) should be nil")
	}
}

func TestAssignLookup(t *testing.T) {
	m := map[string]any{"a": "scalar"}
	Assign(m, "a.b.c", 1)

	if v, ok := Lookup(m, "a.b.c"); !ok || v != 1 {
		t.Errorf("Lookup(a.b.c) = %v, %v", v, ok)
	}
	if _, ok := Lookup(m, "a.x"); ok {
		t.Error("Lookup(a.x) should be missing")
	}
	if _, ok := Lookup(m, ""); ok {
		t.Error("empty path should be missing")
	}
}
