package loader

import "strings"

// Overlay writes top over base and returns base. Nested tables are
// combined key by key; anything else in top replaces what base had.
// Values taken from top are copied, so later edits to top do not leak.
func Overlay(base, top map[string]any) map[string]any {
	if base == nil {
		base = make(map[string]any, len(top))
	}
	for k, v := range top {
		if sub, ok := v.(map[string]any); ok {
			if have, ok := base[k].(map[string]any); ok {
				base[k] = Overlay(have, sub)
				continue
			}
		}
		base[k] = copyValue(v)
	}
	return base
}

// Copy returns a deep copy of m. Copy(nil) is nil.
func Copy(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return Overlay(make(map[string]any, len(m)), m)
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Copy(t)
	case []any:
		list := make([]any, 0, len(t))
		for _, item := range t {
			list = append(list, copyValue(item))
		}
		return list
	}
	return v
}

// Lookup finds the value at a dotted path such as "input.quit".
func Lookup(m map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	var v any = m
	for key := range strings.SplitSeq(path, ".") {
		table, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		if v, ok = table[key]; !ok {
			return nil, false
		}
	}
	return v, true
}

// Assign stores value at a dotted path, creating tables on the way and
// replacing any scalar that sits where a table is needed.
func Assign(m map[string]any, path string, value any) {
	if m == nil || path == "" {
		return
	}
	head, rest, nested := strings.Cut(path, ".")
	if !nested {
		m[head] = value
		return
	}
	table, ok := m[head].(map[string]any)
	if !ok {
		table = map[string]any{}
		m[head] = table
	}
	Assign(table, rest, value)
}
