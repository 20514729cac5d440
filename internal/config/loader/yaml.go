package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func decodeYAML(source string, data []byte) (map[string]any, error) {
	var settings map[string]any
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	for k, v := range settings {
		settings[k] = stringKeys(v)
	}
	return settings, nil
}

// stringKeys rewrites the map[any]any tables yaml.v3 builds for
// non-string keys so every table is a map[string]any.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		table := make(map[string]any, len(t))
		for k, item := range t {
			table[fmt.Sprint(k)] = stringKeys(item)
		}
		return table
	case map[string]any:
		for k, item := range t {
			t[k] = stringKeys(item)
		}
	case []any:
		for i, item := range t {
			t[i] = stringKeys(item)
		}
	}
	return v
}
