package loader

import (
	"errors"

	"github.com/pelletier/go-toml/v2"
)

func decodeTOML(source string, data []byte) (map[string]any, error) {
	var settings map[string]any
	err := toml.Unmarshal(data, &settings)
	if err == nil {
		return settings, nil
	}

	pe := &ParseError{Path: source, Message: err.Error(), Err: err}
	var de *toml.DecodeError
	if errors.As(err, &de) {
		pe.Line, pe.Column = de.Position()
	}
	return nil, pe
}
