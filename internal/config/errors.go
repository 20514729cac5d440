package config

import (
	"errors"
	"fmt"
)

var (
	ErrSettingNotFound = errors.New("setting not found")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrInvalidPath     = errors.New("invalid setting path")

	// ErrInvalidValue is returned by Settings when a value is out of range.
	ErrInvalidValue = errors.New("invalid setting value")
)

// SettingError reports which setting an accessor failed on. It unwraps to
// ErrSettingNotFound or ErrTypeMismatch.
type SettingError struct {
	Path  string
	Want  string // empty when the setting is missing
	Value any
	Err   error
}

func (e *SettingError) Error() string {
	if e.Want == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v: want %s, have %s", e.Path, e.Err, e.Want, kindOf(e.Value))
}

func (e *SettingError) Unwrap() error {
	return e.Err
}

func missing(path string) error {
	return &SettingError{Path: path, Err: ErrSettingNotFound}
}

func mismatch(path, want string, v any) error {
	return &SettingError{Path: path, Want: want, Value: v, Err: ErrTypeMismatch}
}

// kindOf names v the way a config file author would.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "nothing"
	case string:
		return "string"
	case int, int64, float64:
		return "number"
	case bool:
		return "bool"
	case map[string]any:
		return "table"
	case []any:
		return "list"
	}
	return fmt.Sprintf("%T", v)
}
