package config

import (
	"fmt"
	"time"
)

// Settings is a typed snapshot of the merged configuration.
type Settings struct {
	LogLevel       string
	LogFile        string
	QuitKey        string
	TabAsSpaces    int
	ShowStatus     bool
	TabWidth       int
	OperationLimit int64
	ScriptTimeout  time.Duration
}

// Settings resolves the typed settings. It fails when a value has the wrong
// type or is out of range.
func (c *Config) Settings() (Settings, error) {
	var (
		s   Settings
		err error
	)

	if s.LogLevel, err = c.GetString("logging.level"); err != nil {
		return Settings{}, fmt.Errorf("logging.level: %w", err)
	}
	if s.LogFile, err = c.GetString("logging.file"); err != nil {
		return Settings{}, fmt.Errorf("logging.file: %w", err)
	}
	if s.QuitKey, err = c.GetString("input.quit"); err != nil {
		return Settings{}, fmt.Errorf("input.quit: %w", err)
	}
	if s.TabAsSpaces, err = c.GetInt("input.tabAsSpaces"); err != nil {
		return Settings{}, fmt.Errorf("input.tabAsSpaces: %w", err)
	}
	if s.ShowStatus, err = c.GetBool("render.showStatus"); err != nil {
		return Settings{}, fmt.Errorf("render.showStatus: %w", err)
	}
	if s.TabWidth, err = c.GetInt("render.tabWidth"); err != nil {
		return Settings{}, fmt.Errorf("render.tabWidth: %w", err)
	}
	limit, err := c.GetInt("script.operationLimit")
	if err != nil {
		return Settings{}, fmt.Errorf("script.operationLimit: %w", err)
	}
	s.OperationLimit = int64(limit)
	if s.ScriptTimeout, err = c.GetDuration("script.timeout"); err != nil {
		return Settings{}, fmt.Errorf("script.timeout: %w", err)
	}

	if s.TabAsSpaces < 0 {
		return Settings{}, fmt.Errorf("%w: input.tabAsSpaces = %d", ErrInvalidValue, s.TabAsSpaces)
	}
	if s.TabWidth < 1 {
		return Settings{}, fmt.Errorf("%w: render.tabWidth = %d", ErrInvalidValue, s.TabWidth)
	}

	return s, nil
}
