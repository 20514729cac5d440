package loader

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultEnvPrefix is the prefix for linedit environment variables.
const DefaultEnvPrefix = "LINEDIT_"

// EnvLoader loads configuration from environment variables.
//
// Explicit mappings win; any other prefixed variable becomes a path by
// lowercasing the first segment and camel-casing the rest, so
// LINEDIT_INPUT_TAB_AS_SPACES sets input.tabAsSpaces.
type EnvLoader struct {
	prefix  string
	mapping map[string]string
	environ func() []string
}

// NewEnvLoader creates an environment loader. The prefix includes the
// trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
		environ: os.Environ,
	}
}

// NewEnvLoaderFrom creates a loader reading from a fixed environment list
// in KEY=value form.
func NewEnvLoaderFrom(prefix string, env []string) *EnvLoader {
	l := NewEnvLoader(prefix)
	l.environ = func() []string { return env }
	return l
}

// defaultEnvMapping returns shorthand variables.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "LOG_LEVEL": "logging.level",
		prefix + "LOG_FILE":  "logging.file",
		prefix + "QUIT_KEY":  "input.quit",
	}
}

// Load reads the environment and returns a configuration map.
// Empty values are kept, not treated as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}

		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
		}
		if path == "" {
			continue
		}
		Assign(config, path, parseValue(value))
	}

	return config, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.mapping[envVar] = configPath
}

// envToPath converts LINEDIT_RENDER_SHOW_STATUS to render.showStatus.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.TrimPrefix(env, l.prefix)
	parts := strings.Split(name, "_")
	if len(parts) == 0 || parts[0] == "" {
		return ""
	}

	section := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return section
	}

	var setting strings.Builder
	setting.WriteString(strings.ToLower(parts[1]))
	for _, part := range parts[2:] {
		if part == "" {
			continue
		}
		setting.WriteString(strings.ToUpper(part[:1]))
		setting.WriteString(strings.ToLower(part[1:]))
	}

	return section + "." + setting.String()
}

// parseValue converts an environment string into a bool, int, float or
// duration when it looks like one.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d
	}

	return s
}
