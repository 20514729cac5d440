package app

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

// LogLevel is the severity of a log line.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLogLevel maps a logging.level value to a LogLevel. Matching ignores
// case; anything unrecognized is info.
func ParseLogLevel(s string) LogLevel {
	s = strings.ToUpper(s)
	if s == "WARNING" {
		return LogLevelWarn
	}
	if i := slices.Index(levelNames[:], s); i >= 0 {
		return LogLevel(i)
	}
	return LogLevelInfo
}

// logSink holds the state every logger derived from one root shares, so
// redirecting the root while the terminal is raw redirects them all.
type logSink struct {
	mu       sync.Mutex
	level    LogLevel
	output   io.Writer
	disabled bool
}

// Logger writes leveled, printf-style lines. Fields are printed sorted by
// key after the message.
type Logger struct {
	sink   *logSink
	prefix string
	fields map[string]any
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	Level  LogLevel
	Output io.Writer // defaults to os.Stderr
	Prefix string
}

// NewLogger creates a root logger.
func NewLogger(cfg LoggerConfig) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		sink:   &logSink{level: cfg.Level, output: out},
		prefix: cfg.Prefix,
	}
}

// WithField returns a derived logger carrying key=value.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// WithFields returns a derived logger carrying fields in addition to the
// receiver's.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	merged := maps.Clone(l.fields)
	if merged == nil {
		merged = make(map[string]any, len(fields))
	}
	maps.Copy(merged, fields)
	return &Logger{sink: l.sink, prefix: l.prefix, fields: merged}
}

// WithComponent is shorthand for WithField("component", name).
func (l *Logger) WithComponent(name string) *Logger {
	return l.WithField("component", name)
}

func (l *Logger) SetLevel(level LogLevel) {
	l.sink.mu.Lock()
	l.sink.level = level
	l.sink.mu.Unlock()
}

func (l *Logger) SetOutput(w io.Writer) {
	l.sink.mu.Lock()
	l.sink.output = w
	l.sink.mu.Unlock()
}

// Disable silences the logger and everything derived from it.
func (l *Logger) Disable() {
	l.sink.mu.Lock()
	l.sink.disabled = true
	l.sink.mu.Unlock()
}

func (l *Logger) Debug(format string, args ...any) { l.log(LogLevelDebug, format, args) }
func (l *Logger) Info(format string, args ...any)  { l.log(LogLevelInfo, format, args) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LogLevelWarn, format, args) }
func (l *Logger) Error(format string, args ...any) { l.log(LogLevelError, format, args) }

func (l *Logger) log(level LogLevel, format string, args []any) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	if l.sink.disabled || level < l.sink.level {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] ", time.Now().Format("2006-01-02T15:04:05.000"), level)
	if l.prefix != "" {
		sb.WriteString(l.prefix + ": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&sb, format, args...)
	} else {
		sb.WriteString(format)
	}
	if len(l.fields) > 0 {
		pairs := make([]string, 0, len(l.fields))
		for _, k := range slices.Sorted(maps.Keys(l.fields)) {
			pairs = append(pairs, fmt.Sprintf("%s=%v", k, l.fields[k]))
		}
		sb.WriteString(" {" + strings.Join(pairs, ", ") + "}")
	}
	sb.WriteByte('\n')

	_, _ = io.WriteString(l.sink.output, sb.String())
}
