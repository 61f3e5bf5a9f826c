// internal/logging/logging.go

// Package logging is the leveled logger shared by the renderer, exporter and
// display backends. Child loggers from Named share their parent's sink, so
// SetLevel and SetOutput on any of them affect the whole tree.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelOff // nothing is written
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "OFF"}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel parses a level name case-insensitively; unknown names fall back
// to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "off", "quiet":
		return LevelOff
	default:
		return LevelInfo
	}
}

type sink struct {
	mu    sync.Mutex
	level Level
	out   io.Writer
}

// Logger writes timestamped lines at or above its level, tagged with an
// optional component name.
type Logger struct {
	sink      *sink
	component string
	exit      func(int)
}

// New creates a logger writing to stderr.
func New(level Level) *Logger {
	return &Logger{
		sink: &sink{level: level, out: os.Stderr},
		exit: os.Exit,
	}
}

// Discard returns a logger that drops everything. Presenters and helpers
// fall back to it when the caller passes no logger.
func Discard() *Logger {
	l := New(LevelOff)
	l.sink.out = io.Discard
	return l
}

// Named returns a child logger tagging its lines with component.
func (l *Logger) Named(component string) *Logger {
	c := *l
	if l.component != "" {
		component = l.component + "." + component
	}
	c.component = component
	return &c
}

// SetOutput sets the log output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.out = w
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.level = level
}

// Enabled reports whether a message at level would be written.
func (l *Logger) Enabled(level Level) bool {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	return level < LevelOff && level >= l.sink.level
}

func (l *Logger) log(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	var b strings.Builder
	b.WriteString(time.Now().Format("15:04:05.000"))
	fmt.Fprintf(&b, " [%s] ", level)
	if l.component != "" {
		b.WriteString(l.component)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, format, args...)
	b.WriteByte('\n')

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	_, _ = io.WriteString(l.sink.out, b.String())
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

// Timed logs what at level together with the time elapsed between the call
// and the invocation of the returned func.
//
//	defer log.Timed(logging.LevelInfo, "render")()
func (l *Logger) Timed(level Level, what string) func() {
	start := time.Now()
	return func() {
		l.log(level, "%s took %v", what, time.Since(start).Round(time.Millisecond))
	}
}

// Fatal logs err at error level, even when the logger is quieter, and exits
// with status 1. A nil err is ignored.
func (l *Logger) Fatal(err error) {
	if err == nil {
		return
	}
	l.sink.mu.Lock()
	out := l.sink.out
	l.sink.mu.Unlock()
	if out != io.Discard {
		msg := err.Error()
		if l.component != "" {
			msg = l.component + ": " + msg
		}
		_, _ = fmt.Fprintf(out, "%s [%s] %s\n", time.Now().Format("15:04:05.000"), LevelError, msg)
	}
	l.exit(1)
}
