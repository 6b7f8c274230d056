package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogFilePath is the default sketch log file, relative to the working directory.
const LogFilePath = "logs/sketch.txt"

// Logger is a slog.Logger whose records are kept in memory and appended to a file on disk.
// Each line is prefixed with [timestamp] using computer time.
type Logger struct {
	*slog.Logger
	sink *sink
}

// New returns a Logger writing to path at the given level and ensures the log directory exists.
// An empty path keeps lines in memory only.
func New(path string, level slog.Leveler) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	s := &sink{path: path, lines: make([]string, 0)}
	return &Logger{
		Logger: slog.New(&handler{sink: s, level: level}),
		sink:   s,
	}
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	return l.sink.snapshot()
}

// LevelFromFlags maps verbosity flags to a level: vv is debug, v is info, q is error and
// the default is warn. Flags are checked in that order.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// sink is shared by a handler and every handler derived from it with WithAttrs/WithGroup.
type sink struct {
	mu    sync.Mutex
	path  string
	lines []string
}

func (s *sink) write(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
	if s.path == "" {
		return
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(line + "\n")
	_ = f.Close()
}

func (s *sink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

type handler struct {
	sink   *sink
	level  slog.Leveler
	attrs  string // attrs from WithAttrs, already formatted
	groups []string
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.level != nil {
		threshold = h.level.Level()
	}
	return level >= threshold
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	b.WriteString("[" + ts.Format("2006-01-02 15:04:05") + "] ")
	b.WriteString(r.Level.String())
	b.WriteString(" ")
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.groups, a)
		return true
	})
	h.sink.write(b.String())
	return nil
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		writeAttr(&b, h.groups, a)
	}
	c := *h
	c.attrs = b.String()
	return &c
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.groups = append(append([]string{}, h.groups...), name)
	return &c
}

func writeAttr(b *strings.Builder, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(b, append(groups[:len(groups):len(groups)], a.Key), ga)
		}
		return
	}
	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value.Any())
}
