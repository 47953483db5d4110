package common

import (
	"context"
	"fmt"
	"io"
	"sort"
)

// Logger provides structured logging for planning operations.
type Logger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Context keys for passing logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op
// logger if not found.
func LoggerFromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey).(Logger); ok {
		return logger
	}
	return NopLogger()
}

// NopLogger returns a logger that discards everything.
func NopLogger() Logger {
	return &nopLogger{}
}

type nopLogger struct{}

func (l *nopLogger) Log(level, message string, metadata map[string]interface{}) {
	// Do nothing
}

// Log levels in ascending severity. Entries logged at a level not listed
// here are always kept, so a misspelled call site stays visible.
var levelRanks = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

// NewWriterLogger returns a logger printing one line per entry to w,
// dropping entries below minLevel. An unknown minLevel falls back to
// "info". Metadata keys are rendered in a stable order.
func NewWriterLogger(w io.Writer, minLevel string) Logger {
	min, ok := levelRanks[minLevel]
	if !ok {
		min = levelRanks["info"]
	}
	return &writerLogger{w: w, min: min}
}

type writerLogger struct {
	w   io.Writer
	min int
}

func (l *writerLogger) Log(level, message string, metadata map[string]interface{}) {
	if rank, ok := levelRanks[level]; ok && rank < l.min {
		return
	}
	line := fmt.Sprintf("[%s] %s", level, message)
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		line += fmt.Sprintf(" %s=%v", k, metadata[k])
	}
	fmt.Fprintln(l.w, line)
}
