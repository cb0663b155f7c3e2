package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger provides leveled logging for the CLI tools and compiler passes.
// A nil *Logger discards everything. It is safe for concurrent use.
type Logger struct {
	Verbose   bool
	DebugMode bool

	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

// NewLogger creates a new logger writing to stdout
func NewLogger(verbose, debug bool) *Logger {
	return NewLoggerTo(os.Stdout, verbose, debug)
}

// NewLoggerTo creates a logger writing to w.
func NewLoggerTo(w io.Writer, verbose, debug bool) *Logger {
	return &Logger{
		Verbose:   verbose,
		DebugMode: debug,
		out:       w,
		now:       time.Now,
	}
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	if l != nil && l.Verbose {
		l.log("INFO", format, args...)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	if l != nil && l.DebugMode {
		l.log("DEBUG", format, args...)
	}
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	if l != nil {
		l.log("WARN", format, args...)
	}
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	if l != nil {
		l.log("ERROR", format, args...)
	}
}

func (l *Logger) log(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out, now := l.out, l.now
	if out == nil {
		out = os.Stdout
	}
	if now == nil {
		now = time.Now
	}
	fmt.Fprintf(out, "[%s] %s: %s\n", level, now().Format("15:04:05"), fmt.Sprintf(format, args...))
}
