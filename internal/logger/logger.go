// Package logger writes component-tagged log lines to stderr. Debug and Info
// lines appear only while the verbose check reports true.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// VerboseChecker reports whether debug output is enabled
type VerboseChecker interface {
	IsVerbose() bool
}

// Logger is a component logger
type Logger struct {
	component string
	verbose   VerboseChecker
	writer    io.Writer
	mu        *sync.Mutex
}

// Field is a key-value pair appended to a log line
type Field struct {
	Key   string
	Value interface{}
}

// New creates a logger for a component
func New(component string, verbose VerboseChecker) *Logger {
	return &Logger{
		component: component,
		verbose:   verbose,
		writer:    os.Stderr,
		mu:        &sync.Mutex{},
	}
}

// NewWithCallback creates a logger whose verbose state is read from a callback
func NewWithCallback(component string, verboseCheck func() bool) *Logger {
	return New(component, callbackChecker(verboseCheck))
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	l := New("", nil)
	l.writer = io.Discard
	return l
}

// WithComponent returns a logger sharing output and verbosity under another component name
func (l *Logger) WithComponent(component string) *Logger {
	c := *l
	c.component = component
	return &c
}

// WithWriter returns a copy of the logger writing to w
func (l *Logger) WithWriter(w io.Writer) *Logger {
	c := *l
	c.writer = w
	c.mu = &sync.Mutex{}
	return &c
}

type callbackChecker func() bool

func (c callbackChecker) IsVerbose() bool {
	if c == nil {
		return false
	}
	return c()
}

func (l *Logger) isVerbose() bool {
	return l != nil && l.verbose != nil && l.verbose.IsVerbose()
}

// Debug logs when verbose
func (l *Logger) Debug(msg string, fields ...Field) {
	if l.isVerbose() {
		l.write("DEBUG", msg, fields)
	}
}

// Info logs when verbose
func (l *Logger) Info(msg string, fields ...Field) {
	if l.isVerbose() {
		l.write("INFO", msg, fields)
	}
}

// Warn always logs
func (l *Logger) Warn(msg string, fields ...Field) {
	if l != nil {
		l.write("WARN", msg, fields)
	}
}

// Error always logs
func (l *Logger) Error(msg string, fields ...Field) {
	if l != nil {
		l.write("ERROR", msg, fields)
	}
}

func (l *Logger) write(level, msg string, fields []Field) {
	component := l.component
	if component == "" {
		component = "main"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s [%s] %s", time.Now().Format("15:04:05.000"), level, component, msg)
	if len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			parts = append(parts, fmt.Sprintf("%s=%v", f.Key, f.Value))
		}
		fmt.Fprintf(&b, " [%s]", strings.Join(parts, " "))
	}
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	// nowhere to report a failed log write
	_, _ = io.WriteString(l.writer, b.String())
}

// F builds a field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

func Count(value int) Field {
	return Field{Key: "count", Value: value}
}

func Duration(d time.Duration) Field {
	return Field{Key: "duration", Value: d}
}

func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
