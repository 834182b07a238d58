// Package logger provides namespaced debug logging to stderr.
//
// Loggers are created per component namespace (e.g. "mcp:server") and are
// enabled through the DEBUG environment variable, which holds a
// comma-separated list of patterns. Patterns may contain `*` wildcards and
// may be prefixed with `-` to exclude namespaces:
//
//	DEBUG=*                 enable everything
//	DEBUG=mcp:*             enable the mcp subsystem
//	DEBUG=*,-solvr:client   enable everything except the REST client
//
// All output goes to stderr. Stdout is reserved for the wire protocol and
// must never receive diagnostics.
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger writes debug messages for a single namespace.
type Logger struct {
	namespace string
	enabled   bool

	mu   sync.Mutex
	prev time.Time
}

// New creates a logger for the given namespace. Whether it is enabled is
// decided once, at creation time, from the DEBUG environment variable.
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   computeEnabled(namespace, os.Getenv("DEBUG")),
	}
}

// Enabled reports whether this logger's namespace matched DEBUG.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf formats and writes a debug message.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.write(fmt.Sprintf(format, args...))
}

// Print writes a debug message by concatenating its arguments.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.write(fmt.Sprint(args...))
}

// write emits the message with the namespace prefix and the time elapsed
// since this logger's previous message.
func (l *Logger) write(message string) {
	l.mu.Lock()
	now := time.Now()
	delta := time.Duration(0)
	if !l.prev.IsZero() {
		delta = now.Sub(l.prev)
	}
	l.prev = now
	l.mu.Unlock()

	fmt.Fprintf(os.Stderr, "%s %s %s\n", l.namespace, message, formatDelta(delta))
}

// formatDelta renders the elapsed time in the most readable unit.
func formatDelta(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("+%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("+%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("+%dm", int(d.Minutes()))
	}
}

// computeEnabled evaluates the DEBUG pattern list against a namespace.
// Exclusion patterns win over inclusion patterns regardless of order.
func computeEnabled(namespace, debug string) bool {
	included := false
	for _, pattern := range strings.Split(debug, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if rest, isExclusion := strings.CutPrefix(pattern, "-"); isExclusion {
			if matchPattern(rest, namespace) {
				return false
			}
			continue
		}
		if matchPattern(pattern, namespace) {
			included = true
		}
	}
	return included
}

// matchPattern matches a namespace against a pattern where `*` matches any
// run of characters, including colons.
func matchPattern(pattern, s string) bool {
	pi, si := 0, 0
	star, mark := -1, 0
	for si < len(s) {
		switch {
		case pi < len(pattern) && pattern[pi] == s[si]:
			pi++
			si++
		case pi < len(pattern) && pattern[pi] == '*':
			star = pi
			mark = si
			pi++
		case star >= 0:
			pi = star + 1
			mark++
			si = mark
		default:
			return false
		}
	}
	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}
	return pi == len(pattern)
}
