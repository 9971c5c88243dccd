// Package logger provides verbose logging for the notesift CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to show which extraction tier handled the note
// and how the export progressed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging. The root command
// calls this once before any subcommand runs.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects verbose logs away from os.Stderr. Useful for
// testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// logf writes a prefixed line when verbose mode is on.
func logf(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "["+level+"] "+format+"\n", args...)
	}
}

// Debug prints extraction and database details.
func Debug(format string, args ...any) {
	logf("DEBUG", format, args...)
}

// Info prints progress messages such as export counts.
func Info(format string, args ...any) {
	logf("INFO", format, args...)
}

// Warn prints recoverable problems, like a note that yielded no text.
func Warn(format string, args ...any) {
	logf("WARN", format, args...)
}
