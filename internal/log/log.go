//nolint:revive // Package name kept as "log" for stable internal imports.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

var (
	mu        sync.Mutex
	debugMode = false
	stdout    io.Writer = os.Stdout
	stderr    io.Writer = os.Stderr
)

// SetDebugMode enables or disables debug logging
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// SetOutput redirects informational and error output. A nil writer restores
// the process default for that stream.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout = out
	stderr = errOut
}

func writeLine(toErr bool, line string) {
	mu.Lock()
	defer mu.Unlock()
	w := stdout
	if toErr {
		w = stderr
	}
	_, _ = fmt.Fprintln(w, line)
}

// Debug logs debug messages when debug mode is enabled
func Debug(format string, elem ...any) {
	if debugMode {
		writeLine(false, color.CyanString("[DEBUG] ")+fmt.Sprintf(format, elem...))
	}
}

// DebugH3 logs indented debug messages when debug mode is enabled
func DebugH3(format string, elem ...any) {
	if debugMode {
		writeLine(false, color.CyanString("    [DEBUG] ")+fmt.Sprintf(format, elem...))
	}
}

// Error logs an error message to stderr
func Error(format string, elem ...any) {
	writeLine(true, color.RedString("[x] ")+fmt.Sprintf(format, elem...))
}

// Info logs an informational message
func Info(format string, elem ...any) {
	writeLine(false, color.BlueString("[x] ")+fmt.Sprintf(format, elem...))
}

// InfoH2 logs an indented informational message
func InfoH2(format string, elem ...any) {
	writeLine(false, color.GreenString("  [x] ")+fmt.Sprintf(format, elem...))
}
