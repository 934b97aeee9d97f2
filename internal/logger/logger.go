package logger

import (
	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Colorized printing functions for each log level, built with fatih/color.
// They behave like fmt.Printf. Callers include the level prefix ([INFO], [WARN], ...)
// in the format string themselves, the same way throughout the code base.

// Info logs progress messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs non-fatal failures in bright magenta.
// Best-effort steps (cleanup, activation directives) report through Warn and carry on.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs hard failures in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs verbose messages in cyan once enabled through Init.
// It starts out as a no-op so packages can log before the CLI has parsed --debug.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging.
// When enabled, Debug prints cyan messages; otherwise it silently drops them.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
