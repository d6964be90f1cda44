// Package log provides the process logging used across keyforge.
package log

import (
	"os"

	"github.com/mattn/go-isatty"
	jww "github.com/spf13/jwalterweatherman"
)

// Init configures the log thresholds. Info-level progress is only printed
// with verbose; otherwise a terminal gets warnings and errors, and piped
// output gets errors only.
func Init(verbose bool) {
	jww.SetStdoutOutput(os.Stdout)

	switch {
	case verbose:
		jww.SetStdoutThreshold(jww.LevelInfo)
	case isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()):
		jww.SetStdoutThreshold(jww.LevelWarn)
	default:
		jww.SetStdoutThreshold(jww.LevelError)
	}
}

// Process logs one step of the build pipeline.
func Process(step, msg string) {
	jww.INFO.Printf("%s: %s", step, msg)
}

// Warn logs a non-fatal condition.
func Warn(format string, args ...any) {
	jww.WARN.Printf(format, args...)
}

// Error logs a fatal condition. The caller is expected to also return the
// error; this is for operator visibility only.
func Error(format string, args ...any) {
	jww.ERROR.Printf(format, args...)
}
