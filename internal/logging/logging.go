// Package logging wraps the ambient structured logger so the rest of the
// core logs through one badge-formatted global logger instead of talking
// to the underlying library directly.
package logging

import (
	"os"

	"github.com/garaekz/tfx/color"
	"github.com/garaekz/tfx/logx"
)

// Configure sets up the global logger. verbose raises the level to debug;
// otherwise info and above is logged to stderr so stdout stays free for
// anything the hosted shell writes before the PTY takes over.
func Configure(verbose bool) {
	opts := logx.DefaultOptions()
	opts.Output = os.Stderr
	opts.Level = logx.LevelInfo
	if verbose {
		opts.Level = logx.LevelDebug
	}
	logx.Configure(opts)
}

func Debug(msg string, args ...any) { logx.Badge("lector", msg, color.NewANSI(244), args...) }
func Info(msg string)               { logx.Info(msg) }
func Warn(msg string)               { logx.Warn(msg) }
func Error(msg string)              { logx.Error(msg) }

// ErrorIf logs err under msg if non-nil and reports whether it did.
func ErrorIf(err error, msg string) bool {
	return logx.ErrorIf(err, msg)
}
