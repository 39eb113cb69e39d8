// Package config resolves the process-level options named in section 6:
// shell, terminal type, and the default script config path, each following
// a flag > environment > built-in-default chain. The speech driver has only
// a built-in default here (Defaults); no environment variable sets it.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/lectorterm/lector/internal/symbols"
)

// Options are the ambient settings exposed to the script surface's o[key]
// plus the process-level fields resolved once at startup.
type Options struct {
	SpeechRate            float64
	SymbolLevel           symbols.Level
	AutoRead              bool
	StopSpeechOnFocusLoss bool

	Shell        string
	SpeechDriver string
	SpeechServer string
	ConfigPath   string
	Term         string
}

// Defaults returns the options the core ships with before any flag, env
// var, or script overrides them.
func Defaults() Options {
	return Options{
		SpeechRate:   1.0,
		SymbolLevel:  symbols.LevelMost,
		AutoRead:     true,
		SpeechDriver: "tts",
		Term:         "xterm-256color",
		ConfigPath:   DefaultConfigPath(),
	}
}

// ResolveShell implements the --shell / $SHELL / /bin/sh fallback chain.
func ResolveShell(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv("SHELL"); env != "" {
		return env
	}
	return "/bin/sh"
}

// ResolveTerm returns the TERM value to advertise to the child.
func ResolveTerm(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv("TERM"); env != "" {
		return env
	}
	return "xterm-256color"
}

// DefaultConfigPath returns the platform default script path:
// ~/.config/lector/init.lua on Linux, ~/Library/Application
// Support/lector/init.lua on macOS, honoring XDG_CONFIG_HOME on Linux.
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support", "lector", "init.lua")
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "lector", "init.lua")
}

// ResolveConfigPath applies the --config override over the platform
// default.
func ResolveConfigPath(flag string) string {
	if flag != "" {
		return flag
	}
	return DefaultConfigPath()
}
