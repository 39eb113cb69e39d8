package config

import (
	"os"
	"testing"
)

func TestResolveShellPrefersFlag(t *testing.T) {
	if got := ResolveShell("/usr/bin/zsh"); got != "/usr/bin/zsh" {
		t.Fatalf("expected flag to win, got %q", got)
	}
}

func TestResolveShellFallsBackToEnvThenDefault(t *testing.T) {
	old := os.Getenv("SHELL")
	defer os.Setenv("SHELL", old)

	os.Setenv("SHELL", "/bin/fish")
	if got := ResolveShell(""); got != "/bin/fish" {
		t.Fatalf("expected $SHELL, got %q", got)
	}

	os.Unsetenv("SHELL")
	if got := ResolveShell(""); got != "/bin/sh" {
		t.Fatalf("expected /bin/sh fallback, got %q", got)
	}
}

func TestResolveTermDefaultsToXterm256Color(t *testing.T) {
	old := os.Getenv("TERM")
	defer os.Setenv("TERM", old)
	os.Unsetenv("TERM")
	if got := ResolveTerm(""); got != "xterm-256color" {
		t.Fatalf("expected xterm-256color, got %q", got)
	}
}

func TestResolveConfigPathPrefersFlag(t *testing.T) {
	if got := ResolveConfigPath("/tmp/custom.lua"); got != "/tmp/custom.lua" {
		t.Fatalf("expected flag override, got %q", got)
	}
}
