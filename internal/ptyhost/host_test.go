package ptyhost

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpawnEchoAndRead(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping pty spawn in short mode")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	h, err := Spawn(ctx, "/bin/sh", []string{"-c", "echo hi"}, nil, 24, 80)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	defer h.Close()

	var out strings.Builder
	timeout := time.After(3 * time.Second)
loop:
	for {
		select {
		case chunk, ok := <-h.Output():
			if !ok {
				break loop
			}
			out.Write(chunk)
			if strings.Contains(out.String(), "hi") {
				break loop
			}
		case <-timeout:
			break loop
		}
	}
	if !strings.Contains(out.String(), "hi") {
		t.Fatalf("expected output to contain 'hi', got %q", out.String())
	}
}

func TestSpawnMissingShellIsFatal(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := Spawn(ctx, "/no/such/shell-binary", nil, nil, 24, 80)
	if err == nil {
		t.Fatal("expected an error spawning a nonexistent shell")
	}
}
