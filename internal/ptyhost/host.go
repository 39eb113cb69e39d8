package ptyhost

import (
	"context"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/creack/pty"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/lectorterm/lector/internal/errs"
)

// Host owns the child process and its pseudo-terminal file descriptor.
type Host struct {
	cmd  *exec.Cmd
	ptmx *os.File

	mu sync.Mutex

	output chan []byte
	cancel context.CancelFunc
	group  *errgroup.Group

	waitErr  error
	waitOnce sync.Once
}

// Spawn starts shell (with args) attached to a new pseudo-terminal sized
// rows x cols, with env applied on top of the current process environment.
// Fatal per spec section 4.A: failure to allocate a PTY or start the child
// is reported as an errs.Fatal.
func Spawn(ctx context.Context, shell string, args []string, env []string, rows, cols int) (*Host, error) {
	cmd := exec.Command(shell, args...)
	cmd.Env = env

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return nil, errs.New(errs.Fatal, err, "spawn pty")
	}

	loopCtx, cancel := context.WithCancel(ctx)
	group, loopCtx := errgroup.WithContext(loopCtx)

	h := &Host{
		cmd:    cmd,
		ptmx:   ptmx,
		output: make(chan []byte, 64),
		cancel: cancel,
		group:  group,
	}

	group.Go(func() error { return h.pumpOutput(loopCtx) })

	return h, nil
}

// Output is fed every chunk of bytes read from the child; closed when the
// pump stops (child exit, Close, or context cancellation).
func (h *Host) Output() <-chan []byte { return h.output }

func (h *Host) pumpOutput(ctx context.Context) error {
	defer close(h.output)
	buf := make([]byte, 4096)
	for {
		n, err := h.ptmx.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case h.output <- chunk:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// Write sends bytes to the child's stdin (the PTY master side).
func (h *Host) Write(data []byte) (int, error) {
	return h.ptmx.Write(data)
}

// Resize informs both the PTY and (indirectly, via SIGWINCH delivered to
// the child) any full-screen application running inside it.
func (h *Host) Resize(rows, cols int) error {
	return pty.Setsize(h.ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

// Wait blocks until the child exits and returns its exit code, or -1 if it
// could not be determined.
func (h *Host) Wait() int {
	h.waitOnce.Do(func() {
		h.waitErr = h.cmd.Wait()
	})
	if h.waitErr == nil {
		return 0
	}
	if exitErr, ok := h.waitErr.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return -1
}

// Close stops the output pump and releases the PTY file descriptor.
func (h *Host) Close() error {
	h.cancel()
	var err error
	if cerr := h.ptmx.Close(); cerr != nil {
		err = multierr.Append(err, cerr)
	}
	if gerr := h.group.Wait(); gerr != nil && gerr != context.Canceled {
		err = multierr.Append(err, gerr)
	}
	return err
}
