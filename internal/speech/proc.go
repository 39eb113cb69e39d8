package speech

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"github.com/lectorterm/lector/internal/errs"
)

// responseTimeout bounds how long ProcBackend waits for a correlated
// response before marking itself unhealthy. Responses are not required for
// correctness, only for health tracking, per section 4.H.
const responseTimeout = 2 * time.Second

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type speakParams struct {
	Text      string `json:"text"`
	Interrupt bool   `json:"interrupt"`
}

type setRateParams struct {
	Rate float64 `json:"rate"`
}

// ProcBackend speaks by driving a subprocess over newline-delimited
// JSON-RPC 2.0 on its stdin/stdout, per section 6's speech proc protocol.
type ProcBackend struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	cancel context.CancelFunc

	nextID int64

	mu      sync.Mutex
	pending map[int64]chan rpcResponse
	healthy atomic.Bool
	onError func(error)
}

// StartProcBackend launches path as a subprocess speech driver. onError,
// if non-nil, is invoked when a response times out or the subprocess
// reports a JSON-RPC error, surfacing the loop's error hook.
func StartProcBackend(ctx context.Context, path string, args []string, onError func(error)) (*ProcBackend, error) {
	runCtx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(runCtx, path, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		cancel()
		return nil, errs.New(errs.Fatal, err, "open speech subprocess stdin")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, errs.New(errs.Fatal, err, "open speech subprocess stdout")
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, errs.New(errs.Fatal, err, "start speech subprocess")
	}

	b := &ProcBackend{
		cmd:     cmd,
		stdin:   stdin,
		cancel:  cancel,
		pending: make(map[int64]chan rpcResponse),
		onError: onError,
	}
	b.healthy.Store(true)

	go b.readLoop(bufio.NewScanner(stdout))

	return b, nil
}

func (b *ProcBackend) readLoop(scanner *bufio.Scanner) {
	for scanner.Scan() {
		var resp rpcResponse
		if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
			continue
		}
		b.mu.Lock()
		ch, ok := b.pending[resp.ID]
		if ok {
			delete(b.pending, resp.ID)
		}
		b.mu.Unlock()
		if ok {
			ch <- resp
		}
		if resp.Error != nil {
			b.healthy.Store(false)
			if b.onError != nil {
				b.onError(fmt.Errorf("speech backend error %d: %s", resp.Error.Code, resp.Error.Message))
			}
		}
	}
}

func (b *ProcBackend) call(method string, params any) error {
	id := atomic.AddInt64(&b.nextID, 1)
	req := rpcRequest{JSONRPC: "2.0", ID: id, Method: method, Params: params}

	line, err := json.Marshal(req)
	if err != nil {
		return errs.New(errs.Recoverable, err, "encode speech request")
	}

	ch := make(chan rpcResponse, 1)
	b.mu.Lock()
	b.pending[id] = ch
	b.mu.Unlock()

	line = append(line, '\n')
	if _, err := b.stdin.Write(line); err != nil {
		b.healthy.Store(false)
		return errs.New(errs.Transient, err, "write speech request")
	}

	select {
	case resp := <-ch:
		if resp.Error != nil {
			return errs.New(errs.Recoverable, fmt.Errorf("%s", resp.Error.Message), "speech backend rejected request")
		}
		return nil
	case <-time.After(responseTimeout):
		b.mu.Lock()
		delete(b.pending, id)
		b.mu.Unlock()
		b.healthy.Store(false)
		err := errs.New(errs.Transient, nil, "speech backend response timed out")
		if b.onError != nil {
			b.onError(err)
		}
		return err
	}
}

func (b *ProcBackend) Speak(req Request) error {
	return b.call("speak", speakParams{Text: req.Text, Interrupt: req.Interrupt})
}

func (b *ProcBackend) Stop() error {
	return b.call("stop", nil)
}

func (b *ProcBackend) SetRate(rate float64) error {
	return b.call("set_rate", setRateParams{Rate: rate})
}

func (b *ProcBackend) Healthy() bool {
	return b.healthy.Load()
}

func (b *ProcBackend) Close() error {
	var err error
	if cerr := b.stdin.Close(); cerr != nil {
		err = multierr.Append(err, cerr)
	}
	b.cancel()
	if werr := b.cmd.Wait(); werr != nil {
		err = multierr.Append(err, werr)
	}
	return err
}
