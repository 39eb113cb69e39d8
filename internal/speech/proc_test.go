package speech

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestRPCRequestRoundTrip(t *testing.T) {
	req := rpcRequest{JSONRPC: "2.0", ID: 7, Method: "speak", Params: speakParams{Text: "hi", Interrupt: true}}
	line, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got rpcRequest
	var rawParams json.RawMessage
	got.Params = &rawParams
	if err := json.Unmarshal(line, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != 7 || got.Method != "speak" {
		t.Fatalf("expected id=7 method=speak, got %+v", got)
	}

	var params speakParams
	if err := json.Unmarshal(rawParams, &params); err != nil {
		t.Fatalf("unmarshal params: %v", err)
	}
	if params.Text != "hi" || !params.Interrupt {
		t.Fatalf("expected params {hi true}, got %+v", params)
	}
}

// echoScript is a minimal shell subprocess that answers every JSON-RPC
// request it receives with a success response for the same id, using only
// POSIX shell and sed so the test has no external dependency.
const echoScript = `
while IFS= read -r line; do
  id=$(echo "$line" | sed -n 's/.*"id":\([0-9]*\).*/\1/p')
  printf '{"jsonrpc":"2.0","id":%s,"result":null}\n' "$id"
done
`

func TestProcBackendSpeaksWithinTimeBound(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend, err := StartProcBackend(ctx, "/bin/sh", []string{"-c", echoScript}, nil)
	if err != nil {
		t.Fatalf("start backend: %v", err)
	}
	defer backend.Close()

	done := make(chan error, 1)
	go func() { done <- backend.Speak(Request{Text: "hello", Interrupt: false}) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected speak to succeed, got %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("speak did not complete within the time bound")
	}

	if !backend.Healthy() {
		t.Fatal("expected backend to remain healthy after a successful round trip")
	}
}
