package speech

import "testing"

func TestFlushSpeaksInOrder(t *testing.T) {
	backend := NewStubBackend()
	q := NewQueue(backend)
	q.Enqueue(Request{Text: "one", Interrupt: true})
	q.Enqueue(Request{Text: "two"})

	if err := q.Flush(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spoken := backend.Spoken()
	if len(spoken) != 2 || spoken[0].Text != "one" || spoken[1].Text != "two" {
		t.Fatalf("expected [one two] in order, got %v", spoken)
	}
	if backend.StopCount() != 1 {
		t.Fatalf("expected exactly one Stop call for the interrupt, got %d", backend.StopCount())
	}
}

func TestInterruptEnqueueDropsPending(t *testing.T) {
	backend := NewStubBackend()
	q := NewQueue(backend)
	q.Enqueue(Request{Text: "stale one"})
	q.Enqueue(Request{Text: "stale two"})
	q.Enqueue(Request{Text: "fresh", Interrupt: true})

	if q.Pending() != 1 {
		t.Fatalf("expected interrupt enqueue to clear earlier pending requests, got %d pending", q.Pending())
	}

	q.Flush()
	spoken := backend.Spoken()
	if len(spoken) != 1 || spoken[0].Text != "fresh" {
		t.Fatalf("expected only 'fresh' to be spoken, got %v", spoken)
	}
}

func TestClearDropsPendingWithoutSpeaking(t *testing.T) {
	backend := NewStubBackend()
	q := NewQueue(backend)
	q.Enqueue(Request{Text: "one"})
	q.Clear()
	q.Flush()
	if len(backend.Spoken()) != 0 {
		t.Fatal("expected Clear to drop the request before Flush could speak it")
	}
}
