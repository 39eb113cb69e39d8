package speech

import "sync"

// StubBackend is the in-process ("tts") driver: it has no real voice, but
// records what it was asked to say, for tests and for drivers that are
// genuinely just a local synthesizer call away.
type StubBackend struct {
	mu      sync.Mutex
	spoken  []Request
	stopped int
	rate    float64
	healthy bool
}

func NewStubBackend() *StubBackend {
	return &StubBackend{healthy: true, rate: 1.0}
}

func (b *StubBackend) Speak(req Request) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.spoken = append(b.spoken, req)
	return nil
}

func (b *StubBackend) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopped++
	return nil
}

func (b *StubBackend) SetRate(rate float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rate = rate
	return nil
}

func (b *StubBackend) Healthy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.healthy
}

func (b *StubBackend) Close() error { return nil }

// Spoken returns a copy of every request handed to Speak so far, in order.
func (b *StubBackend) Spoken() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Request, len(b.spoken))
	copy(out, b.spoken)
	return out
}

func (b *StubBackend) StopCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stopped
}

func (b *StubBackend) Rate() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rate
}
