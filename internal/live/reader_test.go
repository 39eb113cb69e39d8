package live

import (
	"testing"

	"github.com/lectorterm/lector/internal/screen"
	"github.com/lectorterm/lector/internal/symbols"
)

func newTestReader() *Reader {
	return NewReader(symbols.NewProcessor(symbols.NewTable()), symbols.LevelMost)
}

func snap(rows, cols int, lines ...string) *screen.Snapshot {
	s := screen.New(screen.WithSize(rows, cols))
	for i, line := range lines {
		s.WriteString(line)
		if i < len(lines)-1 {
			s.WriteString("\r\n")
		}
	}
	return s.Snapshot()
}

func TestFirstSnapshotProducesNoUtterance(t *testing.T) {
	r := newTestReader()
	got := r.Diff(snap(5, 20, "hello"))
	if got != nil {
		t.Fatalf("expected no utterances on first snapshot, got %v", got)
	}
}

func TestAutoReadOffProducesNothing(t *testing.T) {
	r := newTestReader()
	r.Diff(snap(5, 20, "hello"))
	r.SetAutoRead(false)
	got := r.Diff(snap(5, 20, "hello world"))
	if got != nil {
		t.Fatalf("expected nothing while auto-read is off, got %v", got)
	}
}

func TestAppendedCommandOutputIsSpokenInRowOrder(t *testing.T) {
	r := newTestReader()
	r.Diff(snap(5, 40, "$ echo one"))

	s := screen.New(screen.WithSize(5, 40))
	// Two writes, so this snapshot's generation differs from the previous
	// one's, as it does when a real screen receives more output.
	s.WriteString("$ echo one")
	s.WriteString("\r\none\r\n")
	got := r.Diff(s.Snapshot())

	if len(got) == 0 {
		t.Fatal("expected appended output to produce utterances")
	}
	if got[0].Text != "one" {
		t.Fatalf("expected first utterance 'one', got %q", got[0].Text)
	}
	if !got[0].Interrupt {
		t.Fatal("expected first utterance in a batch to interrupt")
	}
}

func TestScatteredChangeSpeaksCursorRowOnly(t *testing.T) {
	r := newTestReader()
	r.Diff(snap(10, 40, "row0", "row1", "row2", "row3", "row4"))

	s := screen.New(screen.WithSize(10, 40))
	s.WriteString("row0\r\nROW1\r\nrow2\r\nROW3\r\nrow4")
	got := r.Diff(s.Snapshot())

	if len(got) != 1 {
		t.Fatalf("expected exactly one utterance for the cursor's row, got %v", got)
	}
}

func TestFullScreenRedrawStaysSilent(t *testing.T) {
	r := newTestReader()
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "old content here"
	}
	r.Diff(snap(20, 40, lines...))

	s := screen.New(screen.WithSize(20, 40))
	for i := range lines {
		s.WriteString("brand new content")
		if i < len(lines)-1 {
			s.WriteString("\r\n")
		}
	}
	s.WriteString("\x1b[1;1H")
	got := r.Diff(s.Snapshot())
	if got != nil {
		t.Fatalf("expected silence on a full-screen redraw, got %v", got)
	}
}

func TestCursorOnlyMoveProducesNoUtteranceWithoutEcho(t *testing.T) {
	r := newTestReader()
	r.Diff(snap(5, 20, "hello"))

	s := screen.New(screen.WithSize(5, 20))
	s.WriteString("hello")
	s.WriteString("\x1b[1;3H")
	got := r.Diff(s.Snapshot())
	if got != nil {
		t.Fatalf("expected no utterance for a bare cursor move, got %v", got)
	}
}
