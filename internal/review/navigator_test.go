package review

import (
	"testing"

	"github.com/lectorterm/lector/internal/screen"
)

func snapshotOf(t *testing.T, rows int, cols int, lines ...string) *screen.Snapshot {
	t.Helper()
	s := screen.New(screen.WithSize(rows, cols))
	for i, line := range lines {
		s.WriteString(line)
		if i < len(lines)-1 {
			s.WriteString("\r\n")
		}
	}
	return s.Snapshot()
}

func TestPrevNextLine(t *testing.T) {
	snap := snapshotOf(t, 5, 20, "one", "two")
	n := &Navigator{Cursor: Cursor{Row: 1, Col: 0}}

	res := n.PrevLine(snap)
	if res.Utterance != "one" {
		t.Fatalf("expected 'one', got %q", res.Utterance)
	}

	res = n.PrevLine(snap)
	if res.Boundary != "top" {
		t.Fatalf("expected top boundary, got %q utterance %q", res.Boundary, res.Utterance)
	}
}

func TestTopBottom(t *testing.T) {
	snap := snapshotOf(t, 5, 20, "one", "two")
	n := &Navigator{Cursor: Cursor{Row: 1, Col: 3}}
	res := n.Bottom(snap)
	if res.Cursor.Row != 4 || res.Cursor.Col != 0 {
		t.Fatalf("expected (4,0), got (%d,%d)", res.Cursor.Row, res.Cursor.Col)
	}
	res = n.Top(snap)
	if res.Cursor.Row != 0 || res.Cursor.Col != 0 {
		t.Fatalf("expected (0,0), got (%d,%d)", res.Cursor.Row, res.Cursor.Col)
	}
}

func TestWordMotion(t *testing.T) {
	snap := snapshotOf(t, 3, 40, "hello, world")
	n := &Navigator{Cursor: Cursor{Row: 0, Col: 0}}
	res := n.NextWord(snap)
	if res.Utterance != "world" {
		t.Fatalf("expected 'world', got %q", res.Utterance)
	}
	res = n.PrevWord(snap)
	if res.Utterance != "hello" {
		t.Fatalf("expected 'hello', got %q", res.Utterance)
	}
}

func TestCharMotionBoundaries(t *testing.T) {
	snap := snapshotOf(t, 3, 10, "ab")
	n := &Navigator{Cursor: Cursor{Row: 0, Col: 0}}
	res := n.PrevChar(snap)
	if res.Boundary != "line start" {
		t.Fatalf("expected boundary at col 0, got %+v", res)
	}
	res = n.NextChar(snap)
	if res.Utterance != "b" {
		t.Fatalf("expected 'b', got %q", res.Utterance)
	}
}

func TestSetMarkAndCopy(t *testing.T) {
	snap := snapshotOf(t, 3, 20, "hello")
	n := &Navigator{Cursor: Cursor{Row: 0, Col: 0}}
	n.SetMark()
	n.Cursor = Cursor{Row: 0, Col: 4}
	text, ok := n.Copy(snap)
	if !ok {
		t.Fatal("expected copy to succeed with mark set")
	}
	if text != "hello" {
		t.Fatalf("expected 'hello', got %q", text)
	}
}

func TestCopyWithoutMarkFails(t *testing.T) {
	snap := snapshotOf(t, 3, 20, "hello")
	n := &Navigator{}
	if _, ok := n.Copy(snap); ok {
		t.Fatal("expected copy without mark to fail")
	}
}
