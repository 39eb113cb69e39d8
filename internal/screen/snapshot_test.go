package screen

import "testing"

func TestSnapshotCapturesText(t *testing.T) {
	s := New(WithSize(3, 20))
	s.WriteString("hello")
	snap := s.Snapshot()
	if got := snap.RowAt(0); got != "hello" {
		t.Fatalf("expected row 0 == hello, got %q", got)
	}
}

func TestSnapshotIsIndependentOfLaterWrites(t *testing.T) {
	s := New(WithSize(3, 20))
	s.WriteString("one")
	snap := s.Snapshot()
	s.WriteString(" two")
	if got := snap.RowAt(0); got != "one" {
		t.Fatalf("expected snapshot frozen at 'one', got %q", got)
	}
}

func TestSnapshotCellAtOutOfRange(t *testing.T) {
	s := New(WithSize(3, 20))
	snap := s.Snapshot()
	if cell := snap.CellAt(100, 100); cell != (SnapshotCell{}) {
		t.Fatalf("expected zero value, got %+v", cell)
	}
}
