package screen

import "testing"

func TestNewScreenDefaults(t *testing.T) {
	s := New()
	if s.Rows() != DefaultRows || s.Cols() != DefaultCols {
		t.Fatalf("expected default size, got %dx%d", s.Rows(), s.Cols())
	}
}

func TestScreenWriteAdvancesCursorAndGeneration(t *testing.T) {
	s := New(WithSize(5, 20))
	before := s.Generation()
	s.WriteString("hi")
	if s.Generation() != before+1 {
		t.Fatalf("expected generation to advance by 1, got %d -> %d", before, s.Generation())
	}
	row, col := s.CursorPos()
	if row != 0 || col != 2 {
		t.Fatalf("expected cursor at (0,2), got (%d,%d)", row, col)
	}
}

func TestScreenCarriageReturnLineFeed(t *testing.T) {
	s := New(WithSize(5, 20))
	s.WriteString("ab\r\ncd")
	row, col := s.CursorPos()
	if row != 1 || col != 2 {
		t.Fatalf("expected cursor at (1,2), got (%d,%d)", row, col)
	}
}

func TestScreenResizeClampsCursor(t *testing.T) {
	s := New(WithSize(5, 20))
	s.WriteString("\x1b[5;20H") // move near bottom-right
	s.Resize(3, 10)
	row, col := s.CursorPos()
	if row >= 3 || col >= 10 {
		t.Fatalf("expected cursor clamped within new bounds, got (%d,%d)", row, col)
	}
}

func TestScreenCursorBoundsStayInGrid(t *testing.T) {
	s := New(WithSize(3, 3))
	s.WriteString("aaaaaaaaaaaa")
	row, col := s.CursorPos()
	if row < 0 || row >= 3 || col < 0 || col >= 3 {
		t.Fatalf("cursor escaped grid bounds: (%d,%d)", row, col)
	}
}
