package table

import (
	"testing"

	"github.com/lectorterm/lector/internal/screen"
)

func snapshotOf(t *testing.T, rows, cols int, lines ...string) *screen.Snapshot {
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

func TestDetectDelimitedTable(t *testing.T) {
	snap := snapshotOf(t, 5, 20, "a|b|c", "1|2|3", "4|5|6")
	desc, ok := Detect(snap, 1)
	if !ok {
		t.Fatal("expected a delimited table to be detected")
	}
	if desc.Top != 0 || desc.Bottom != 2 {
		t.Fatalf("expected rows [0,2], got [%d,%d]", desc.Top, desc.Bottom)
	}
	if len(desc.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(desc.Columns))
	}
}

func TestTableNavigationAndCellText(t *testing.T) {
	snap := snapshotOf(t, 5, 20, "a|b|c", "1|2|3", "4|5|6")
	desc, ok := Detect(snap, 1)
	if !ok {
		t.Fatal("expected detection to succeed")
	}
	desc.Row = 1

	desc.MoveCol(1)
	if got := desc.Cell(snap, desc.Row, desc.Col); got != "2" {
		t.Fatalf("expected cell '2', got %q", got)
	}

	desc.MoveRow(-1)
	if got := desc.Cell(snap, desc.Row, desc.Col); got != "b" {
		t.Fatalf("expected cell 'b', got %q", got)
	}

	if got := desc.HeaderCell(snap, desc.Col); got != "" {
		// no separator row present, so no header is detected
		t.Fatalf("expected no header, got %q", got)
	}
}

func TestSingleDelimiterDoesNotLookLikeATable(t *testing.T) {
	snap := snapshotOf(t, 5, 20, "Hello, world", "just some prose", "nothing tabular")
	if _, ok := Detect(snap, 0); ok {
		t.Fatal("expected a single comma not to trigger delimited table detection")
	}
}

func TestDetectFixedWidthTable(t *testing.T) {
	snap := snapshotOf(t, 5, 30,
		"name     age   city",
		"alice    30    nyc",
		"bob      25    sf",
	)
	desc, ok := Detect(snap, 1)
	if !ok {
		t.Fatal("expected a fixed-width table to be detected")
	}
	if desc.Top != 0 || desc.Bottom != 2 {
		t.Fatalf("expected rows [0,2], got [%d,%d]", desc.Top, desc.Bottom)
	}
}

func TestFromTabstops(t *testing.T) {
	snap := snapshotOf(t, 5, 30, "name age", "alice 30", "bob 25")
	desc := FromTabstops(snap, 0, []int{5})
	if desc.Top != 0 || desc.Bottom != 2 {
		t.Fatalf("expected rows [0,2], got [%d,%d]", desc.Top, desc.Bottom)
	}
	if len(desc.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(desc.Columns))
	}
}

func TestMoveRowColClampsAtBounds(t *testing.T) {
	desc := &Descriptor{Top: 0, Bottom: 2, Columns: []Bound{{0, 5}, {5, 10}}}
	desc.MoveRow(-10)
	if desc.Row != 0 {
		t.Fatalf("expected row clamped to 0, got %d", desc.Row)
	}
	desc.MoveRow(10)
	if desc.Row != 2 {
		t.Fatalf("expected row clamped to 2, got %d", desc.Row)
	}
	desc.MoveCol(-10)
	if desc.Col != 0 {
		t.Fatalf("expected col clamped to 0, got %d", desc.Col)
	}
	desc.MoveCol(10)
	if desc.Col != 1 {
		t.Fatalf("expected col clamped to 1, got %d", desc.Col)
	}
}
