// Package table detects delimited and fixed-width tables around the review
// cursor and provides row/column/cell navigation within a detected or
// manually-tabstopped block.
package table

import (
	"strings"

	"github.com/lectorterm/lector/internal/screen"
)

// Bound is a [Start,End) column boundary for one table column.
type Bound struct {
	Start, End int
}

// Descriptor is the state of an active table mode, per spec section 3.
type Descriptor struct {
	Top, Bottom int
	Columns     []Bound
	HeaderRow   int // -1 if none
	Row, Col    int
	SpeakHeader bool
}

var delimiterPreference = []rune{'|', '\t', ','}

// Detect looks for a contiguous delimited or fixed-width table block
// around cursorRow, preferring a delimited match.
func Detect(snap *screen.Snapshot, cursorRow int) (*Descriptor, bool) {
	if d, ok := detectDelimited(snap, cursorRow); ok {
		return d, true
	}
	return detectFixedWidth(snap, cursorRow)
}

func detectDelimited(snap *screen.Snapshot, cursorRow int) (*Descriptor, bool) {
	line := snap.RowAt(cursorRow)
	delim, cols, ok := pickDelimiter(line)
	if !ok {
		return nil, false
	}

	top, bottom := cursorRow, cursorRow
	for r := cursorRow - 1; r >= 0; r-- {
		if !rowMatchesDelimiter(snap.RowAt(r), delim, cols) {
			break
		}
		top = r
	}
	for r := cursorRow + 1; r < snap.Rows; r++ {
		if !rowMatchesDelimiter(snap.RowAt(r), delim, cols) {
			break
		}
		bottom = r
	}

	bounds := delimiterBounds(line, delim)
	desc := &Descriptor{Top: top, Bottom: bottom, Columns: bounds, HeaderRow: -1}
	desc.HeaderRow = detectHeaderRow(snap, top, bottom)
	return desc, true
}

func pickDelimiter(line string) (rune, int, bool) {
	for _, d := range delimiterPreference {
		if n := strings.Count(line, string(d)); n >= 2 {
			return d, n + 1, true
		}
	}
	return 0, 0, false
}

func rowMatchesDelimiter(line string, delim rune, cols int) bool {
	if isSeparatorRow(line) {
		return true
	}
	n := strings.Count(line, string(delim)) + 1
	diff := n - cols
	if diff < 0 {
		diff = -diff
	}
	return diff <= 1
}

func isSeparatorRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if r != '-' && r != '+' {
			return false
		}
	}
	return true
}

func delimiterBounds(line string, delim rune) []Bound {
	var bounds []Bound
	start := 0
	for i, r := range line {
		if r == delim {
			bounds = append(bounds, Bound{Start: start, End: i})
			start = i + 1
		}
	}
	bounds = append(bounds, Bound{Start: start, End: len(line)})
	return bounds
}

// detectFixedWidth takes the block of contiguous non-blank rows around
// cursorRow and finds columns of whitespace that persist across all of
// them, at least 2 consecutive columns wide.
func detectFixedWidth(snap *screen.Snapshot, cursorRow int) (*Descriptor, bool) {
	base := snap.RowAt(cursorRow)
	if strings.TrimSpace(base) == "" {
		return nil, false
	}

	top, bottom := cursorRow, cursorRow
	for r := cursorRow - 1; r >= 0; r-- {
		if strings.TrimSpace(snap.RowAt(r)) == "" {
			break
		}
		top = r
	}
	for r := cursorRow + 1; r < snap.Rows; r++ {
		if strings.TrimSpace(snap.RowAt(r)) == "" {
			break
		}
		bottom = r
	}

	// Only columns that hold text on some row can separate columns; the
	// blank area right of every row's text is not a column gap.
	width := 0
	for r := top; r <= bottom; r++ {
		if n := len(snap.RowAt(r)); n > width {
			width = n
		}
	}
	persistent := make([]bool, width)
	for c := 0; c < width; c++ {
		persistent[c] = true
	}
	for r := top; r <= bottom; r++ {
		line := snap.RowAt(r)
		for c := 0; c < width; c++ {
			if !persistent[c] {
				continue
			}
			if c >= len(line) {
				continue
			}
			if line[c] != ' ' {
				persistent[c] = false
			}
		}
	}

	var runs []Bound
	inRun := false
	runStart := 0
	for c := 0; c < width; c++ {
		if persistent[c] && !inRun {
			inRun = true
			runStart = c
		}
		if (!persistent[c] || c == width-1) && inRun {
			end := c
			if persistent[c] && c == width-1 {
				end = c + 1
			}
			if end-runStart >= 2 {
				runs = append(runs, Bound{Start: runStart, End: end})
			}
			inRun = false
		}
	}
	if len(runs) == 0 {
		return nil, false
	}

	var columns []Bound
	prevEnd := 0
	for _, run := range runs {
		mid := (run.Start + run.End) / 2
		columns = append(columns, Bound{Start: prevEnd, End: mid})
		prevEnd = mid
	}
	columns = append(columns, Bound{Start: prevEnd, End: width})

	desc := &Descriptor{Top: top, Bottom: bottom, Columns: columns, HeaderRow: -1}
	desc.HeaderRow = detectHeaderRow(snap, top, bottom)
	return desc, true
}

// detectHeaderRow reports top as the header row only when the row below it
// is a separator row of '-'/'+' glyphs; differences in case or style
// between rows are not examined.
func detectHeaderRow(snap *screen.Snapshot, top, bottom int) int {
	if top >= bottom {
		return -1
	}
	next := snap.RowAt(top + 1)
	if isSeparatorRow(next) {
		return top
	}
	return -1
}

// FromTabstops builds a Descriptor from manually-marked column start
// positions on headerRow, extending to the maximal contiguous non-blank
// rows around it.
func FromTabstops(snap *screen.Snapshot, headerRow int, marks []int) *Descriptor {
	top, bottom := headerRow, headerRow
	for r := headerRow - 1; r >= 0; r-- {
		if strings.TrimSpace(snap.RowAt(r)) == "" {
			break
		}
		top = r
	}
	for r := headerRow + 1; r < snap.Rows; r++ {
		if strings.TrimSpace(snap.RowAt(r)) == "" {
			break
		}
		bottom = r
	}

	sorted := append([]int(nil), marks...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}

	var columns []Bound
	prev := 0
	for _, m := range sorted {
		columns = append(columns, Bound{Start: prev, End: m})
		prev = m
	}
	columns = append(columns, Bound{Start: prev, End: snap.Cols})

	return &Descriptor{Top: top, Bottom: bottom, Columns: columns, HeaderRow: headerRow}
}

// Cell returns the text of descriptor column col on row, trimmed.
func (d *Descriptor) Cell(snap *screen.Snapshot, row, col int) string {
	if col < 0 || col >= len(d.Columns) {
		return ""
	}
	line := snap.RowAt(row)
	b := d.Columns[col]
	start, end := b.Start, b.End
	if start > len(line) {
		start = len(line)
	}
	if end > len(line) {
		end = len(line)
	}
	if start > end {
		return ""
	}
	return strings.Trim(line[start:end], " \t|,")
}

// HeaderCell returns the header text for col, or "" if there is no header
// row.
func (d *Descriptor) HeaderCell(snap *screen.Snapshot, col int) string {
	if d.HeaderRow < 0 {
		return ""
	}
	return d.Cell(snap, d.HeaderRow, col)
}

func (d *Descriptor) MoveRow(delta int) {
	d.Row = clampInt(d.Row+delta, d.Top, d.Bottom)
}

func (d *Descriptor) MoveCol(delta int) {
	d.Col = clampInt(d.Col+delta, 0, len(d.Columns)-1)
}

func (d *Descriptor) FirstCol() { d.Col = 0 }
func (d *Descriptor) LastCol()  { d.Col = len(d.Columns) - 1 }
func (d *Descriptor) FirstRow() { d.Row = d.Top }
func (d *Descriptor) LastRow()  { d.Row = d.Bottom }

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
