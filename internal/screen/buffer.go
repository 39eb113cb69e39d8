package screen

import "strings"

// Position is a (row, col) grid coordinate. Scrollback rows, when used
// internally, are negative.
type Position struct {
	Row, Col int
}

func (p Position) Before(o Position) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

func (p Position) Equal(o Position) bool { return p == o }

// scrollbackRing is a small bounded ring of lines pushed off the top of the
// primary buffer by ScrollUp. The screen model here is explicitly
// "scrollback-free" from the snapshot's point of view (section 3); the ring
// is read only through Buffer's ScrollbackLen and ScrollbackLine, and it is
// never exposed through Snapshot, so the live reader never sees the rows
// scrolled off the top.
type scrollbackRing struct {
	lines    [][]Cell
	maxLines int
}

func newScrollbackRing(max int) *scrollbackRing {
	return &scrollbackRing{maxLines: max}
}

func (s *scrollbackRing) push(line []Cell) {
	if s.maxLines <= 0 {
		return
	}
	cp := make([]Cell, len(line))
	copy(cp, line)
	s.lines = append(s.lines, cp)
	if len(s.lines) > s.maxLines {
		s.lines = s.lines[len(s.lines)-s.maxLines:]
	}
}

func (s *scrollbackRing) len() int { return len(s.lines) }

func (s *scrollbackRing) line(i int) []Cell {
	if i < 0 || i >= len(s.lines) {
		return nil
	}
	return s.lines[i]
}

// Buffer is a 2D grid of Cells with scroll-region-aware line operations.
type Buffer struct {
	rows, cols int
	cells      [][]Cell
	wrapped    []bool
	tabStop    []bool
	scrollback *scrollbackRing
	dirty      bool
}

// NewBuffer allocates a blank rows×cols grid with tab stops every 8
// columns and no scrollback.
func NewBuffer(rows, cols int) *Buffer {
	return NewBufferWithScrollback(rows, cols, 0)
}

// NewBufferWithScrollback is NewBuffer plus a bounded scrollback ring of
// maxScrollback lines (used by the primary buffer; the alternate buffer
// uses 0).
func NewBufferWithScrollback(rows, cols, maxScrollback int) *Buffer {
	b := &Buffer{
		rows:       rows,
		cols:       cols,
		cells:      make([][]Cell, rows),
		wrapped:    make([]bool, rows),
		tabStop:    make([]bool, cols),
		scrollback: newScrollbackRing(maxScrollback),
	}
	for r := range b.cells {
		b.cells[r] = newRow(cols)
	}
	for c := 0; c < cols; c += 8 {
		b.tabStop[c] = true
	}
	return b
}

func newRow(cols int) []Cell {
	row := make([]Cell, cols)
	for i := range row {
		row[i] = NewCell()
	}
	return row
}

func (b *Buffer) Rows() int { return b.rows }
func (b *Buffer) Cols() int { return b.cols }

func (b *Buffer) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Buffer) Cell(row, col int) Cell {
	if !b.inBounds(row, col) {
		return Cell{}
	}
	return b.cells[row][col]
}

func (b *Buffer) SetCell(row, col int, c Cell) {
	if !b.inBounds(row, col) {
		return
	}
	c.MarkDirty()
	b.cells[row][col] = c
	b.dirty = true
}

func (b *Buffer) HasDirty() bool { return b.dirty }

func (b *Buffer) ClearAllDirty() {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c].ClearDirty()
		}
	}
	b.dirty = false
}

func (b *Buffer) ClearRow(row int) { b.ClearRowRange(row, 0, b.cols-1) }

func (b *Buffer) ClearRowRange(row, from, to int) {
	if row < 0 || row >= b.rows {
		return
	}
	if from < 0 {
		from = 0
	}
	if to >= b.cols {
		to = b.cols - 1
	}
	for c := from; c <= to; c++ {
		b.SetCell(row, c, NewCell())
	}
}

func (b *Buffer) ClearAll() {
	for r := 0; r < b.rows; r++ {
		b.ClearRow(r)
	}
}

// ScrollUp moves n lines of the [top,bottom] region up, pushing lines off
// the top into scrollback only when top == 0 (the true top of the
// buffer), and filling the vacated bottom rows with blanks.
func (b *Buffer) ScrollUp(top, bottom, n int) {
	if n <= 0 || top > bottom || top < 0 || bottom >= b.rows {
		return
	}
	for i := 0; i < n; i++ {
		if top == 0 {
			b.scrollback.push(b.cells[top])
		}
		copy(b.cells[top:bottom], b.cells[top+1:bottom+1])
		b.cells[bottom] = newRow(b.cols)
		copy(b.wrapped[top:bottom], b.wrapped[top+1:bottom+1])
		b.wrapped[bottom] = false
	}
	b.dirty = true
}

// ScrollDown moves n lines of the [top,bottom] region down, discarding
// lines scrolled off the bottom and filling the vacated top rows with
// blanks.
func (b *Buffer) ScrollDown(top, bottom, n int) {
	if n <= 0 || top > bottom || top < 0 || bottom >= b.rows {
		return
	}
	for i := 0; i < n; i++ {
		copy(b.cells[top+1:bottom+1], b.cells[top:bottom])
		b.cells[top] = newRow(b.cols)
		copy(b.wrapped[top+1:bottom+1], b.wrapped[top:bottom])
		b.wrapped[top] = false
	}
	b.dirty = true
}

func (b *Buffer) InsertLines(top, bottom, n int) { b.ScrollDown(top, bottom, n) }
func (b *Buffer) DeleteLines(top, bottom, n int) { b.ScrollUp(top, bottom, n) }

// InsertBlanks shifts the cells from col to the end of row right by n,
// discarding overflow and filling the vacated columns with blanks.
func (b *Buffer) InsertBlanks(row, col, n int) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols || n <= 0 {
		return
	}
	line := b.cells[row]
	end := b.cols - n
	if end < col {
		end = col
	}
	copy(line[col+n:], line[col:end])
	for c := col; c < col+n && c < b.cols; c++ {
		line[c] = NewCell()
	}
	b.dirty = true
}

// DeleteChars shifts the cells after col+n left by n into col, filling the
// vacated columns at the end of the row with blanks.
func (b *Buffer) DeleteChars(row, col, n int) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols || n <= 0 {
		return
	}
	line := b.cells[row]
	copy(line[col:], line[col+n:])
	for c := b.cols - n; c < b.cols; c++ {
		if c >= col {
			line[c] = NewCell()
		}
	}
	b.dirty = true
}

// Resize changes the buffer's dimensions, preserving the top-left content
// that still fits.
func (b *Buffer) Resize(rows, cols int) {
	newCells := make([][]Cell, rows)
	newWrapped := make([]bool, rows)
	for r := 0; r < rows; r++ {
		newCells[r] = newRow(cols)
		if r < len(b.cells) {
			copy(newCells[r], b.cells[r])
			if r < len(b.wrapped) {
				newWrapped[r] = b.wrapped[r]
			}
		}
	}
	newTabStop := make([]bool, cols)
	for c := 0; c < cols; c++ {
		if c < len(b.tabStop) {
			newTabStop[c] = b.tabStop[c]
		} else if c%8 == 0 {
			newTabStop[c] = true
		}
	}
	b.rows, b.cols = rows, cols
	b.cells, b.wrapped, b.tabStop = newCells, newWrapped, newTabStop
	b.dirty = true
}

func (b *Buffer) SetTabStop(col int) {
	if col >= 0 && col < len(b.tabStop) {
		b.tabStop[col] = true
	}
}

func (b *Buffer) ClearTabStop(col int) {
	if col >= 0 && col < len(b.tabStop) {
		b.tabStop[col] = false
	}
}

func (b *Buffer) ClearAllTabStops() {
	for c := range b.tabStop {
		b.tabStop[c] = false
	}
}

func (b *Buffer) NextTabStop(col int) int {
	for c := col + 1; c < b.cols; c++ {
		if b.tabStop[c] {
			return c
		}
	}
	return b.cols - 1
}

func (b *Buffer) PrevTabStop(col int) int {
	for c := col - 1; c >= 0; c-- {
		if b.tabStop[c] {
			return c
		}
	}
	return 0
}

// LineContent renders row as text, trimming trailing spaces and skipping
// wide-character spacer placeholders.
func (b *Buffer) LineContent(row int) string {
	if row < 0 || row >= b.rows {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[row] {
		if c.IsWideSpacer() {
			continue
		}
		if c.Grapheme == "" {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteString(c.Grapheme)
	}
	return strings.TrimRight(sb.String(), " ")
}

func (b *Buffer) IsWrapped(row int) bool {
	if row < 0 || row >= b.rows {
		return false
	}
	return b.wrapped[row]
}

func (b *Buffer) SetWrapped(row int, wrapped bool) {
	if row >= 0 && row < b.rows {
		b.wrapped[row] = wrapped
	}
}

func (b *Buffer) ScrollbackLen() int { return b.scrollback.len() }

func (b *Buffer) ScrollbackLine(i int) []Cell { return b.scrollback.line(i) }
