package screen

// Snapshot is an immutable copy of a Screen taken between event-loop
// iterations. The live reader retains the previous one to diff against the
// next; nothing else in the repo holds a live reference into the Screen.
type Snapshot struct {
	Generation uint64
	Rows       int
	Cols       int
	Cursor     SnapshotCursor
	Lines      []SnapshotLine
}

type SnapshotCursor struct {
	Row, Col int
	Visible  bool
	Style    CursorStyle
}

// SnapshotLine holds both the plain text of a row (for diffing and
// speaking) and the per-cell data (for table/attribute-aware consumers).
type SnapshotLine struct {
	Text    string
	Wrapped bool
	Cells   []SnapshotCell
}

type SnapshotCell struct {
	Grapheme    string
	Fg, Bg      int
	Attrs       SnapshotAttrs
	WideSpacer  bool
}

type SnapshotAttrs struct {
	Bold, Dim, Italic, Underline, Reverse, Strikethrough bool
}

// Snapshot copies the active buffer's current state. It holds s's read lock
// while copying, so it waits for a Write in progress, and it never retains
// any reference into s.
func (s *Screen) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	buf := s.active
	snap := &Snapshot{
		Generation: s.generation,
		Rows:       buf.Rows(),
		Cols:       buf.Cols(),
		Cursor: SnapshotCursor{
			Row:     s.cursor.Row,
			Col:     s.cursor.Col,
			Visible: s.cursor.Visible,
			Style:   s.cursor.Style,
		},
		Lines: make([]SnapshotLine, buf.Rows()),
	}
	for r := 0; r < buf.Rows(); r++ {
		snap.Lines[r] = snapshotLine(buf, r)
	}
	return snap
}

func snapshotLine(buf *Buffer, row int) SnapshotLine {
	cols := buf.Cols()
	cells := make([]SnapshotCell, cols)
	for c := 0; c < cols; c++ {
		cell := buf.Cell(row, c)
		cells[c] = cellToSnapshot(cell)
	}
	return SnapshotLine{
		Text:    buf.LineContent(row),
		Wrapped: buf.IsWrapped(row),
		Cells:   cells,
	}
}

func cellToSnapshot(c Cell) SnapshotCell {
	return SnapshotCell{
		Grapheme:   c.Grapheme,
		Fg:         c.Fg,
		Bg:         c.Bg,
		WideSpacer: c.IsWideSpacer(),
		Attrs: SnapshotAttrs{
			Bold:          c.HasFlag(FlagBold),
			Dim:           c.HasFlag(FlagDim),
			Italic:        c.HasFlag(FlagItalic),
			Underline:     c.HasFlag(FlagUnderline),
			Reverse:       c.HasFlag(FlagReverse),
			Strikethrough: c.HasFlag(FlagStrike),
		},
	}
}

// RowAt returns the text of row, or "" if out of range.
func (s *Snapshot) RowAt(row int) string {
	if row < 0 || row >= len(s.Lines) {
		return ""
	}
	return s.Lines[row].Text
}

// CellAt returns the cell at (row,col), or the zero value if out of range.
func (s *Snapshot) CellAt(row, col int) SnapshotCell {
	if row < 0 || row >= len(s.Lines) {
		return SnapshotCell{}
	}
	line := s.Lines[row].Cells
	if col < 0 || col >= len(line) {
		return SnapshotCell{}
	}
	return line[col]
}
