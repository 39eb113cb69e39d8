package screen

// CursorStyle is the shape used to render the cursor; Lector never draws it
// itself but carries it through so the mirrored TTY output looks right.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
)

// Cursor is the Screen's own write cursor, distinct from the review cursor
// in package review.
type Cursor struct {
	Row     int
	Col     int
	Style   CursorStyle
	Visible bool
}

func NewCursor() Cursor {
	return Cursor{Style: CursorBlock, Visible: true}
}

// SavedCursor is the DECSC/DECRC snapshot restored by RestoreCursorPosition.
type SavedCursor struct {
	Row, Col     int
	Template     Cell
	OriginMode   bool
	CharsetIndex CharsetIndex
}

// CharsetIndex selects among the four G0-G3 character set slots.
type CharsetIndex int

const (
	G0 CharsetIndex = iota
	G1
	G2
	G3
)

// Charset is the translation table assigned to a CharsetIndex.
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetLineDrawing
)
