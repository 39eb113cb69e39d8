package screen

import (
	"sync"

	"github.com/danielgatis/go-ansicode"
)

const (
	DefaultRows = 24
	DefaultCols = 80

	defaultScrollback = 2000
)

// Mode is a bitmask of terminal modes this screen model understands. Every
// other DECSET/DECRST mode the byte stream requests is accepted and
// ignored, per the spec's "only what is required to maintain a correct
// character grid" non-goal.
type Mode uint32

const (
	ModeLineWrap Mode = 1 << iota
	ModeOrigin
	ModeShowCursor
	ModeAlternateScreen
	ModeCursorKeys
)

// Screen is the virtual terminal grid: dual buffers, a cursor, and the
// decoder that feeds them from a raw byte stream.
type Screen struct {
	mu sync.RWMutex

	rows, cols int

	primary     *Buffer
	alternate   *Buffer
	active      *Buffer
	isAlternate bool

	cursor      Cursor
	savedCursor *SavedCursor
	template    Cell

	scrollTop, scrollBottom int
	modes                   Mode

	title      string
	titleStack []string

	generation uint64

	decoder *ansicode.Decoder
}

// Option configures a Screen at construction time.
type Option func(*Screen)

func WithSize(rows, cols int) Option {
	return func(s *Screen) { s.rows, s.cols = rows, cols }
}

// New builds a Screen ready to receive bytes. Default size is
// DefaultRows x DefaultCols; line wrap and cursor visibility default on.
func New(opts ...Option) *Screen {
	s := &Screen{
		rows:     DefaultRows,
		cols:     DefaultCols,
		cursor:   NewCursor(),
		template: NewCell(),
		modes:    ModeLineWrap | ModeShowCursor,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.primary = NewBufferWithScrollback(s.rows, s.cols, defaultScrollback)
	s.alternate = NewBuffer(s.rows, s.cols)
	s.active = s.primary
	s.scrollBottom = s.rows - 1
	s.decoder = ansicode.NewDecoder(newVTHandler(s))
	return s
}

func (s *Screen) Rows() int { s.mu.RLock(); defer s.mu.RUnlock(); return s.rows }
func (s *Screen) Cols() int { s.mu.RLock(); defer s.mu.RUnlock(); return s.cols }

func (s *Screen) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

func (s *Screen) HasMode(m Mode) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modes&m != 0
}

func (s *Screen) IsAlternateScreen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAlternate
}

// Write feeds data through the VT decoder. It implements io.Writer so the
// PTY host can copy directly into a Screen.
func (s *Screen) Write(data []byte) (int, error) {
	s.mu.Lock()
	s.decoder.Write(data)
	s.active.ClearAllDirty()
	s.generation++
	s.mu.Unlock()
	return len(data), nil
}

func (s *Screen) WriteString(str string) (int, error) { return s.Write([]byte(str)) }

// Resize changes the window size, preserving top-left content on both
// buffers and clamping the cursor and scroll region.
func (s *Screen) Resize(rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rows <= 0 || cols <= 0 || (rows == s.rows && cols == s.cols) {
		return
	}
	s.primary.Resize(rows, cols)
	s.alternate.Resize(rows, cols)
	s.rows, s.cols = rows, cols
	s.scrollTop, s.scrollBottom = 0, rows-1
	s.cursor.Row = clamp(s.cursor.Row, 0, rows-1)
	s.cursor.Col = clamp(s.cursor.Col, 0, cols-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (s *Screen) CursorPos() (row, col int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.cursor.Visible {
		return 0, 0
	}
	return s.cursor.Row, s.cursor.Col
}

func (s *Screen) CursorVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursor.Visible
}

func (s *Screen) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.title
}

func (s *Screen) effectiveBottom() int {
	if s.cursor.Row > s.scrollBottom {
		return s.rows - 1
	}
	return s.scrollBottom
}
