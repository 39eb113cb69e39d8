package screen

import "github.com/danielgatis/go-ansicode"

// vtHandler adapts a Screen to ansicode.Handler, translating VT parser
// callbacks into grid operations under the Screen's own lock (the decoder
// only ever runs from inside Screen.Write, which already holds s.mu).
type vtHandler struct {
	ansicode.NoopHandler
	s *Screen

	clusters ClusterSegmenter
}

func newVTHandler(s *Screen) *vtHandler {
	return &vtHandler{s: s}
}

// Input handles a single printable rune, grouping it into grapheme
// clusters before committing a Cell.
func (h *vtHandler) Input(r rune) {
	for _, cluster := range h.clusters.Push(r) {
		h.putCluster(cluster)
	}
}

func (h *vtHandler) putCluster(cluster string) {
	s := h.s
	width := GraphemeWidth(cluster)

	if s.modes&ModeLineWrap != 0 && s.cursor.Col+width > s.cols {
		s.active.SetWrapped(s.cursor.Row, true)
		h.lineFeed()
		s.cursor.Col = 0
	}

	cell := s.template
	cell.Grapheme = cluster
	if width == 2 {
		cell.SetFlag(FlagWide)
	}
	s.active.SetCell(s.cursor.Row, s.cursor.Col, cell)
	if width == 2 && s.cursor.Col+1 < s.cols {
		spacer := NewCell()
		spacer.Grapheme = ""
		spacer.SetFlag(FlagWideSpacer)
		s.active.SetCell(s.cursor.Row, s.cursor.Col+1, spacer)
	}

	s.cursor.Col += width
	if s.cursor.Col >= s.cols {
		if s.modes&ModeLineWrap != 0 {
			s.cursor.Col = s.cols - 1
		} else {
			s.cursor.Col = s.cols - 1
		}
	}
}

func (h *vtHandler) CarriageReturn() { h.s.cursor.Col = 0 }

func (h *vtHandler) LineFeed() { h.lineFeed() }

func (h *vtHandler) lineFeed() {
	s := h.s
	if s.cursor.Row == s.effectiveBottom() {
		s.active.ScrollUp(s.scrollTop, s.effectiveBottom(), 1)
		return
	}
	if s.cursor.Row < s.rows-1 {
		s.cursor.Row++
	}
}

func (h *vtHandler) Backspace() {
	if h.s.cursor.Col > 0 {
		h.s.cursor.Col--
	}
}

func (h *vtHandler) Bell() {}

func (h *vtHandler) Goto(row, col int) {
	s := h.s
	s.cursor.Row = clamp(row, 0, s.rows-1)
	s.cursor.Col = clamp(col, 0, s.cols-1)
}

func (h *vtHandler) GotoLine(row int) { h.Goto(row, h.s.cursor.Col) }
func (h *vtHandler) GotoCol(col int)  { h.Goto(h.s.cursor.Row, col) }

func (h *vtHandler) MoveUp(n int)    { h.Goto(h.s.cursor.Row-n, h.s.cursor.Col) }
func (h *vtHandler) MoveDown(n int)  { h.Goto(h.s.cursor.Row+n, h.s.cursor.Col) }
func (h *vtHandler) MoveForward(n int)  { h.Goto(h.s.cursor.Row, h.s.cursor.Col+n) }
func (h *vtHandler) MoveBackward(n int) { h.Goto(h.s.cursor.Row, h.s.cursor.Col-n) }
func (h *vtHandler) MoveUpCr(n int)     { h.MoveUp(n); h.CarriageReturn() }
func (h *vtHandler) MoveDownCr(n int)   { h.MoveDown(n); h.CarriageReturn() }

func (h *vtHandler) ClearScreen(mode ansicode.ClearMode) {
	s := h.s
	switch mode {
	case ansicode.ClearModeBelow:
		s.active.ClearRowRange(s.cursor.Row, s.cursor.Col, s.cols-1)
		for r := s.cursor.Row + 1; r < s.rows; r++ {
			s.active.ClearRow(r)
		}
	case ansicode.ClearModeAbove:
		for r := 0; r < s.cursor.Row; r++ {
			s.active.ClearRow(r)
		}
		s.active.ClearRowRange(s.cursor.Row, 0, s.cursor.Col)
	case ansicode.ClearModeAll, ansicode.ClearModeSaved:
		s.active.ClearAll()
	}
}

func (h *vtHandler) ClearLine(mode ansicode.LineClearMode) {
	s := h.s
	switch mode {
	case ansicode.LineClearModeRight:
		s.active.ClearRowRange(s.cursor.Row, s.cursor.Col, s.cols-1)
	case ansicode.LineClearModeLeft:
		s.active.ClearRowRange(s.cursor.Row, 0, s.cursor.Col)
	case ansicode.LineClearModeAll:
		s.active.ClearRow(s.cursor.Row)
	}
}

func (h *vtHandler) EraseChars(n int) {
	s := h.s
	s.active.ClearRowRange(s.cursor.Row, s.cursor.Col, s.cursor.Col+n-1)
}

func (h *vtHandler) InsertBlank(n int) {
	h.s.active.InsertBlanks(h.s.cursor.Row, h.s.cursor.Col, n)
}

func (h *vtHandler) DeleteChars(n int) {
	h.s.active.DeleteChars(h.s.cursor.Row, h.s.cursor.Col, n)
}

func (h *vtHandler) InsertBlankLines(n int) {
	s := h.s
	s.active.InsertLines(s.cursor.Row, s.effectiveBottom(), n)
}

func (h *vtHandler) DeleteLines(n int) {
	s := h.s
	s.active.DeleteLines(s.cursor.Row, s.effectiveBottom(), n)
}

func (h *vtHandler) ScrollUp(n int) {
	s := h.s
	s.active.ScrollUp(s.scrollTop, s.scrollBottom, n)
}

func (h *vtHandler) ScrollDown(n int) {
	s := h.s
	s.active.ScrollDown(s.scrollTop, s.scrollBottom, n)
}

func (h *vtHandler) ReverseIndex() {
	s := h.s
	if s.cursor.Row == s.scrollTop {
		s.active.ScrollDown(s.scrollTop, s.effectiveBottom(), 1)
		return
	}
	if s.cursor.Row > 0 {
		s.cursor.Row--
	}
}

func (h *vtHandler) SetScrollingRegion(top, bottom int) {
	s := h.s
	if top < 0 {
		top = 0
	}
	if bottom >= s.rows || bottom < top {
		bottom = s.rows - 1
	}
	s.scrollTop, s.scrollBottom = top, bottom
	h.Goto(0, 0)
}

func (h *vtHandler) SaveCursorPosition() {
	s := h.s
	s.savedCursor = &SavedCursor{Row: s.cursor.Row, Col: s.cursor.Col, Template: s.template}
}

func (h *vtHandler) RestoreCursorPosition() {
	s := h.s
	if s.savedCursor == nil {
		return
	}
	s.cursor.Row, s.cursor.Col = s.savedCursor.Row, s.savedCursor.Col
	s.template = s.savedCursor.Template
}

func (h *vtHandler) HorizontalTabSet() { h.s.active.SetTabStop(h.s.cursor.Col) }
func (h *vtHandler) ClearTabs(mode ansicode.TabulationClearMode) {
	switch mode {
	case ansicode.TabulationClearModeAll:
		h.s.active.ClearAllTabStops()
	case ansicode.TabulationClearModeCurrent:
		h.s.active.ClearTabStop(h.s.cursor.Col)
	}
}
func (h *vtHandler) MoveForwardTabs(n int) {
	for i := 0; i < n; i++ {
		h.s.cursor.Col = h.s.active.NextTabStop(h.s.cursor.Col)
	}
}
func (h *vtHandler) MoveBackwardTabs(n int) {
	for i := 0; i < n; i++ {
		h.s.cursor.Col = h.s.active.PrevTabStop(h.s.cursor.Col)
	}
}

func (h *vtHandler) Decaln() {
	s := h.s
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			cell := NewCell()
			cell.Grapheme = "E"
			s.active.SetCell(r, c, cell)
		}
	}
}

func (h *vtHandler) SetTitle(title string) {
	h.s.title = title
}

func (h *vtHandler) PushTitle() {
	h.s.titleStack = append(h.s.titleStack, h.s.title)
}

func (h *vtHandler) PopTitle() {
	n := len(h.s.titleStack)
	if n == 0 {
		return
	}
	h.s.title = h.s.titleStack[n-1]
	h.s.titleStack = h.s.titleStack[:n-1]
}

// SetMode and UnsetMode implement DECSET/DECRST for the modes this screen
// model carries; every other mode number is accepted and silently ignored.
func (h *vtHandler) SetMode(mode ansicode.TerminalMode) { h.applyMode(mode, true) }

func (h *vtHandler) UnsetMode(mode ansicode.TerminalMode) { h.applyMode(mode, false) }

func (h *vtHandler) applyMode(mode ansicode.TerminalMode, enabled bool) {
	s := h.s
	switch mode {
	case ansicode.TerminalModeLineWrap:
		s.setModeFlag(ModeLineWrap, enabled)
	case ansicode.TerminalModeOrigin:
		s.setModeFlag(ModeOrigin, enabled)
		h.Goto(0, 0)
	case ansicode.TerminalModeShowCursor:
		s.setModeFlag(ModeShowCursor, enabled)
		s.cursor.Visible = enabled
	case ansicode.TerminalModeSwapScreenAndSetRestoreCursor:
		h.setAlternateScreen(enabled)
	case ansicode.TerminalModeCursorKeys:
		s.setModeFlag(ModeCursorKeys, enabled)
	}
}

func (s *Screen) setModeFlag(m Mode, enabled bool) {
	if enabled {
		s.modes |= m
	} else {
		s.modes &^= m
	}
}

func (h *vtHandler) setAlternateScreen(enabled bool) {
	s := h.s
	if enabled == s.isAlternate {
		return
	}
	s.isAlternate = enabled
	if enabled {
		s.active = s.alternate
		s.active.ClearAll()
	} else {
		s.active = s.primary
	}
	s.setModeFlag(ModeAlternateScreen, enabled)
	h.Goto(0, 0)
}

// SetTerminalCharAttribute applies one SGR parameter to the cell template
// used for subsequently written cells.
func (h *vtHandler) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	s := h.s
	switch attr.Attr {
	case ansicode.CharAttributeReset:
		s.template = NewCell()
	case ansicode.CharAttributeBold:
		s.template.SetFlag(FlagBold)
	case ansicode.CharAttributeDim:
		s.template.SetFlag(FlagDim)
	case ansicode.CharAttributeItalic:
		s.template.SetFlag(FlagItalic)
	case ansicode.CharAttributeUnderline:
		s.template.SetFlag(FlagUnderline)
	case ansicode.CharAttributeReverse:
		s.template.SetFlag(FlagReverse)
	case ansicode.CharAttributeHidden:
		s.template.SetFlag(FlagHidden)
	case ansicode.CharAttributeStrike:
		s.template.SetFlag(FlagStrike)
	case ansicode.CharAttributeCancelBold:
		s.template.ClearFlag(FlagBold)
	case ansicode.CharAttributeCancelItalic:
		s.template.ClearFlag(FlagItalic)
	case ansicode.CharAttributeCancelUnderline:
		s.template.ClearFlag(FlagUnderline)
	case ansicode.CharAttributeCancelReverse:
		s.template.ClearFlag(FlagReverse)
	case ansicode.CharAttributeCancelHidden:
		s.template.ClearFlag(FlagHidden)
	case ansicode.CharAttributeCancelStrike:
		s.template.ClearFlag(FlagStrike)
	case ansicode.CharAttributeForeground:
		s.template.Fg = h.resolveColorIndex(attr)
	case ansicode.CharAttributeBackground:
		s.template.Bg = h.resolveColorIndex(attr)
	}
}

// resolveColorIndex maps a parsed SGR color down to the palette index this
// screen model's Cell carries. True-color (RGB) SGR sequences have no
// lossless palette index, so they resolve to ColorDefault.
func (h *vtHandler) resolveColorIndex(attr ansicode.TerminalCharAttribute) int {
	switch {
	case attr.IndexedColor != nil:
		return int(attr.IndexedColor.Index)
	case attr.NamedColor != nil:
		return int(*attr.NamedColor)
	default:
		return ColorDefault
	}
}
