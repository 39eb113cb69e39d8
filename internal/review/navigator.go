// Package review implements cursor-free motion over a screen.Snapshot by
// character, word, or line, independent of the application's own cursor.
// Word motion uses the Unicode word-boundary algorithm via
// clipperhouse/uax29/v2/words, matching the spec's requirement directly
// rather than hand-rolling a splitter.
package review

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"

	"github.com/lectorterm/lector/internal/screen"
)

// Cursor is the review cursor: a (row, col) position into the latest
// snapshot, always on a grapheme start.
type Cursor struct {
	Row, Col int
}

// Mark is an optional anchor paired with the cursor to define a copy
// region.
type Mark struct {
	Row, Col int
	Set      bool
}

// Navigator holds the review cursor and mark against a snapshot supplied
// per-call (the navigator itself is stateless across snapshots other than
// cursor/mark position, matching the "own everything explicitly" design
// note).
type Navigator struct {
	Cursor Cursor
	Mark   Mark
}

// Result is what a motion reports: the new position and what to speak, if
// anything (a motion stopped at a boundary reports "top", "bottom",
// "line start" or "line end" in Boundary instead of text).
type Result struct {
	Cursor    Cursor
	Utterance string
	Boundary  string
}

func firstNonWhitespaceCol(snap *screen.Snapshot, row int) int {
	clusters := screen.Split(snap.RowAt(row))
	for i, g := range clusters {
		if strings.TrimSpace(g) != "" {
			return i
		}
	}
	return 0
}

// PrevLine moves to the previous row's first non-whitespace column (or the
// boundary at row 0).
func (n *Navigator) PrevLine(snap *screen.Snapshot) Result {
	if n.Cursor.Row <= 0 {
		return Result{Cursor: n.Cursor, Boundary: "top"}
	}
	n.Cursor.Row--
	n.Cursor.Col = firstNonWhitespaceCol(snap, n.Cursor.Row)
	return Result{Cursor: n.Cursor, Utterance: snap.RowAt(n.Cursor.Row)}
}

// NextLine moves to the next row's first non-whitespace column (or the
// boundary at the last row).
func (n *Navigator) NextLine(snap *screen.Snapshot) Result {
	if n.Cursor.Row >= snap.Rows-1 {
		return Result{Cursor: n.Cursor, Boundary: "bottom"}
	}
	n.Cursor.Row++
	n.Cursor.Col = firstNonWhitespaceCol(snap, n.Cursor.Row)
	return Result{Cursor: n.Cursor, Utterance: snap.RowAt(n.Cursor.Row)}
}

// ReadLine speaks the current row without moving.
func (n *Navigator) ReadLine(snap *screen.Snapshot) Result {
	return Result{Cursor: n.Cursor, Utterance: snap.RowAt(n.Cursor.Row)}
}

// Top moves to row 0, col 0.
func (n *Navigator) Top(snap *screen.Snapshot) Result {
	n.Cursor = Cursor{Row: 0, Col: 0}
	return Result{Cursor: n.Cursor, Boundary: "top"}
}

// Bottom moves to the last row, col 0.
func (n *Navigator) Bottom(snap *screen.Snapshot) Result {
	n.Cursor = Cursor{Row: snap.Rows - 1, Col: 0}
	return Result{Cursor: n.Cursor, Boundary: "bottom"}
}

// wordSpans returns the [start,end) grapheme-index ranges of word-break
// spans in line that contain at least one alphanumeric grapheme.
func wordSpans(line string) [][2]int {
	clusters := screen.Split(line)
	if len(clusters) == 0 {
		return nil
	}
	// Map byte offsets from the words segmenter back to grapheme indices.
	byteToIndex := make(map[int]int, len(clusters)+1)
	offset := 0
	for i, g := range clusters {
		byteToIndex[offset] = i
		offset += len(g)
	}
	byteToIndex[offset] = len(clusters)

	var spans [][2]int
	seg := words.FromString(line)
	pos := 0
	for seg.Next() {
		word := seg.Value()
		start := pos
		end := pos + len(word)
		pos = end
		if !hasAlnum(word) {
			continue
		}
		si, ok1 := byteToIndex[start]
		ei, ok2 := byteToIndex[end]
		if !ok1 || !ok2 {
			continue
		}
		spans = append(spans, [2]int{si, ei})
	}
	return spans
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// PrevWord moves to the start of the previous word span, crossing rows
// upward when none remain on the current row.
func (n *Navigator) PrevWord(snap *screen.Snapshot) Result {
	row := n.Cursor.Row
	for row >= 0 {
		spans := wordSpans(snap.RowAt(row))
		for i := len(spans) - 1; i >= 0; i-- {
			if row < n.Cursor.Row || spans[i][0] < n.Cursor.Col {
				n.Cursor.Row, n.Cursor.Col = row, spans[i][0]
				return Result{Cursor: n.Cursor, Utterance: wordText(snap, row, spans[i])}
			}
		}
		row--
	}
	return Result{Cursor: n.Cursor, Boundary: "top"}
}

// NextWord moves to the start of the next word span, crossing rows
// downward when none remain on the current row.
func (n *Navigator) NextWord(snap *screen.Snapshot) Result {
	row := n.Cursor.Row
	for row < snap.Rows {
		spans := wordSpans(snap.RowAt(row))
		for _, span := range spans {
			if row > n.Cursor.Row || span[0] > n.Cursor.Col {
				n.Cursor.Row, n.Cursor.Col = row, span[0]
				return Result{Cursor: n.Cursor, Utterance: wordText(snap, row, span)}
			}
		}
		row++
	}
	return Result{Cursor: n.Cursor, Boundary: "bottom"}
}

// ReadWord speaks the word span containing the cursor, if any.
func (n *Navigator) ReadWord(snap *screen.Snapshot) Result {
	spans := wordSpans(snap.RowAt(n.Cursor.Row))
	for _, span := range spans {
		if n.Cursor.Col >= span[0] && n.Cursor.Col < span[1] {
			return Result{Cursor: n.Cursor, Utterance: wordText(snap, n.Cursor.Row, span)}
		}
	}
	return Result{Cursor: n.Cursor}
}

func wordText(snap *screen.Snapshot, row int, span [2]int) string {
	clusters := screen.Split(snap.RowAt(row))
	if span[0] < 0 || span[1] > len(clusters) {
		return ""
	}
	return strings.Join(clusters[span[0]:span[1]], "")
}

// PrevChar moves back one grapheme, never landing on a width-2
// continuation column.
func (n *Navigator) PrevChar(snap *screen.Snapshot) Result {
	clusters := screen.Split(snap.RowAt(n.Cursor.Row))
	if n.Cursor.Col <= 0 {
		return Result{Cursor: n.Cursor, Boundary: "line start"}
	}
	n.Cursor.Col--
	if n.Cursor.Col >= len(clusters) {
		n.Cursor.Col = len(clusters) - 1
	}
	return Result{Cursor: n.Cursor, Utterance: graphemeAt(clusters, n.Cursor.Col)}
}

// NextChar moves forward one grapheme.
func (n *Navigator) NextChar(snap *screen.Snapshot) Result {
	clusters := screen.Split(snap.RowAt(n.Cursor.Row))
	if n.Cursor.Col >= len(clusters)-1 {
		return Result{Cursor: n.Cursor, Boundary: "line end"}
	}
	n.Cursor.Col++
	return Result{Cursor: n.Cursor, Utterance: graphemeAt(clusters, n.Cursor.Col)}
}

func graphemeAt(clusters []string, i int) string {
	if i < 0 || i >= len(clusters) {
		return ""
	}
	return clusters[i]
}

// SetMark anchors the mark at the current cursor.
func (n *Navigator) SetMark() {
	n.Mark = Mark{Row: n.Cursor.Row, Col: n.Cursor.Col, Set: true}
}

// Copy extracts text from min(mark,cursor) to max(mark,cursor) in
// row-major order, trimming trailing spaces per row.
func (n *Navigator) Copy(snap *screen.Snapshot) (string, bool) {
	if !n.Mark.Set {
		return "", false
	}
	start, end := Cursor{Row: n.Mark.Row, Col: n.Mark.Col}, n.Cursor
	if (end.Row < start.Row) || (end.Row == start.Row && end.Col < start.Col) {
		start, end = end, start
	}

	var lines []string
	for row := start.Row; row <= end.Row; row++ {
		clusters := screen.Split(snap.RowAt(row))
		from, to := 0, len(clusters)
		if row == start.Row {
			from = start.Col
		}
		if row == end.Row {
			to = end.Col + 1
			if to > len(clusters) {
				to = len(clusters)
			}
		}
		if from > to {
			from = to
		}
		line := strings.TrimRight(strings.Join(clusters[from:to], ""), " ")
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), true
}
