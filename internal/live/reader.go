// Package live turns pairs of screen snapshots into spoken utterances: it
// decides what changed, whether it is worth saying, and how to say it.
package live

import (
	"strings"

	"github.com/lectorterm/lector/internal/screen"
	"github.com/lectorterm/lector/internal/symbols"
)

// fullRedrawRowRatio is the fraction of total rows that, when changed
// together with a cursor jump of more than one row, marks an update as a
// full-screen redraw worth staying silent about.
const fullRedrawRowRatio = 0.6

// Utterance is one unit of speech produced by a diff.
type Utterance struct {
	Text      string
	Interrupt bool
}

// Reader holds the previous snapshot and the policy knobs that decide what
// gets spoken.
type Reader struct {
	prev      *screen.Snapshot
	processor *symbols.Processor
	level     symbols.Level
	autoRead  bool
}

func NewReader(processor *symbols.Processor, level symbols.Level) *Reader {
	return &Reader{processor: processor, level: level, autoRead: true}
}

func (r *Reader) SetAutoRead(enabled bool) { r.autoRead = enabled }
func (r *Reader) AutoRead() bool           { return r.autoRead }

func (r *Reader) SetLevel(l symbols.Level) { r.level = l }

// Diff compares cur against the last snapshot seen (or nothing, on the
// first call) and returns the utterances it produces. It always advances
// the retained snapshot, even when auto-read is off or nothing is spoken.
func (r *Reader) Diff(cur *screen.Snapshot) []Utterance {
	prev := r.prev
	r.prev = cur

	if !r.autoRead {
		return nil
	}
	if prev == nil {
		return nil
	}
	if prev.Generation == cur.Generation {
		return nil
	}

	changed := changedRows(prev, cur)
	if len(changed) == 0 {
		return r.diffCursorOnly(prev, cur)
	}

	if r.isFullRedraw(prev, cur, changed) {
		return nil
	}

	if appended, ok := r.appendedText(prev, cur, changed); ok {
		return r.speakRows(cur, appended, true)
	}

	return r.speakCursorRow(cur)
}

func (r *Reader) diffCursorOnly(prev, cur *screen.Snapshot) []Utterance {
	if prev.Cursor.Row == cur.Cursor.Row && prev.Cursor.Col == cur.Cursor.Col {
		return nil
	}
	// Character echo: the cell the cursor just left, on the same row, was
	// empty before and now holds a freshly-typed grapheme.
	row, col := prev.Cursor.Row, prev.Cursor.Col
	if row != cur.Cursor.Row {
		return nil
	}
	before := prev.CellAt(row, col)
	after := cur.CellAt(row, col)
	if before.Grapheme != "" || after.Grapheme == "" || after.Grapheme == " " {
		return nil
	}
	return r.speakRows(cur, []int{row}, true)
}

func changedRows(prev, cur *screen.Snapshot) []int {
	var rows []int
	n := prev.Rows
	if cur.Rows > n {
		n = cur.Rows
	}
	for row := 0; row < n; row++ {
		if prev.RowAt(row) != cur.RowAt(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

func (r *Reader) isFullRedraw(prev, cur *screen.Snapshot, changed []int) bool {
	total := cur.Rows
	if total == 0 {
		return false
	}
	ratio := float64(len(changed)) / float64(total)
	cursorJump := abs(cur.Cursor.Row-prev.Cursor.Row) > 1
	return ratio > fullRedrawRowRatio && cursorJump
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// appendedText recognizes the common case of a contiguous run of changed
// rows at or below the old cursor, i.e. typical command output, as opposed
// to a scattered redraw.
func (r *Reader) appendedText(prev, cur *screen.Snapshot, changed []int) ([]int, bool) {
	if changed[0] < prev.Cursor.Row {
		return nil, false
	}
	for i := 1; i < len(changed); i++ {
		if changed[i] != changed[i-1]+1 {
			return nil, false
		}
	}
	return changed, true
}

func (r *Reader) speakRows(snap *screen.Snapshot, rows []int, firstInterrupts bool) []Utterance {
	var out []Utterance
	for _, row := range rows {
		text := snap.RowAt(row)
		if strings.TrimSpace(text) == "" {
			continue
		}
		spoken := r.processor.Process(text, r.level)
		if spoken == "" {
			continue
		}
		out = append(out, Utterance{Text: spoken, Interrupt: firstInterrupts && len(out) == 0})
	}
	return out
}

func (r *Reader) speakCursorRow(cur *screen.Snapshot) []Utterance {
	text := cur.RowAt(cur.Cursor.Row)
	if strings.TrimSpace(text) == "" {
		return nil
	}
	spoken := r.processor.Process(text, r.level)
	if spoken == "" {
		return nil
	}
	return []Utterance{{Text: spoken, Interrupt: true}}
}
