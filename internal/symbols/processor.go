// Package symbols turns raw screen text into speakable text per the
// configured symbol level: punctuation and emoji are expanded to names,
// runs of three or more identical matches of a record marked Repeat are
// collapsed into a count, and at level=character every grapheme is named.
package symbols

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// Processor expands text against a Table at a given Level.
type Processor struct {
	table *Table
}

func NewProcessor(table *Table) *Processor {
	if table == nil {
		table = NewTable()
	}
	return &Processor{table: table}
}

func (p *Processor) Table() *Table { return p.table }

type pendingRun struct {
	record Record
	text   string
	count  int
}

// Process expands text at level l. It is idempotent at LevelNone beyond
// whitespace-run normalization, per the spec's testable property.
func (p *Processor) Process(text string, l Level) string {
	clusters := splitGraphemes(text)
	var out strings.Builder
	var run *pendingRun

	flush := func() {
		if run == nil {
			return
		}
		writeRun(&out, *run)
		run = nil
	}

	for _, g := range clusters {
		rec, ok := p.table.Get(g)
		applies := ok && rec.Applies(l)
		if !applies && l == LevelCharacter {
			rec = Record{Replacement: characterName(g)}
			applies = true
		}

		if !applies {
			flush()
			out.WriteString(g)
			continue
		}

		if rec.Repeat && run != nil && run.text == g && sameRecord(run.record, rec) {
			run.count++
			continue
		}
		flush()
		run = &pendingRun{record: rec, text: g, count: 1}
	}
	flush()

	return normalizeWhitespace(out.String())
}

func sameRecord(a, b Record) bool {
	return a.Replacement == b.Replacement && a.Level == b.Level &&
		a.IncludeOriginal == b.IncludeOriginal && a.Repeat == b.Repeat
}

func writeRun(out *strings.Builder, run pendingRun) {
	if out.Len() > 0 {
		out.WriteByte(' ')
	}
	if run.record.Repeat && run.count >= 3 {
		out.WriteString(run.record.Replacement)
		out.WriteByte(' ')
		out.WriteString(strconv.Itoa(run.count))
		out.WriteString(" times")
		return
	}
	for i := 0; i < run.count; i++ {
		if i > 0 {
			out.WriteByte(' ')
		}
		out.WriteString(run.record.Replacement)
		if run.record.IncludeOriginal {
			out.WriteByte(' ')
			out.WriteString(run.text)
		}
	}
}

func splitGraphemes(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	seg := graphemes.FromString(s)
	for seg.Next() {
		out = append(out, seg.Value())
	}
	return out
}

func characterName(g string) string {
	runes := []rune(g)
	if len(runes) == 0 {
		return ""
	}
	r := runes[0]
	switch {
	case unicode.IsSpace(r):
		return "space"
	case unicode.IsUpper(r):
		return fmt.Sprintf("cap %c", unicode.ToLower(r))
	case unicode.IsLetter(r) || unicode.IsDigit(r):
		return string(r)
	default:
		return fmt.Sprintf("U+%04X", r)
	}
}

func normalizeWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
