package screen

import "github.com/unilibs/uniwidth"

// runeWidth returns the terminal display width of a single rune: 0, 1, or 2.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// GraphemeWidth returns the display width of a whole grapheme cluster: the
// maximum width of any rune within it, which matches how terminals render
// a base character plus combining marks or variation selectors as one cell.
func GraphemeWidth(g string) int {
	width := 1
	for _, r := range g {
		if w := runeWidth(r); w > width {
			width = w
		}
	}
	return width
}

// StringWidth sums the display width of every grapheme cluster boundary in
// s, treating s as plain runes (callers working with already-segmented
// graphemes should sum GraphemeWidth per cluster instead).
func StringWidth(s string) int {
	total := 0
	for _, r := range s {
		total += runeWidth(r)
	}
	return total
}
