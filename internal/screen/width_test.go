package screen

import "testing"

func TestGraphemeWidthASCII(t *testing.T) {
	if w := GraphemeWidth("a"); w != 1 {
		t.Fatalf("expected width 1, got %d", w)
	}
}

func TestGraphemeWidthWide(t *testing.T) {
	if w := GraphemeWidth("世"); w != 2 {
		t.Fatalf("expected width 2 for wide rune, got %d", w)
	}
}

func TestStringWidthSumsRunes(t *testing.T) {
	if w := StringWidth("ab"); w != 2 {
		t.Fatalf("expected width 2, got %d", w)
	}
}
