package screen

import "testing"

func TestNewCellIsBlank(t *testing.T) {
	c := NewCell()
	if c.Grapheme != " " {
		t.Fatalf("expected blank grapheme, got %q", c.Grapheme)
	}
	if c.Fg != ColorDefault || c.Bg != ColorDefault {
		t.Fatalf("expected default colors, got fg=%d bg=%d", c.Fg, c.Bg)
	}
}

func TestCellFlags(t *testing.T) {
	var c Cell
	c.SetFlag(FlagBold)
	if !c.HasFlag(FlagBold) {
		t.Fatal("expected FlagBold set")
	}
	c.SetFlag(FlagUnderline)
	if !c.HasFlag(FlagBold) || !c.HasFlag(FlagUnderline) {
		t.Fatal("expected both flags set")
	}
	c.ClearFlag(FlagBold)
	if c.HasFlag(FlagBold) {
		t.Fatal("expected FlagBold cleared")
	}
	if !c.HasFlag(FlagUnderline) {
		t.Fatal("expected FlagUnderline to remain set")
	}
}

func TestCellDirty(t *testing.T) {
	var c Cell
	if c.IsDirty() {
		t.Fatal("fresh cell should not be dirty")
	}
	c.MarkDirty()
	if !c.IsDirty() {
		t.Fatal("expected dirty after MarkDirty")
	}
	c.ClearDirty()
	if c.IsDirty() {
		t.Fatal("expected clean after ClearDirty")
	}
}

func TestCellWideFlags(t *testing.T) {
	var c Cell
	c.SetFlag(FlagWide)
	if !c.IsWide() {
		t.Fatal("expected IsWide true")
	}
	if c.IsWideSpacer() {
		t.Fatal("expected IsWideSpacer false")
	}
}
