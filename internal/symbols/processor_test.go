package symbols

import "testing"

func TestProcessNoneIsIdempotentModuloWhitespace(t *testing.T) {
	p := NewProcessor(NewTable())
	in := "foo   bar"
	out := p.Process(in, LevelNone)
	if out != "foo bar" {
		t.Fatalf("expected whitespace-normalized passthrough, got %q", out)
	}
	out2 := p.Process(out, LevelNone)
	if out2 != out {
		t.Fatalf("expected idempotence at level none, got %q then %q", out, out2)
	}
}

func TestProcessExpandsPunctuationAtMost(t *testing.T) {
	p := NewProcessor(NewTable())
	out := p.Process("foo: 100%", LevelMost)
	if out != "foo colon 100 percent" {
		t.Fatalf("expected %q, got %q", "foo colon 100 percent", out)
	}
}

func TestProcessLeavesPunctuationAtNone(t *testing.T) {
	p := NewProcessor(NewTable())
	out := p.Process("foo: 100%", LevelNone)
	if out != "foo: 100%" {
		t.Fatalf("expected unchanged text, got %q", out)
	}
}

func TestProcessRepeatCollapsesToCount(t *testing.T) {
	table := NewTable()
	table.Set("x", Record{Replacement: "ex", Level: LevelSome, Repeat: true})
	p := NewProcessor(table)
	out := p.Process("xxxx", LevelSome)
	if out != "ex 4 times" {
		t.Fatalf("expected collapsed repeat, got %q", out)
	}
}

func TestProcessIncludeOriginal(t *testing.T) {
	table := NewTable()
	table.Set("@", Record{Replacement: "at", Level: LevelSome, IncludeOriginal: true})
	p := NewProcessor(table)
	out := p.Process("@", LevelSome)
	if out != "at @" {
		t.Fatalf("expected 'at @', got %q", out)
	}
}

func TestProcessCharacterLevelNamesEveryGrapheme(t *testing.T) {
	p := NewProcessor(NewTable())
	out := p.Process("aB", LevelCharacter)
	if out != "a cap b" {
		t.Fatalf("expected 'a cap b', got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	l, ok := ParseLevel("most")
	if !ok || l != LevelMost {
		t.Fatalf("expected LevelMost, got %v ok=%v", l, ok)
	}
	if _, ok := ParseLevel("bogus"); ok {
		t.Fatal("expected unknown level to fail")
	}
}
