package actions

import "testing"

func TestBindingSetGetRoundTrip(t *testing.T) {
	d := NewDispatcher()
	want := Binding{Callable: &Callable{Help: "do a thing"}}
	d.Set("M-x", want)

	got, ok := d.Get("M-x")
	if !ok {
		t.Fatal("expected binding to be present after Set")
	}
	if got.Callable != want.Callable {
		t.Fatalf("expected round-tripped binding to equal what was set")
	}
}

func TestRemoveClearsBinding(t *testing.T) {
	d := NewDispatcher()
	d.Set("M-x", Binding{Builtin: Copy})
	d.Remove("M-x")
	if _, ok := d.Get("M-x"); ok {
		t.Fatal("expected binding to be gone after Remove")
	}
}

func TestEnumerateIsASnapshotCopy(t *testing.T) {
	d := NewDispatcher()
	snap := d.Enumerate()
	d.Set("M-z", Binding{Builtin: Copy})
	if _, ok := snap["M-z"]; ok {
		t.Fatal("expected Enumerate's result to not be affected by later mutation")
	}
}

func TestDispatchNormalModeInvokesBoundAction(t *testing.T) {
	d := NewDispatcher()
	res := d.Dispatch(Key{Name: "Escape"})
	if !res.Matched {
		t.Fatal("expected Escape to be bound by default")
	}
	if res.Binding.Builtin != ExitMode {
		t.Fatalf("expected exit_mode, got %v", res.Binding.Builtin)
	}
	if res.HelpText != "" {
		t.Fatal("expected no help text outside help mode")
	}
}

func TestDispatchUnboundKeyIsUnmatched(t *testing.T) {
	d := NewDispatcher()
	res := d.Dispatch(Key{Rune: 'z'})
	if res.Matched {
		t.Fatal("expected an unbound key to be unmatched")
	}
}

func TestDispatchHelpModeSpeaksHelpInsteadOfInvoking(t *testing.T) {
	d := NewDispatcher()
	d.SetMode(Help)
	res := d.Dispatch(Key{Name: "Escape"})
	if !res.Matched {
		t.Fatal("expected Escape to be matched in help mode too")
	}
	if res.HelpText == "" {
		t.Fatal("expected help text to be populated in help mode")
	}
}

func TestDispatchTableModeUsesFixedKeymap(t *testing.T) {
	d := NewDispatcher()
	d.SetMode(Table)
	res := d.Dispatch(Key{Rune: 'j'})
	if !res.Matched || res.Binding.Builtin != TableRowDown {
		t.Fatalf("expected 'j' to move the table row down in table mode, got %+v", res)
	}
}

func TestSetModeReturnsPrevious(t *testing.T) {
	d := NewDispatcher()
	old := d.SetMode(Table)
	if old != Normal {
		t.Fatalf("expected previous mode to be normal, got %v", old)
	}
	if d.Mode() != Table {
		t.Fatalf("expected current mode to be table, got %v", d.Mode())
	}
}

func TestKeySeqFormatsModifiers(t *testing.T) {
	k := Key{Name: "Left", Modifiers: ModAlt}
	if got := k.Seq(); got != "M-Left" {
		t.Fatalf("expected M-Left, got %q", got)
	}
	r := Key{Rune: 'a', Modifiers: ModCtrl}
	if got := r.Seq(); got != "C-a" {
		t.Fatalf("expected C-a, got %q", got)
	}
}
