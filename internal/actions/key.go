package actions

import "fmt"

// Modifier is a bitmask of modifier keys, grounded on the same shape as
// the corpus's own key-decoding package.
type Modifier uint8

const (
	ModNone Modifier = 0
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
)

// Key identifies a single key press: either a printable rune or a named
// function/navigation key, plus modifiers.
type Key struct {
	Name      string // "" for printable runes; otherwise e.g. "F5", "Escape"
	Rune      rune
	Modifiers Modifier
}

// Seq renders the key as a binding sequence string, e.g. "M-x", "C-a",
// "F5".
func (k Key) Seq() string {
	prefix := ""
	if k.Modifiers&ModCtrl != 0 {
		prefix += "C-"
	}
	if k.Modifiers&ModAlt != 0 {
		prefix += "M-"
	}
	if k.Modifiers&ModShift != 0 {
		prefix += "S-"
	}
	if k.Name != "" {
		return prefix + k.Name
	}
	return fmt.Sprintf("%s%c", prefix, k.Rune)
}
