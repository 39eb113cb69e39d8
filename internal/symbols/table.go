package symbols

// Record is a symbol table entry: what a grapheme is replaced with, the
// minimum level at which the replacement applies, whether the original
// grapheme is also spoken, and whether runs of the match are collapsed
// into a count.
type Record struct {
	Replacement     string
	Level           Level
	IncludeOriginal bool
	Repeat          bool
}

// Table is the mapping from grapheme to Record, the script surface's
// symbols[g].
type Table struct {
	records map[string]Record
}

// NewTable returns a table seeded with the bundled punctuation and emoji
// records (level some/most/all and all respectively).
func NewTable() *Table {
	t := &Table{records: make(map[string]Record)}
	for g, r := range builtinPunctuation {
		t.records[g] = r
	}
	for g, name := range builtinEmoji {
		t.records[g] = Record{Replacement: name, Level: LevelAll}
	}
	return t
}

// Get returns the record for g, if any.
func (t *Table) Get(g string) (Record, bool) {
	r, ok := t.records[g]
	return r, ok
}

// Set assigns (or, if present, replaces) the record for g.
func (t *Table) Set(g string, r Record) {
	t.records[g] = r
}

// Remove deletes any record for g (the script surface's "assigning nil
// removes").
func (t *Table) Remove(g string) {
	delete(t.records, g)
}

// Applies reports whether a record applies at level L: its Level must be
// less than or equal to L.
func (r Record) Applies(l Level) bool {
	return r.Level <= l
}

var builtinPunctuation = map[string]Record{
	"%": {Replacement: "percent", Level: LevelMost},
	":": {Replacement: "colon", Level: LevelMost},
	";": {Replacement: "semicolon", Level: LevelMost},
	",": {Replacement: "comma", Level: LevelSome},
	".": {Replacement: "dot", Level: LevelSome},
	"!": {Replacement: "exclamation", Level: LevelSome},
	"?": {Replacement: "question mark", Level: LevelSome},
	"-": {Replacement: "dash", Level: LevelMost},
	"_": {Replacement: "underscore", Level: LevelMost},
	"/": {Replacement: "slash", Level: LevelMost},
	"\\": {Replacement: "backslash", Level: LevelMost},
	"@": {Replacement: "at", Level: LevelSome},
	"#": {Replacement: "pound", Level: LevelSome},
	"$": {Replacement: "dollar", Level: LevelSome},
	"&": {Replacement: "ampersand", Level: LevelMost},
	"*": {Replacement: "star", Level: LevelMost},
	"+": {Replacement: "plus", Level: LevelMost},
	"=": {Replacement: "equals", Level: LevelMost},
	"|": {Replacement: "pipe", Level: LevelAll},
	"~": {Replacement: "tilde", Level: LevelAll},
	"^": {Replacement: "caret", Level: LevelAll},
}

var builtinEmoji = map[string]string{
	"😀": "grinning face",
	"😂": "face with tears of joy",
	"❤️": "red heart",
	"👍": "thumbs up",
	"🎉": "party popper",
	"🔥": "fire",
}
