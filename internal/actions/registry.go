// Package actions maps key sequences to named built-in actions or
// user-supplied callables, and dispatches captured keypresses against the
// binding table for the current mode.
package actions

// Name identifies a built-in action in the fixed registry.
type Name string

const (
	StopSpeaking      Name = "stop_speaking"
	ToggleAutoRead    Name = "toggle_auto_read"
	ReviewPrevLine    Name = "review_prev_line"
	ReviewNextLine    Name = "review_next_line"
	ReviewReadLine    Name = "review_read_line"
	ReviewPrevWord    Name = "review_prev_word"
	ReviewNextWord    Name = "review_next_word"
	ReviewReadWord    Name = "review_read_word"
	ReviewPrevChar    Name = "review_prev_char"
	ReviewNextChar    Name = "review_next_char"
	ReviewTop         Name = "review_top"
	ReviewBottom      Name = "review_bottom"
	SetMark           Name = "set_mark"
	Copy              Name = "copy"
	Paste             Name = "paste"
	EnterTableMode    Name = "enter_table_mode"
	EnterTabstopSetup Name = "enter_tabstop_setup"
	TableRowDown      Name = "table_row_down"
	TableRowUp        Name = "table_row_up"
	TableColLeft      Name = "table_col_left"
	TableColRight     Name = "table_col_right"
	TableFirstRow     Name = "table_first_row"
	TableLastRow      Name = "table_last_row"
	TableFirstCol     Name = "table_first_col"
	TableLastCol      Name = "table_last_col"
	TableReadCell     Name = "table_read_cell"
	TableReadHeader   Name = "table_read_header"
	ExitMode          Name = "exit_mode"
	ToggleHelp        Name = "toggle_help"
)

// Callable is a user-supplied binding target from the script surface, with
// a help string spoken in help mode.
type Callable struct {
	Help string
	Fn   func()
}

// Binding is the value stored for a key: either a built-in Name or a
// Callable, never both.
type Binding struct {
	Builtin  Name
	Callable *Callable
}

func (b Binding) IsBuiltin() bool { return b.Callable == nil }

func (b Binding) HelpText() string {
	if b.Callable != nil {
		return b.Callable.Help
	}
	return string(b.Builtin)
}

// DefaultBindings returns the binding set the core ships before any script
// loads.
func DefaultBindings() map[string]Binding {
	return map[string]Binding{
		"Escape":  {Builtin: ExitMode},
		"C-g":     {Builtin: StopSpeaking},
		"Up":      {Builtin: ReviewPrevLine},
		"Down":    {Builtin: ReviewNextLine},
		"k":       {Builtin: ReviewPrevLine},
		"j":       {Builtin: ReviewNextLine},
		"Left":    {Builtin: ReviewPrevChar},
		"Right":   {Builtin: ReviewNextChar},
		"h":       {Builtin: ReviewPrevChar},
		"l":       {Builtin: ReviewNextChar},
		"M-Left":  {Builtin: ReviewPrevWord},
		"M-Right": {Builtin: ReviewNextWord},
		"g":       {Builtin: ReviewTop},
		"G":       {Builtin: ReviewBottom},
		"M-m":     {Builtin: SetMark},
		"M-c":     {Builtin: Copy},
		"M-v":     {Builtin: Paste},
		"M-t":     {Builtin: EnterTableMode},
		"M-T":     {Builtin: EnterTabstopSetup},
		"?":       {Builtin: ToggleHelp},
		"M-r":     {Builtin: ToggleAutoRead},
	}
}
