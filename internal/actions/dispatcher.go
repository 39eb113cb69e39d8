package actions

import "sync"

// Mode is the active input mode; exactly one is active at a time.
type Mode int

const (
	Normal Mode = iota
	Table
	TabstopSetup
	Help
	Repl
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Table:
		return "table"
	case TabstopSetup:
		return "tabstop_setup"
	case Help:
		return "help"
	case Repl:
		return "repl"
	default:
		return "unknown"
	}
}

// DispatchResult is what Dispatch found for a key in the current mode.
type DispatchResult struct {
	Matched  bool
	Binding  Binding
	HelpText string // non-empty only when mode == Help and Matched
}

// Dispatcher owns the binding table and current mode. All mutation methods
// are safe for concurrent use, though per the single-threaded event loop
// design only the loop goroutine calls them outside of tests.
type Dispatcher struct {
	mu       sync.Mutex
	bindings map[string]Binding
	mode     Mode
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{bindings: DefaultBindings()}
}

func (d *Dispatcher) Mode() Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// SetMode changes the active mode and returns the previous one.
func (d *Dispatcher) SetMode(m Mode) Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	old := d.mode
	d.mode = m
	return old
}

// Set assigns (or replaces) the binding for key. Atomic with respect to
// Get/Remove/Enumerate.
func (d *Dispatcher) Set(key string, b Binding) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bindings[key] = b
}

// Remove deletes the binding for key, if any.
func (d *Dispatcher) Remove(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.bindings, key)
}

// Get returns the binding for key, per the spec property that
// bindings[k]=v; x=bindings[k] implies x==v.
func (d *Dispatcher) Get(key string) (Binding, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.bindings[key]
	return b, ok
}

// Enumerate returns a snapshot copy of the full binding table.
func (d *Dispatcher) Enumerate() map[string]Binding {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(map[string]Binding, len(d.bindings))
	for k, v := range d.bindings {
		out[k] = v
	}
	return out
}

// Dispatch looks up key for the current mode. Table mode consults the
// fixed table-navigation keymap first (section 4.E); help mode reports the
// target's help text instead of signaling invocation; any other mode
// consults the general, script-mutable binding table.
func (d *Dispatcher) Dispatch(key Key) DispatchResult {
	d.mu.Lock()
	defer d.mu.Unlock()

	seq := key.Seq()

	if d.mode == Table {
		if name, ok := TableKeyAction(seq); ok {
			return DispatchResult{Matched: true, Binding: Binding{Builtin: name}}
		}
	}

	b, ok := d.bindings[seq]
	if !ok {
		return DispatchResult{Matched: false}
	}
	if d.mode == Help {
		return DispatchResult{Matched: true, Binding: b, HelpText: b.HelpText()}
	}
	return DispatchResult{Matched: true, Binding: b}
}

// TableKeyAction returns the fixed table-mode action bound to seq, per
// section 4.E's navigation keys. M-j and M-k move the review cursor by a
// whole line and M-l by a word across the whole row; none of the three is
// bounded to the current cell.
func TableKeyAction(seq string) (Name, bool) {
	switch seq {
	case "j":
		return TableRowDown, true
	case "k":
		return TableRowUp, true
	case "h":
		return TableColLeft, true
	case "l":
		return TableColRight, true
	case "g":
		return TableFirstRow, true
	case "G":
		return TableLastRow, true
	case "^":
		return TableFirstCol, true
	case "$":
		return TableLastCol, true
	case "i":
		return TableReadCell, true
	case "H":
		return TableReadHeader, true
	case "M-j":
		return ReviewNextLine, true
	case "M-k":
		return ReviewPrevLine, true
	case "M-l":
		return ReviewNextWord, true
	case "Escape", "M-t":
		return ExitMode, true
	}
	return "", false
}
