// Package script is the Go-side boundary the config surface binds against.
// There is no embedded scripting runtime here: the core exposes these
// accessor-proxy types, and whatever evaluates a user's init file (out of
// scope for this module, per the embedded-runtime non-goal) drives them
// through their Go methods.
package script

import (
	"github.com/lectorterm/lector/internal/actions"
	"github.com/lectorterm/lector/internal/config"
	"github.com/lectorterm/lector/internal/symbols"
)

// Options proxies o[key] reads and writes against the live Options value.
type Options struct {
	get func() config.Options
	set func(config.Options)
}

func NewOptions(get func() config.Options, set func(config.Options)) *Options {
	return &Options{get: get, set: set}
}

func (o *Options) SpeechRate() float64 { return o.get().SpeechRate }
func (o *Options) SetSpeechRate(rate float64) {
	cur := o.get()
	cur.SpeechRate = rate
	o.set(cur)
}

func (o *Options) SymbolLevel() symbols.Level { return o.get().SymbolLevel }
func (o *Options) SetSymbolLevel(l symbols.Level) {
	cur := o.get()
	cur.SymbolLevel = l
	o.set(cur)
}

func (o *Options) AutoRead() bool { return o.get().AutoRead }
func (o *Options) SetAutoRead(v bool) {
	cur := o.get()
	cur.AutoRead = v
	o.set(cur)
}

func (o *Options) StopSpeechOnFocusLoss() bool { return o.get().StopSpeechOnFocusLoss }
func (o *Options) SetStopSpeechOnFocusLoss(v bool) {
	cur := o.get()
	cur.StopSpeechOnFocusLoss = v
	o.set(cur)
}

// Symbols proxies symbols[g] reads and writes against a Table. Assigning a
// nil Record removes the entry.
type Symbols struct {
	table *symbols.Table
}

func NewSymbols(table *symbols.Table) *Symbols {
	return &Symbols{table: table}
}

func (s *Symbols) Get(grapheme string) (symbols.Record, bool) {
	return s.table.Get(grapheme)
}

func (s *Symbols) Set(grapheme string, rec *symbols.Record) {
	if rec == nil {
		s.table.Remove(grapheme)
		return
	}
	s.table.Set(grapheme, *rec)
}

// Bindings proxies bindings[key] reads and writes against the dispatcher's
// binding table. All methods are atomic with respect to the event loop's
// own dispatch.
type Bindings struct {
	dispatcher *actions.Dispatcher
}

func NewBindings(dispatcher *actions.Dispatcher) *Bindings {
	return &Bindings{dispatcher: dispatcher}
}

func (b *Bindings) Get(key string) (actions.Binding, bool)   { return b.dispatcher.Get(key) }
func (b *Bindings) Set(key string, binding actions.Binding)  { b.dispatcher.Set(key, binding) }
func (b *Bindings) Remove(key string)                        { b.dispatcher.Remove(key) }
func (b *Bindings) Enumerate() map[string]actions.Binding    { return b.dispatcher.Enumerate() }

// Hooks holds the writable callable slots named in section 6. A nil slot
// means no script callback is installed for that event.
type Hooks struct {
	OnStartup          func()
	OnShutdown         func()
	OnError            func(err error)
	OnScreenUpdate     func()
	OnLiveRead         func(text string) (string, bool)
	OnSpeechStart      func(text string)
	OnSpeechEnd        func(text string)
	OnReviewCursorMove func(row, col int)
	OnModeChange       func(from, to string)
	OnTableModeEnter   func()
	OnTableModeExit    func()
	OnClipboardChange  func(text string)
	OnKeyUnhandled     func(key string) bool
}

// API is api.* from the script surface: direct calls into the running
// core, independent of the hook/option/binding tables above.
type API struct {
	Speak       func(text string, interrupt bool)
	InvokeNamed func(name actions.Name)
}
