// Package loop runs the single-threaded cooperative event loop that ties
// the PTY, the screen model, the live reader, review/table navigation, the
// action dispatcher, and the speech queue into one running process.
package loop

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/lectorterm/lector/internal/actions"
	"github.com/lectorterm/lector/internal/clipboard"
	"github.com/lectorterm/lector/internal/live"
	"github.com/lectorterm/lector/internal/ptyhost"
	"github.com/lectorterm/lector/internal/review"
	"github.com/lectorterm/lector/internal/screen"
	"github.com/lectorterm/lector/internal/speech"
	"github.com/lectorterm/lector/internal/symbols"
	"github.com/lectorterm/lector/internal/table"
)

// iterationDeadline bounds how long the loop blocks between readiness
// events so periodic tasks (speech backend health, resize) still fire.
const iterationDeadline = 100 * time.Millisecond

// Hooks are the script-surface callback slots the loop invokes. Any may be
// nil.
type Hooks struct {
	OnError           func(error)
	OnScreenUpdate    func(*screen.Snapshot)
	OnLiveRead        func(live.Utterance) (live.Utterance, bool) // may rewrite or suppress
	OnSpeechStart     func(string)
	OnSpeechEnd       func(string)
	OnReviewMove      func(review.Cursor)
	OnModeChange      func(actions.Mode, actions.Mode)
	OnTableModeEnter  func()
	OnTableModeExit   func()
	OnClipboardChange func(string)
	OnKeyUnhandled    func(actions.Key) bool
}

// Loop owns every mutable piece of runtime state: the screen, bindings,
// symbol table, clipboard, and mode, per section 5's ownership rule.
type Loop struct {
	host       *ptyhost.Host
	screen     *screen.Screen
	reader     *live.Reader
	dispatcher *actions.Dispatcher
	nav        *review.Navigator
	clip       *clipboard.History
	queue      *speech.Queue
	tableDesc  *table.Descriptor

	ttyIn  *bufio.Reader
	hooks  Hooks
	stopCh chan struct{}
	done   atomic.Bool
}

func New(host *ptyhost.Host, scr *screen.Screen, processor *symbols.Processor, level symbols.Level, backend speech.Backend, ttyIn io.Reader, hooks Hooks) *Loop {
	return &Loop{
		host:       host,
		screen:     scr,
		reader:     live.NewReader(processor, level),
		dispatcher: actions.NewDispatcher(),
		nav:        &review.Navigator{},
		clip:       clipboard.New(clipboard.DefaultCapacity),
		queue:      speech.NewQueue(backend),
		ttyIn:      bufio.NewReader(ttyIn),
		hooks:      hooks,
		stopCh:     make(chan struct{}),
	}
}

func (l *Loop) Dispatcher() *actions.Dispatcher { return l.dispatcher }
func (l *Loop) Clipboard() *clipboard.History   { return l.clip }

// Run drains PTY output, TTY input, and OS signals, each from its own
// channel, processing them in the fixed order signals -> PTY -> TTY each
// iteration, then runs the live reader and flushes the speech queue. It
// returns when the child process exits or ctx is canceled.
func (l *Loop) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 8)
	signal.Notify(sigCh, syscall.SIGWINCH, syscall.SIGCHLD, syscall.SIGINT)
	defer signal.Stop(sigCh)

	keyCh := make(chan DecodedKey, 16)
	go l.produceKeys(runCtx, keyCh)

	for {
		select {
		case <-l.stopCh:
			return nil
		case <-runCtx.Done():
			return runCtx.Err()
		default:
		}

		l.drainSignals(sigCh)
		ptyClosed := l.drainPTY()
		l.drainKeys(keyCh)

		snap := l.screen.Snapshot()
		if l.hooks.OnScreenUpdate != nil {
			l.hooks.OnScreenUpdate(snap)
		}
		for _, u := range l.reader.Diff(snap) {
			l.enqueueUtterance(u)
		}
		if err := l.queue.Flush(); err != nil && l.hooks.OnError != nil {
			l.hooks.OnError(err)
		}

		if ptyClosed {
			return nil
		}

		select {
		case sig := <-sigCh:
			l.handleSignal(sig)
		case chunk, ok := <-l.host.Output():
			if ok {
				l.screen.Write(chunk)
			}
		case key := <-keyCh:
			l.handleKey(key)
		case <-time.After(iterationDeadline):
		case <-runCtx.Done():
			return runCtx.Err()
		case <-l.stopCh:
			return nil
		}
	}
}

// Stop requests the loop exit at the start of its next iteration.
func (l *Loop) Stop() {
	if l.done.CompareAndSwap(false, true) {
		close(l.stopCh)
	}
}

func (l *Loop) produceKeys(ctx context.Context, out chan<- DecodedKey) {
	dec := NewKeyDecoder(l.ttyIn)
	for {
		key, err := dec.ReadKey()
		if err != nil {
			return
		}
		select {
		case out <- key:
		case <-ctx.Done():
			return
		}
	}
}

func (l *Loop) drainSignals(sigCh <-chan os.Signal) {
	for {
		select {
		case sig := <-sigCh:
			l.handleSignal(sig)
		default:
			return
		}
	}
}

func (l *Loop) handleSignal(sig os.Signal) {
	switch sig {
	case syscall.SIGWINCH:
		// Read the real terminal's new size and propagate it to the PTY and
		// the screen model.
		if cols, rows, err := term.GetSize(int(os.Stdin.Fd())); err == nil {
			l.host.Resize(rows, cols)
			l.screen.Resize(rows, cols)
		}
	case syscall.SIGINT:
		l.Stop()
	}
}

// drainPTY applies every currently-buffered chunk of child output to the
// screen model. It reports whether the PTY's output channel has closed
// (child exited).
func (l *Loop) drainPTY() bool {
	for {
		select {
		case chunk, ok := <-l.host.Output():
			if !ok {
				return true
			}
			l.screen.Write(chunk)
		default:
			return false
		}
	}
}

func (l *Loop) drainKeys(keyCh <-chan DecodedKey) {
	for {
		select {
		case key := <-keyCh:
			l.handleKey(key)
		default:
			return
		}
	}
}

func (l *Loop) handleKey(dk DecodedKey) {
	res := l.dispatcher.Dispatch(dk.Key)
	if !res.Matched {
		handled := false
		if l.hooks.OnKeyUnhandled != nil {
			handled = l.hooks.OnKeyUnhandled(dk.Key)
		}
		if !handled {
			l.host.Write(dk.Raw)
		}
		return
	}

	if l.dispatcher.Mode() == actions.Help {
		l.enqueueUtterance(live.Utterance{Text: res.HelpText, Interrupt: true})
		return
	}

	if res.Binding.Callable != nil {
		res.Binding.Callable.Fn()
		return
	}
	l.invokeBuiltin(res.Binding.Builtin)
}

func (l *Loop) enqueueUtterance(u live.Utterance) {
	if l.hooks.OnLiveRead != nil {
		rewritten, ok := l.hooks.OnLiveRead(u)
		if !ok {
			return
		}
		u = rewritten
	}
	l.queue.Enqueue(speech.Request{Text: u.Text, Interrupt: u.Interrupt})
	if u.Interrupt && l.hooks.OnSpeechStart != nil {
		l.hooks.OnSpeechStart(u.Text)
	}
}

func (l *Loop) invokeBuiltin(name actions.Name) {
	snap := l.screen.Snapshot()

	switch name {
	case actions.StopSpeaking:
		l.queue.Clear()
	case actions.ToggleAutoRead:
		l.reader.SetAutoRead(!l.reader.AutoRead())
	case actions.ReviewPrevLine:
		l.speakReview(l.nav.PrevLine(snap))
	case actions.ReviewNextLine:
		l.speakReview(l.nav.NextLine(snap))
	case actions.ReviewReadLine:
		l.speakReview(l.nav.ReadLine(snap))
	case actions.ReviewPrevWord:
		l.speakReview(l.nav.PrevWord(snap))
	case actions.ReviewNextWord:
		l.speakReview(l.nav.NextWord(snap))
	case actions.ReviewReadWord:
		l.speakReview(l.nav.ReadWord(snap))
	case actions.ReviewPrevChar:
		l.speakReview(l.nav.PrevChar(snap))
	case actions.ReviewNextChar:
		l.speakReview(l.nav.NextChar(snap))
	case actions.ReviewTop:
		l.speakReview(l.nav.Top(snap))
	case actions.ReviewBottom:
		l.speakReview(l.nav.Bottom(snap))
	case actions.SetMark:
		l.nav.SetMark()
	case actions.Copy:
		if text, ok := l.nav.Copy(snap); ok {
			l.clip.Push(text)
			if l.hooks.OnClipboardChange != nil {
				l.hooks.OnClipboardChange(text)
			}
		}
	case actions.Paste:
		if text := l.clip.Current(); text != "" {
			l.host.Write([]byte(text))
		}
	case actions.EnterTableMode:
		l.enterTableMode(snap)
	case actions.ExitMode:
		l.exitMode()
	case actions.ToggleHelp:
		l.toggleHelp()
	case actions.TableRowDown:
		l.tableMove(snap, 1, 0)
	case actions.TableRowUp:
		l.tableMove(snap, -1, 0)
	case actions.TableColLeft:
		l.tableMove(snap, 0, -1)
	case actions.TableColRight:
		l.tableMove(snap, 0, 1)
	case actions.TableFirstRow:
		if l.tableDesc != nil {
			l.tableDesc.FirstRow()
			l.speakTableCell(snap)
		}
	case actions.TableLastRow:
		if l.tableDesc != nil {
			l.tableDesc.LastRow()
			l.speakTableCell(snap)
		}
	case actions.TableFirstCol:
		if l.tableDesc != nil {
			l.tableDesc.FirstCol()
			l.speakTableCell(snap)
		}
	case actions.TableLastCol:
		if l.tableDesc != nil {
			l.tableDesc.LastCol()
			l.speakTableCell(snap)
		}
	case actions.TableReadCell:
		l.speakTableCell(snap)
	case actions.TableReadHeader:
		l.speakTableHeader(snap)
	}
}

func (l *Loop) speakReview(res review.Result) {
	if l.hooks.OnReviewMove != nil {
		l.hooks.OnReviewMove(res.Cursor)
	}
	text := res.Utterance
	if res.Boundary != "" {
		text = res.Boundary
	}
	if text == "" {
		return
	}
	l.enqueueUtterance(live.Utterance{Text: text, Interrupt: true})
}

func (l *Loop) enterTableMode(snap *screen.Snapshot) {
	desc, ok := table.Detect(snap, l.nav.Cursor.Row)
	if !ok {
		l.enqueueUtterance(live.Utterance{Text: "no table found", Interrupt: true})
		return
	}
	l.tableDesc = desc
	prev := l.dispatcher.SetMode(actions.Table)
	if l.hooks.OnModeChange != nil {
		l.hooks.OnModeChange(prev, actions.Table)
	}
	if l.hooks.OnTableModeEnter != nil {
		l.hooks.OnTableModeEnter()
	}
	l.speakTableCell(snap)
}

func (l *Loop) exitMode() {
	prev := l.dispatcher.SetMode(actions.Normal)
	if prev == actions.Table && l.hooks.OnTableModeExit != nil {
		l.hooks.OnTableModeExit()
	}
	if l.hooks.OnModeChange != nil {
		l.hooks.OnModeChange(prev, actions.Normal)
	}
	if prev == actions.Table {
		l.tableDesc = nil
	}
}

func (l *Loop) toggleHelp() {
	cur := l.dispatcher.Mode()
	next := actions.Help
	if cur == actions.Help {
		next = actions.Normal
	}
	prev := l.dispatcher.SetMode(next)
	if l.hooks.OnModeChange != nil {
		l.hooks.OnModeChange(prev, next)
	}
}

func (l *Loop) tableMove(snap *screen.Snapshot, rowDelta, colDelta int) {
	if l.tableDesc == nil {
		return
	}
	if rowDelta != 0 {
		l.tableDesc.MoveRow(rowDelta)
	}
	if colDelta != 0 {
		l.tableDesc.MoveCol(colDelta)
	}
	l.speakTableCell(snap)
}

func (l *Loop) speakTableCell(snap *screen.Snapshot) {
	if l.tableDesc == nil {
		return
	}
	text := l.tableDesc.Cell(snap, l.tableDesc.Row, l.tableDesc.Col)
	if text == "" {
		text = "blank"
	}
	l.enqueueUtterance(live.Utterance{Text: text, Interrupt: true})
}

func (l *Loop) speakTableHeader(snap *screen.Snapshot) {
	if l.tableDesc == nil {
		return
	}
	text := l.tableDesc.HeaderCell(snap, l.tableDesc.Col)
	if text == "" {
		text = "no header"
	}
	l.enqueueUtterance(live.Utterance{Text: text, Interrupt: true})
}
