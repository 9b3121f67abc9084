package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// TcellTerminal implements Terminal on a tcell screen
type TcellTerminal struct {
	screen tcell.Screen
	style  tcell.Style

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewTcell creates a tcell-backed terminal on the process tty
func NewTcell() (*TcellTerminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create tcell screen: %w", err)
	}
	return NewTcellWithScreen(screen), nil
}

// NewTcellWithScreen wraps an existing screen, e.g. tcell.NewSimulationScreen in tests
func NewTcellWithScreen(screen tcell.Screen) *TcellTerminal {
	return &TcellTerminal{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

func (t *TcellTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init tcell screen: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.screen.Show()
	t.initialized = true
	return nil
}

func (t *TcellTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.Fini()
	t.finalized = true
}

func (t *TcellTerminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *TcellTerminal) Clear() {
	if !t.active() {
		return
	}
	t.screen.Clear()
	t.screen.Show()
}

// Put drops cells outside the screen, tcell ignores them as well
func (t *TcellTerminal) Put(x, y int, r rune) {
	if !t.active() {
		return
	}
	t.screen.SetContent(x, y, r, nil, t.style)
}

func (t *TcellTerminal) Flush() {
	if !t.active() {
		return
	}
	t.screen.Show()
}

func (t *TcellTerminal) SetCursorVisible(visible bool) {
	if !t.active() {
		return
	}
	if visible {
		t.screen.ShowCursor(0, 0)
	} else {
		t.screen.HideCursor()
	}
}

// PollEvent blocks on the screen's event queue, skipping non-key events
func (t *TcellTerminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return Event{Type: EventClosed}
		}
		if out, ok := convertTcellEvent(ev); ok {
			return out
		}
	}
}

func (t *TcellTerminal) active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.initialized && !t.finalized
}

// convertTcellEvent maps tcell key and error events, ok is false for events the game ignores
func convertTcellEvent(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		out := Event{Type: EventKey, Modifiers: convertTcellMods(ev.Modifiers())}
		switch ev.Key() {
		case tcell.KeyRune:
			out.Key = KeyRune
			out.Rune = ev.Rune()
		case tcell.KeyEscape:
			out.Key = KeyEscape
		case tcell.KeyEnter:
			out.Key = KeyEnter
		case tcell.KeyTab:
			out.Key = KeyTab
		case tcell.KeyBacktab:
			out.Key = KeyBacktab
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			out.Key = KeyBackspace
		case tcell.KeyDelete:
			out.Key = KeyDelete
		case tcell.KeyUp:
			out.Key = KeyUp
		case tcell.KeyDown:
			out.Key = KeyDown
		case tcell.KeyLeft:
			out.Key = KeyLeft
		case tcell.KeyRight:
			out.Key = KeyRight
		case tcell.KeyCtrlC:
			out.Key = KeyCtrlC
		default:
			out.Key = KeyNone
		}
		return out, true

	case *tcell.EventError:
		return Event{Type: EventError, Err: ev}, true
	}
	return Event{}, false
}

func convertTcellMods(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}
