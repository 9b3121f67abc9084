package terminal

import (
	"fmt"
	"sync"

	"github.com/nsf/termbox-go"
)

// TermboxTerminal implements Terminal on termbox-go's global screen
type TermboxTerminal struct {
	mu          sync.Mutex
	initialized bool
	finalized   bool
}

func NewTermbox() *TermboxTerminal {
	return &TermboxTerminal{}
}

func (t *TermboxTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("init termbox: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	termbox.Flush()
	t.initialized = true
	return nil
}

func (t *TermboxTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true
	termbox.Close()
}

func (t *TermboxTerminal) Size() (int, int) {
	if !t.active() {
		return 0, 0
	}
	return termbox.Size()
}

func (t *TermboxTerminal) Clear() {
	if !t.active() {
		return
	}
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	termbox.Flush()
}

// Put relies on termbox discarding cells outside its back buffer
func (t *TermboxTerminal) Put(x, y int, r rune) {
	if !t.active() {
		return
	}
	termbox.SetCell(x, y, r, termbox.ColorDefault, termbox.ColorDefault)
}

func (t *TermboxTerminal) Flush() {
	if !t.active() {
		return
	}
	termbox.Flush()
}

func (t *TermboxTerminal) SetCursorVisible(visible bool) {
	if !t.active() {
		return
	}
	if visible {
		termbox.SetCursor(0, 0)
	} else {
		termbox.HideCursor()
	}
}

// PollEvent blocks until termbox reports a key or an error.
// A poll still blocked when Fini runs is never woken; the caller is done with input by then.
func (t *TermboxTerminal) PollEvent() Event {
	for {
		if !t.active() {
			return Event{Type: EventClosed}
		}
		if out, ok := convertTermboxEvent(termbox.PollEvent()); ok {
			return out
		}
	}
}

func (t *TermboxTerminal) active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.initialized && !t.finalized
}

var termboxKeys = map[termbox.Key]Key{
	termbox.KeyEsc:        KeyEscape,
	termbox.KeyEnter:      KeyEnter,
	termbox.KeyTab:        KeyTab,
	termbox.KeyBackspace:  KeyBackspace,
	termbox.KeyBackspace2: KeyBackspace,
	termbox.KeyDelete:     KeyDelete,
	termbox.KeyArrowUp:    KeyUp,
	termbox.KeyArrowDown:  KeyDown,
	termbox.KeyArrowLeft:  KeyLeft,
	termbox.KeyArrowRight: KeyRight,
	termbox.KeyHome:       KeyHome,
	termbox.KeyEnd:        KeyEnd,
	termbox.KeyPgup:       KeyPageUp,
	termbox.KeyPgdn:       KeyPageDown,
	termbox.KeyInsert:     KeyInsert,
	termbox.KeyCtrlC:      KeyCtrlC,
}

// convertTermboxEvent maps termbox key and error events, ok is false for events the game ignores
func convertTermboxEvent(ev termbox.Event) (Event, bool) {
	switch ev.Type {
	case termbox.EventKey:
		out := Event{Type: EventKey}
		if ev.Mod&termbox.ModAlt != 0 {
			out.Modifiers = ModAlt
		}
		if ev.Ch != 0 {
			out.Key = KeyRune
			out.Rune = ev.Ch
			return out, true
		}
		if ev.Key == termbox.KeySpace {
			out.Key = KeyRune
			out.Rune = ' '
			return out, true
		}
		out.Key = termboxKeys[ev.Key]
		return out, true

	case termbox.EventError:
		return Event{Type: EventError, Err: ev.Err}, true

	case termbox.EventInterrupt:
		return Event{Type: EventClosed}, true
	}
	return Event{}, false
}
