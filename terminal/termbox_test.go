package terminal

import (
	"errors"
	"testing"

	"github.com/nsf/termbox-go"
)

func TestConvertTermboxEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   termbox.Event
		key  Key
		r    rune
		mod  Modifier
	}{
		{"rune", termbox.Event{Type: termbox.EventKey, Ch: 'e'}, KeyRune, 'e', ModNone},
		{"alt rune", termbox.Event{Type: termbox.EventKey, Ch: 'u', Mod: termbox.ModAlt}, KeyRune, 'u', ModAlt},
		{"space", termbox.Event{Type: termbox.EventKey, Key: termbox.KeySpace}, KeyRune, ' ', ModNone},
		{"escape", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, KeyEscape, 0, ModNone},
		{"arrow", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}, KeyLeft, 0, ModNone},
		{"unmapped", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyF12}, KeyNone, 0, ModNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertTermboxEvent(tt.ev)
			if !ok {
				t.Fatal("Expected key event to be converted")
			}
			if got.Type != EventKey || got.Key != tt.key || got.Rune != tt.r || got.Modifiers != tt.mod {
				t.Errorf("Expected key=%v rune=%q mod=%v, got %+v", tt.key, tt.r, tt.mod, got)
			}
		})
	}
}

func TestConvertTermboxNonKeyEvents(t *testing.T) {
	readErr := errors.New("tty gone")

	got, ok := convertTermboxEvent(termbox.Event{Type: termbox.EventError, Err: readErr})
	if !ok || got.Type != EventError || !errors.Is(got.Err, readErr) {
		t.Errorf("Expected error event, got %+v (ok=%v)", got, ok)
	}

	got, ok = convertTermboxEvent(termbox.Event{Type: termbox.EventInterrupt})
	if !ok || got.Type != EventClosed {
		t.Errorf("Expected closed event on interrupt, got %+v (ok=%v)", got, ok)
	}

	if _, ok := convertTermboxEvent(termbox.Event{Type: termbox.EventResize, Width: 80, Height: 24}); ok {
		t.Error("Expected resize event to be ignored")
	}
	if _, ok := convertTermboxEvent(termbox.Event{Type: termbox.EventMouse}); ok {
		t.Error("Expected mouse event to be ignored")
	}
}

func TestTermboxTerminalInactive(t *testing.T) {
	term := NewTermbox()

	// Nothing below may touch the global termbox state before Init
	term.Put(1, 1, 'x')
	term.Flush()
	term.Clear()
	term.SetCursorVisible(true)
	term.Fini()

	if w, h := term.Size(); w != 0 || h != 0 {
		t.Errorf("Expected 0x0 before Init, got %dx%d", w, h)
	}
	if ev := term.PollEvent(); ev.Type != EventClosed {
		t.Errorf("Expected EventClosed before Init, got %v", ev.Type)
	}
}

var _ Terminal = (*TermboxTerminal)(nil)
