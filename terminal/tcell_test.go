package terminal

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimTerminal(t *testing.T) (*TcellTerminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTcellWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(20, 10)
	return term, screen
}

func TestTcellTerminalPut(t *testing.T) {
	term, screen := newSimTerminal(t)
	defer term.Fini()

	term.Put(3, 4, 'x')
	term.Flush()

	mainc, _, _, _ := screen.GetContent(3, 4)
	if mainc != 'x' {
		t.Errorf("Expected 'x' at (3,4), got %q", mainc)
	}

	term.Clear()
	mainc, _, _, _ = screen.GetContent(3, 4)
	if mainc == 'x' {
		t.Error("Expected cell cleared after Clear")
	}
}

func TestTcellTerminalSize(t *testing.T) {
	term, _ := newSimTerminal(t)
	defer term.Fini()

	w, h := term.Size()
	if w != 20 || h != 10 {
		t.Errorf("Expected 20x10, got %dx%d", w, h)
	}
}

func TestConvertTcellEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		key  Key
		r    rune
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModNone), KeyRune, 'u'},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyEscape, 0},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyUp, 0},
		{"unmapped", tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone), KeyNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok := convertTcellEvent(tt.ev)
			if !ok {
				t.Fatal("Expected key event to be converted")
			}
			if out.Type != EventKey || out.Key != tt.key || out.Rune != tt.r {
				t.Errorf("Expected key %d rune %q, got %+v", tt.key, tt.r, out)
			}
		})
	}
}

func TestConvertTcellEventError(t *testing.T) {
	out, ok := convertTcellEvent(tcell.NewEventError(errors.New("tty gone")))
	if !ok || out.Type != EventError || out.Err == nil {
		t.Errorf("Expected EventError, got %+v", out)
	}
}

func TestConvertTcellEventIgnoresResize(t *testing.T) {
	if _, ok := convertTcellEvent(tcell.NewEventResize(80, 24)); ok {
		t.Error("Expected resize events to be ignored")
	}
}

func TestTcellTerminalInactive(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTcellWithScreen(screen)

	// No panic before Init
	term.Put(0, 0, 'x')
	term.Clear()
	term.Flush()
	term.Fini()
}
