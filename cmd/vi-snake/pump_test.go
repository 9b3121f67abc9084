package main

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/terminal"
)

type nullScreen struct{}

func (nullScreen) Clear()               {}
func (nullScreen) Put(x, y int, r rune) {}
func (nullScreen) Flush()               {}

type scriptedSource struct {
	events []terminal.Event
}

func (s *scriptedSource) PollEvent() terminal.Event {
	if len(s.events) == 0 {
		return terminal.Event{Type: terminal.EventClosed}
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func TestTranslateEvent(t *testing.T) {
	readErr := errors.New("read failed")

	tests := []struct {
		name   string
		in     terminal.Event
		want   engine.InputEvent
		closed bool
	}{
		{"escape", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyEscape}, engine.KeyEvent(engine.KeyEscape, 0), false},
		{"alt escape", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyEscape, Modifiers: terminal.ModAlt}, engine.KeyEvent(engine.KeyEscape, 0), false},
		{"rune", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'n'}, engine.RuneEvent('n'), false},
		{"arrow", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyUp}, engine.KeyEvent(engine.KeyOther, 0), false},
		{"error", terminal.Event{Type: terminal.EventError, Err: readErr}, engine.ErrorEvent(readErr), false},
		{"closed", terminal.Event{Type: terminal.EventClosed}, engine.InputEvent{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, closed := translateEvent(tt.in)
			if closed != tt.closed {
				t.Fatalf("Expected closed=%v, got %v", tt.closed, closed)
			}
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestPumpInputClosesOnEnd(t *testing.T) {
	src := &scriptedSource{events: []terminal.Event{
		{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'u'},
		{Type: terminal.EventKey, Key: terminal.KeyEscape},
	}}
	out := make(chan engine.InputEvent, 4)

	go pumpInput(src, out)

	var got []engine.InputEvent
	timeout := time.After(time.Second)
	for {
		select {
		case ev, ok := <-out:
			if !ok {
				if len(got) != 2 {
					t.Fatalf("Expected 2 events before close, got %v", got)
				}
				if got[0] != engine.RuneEvent('u') || got[1] != engine.KeyEvent(engine.KeyEscape, 0) {
					t.Errorf("Unexpected events %v", got)
				}
				return
			}
			got = append(got, ev)
		case <-timeout:
			t.Fatal("Pump did not close output channel")
		}
	}
}

func TestNewTerminalUnknownBackend(t *testing.T) {
	if _, err := newTerminal("curses"); err == nil {
		t.Error("Expected error for unknown backend")
	}
}

func TestClampDim(t *testing.T) {
	tests := []struct {
		in   int
		want uint16
	}{
		{-5, 0},
		{0, 0},
		{80, 80},
		{70000, 65535},
	}
	for _, tt := range tests {
		if got := clampDim(tt.in); got != tt.want {
			t.Errorf("clampDim(%d): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

// TestEndToEndMinimumRoom runs a 10x4 room on the simulated clock with no input:
// the head starts on row 0 facing up, so the first tick ends the game
func TestEndToEndMinimumRoom(t *testing.T) {
	snake, err := game.NewSnake(10, 4)
	if err != nil {
		t.Fatalf("NewSnake failed: %v", err)
	}

	screen := &nullScreen{}
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	input := make(chan engine.InputEvent)
	loop := engine.NewLoop(snake, screen, input, clock)

	done := make(chan engine.Reason, 1)
	go func() { done <- loop.Run() }()

	<-clock.Armed()
	clock.Advance(time.Second)

	select {
	case r := <-done:
		if r != engine.ReasonOutOfBounds {
			t.Errorf("Expected %s, got %s", engine.ReasonOutOfBounds, r)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Loop did not terminate")
	}
}
