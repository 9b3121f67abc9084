package main

import (
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/terminal"
)

// eventSource is the part of terminal.Terminal the pump reads from
type eventSource interface {
	PollEvent() terminal.Event
}

// pumpInput forwards terminal events to the loop and closes out when input ends
func pumpInput(src eventSource, out chan<- engine.InputEvent) {
	defer close(out)
	for {
		ev, closed := translateEvent(src.PollEvent())
		if closed {
			return
		}
		out <- ev
	}
}

// translateEvent maps a terminal event onto the loop's input vocabulary
// Every key is forwarded, unbound ones still count as input for the delay budget
func translateEvent(ev terminal.Event) (engine.InputEvent, bool) {
	switch ev.Type {
	case terminal.EventClosed:
		return engine.InputEvent{}, true
	case terminal.EventError:
		return engine.ErrorEvent(ev.Err), false
	}

	switch ev.Key {
	case terminal.KeyEscape:
		return engine.KeyEvent(engine.KeyEscape, 0), false
	case terminal.KeyRune:
		return engine.RuneEvent(ev.Rune), false
	}
	return engine.KeyEvent(engine.KeyOther, 0), false
}
