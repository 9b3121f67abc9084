package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/game"
)

// Screen is the render target of the loop
type Screen interface {
	game.Canvas
	// Clear blanks the whole screen
	Clear()
}

// Sounds receives gameplay cues, calls happen on the loop goroutine and must not block
type Sounds interface {
	PlayTick()
	PlayTurn()
	PlayCrash()
}

type nopSounds struct{}

func (nopSounds) PlayTick()  {}
func (nopSounds) PlayTurn()  {}
func (nopSounds) PlayCrash() {}

// Loop drives the snake: each iteration races the movement timer against the next input event
// The loser of the race is abandoned; keys shorten the next wait so ticks keep a fixed cadence
type Loop struct {
	snake  *game.Snake
	screen Screen
	input  <-chan InputEvent
	clock  Clock
	sounds Sounds

	targetDelay  time.Duration
	plannedDelay time.Duration

	state     State
	reason    Reason
	tickCount uint64
}

// NewLoop creates a loop in the running state
// input is owned by the producer, closing it ends the game
func NewLoop(snake *game.Snake, screen Screen, input <-chan InputEvent, clock Clock) *Loop {
	return &Loop{
		snake:        snake,
		screen:       screen,
		input:        input,
		clock:        clock,
		sounds:       nopSounds{},
		targetDelay:  constants.TargetTickDelay,
		plannedDelay: constants.TargetTickDelay,
		state:        StateRunning,
	}
}

// SetSounds installs gameplay cue hooks, nil restores silence
func (l *Loop) SetSounds(s Sounds) {
	if s == nil {
		s = nopSounds{}
	}
	l.sounds = s
}

// Run iterates until a terminal state is reached and returns its reason
func (l *Loop) Run() Reason {
	for l.state == StateRunning {
		l.iterate()
	}
	log.Printf("loop terminated: %s after %d ticks", l.reason, l.tickCount)
	return l.reason
}

// iterate performs a single race between the planned delay and the input stream
func (l *Loop) iterate() {
	cycleStart := l.clock.Now()
	timer := l.clock.NewTimer(l.plannedDelay)

	select {
	case <-timer.C():
		l.tick()

	case ev, ok := <-l.input:
		timer.Stop()
		if !ok {
			l.terminate(ReasonInputStreamEnded)
			return
		}
		l.handleInput(ev)
		if l.state != StateRunning {
			return
		}
		l.plannedDelay = l.remainingBudget(l.clock.Now().Sub(cycleStart))
	}
}

// tick clears, moves and redraws the snake
func (l *Loop) tick() {
	l.screen.Clear()

	// ErrOutOfBounds is the only failure Step reports
	if err := l.snake.Step(); err != nil {
		l.sounds.PlayCrash()
		l.terminate(ReasonOutOfBounds)
		return
	}

	l.tickCount++
	l.snake.Draw(l.screen)
	l.sounds.PlayTick()
	l.plannedDelay = l.targetDelay
}

// handleInput applies a key or reports an input error
func (l *Loop) handleInput(ev InputEvent) {
	switch ev.Kind {
	case InputError:
		log.Printf("input error: %v", ev.Err)

	case InputKey:
		switch ev.Key {
		case KeyEscape:
			l.terminate(ReasonUserQuit)
		case KeyRune:
			if d, ok := DirectionForRune(ev.Rune); ok {
				l.snake.Turn(d)
				l.sounds.PlayTurn()
			}
		}
	}
}

// remainingBudget returns what is left of the target cadence after elapsed, never negative
func (l *Loop) remainingBudget(elapsed time.Duration) time.Duration {
	remaining := l.targetDelay - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (l *Loop) terminate(r Reason) {
	l.state = StateTerminated
	l.reason = r
}

// State returns the current lifecycle state
func (l *Loop) State() State {
	return l.state
}

// Reason returns why the loop stopped, ReasonNone while running
func (l *Loop) Reason() Reason {
	return l.reason
}

// PlannedDelay returns the wait armed by the next iteration
func (l *Loop) PlannedDelay() time.Duration {
	return l.plannedDelay
}

// TickCount returns the number of successful steps
func (l *Loop) TickCount() uint64 {
	return l.tickCount
}
