package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/terminal"
)

var (
	backendFlag = flag.String("backend", "native", "Terminal backend: native, tcell, termbox")
	soundFlag   = flag.Bool("sound", false, "Enable sound cues")
	debugFlag   = flag.Bool("debug", false, "Write debug log to logs/vi-snake.log")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	reason, err := run(*backendFlag, *soundFlag)
	if err != nil {
		log.Printf("startup failed: %v", err)
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}

	// Terminal is restored by now, every reason is a normal exit
	fmt.Printf("Game over: %s\n", reason)
}

// run owns the terminal for the lifetime of the game, Fini runs on every return path
func run(backend string, sound bool) (engine.Reason, error) {
	term, err := newTerminal(backend)
	if err != nil {
		return engine.ReasonNone, err
	}
	if err := term.Init(); err != nil {
		return engine.ReasonNone, fmt.Errorf("initialize terminal: %w", err)
	}
	core.SetCrashTerminal(term)
	defer term.Fini()

	// Size is read once, the grid does not follow resizes
	w, h := term.Size()
	snake, err := game.NewSnake(clampDim(w), clampDim(h))
	if err != nil {
		if errors.Is(err, game.ErrRoomTooSmall) {
			return engine.ReasonNone, fmt.Errorf("terminal too small: %w", err)
		}
		return engine.ReasonNone, err
	}

	input := make(chan engine.InputEvent, constants.InputBufferSize)
	core.Go(func() { pumpInput(term, input) })

	loop := engine.NewLoop(snake, term, input, engine.NewTimeProvider())

	if sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("audio initialization failed: %v", err)
		} else {
			defer sm.Cleanup()
			loop.SetSounds(sm)
		}
	}

	log.Printf("starting: %dx%d backend=%s head=%s", w, h, backend, snake.Head())
	return loop.Run(), nil
}

func newTerminal(backend string) (terminal.Terminal, error) {
	switch backend {
	case "native":
		return terminal.New(), nil
	case "tcell":
		t, err := terminal.NewTcell()
		if err != nil {
			return nil, fmt.Errorf("create tcell screen: %w", err)
		}
		return t, nil
	case "termbox":
		return terminal.NewTermbox(), nil
	}
	return nil, fmt.Errorf("unknown backend %q (want native, tcell or termbox)", backend)
}

// clampDim fits a terminal dimension into the grid coordinate range
func clampDim(n int) uint16 {
	if n < 0 {
		return 0
	}
	if n > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(n)
}
