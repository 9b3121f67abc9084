package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/vi-snake/terminal"
)

// Finalizer restores a terminal, terminal.Terminal satisfies it
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer
	exitFunc      = os.Exit

	// Crash output streams, replaced in tests
	crashStdout io.Writer = os.Stdout
	crashStderr io.Writer = os.Stderr
)

// SetCrashTerminal registers the terminal HandleCrash restores before printing
func SetCrashTerminal(t Finalizer) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashTerminal = t
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	t := crashTerminal
	crashMu.Unlock()

	if t != nil {
		t.Fini()
	}
	// Fini alone does not undo a half-initialized tty
	terminal.EmergencyReset(crashStdout)
	syncWriter(crashStderr)

	// \r\n in case raw mode survived the reset
	fmt.Fprintf(crashStderr, "\r\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashStderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	syncWriter(crashStderr)
	exitFunc(1)
}

func syncWriter(w io.Writer) {
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
