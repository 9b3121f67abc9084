package terminal

import (
	"bufio"
	"io"
	"os"
	"sync"
)

// Terminal is the character-cell surface and key source the game runs on
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Clear blanks the screen
	Clear()

	// Put writes one glyph at column x, row y (0-indexed); cells outside the screen are dropped
	Put(x, y int, r rune)

	// Flush writes pending output to the terminal
	Flush()

	// SetCursorVisible shows/hides cursor
	SetCursorVisible(visible bool)

	// PollEvent blocks until next input event, EventClosed once input has ended
	PollEvent() Event
}

// termImpl implements Terminal with direct ANSI output over a Backend
type termImpl struct {
	backend Backend
	writer  *bufio.Writer
	input   *inputReader

	mu          sync.Mutex
	initialized bool
	finalized   bool
	width       int
	height      int
}

// New creates the native ANSI terminal on the process tty
func New() Terminal {
	return newWithBackend(newBackend())
}

func newWithBackend(b Backend) *termImpl {
	return &termImpl{
		backend: b,
		writer:  bufio.NewWriterSize(backendWriter{b: b}, 4096),
	}
}

// Init enters raw mode and sets up terminal
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	t.width, t.height = t.backend.Size()
	t.input = newInputReader(t.backend)

	t.writer.Write(csiAltScreenEnter)
	t.writer.Write(csiCursorHide)
	t.writer.Write(csiAutoWrapOff)
	t.writer.Write(csiClear)
	t.writer.Flush()

	t.input.start()

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.input.stop()

	t.writer.Write(csiCursorShow)
	t.writer.Write(csiAltScreenExit)
	// Re-enable auto-wrap after leaving the alt screen so the main buffer gets it
	t.writer.Write(csiAutoWrapOn)
	t.writer.Write(csiSGR0)
	t.writer.Flush()

	t.backend.Fini()
	t.finalized = true
}

// Size returns current terminal dimensions
func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

func (t *termImpl) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active() {
		return
	}
	t.writer.Write(csiClear)
	t.writer.Flush()
}

func (t *termImpl) Put(x, y int, r rune) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active() {
		return
	}
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return
	}
	writeCursorPos(t.writer, x, y)
	t.writer.WriteRune(r)
}

func (t *termImpl) Flush() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active() {
		return
	}
	t.writer.Flush()
}

// SetCursorVisible shows/hides cursor
func (t *termImpl) SetCursorVisible(visible bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active() {
		return
	}
	if visible {
		t.writer.Write(csiCursorShow)
	} else {
		t.writer.Write(csiCursorHide)
	}
	t.writer.Flush()
}

// PollEvent blocks until next input event
func (t *termImpl) PollEvent() Event {
	t.mu.Lock()
	in := t.input
	t.mu.Unlock()

	if in == nil {
		return Event{Type: EventClosed}
	}
	ev, ok := <-in.events()
	if !ok {
		return Event{Type: EventClosed}
	}
	return ev
}

// active reports whether output is allowed, caller holds mu
func (t *termImpl) active() bool {
	return t.initialized && !t.finalized
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort, errors ignored
	resetTerminalMode()
}
