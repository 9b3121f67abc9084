package engine

// InputKind distinguishes input stream payloads
type InputKind uint8

const (
	InputKey InputKind = iota
	InputError
)

// Key identifies the keys the loop cares about
// The terminal layer translates its own key codes into these, keeping engine independent of it
type Key uint8

const (
	KeyOther Key = iota
	KeyRune
	KeyEscape
)

// InputEvent is one item of the input stream
// The stream ends when its channel is closed
type InputEvent struct {
	Kind InputKind
	Key  Key
	Rune rune
	Err  error
}

// KeyEvent builds a key press event
func KeyEvent(k Key, r rune) InputEvent {
	return InputEvent{Kind: InputKey, Key: k, Rune: r}
}

// RuneEvent builds a printable key press event
func RuneEvent(r rune) InputEvent {
	return InputEvent{Kind: InputKey, Key: KeyRune, Rune: r}
}

// ErrorEvent wraps a non-fatal input read failure
func ErrorEvent(err error) InputEvent {
	return InputEvent{Kind: InputError, Err: err}
}
