package engine

// State is the loop lifecycle state
type State uint8

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	}
	return "unknown"
}

// Reason tells why the loop terminated
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonUserQuit
	ReasonOutOfBounds
	ReasonInputStreamEnded
	// ReasonInputError is reserved, input errors are reported and do not end the loop
	ReasonInputError
)

var reasonNames = [...]string{
	ReasonNone:             "none",
	ReasonUserQuit:         "user quit",
	ReasonOutOfBounds:      "out of bounds",
	ReasonInputStreamEnded: "input stream ended",
	ReasonInputError:       "input error",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}
