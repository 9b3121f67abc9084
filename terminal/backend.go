package terminal

// Backend abstracts the platform tty used by the native terminal
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Capabilities
	Size() (width, height int)

	// I/O
	// Write writes raw bytes to the terminal output.
	Write(p []byte) error

	// Read blocks until input is available, the poll timeout elapses, the stop channel is closed, or an error occurs.
	// A timeout or stop returns (nil, nil); end of input returns io.EOF.
	Read(stopCh <-chan struct{}) ([]byte, error)
}

// backendWriter adapts Backend to io.Writer for buffered output
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	if err := w.b.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
