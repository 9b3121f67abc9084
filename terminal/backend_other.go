//go:build !unix

package terminal

import "errors"

var errNativeUnsupported = errors.New("native terminal backend requires a unix tty, use -backend=tcell")

type unsupportedBackend struct{}

func newBackend() Backend { return unsupportedBackend{} }

func (unsupportedBackend) Init() error                          { return errNativeUnsupported }
func (unsupportedBackend) Fini()                                {}
func (unsupportedBackend) Size() (int, int)                     { return 80, 24 }
func (unsupportedBackend) Write(p []byte) error                 { return errNativeUnsupported }
func (unsupportedBackend) Read(<-chan struct{}) ([]byte, error) { return nil, errNativeUnsupported }

func resetTerminalMode() {}
