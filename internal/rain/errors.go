package rain

import (
	"errors"
	"fmt"
)

// Domain errors for terminal and configuration failures.
var (
	// ErrTerminalInit indicates raw mode, the alternate screen or the first
	// size query could not be set up.
	ErrTerminalInit = errors.New("rain: terminal initialization failed")

	// ErrTerminalWrite indicates a frame could not be flushed to the terminal.
	ErrTerminalWrite = errors.New("rain: terminal write failed")

	// ErrInvalidConfiguration indicates a flag, env var or config file value
	// outside its valid range.
	ErrInvalidConfiguration = errors.New("rain: invalid configuration")
)

// FrameError wraps a terminal failure with the tick it happened on.
type FrameError struct {
	Tick    uint64
	Op      string
	Kind    error
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("tick %d: %s: %v", e.Tick, e.Op, e.Wrapped)
}

// Unwrap exposes both the error kind and the underlying cause to errors.Is.
func (e *FrameError) Unwrap() []error {
	return []error{e.Kind, e.Wrapped}
}
