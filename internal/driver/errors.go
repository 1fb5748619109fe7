// ABOUTME: Error kinds surfaced by the countdown driver
// ABOUTME: TerminalError names the failed terminal operation; ErrInterrupted marks a user quit

package driver

import "errors"

// Terminal operations reported in TerminalError.Op.
const (
	OpEnter   = "cannot enter terminal"
	OpSize    = "cannot query terminal size"
	OpRender  = "cannot render frame"
	OpRestore = "cannot restore terminal"
)

// ErrInterrupted is returned when the run was cancelled before the
// countdown completed, by a quit key or by the caller's context.
var ErrInterrupted = errors.New("countdown interrupted")

// TerminalError reports a failed terminal operation.
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}
