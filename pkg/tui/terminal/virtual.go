// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Captures output, tracks raw-mode enter/exit calls, and can inject failures.

package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
)

// ErrInjected is the error returned by a VirtualTerminal operation that
// was configured to fail.
var ErrInjected = errors.New("virtual terminal: injected failure")

// VirtualTerminal is a fake Terminal for unit tests.
// It records written output and tracks raw-mode transitions.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	width      int
	height     int
	rawMode    bool
	enterCount int
	exitCount  int
	writes     int

	failEnter   bool
	failExit    bool
	failSize    bool
	failWriteAt int // 1-based index of the Write call that fails; 0 disables
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:  width,
		height: height,
	}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.failEnter {
		return fmt.Errorf("entering raw mode: %w", ErrInjected)
	}
	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.exitCount++
	if v.failExit {
		return fmt.Errorf("exiting raw mode: %w", ErrInjected)
	}
	v.rawMode = false
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.failSize {
		return 0, 0, fmt.Errorf("getting terminal size: %w", ErrInjected)
	}
	return v.width, v.height, nil
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writes++
	if v.failWriteAt > 0 && v.writes == v.failWriteAt {
		return 0, fmt.Errorf("writing to virtual buffer: %w", ErrInjected)
	}
	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode succeeded.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// SetSize updates the terminal dimensions.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.width = width
	v.height = height
}

// FailEnter makes EnterRawMode return ErrInjected.
func (v *VirtualTerminal) FailEnter() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.failEnter = true
}

// FailExit makes ExitRawMode return ErrInjected (the call is still counted).
func (v *VirtualTerminal) FailExit() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.failExit = true
}

// FailSize makes Size return ErrInjected.
func (v *VirtualTerminal) FailSize() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.failSize = true
}

// FailWriteAt makes the n-th Write call (1-based, counted from creation) fail.
func (v *VirtualTerminal) FailWriteAt(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.failWriteAt = n
}
