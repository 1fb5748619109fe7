// ABOUTME: Beeper abstraction for completion signaling and the selectable implementations
// ABOUTME: Defines AudioError and New, which picks a beeper by configured kind

package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Beeper emits one audible completion signal. Beep blocks until the
// signal has been played.
type Beeper interface {
	Beep() error
}

// Operations reported in AudioError.Op.
const (
	OpOpen = "cannot open audio output"
	OpPlay = "cannot reproduce beep"
)

// AudioError reports a failed audio operation.
type AudioError struct {
	Op  string
	Err error
}

func (e *AudioError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *AudioError) Unwrap() error {
	return e.Err
}

// Kinds of beeper selectable from configuration.
const (
	KindTone = "tone"
	KindBell = "bell"
	KindNone = "none"
)

// ErrUnknownKind is returned by New for an unsupported kind.
var ErrUnknownKind = errors.New("unknown sound kind")

// Kinds lists the accepted sound kinds, default first.
func Kinds() []string {
	return []string{KindTone, KindBell, KindNone}
}

// New returns the beeper for kind. An empty kind selects the tone.
// w receives the bell character; nil means stderr.
func New(kind string, w io.Writer) (Beeper, error) {
	switch kind {
	case "", KindTone:
		return NewToneBeeper(), nil
	case KindBell:
		if w == nil {
			w = os.Stderr
		}
		return &BellBeeper{W: w}, nil
	case KindNone:
		return NopBeeper{}, nil
	}
	return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknownKind, kind, Kinds())
}

// BellBeeper writes the terminal bell character.
type BellBeeper struct {
	W io.Writer
}

// Beep writes BEL to W.
func (b *BellBeeper) Beep() error {
	if _, err := b.W.Write([]byte("\a")); err != nil {
		return &AudioError{Op: OpPlay, Err: err}
	}
	return nil
}

// NopBeeper does nothing.
type NopBeeper struct{}

// Beep always succeeds.
func (NopBeeper) Beep() error { return nil }
