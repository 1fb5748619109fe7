// ABOUTME: Screen owns the terminal for a full-screen display: raw mode, alt screen, cursor
// ABOUTME: Draw repaints every row of a Frame inside a CSI 2026 synchronized update

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mauromedda/spomo-go/pkg/tui/terminal"
)

const (
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	clearScreen    = "\x1b[2J"
	syncBegin      = "\x1b[?2026h"
	syncEnd        = "\x1b[?2026l"
)

// Screen draws Frames on a terminal it has taken exclusive control of.
type Screen struct {
	term    terminal.Terminal
	painter *Painter
	entered bool
}

// NewScreen returns a Screen for t. It does not touch the terminal until Enter.
func NewScreen(t terminal.Terminal, p *Painter) *Screen {
	return &Screen{term: t, painter: p}
}

// Enter switches the terminal to raw mode and the alternate screen and
// hides the cursor. If anything after raw mode fails, raw mode is undone.
func (s *Screen) Enter() error {
	if s.entered {
		return nil
	}
	if err := s.term.EnterRawMode(); err != nil {
		return err
	}
	if _, err := s.term.Write([]byte(enterAltScreen + hideCursor + clearScreen)); err != nil {
		_ = s.term.ExitRawMode()
		return fmt.Errorf("entering alternate screen: %w", err)
	}
	s.entered = true
	return nil
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (int, int, error) {
	return s.term.Size()
}

// Draw paints f over the whole screen, one absolutely positioned row at a time.
func (s *Screen) Draw(f Frame) error {
	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)

	s.painter.Compose(f, buf)

	var b strings.Builder
	b.WriteString(syncBegin)
	for i, line := range buf.Lines {
		fmt.Fprintf(&b, "\x1b[%d;1H", i+1)
		b.WriteString(line)
	}
	b.WriteString(syncEnd)

	if _, err := s.term.Write([]byte(b.String())); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Leave restores the cursor, the primary screen and the terminal mode.
// Every step is attempted even if an earlier one fails. Safe to call twice.
func (s *Screen) Leave() error {
	if !s.entered {
		return nil
	}
	s.entered = false

	var errs []error
	if _, err := s.term.Write([]byte(showCursor + leaveAltScreen)); err != nil {
		errs = append(errs, fmt.Errorf("leaving alternate screen: %w", err))
	}
	if err := s.term.ExitRawMode(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Active reports whether the screen currently owns the terminal.
func (s *Screen) Active() bool {
	return s.entered
}
