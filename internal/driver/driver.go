// ABOUTME: Driver runs the countdown: tick, render, wait one second, stop when complete
// ABOUTME: The terminal is always released before returning; the beeper fires only after a full run

package driver

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/muesli/termenv"

	"github.com/mauromedda/spomo-go/internal/audio"
	"github.com/mauromedda/spomo-go/internal/countdown"
	"github.com/mauromedda/spomo-go/internal/duration"
	"github.com/mauromedda/spomo-go/internal/log"
	"github.com/mauromedda/spomo-go/internal/render"
	"github.com/mauromedda/spomo-go/pkg/tui"
	"github.com/mauromedda/spomo-go/pkg/tui/input"
	"github.com/mauromedda/spomo-go/pkg/tui/key"
	"github.com/mauromedda/spomo-go/pkg/tui/terminal"
	"github.com/mauromedda/spomo-go/pkg/tui/theme"
)

// TickInterval is the wait between two frames.
const TickInterval = time.Second

// Options bundles the driver's collaborators.
type Options struct {
	Terminal terminal.Terminal
	Painter  *tui.Painter
	Clock    countdown.Clock
	Beeper   audio.Beeper
	Title    string

	// Input, when set, is read for quit keys (q, Q, Esc, Ctrl+C).
	Input io.Reader
}

// Driver owns the terminal and the countdown for one run.
type Driver struct {
	opts Options
}

// New returns a Driver. Missing collaborators get defaults: the real
// clock, no sound, and an unstyled painter. Terminal is required.
func New(opts Options) *Driver {
	if opts.Clock == nil {
		opts.Clock = countdown.RealClock{}
	}
	if opts.Beeper == nil {
		opts.Beeper = audio.NopBeeper{}
	}
	if opts.Painter == nil {
		opts.Painter = tui.NewPainter(theme.DefaultPalette(), termenv.Ascii)
	}
	return &Driver{opts: opts}
}

// Run counts down total seconds on the terminal. It returns nil after the
// countdown completed and the beep played, ErrInterrupted when cancelled,
// a *TerminalError for terminal failures, or an *audio.AudioError when
// only the beep failed.
func (d *Driver) Run(ctx context.Context, total duration.Seconds) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen := tui.NewScreen(d.opts.Terminal, d.opts.Painter)
	if err := screen.Enter(); err != nil {
		return &TerminalError{Op: OpEnter, Err: err}
	}

	if d.opts.Input != nil {
		go d.watchKeys(ctx, cancel)
	}

	c := countdown.New(total, d.opts.Clock)
	log.Debug("countdown started", "total", total, "start", c.Started())

	if err := d.session(ctx, screen, c); err != nil {
		return err
	}

	log.Debug("countdown complete", "elapsed", c.Snapshot().Elapsed)
	if err := d.opts.Beeper.Beep(); err != nil {
		var ae *audio.AudioError
		if !errors.As(err, &ae) {
			err = &audio.AudioError{Op: audio.OpPlay, Err: err}
		}
		return err
	}
	return nil
}

// session runs the loop and releases the screen on every exit path,
// panics included. A release failure is joined with the loop error.
func (d *Driver) session(ctx context.Context, screen *tui.Screen, c *countdown.Countdown) (err error) {
	defer func() {
		if rerr := screen.Leave(); rerr != nil {
			err = errors.Join(err, &TerminalError{Op: OpRestore, Err: rerr})
		}
	}()
	return d.loop(ctx, screen, c)
}

func (d *Driver) loop(ctx context.Context, screen *tui.Screen, c *countdown.Countdown) error {
	for {
		snap := c.Tick()

		w, h, err := screen.Size()
		if err != nil {
			return &TerminalError{Op: OpSize, Err: err}
		}
		frame := render.Render(snap, render.Geometry{Width: w, Height: h}, render.Options{Title: d.opts.Title})
		if err := screen.Draw(frame); err != nil {
			return &TerminalError{Op: OpRender, Err: err}
		}
		log.Debug("tick", "elapsed", snap.Elapsed, "remaining", snap.Remaining, "width", w, "height", h)

		select {
		case <-ctx.Done():
			return ErrInterrupted
		case <-d.opts.Clock.After(TickInterval):
		}

		if c.Expired() {
			return nil
		}
	}
}

// watchKeys cancels the run on the first quit key.
func (d *Driver) watchKeys(ctx context.Context, cancel context.CancelFunc) {
	defer terminal.RecoverGoroutine(d.opts.Terminal)

	input.NewStdinBuffer(d.opts.Input, func(k key.Key) {
		if key.IsQuit(k) {
			log.Debug("quit key", "key", k.String())
			cancel()
		}
	}).Start(ctx)
}
