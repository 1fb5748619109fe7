// ABOUTME: Countdown state machine: Running until elapsed >= total, then Complete forever
// ABOUTME: Elapsed/remaining are derived from the clock on every tick with saturating math

package countdown

import (
	"time"

	"github.com/mauromedda/spomo-go/internal/duration"
)

// State is the countdown lifecycle state.
type State int

const (
	Running State = iota
	Complete
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Snapshot is the timer state observed on one tick, in whole seconds.
// Remaining never underflows: it is floored at zero.
type Snapshot struct {
	Elapsed   uint64
	Remaining uint64
	Total     uint64
}

// Countdown tracks a fixed total duration from a start instant.
type Countdown struct {
	clock Clock
	start time.Time
	total uint64
	state State
	snap  Snapshot
}

// New starts a countdown of total seconds at the clock's current instant.
func New(total duration.Seconds, clock Clock) *Countdown {
	if clock == nil {
		clock = RealClock{}
	}
	t := uint64(total)
	return &Countdown{
		clock: clock,
		start: clock.Now(),
		total: t,
		state: Running,
		snap:  Snapshot{Remaining: t, Total: t},
	}
}

// Tick recomputes elapsed and remaining from the clock, evaluates the
// Running -> Complete transition and returns the new snapshot.
// Calling Tick after completion recomputes the same saturated values.
func (c *Countdown) Tick() Snapshot {
	elapsed := c.elapsed()
	c.advance(elapsed)
	c.snap = Snapshot{
		Elapsed:   elapsed,
		Remaining: saturatingSub(c.total, elapsed),
		Total:     c.total,
	}
	return c.snap
}

// Expired evaluates the completion transition against the current instant
// without producing a new snapshot. It reports whether the countdown is Complete.
func (c *Countdown) Expired() bool {
	c.advance(c.elapsed())
	return c.state == Complete
}

// State returns the current lifecycle state.
func (c *Countdown) State() State {
	return c.state
}

// Snapshot returns the snapshot computed by the most recent Tick.
func (c *Countdown) Snapshot() Snapshot {
	return c.snap
}

// Total returns the configured duration in seconds.
func (c *Countdown) Total() uint64 {
	return c.total
}

// Started returns the instant the countdown began.
func (c *Countdown) Started() time.Time {
	return c.start
}

// advance applies the closed (>=) completion comparison. Complete is terminal.
func (c *Countdown) advance(elapsed uint64) {
	if c.state == Running && elapsed >= c.total {
		c.state = Complete
	}
}

func (c *Countdown) elapsed() uint64 {
	d := c.clock.Now().Sub(c.start)
	if d <= 0 {
		return 0
	}
	return uint64(d / time.Second)
}

func saturatingSub(a, b uint64) uint64 {
	if b >= a {
		return 0
	}
	return a - b
}
