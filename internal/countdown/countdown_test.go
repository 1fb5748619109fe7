// ABOUTME: Tests for the countdown state machine using FakeClock
// ABOUTME: Covers closed completion boundary, saturation, terminal Complete state

package countdown

import (
	"testing"
	"time"

	"github.com/mauromedda/spomo-go/internal/duration"
)

var epoch = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

// compile-time checks: both clocks satisfy Clock.
var (
	_ Clock = RealClock{}
	_ Clock = (*FakeClock)(nil)
)

func TestNew_InitialSnapshot(t *testing.T) {
	t.Parallel()

	c := New(duration.Seconds(90), NewFakeClock(epoch))

	if c.State() != Running {
		t.Errorf("State() = %v, want running", c.State())
	}
	want := Snapshot{Elapsed: 0, Remaining: 90, Total: 90}
	if got := c.Snapshot(); got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
	if !c.Started().Equal(epoch) {
		t.Errorf("Started() = %v, want %v", c.Started(), epoch)
	}
}

func TestTick_RemainingIsTotalMinusElapsed(t *testing.T) {
	t.Parallel()

	for _, total := range []uint64{0, 1, 2, 5, 60, 61} {
		clk := NewFakeClock(epoch)
		c := New(duration.Seconds(total), clk)
		for elapsed := uint64(0); elapsed <= total; elapsed++ {
			s := c.Tick()
			if s.Elapsed != elapsed {
				t.Fatalf("total=%d: Elapsed = %d, want %d", total, s.Elapsed, elapsed)
			}
			if s.Remaining != total-elapsed {
				t.Fatalf("total=%d elapsed=%d: Remaining = %d, want %d", total, elapsed, s.Remaining, total-elapsed)
			}
			if s.Total != total {
				t.Fatalf("Total = %d, want %d", s.Total, total)
			}
			clk.Advance(time.Second)
		}
	}
}

func TestTick_CompletesExactlyAtTotal(t *testing.T) {
	t.Parallel()

	clk := NewFakeClock(epoch)
	c := New(duration.Seconds(3), clk)

	for i := 0; i < 3; i++ {
		c.Tick()
		if c.State() != Running {
			t.Fatalf("completed early at elapsed=%d", i)
		}
		clk.Advance(time.Second)
	}

	s := c.Tick()
	if c.State() != Complete {
		t.Fatalf("State() = %v at elapsed=%d, want complete", c.State(), s.Elapsed)
	}
	if s.Remaining != 0 {
		t.Errorf("Remaining = %d, want 0", s.Remaining)
	}
}

func TestTick_SubSecondDoesNotComplete(t *testing.T) {
	t.Parallel()

	clk := NewFakeClock(epoch)
	c := New(duration.Seconds(1), clk)

	clk.Advance(999 * time.Millisecond)
	if s := c.Tick(); s.Elapsed != 0 || c.State() != Running {
		t.Errorf("after 999ms: elapsed=%d state=%v, want 0/running", s.Elapsed, c.State())
	}
}

func TestTick_ZeroDurationCompletesOnFirstTick(t *testing.T) {
	t.Parallel()

	c := New(0, NewFakeClock(epoch))
	s := c.Tick()

	if c.State() != Complete {
		t.Errorf("State() = %v, want complete", c.State())
	}
	if s != (Snapshot{}) {
		t.Errorf("Snapshot = %+v, want zero", s)
	}
}

func TestTick_SaturatesAfterOverrun(t *testing.T) {
	t.Parallel()

	clk := NewFakeClock(epoch)
	c := New(duration.Seconds(2), clk)
	clk.Advance(10 * time.Second)

	first := c.Tick()
	second := c.Tick()

	if first.Remaining != 0 || first.Elapsed != 10 {
		t.Errorf("Tick() = %+v, want elapsed=10 remaining=0", first)
	}
	if first != second {
		t.Errorf("Tick after Complete changed: %+v then %+v", first, second)
	}
}

func TestComplete_IsTerminal(t *testing.T) {
	t.Parallel()

	clk := NewFakeClock(epoch)
	c := New(duration.Seconds(1), clk)
	clk.Advance(time.Second)
	c.Tick()
	if c.State() != Complete {
		t.Fatal("expected complete")
	}

	// A clock stepping backwards must not resurrect the countdown.
	clk.Advance(-5 * time.Second)
	s := c.Tick()
	if c.State() != Complete {
		t.Errorf("State() = %v after clock regression, want complete", c.State())
	}
	if s.Elapsed != 0 || s.Remaining != 1 {
		t.Errorf("Tick() = %+v, want elapsed clamped to 0", s)
	}
	if !c.Expired() {
		t.Error("Expired() = false after completion")
	}
}

func TestExpired_EvaluatesCurrentInstant(t *testing.T) {
	t.Parallel()

	clk := NewFakeClock(epoch)
	c := New(duration.Seconds(1), clk)

	c.Tick()
	if c.Expired() {
		t.Fatal("Expired() = true before any time passed")
	}

	<-clk.After(time.Second)
	if !c.Expired() {
		t.Fatal("Expired() = false after the full duration")
	}
	if c.State() != Complete {
		t.Errorf("State() = %v, want complete", c.State())
	}
	// Expired does not replace the last ticked snapshot.
	if c.Snapshot().Elapsed != 0 {
		t.Errorf("Snapshot().Elapsed = %d, want 0", c.Snapshot().Elapsed)
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state State
		want  string
	}{
		{Running, "running"},
		{Complete, "complete"},
		{State(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestFakeClock_After(t *testing.T) {
	t.Parallel()

	clk := NewFakeClock(epoch)
	got := <-clk.After(time.Second)

	if !got.Equal(epoch.Add(time.Second)) {
		t.Errorf("After fired with %v, want %v", got, epoch.Add(time.Second))
	}
	if w := clk.Waits(); len(w) != 1 || w[0] != time.Second {
		t.Errorf("Waits() = %v, want [1s]", w)
	}
}

func TestRealClock_Monotonic(t *testing.T) {
	t.Parallel()

	c := New(duration.Seconds(5), RealClock{})
	s := c.Tick()
	if s.Elapsed != 0 || c.State() != Running {
		t.Errorf("immediate Tick() = %+v state=%v, want elapsed 0 running", s, c.State())
	}
}
