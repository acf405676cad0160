// Package timer provides the one-shot countdowns used by the jump eligibility
// rules. The remaining time is kept as a time.Duration; a linear tween from 1
// to 0 tracks the remaining fraction for display.
package timer

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type Timer struct {
	duration  time.Duration
	remaining time.Duration
	tween     *gween.Tween
	fraction  float32
}

// New returns a running timer with its full duration remaining.
func New(d time.Duration) *Timer {
	if d < 0 {
		d = 0
	}
	t := &Timer{
		duration: d,
		tween:    gween.New(1, 0, float32(d.Seconds()), ease.Linear),
	}
	t.Reset()
	return t
}

// NewFinished returns a timer that starts in the finished state.
func NewFinished(d time.Duration) *Timer {
	t := New(d)
	t.Finish()
	return t
}

// Tick advances the timer by dt. Finished timers stay finished.
func (t *Timer) Tick(dt time.Duration) {
	if t.Finished() || dt <= 0 {
		return
	}
	t.remaining -= dt
	if t.remaining <= 0 {
		t.Finish()
		return
	}
	t.fraction, _ = t.tween.Update(float32(dt.Seconds()))
}

// Reset restarts the countdown from the full duration.
func (t *Timer) Reset() {
	t.tween.Reset()
	t.remaining = t.duration
	t.fraction = 1
	if t.duration == 0 {
		t.fraction = 0
	}
}

// Finish forces the timer into the finished state.
func (t *Timer) Finish() {
	t.remaining = 0
	t.fraction = 0
}

func (t *Timer) Finished() bool {
	return t.remaining <= 0
}

func (t *Timer) Remaining() time.Duration {
	return t.remaining
}

// Fraction is the share of the duration still remaining, from 1 down to 0.
func (t *Timer) Fraction() float64 {
	return float64(t.fraction)
}

func (t *Timer) Duration() time.Duration {
	return t.duration
}
