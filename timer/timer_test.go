package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const frame = time.Second / 60

func TestNew_StartsRunning(t *testing.T) {
	tm := New(250 * time.Millisecond)

	assert.False(t, tm.Finished())
	assert.Equal(t, 250*time.Millisecond, tm.Remaining())
	assert.Equal(t, 250*time.Millisecond, tm.Duration())
}

func TestNewFinished_StartsFinished(t *testing.T) {
	tm := NewFinished(250 * time.Millisecond)

	assert.True(t, tm.Finished())
	assert.Zero(t, tm.Remaining())
}

func TestTick_CountsDownAndFinishes(t *testing.T) {
	tm := New(250 * time.Millisecond)

	for i := 0; i < 10; i++ {
		tm.Tick(frame)
	}
	assert.False(t, tm.Finished())
	assert.Equal(t, 250*time.Millisecond-10*frame, tm.Remaining())
	assert.InDelta(t, 1-10*frame.Seconds()/0.25, tm.Fraction(), 1e-4)

	for i := 0; i < 10; i++ {
		tm.Tick(frame)
	}
	assert.True(t, tm.Finished())
	assert.Zero(t, tm.Remaining())
	assert.Zero(t, tm.Fraction())
}

func TestRemaining_IsExactAfterReset(t *testing.T) {
	for _, d := range []time.Duration{100 * time.Millisecond, 250 * time.Millisecond, 333 * time.Millisecond} {
		tm := NewFinished(d)
		tm.Reset()
		assert.Equal(t, d, tm.Remaining())
		assert.Equal(t, 1.0, tm.Fraction())

		tm.Tick(time.Millisecond)
		assert.Equal(t, d-time.Millisecond, tm.Remaining())
	}
}

func TestTick_FinishesOnExactDuration(t *testing.T) {
	tm := New(100 * time.Millisecond)
	tm.Tick(60 * time.Millisecond)
	assert.False(t, tm.Finished())

	tm.Tick(40 * time.Millisecond)
	assert.True(t, tm.Finished())
}

func TestTick_IgnoresNonPositiveDelta(t *testing.T) {
	tm := New(time.Second)
	tm.Tick(0)
	tm.Tick(-time.Second)

	assert.False(t, tm.Finished())
	assert.Equal(t, time.Second, tm.Remaining())
}

func TestReset_RestartsFinishedTimer(t *testing.T) {
	tm := NewFinished(250 * time.Millisecond)
	tm.Reset()

	assert.False(t, tm.Finished())
	assert.Equal(t, 250*time.Millisecond, tm.Remaining())

	tm.Tick(100 * time.Millisecond)
	tm.Reset()
	assert.Equal(t, 250*time.Millisecond, tm.Remaining())
}

func TestFinish_IsIdempotent(t *testing.T) {
	tm := New(time.Second)
	tm.Finish()
	tm.Finish()
	tm.Tick(frame)

	assert.True(t, tm.Finished())
}

func TestZeroDuration_IsAlwaysFinished(t *testing.T) {
	tm := New(0)
	assert.True(t, tm.Finished())

	tm.Reset()
	assert.True(t, tm.Finished())
}
