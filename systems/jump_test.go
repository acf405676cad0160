package systems

import (
	"fmt"
	"testing"
	"time"

	"github.com/automoto/coyote/components"
	"github.com/automoto/coyote/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJumpEligibility_StartsLockedUntilGrounded(t *testing.T) {
	e, s := newTestECS()
	player, _ := createTestPlayer(e)

	runFrame(e)
	assert.False(t, canJump(player), "spawned in the air with both timers finished")

	s.setGrounded(true)
	runFrame(e)
	assert.True(t, canJump(player))
}

func TestJumpEligibility_JumpDelayLocksOut(t *testing.T) {
	for _, delay := range []time.Duration{100 * time.Millisecond, 250 * time.Millisecond, 500 * time.Millisecond} {
		t.Run(fmt.Sprint(delay), func(t *testing.T) {
			e, s := newTestECS()
			s.setGrounded(true)
			player, _ := createTestPlayer(e)
			components.JumpDelay.SetValue(player, components.JumpDelayData{Timer: timer.NewFinished(delay)})
			jumps := countJumps(e)

			setIntent(player, 0, 1)
			runFrame(e)
			require.Equal(t, 1, *jumps)

			// Grounded the whole time, and up stays held.
			lockFrames := int(delay/frame) - 1
			for i := 0; i < lockFrames; i++ {
				runFrame(e)
				require.False(t, canJump(player), "frame %d after the jump", i+1)
			}
			assert.Equal(t, 1, *jumps)

			for i := 0; i < 3 && *jumps == 1; i++ {
				runFrame(e)
			}
			assert.Equal(t, 2, *jumps, "jumps again once the delay ran out")
		})
	}
}

func TestJumpEligibility_CoyoteGraceAllowsOneJump(t *testing.T) {
	e, s := newTestECS()
	s.setGrounded(true)
	player, _ := createTestPlayer(e)
	jumps := countJumps(e)

	runFrame(e)
	require.True(t, canJump(player))

	s.setGrounded(false)
	for i := 0; i < 9; i++ {
		runFrame(e)
		require.True(t, canJump(player), "airborne frame %d", i+1)
	}

	setIntent(player, 0, 1)
	runFrame(e)
	assert.Equal(t, 1, *jumps)

	for i := 0; i < 20; i++ {
		runFrame(e)
		assert.False(t, canJump(player))
	}
	assert.Equal(t, 1, *jumps, "the grace window is consumed by the jump")
}

func TestJumpEligibility_CoyoteExpires(t *testing.T) {
	e, s := newTestECS()
	s.setGrounded(true)
	player, _ := createTestPlayer(e)
	jumps := countJumps(e)

	runFrame(e)
	s.setGrounded(false)
	for i := 0; i < 20; i++ {
		runFrame(e)
	}
	assert.False(t, canJump(player))

	setIntent(player, 0, 1)
	runFrame(e)
	assert.Zero(t, *jumps)
}

func TestJumpEligibility_GroundResetsCoyote(t *testing.T) {
	e, s := newTestECS()
	s.setGrounded(true)
	player, _ := createTestPlayer(e)
	coyote := components.CoyoteTime.Get(player)

	runFrame(e)
	s.setGrounded(false)
	for i := 0; i < 10; i++ {
		runFrame(e)
	}
	require.Less(t, coyote.Remaining(), coyote.Duration())

	s.setGrounded(true)
	runFrame(e)
	assert.Equal(t, coyote.Duration(), coyote.Remaining())
	assert.True(t, canJump(player))
}

func TestJumpEligibility_NoCoyoteRefreshDuringJumpDelay(t *testing.T) {
	e, s := newTestECS()
	s.setGrounded(true)
	player, _ := createTestPlayer(e)

	setIntent(player, 0, 1)
	runFrame(e)
	setIntent(player, 0, 0)

	// Still touching the ground on take-off.
	runFrame(e)
	assert.True(t, components.CoyoteTime.Get(player).Finished())
	assert.False(t, canJump(player))
}
