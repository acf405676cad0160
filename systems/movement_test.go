package systems

import (
	"testing"

	"github.com/automoto/coyote/components"
	cfg "github.com/automoto/coyote/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestUpdateMovement_HorizontalDisplacementPerFrame(t *testing.T) {
	e, s := newTestECS()
	s.setGrounded(true)
	player, body := createTestPlayer(e)
	setIntent(player, 1, 0)

	start := body.Position().X
	for i := 1; i <= 120; i++ {
		prev := body.Position().X
		runFrame(e)
		require.InDelta(t, 7.0, body.Position().X-prev, 1e-5, "frame %d", i)
	}
	assert.InDelta(t, 7.0*120, body.Position().X-start, 1e-3)
}

func TestUpdateMovement_HorizontalLeavesVerticalAlone(t *testing.T) {
	e, _ := newTestECS()
	player, body := createTestPlayer(e)
	setIntent(player, -1, 0)
	body.SetVelocity(dmath.Vec2{X: 0, Y: -50})

	runFrame(e)

	assert.Less(t, body.Position().X, 200.0)
	assert.Equal(t, 228.0, body.Position().Y)
	assert.Equal(t, -50.0, body.Velocity().Y)
}

func TestUpdateMovement_GravityScaleTransitions(t *testing.T) {
	e, s := newTestECS()
	s.setGrounded(true)
	player, body := createTestPlayer(e)
	jumps := countJumps(e)

	setIntent(player, 0, 1)
	runFrame(e)
	require.Equal(t, 1, *jumps)
	assert.Equal(t, cfg.Movement.JumpImpulse, body.Velocity().Y)
	assert.Equal(t, 0.5, body.GravityScale(), "ascending with up held")

	// Apex: still holding up but no longer rising.
	s.setGrounded(false)
	body.SetVelocity(dmath.Vec2{X: 0, Y: 0.05})
	runFrame(e)
	assert.Equal(t, 1.0, body.GravityScale())

	// Fast fall ignores the vertical velocity.
	body.SetVelocity(dmath.Vec2{X: 0, Y: 300})
	setIntent(player, 0, -1)
	runFrame(e)
	assert.Equal(t, 1.5, body.GravityScale())

	body.SetVelocity(dmath.Vec2{X: 0, Y: -300})
	runFrame(e)
	assert.Equal(t, 1.5, body.GravityScale())

	assert.Equal(t, 1, *jumps)
}

func TestUpdateMovement_DeadZoneIsNeutralGravity(t *testing.T) {
	e, _ := newTestECS()
	player, body := createTestPlayer(e)
	body.SetGravityScale(1.5)

	setIntent(player, 0, 0.005)
	runFrame(e)
	assert.Equal(t, 1.0, body.GravityScale())

	setIntent(player, 0, -0.005)
	runFrame(e)
	assert.Equal(t, 1.0, body.GravityScale())
}

func TestUpdateMovement_JumpPublishesEventForEntity(t *testing.T) {
	e, s := newTestECS()
	s.setGrounded(true)
	player, _ := createTestPlayer(e)

	var got []components.JumpEvent
	components.JumpEvents.Subscribe(e.World, func(w donburi.World, ev components.JumpEvent) {
		got = append(got, ev)
	})

	setIntent(player, 0, 1)
	runFrame(e)

	require.Len(t, got, 1)
	assert.Equal(t, player.Entity(), got[0].Entity)
}

func TestUpdateMovement_SkipsEntitiesWithoutBody(t *testing.T) {
	e, _ := newTestECS()
	player, _ := createTestPlayer(e)
	components.Body.SetValue(player, components.BodyData{})
	setIntent(player, 1, 1)

	assert.NotPanics(t, func() { runFrame(e) })
}

func TestUpdateMovement_NoClockNoUpdate(t *testing.T) {
	e, _ := newTestECS()
	player, body := createTestPlayer(e)
	setIntent(player, 1, 0)

	UpdateMovement(e)

	assert.Equal(t, 200.0, body.Position().X)
}
