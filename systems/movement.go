package systems

import (
	"github.com/automoto/coyote/components"
	cfg "github.com/automoto/coyote/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

var movementQuery = donburi.NewQuery(filter.Contains(
	components.MovementController,
	components.Movement,
	components.CanJump,
	components.JumpDelay,
	components.CoyoteTime,
	components.Body,
))

// UpdateMovement moves controlled bodies horizontally, executes jumps and
// picks the gravity scale for the vertical intent.
// Must run AFTER UpdateJumpEligibility and BEFORE StepPhysics.
func UpdateMovement(e *ecs.ECS) {
	dt, ok := frameDelta(e.World)
	if !ok {
		return
	}
	secs := dt.Seconds()

	movementQuery.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry).Body
		jumpDelay := components.JumpDelay.Get(entry)
		coyote := components.CoyoteTime.Get(entry)
		if body == nil || jumpDelay.Timer == nil || coyote.Timer == nil {
			return
		}
		intent := components.MovementController.Get(entry).Intent
		speed := components.Movement.Get(entry).Speed

		// Horizontal motion bypasses the solver.
		pos := body.Position()
		body.SetPosition(dmath.Vec2{X: pos.X + speed*intent.X*secs, Y: pos.Y})

		switch {
		case intent.Y > cfg.Movement.InputThreshold:
			if components.CanJump.Get(entry).Allowed {
				jumpDelay.Reset()
				coyote.Finish()
				vel := body.Velocity()
				body.SetVelocity(dmath.Vec2{X: vel.X, Y: cfg.Movement.JumpImpulse})
				components.JumpEvents.Publish(e.World, components.JumpEvent{Entity: entry.Entity()})
			}
			if body.Velocity().Y > cfg.Movement.AscendVelocityThreshold {
				body.SetGravityScale(cfg.Movement.AscendingGravityScale)
			} else {
				body.SetGravityScale(cfg.Movement.NormalGravityScale)
			}
		case intent.Y < -cfg.Movement.InputThreshold:
			body.SetGravityScale(cfg.Movement.FastFallGravityScale)
		default:
			// Resting stick: neutral gravity, never fast-fall.
			body.SetGravityScale(cfg.Movement.NormalGravityScale)
		}
	})
}
