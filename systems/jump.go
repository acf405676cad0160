package systems

import (
	"github.com/automoto/coyote/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var jumpEligibilityQuery = donburi.NewQuery(filter.Contains(
	components.Grounded,
	components.JumpDelay,
	components.CoyoteTime,
	components.CanJump,
))

// UpdateJumpEligibility advances the jump delay and coyote timers and derives CanJump.
// Must run AFTER UpdateGrounded and BEFORE UpdateMovement.
func UpdateJumpEligibility(e *ecs.ECS) {
	dt, ok := frameDelta(e.World)
	if !ok {
		return
	}

	jumpEligibilityQuery.Each(e.World, func(entry *donburi.Entry) {
		jumpDelay := components.JumpDelay.Get(entry)
		coyote := components.CoyoteTime.Get(entry)
		if jumpDelay.Timer == nil || coyote.Timer == nil {
			return
		}

		jumpDelay.Tick(dt)
		if components.Grounded.Get(entry).OnGround {
			// No refresh while the jump delay runs, or a jump would re-arm itself on take-off.
			if jumpDelay.Finished() {
				coyote.Reset()
			}
		} else {
			coyote.Tick(dt)
		}

		allowed := !coyote.Finished() && jumpDelay.Finished()
		if canJump := components.CanJump.Get(entry); canJump.Allowed != allowed {
			canJump.Allowed = allowed
		}
	})
}
