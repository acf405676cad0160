package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// StepPhysics advances the physics backend by this frame's delta. The
// collision events it produces are left queued for UpdateTriggers.
func StepPhysics(e *ecs.ECS) {
	s, ok := levelSpace(e.World)
	if !ok {
		return
	}
	dt, ok := frameDelta(e.World)
	if !ok {
		return
	}
	s.Step(dt)
}
