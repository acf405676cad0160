package systems

import (
	"github.com/automoto/coyote/components"
	"github.com/automoto/coyote/physics"
	"github.com/automoto/coyote/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTriggers turns this frame's collision starts into TriggerEvents, one
// per trigger-tagged side of the pair. Collision stops are dropped.
// Must run AFTER StepPhysics and BEFORE ProcessEvents.
func UpdateTriggers(e *ecs.ECS) {
	s, ok := levelSpace(e.World)
	if !ok {
		return
	}

	for _, ev := range s.DrainCollisions() {
		if ev.Kind != physics.CollisionStarted {
			continue
		}
		if isTrigger(e.World, ev.A) {
			components.TriggerEvents.Publish(e.World, components.TriggerEvent{Trigger: ev.A, Other: ev.B})
		}
		if isTrigger(e.World, ev.B) {
			components.TriggerEvents.Publish(e.World, components.TriggerEvent{Trigger: ev.B, Other: ev.A})
		}
	}
}

func isTrigger(w donburi.World, entity donburi.Entity) bool {
	if entity == donburi.Null || !w.Valid(entity) {
		return false
	}
	return w.Entry(entity).HasComponent(tags.OnTrigger)
}

// ProcessEvents delivers every queued TriggerEvent and then every JumpEvent
// to their subscribers. Both queues are empty afterwards.
func ProcessEvents(e *ecs.ECS) {
	components.TriggerEvents.ProcessEvents(e.World)
	components.JumpEvents.ProcessEvents(e.World)
}
