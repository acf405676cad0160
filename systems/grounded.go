package systems

import (
	"github.com/automoto/coyote/components"
	"github.com/automoto/coyote/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

var groundedQuery = donburi.NewQuery(filter.Contains(
	components.GroundCheck,
	components.Grounded,
	components.Body,
))

var down = dmath.Vec2{X: 0, Y: -1}

// UpdateGrounded casts each ground probe straight down from its body.
// Must run AFTER StepPhysics of the previous frame and BEFORE UpdateJumpEligibility.
func UpdateGrounded(e *ecs.ECS) {
	s, ok := levelSpace(e.World)
	if !ok {
		return
	}

	groundedQuery.Each(e.World, func(entry *donburi.Entry) {
		check := components.GroundCheck.Get(entry)
		body := components.Body.Get(entry).Body
		if body == nil {
			return
		}

		hit, found := s.CastShape(physics.ShapeCast{
			Shape:       check.Shape,
			Origin:      body.Position(),
			Direction:   down,
			MaxDistance: check.MaxDistance,
			Filter:      physics.QueryFilter{Exclude: entry.Entity()},
		})
		components.Grounded.Get(entry).OnGround = found && hit.Distance >= 0 && hit.Distance <= check.MaxDistance
	})
}
