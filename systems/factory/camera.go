package factory

import (
	"github.com/automoto/coyote/archetypes"
	"github.com/automoto/coyote/components"
	"github.com/automoto/coyote/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateCamera creates the level camera already looking at focus.
func CreateCamera(ecs *ecs.ECS, width, height float64, focus dmath.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	data := components.CameraData{Bounds: dmath.Vec2{X: width, Y: height}}
	data.Position = systems.CameraTarget(&data, focus)
	components.Camera.SetValue(camera, data)
	return camera
}
