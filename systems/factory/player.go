package factory

import (
	"github.com/automoto/coyote/archetypes"
	"github.com/automoto/coyote/assets"
	"github.com/automoto/coyote/components"
	cfg "github.com/automoto/coyote/config"
	"github.com/automoto/coyote/physics"
	"github.com/automoto/coyote/systems"
	"github.com/automoto/coyote/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the controllable ball. Both jump timers start finished,
// so the player cannot jump before it has touched the ground once.
func CreatePlayer(ecs *ecs.ECS, pos dmath.Vec2, skins systems.SkinResolver) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Movement.SetValue(player, components.MovementData{
		Speed: cfg.Movement.Speed,
	})
	components.GroundCheck.SetValue(player, components.GroundCheckData{
		Shape:       physics.NewCircle(cfg.Ground.ProbeRadius),
		MaxDistance: cfg.Ground.MaxDistance,
	})
	components.JumpDelay.SetValue(player, components.JumpDelayData{
		Timer: timer.NewFinished(cfg.Movement.JumpDelay),
	})
	components.CoyoteTime.SetValue(player, components.CoyoteTimeData{
		Timer: timer.NewFinished(cfg.Movement.CoyoteTime),
	})

	key := assets.SkinKey(cfg.Player.Skin)
	skin := components.SkinData{Key: key}
	if skins != nil {
		skin.Image, _ = skins.Resolve(key)
	}
	components.Skin.SetValue(player, skin)

	addBody(ecs, player, physics.BodyDef{
		Kind:     physics.BodyDynamic,
		Shape:    physics.NewCircle(cfg.Player.Radius),
		Position: pos,
		Mass:     cfg.Player.Mass,
		Tags:     []string{physics.TagPlayer},
	})

	return player
}
