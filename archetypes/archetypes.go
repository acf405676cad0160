package archetypes

import (
	"github.com/automoto/coyote/components"
	cfg "github.com/automoto/coyote/config"
	"github.com/automoto/coyote/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.MovementController,
		components.Movement,
		components.GroundCheck,
		components.Grounded,
		components.JumpDelay,
		components.CoyoteTime,
		components.CanJump,
		components.JumpCount,
		components.Body,
		components.Skin,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Body,
	)
	Trigger = newArchetype(
		tags.OnTrigger,
		components.Body,
	)
	NPC = newArchetype(
		tags.NPC,
		components.Position,
		components.Skin,
		components.DespawnGroup,
	)
	Label = newArchetype(
		components.Position,
		components.Label,
		components.DespawnGroup,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	FrameClock = newArchetype(
		components.FrameClock,
	)
	ScreenRequests = newArchetype(
		components.ScreenRequests,
	)
	DespawnQueue = newArchetype(
		components.DespawnQueue,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
