package factory

import (
	"github.com/automoto/coyote/archetypes"
	"github.com/automoto/coyote/assets"
	"github.com/automoto/coyote/components"
	cfg "github.com/automoto/coyote/config"
	"github.com/automoto/coyote/physics"
	"github.com/automoto/coyote/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSolid creates a static box the player stands on.
func CreateSolid(ecs *ecs.ECS, spawn assets.SolidSpawn) *donburi.Entry {
	solid := archetypes.Solid.Spawn(ecs)
	addBody(ecs, solid, physics.BodyDef{
		Kind:     physics.BodyStatic,
		Shape:    physics.NewBox(spawn.Width, spawn.Height),
		Position: spawn.Position,
		Tags:     []string{physics.TagSolid},
	})
	return solid
}

// CreateTrigger creates a sensor volume. Only the reactions the spawn names
// get their component, so each handler finds exactly the triggers it serves.
func CreateTrigger(ecs *ecs.ECS, spawn assets.TriggerSpawn) *donburi.Entry {
	trigger := archetypes.Trigger.Spawn(ecs)

	if spawn.Skin != "" {
		donburi.Add(trigger, components.SkinRequest, &components.SkinRequestData{Key: spawn.Skin})
	}
	if spawn.Despawns != "" {
		donburi.Add(trigger, components.Despawner, &components.DespawnerData{GroupID: spawn.Despawns})
	}
	if spawn.Group != "" {
		donburi.Add(trigger, components.DespawnGroup, &components.DespawnGroupData{ID: spawn.Group})
	}
	if spawn.GameOver != cfg.ScreenNone {
		donburi.Add(trigger, components.GameOver, &components.GameOverData{Next: spawn.GameOver})
	}

	addBody(ecs, trigger, physics.BodyDef{
		Kind:     physics.BodyStatic,
		Shape:    physics.NewCircle(spawn.Radius),
		Position: spawn.Position,
		Sensor:   true,
		Tags:     []string{physics.TagTrigger},
	})
	return trigger
}

// CreateNPC creates a decorative character. NPCs have no body.
func CreateNPC(ecs *ecs.ECS, spawn assets.NPCSpawn, skins systems.SkinResolver) *donburi.Entry {
	npc := archetypes.NPC.Spawn(ecs)
	components.Position.SetValue(npc, components.PositionData{Vec2: spawn.Position})
	components.DespawnGroup.SetValue(npc, components.DespawnGroupData{ID: spawn.Group})

	skin := components.SkinData{Key: spawn.Skin}
	if skins != nil {
		skin.Image, _ = skins.Resolve(spawn.Skin)
	}
	components.Skin.SetValue(npc, skin)
	return npc
}

func CreateLabel(ecs *ecs.ECS, spawn assets.LabelSpawn) *donburi.Entry {
	label := archetypes.Label.Spawn(ecs)
	components.Position.SetValue(label, components.PositionData{Vec2: spawn.Position})
	components.Label.SetValue(label, components.LabelData{Text: spawn.Text})
	components.DespawnGroup.SetValue(label, components.DespawnGroupData{ID: spawn.Group})
	return label
}

// SpawnLevel creates every entity of a level layout. The space must exist.
// The first player spawn point is used, and the camera starts there.
func SpawnLevel(ecs *ecs.ECS, level assets.Level, skins systems.SkinResolver) {
	for _, s := range level.Solids {
		CreateSolid(ecs, s)
	}
	for _, t := range level.Triggers {
		CreateTrigger(ecs, t)
	}
	for _, n := range level.NPCs {
		CreateNPC(ecs, n, skins)
	}
	for _, l := range level.Labels {
		CreateLabel(ecs, l)
	}
	if len(level.PlayerSpawns) > 0 {
		CreatePlayer(ecs, level.PlayerSpawns[0], skins)
		CreateCamera(ecs, level.Width, level.Height, level.PlayerSpawns[0])
	}
}
