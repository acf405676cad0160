package factory

import (
	"fmt"
	"math"

	"github.com/automoto/coyote/archetypes"
	"github.com/automoto/coyote/components"
	cfg "github.com/automoto/coyote/config"
	"github.com/automoto/coyote/physics"
	"github.com/automoto/coyote/physics/kinematic"
	"github.com/automoto/coyote/physics/rigid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the physics space singleton for a level of the given
// size, using the backend selected in config.
func CreateSpace(ecs *ecs.ECS, width, height float64) (*donburi.Entry, error) {
	var s physics.Space
	switch cfg.Physics.Backend {
	case cfg.BackendRigid:
		s = rigid.New(cfg.Physics.Gravity)
	case cfg.BackendKinematic:
		cell := cfg.Physics.CellSize
		if cell <= 0 {
			return nil, fmt.Errorf("factory: create space: cell size %d must be positive", cell)
		}
		s = kinematic.New(gridSize(width, cell), gridSize(height, cell), cell, cfg.Physics.Gravity)
	default:
		return nil, fmt.Errorf("factory: create space: %w: %q", cfg.ErrUnknownBackend, cfg.Physics.Backend)
	}

	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{Space: s})
	return space, nil
}

// gridSize rounds size up to a whole number of cells, so the grid covers
// the level's right and top edges.
func gridSize(size float64, cell int) int {
	cells := int(math.Ceil(size / float64(cell)))
	return max(cells, 1) * cell
}

// addBody adds a body for entry to the level's space and stores it on entry.
func addBody(ecs *ecs.ECS, entry *donburi.Entry, def physics.BodyDef) physics.Body {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	def.Entity = entry.Entity()
	body := components.Space.Get(spaceEntry).AddBody(def)
	components.Body.SetValue(entry, components.BodyData{Body: body})
	return body
}
