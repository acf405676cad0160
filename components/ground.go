package components

import (
	"github.com/automoto/coyote/physics"
	"github.com/yohamta/donburi"
)

// GroundCheckData marks an entity whose ground contact is probed every frame.
type GroundCheckData struct {
	Shape       physics.Shape
	MaxDistance float64
}

var GroundCheck = donburi.NewComponentType[GroundCheckData]()

type GroundedData struct {
	OnGround bool
}

var Grounded = donburi.NewComponentType[GroundedData]()
