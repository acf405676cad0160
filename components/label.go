package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PositionData places entities that have no physics body.
type PositionData struct {
	math.Vec2
}

var Position = donburi.NewComponentType[PositionData]()

type LabelData struct {
	Text string
}

var Label = donburi.NewComponentType[LabelData]()
