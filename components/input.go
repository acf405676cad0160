package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MovementControllerData holds this frame's movement intent.
// Both axes are in [-1, 1]; positive Y means up.
type MovementControllerData struct {
	Intent math.Vec2
}

var MovementController = donburi.NewComponentType[MovementControllerData]()
