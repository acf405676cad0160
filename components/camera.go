package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2 // world point drawn at the screen centre
	LookAheadX float64   // Current smoothed X offset for look-ahead
	// Bounds is the level size; the view never leaves [0,Bounds]
	Bounds math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
