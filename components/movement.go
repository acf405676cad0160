package components

import "github.com/yohamta/donburi"

// MovementData is copied from config when the entity spawns.
type MovementData struct {
	Speed float64 // px/s
}

var Movement = donburi.NewComponentType[MovementData]()
