package components

import (
	"github.com/automoto/coyote/physics"
	"github.com/yohamta/donburi"
)

type SpaceData struct {
	physics.Space
}

var Space = donburi.NewComponentType[SpaceData]()
