package components

import (
	"github.com/automoto/coyote/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SkinRequestData is carried by a trigger: the skin applied to whatever enters it.
type SkinRequestData struct {
	Key assets.SkinKey
}

var SkinRequest = donburi.NewComponentType[SkinRequestData]()

// SkinData is the render skin of an entity. Image is nil until resolved.
type SkinData struct {
	Key   assets.SkinKey
	Image *ebiten.Image
}

var Skin = donburi.NewComponentType[SkinData]()
