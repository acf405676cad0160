package assets

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SkinKey names a character skin.
type SkinKey string

const (
	SkinDucky    SkinKey = "ducky"
	SkinBavy     SkinKey = "bavy"
	SkinJob      SkinKey = "job"
	SkinJoshua   SkinKey = "joshua"
	SkinMockersf SkinKey = "mockersf"
)

var skinColors = map[SkinKey]color.RGBA{
	SkinDucky:    {R: 255, G: 220, B: 0, A: 255},
	SkinBavy:     {R: 90, G: 60, B: 40, A: 255},
	SkinJob:      {R: 40, G: 120, B: 220, A: 255},
	SkinJoshua:   {R: 200, G: 60, B: 60, A: 255},
	SkinMockersf: {R: 60, G: 180, B: 90, A: 255},
}

// SkinSet resolves skin keys to images.
type SkinSet map[SkinKey]*ebiten.Image

func (s SkinSet) Resolve(key SkinKey) (*ebiten.Image, bool) {
	img, ok := s[key]
	return img, ok
}

// NewPlaceholderSkins builds a flat colored square for every known skin.
func NewPlaceholderSkins(size int) SkinSet {
	set := make(SkinSet, len(skinColors))
	for key, c := range skinColors {
		img := ebiten.NewImage(size, size)
		img.Fill(c)
		set[key] = img
	}
	return set
}
