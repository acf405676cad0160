package systems

import (
	"image/color"

	"github.com/automoto/coyote/components"
	cfg "github.com/automoto/coyote/config"
	"github.com/automoto/coyote/fonts"
	"github.com/automoto/coyote/physics"
	"github.com/automoto/coyote/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	backgroundColor = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	groundColor     = color.RGBA{R: 70, G: 60, B: 50, A: 255}
	labelColor      = color.RGBA{R: 20, G: 20, B: 40, A: 255}
)

// view maps y-up world coordinates to screen pixels, centred on the camera.
type view struct {
	centre dmath.Vec2
	w, h   float64
}

func newView(world donburi.World, screen *ebiten.Image) view {
	v := view{
		w: float64(screen.Bounds().Dx()),
		h: float64(screen.Bounds().Dy()),
	}
	if entry, ok := components.Camera.First(world); ok {
		v.centre = components.Camera.Get(entry).Position
		return v
	}
	// No camera: centre on the player
	if entry, ok := tags.Player.First(world); ok && entry.HasComponent(components.Body) {
		if b := components.Body.Get(entry).Body; b != nil {
			p := b.Position()
			v.centre = dmath.Vec2{X: p.X, Y: p.Y + cfg.Camera.Lift}
		}
	}
	return v
}

func (v view) toScreen(p dmath.Vec2) (x, y float64) {
	return p.X - v.centre.X + v.w/2, v.h/2 - (p.Y - v.centre.Y)
}

// visible reports whether a box of the given half size around p is on screen.
func (v view) visible(p dmath.Vec2, halfW, halfH float64) bool {
	x, y := v.toScreen(p)
	return x+halfW >= 0 && x-halfW <= v.w && y+halfH >= 0 && y-halfH <= v.h
}

// DrawLevel renders the ground, skins and labels.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	v := newView(e.World, screen)

	if s, ok := levelSpace(e.World); ok {
		for _, b := range s.Bodies() {
			if !b.HasTag(physics.TagSolid) {
				continue
			}
			half := b.Shape().HalfExtents()
			if !v.visible(b.Position(), half.X, half.Y) {
				continue
			}
			x, y := v.toScreen(b.Position())
			vector.FillRect(screen, float32(x-half.X), float32(y-half.Y), float32(half.X*2), float32(half.Y*2), groundColor, false)
		}
	}

	components.Skin.Each(e.World, func(entry *donburi.Entry) {
		skin := components.Skin.Get(entry)
		if skin.Image == nil {
			return
		}
		pos, size, ok := entityBounds(entry)
		if !ok || !v.visible(pos, size/2, size/2) {
			return
		}

		x, y := v.toScreen(pos)
		bounds := skin.Image.Bounds()
		drawOp.GeoM.Reset()
		drawOp.GeoM.Scale(size/float64(bounds.Dx()), size/float64(bounds.Dy()))
		drawOp.GeoM.Translate(x-size/2, y-size/2)
		screen.DrawImage(skin.Image, drawOp)
	})

	face, hasFace := fonts.Label.Face()
	components.Label.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry).Vec2
		x, y := v.toScreen(pos)
		label := components.Label.Get(entry).Text
		if !hasFace {
			ebitenutil.DebugPrintAt(screen, label, int(x), int(y))
			return
		}
		// Centre the text on its position
		bounds := text.BoundString(face, label) //nolint:staticcheck // TODO: migrate to text/v2
		text.Draw(screen, label, face, int(x)-bounds.Dx()/2, int(y), labelColor)
	})
}

// entityBounds returns the centre and drawn size of a skinned entity.
func entityBounds(entry *donburi.Entry) (dmath.Vec2, float64, bool) {
	if entry.HasComponent(components.Body) {
		if b := components.Body.Get(entry).Body; b != nil {
			return b.Position(), b.Shape().Width, true
		}
	}
	if entry.HasComponent(components.Position) {
		return components.Position.Get(entry).Vec2, cfg.NPC.Radius * 2, true
	}
	return dmath.Vec2{}, 0, false
}
