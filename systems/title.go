package systems

import (
	"image/color"

	cfg "github.com/automoto/coyote/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var titleColor = color.RGBA{R: 255, G: 220, B: 0, A: 255}

// NewUpdateTitle leaves the title screen when confirm is pressed. A confirm
// that is already held when the screen opens is ignored until released.
func NewUpdateTitle(changer ScreenChanger, src InputSource) ecs.System {
	held := true
	return func(e *ecs.ECS) {
		pressed := src.ActionPressed(cfg.ActionConfirm)
		if pressed && !held {
			changer.ChangeScreen(cfg.ScreenLoading)
		}
		held = pressed
	}
}

func DrawTitle(e *ecs.ECS, screen *ebiten.Image) {
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	vector.FillCircle(screen, w/2, h/5, 48, titleColor, true)
	ebitenutil.DebugPrintAt(screen, "Press Enter to start", int(w/2)-60, int(h)-40)
}

func DrawLoading(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "Loading...", screen.Bounds().Dx()/2-30, screen.Bounds().Dy()/2)
}
