package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/coyote/config"
	"github.com/automoto/coyote/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Overlay is a widget layer drawn on top of a scene, e.g. an *ebitenui.UI.
type Overlay interface {
	Update()
	Draw(screen *ebiten.Image)
}

// TitleScene waits for the confirm action and then asks for the level.
type TitleScene struct {
	ecs     *ecs.ECS
	changer systems.ScreenChanger
	input   systems.InputSource
	overlay Overlay
	once    sync.Once
}

// NewTitleScene creates the title screen. overlay may be nil.
func NewTitleScene(changer systems.ScreenChanger, input systems.InputSource, overlay Overlay) *TitleScene {
	return &TitleScene{changer: changer, input: input, overlay: overlay}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
	if ts.overlay != nil {
		ts.overlay.Update()
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
	if ts.overlay != nil {
		ts.overlay.Draw(screen)
	}
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	ts.ecs.AddSystem(systems.NewUpdateTitle(ts.changer, ts.input))
	ts.ecs.AddRenderer(cfg.Default, systems.DrawTitle)
}

// LoadingScene runs load on its first update and then switches to the level.
type LoadingScene struct {
	changer systems.ScreenChanger
	load    func() error
	once    sync.Once
}

func NewLoadingScene(changer systems.ScreenChanger, load func() error) *LoadingScene {
	return &LoadingScene{changer: changer, load: load}
}

func (ls *LoadingScene) Update() {
	ls.once.Do(func() {
		next := cfg.ScreenPlaying
		if err := ls.load(); err != nil {
			log.Printf("Warning: loading failed: %v", err)
			next = cfg.ScreenTitle
		}
		ls.changer.ChangeScreen(next)
	})
}

func (ls *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	systems.DrawLoading(screen)
}
