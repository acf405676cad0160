package scenes

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/automoto/coyote/assets"
	"github.com/automoto/coyote/components"
	cfg "github.com/automoto/coyote/config"
	"github.com/automoto/coyote/systems"
	"github.com/automoto/coyote/systems/factory"
	"github.com/automoto/coyote/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoPlayer = errors.New("scenes: level has no player")

// LevelOptions are the collaborators a level scene is built with. Zero values
// fall back to ebiten input, the ebiten tick rate and no skins.
type LevelOptions struct {
	Input systems.InputSource
	Clock systems.Clock
	Skins systems.SkinResolver
}

// LevelScene runs one level.
type LevelScene struct {
	ecs *ecs.ECS
}

// NewLevelScene spawns level into a fresh world and registers the frame systems.
func NewLevelScene(changer systems.ScreenChanger, level assets.Level, opts LevelOptions) (*LevelScene, error) {
	if opts.Input == nil {
		opts.Input = systems.NewEbitenInput()
	}
	if opts.Clock == nil {
		opts.Clock = systems.TPSClock{}
	}
	if opts.Skins == nil {
		opts.Skins = assets.SkinSet{}
	}

	e := ecs.NewECS(donburi.NewWorld())

	// The space must exist before anything with a body is created.
	if _, err := factory.CreateSpace(e, level.Width, level.Height); err != nil {
		return nil, err
	}
	factory.SpawnLevel(e, level, opts.Skins)
	if _, ok := tags.Player.First(e.World); !ok {
		return nil, fmt.Errorf("%s: %w", level.Name, ErrNoPlayer)
	}

	e.AddSystem(systems.NewAdvanceClock(opts.Clock))
	e.AddSystem(systems.NewRecordInput(opts.Input))

	// Strict chain: grounded -> eligibility -> movement
	e.AddSystem(systems.UpdateGrounded)
	e.AddSystem(systems.UpdateJumpEligibility)
	e.AddSystem(systems.UpdateMovement)

	e.AddSystem(systems.StepPhysics)
	e.AddSystem(systems.UpdateTriggers)
	e.AddSystem(systems.ProcessEvents)
	e.AddSystem(systems.FlushDespawns)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.NewResolveScreen(changer))

	components.TriggerEvents.Subscribe(e.World, systems.OnTriggerChangeSkin(opts.Skins))
	components.TriggerEvents.Subscribe(e.World, systems.OnTriggerDespawnGroup)
	components.TriggerEvents.Subscribe(e.World, systems.OnTriggerGameOver)
	components.JumpEvents.Subscribe(e.World, systems.OnJumpCount)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	return &LevelScene{ecs: e}, nil
}

func (ls *LevelScene) Update() {
	ls.ecs.Update()
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ls.ecs.Draw(screen)
}

// World exposes the scene's entities.
func (ls *LevelScene) World() donburi.World {
	return ls.ecs.World
}
