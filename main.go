package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/coyote/assets"
	"github.com/automoto/coyote/config"
	"github.com/automoto/coyote/fonts"
	"github.com/automoto/coyote/scenes"
	"github.com/automoto/coyote/systems"
	"github.com/automoto/coyote/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds    image.Rectangle
	scene     Scene
	input     systems.InputSource
	skins     assets.SkinSet
	levelPath string
	level     assets.Level
	watcher   *config.TuningWatcher

	debugHeld bool
}

// ChangeScreen switches to the scene of the given screen
func (g *Game) ChangeScreen(id config.ScreenID) {
	switch id {
	case config.ScreenTitle:
		g.showTitle()
	case config.ScreenLoading:
		g.scene = scenes.NewLoadingScene(g, g.loadLevel)
	case config.ScreenPlaying:
		scene, err := scenes.NewLevelScene(g, g.level, scenes.LevelOptions{
			Input: g.input,
			Clock: systems.TPSClock{},
			Skins: g.skins,
		})
		if err != nil {
			log.Printf("Warning: could not start level: %v", err)
			g.showTitle()
			return
		}
		g.scene = scene
	}
}

func (g *Game) showTitle() {
	panel := ui.NewTitleUI(string(config.Physics.Backend), func() {
		g.ChangeScreen(config.ScreenLoading)
	})
	g.scene = scenes.NewTitleScene(g, g.input, panel.UI)
}

// loadLevel reads the -level map, or falls back to the built-in layout.
func (g *Game) loadLevel() error {
	if g.levelPath == "" {
		g.level = assets.DefaultLevel()
		return nil
	}
	level, err := assets.LoadLevel(os.DirFS(filepath.Dir(g.levelPath)), filepath.Base(g.levelPath))
	if err != nil {
		return err
	}
	g.level = level
	return nil
}

func NewGame(levelPath string, watcher *config.TuningWatcher) *Game {
	g := &Game{
		bounds:    image.Rectangle{},
		input:     systems.NewEbitenInput(),
		skins:     assets.NewPlaceholderSkins(64),
		levelPath: levelPath,
		watcher:   watcher,
	}

	if config.Debug.SkipTitle {
		g.ChangeScreen(config.ScreenLoading)
	} else {
		g.ChangeScreen(config.ScreenTitle)
	}

	return g
}

func (g *Game) Update() error {
	g.applyTuning()

	debug := g.input.ActionPressed(config.ActionToggleDebug)
	if debug && !g.debugHeld {
		config.Debug.Draw = !config.Debug.Draw
	}
	g.debugHeld = debug

	g.scene.Update()
	return nil
}

// applyTuning applies reloaded tuning between frames.
func (g *Game) applyTuning() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case t := <-g.watcher.Updates:
			t.Apply()
			log.Printf("Tuning reloaded")
		case err := <-g.watcher.Errors:
			log.Printf("Warning: tuning reload failed: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelPath := flag.String("level", "", "Tiled map to play (default: built-in level)")
	tuningPath := flag.String("tuning", "", "YAML tuning file, reloaded on change")
	backend := flag.String("backend", "", "Physics backend: rigid or kinematic")
	skipTitle := flag.Bool("skip-title", false, "Start directly in the level")
	flag.Parse()

	var overrides config.Overrides
	if *backend != "" {
		b, err := config.ParseBackend(*backend)
		if err != nil {
			log.Fatal(err)
		}
		overrides.Backend = b
	}
	overrides.SkipTitle = *skipTitle

	// Flags win over the tuning file, including on every reload.
	var watcher *config.TuningWatcher
	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Printf("Warning: Could not load tuning: %v", err)
		} else {
			t.Apply()
		}
	}
	overrides.Over(config.CurrentTuning()).Apply()

	if *tuningPath != "" {
		var err error
		watcher, err = config.WatchTuning(*tuningPath, overrides)
		if err != nil {
			log.Printf("Warning: Could not watch tuning: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: Could not load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("coyote")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(*levelPath, watcher)); err != nil {
		log.Fatal(err)
	}
}
