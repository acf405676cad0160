package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/automoto/coyote/config"
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

//go:embed all:levels
var assetFS embed.FS

var ErrNoPlayerSpawn = errors.New("assets: no player spawn defined in map")

// Level is a parsed level layout in y-up world coordinates.
// Every position is the centre of the thing it places.
type Level struct {
	Name         string
	Width        float64
	Height       float64
	Solids       []SolidSpawn
	PlayerSpawns []math.Vec2
	Triggers     []TriggerSpawn
	NPCs         []NPCSpawn
	Labels       []LabelSpawn
}

type SolidSpawn struct {
	Position      math.Vec2
	Width, Height float64
}

type TriggerSpawn struct {
	Position math.Vec2
	Radius   float64
	Skin     SkinKey         // "" applies no skin
	Despawns string          // despawn group emptied on entry, "" for none
	Group    string          // despawn group the trigger itself belongs to
	GameOver config.ScreenID // ScreenNone for no transition
}

type NPCSpawn struct {
	Position math.Vec2
	Skin     SkinKey
	Group    string
}

type LabelSpawn struct {
	Position math.Vec2
	Text     string
	Group    string
}

// LoadEmbeddedLevel loads a level shipped with the binary, e.g. "levels/intro.tmx".
func LoadEmbeddedLevel(path string) (Level, error) {
	return LoadLevel(assetFS, path)
}

// LoadLevel parses a Tiled map. Object groups:
//
//	Solids       rectangles
//	PlayerSpawn  points
//	Triggers     points; properties skin, despawn, group, gameOver, radius
//	NPCs         points; properties skin, group
//	Labels       points; properties text, group
func LoadLevel(fsys fs.FS, path string) (Level, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return Level{}, fmt.Errorf("assets: load level %s: %w", path, err)
	}

	mapW := float64(levelMap.Width * levelMap.TileWidth)
	mapH := float64(levelMap.Height * levelMap.TileHeight)
	level := Level{
		Name:   path,
		Width:  mapW,
		Height: mapH,
	}

	// Tiled is y-down with the origin at the top-left corner.
	centre := func(o *tiled.Object) math.Vec2 {
		return math.Vec2{
			X: o.X + o.Width/2,
			Y: mapH - (o.Y + o.Height/2),
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Solids":
			for _, o := range og.Objects {
				level.Solids = append(level.Solids, SolidSpawn{
					Position: centre(o),
					Width:    o.Width,
					Height:   o.Height,
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, centre(o))
			}
			sort.Slice(level.PlayerSpawns, func(i, j int) bool {
				return level.PlayerSpawns[i].X < level.PlayerSpawns[j].X
			})
		case "Triggers":
			for _, o := range og.Objects {
				radius := o.Properties.GetFloat("radius")
				if radius <= 0 {
					radius = config.Trigger.Radius
				}
				level.Triggers = append(level.Triggers, TriggerSpawn{
					Position: centre(o),
					Radius:   radius,
					Skin:     SkinKey(o.Properties.GetString("skin")),
					Despawns: o.Properties.GetString("despawn"),
					Group:    o.Properties.GetString("group"),
					GameOver: config.ParseScreen(o.Properties.GetString("gameOver")),
				})
			}
		case "NPCs":
			for _, o := range og.Objects {
				level.NPCs = append(level.NPCs, NPCSpawn{
					Position: centre(o),
					Skin:     SkinKey(o.Properties.GetString("skin")),
					Group:    o.Properties.GetString("group"),
				})
			}
		case "Labels":
			for _, o := range og.Objects {
				level.Labels = append(level.Labels, LabelSpawn{
					Position: centre(o),
					Text:     o.Properties.GetString("text"),
					Group:    o.Properties.GetString("group"),
				})
			}
		}
	}

	if len(level.PlayerSpawns) == 0 {
		return Level{}, fmt.Errorf("%s: %w", path, ErrNoPlayerSpawn)
	}
	return level, nil
}

// DefaultLevel is the built-in three-encounter layout used when no map is given.
//
// The encounters keep their classic spacing (700, 1400 and 2300 px from the
// player spawn) but the whole layout is shifted by (originX, groundTop) so it
// lies in non-negative coordinates, and the ground is 20 segments long instead
// of 100. A finish trigger near the end returns to the title screen.
func DefaultLevel() Level {
	const (
		originX      = 200.0
		groundTop    = 100.0
		groundWidth  = 1000.0
		groundHeight = 50.0
		segments     = 20
	)
	npcY := groundTop + 64 + 32
	labelY := groundTop + 64 + 128 + 32

	level := Level{
		Name:         "default",
		Width:        groundWidth * segments,
		Height:       2048,
		PlayerSpawns: []math.Vec2{{X: originX, Y: groundTop + 128}},
	}
	for i := 0; i < segments; i++ {
		level.Solids = append(level.Solids, SolidSpawn{
			Position: math.Vec2{X: float64(i)*groundWidth + groundWidth/2, Y: groundTop - groundHeight/2},
			Width:    groundWidth,
			Height:   groundHeight,
		})
	}

	encounter := func(x float64, group string, skin SkinKey, text string, npcs ...NPCSpawn) {
		for _, n := range npcs {
			n.Group = group
			level.NPCs = append(level.NPCs, n)
		}
		level.Labels = append(level.Labels, LabelSpawn{
			Position: math.Vec2{X: npcs[len(npcs)-1].Position.X, Y: labelY},
			Text:     text,
			Group:    group,
		})
		level.Triggers = append(level.Triggers, TriggerSpawn{
			Position: math.Vec2{X: x + 300, Y: npcY},
			Radius:   config.Trigger.Radius,
			Skin:     skin,
			Despawns: group,
			Group:    group,
		})
	}

	fans := originX + 700
	encounter(fans, "Bevy fans", SkinBavy, "Have you heard of Bevy ?",
		NPCSpawn{Position: math.Vec2{X: fans, Y: npcY}, Skin: SkinMockersf},
		NPCSpawn{Position: math.Vec2{X: fans + 120, Y: npcY}, Skin: SkinJoshua},
	)
	job := originX + 1400
	encounter(job, "Bevy job", SkinJob, "Hey you look capable! What about getting a job?",
		NPCSpawn{Position: math.Vec2{X: job, Y: npcY}, Skin: SkinJob},
	)
	dev := originX + 2300
	encounter(dev, "Bevy dev", SkinJob, "A bevy user is a bevy developer who doesn't know it yet.",
		NPCSpawn{Position: math.Vec2{X: dev, Y: npcY}, Skin: SkinJoshua},
	)

	level.Triggers = append(level.Triggers, TriggerSpawn{
		Position: math.Vec2{X: level.Width - 500, Y: npcY},
		Radius:   config.Trigger.Radius,
		GameOver: config.ScreenTitle,
	})
	return level
}
