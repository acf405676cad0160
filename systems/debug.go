package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/coyote/components"
	cfg "github.com/automoto/coyote/config"
	"github.com/automoto/coyote/physics"
	"github.com/automoto/coyote/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Draw {
		return
	}
	v := newView(e.World, screen)

	if s, ok := levelSpace(e.World); ok {
		for _, b := range s.Bodies() {
			half := b.Shape().HalfExtents()
			if !v.visible(b.Position(), half.X, half.Y) {
				continue
			}
			x, y := v.toScreen(b.Position())
			c := debugColor(b)

			switch b.Shape().Kind {
			case physics.ShapeCircle:
				vector.StrokeCircle(screen, float32(x), float32(y), float32(b.Shape().Radius), 1, c, false)
			default:
				vector.StrokeRect(screen, float32(x-half.X), float32(y-half.Y), float32(half.X*2), float32(half.Y*2), 1, c, false)
			}
		}
	}

	// NPCs have no body
	npcColor := cfg.Debug.Colors["npc"]
	tags.NPC.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry).Vec2
		x, y := v.toScreen(pos)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(cfg.NPC.Radius), 1, npcColor, false)
	})

	if entry, ok := tags.Player.First(e.World); ok {
		ebitenutil.DebugPrint(screen, playerDebugText(e, entry))
	}
}

// debugColor picks the outline color by collider tag. Cyan is the default.
func debugColor(b physics.Body) color.RGBA {
	c := color.RGBA{0, 255, 255, 255}
	switch {
	case b.HasTag(physics.TagSolid):
		c = cfg.Debug.Colors["solid"]
	case b.HasTag(physics.TagPlayer):
		c = cfg.Debug.Colors["player"]
	case b.HasTag(physics.TagTrigger):
		c = cfg.Debug.Colors["trigger"]
	}
	return c
}

func playerDebugText(e *ecs.ECS, entry *donburi.Entry) string {
	fc := GetOrCreateFrameClock(e)
	text := fmt.Sprintf("frame %d  backend %s\n", fc.Frame, cfg.Physics.Backend)
	if entry.HasComponent(components.Grounded) {
		text += fmt.Sprintf("grounded %t\n", components.Grounded.Get(entry).OnGround)
	}
	if entry.HasComponent(components.CanJump) {
		text += fmt.Sprintf("can jump %t\n", components.CanJump.Get(entry).Allowed)
	}
	if entry.HasComponent(components.CoyoteTime) {
		if coyote := components.CoyoteTime.Get(entry); coyote.Timer != nil {
			text += fmt.Sprintf("coyote %v (%.0f%%)\n", coyote.Remaining(), coyote.Fraction()*100)
		}
	}
	if entry.HasComponent(components.JumpCount) {
		text += fmt.Sprintf("jumps %d\n", components.JumpCount.Get(entry).Count)
	}
	if entry.HasComponent(components.Body) {
		if b := components.Body.Get(entry).Body; b != nil {
			text += fmt.Sprintf("pos %.1f,%.1f vel %.1f,%.1f g %.1f\n",
				b.Position().X, b.Position().Y, b.Velocity().X, b.Velocity().Y, b.GravityScale())
		}
	}
	return text
}
