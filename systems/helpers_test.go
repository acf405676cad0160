package systems

import (
	"slices"
	"time"

	"github.com/automoto/coyote/archetypes"
	"github.com/automoto/coyote/assets"
	"github.com/automoto/coyote/components"
	cfg "github.com/automoto/coyote/config"
	"github.com/automoto/coyote/physics"
	"github.com/automoto/coyote/timer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const frame = time.Second / 60

type fakeBody struct {
	def   physics.BodyDef
	pos   dmath.Vec2
	vel   dmath.Vec2
	scale float64
}

func (b *fakeBody) Entity() donburi.Entity        { return b.def.Entity }
func (b *fakeBody) Shape() physics.Shape          { return b.def.Shape }
func (b *fakeBody) Sensor() bool                  { return b.def.Sensor }
func (b *fakeBody) HasTag(tag string) bool        { return slices.Contains(b.def.Tags, tag) }
func (b *fakeBody) Position() dmath.Vec2          { return b.pos }
func (b *fakeBody) SetPosition(p dmath.Vec2)      { b.pos = p }
func (b *fakeBody) Velocity() dmath.Vec2          { return b.vel }
func (b *fakeBody) SetVelocity(v dmath.Vec2)      { b.vel = v }
func (b *fakeBody) GravityScale() float64         { return b.scale }
func (b *fakeBody) SetGravityScale(scale float64) { b.scale = scale }

// fakeSpace answers every cast with hit (nil for no ground) and hands out
// queued collision events. Step integrates nothing.
type fakeSpace struct {
	bodies  []*fakeBody
	hit     *physics.Hit
	casts   []physics.ShapeCast
	queued  []physics.CollisionEvent
	steps   []time.Duration
	removed []donburi.Entity
}

func (s *fakeSpace) AddBody(def physics.BodyDef) physics.Body {
	b := &fakeBody{def: def, pos: def.Position, scale: 1}
	s.bodies = append(s.bodies, b)
	return b
}

func (s *fakeSpace) RemoveEntity(e donburi.Entity) {
	s.removed = append(s.removed, e)
	s.bodies = slices.DeleteFunc(s.bodies, func(b *fakeBody) bool { return b.def.Entity == e })
}

func (s *fakeSpace) CastShape(cast physics.ShapeCast) (physics.Hit, bool) {
	s.casts = append(s.casts, cast)
	if s.hit == nil {
		return physics.Hit{}, false
	}
	return *s.hit, true
}

func (s *fakeSpace) Step(dt time.Duration) {
	s.steps = append(s.steps, dt)
}

func (s *fakeSpace) DrainCollisions() []physics.CollisionEvent {
	events := s.queued
	s.queued = nil
	return events
}

func (s *fakeSpace) Bodies() []physics.Body {
	out := make([]physics.Body, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = b
	}
	return out
}

func (s *fakeSpace) setGrounded(grounded bool) {
	if grounded {
		s.hit = &physics.Hit{Distance: 0}
		return
	}
	s.hit = nil
}

// newTestECS returns a world with a fake space and a 1/60s frame clock.
func newTestECS() (*ecs.ECS, *fakeSpace) {
	e := ecs.NewECS(donburi.NewWorld())
	s := &fakeSpace{}
	space := archetypes.Space.Spawn(e)
	components.Space.SetValue(space, components.SpaceData{Space: s})
	return e, s
}

func addTestBody(e *ecs.ECS, entry *donburi.Entry, def physics.BodyDef) *fakeBody {
	s, _ := levelSpace(e.World)
	def.Entity = entry.Entity()
	body := s.AddBody(def)
	if !entry.HasComponent(components.Body) {
		entry.AddComponent(components.Body)
	}
	components.Body.SetValue(entry, components.BodyData{Body: body})
	return body.(*fakeBody)
}

// createTestPlayer spawns a player the way the level factory does.
func createTestPlayer(e *ecs.ECS) (*donburi.Entry, *fakeBody) {
	player := archetypes.Player.Spawn(e)
	components.Movement.SetValue(player, components.MovementData{Speed: cfg.Movement.Speed})
	components.GroundCheck.SetValue(player, components.GroundCheckData{
		Shape:       physics.NewCircle(cfg.Ground.ProbeRadius),
		MaxDistance: cfg.Ground.MaxDistance,
	})
	components.JumpDelay.SetValue(player, components.JumpDelayData{Timer: timer.NewFinished(cfg.Movement.JumpDelay)})
	components.CoyoteTime.SetValue(player, components.CoyoteTimeData{Timer: timer.NewFinished(cfg.Movement.CoyoteTime)})
	components.Skin.SetValue(player, components.SkinData{Key: assets.SkinDucky})

	body := addTestBody(e, player, physics.BodyDef{
		Kind:     physics.BodyDynamic,
		Shape:    physics.NewCircle(cfg.Player.Radius),
		Position: dmath.Vec2{X: 200, Y: 228},
		Tags:     []string{physics.TagPlayer},
	})
	return player, body
}

func setIntent(player *donburi.Entry, x, y float64) {
	components.MovementController.Get(player).Intent = dmath.Vec2{X: x, Y: y}
}

// runFrame runs the movement chain and event delivery for one frame.
func runFrame(e *ecs.ECS) {
	NewAdvanceClock(FixedClock(frame))(e)
	UpdateGrounded(e)
	UpdateJumpEligibility(e)
	UpdateMovement(e)
	StepPhysics(e)
	UpdateTriggers(e)
	ProcessEvents(e)
	FlushDespawns(e)
}

func canJump(player *donburi.Entry) bool {
	return components.CanJump.Get(player).Allowed
}

// countJumps subscribes a counter to the world's jump events.
func countJumps(e *ecs.ECS) *int {
	n := new(int)
	components.JumpEvents.Subscribe(e.World, func(w donburi.World, ev components.JumpEvent) {
		*n++
	})
	return n
}

type fakeResolver map[assets.SkinKey]*ebiten.Image

func (r fakeResolver) Resolve(key assets.SkinKey) (*ebiten.Image, bool) {
	img, ok := r[key]
	return img, ok
}

type fakeChanger struct {
	screens []cfg.ScreenID
}

func (c *fakeChanger) ChangeScreen(id cfg.ScreenID) {
	c.screens = append(c.screens, id)
}

type fakeInput struct {
	pressed map[cfg.ActionID]bool
	x, y    float64
}

func (in *fakeInput) ActionPressed(id cfg.ActionID) bool { return in.pressed[id] }
func (in *fakeInput) Stick() (float64, float64)          { return in.x, in.y }
