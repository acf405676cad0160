package rigid

import (
	"testing"
	"time"

	"github.com/automoto/coyote/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type markerData struct{}

var marker = donburi.NewComponentType[markerData]()

const frame = time.Second / 60

func newTestEntities(n int) []donburi.Entity {
	w := donburi.NewWorld()
	out := make([]donburi.Entity, n)
	for i := range out {
		out[i] = w.Create(marker)
	}
	return out
}

// createTestGround adds a 1000x50 solid whose top edge is at y=25.
func createTestGround(s *Space, e donburi.Entity) physics.Body {
	return s.AddBody(physics.BodyDef{
		Entity: e,
		Kind:   physics.BodyStatic,
		Shape:  physics.NewBox(1000, 50),
		Tags:   []string{physics.TagSolid},
	})
}

func downCast(y float64, exclude donburi.Entity) physics.ShapeCast {
	return physics.ShapeCast{
		Shape:       physics.NewCircle(64),
		Origin:      dmath.Vec2{X: 0, Y: y},
		Direction:   dmath.Vec2{X: 0, Y: -1},
		MaxDistance: 10,
		Filter:      physics.QueryFilter{Exclude: exclude},
	}
}

func TestCastShape_HitsGroundWithinRange(t *testing.T) {
	es := newTestEntities(1)
	s := New(1962)
	createTestGround(s, es[0])

	hit, ok := s.CastShape(downCast(25+64+5, donburi.Null))
	require.True(t, ok)
	assert.Equal(t, es[0], hit.Entity)
	assert.InDelta(t, 5.0, hit.Distance, 1e-6)
}

func TestCastShape_MissesGroundOutOfRange(t *testing.T) {
	es := newTestEntities(1)
	s := New(1962)
	createTestGround(s, es[0])

	_, ok := s.CastShape(downCast(25+64+20, donburi.Null))
	assert.False(t, ok)
}

func TestCastShape_TouchingCountsAsZeroDistance(t *testing.T) {
	es := newTestEntities(1)
	s := New(1962)
	createTestGround(s, es[0])

	hit, ok := s.CastShape(downCast(25+64, donburi.Null))
	require.True(t, ok)
	assert.InDelta(t, 0.0, hit.Distance, 1e-9)

	hit, ok = s.CastShape(downCast(25+32, donburi.Null))
	require.True(t, ok, "overlapping start must still report a hit")
	assert.InDelta(t, 0.0, hit.Distance, 1e-9)
}

func TestCastShape_ExcludesOwnBody(t *testing.T) {
	es := newTestEntities(1)
	s := New(1962)
	s.AddBody(physics.BodyDef{
		Entity:   es[0],
		Shape:    physics.NewCircle(64),
		Position: dmath.Vec2{X: 0, Y: 100},
		Tags:     []string{physics.TagPlayer},
	})

	_, ok := s.CastShape(downCast(100, es[0]))
	assert.False(t, ok)

	_, ok = s.CastShape(downCast(100, donburi.Null))
	assert.True(t, ok)
}

func TestCastShape_IgnoresSensors(t *testing.T) {
	es := newTestEntities(1)
	s := New(1962)
	s.AddBody(physics.BodyDef{
		Entity: es[0],
		Kind:   physics.BodyStatic,
		Shape:  physics.NewCircle(320),
		Sensor: true,
		Tags:   []string{physics.TagTrigger},
	})

	_, ok := s.CastShape(downCast(0, donburi.Null))
	assert.False(t, ok)
}

func TestStep_AppliesPerBodyGravityScale(t *testing.T) {
	es := newTestEntities(2)
	s := New(1000)
	slow := s.AddBody(physics.BodyDef{Entity: es[0], Shape: physics.NewCircle(1), Position: dmath.Vec2{X: 0, Y: 0}})
	fast := s.AddBody(physics.BodyDef{Entity: es[1], Shape: physics.NewCircle(1), Position: dmath.Vec2{X: 100, Y: 0}})
	slow.SetGravityScale(0.5)
	fast.SetGravityScale(1.5)

	s.Step(frame)

	dt := frame.Seconds()
	assert.InDelta(t, -1000*0.5*dt, slow.Velocity().Y, 1e-9)
	assert.InDelta(t, -1000*1.5*dt, fast.Velocity().Y, 1e-9)
}

func TestStep_ReportsSensorContactStart(t *testing.T) {
	es := newTestEntities(2)
	trigger, player := es[0], es[1]
	s := New(1000)
	s.AddBody(physics.BodyDef{
		Entity: trigger,
		Kind:   physics.BodyStatic,
		Shape:  physics.NewCircle(50),
		Sensor: true,
	})
	s.AddBody(physics.BodyDef{
		Entity:   player,
		Shape:    physics.NewCircle(10),
		Position: dmath.Vec2{X: 0, Y: 200},
	})

	var events []physics.CollisionEvent
	for i := 0; i < 60; i++ {
		s.Step(frame)
		events = append(events, s.DrainCollisions()...)
	}

	require.NotEmpty(t, events)
	first := events[0]
	assert.Equal(t, physics.CollisionStarted, first.Kind)
	assert.ElementsMatch(t, []donburi.Entity{trigger, player}, []donburi.Entity{first.A, first.B})
	assert.Empty(t, s.DrainCollisions())
}

func TestRemoveEntity_IsIdempotent(t *testing.T) {
	es := newTestEntities(2)
	s := New(1962)
	createTestGround(s, es[0])
	s.AddBody(physics.BodyDef{Entity: es[1], Shape: physics.NewCircle(64), Position: dmath.Vec2{Y: 200}})
	require.Len(t, s.Bodies(), 2)

	s.RemoveEntity(es[1])
	s.RemoveEntity(es[1])
	s.RemoveEntity(donburi.Null)

	require.Len(t, s.Bodies(), 1)
	assert.Equal(t, es[0], s.Bodies()[0].Entity())
}

func TestSetPosition_MovesStaticBody(t *testing.T) {
	es := newTestEntities(1)
	s := New(1962)
	ground := createTestGround(s, es[0])

	ground.SetPosition(dmath.Vec2{X: 0, Y: -500})

	_, ok := s.CastShape(downCast(25+64, donburi.Null))
	assert.False(t, ok)
	assert.Equal(t, -500.0, ground.Position().Y)
}
