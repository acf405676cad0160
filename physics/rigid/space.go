// Package rigid implements physics.Space on top of the Chipmunk2D port.
package rigid

import (
	"math"
	"time"

	"github.com/automoto/coyote/physics"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

const collisionBody cp.CollisionType = 1

// Space is a Chipmunk space that records contact begin/separate callbacks.
type Space struct {
	space  *cp.Space
	bodies []*body
	events []physics.CollisionEvent
}

// New creates a space pulling toward negative Y with the given acceleration.
func New(gravity float64) *Space {
	s := &Space{space: cp.NewSpace()}
	s.space.SetGravity(cp.Vector{X: 0, Y: -gravity})

	handler := s.space.NewCollisionHandler(collisionBody, collisionBody)
	handler.BeginFunc = s.begin
	handler.SeparateFunc = s.separate
	return s
}

func (s *Space) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Shapes()
	s.events = append(s.events, physics.CollisionEvent{
		Kind: physics.CollisionStarted,
		A:    entityOf(a),
		B:    entityOf(b),
	})
	return true
}

func (s *Space) separate(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
	a, b := arb.Shapes()
	s.events = append(s.events, physics.CollisionEvent{
		Kind: physics.CollisionStopped,
		A:    entityOf(a),
		B:    entityOf(b),
	})
}

func entityOf(shape *cp.Shape) donburi.Entity {
	if b, ok := shape.UserData.(*body); ok {
		return b.entity
	}
	return donburi.Null
}

func (s *Space) AddBody(def physics.BodyDef) physics.Body {
	b := &body{
		space:        s,
		entity:       def.Entity,
		kind:         def.Kind,
		shape:        def.Shape,
		sensor:       def.Sensor,
		tags:         def.Tags,
		gravityScale: 1,
	}

	switch def.Kind {
	case physics.BodyStatic:
		b.cpBody = cp.NewStaticBody()
	default:
		mass := def.Mass
		if mass <= 0 {
			mass = 1
		}
		// Infinite moment locks rotation.
		b.cpBody = cp.NewBody(mass, math.Inf(1))
		b.cpBody.SetVelocityUpdateFunc(func(cb *cp.Body, gravity cp.Vector, damping, dt float64) {
			cp.BodyUpdateVelocity(cb, gravity.Mult(b.gravityScale), damping, dt)
		})
	}
	b.cpBody.UserData = b
	b.cpBody.SetPosition(toCP(def.Position))

	switch def.Shape.Kind {
	case physics.ShapeCircle:
		b.cpShape = cp.NewCircle(b.cpBody, def.Shape.Radius, cp.Vector{})
	default:
		b.cpShape = cp.NewBox(b.cpBody, def.Shape.Width, def.Shape.Height, 0)
	}
	b.cpShape.UserData = b
	b.cpShape.SetSensor(def.Sensor)
	b.cpShape.SetCollisionType(collisionBody)

	s.space.AddBody(b.cpBody)
	s.space.AddShape(b.cpShape)
	s.bodies = append(s.bodies, b)
	return b
}

func (s *Space) RemoveEntity(e donburi.Entity) {
	if e == donburi.Null {
		return
	}
	kept := s.bodies[:0]
	for _, b := range s.bodies {
		if b.entity != e {
			kept = append(kept, b)
			continue
		}
		s.space.RemoveShape(b.cpShape)
		s.space.RemoveBody(b.cpBody)
	}
	for i := len(kept); i < len(s.bodies); i++ {
		s.bodies[i] = nil
	}
	s.bodies = kept
}

// CastShape sweeps a circle of the cast shape's radius. Boxes are swept as the
// circle inscribed in them. A cast starting in contact reports distance 0.
func (s *Space) CastShape(cast physics.ShapeCast) (physics.Hit, bool) {
	radius := cast.Shape.Radius
	if cast.Shape.Kind == physics.ShapeBox {
		radius = math.Min(cast.Shape.Width, cast.Shape.Height) / 2
	}

	length := math.Max(cast.MaxDistance, 1e-6)
	start := toCP(cast.Origin)
	end := start.Add(toCP(cast.Direction).Mult(length))

	// The spatial index ignores the query radius, so gather candidates from
	// the swept bounds and run the exact query per shape.
	bounds := cp.NewBBForCircle(start, radius).Merge(cp.NewBBForCircle(end, radius))

	var (
		best  cp.SegmentQueryInfo
		found bool
	)
	best.Alpha = math.Inf(1)
	s.space.BBQuery(bounds, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if shape.Sensor() {
			return
		}
		if cast.Filter.Exclude != donburi.Null && entityOf(shape) == cast.Filter.Exclude {
			return
		}
		var info cp.SegmentQueryInfo
		if !shape.SegmentQuery(start, end, radius, &info) {
			return
		}
		if info.Alpha < best.Alpha {
			best = info
			found = true
		}
	}, nil)

	if !found {
		return physics.Hit{}, false
	}
	distance := best.Alpha * length
	if distance > cast.MaxDistance {
		return physics.Hit{}, false
	}
	return physics.Hit{
		Entity:   entityOf(best.Shape),
		Point:    fromCP(best.Point),
		Distance: distance,
	}, true
}

func (s *Space) Step(dt time.Duration) {
	if dt <= 0 {
		return
	}
	s.space.Step(dt.Seconds())
}

func (s *Space) DrainCollisions() []physics.CollisionEvent {
	events := s.events
	s.events = nil
	return events
}

func (s *Space) Bodies() []physics.Body {
	out := make([]physics.Body, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = b
	}
	return out
}

func toCP(v dmath.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) dmath.Vec2 {
	return dmath.Vec2{X: v.X, Y: v.Y}
}
