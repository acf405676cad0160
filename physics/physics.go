// Package physics declares the collision backend the gameplay systems talk to.
// The world is y-up: positive Y points away from the ground and gravity pulls
// toward negative Y.
package physics

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
)

// Shape is a collider outline centred on its body's position.
type Shape struct {
	Kind   ShapeKind
	Radius float64
	Width  float64
	Height float64
}

func NewCircle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius, Width: radius * 2, Height: radius * 2}
}

func NewBox(width, height float64) Shape {
	return Shape{Kind: ShapeBox, Width: width, Height: height}
}

// HalfExtents returns the half size of the shape's bounding box.
func (s Shape) HalfExtents() math.Vec2 {
	return math.Vec2{X: s.Width / 2, Y: s.Height / 2}
}

type BodyKind int

const (
	// BodyDynamic bodies are integrated under gravity and resolved against solids.
	BodyDynamic BodyKind = iota
	// BodyStatic bodies never move on their own.
	BodyStatic
)

// Collider tags, shared by both backends and the debug overlay.
const (
	TagSolid   = "solid"
	TagPlayer  = "player"
	TagTrigger = "trigger"
)

// BodyDef describes a body to create.
type BodyDef struct {
	Entity   donburi.Entity
	Kind     BodyKind
	Shape    Shape
	Position math.Vec2
	Mass     float64
	// Sensors report contacts but never push anything.
	Sensor bool
	Tags   []string
}

// Body is a collider owned by a Space.
type Body interface {
	Entity() donburi.Entity
	Shape() Shape
	Sensor() bool
	HasTag(tag string) bool

	Position() math.Vec2
	SetPosition(p math.Vec2)
	Velocity() math.Vec2
	SetVelocity(v math.Vec2)
	// GravityScale multiplies the space's gravity for this body only.
	GravityScale() float64
	SetGravityScale(scale float64)
}

// QueryFilter narrows a shape cast. Sensors are never reported.
type QueryFilter struct {
	// Exclude skips every collider owned by this entity.
	Exclude donburi.Entity
}

// ShapeCast sweeps Shape from Origin along Direction for at most MaxDistance.
type ShapeCast struct {
	Shape       Shape
	Origin      math.Vec2
	Direction   math.Vec2 // unit length
	MaxDistance float64
	Filter      QueryFilter
}

// Hit is the first contact of a shape cast. Distance is 0 when the shape
// already touches or overlaps the collider at Origin.
type Hit struct {
	Entity   donburi.Entity
	Point    math.Vec2
	Distance float64
}

type CollisionKind int

const (
	CollisionStarted CollisionKind = iota
	CollisionStopped
)

// CollisionEvent reports two colliders starting or stopping contact.
// Colliders created without an entity report donburi.Null.
type CollisionEvent struct {
	Kind CollisionKind
	A, B donburi.Entity
}

// Space is a physics world.
type Space interface {
	AddBody(def BodyDef) Body
	// RemoveEntity removes every body owned by e. Unknown entities are ignored.
	RemoveEntity(e donburi.Entity)
	CastShape(cast ShapeCast) (Hit, bool)
	Step(dt time.Duration)
	// DrainCollisions returns the events gathered since the last drain and forgets them.
	DrainCollisions() []CollisionEvent
	Bodies() []Body
}
