package kinematic

import (
	"github.com/automoto/coyote/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type aabb struct {
	l, b, r, t float64
}

func (a aabb) overlaps(o aabb) bool {
	return a.l < o.r && o.l < a.r && a.b < o.t && o.b < a.t
}

func (a aabb) touches(o aabb, slop float64) bool {
	return a.l <= o.r+slop && o.l <= a.r+slop && a.b <= o.t+slop && o.b <= a.t+slop
}

type body struct {
	id           int
	entity       donburi.Entity
	kind         physics.BodyKind
	shape        physics.Shape
	sensor       bool
	gravityScale float64

	// pos is the centre of the box
	pos dmath.Vec2
	vel dmath.Vec2
	obj *resolv.Object
}

func (b *body) bounds() aabb {
	half := b.shape.HalfExtents()
	return aabb{b.pos.X - half.X, b.pos.Y - half.Y, b.pos.X + half.X, b.pos.Y + half.Y}
}

// sync copies the position into the grid object.
func (b *body) sync() {
	half := b.shape.HalfExtents()
	b.obj.X = b.pos.X - half.X
	b.obj.Y = b.pos.Y - half.Y
	b.obj.Update()
}

func (b *body) Entity() donburi.Entity { return b.entity }
func (b *body) Shape() physics.Shape   { return b.shape }
func (b *body) Sensor() bool           { return b.sensor }

func (b *body) HasTag(tag string) bool {
	return b.obj.HasTags(tag)
}

func (b *body) Position() dmath.Vec2 { return b.pos }

func (b *body) SetPosition(p dmath.Vec2) {
	b.pos = p
	b.sync()
}

func (b *body) Velocity() dmath.Vec2 { return b.vel }

func (b *body) SetVelocity(v dmath.Vec2) {
	b.vel = v
}

func (b *body) GravityScale() float64 { return b.gravityScale }

func (b *body) SetGravityScale(scale float64) {
	b.gravityScale = scale
}
