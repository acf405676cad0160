package rigid

import (
	"slices"

	"github.com/automoto/coyote/physics"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type body struct {
	space        *Space
	entity       donburi.Entity
	kind         physics.BodyKind
	shape        physics.Shape
	sensor       bool
	tags         []string
	gravityScale float64

	cpBody  *cp.Body
	cpShape *cp.Shape
}

func (b *body) Entity() donburi.Entity { return b.entity }
func (b *body) Shape() physics.Shape   { return b.shape }
func (b *body) Sensor() bool           { return b.sensor }

func (b *body) HasTag(tag string) bool {
	return slices.Contains(b.tags, tag)
}

func (b *body) Position() dmath.Vec2 {
	return fromCP(b.cpBody.Position())
}

// SetPosition teleports the body. Static shapes are re-inserted so the
// spatial index sees the new bounds.
func (b *body) SetPosition(p dmath.Vec2) {
	if b.kind == physics.BodyStatic {
		b.space.space.RemoveShape(b.cpShape)
		b.cpBody.SetPosition(toCP(p))
		b.space.space.AddShape(b.cpShape)
		return
	}
	b.cpBody.SetPosition(toCP(p))
	b.cpShape.CacheBB()
}

func (b *body) Velocity() dmath.Vec2 {
	return fromCP(b.cpBody.Velocity())
}

func (b *body) SetVelocity(v dmath.Vec2) {
	b.cpBody.SetVelocityVector(toCP(v))
}

func (b *body) GravityScale() float64 { return b.gravityScale }

func (b *body) SetGravityScale(scale float64) {
	b.gravityScale = scale
}
