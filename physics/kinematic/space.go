// Package kinematic implements physics.Space on a resolv grid. Every collider is
// an axis-aligned box (circles use their bounding box). Dynamic bodies fall
// under gravity, stop on solids and never rotate.
//
// Only the region [0,width)x[0,height) of the world is indexed.
package kinematic

import (
	"math"
	"slices"
	"time"

	"github.com/automoto/coyote/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// contactSlop is the gap under which two boxes count as touching.
const contactSlop = 0.5

// epsilon absorbs rounding when a body rests exactly on a surface.
const epsilon = 1e-6

type pairKey [2]int

type contact struct {
	a, b *body
}

type Space struct {
	space    *resolv.Space
	gravity  float64
	bodies   []*body
	nextID   int
	contacts map[pairKey]contact
	events   []physics.CollisionEvent
}

func New(width, height, cellSize int, gravity float64) *Space {
	return &Space{
		space:    resolv.NewSpace(width, height, cellSize, cellSize),
		gravity:  gravity,
		contacts: map[pairKey]contact{},
	}
}

func (s *Space) AddBody(def physics.BodyDef) physics.Body {
	half := def.Shape.HalfExtents()
	b := &body{
		id:           s.nextID,
		entity:       def.Entity,
		kind:         def.Kind,
		shape:        def.Shape,
		sensor:       def.Sensor,
		gravityScale: 1,
		pos:          def.Position,
	}
	s.nextID++

	tags := slices.Clone(def.Tags)
	b.obj = resolv.NewObject(def.Position.X-half.X, def.Position.Y-half.Y, def.Shape.Width, def.Shape.Height, tags...)
	b.obj.SetShape(resolv.NewRectangle(0, 0, def.Shape.Width, def.Shape.Height))
	b.obj.Data = b

	s.space.Add(b.obj)
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
		s.space.Remove(b.obj)
		for key, c := range s.contacts {
			if c.a == b || c.b == b {
				s.events = append(s.events, physics.CollisionEvent{Kind: physics.CollisionStopped, A: c.a.entity, B: c.b.entity})
				delete(s.contacts, key)
			}
		}
	}
	for i := len(kept); i < len(s.bodies); i++ {
		s.bodies[i] = nil
	}
	s.bodies = kept
}

// candidates returns the bodies whose grid cells intersect the given bounds.
func (s *Space) candidates(l, bottom, r, top float64) []*body {
	probe := resolv.NewObject(l, bottom, math.Max(r-l, 1), math.Max(top-bottom, 1))
	s.space.Add(probe)
	defer s.space.Remove(probe)

	check := probe.Check(0, 0)
	if check == nil {
		return nil
	}
	out := make([]*body, 0, len(check.Objects))
	for _, o := range check.Objects {
		if b, ok := o.Data.(*body); ok {
			out = append(out, b)
		}
	}
	return out
}

// CastShape sweeps the bounding box of the cast shape. Starting in contact
// reports distance 0.
func (s *Space) CastShape(cast physics.ShapeCast) (physics.Hit, bool) {
	half := cast.Shape.HalfExtents()
	end := dmath.Vec2{
		X: cast.Origin.X + cast.Direction.X*cast.MaxDistance,
		Y: cast.Origin.Y + cast.Direction.Y*cast.MaxDistance,
	}
	l := math.Min(cast.Origin.X, end.X) - half.X - 1
	r := math.Max(cast.Origin.X, end.X) + half.X + 1
	bottom := math.Min(cast.Origin.Y, end.Y) - half.Y - 1
	top := math.Max(cast.Origin.Y, end.Y) + half.Y + 1

	var (
		best  physics.Hit
		found bool
	)
	best.Distance = math.Inf(1)
	for _, c := range s.candidates(l, bottom, r, top) {
		if c.sensor {
			continue
		}
		if cast.Filter.Exclude != donburi.Null && c.entity == cast.Filter.Exclude {
			continue
		}
		d, ok := sweep(cast.Origin, cast.Direction, half, c.bounds())
		if !ok || d > cast.MaxDistance || d >= best.Distance {
			continue
		}
		best = physics.Hit{
			Entity:   c.entity,
			Distance: d,
			Point: dmath.Vec2{
				X: cast.Origin.X + cast.Direction.X*d,
				Y: cast.Origin.Y + cast.Direction.Y*d,
			},
		}
		found = true
	}
	return best, found
}

// sweep ray-casts origin against box grown by half. It returns the entry
// distance, 0 when origin already lies inside or on the grown box.
func sweep(origin, dir, half dmath.Vec2, box aabb) (float64, bool) {
	grown := aabb{box.l - half.X, box.b - half.Y, box.r + half.X, box.t + half.Y}
	if origin.X >= grown.l && origin.X <= grown.r && origin.Y >= grown.b && origin.Y <= grown.t {
		return 0, true
	}

	tEnter, tExit := math.Inf(-1), math.Inf(1)
	axes := [2]struct{ o, d, lo, hi float64 }{
		{origin.X, dir.X, grown.l, grown.r},
		{origin.Y, dir.Y, grown.b, grown.t},
	}
	for _, a := range axes {
		if a.d == 0 {
			if a.o < a.lo || a.o > a.hi {
				return 0, false
			}
			continue
		}
		t1, t2 := (a.lo-a.o)/a.d, (a.hi-a.o)/a.d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tEnter = math.Max(tEnter, t1)
		tExit = math.Min(tExit, t2)
	}
	if tEnter > tExit || tEnter < 0 {
		return 0, false
	}
	return tEnter, true
}

func (s *Space) Step(dt time.Duration) {
	if dt <= 0 {
		return
	}
	secs := dt.Seconds()
	for _, b := range s.bodies {
		if b.kind != physics.BodyDynamic {
			continue
		}
		b.vel.Y -= s.gravity * b.gravityScale * secs
		s.depenetrate(b)
		s.moveVertical(b, b.vel.Y*secs)
		b.pos.X += b.vel.X * secs
		b.sync()
	}
	s.updateContacts()
}

func isSolid(b *body) bool {
	return !b.sensor && b.obj.HasTags(physics.TagSolid)
}

// depenetrate pushes b out of any solid it overlaps along the shallower axis.
func (s *Space) depenetrate(b *body) {
	a := b.bounds()
	for _, c := range s.candidates(a.l, a.b, a.r, a.t) {
		if c == b || !isSolid(c) {
			continue
		}
		a = b.bounds()
		o := c.bounds()
		if !a.overlaps(o) {
			continue
		}
		penX := math.Min(a.r-o.l, o.r-a.l)
		penY := math.Min(a.t-o.b, o.t-a.b)
		if penX < penY {
			if b.pos.X < (o.l+o.r)/2 {
				b.pos.X -= penX
			} else {
				b.pos.X += penX
			}
			continue
		}
		if b.pos.Y >= (o.b+o.t)/2 {
			b.pos.Y += penY
			if b.vel.Y < 0 {
				b.vel.Y = 0
			}
		} else {
			b.pos.Y -= penY
			if b.vel.Y > 0 {
				b.vel.Y = 0
			}
		}
	}
}

// moveVertical moves b by dy, stopping on the first solid in the way.
func (s *Space) moveVertical(b *body, dy float64) {
	if dy == 0 {
		return
	}
	a := b.bounds()
	bottom, top := a.b+math.Min(dy, 0), a.t+math.Max(dy, 0)
	allowed := dy
	for _, c := range s.candidates(a.l, bottom, a.r, top) {
		if c == b || !isSolid(c) {
			continue
		}
		o := c.bounds()
		if a.r <= o.l || o.r <= a.l {
			continue
		}
		if dy < 0 && o.t <= a.b+epsilon {
			allowed = math.Max(allowed, math.Min(o.t-a.b, 0))
		}
		if dy > 0 && o.b >= a.t-epsilon {
			allowed = math.Min(allowed, math.Max(o.b-a.t, 0))
		}
	}
	if allowed != dy {
		b.vel.Y = 0
	}
	b.pos.Y += allowed
}

func (s *Space) updateContacts() {
	current := map[pairKey]contact{}
	for _, b := range s.bodies {
		if b.kind != physics.BodyDynamic {
			continue
		}
		a := b.bounds()
		for _, c := range s.candidates(a.l-contactSlop-1, a.b-contactSlop-1, a.r+contactSlop+1, a.t+contactSlop+1) {
			if c == b || !a.touches(c.bounds(), contactSlop) {
				continue
			}
			first, second := b, c
			if second.id < first.id {
				first, second = second, first
			}
			current[pairKey{first.id, second.id}] = contact{first, second}
		}
	}

	started := sortedKeys(current, s.contacts)
	stopped := sortedKeys(s.contacts, current)
	for _, k := range started {
		c := current[k]
		s.events = append(s.events, physics.CollisionEvent{Kind: physics.CollisionStarted, A: c.a.entity, B: c.b.entity})
	}
	for _, k := range stopped {
		c := s.contacts[k]
		s.events = append(s.events, physics.CollisionEvent{Kind: physics.CollisionStopped, A: c.a.entity, B: c.b.entity})
	}
	s.contacts = current
}

// sortedKeys returns the keys of from that are missing in other, in id order.
func sortedKeys(from, other map[pairKey]contact) []pairKey {
	var keys []pairKey
	for k := range from {
		if _, ok := other[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(x, y pairKey) int {
		if x[0] != y[0] {
			return x[0] - y[0]
		}
		return x[1] - y[1]
	})
	return keys
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
