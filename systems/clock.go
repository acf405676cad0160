package systems

import (
	"time"

	"github.com/automoto/coyote/components"
	"github.com/automoto/coyote/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Clock supplies the elapsed time of the frame being simulated.
type Clock interface {
	Delta() time.Duration
}

// FixedClock reports the same delta every frame.
type FixedClock time.Duration

func (c FixedClock) Delta() time.Duration { return time.Duration(c) }

// TPSClock derives the delta from ebiten's tick rate.
type TPSClock struct{}

func (TPSClock) Delta() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		return 0
	}
	return time.Second / time.Duration(tps)
}

// NewAdvanceClock writes this frame's delta to the FrameClock singleton.
// Must run first in the system order.
func NewAdvanceClock(clock Clock) ecs.System {
	return func(e *ecs.ECS) {
		fc := GetOrCreateFrameClock(e)
		fc.Delta = max(clock.Delta(), 0)
		fc.Frame++
	}
}

// GetOrCreateFrameClock returns the singleton FrameClock component, creating if needed
func GetOrCreateFrameClock(e *ecs.ECS) *components.FrameClockData {
	entry, ok := components.FrameClock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.FrameClock))
	}
	return components.FrameClock.Get(entry)
}

// frameDelta returns this frame's delta. ok is false before the clock has
// been created.
func frameDelta(w donburi.World) (dt time.Duration, ok bool) {
	entry, ok := components.FrameClock.First(w)
	if !ok {
		return 0, false
	}
	return components.FrameClock.Get(entry).Delta, true
}

// levelSpace returns the level's physics space.
func levelSpace(w donburi.World) (physics.Space, bool) {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil, false
	}
	s := components.Space.Get(entry).Space
	return s, s != nil
}
