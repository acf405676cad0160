package components

import (
	"github.com/automoto/coyote/timer"
	"github.com/yohamta/donburi"
)

// JumpDelayData blocks a new jump until it finishes.
type JumpDelayData struct {
	*timer.Timer
}

var JumpDelay = donburi.NewComponentType[JumpDelayData]()

// CoyoteTimeData keeps jumping allowed for a short while after leaving the ground.
type CoyoteTimeData struct {
	*timer.Timer
}

var CoyoteTime = donburi.NewComponentType[CoyoteTimeData]()

type CanJumpData struct {
	Allowed bool
}

var CanJump = donburi.NewComponentType[CanJumpData]()

// JumpCountData counts the jumps an entity executed, fed by JumpEvents.
type JumpCountData struct {
	Count int
}

var JumpCount = donburi.NewComponentType[JumpCountData]()
