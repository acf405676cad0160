package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type FrameClockData struct {
	Delta time.Duration
	Frame uint64
}

var FrameClock = donburi.NewComponentType[FrameClockData]()
