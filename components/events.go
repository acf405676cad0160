package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// JumpEvent is published once for every executed jump.
type JumpEvent struct {
	Entity donburi.Entity
}

// TriggerEvent reports that Other entered Trigger this frame.
type TriggerEvent struct {
	Trigger donburi.Entity
	Other   donburi.Entity
}

var (
	JumpEvents    = events.NewEventType[JumpEvent]()
	TriggerEvents = events.NewEventType[TriggerEvent]()
)
