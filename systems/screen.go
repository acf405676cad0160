package systems

import (
	"log"

	"github.com/automoto/coyote/components"
	cfg "github.com/automoto/coyote/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ScreenChanger switches the host to another screen.
type ScreenChanger interface {
	ChangeScreen(id cfg.ScreenID)
}

// RequestScreen queues a screen transition for NewResolveScreen.
func RequestScreen(w donburi.World, id cfg.ScreenID) {
	if id == cfg.ScreenNone {
		return
	}
	requests := getOrCreateScreenRequests(w)
	requests.Pending = append(requests.Pending, id)
}

// NewResolveScreen hands the latest queued transition to changer and clears
// the queue. Must run last in the system order.
func NewResolveScreen(changer ScreenChanger) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.ScreenRequests.First(e.World)
		if !ok {
			return
		}
		requests := components.ScreenRequests.Get(entry)
		if len(requests.Pending) == 0 {
			return
		}

		next := requests.Pending[len(requests.Pending)-1]
		requests.Pending = requests.Pending[:0]
		log.Printf("Changing screen to %s", next)
		changer.ChangeScreen(next)
	}
}

// getOrCreateScreenRequests returns the singleton ScreenRequests component, creating if needed
func getOrCreateScreenRequests(w donburi.World) *components.ScreenRequestsData {
	entry, ok := components.ScreenRequests.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.ScreenRequests))
	}
	return components.ScreenRequests.Get(entry)
}
