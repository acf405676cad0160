package components

import (
	cfg "github.com/automoto/coyote/config"
	"github.com/yohamta/donburi"
)

// GameOverData is carried by a trigger that ends the level.
type GameOverData struct {
	Next cfg.ScreenID
}

var GameOver = donburi.NewComponentType[GameOverData]()

// ScreenRequestsData queues screen transitions until the host resolves them.
type ScreenRequestsData struct {
	Pending []cfg.ScreenID
}

var ScreenRequests = donburi.NewComponentType[ScreenRequestsData]()
