package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Solid     = donburi.NewTag().SetName("Solid")
	OnTrigger = donburi.NewTag().SetName("OnTrigger")
	NPC       = donburi.NewTag().SetName("NPC")
)
