package components

import "github.com/yohamta/donburi"

// DespawnerData is carried by a trigger: entering it despawns every member of GroupID.
type DespawnerData struct {
	GroupID string
}

var Despawner = donburi.NewComponentType[DespawnerData]()

type DespawnGroupData struct {
	ID string
}

var DespawnGroup = donburi.NewComponentType[DespawnGroupData]()

// DespawnQueueData holds entities to remove once the frame's events have been delivered.
type DespawnQueueData struct {
	Pending []donburi.Entity
}

var DespawnQueue = donburi.NewComponentType[DespawnQueueData]()
