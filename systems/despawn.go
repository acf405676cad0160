package systems

import (
	"github.com/automoto/coyote/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Despawn removes an entity and its physics body. Entities that are already
// gone are ignored.
func Despawn(w donburi.World, entity donburi.Entity) {
	if entity == donburi.Null || !w.Valid(entity) {
		return
	}
	if w.Entry(entity).HasComponent(components.Body) {
		if s, ok := levelSpace(w); ok {
			s.RemoveEntity(entity)
		}
	}
	w.Remove(entity)
}

// DespawnGroup despawns every entity whose DespawnGroup matches id right away.
// Distinct triggers sharing an id despawn each other's members too.
func DespawnGroup(w donburi.World, id string) int {
	members := groupMembers(w, id)
	for _, entity := range members {
		Despawn(w, entity)
	}
	return len(members)
}

// QueueDespawnGroup marks every member of group id for removal by
// FlushDespawns. Event handlers use it so entities stay valid until every
// subscriber has seen the frame's events.
func QueueDespawnGroup(w donburi.World, id string) int {
	members := groupMembers(w, id)
	queue := getOrCreateDespawnQueue(w)
	queue.Pending = append(queue.Pending, members...)
	return len(members)
}

// FlushDespawns removes the queued entities. Runs after ProcessEvents.
func FlushDespawns(e *ecs.ECS) {
	entry, ok := components.DespawnQueue.First(e.World)
	if !ok {
		return
	}
	queue := components.DespawnQueue.Get(entry)
	pending := queue.Pending
	queue.Pending = nil
	for _, entity := range pending {
		Despawn(e.World, entity)
	}
}

func groupMembers(w donburi.World, id string) []donburi.Entity {
	var members []donburi.Entity
	components.DespawnGroup.Each(w, func(entry *donburi.Entry) {
		if components.DespawnGroup.Get(entry).ID == id {
			members = append(members, entry.Entity())
		}
	})
	return members
}

// getOrCreateDespawnQueue returns the singleton DespawnQueue component, creating if needed
func getOrCreateDespawnQueue(w donburi.World) *components.DespawnQueueData {
	entry, ok := components.DespawnQueue.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.DespawnQueue))
	}
	return components.DespawnQueue.Get(entry)
}
