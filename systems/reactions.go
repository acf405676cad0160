package systems

import (
	"log"

	"github.com/automoto/coyote/assets"
	"github.com/automoto/coyote/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SkinResolver looks up a renderable skin by key.
type SkinResolver interface {
	Resolve(key assets.SkinKey) (*ebiten.Image, bool)
}

// Trigger handlers are subscribed to components.TriggerEvents. Each one only
// checks its own component on the trigger entity.

// OnTriggerChangeSkin applies the trigger's SkinRequest to the entity that entered it.
func OnTriggerChangeSkin(resolver SkinResolver) func(w donburi.World, ev components.TriggerEvent) {
	return func(w donburi.World, ev components.TriggerEvent) {
		if !w.Valid(ev.Trigger) || !w.Valid(ev.Other) {
			return
		}
		trigger := w.Entry(ev.Trigger)
		if !trigger.HasComponent(components.SkinRequest) {
			return
		}
		key := components.SkinRequest.Get(trigger).Key
		img, ok := resolver.Resolve(key)
		if !ok {
			log.Printf("Warning: trigger requested unknown skin %q", key)
			return
		}

		other := w.Entry(ev.Other)
		skin := components.SkinData{Key: key, Image: img}
		if other.HasComponent(components.Skin) {
			components.Skin.SetValue(other, skin)
			return
		}
		donburi.Add(other, components.Skin, &skin)
	}
}

// OnTriggerDespawnGroup queues every member of the trigger's despawn group,
// including the trigger itself when it is a member. FlushDespawns removes them.
func OnTriggerDespawnGroup(w donburi.World, ev components.TriggerEvent) {
	if !w.Valid(ev.Trigger) {
		return
	}
	trigger := w.Entry(ev.Trigger)
	if !trigger.HasComponent(components.Despawner) {
		return
	}
	QueueDespawnGroup(w, components.Despawner.Get(trigger).GroupID)
}

// OnTriggerGameOver queues the trigger's screen transition.
func OnTriggerGameOver(w donburi.World, ev components.TriggerEvent) {
	if !w.Valid(ev.Trigger) {
		return
	}
	trigger := w.Entry(ev.Trigger)
	if !trigger.HasComponent(components.GameOver) {
		return
	}
	RequestScreen(w, components.GameOver.Get(trigger).Next)
}

// OnJumpCount counts executed jumps on the jumping entity.
func OnJumpCount(w donburi.World, ev components.JumpEvent) {
	if !w.Valid(ev.Entity) {
		return
	}
	entry := w.Entry(ev.Entity)
	if !entry.HasComponent(components.JumpCount) {
		return
	}
	components.JumpCount.Get(entry).Count++
}
