package ecs

import (
	"github.com/phanxgames/spark"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// EmitterEventType is the Donburi event type for spark emitter notifications.
var EmitterEventType = events.NewEventType[spark.EmitterEvent]()

// Emitter is the component holding an entity's particle emitter.
var Emitter = donburi.NewComponentType[*spark.Emitter]()

var emitterQuery = donburi.NewQuery(filter.Contains(Emitter))

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Notifications are published to EmitterEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) spark.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event spark.EmitterEvent) {
	EmitterEventType.Publish(s.world, event)
}

// AddEmitter creates an entity carrying e. The emitter's notifications are
// published to the world's EmitterEventType queue.
func AddEmitter(world donburi.World, e *spark.Emitter) donburi.Entity {
	ent := world.Create(Emitter)
	Emitter.Set(world.Entry(ent), &e)
	e.SetEventSink(NewDonburiSink(world))
	return ent
}

// UpdateEmitters advances every emitter entity by dt seconds and removes
// entities whose emitter has been destroyed.
func UpdateEmitters(world donburi.World, dt float32) {
	var dead []donburi.Entity
	emitterQuery.Each(world, func(entry *donburi.Entry) {
		e := *Emitter.Get(entry)
		if !e.IsDestroyed() {
			e.Update(dt)
		}
		if e.IsDestroyed() {
			dead = append(dead, entry.Entity())
		}
	})
	for _, ent := range dead {
		world.Remove(ent)
	}
}
