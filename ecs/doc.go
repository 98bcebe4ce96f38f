// Package ecs provides ECS adapters for spark.
//
// [NewDonburiSink] bridges emitter notifications (exhausted, empty) into a
// [Donburi] world as typed events. Subscribe to [EmitterEventType] in your
// ECS systems to receive them.
//
// Emitters can also live on entities: attach [Emitter] to an entity and
// call [UpdateEmitters] once per tick. Entities whose emitter has been
// destroyed are removed from the world.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	sys.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
