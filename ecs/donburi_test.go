package ecs

import (
	"testing"

	"github.com/phanxgames/spark"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []spark.EmitterEvent
	EmitterEventType.Subscribe(world, func(w donburi.World, e spark.EmitterEvent) {
		received = append(received, e)
	})

	em := spark.NewEmitter(spark.EmitterConfig{Name: "burst"})
	sink.EmitEvent(spark.EmitterEvent{Kind: spark.EmitterExhausted, Emitter: em})
	sink.EmitEvent(spark.EmitterEvent{Kind: spark.EmitterEmpty, Emitter: em})

	// Events are queued until processed.
	EmitterEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Kind != spark.EmitterExhausted || received[0].Emitter != em {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Kind != spark.EmitterEmpty {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink spark.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestSystemForwardsToWorld(t *testing.T) {
	world := donburi.NewWorld()
	sys := spark.NewSystem()
	sys.SetEventSink(NewDonburiSink(world))
	sys.NewEmitter(spark.EmitterConfig{
		MaxParticles: 10,
		Generator:    spark.Impulse(3),
		Initializers: []spark.Initializer{spark.ConstantLifespan(0.5)},
	})

	var kinds []spark.EmitterEventKind
	EmitterEventType.Subscribe(world, func(w donburi.World, e spark.EmitterEvent) {
		kinds = append(kinds, e.Kind)
	})

	sys.Update(0.1) // impulse fires, exhausted
	sys.Update(1.0) // all three reaped, empty
	events.ProcessAllEvents(world)

	if len(kinds) != 2 || kinds[0] != spark.EmitterExhausted || kinds[1] != spark.EmitterEmpty {
		t.Errorf("kinds = %v, want [exhausted empty]", kinds)
	}
}

func TestUpdateEmitters(t *testing.T) {
	world := donburi.NewWorld()
	em := spark.NewEmitter(spark.EmitterConfig{
		MaxParticles: 10,
		Generator:    spark.Impulse(4),
		Initializers: []spark.Initializer{spark.ConstantLifespan(10)},
	})
	ent := AddEmitter(world, em)

	UpdateEmitters(world, 0.1)

	if !world.Valid(ent) {
		t.Fatal("entity should still exist")
	}
	got := *Emitter.Get(world.Entry(ent))
	if got != em {
		t.Fatal("component should hold the emitter")
	}
	if n := em.Buffer().CountAlive(); n != 4 {
		t.Errorf("alive = %d, want 4", n)
	}
	if !em.IsExhausted() {
		t.Error("impulse generator should be exhausted")
	}
}

func TestUpdateEmittersRemovesDestroyed(t *testing.T) {
	world := donburi.NewWorld()
	em := spark.NewEmitter(spark.EmitterConfig{
		MaxParticles:   10,
		Generator:      spark.Impulse(2),
		Initializers:   []spark.Initializer{spark.ConstantLifespan(0.5)},
		DestroyOnEmpty: true,
	})
	ent := AddEmitter(world, em)

	var empties int
	EmitterEventType.Subscribe(world, func(w donburi.World, e spark.EmitterEvent) {
		if e.Kind == spark.EmitterEmpty {
			empties++
		}
	})

	UpdateEmitters(world, 0.1)
	UpdateEmitters(world, 1.0)
	EmitterEventType.ProcessEvents(world)

	if !em.IsDestroyed() {
		t.Fatal("emitter should be destroyed once empty")
	}
	if world.Valid(ent) {
		t.Error("entity of destroyed emitter should be removed")
	}
	if empties != 1 {
		t.Errorf("empty events = %d, want 1", empties)
	}
}
