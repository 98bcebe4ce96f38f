package spark

import (
	"strings"
	"testing"
)

func TestSystemSharedClock(t *testing.T) {
	sys := NewSystem()
	a := sys.NewEmitter(EmitterConfig{MaxParticles: 4})
	sys.Update(0.5)
	b := sys.NewEmitter(EmitterConfig{MaxParticles: 4})
	sys.Update(0.25)

	assertNear(t, "sys.now", sys.Now(), 0.75)
	assertNear(t, "a.now", a.Now(), 0.75)
	assertNear(t, "b.now", b.Now(), 0.75)
}

func TestSystemEmittersOrder(t *testing.T) {
	sys := NewSystem()
	a := sys.NewEmitter(EmitterConfig{Name: "a"})
	b := sys.NewEmitter(EmitterConfig{Name: "b"})
	c := sys.NewEmitter(EmitterConfig{Name: "c"})
	sys.Remove(b)

	got := sys.Emitters()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("emitters = %v, want [a c]", names(got))
	}
}

func names(es []*Emitter) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Name
	}
	return out
}

func TestSystemAddTwiceIsNoop(t *testing.T) {
	sys := NewSystem()
	e := sys.NewEmitter(EmitterConfig{})
	sys.Add(e)
	if n := len(sys.Emitters()); n != 1 {
		t.Errorf("emitters = %d, want 1", n)
	}
}

func TestSystemReAddBeforeCompaction(t *testing.T) {
	sys := NewSystem()
	e := sys.NewEmitter(EmitterConfig{})
	sys.Remove(e)
	sys.Add(e)
	sys.Update(0.1)
	if n := len(sys.Emitters()); n != 1 {
		t.Errorf("emitters = %d, want 1", n)
	}
}

func TestSystemMoveBetweenSystems(t *testing.T) {
	s1, s2 := NewSystem(), NewSystem()
	e := s1.NewEmitter(EmitterConfig{})
	s2.Add(e)
	if len(s1.Emitters()) != 0 || len(s2.Emitters()) != 1 {
		t.Error("emitter should belong to the second system only")
	}
}

func TestSystemRemoveDuringNotification(t *testing.T) {
	sys := NewSystem()
	first := sys.NewEmitter(EmitterConfig{Name: "first"})
	second := sys.NewEmitter(EmitterConfig{Name: "second", Generator: Noop})
	empties := 0
	first.OnEmpty = func(e *Emitter) {
		empties++
		sys.Remove(e)
	}

	sys.Update(0.1)
	sys.Update(0.1)

	if empties != 1 {
		t.Errorf("OnEmpty calls = %d, want 1", empties)
	}
	got := sys.Emitters()
	if len(got) != 1 || got[0] != second {
		t.Errorf("emitters = %v, want [second]", names(got))
	}
	assertNear(t, "second.now", second.Now(), 0.2)
}

func TestSystemDestroyOnEmptyRemoves(t *testing.T) {
	sys := NewSystem()
	sys.NewEmitter(EmitterConfig{
		MaxParticles:   4,
		Generator:      Impulse(2),
		Initializers:   []Initializer{ConstantLifespan(0.3)},
		DestroyOnEmpty: true,
	})
	sys.Update(0.1)
	if len(sys.Emitters()) != 1 {
		t.Fatal("emitter removed too early")
	}
	sys.Update(0.5)
	if len(sys.Emitters()) != 0 {
		t.Error("destroyed emitter should be removed")
	}
}

func TestSystemLiveCount(t *testing.T) {
	sys := NewSystem()
	sys.NewEmitter(EmitterConfig{
		MaxParticles: 10,
		Generator:    Impulse(3),
		Initializers: []Initializer{ConstantLifespan(10)},
	})
	sys.NewEmitter(EmitterConfig{
		MaxParticles: 10,
		Generator:    Impulse(4),
		Initializers: []Initializer{ConstantLifespan(10)},
	})
	sys.Update(0.1)
	if got := sys.LiveCount(); got != 7 {
		t.Errorf("LiveCount = %d, want 7", got)
	}
}

func TestSystemEventSinkAppliesToAll(t *testing.T) {
	sys := NewSystem()
	before := sys.NewEmitter(EmitterConfig{})
	sink := &recordingEventSink{}
	sys.SetEventSink(sink)
	after := sys.NewEmitter(EmitterConfig{})

	sys.Update(0.1)
	if len(sink.events) != 2 {
		t.Fatalf("events = %d, want 2", len(sink.events))
	}
	if sink.events[0].Emitter != before || sink.events[1].Emitter != after {
		t.Error("events should arrive in emitter order")
	}
}

func TestDebugPanicsOnDestroyedEmitter(t *testing.T) {
	sys := NewSystem()
	sys.SetDebug(true)
	defer sys.SetDebug(false)

	e := NewEmitter(EmitterConfig{Name: "gone"})
	e.Destroy()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, `"gone"`) {
			t.Errorf("panic = %v, want message naming the emitter", r)
		}
	}()
	e.Update(0.1)
}

func TestDebugAddDestroyedPanics(t *testing.T) {
	sys := NewSystem()
	sys.SetDebug(true)
	defer sys.SetDebug(false)

	e := NewEmitter(EmitterConfig{})
	e.Destroy()

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	sys.Add(e)
}

func TestDebugFlagPerSystem(t *testing.T) {
	checked, quiet := NewSystem(), NewSystem()
	checked.SetDebug(true)
	quiet.SetDebug(false)
	defer checked.SetDebug(false)

	inChecked := checked.NewEmitter(EmitterConfig{Name: "checked"})
	inQuiet := quiet.NewEmitter(EmitterConfig{Name: "quiet"})
	inChecked.Destroy()
	inQuiet.Destroy()

	// The quiet system was configured last but does not switch off checks
	// for the other system's emitters.
	inQuiet.Update(0.1)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for destroyed emitter of a debug system")
		}
	}()
	inChecked.Update(0.1)
}

func TestSetDebugAppliesToExistingEmitters(t *testing.T) {
	sys := NewSystem()
	e := sys.NewEmitter(EmitterConfig{})
	sys.SetDebug(true)
	defer sys.SetDebug(false)
	if !e.debugEnabled() {
		t.Error("emitter should follow its system's debug flag")
	}
}

func TestSystemDrawSkipsNilTextures(t *testing.T) {
	sys := NewSystem()
	sys.NewEmitter(EmitterConfig{Generator: Impulse(2), Initializers: []Initializer{ConstantLifespan(1)}})
	sys.Update(0.1)
	sys.Draw(nil)
}
