package spark

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// System owns a shared clock and the set of emitters it updates and draws.
// All calls must come from the game's update/draw goroutine.
type System struct {
	emitters []*Emitter
	sink     EventSink
	now      float32
	debug    bool
	removed  bool
}

// NewSystem creates an empty particle system.
func NewSystem() *System {
	return &System{}
}

// SetDebug enables debug mode: timing and particle counts are printed to
// stderr each update, and misuse of destroyed emitters panics. Emitters
// follow the flag of the system they belong to, including after they are
// removed or destroyed. Standalone emitters and atlas lookups use the flag
// of the most recent SetDebug call on any system.
func (s *System) SetDebug(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	for _, e := range s.emitters {
		if e.system == s {
			e.debug = enabled
		}
	}
}

// globalDebug mirrors the most recently set System debug flag so that
// standalone emitters and atlas code can check it without a system
// reference.
var globalDebug bool

// SetEventSink forwards the notifications of every current and future
// emitter to sink.
func (s *System) SetEventSink(sink EventSink) {
	s.sink = sink
	for _, e := range s.emitters {
		e.sink = sink
	}
}

// Now returns the system clock in seconds.
func (s *System) Now() float32 {
	return s.now
}

// NewEmitter creates an emitter and registers it with the system.
func (s *System) NewEmitter(cfg EmitterConfig) *Emitter {
	e := NewEmitter(cfg)
	s.Add(e)
	return e
}

// Add registers an existing emitter. Its clock follows the system's from
// the next update.
func (s *System) Add(e *Emitter) {
	if s.debug {
		debugCheckDestroyed(e, "Add")
	}
	if e.system == s {
		return
	}
	if e.system != nil {
		e.system.Remove(e)
	}
	e.system = s
	e.debug = s.debug
	e.joined = true
	if s.sink != nil {
		e.sink = s.sink
	}
	for _, have := range s.emitters {
		if have == e {
			// Removed earlier but not yet compacted.
			return
		}
	}
	s.emitters = append(s.emitters, e)
}

// Remove unregisters e. The slot is compacted at the end of the current or
// next Update, so removing from inside a notification is safe.
func (s *System) Remove(e *Emitter) {
	if e.system != s {
		return
	}
	e.system = nil
	s.removed = true
}

// Emitters returns a snapshot of the registered emitters in creation order.
func (s *System) Emitters() []*Emitter {
	out := make([]*Emitter, 0, len(s.emitters))
	for _, e := range s.emitters {
		if e.system == s {
			out = append(out, e)
		}
	}
	return out
}

// LiveCount sums the cached live counts of all emitters.
func (s *System) LiveCount() int {
	n := 0
	for _, e := range s.emitters {
		if e.system == s {
			n += e.buffer.LiveCount()
		}
	}
	return n
}

// Update advances the shared clock by dt seconds and ticks every emitter.
func (s *System) Update(dt float32) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.now += dt
	// Emitters added during the loop start on the next update.
	n := len(s.emitters)
	for i := 0; i < n; i++ {
		if e := s.emitters[i]; e.system == s {
			e.Tick(s.now, dt)
		}
	}
	s.compact()

	if s.debug {
		s.debugLog(debugStats{
			updateTime: time.Since(t0),
			emitters:   len(s.emitters),
			particles:  s.LiveCount(),
		})
	}
}

// Draw draws every emitter onto target in registration order.
func (s *System) Draw(target *ebiten.Image) {
	for _, e := range s.emitters {
		if e.system == s {
			e.Draw(target)
		}
	}
}

// compact drops removed emitters, keeping order.
func (s *System) compact() {
	if !s.removed {
		return
	}
	kept := s.emitters[:0]
	for _, e := range s.emitters {
		if e.system == s {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.emitters); i++ {
		s.emitters[i] = nil
	}
	s.emitters = kept
	s.removed = false
}
