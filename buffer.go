package spark

import "fmt"

// Field offsets within a particle slot. Each live particle occupies
// NumFields consecutive float32 values in ParticleBuffer.Data starting at
// index*NumFields. M00 through GreenBlue are contiguous so that a sink can
// copy the transform and color of a particle in one slice.
const (
	Birth    = iota // simulation time at which the particle was created
	Lifespan        // seconds the particle lives after Birth
	VelX            // x velocity in units per second
	VelY            // y velocity in units per second
	M00             // affine transform [m00 m01 m10 m11 tx ty]
	M01
	M10
	M11
	TX
	TY
	AlphaRed  // packed alpha (high) and red (low), see EncodeColorPair
	GreenBlue // packed green (high) and blue (low)

	// NumFields is the number of float32 values per particle slot.
	NumFields
)

// ParticleBuffer is a fixed-capacity particle store. Field data is kept in a
// single flat slice and liveness in a packed bit vector, so updates and
// renders are single linear passes over memory.
type ParticleBuffer struct {
	data  []float32
	alive aliveSet
	max   int
	// live is the number of particles seen by the last Apply or Render.
	live int
}

// NewParticleBuffer creates a buffer that holds up to maxParticles particles.
// All slots start dead and zeroed.
func NewParticleBuffer(maxParticles int) *ParticleBuffer {
	if maxParticles < 0 {
		maxParticles = 0
	}
	return &ParticleBuffer{
		data:  make([]float32, maxParticles*NumFields),
		alive: newAliveSet(maxParticles),
		max:   maxParticles,
	}
}

// Cap returns the maximum number of particles the buffer can hold.
func (b *ParticleBuffer) Cap() int {
	return b.max
}

// Data returns the raw field data. Slot i starts at i*NumFields.
// Fields of dead slots are stale.
func (b *ParticleBuffer) Data() []float32 {
	return b.data
}

// LiveCount returns the live particle count cached by the last Apply or
// Render. Particles added since then are not included.
func (b *ParticleBuffer) LiveCount() int {
	return b.live
}

// CountAlive counts live slots directly from the liveness bits.
func (b *ParticleBuffer) CountAlive() int {
	return b.alive.count()
}

// IsFull reports whether the cached live count has reached capacity.
func (b *ParticleBuffer) IsFull() bool {
	return b.live >= b.max
}

// IsAlive reports whether slot index holds a live particle.
// It panics if index is outside [0, Cap()).
func (b *ParticleBuffer) IsAlive(index int) bool {
	b.checkIndex(index)
	return b.alive.test(index)
}

// SetAlive marks slot index as alive or dead.
// It panics if index is outside [0, Cap()).
func (b *ParticleBuffer) SetAlive(index int, alive bool) {
	b.checkIndex(index)
	if alive {
		b.alive.set(index)
	} else {
		b.alive.clear(index)
	}
}

func (b *ParticleBuffer) checkIndex(index int) {
	if uint(index) >= uint(b.max) {
		panic(fmt.Sprintf("spark: particle index %d out of range [0,%d)", index, b.max))
	}
}

// Clear kills every particle.
func (b *ParticleBuffer) Clear() {
	b.alive.reset()
	b.live = 0
}

// Add claims up to count free slots, lowest index first, stamps them with
// now as their birth time and runs inits over each in order. A later
// initializer sees (and may overwrite) the fields written by earlier ones.
// Requests beyond the free capacity are dropped; a buffer that is already
// full ignores the request entirely. Add returns the number of particles
// created.
func (b *ParticleBuffer) Add(count int, now float32, inits []Initializer) int {
	if count <= 0 || b.IsFull() {
		return 0
	}
	added := 0
	for w := 0; w < len(b.alive) && added < count; w++ {
		word := b.alive[w]
		if word == 0xFFFFFFFF {
			continue
		}
		first := w * wordBits
		end := min(first+wordBits, b.max)
		for i := first; i < end && added < count; i++ {
			mask := uint32(1) << uint(i-first)
			if word&mask != 0 {
				continue
			}
			word |= mask
			start := i * NumFields
			b.data[start+Birth] = now
			for _, in := range inits {
				in.Init(i, b.data, start)
			}
			added++
		}
		b.alive[w] = word
	}
	return added
}

// Apply reaps every particle whose age exceeds its lifespan and runs effs,
// in order, over the survivors. A particle reaped in this pass is not seen
// by any effector. Apply returns the number of survivors.
func (b *ParticleBuffer) Apply(effs []Effector, now, dt float32) int {
	living := 0
	for w, word := range b.alive {
		if word == 0 {
			continue
		}
		live := word
		first := w * wordBits
		for bit := 0; bit < wordBits; bit++ {
			mask := uint32(1) << uint(bit)
			if word&mask == 0 {
				continue
			}
			i := first + bit
			start := i * NumFields
			if now-b.data[start+Birth] > b.data[start+Lifespan] {
				live &^= mask
				continue
			}
			for _, e := range effs {
				e.Apply(i, b.data, start, now, dt)
			}
			living++
		}
		if live != word {
			b.alive[w] = live
		}
	}
	b.live = living
	return living
}

// Render hands one quad per live particle to sink, in ascending slot order.
// Each quad spans (-width/2, -height/2) to (width/2, height/2) in particle
// space; the sink applies the particle's transform and color. No depth
// sorting is done.
func (b *ParticleBuffer) Render(sink QuadSink, width, height float32) {
	l, t, r, bt := -width/2, -height/2, width/2, height/2
	rendered := 0
	for w, word := range b.alive {
		if word == 0 {
			continue
		}
		first := w * wordBits
		for bit := 0; bit < wordBits; bit++ {
			if word&(1<<uint(bit)) == 0 {
				continue
			}
			sink.AddParticle(l, t, r, bt, b.data, (first+bit)*NumFields)
			rendered++
		}
	}
	b.live = rendered
}
