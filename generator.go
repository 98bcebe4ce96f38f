package spark

// Generator decides once per tick how many particles an emitter creates.
// Generate is called before effectors run. Returning true reports that the
// generator is exhausted; the emitter then drops it and never calls it
// again.
type Generator interface {
	Generate(e *Emitter, now, dt float32) bool
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(e *Emitter, now, dt float32) bool

// Generate calls f.
func (f GeneratorFunc) Generate(e *Emitter, now, dt float32) bool {
	return f(e, now, dt)
}

// Noop is a generator that creates nothing and is never exhausted.
var Noop Generator = GeneratorFunc(func(*Emitter, float32, float32) bool {
	return false
})

// Impulse returns a generator that adds n particles on its first call and
// reports itself exhausted.
func Impulse(n int) Generator {
	return GeneratorFunc(func(e *Emitter, _, _ float32) bool {
		e.AddParticles(n)
		return true
	})
}

// constantGen emits at a fixed rate, carrying fractional particles from
// tick to tick.
type constantGen struct {
	rate  float32
	accum float32
}

// Constant returns a generator that adds rate particles per second and is
// never exhausted. The fractional remainder of each tick carries over, so
// the long-run count tracks rate*elapsed without truncation drift. The
// returned generator holds state and must not be shared between emitters.
func Constant(rate float32) Generator {
	return &constantGen{rate: rate}
}

func (g *constantGen) Generate(e *Emitter, _, dt float32) bool {
	if g.rate <= 0 {
		return false
	}
	g.accum += g.rate * dt
	if g.accum >= 1 {
		n := int(g.accum)
		g.accum -= float32(n)
		e.AddParticles(n)
	}
	return false
}
