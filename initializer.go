package spark

import "math/rand/v2"

// Initializer writes the starting fields of a newly created particle.
// Init is called once per particle with the slot index, the buffer's field
// data and the offset of the slot's first field, for example:
//
//	data[start+VelX] = 10
type Initializer interface {
	Init(index int, data []float32, start int)
}

// BatchInitializer is implemented by initializers that precompute a value
// shared by every particle created in one batch. WillInit is called once,
// before any Init of that batch.
type BatchInitializer interface {
	Initializer
	WillInit(count int)
}

// InitFunc adapts a function to the Initializer interface.
type InitFunc func(index int, data []float32, start int)

// Init calls f.
func (f InitFunc) Init(index int, data []float32, start int) {
	f(index, data, start)
}

// randFloat returns a float32 in [0, 1) from rng, or from the global source
// when rng is nil.
func randFloat(rng *rand.Rand) float32 {
	if rng == nil {
		return rand.Float32()
	}
	return rng.Float32()
}

// randNorm returns a standard normal sample from rng or the global source.
func randNorm(rng *rand.Rand) float32 {
	if rng == nil {
		return float32(rand.NormFloat64())
	}
	return float32(rng.NormFloat64())
}

// randIn returns a float32 in [min, max).
func randIn(rng *rand.Rand, min, max float32) float32 {
	if min == max {
		return min
	}
	return min + randFloat(rng)*(max-min)
}

// Random returns a random value in [Min, Max).
func (r Range) Random(rng *rand.Rand) float32 {
	return randIn(rng, r.Min, r.Max)
}
