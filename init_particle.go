package spark

import (
	"math"
	"math/rand/v2"
)

// ConstantColor returns an initializer that tints every particle c.
func ConstantColor(c Color) Initializer {
	ar := EncodeColorPair(c.A, c.R)
	gb := EncodeColorPair(c.G, c.B)
	return InitFunc(func(_ int, data []float32, start int) {
		data[start+AlphaRed] = ar
		data[start+GreenBlue] = gb
	})
}

// ConstantARGB is ConstantColor for a packed 0xAARRGGBB value.
func ConstantARGB(argb uint32) Initializer {
	return ConstantColor(ColorFromARGB(argb))
}

// ConstantLifespan returns an initializer that gives every particle the
// same lifespan in seconds.
func ConstantLifespan(seconds float32) Initializer {
	return InitFunc(func(_ int, data []float32, start int) {
		data[start+Lifespan] = seconds
	})
}

// RandomLifespan returns an initializer that picks a lifespan in seconds
// uniformly from life.
func RandomLifespan(rng *rand.Rand, life Range) Initializer {
	return InitFunc(func(_ int, data []float32, start int) {
		data[start+Lifespan] = life.Random(rng)
	})
}

// ConstantVelocity returns an initializer that sets every particle's
// velocity to (vx, vy).
func ConstantVelocity(vx, vy float32) Initializer {
	return InitFunc(func(_ int, data []float32, start int) {
		data[start+VelX] = vx
		data[start+VelY] = vy
	})
}

// RandomVelocity returns an initializer whose x velocity ranges over
// [-xRange/2, xRange/2) and y velocity over [-yRange/2, yRange/2).
func RandomVelocity(rng *rand.Rand, xRange, yRange float32) Initializer {
	return RandomVelocityBox(rng, -xRange/2, xRange/2, -yRange/2, yRange/2)
}

// RandomVelocityBox returns an initializer that picks each velocity
// component uniformly from its own range.
func RandomVelocityBox(rng *rand.Rand, minX, maxX, minY, maxY float32) Initializer {
	return InitFunc(func(_ int, data []float32, start int) {
		data[start+VelX] = randIn(rng, minX, maxX)
		data[start+VelY] = randIn(rng, minY, maxY)
	})
}

// NormalVelocity returns an initializer that draws both velocity components
// from a normal distribution with the given mean and standard deviation.
func NormalVelocity(rng *rand.Rand, mean, dev float32) Initializer {
	return InitFunc(func(_ int, data []float32, start int) {
		data[start+VelX] = mean + randNorm(rng)*dev
		data[start+VelY] = mean + randNorm(rng)*dev
	})
}

// RandomDirection returns an initializer that points each particle in a
// uniformly random direction with a speed picked from speed.
func RandomDirection(rng *rand.Rand, speed Range) Initializer {
	return InitFunc(func(_ int, data []float32, start int) {
		angle := float64(randFloat(rng)) * 2 * math.Pi
		mag := speed.Random(rng)
		sin, cos := math.Sincos(angle)
		data[start+VelX] = float32(cos) * mag
		data[start+VelY] = float32(sin) * mag
	})
}

// IncrementVelocity returns an initializer that adds (dx, dy) to whatever
// velocity earlier initializers assigned.
func IncrementVelocity(dx, dy float32) Initializer {
	return InitFunc(func(_ int, data []float32, start int) {
		data[start+VelX] += dx
		data[start+VelY] += dy
	})
}
