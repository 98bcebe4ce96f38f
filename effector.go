package spark

import "github.com/tanema/gween/ease"

// Effector mutates a live particle once per tick. now is the emitter's
// clock (seconds) and can be compared with data[start+Birth] to get the
// particle's age; dt is the seconds elapsed since the previous tick.
type Effector interface {
	Apply(index int, data []float32, start int, now, dt float32)
}

// EffectorFunc adapts a function to the Effector interface.
type EffectorFunc func(index int, data []float32, start int, now, dt float32)

// Apply calls f.
func (f EffectorFunc) Apply(index int, data []float32, start int, now, dt float32) {
	f(index, data, start, now, dt)
}

// EarthGravity is the default downward acceleration used by Gravity.
const EarthGravity = 9.81

// Move returns an effector that integrates velocity into position.
func Move() Effector {
	return EffectorFunc(func(_ int, data []float32, start int, _, dt float32) {
		data[start+TX] += data[start+VelX] * dt
		data[start+TY] += data[start+VelY] * dt
	})
}

// Gravity returns an effector that accelerates particles along y. Positive
// accel pulls toward the bottom of the screen.
func Gravity(accel float32) Effector {
	return EffectorFunc(func(_ int, data []float32, start int, _, dt float32) {
		data[start+VelY] += accel * dt
	})
}

// Drag returns an effector that keeps the given fraction (0 to 1) of each
// velocity component every tick.
func Drag(dragX, dragY float32) Effector {
	return EffectorFunc(func(_ int, data []float32, start int, _, _ float32) {
		data[start+VelX] *= dragX
		data[start+VelY] *= dragY
	})
}

// AlphaByAge returns an effector that eases a particle's alpha from start to
// end over its lifespan using fn (for example ease.OutQuad).
func AlphaByAge(fn ease.TweenFunc, start, end float32) Effector {
	return EffectorFunc(func(_ int, data []float32, off int, now, _ float32) {
		life := data[off+Lifespan]
		age := min(now-data[off+Birth], life)
		if life <= 0 {
			age, life = 1, 1
		}
		setAlpha(data, off, fn(age, start, end-start, life))
	})
}

// AlphaFade returns an effector that eases alpha from fully opaque to
// transparent over the last duration seconds of a particle's life.
func AlphaFade(fn ease.TweenFunc, duration float32) Effector {
	return EffectorFunc(func(_ int, data []float32, off int, now, _ float32) {
		left := data[off+Birth] + data[off+Lifespan] - now
		if left >= duration {
			return
		}
		t := duration - max(left, 0)
		setAlpha(data, off, fn(t, 1, -1, duration))
	})
}

// setAlpha replaces the alpha half of the packed AlphaRed field.
func setAlpha(data []float32, start int, alpha float32) {
	_, red := DecodeColorPair(data[start+AlphaRed])
	data[start+AlphaRed] = EncodeColorPair(alpha, red)
}
