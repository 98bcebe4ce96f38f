package spark

import (
	"math"
	"math/rand/v2"
)

// Identity returns an initializer that sets a particle's transform to the
// identity. Register it before initializers that only touch part of the
// transform, such as RandomPosition.
func Identity() Initializer {
	return Translate(0, 0)
}

// Translate returns an initializer that places a particle at (tx, ty) with
// no scale or rotation.
func Translate(tx, ty float32) Initializer {
	return ConstantTransform(1, 0, tx, ty)
}

// ConstantTransform returns an initializer that gives every particle the
// same uniform scale, rotation (radians) and translation.
func ConstantTransform(scale, rot, tx, ty float32) Initializer {
	sin, cos := math.Sincos(float64(rot))
	m := [6]float32{
		float32(cos) * scale, float32(sin) * scale,
		-float32(sin) * scale, float32(cos) * scale,
		tx, ty,
	}
	return InitFunc(func(_ int, data []float32, start int) {
		copy(data[start+M00:start+TY+1], m[:])
	})
}

// layerInit copies a layer's world transform into each particle. The matrix
// is computed once per batch in WillInit.
type layerInit struct {
	layer  *Layer
	matrix [6]float32
}

// LayerTransform returns an initializer that gives each particle the full
// world transform (scale, rotation and position) of layer at the moment the
// particle is created.
func LayerTransform(layer *Layer) BatchInitializer {
	return &layerInit{layer: layer}
}

func (l *layerInit) WillInit(int) {
	m := l.layer.WorldTransform()
	for i, v := range m {
		l.matrix[i] = float32(v)
	}
}

func (l *layerInit) Init(_ int, data []float32, start int) {
	copy(data[start+M00:start+TY+1], l.matrix[:])
}

// RandomPosition returns an initializer that places a particle at a random
// point inside the rectangle (x, y, width, height). Scale and rotation are
// left alone, so pair it with Identity.
func RandomPosition(rng *rand.Rand, x, y, width, height float32) Initializer {
	return InitFunc(func(_ int, data []float32, start int) {
		data[start+TX] = x + randFloat(rng)*width
		data[start+TY] = y + randFloat(rng)*height
	})
}
