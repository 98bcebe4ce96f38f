package spark

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Layer places an emitter (or a particle source) in the host's 2D space.
// Layers form a chain through Parent; a layer's world transform is its
// local transform composed with every ancestor's.
type Layer struct {
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64 // radians, clockwise with Y down
	PivotX, PivotY float64
	Alpha          float64
	Parent         *Layer
}

// NewLayer returns a layer at the origin with unit scale and full alpha.
func NewLayer() *Layer {
	return &Layer{ScaleX: 1, ScaleY: 1, Alpha: 1}
}

// SetPosition sets the layer's local translation.
func (l *Layer) SetPosition(x, y float64) {
	l.X = x
	l.Y = y
}

// LocalTransform returns [a, b, c, d, tx, ty] for this layer alone.
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
func (l *Layer) LocalTransform() [6]float64 {
	sin, cos := math.Sincos(l.Rotation)
	sx, sy := l.ScaleX, l.ScaleY
	preTx := -l.PivotX * sx
	preTy := -l.PivotY * sy
	return [6]float64{
		cos * sx, sin * sx,
		-sin * sy, cos * sy,
		cos*preTx - sin*preTy + l.X,
		sin*preTx + cos*preTy + l.Y,
	}
}

// WorldTransform composes the local transforms from the root down to l.
// A nil layer has the identity transform.
func (l *Layer) WorldTransform() [6]float64 {
	if l == nil {
		return identityTransform
	}
	return multiplyAffine(l.Parent.WorldTransform(), l.LocalTransform())
}

// WorldAlpha multiplies the alpha of l and its ancestors.
func (l *Layer) WorldAlpha() float64 {
	a := 1.0
	for p := l; p != nil; p = p.Parent {
		a *= p.Alpha
	}
	return a
}

// LocalToWorld converts a point in the layer's space to world space.
func (l *Layer) LocalToWorld(x, y float64) (float64, float64) {
	return transformPoint(l.WorldTransform(), x, y)
}

// WorldToLocal converts a world-space point into the layer's space.
func (l *Layer) WorldToLocal(x, y float64) (float64, float64) {
	return transformPoint(invertAffine(l.WorldTransform()), x, y)
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine returns the inverse of m, or the identity if m is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	inv := 1 / det
	a, b := m[3]*inv, -m[1]*inv
	c, d := -m[2]*inv, m[0]*inv
	return [6]float64{a, b, c, d, -(a*m[4] + c*m[5]), -(b*m[4] + d*m[5])}
}

func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
