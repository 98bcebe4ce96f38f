package spark

import "github.com/hajimehoshi/ebiten/v2"

// QuadSink receives one quad per live particle from ParticleBuffer.Render.
// (l, t, r, b) is the quad in particle space; data[start:] holds the
// particle's fields, from which the sink reads the transform (M00..TY) and
// packed color (AlphaRed, GreenBlue).
type QuadSink interface {
	AddParticle(l, t, r, b float32, data []float32, start int)
}

// Batch is a QuadSink that accumulates particle quads as ebiten vertices and
// submits them with a single DrawTriangles32 call.
type Batch struct {
	verts []ebiten.Vertex
	inds  []uint32
	tex   Texture
	// psx/psy are the source coordinates of the TL, TR, BL, BR corners.
	psx, psy [4]float32
	base     [6]float64
	tint     Color

	// trim is the trimmed rect as fractions of the untrimmed quad:
	// left, top, right, bottom.
	trim [4]float32
}

// NewBatch creates an empty batch.
func NewBatch() *Batch {
	return &Batch{base: identityTransform, tint: ColorWhite, trim: [4]float32{0, 0, 1, 1}}
}

// Prepare resets the batch to draw quads textured with tex and makes room
// for maxQuads quads. The base transform is reset to identity and the tint
// to opaque white.
func (b *Batch) Prepare(tex Texture, maxQuads int) *Batch {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
	if cap(b.verts) < maxQuads*4 {
		b.verts = make([]ebiten.Vertex, 0, maxQuads*4)
		b.inds = make([]uint32, 0, maxQuads*6)
	}
	b.tex = tex
	b.base = identityTransform
	b.tint = ColorWhite
	b.trim = trimFractions(tex.Region)

	su0, sv0, su1, sv1 := tex.bounds()
	if tex.Region.Rotated {
		b.psx = [4]float32{su1, su1, su0, su0}
		b.psy = [4]float32{sv0, sv1, sv0, sv1}
	} else {
		b.psx = [4]float32{su0, su1, su0, su1}
		b.psy = [4]float32{sv0, sv0, sv1, sv1}
	}
	return b
}

// trimFractions locates the stored pixels of r inside its untrimmed
// bounds. An untrimmed region yields {0, 0, 1, 1}.
func trimFractions(r TextureRegion) [4]float32 {
	if r.OriginalW == 0 || r.OriginalH == 0 {
		return [4]float32{0, 0, 1, 1}
	}
	ow, oh := float32(r.OriginalW), float32(r.OriginalH)
	ox, oy := float32(r.OffsetX), float32(r.OffsetY)
	return [4]float32{
		ox / ow, oy / oh,
		(ox + float32(r.Width)) / ow, (oy + float32(r.Height)) / oh,
	}
}

// SetTransform sets the matrix applied after each particle's own transform,
// typically the emitter layer's world transform.
func (b *Batch) SetTransform(m [6]float64) {
	b.base = m
}

// SetTint sets a color multiplied into every particle's color.
func (b *Batch) SetTint(c Color) {
	b.tint = c
}

// Quads returns the number of quads accumulated since Prepare.
func (b *Batch) Quads() int {
	return len(b.verts) / 4
}

// Vertices returns the accumulated vertices (4 per quad: TL, TR, BL, BR).
func (b *Batch) Vertices() []ebiten.Vertex {
	return b.verts
}

// Indices returns the accumulated triangle indices (6 per quad).
func (b *Batch) Indices() []uint32 {
	return b.inds
}

// AddParticle implements QuadSink. The quad (l, t, r, bt) covers the
// untrimmed texture; for trimmed atlas regions only the stored sub-rectangle
// is emitted, at its authored place within the quad.
func (b *Batch) AddParticle(l, t, r, bt float32, data []float32, start int) {
	w, h := r-l, bt-t
	l, t, r, bt = l+w*b.trim[0], t+h*b.trim[1], l+w*b.trim[2], t+h*b.trim[3]

	p := data[start+M00 : start+GreenBlue+1]
	m00, m01, m10, m11, tx, ty := p[0], p[1], p[2], p[3], p[4], p[5]

	a, red := DecodeColorPair(p[AlphaRed-M00])
	green, blue := DecodeColorPair(p[GreenBlue-M00])
	ca := a * b.tint.A
	cr := red * b.tint.R * ca
	cg := green * b.tint.G * ca
	cb := blue * b.tint.B * ca

	ba, bb, bc, bd, btx, bty := b.base[0], b.base[1], b.base[2], b.base[3], b.base[4], b.base[5]

	qlx := [4]float32{l, r, l, r}
	qly := [4]float32{t, t, bt, bt}

	base := uint32(len(b.verts))
	for j := 0; j < 4; j++ {
		// Particle space to emitter space, then emitter to screen.
		px := float64(m00*qlx[j] + m10*qly[j] + tx)
		py := float64(m01*qlx[j] + m11*qly[j] + ty)
		b.verts = append(b.verts, ebiten.Vertex{
			DstX:   float32(ba*px + bc*py + btx),
			DstY:   float32(bb*px + bd*py + bty),
			SrcX:   b.psx[j],
			SrcY:   b.psy[j],
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}

	// Two triangles: TL-TR-BL, TR-BR-BL
	b.inds = append(b.inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

// Flush draws the accumulated quads onto target and empties the batch.
func (b *Batch) Flush(target *ebiten.Image, blend BlendMode) {
	if len(b.verts) == 0 || b.tex.Image == nil {
		b.verts = b.verts[:0]
		b.inds = b.inds[:0]
		return
	}

	var op ebiten.DrawTrianglesOptions
	op.Blend = blend.EbitenBlend()
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha

	target.DrawTriangles32(b.verts, b.inds, b.tex.Image, &op)

	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
}
