package spark

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a particle quad is written to a Batch.
type Color struct {
	R, G, B, A float32
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorFromARGB converts a packed 0xAARRGGBB value.
func ColorFromARGB(argb uint32) Color {
	return Color{
		R: float32((argb>>16)&0xFF) / 255,
		G: float32((argb>>8)&0xFF) / 255,
		B: float32(argb&0xFF) / 255,
		A: float32(argb>>24) / 255,
	}
}

// RGBA implements color.Color (premultiplied, 16 bits per channel).
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp01(c.A) * 0xFFFF)
	r = uint32(clamp01(c.R*c.A) * 0xFFFF)
	g = uint32(clamp01(c.G*c.A) * 0xFFFF)
	b = uint32(clamp01(c.B*c.A) * 0xFFFF)
	return
}

var _ color.Color = Color{}

// EncodeColorPair packs two [0, 1] channels into one float32 field as
// hi*256 + lo, each quantized to 8 bits. The result is below 2^16 and
// therefore exact in a float32.
func EncodeColorPair(hi, lo float32) float32 {
	return float32(quantize8(hi)*256 + quantize8(lo))
}

// DecodeColorPair unpacks a value written by EncodeColorPair.
func DecodeColorPair(v float32) (hi, lo float32) {
	n := int(v)
	return float32(n>>8) / 255, float32(n&0xFF) / 255
}

func quantize8(v float32) int {
	return int(clamp01(v)*255 + 0.5)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Range is a min/max pair. A value picked from it lies in [Min, Max).
type Range struct {
	Min, Max float32
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendScreen                    // screen (1 - (1-src)*(1-dst); only brightens)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}
