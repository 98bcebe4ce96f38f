package spark

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestColorFromARGB(t *testing.T) {
	c := ColorFromARGB(0xFF99CCFF)
	assertNear(t, "a", c.A, 1)
	assertNear(t, "r", c.R, 0x99/255.0)
	assertNear(t, "g", c.G, 0xCC/255.0)
	assertNear(t, "b", c.B, 1)
}

func TestColorRGBAPremultiplied(t *testing.T) {
	r, g, b, a := Color{R: 1, G: 0.5, B: 0, A: 0.5}.RGBA()
	if a != 0x7FFF {
		t.Errorf("a = %#x, want 0x7fff", a)
	}
	if r != 0x7FFF || b != 0 {
		t.Errorf("r, b = %#x, %#x", r, b)
	}
	if g > r {
		t.Errorf("g = %#x should not exceed r", g)
	}
}

func TestColorPairRoundTrip(t *testing.T) {
	for _, v := range []uint8{0, 1, 127, 128, 200, 255} {
		f := float32(v) / 255
		hi, lo := DecodeColorPair(EncodeColorPair(f, 1-f))
		assertNear(t, "hi", hi, f)
		assertNear(t, "lo", lo, float32(255-v)/255)
	}
}

func TestColorPairClamps(t *testing.T) {
	hi, lo := DecodeColorPair(EncodeColorPair(1.5, -0.5))
	assertNear(t, "hi", hi, 1)
	assertNear(t, "lo", lo, 0)
}

func TestColorPairExactInFloat32(t *testing.T) {
	if got := EncodeColorPair(1, 1); got != 65535 {
		t.Errorf("EncodeColorPair(1, 1) = %v, want 65535", got)
	}
}

func TestBlendModes(t *testing.T) {
	tests := []struct {
		mode BlendMode
		want ebiten.Blend
	}{
		{BlendNormal, ebiten.BlendSourceOver},
		{BlendAdd, ebiten.BlendLighter},
	}
	for _, tt := range tests {
		if got := tt.mode.EbitenBlend(); got != tt.want {
			t.Errorf("BlendMode(%d).EbitenBlend() = %+v, want %+v", tt.mode, got, tt.want)
		}
	}
	if BlendMultiply.EbitenBlend().BlendFactorSourceRGB != ebiten.BlendFactorDestinationColor {
		t.Error("multiply should scale source by destination color")
	}
	if BlendScreen.EbitenBlend().BlendFactorDestinationRGB != ebiten.BlendFactorOneMinusSourceColor {
		t.Error("screen should scale destination by one minus source color")
	}
}
