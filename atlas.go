package spark

import (
	"encoding/json"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureRegion describes a sub-rectangle within an atlas page.
type TextureRegion struct {
	Page      uint16 // atlas page index
	X, Y      uint16 // top-left corner of the sub-image rect within the page
	Width     uint16 // width of the sub-image rect (may differ from OriginalW if trimmed)
	Height    uint16 // height of the sub-image rect (may differ from OriginalH if trimmed)
	OriginalW uint16 // untrimmed sprite width as authored
	OriginalH uint16 // untrimmed sprite height as authored
	OffsetX   int16  // horizontal trim offset from TexturePacker
	OffsetY   int16  // vertical trim offset from TexturePacker
	Rotated   bool   // true if the region is stored 90 degrees clockwise in the page
}

// Texture is the image a particle quad samples: a page image and the region
// of it to use.
type Texture struct {
	Image  *ebiten.Image
	Region TextureRegion
}

// NewTexture wraps a whole image as a particle texture.
func NewTexture(img *ebiten.Image) Texture {
	b := img.Bounds()
	w, h := uint16(b.Dx()), uint16(b.Dy())
	return Texture{
		Image: img,
		Region: TextureRegion{
			X: uint16(b.Min.X), Y: uint16(b.Min.Y),
			Width: w, Height: h, OriginalW: w, OriginalH: h,
		},
	}
}

// Size returns the untrimmed size of the texture, which is the size of the
// quad handed to the sink for each particle. A Batch draws the trimmed
// pixels in their place inside that quad.
func (t Texture) Size() (w, h float32) {
	return float32(t.Region.OriginalW), float32(t.Region.OriginalH)
}

// bounds returns the source rectangle on the page in pixels. For rotated
// regions the rectangle is the stored (rotated) one.
func (t Texture) bounds() (u0, v0, u1, v1 float32) {
	r := &t.Region
	u0, v0 = float32(r.X), float32(r.Y)
	if r.Rotated {
		return u0, v0, u0 + float32(r.Height), v0 + float32(r.Width)
	}
	return u0, v0, u0 + float32(r.Width), v0 + float32(r.Height)
}

// Atlas holds one or more page images and a map of named regions.
type Atlas struct {
	// Pages contains the atlas page images indexed by page number.
	Pages   []*ebiten.Image
	regions map[string]TextureRegion
}

// Region returns the named region and whether it exists.
func (a *Atlas) Region(name string) (TextureRegion, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// Texture returns the named texture. Unknown names, or regions whose page
// image is missing, yield a 1x1 magenta placeholder; in debug mode a
// warning is logged.
func (a *Atlas) Texture(name string) Texture {
	if r, ok := a.regions[name]; ok && int(r.Page) < len(a.Pages) && a.Pages[r.Page] != nil {
		return Texture{Image: a.Pages[r.Page], Region: r}
	}
	if globalDebug {
		log.Printf("spark: atlas texture %q not found, using magenta placeholder", name)
	}
	return magentaTexture()
}

// magenta placeholder singleton (single-threaded, so no sync.Once)
var magentaImage *ebiten.Image

func magentaTexture() Texture {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return NewTexture(magentaImage)
}

// LoadAtlas parses TexturePacker JSON data and associates the given page images.
// Supports both the hash format (single "frames" object) and the array format
// ("textures" array with per-page frame lists).
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("spark: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{
		Pages:   pages,
		regions: make(map[string]TextureRegion),
	}

	switch {
	case probe.Textures != nil:
		var textures []jsonTexturePage
		if err := json.Unmarshal(probe.Textures, &textures); err != nil {
			return nil, fmt.Errorf("spark: failed to parse atlas textures array: %w", err)
		}
		for i, tex := range textures {
			atlas.addFrames(tex.Frames, uint16(i))
		}
	case probe.Frames != nil:
		var frames map[string]jsonFrame
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("spark: failed to parse atlas frames: %w", err)
		}
		atlas.addFrames(frames, 0)
	default:
		return nil, fmt.Errorf("spark: atlas JSON has neither \"frames\" nor \"textures\" key")
	}

	return atlas, nil
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       struct {
		W int `json:"w"`
		H int `json:"h"`
	} `json:"sourceSize"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

func (a *Atlas) addFrames(frames map[string]jsonFrame, page uint16) {
	for name, f := range frames {
		r := TextureRegion{
			Page:      page,
			X:         uint16(f.Frame.X),
			Y:         uint16(f.Frame.Y),
			Width:     uint16(f.Frame.W),
			Height:    uint16(f.Frame.H),
			OriginalW: uint16(f.SourceSize.W),
			OriginalH: uint16(f.SourceSize.H),
			OffsetX:   int16(f.SpriteSourceSize.X),
			OffsetY:   int16(f.SpriteSourceSize.Y),
			Rotated:   f.Rotated,
		}
		if r.OriginalW == 0 || r.OriginalH == 0 {
			r.OriginalW, r.OriginalH = r.Width, r.Height
		}
		a.regions[name] = r
	}
}
