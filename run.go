package spark

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws FPS, TPS and the live particle count in the corner.
	ShowFPS bool
	// ClearColor fills the screen before emitters are drawn. A zero color
	// leaves the screen as ebiten cleared it.
	ClearColor Color
	// Update, if set, is called every tick before the system advances.
	// Returning ebiten.Termination ends Run without an error.
	Update func() error
}

// Run opens a window and drives sys from ebiten's fixed-step loop until the
// window closes or cfg.Update returns an error.
func Run(sys *System, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	err := ebiten.RunGame(&game{sys: sys, cfg: cfg})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("spark: run: %w", err)
	}
	return nil
}

// game adapts a System to ebiten.Game.
type game struct {
	sys *System
	cfg RunConfig
	fps fpsOverlay
}

func (g *game) Update() error {
	if g.cfg.Update != nil {
		if err := g.cfg.Update(); err != nil {
			return err
		}
	}
	dt := float32(1 / float64(ebiten.TPS()))
	g.sys.Update(dt)
	if g.cfg.ShowFPS {
		g.fps.update(dt, g.sys.LiveCount())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor != (Color{}) {
		screen.Fill(g.cfg.ClearColor)
	}
	g.sys.Draw(screen)
	if g.cfg.ShowFPS {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(int, int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// fpsOverlay shows FPS, TPS and the particle count, refreshed every ~0.5s.
type fpsOverlay struct {
	img   *ebiten.Image
	since float32
}

func (f *fpsOverlay) update(dt float32, particles int) {
	if f.img == nil {
		// 100x48 fits "FPS: 60.0\nTPS: 60.0\nP: 99999"
		f.img = ebiten.NewImage(100, 48)
	} else {
		f.since += dt
		if f.since < 0.5 {
			return
		}
	}
	f.since = 0

	f.img.Clear()
	// Semi-transparent background for readability
	f.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nP: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), particles))
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	if f.img != nil {
		screen.DrawImage(f.img, nil)
	}
}
