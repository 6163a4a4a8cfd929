package efield

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the HUD text is redrawn.
const fpsRefresh = 0.5

// fpsWidget displays the current FPS and TPS in the top-left corner.
// It uses a small internal image and ebitenutil.DebugPrint for rendering.
type fpsWidget struct {
	img     *ebiten.Image
	elapsed float64
}

func newFPSWidget() *fpsWidget {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsWidget{img: ebiten.NewImage(100, 32), elapsed: fpsRefresh}
}

func (w *fpsWidget) update(dt float64) {
	w.elapsed += dt
	if w.elapsed < fpsRefresh {
		return
	}
	w.elapsed = 0

	w.img.Clear()
	// Semi-transparent background for readability
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (w *fpsWidget) draw(screen *ebiten.Image, x, y float64) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	screen.DrawImage(w.img, &op)
}
