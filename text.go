package efield

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font sizes used by the renderer.
const (
	glyphFontSize = 24
	labelFontSize = 20
)

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("efield: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	return &TTFFont{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// loadDefaultFonts loads the bundled Go Regular face at the glyph and label
// sizes.
func loadDefaultFonts() (glyph, label *TTFFont, err error) {
	if glyph, err = LoadTTFFont(goregular.TTF, glyphFontSize); err != nil {
		return nil, nil, err
	}
	if label, err = LoadTTFFont(goregular.TTF, labelFontSize); err != nil {
		return nil, nil, err
	}
	return glyph, label, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// drawAt draws s with its top-left corner at (x, y).
func (f *TTFFont) drawAt(dst *ebiten.Image, s string, x, y float64, c Color) {
	var op text.DrawOptions
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	op.LineSpacing = f.lh
	text.Draw(dst, s, f.face, &op)
}

// drawCentered draws s centred on (x, y) in both axes.
func (f *TTFFont) drawCentered(dst *ebiten.Image, s string, x, y float64, c Color) {
	var op text.DrawOptions
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	op.LineSpacing = f.lh
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, f.face, &op)
}
