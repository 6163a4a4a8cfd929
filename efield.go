package efield

import (
	"image/color"

	"github.com/phanxgames/efield/field"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when vertices are emitted.
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque Color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// Palette used by the renderer.
var (
	ColorWhite    = Color{1, 1, 1, 1}
	ColorBlack    = Color{0, 0, 0, 1}
	ColorPositive = RGB(255, 0, 0)
	ColorNegative = RGB(0, 128, 255)
	ColorSensor   = RGB(0, 255, 0)
	ColorLine     = RGB(255, 255, 0)
	ColorHandle   = RGB(200, 200, 0)
)

// ChargeColor returns the fill color for a charge: red for Q > 0, blue
// otherwise (a neutral charge is drawn as negative).
func ChargeColor(q float64) Color {
	if q > 0 {
		return ColorPositive
	}
	return ColorNegative
}

// ChargeGlyph returns the sign drawn on top of a charge.
func ChargeGlyph(q float64) string {
	if q > 0 {
		return "+"
	}
	return "−"
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// PickKind identifies what a pointer press grabbed.
type PickKind uint8

const (
	PickNone   PickKind = iota // nothing under the pointer
	PickSensor                 // the field probe
	PickCharge                 // a point charge; Pick.Index is its slice index
	PickSlider                 // a magnitude slider; Pick.Index is the slider index
)

// String returns the lowercase name of the kind.
func (k PickKind) String() string {
	switch k {
	case PickSensor:
		return "sensor"
	case PickCharge:
		return "charge"
	case PickSlider:
		return "slider"
	default:
		return "none"
	}
}

// Pick is the entity captured by the active pointer.
type Pick struct {
	Kind  PickKind
	Index int
}

// vec converts a pair of screen coordinates to a field point.
func vec(x, y float64) field.Vec2 {
	return field.Vec2{X: x, Y: y}
}
