package efield

import "github.com/phanxgames/efield/field"

// HitShape defines a custom hit testing region in screen coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// circleAt returns the hit circle of an entity drawn at p.
func circleAt(p field.Vec2, radius float64) HitCircle {
	return HitCircle{CenterX: p.X, CenterY: p.Y, Radius: radius}
}

// rectPadded returns r grown vertically by pad on both sides.
func rectPadded(r field.Rect, pad float64) HitRect {
	return HitRect{X: r.X, Y: r.Y - pad, Width: r.Width, Height: r.Height + 2*pad}
}
