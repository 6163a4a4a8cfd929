package field

import "math"

// DefaultGridSpacing is the lattice pitch used for the direction field.
const DefaultGridSpacing = 40.0

// FieldSample is the field vector at a point.
type FieldSample struct {
	Point  Vec2
	Vector Vec2
}

// Magnitude returns |Vector|.
func (s FieldSample) Magnitude() float64 {
	return math.Hypot(s.Vector.X, s.Vector.Y)
}

// Arrow returns the field direction scaled to length. Only the direction is
// kept; the magnitude is discarded. ok is false when the field is exactly zero
// and there is no direction to draw.
func (s FieldSample) Arrow(length float64) (v Vec2, ok bool) {
	mag := s.Magnitude()
	if mag == 0 {
		return Vec2{}, false
	}
	return Vec2{s.Vector.X / mag * length, s.Vector.Y / mag * length}, true
}

// SampleGrid evaluates the field on a regular lattice covering domain and
// returns the samples with a nonzero field. See AppendGrid.
func SampleGrid(charges []Charge, domain Rect, spacing float64) []FieldSample {
	return AppendGrid(nil, charges, domain, spacing)
}

// AppendGrid appends the lattice samples to dst. Lattice points start at the
// domain's top-left corner and step by spacing in both axes; the far edges are
// exclusive. Points where the field is exactly zero are skipped. Columns are
// emitted left to right, each column top to bottom.
func AppendGrid(dst []FieldSample, charges []Charge, domain Rect, spacing float64) []FieldSample {
	if spacing <= 0 {
		return dst
	}
	right := domain.X + domain.Width
	bottom := domain.Y + domain.Height
	for i := 0; ; i++ {
		x := domain.X + float64(i)*spacing
		if x >= right {
			break
		}
		for j := 0; ; j++ {
			y := domain.Y + float64(j)*spacing
			if y >= bottom {
				break
			}
			p := Vec2{x, y}
			e := Evaluate(p, charges)
			if e.X == 0 && e.Y == 0 {
				continue
			}
			dst = append(dst, FieldSample{Point: p, Vector: e})
		}
	}
	return dst
}

// SampleSensor evaluates the field at the sensor position.
func SampleSensor(sensor Vec2, charges []Charge) FieldSample {
	return FieldSample{Point: sensor, Vector: Evaluate(sensor, charges)}
}
