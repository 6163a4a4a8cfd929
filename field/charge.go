package field

import "math"

// K is the Coulomb constant used by [Evaluate], in illustrative units.
const K = 8.99e9

// Charge is a point charge. Q may be zero, in which case the charge
// contributes nothing to the field.
type Charge struct {
	Pos Vec2
	Q   float64
}

// Evaluate returns the electric field at p produced by charges.
//
// Each charge contributes K*q/r² along the unit vector from the charge to p.
// A charge located exactly at p contributes nothing (see the package
// documentation on coincident charges). An empty charge set yields the zero
// vector. The result never contains NaN; at distances so small that K*q/r²
// exceeds the float64 range the affected components are ±Inf.
func Evaluate(p Vec2, charges []Charge) Vec2 {
	var e Vec2
	for i := range charges {
		c := &charges[i]
		dx := p.X - c.Pos.X
		dy := p.Y - c.Pos.Y
		r2 := dx*dx + dy*dy
		if r2 == 0 {
			// Coincident charge: zero contribution, never Inf or NaN.
			continue
		}
		// Unit vector first: below r ~ 1e-154 the magnitude overflows to
		// ±Inf, and a zero component must stay 0 rather than Inf*0.
		r := math.Sqrt(r2)
		kq := K * c.Q
		e.X += kq * (dx / r) / r2
		e.Y += kq * (dy / r) / r2
	}
	return e
}
