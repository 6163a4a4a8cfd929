package field

import "math"

// Trace defaults.
const (
	DefaultMaxSteps      = 500
	DefaultStepSize      = 5.0
	DefaultSeedRadius    = 20.0
	DefaultSeedAngleStep = 30.0 // degrees
)

// TraceConfig controls how field lines are seeded and integrated.
type TraceConfig struct {
	// MaxSteps caps the number of points in a single line.
	MaxSteps int
	// StepSize is the fixed distance between consecutive points.
	StepSize float64
	// SeedRadius is the distance from a charge centre at which lines start,
	// normally the charge's visual radius.
	SeedRadius float64
	// SeedAngleStep is the angular spacing of seeds around a charge, in degrees.
	SeedAngleStep float64
	// Outward makes lines seeded on a negative charge follow -E so that
	// every line leaves its charge. When false all lines follow +E.
	Outward bool
}

// DefaultTraceConfig returns the standard tracing policy: 12 seeds per charge,
// 5-unit steps, at most 500 steps per line.
func DefaultTraceConfig() TraceConfig {
	return TraceConfig{
		MaxSteps:      DefaultMaxSteps,
		StepSize:      DefaultStepSize,
		SeedRadius:    DefaultSeedRadius,
		SeedAngleStep: DefaultSeedAngleStep,
	}
}

// Trace follows the field from seed and returns the visited points.
// See AppendTrace for the termination rules.
func Trace(seed Vec2, charges []Charge, domain Rect, maxSteps int, stepSize float64) []Vec2 {
	return AppendTrace(nil, seed, charges, domain, maxSteps, stepSize, 1)
}

// AppendTrace integrates a streamline with explicit Euler steps of the unit
// field direction and appends the points to dst.
//
// Each step evaluates the field at the current point, stops if its magnitude
// is exactly zero or infinite, and otherwise advances by dir*stepSize along E/|E|
// (dir is +1 to follow the field, -1 to run against it). A step that leaves
// domain ends the trace and the outside point is dropped, not clipped. At most
// maxSteps points are appended; the seed itself is never appended.
func AppendTrace(dst []Vec2, seed Vec2, charges []Charge, domain Rect, maxSteps int, stepSize, dir float64) []Vec2 {
	p := seed
	ds := stepSize * dir
	for range maxSteps {
		e := Evaluate(p, charges)
		mag := math.Hypot(e.X, e.Y)
		if mag == 0 || math.IsInf(mag, 0) {
			// Equilibrium point, coincident charge, or too close to a
			// charge for the direction to be representable.
			break
		}
		p.X += e.X / mag * ds
		p.Y += e.Y / mag * ds
		if !domain.Contains(p) {
			break
		}
		dst = append(dst, p)
	}
	return dst
}

// Seeds returns the start points of the lines traced from c: one per
// angleStep degrees, starting at 0, placed radius units from the centre.
func Seeds(c Charge, radius, angleStep float64) []Vec2 {
	return AppendSeeds(nil, c, radius, angleStep)
}

// AppendSeeds appends the seeds of c to dst. A non-positive angleStep
// yields no seeds.
func AppendSeeds(dst []Vec2, c Charge, radius, angleStep float64) []Vec2 {
	if angleStep <= 0 {
		return dst
	}
	for i := 0; ; i++ {
		deg := float64(i) * angleStep
		if deg >= 360 {
			break
		}
		sin, cos := math.Sincos(deg * math.Pi / 180)
		dst = append(dst, Vec2{c.Pos.X + radius*cos, c.Pos.Y + radius*sin})
	}
	return dst
}

// seedCount returns how many seeds AppendSeeds produces for angleStep.
func seedCount(angleStep float64) int {
	if angleStep <= 0 {
		return 0
	}
	n := 0
	for float64(n)*angleStep < 360 {
		n++
	}
	return n
}

// direction returns the integration direction for lines seeded on c.
func (cfg TraceConfig) direction(c Charge) float64 {
	if cfg.Outward && c.Q < 0 {
		return -1
	}
	return 1
}
