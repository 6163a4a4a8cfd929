package field

import (
	"math"
	"math/rand/v2"
	"testing"
)

var testDomain = Rect{X: 0, Y: 0, Width: 800, Height: 600}

func TestTraceRadialToEdge(t *testing.T) {
	cs := []Charge{{Pos: Vec2{400, 300}, Q: 1e-9}}
	pts := Trace(Vec2{420, 300}, cs, testDomain, 500, 5)

	// 425, 430, ..., 800: the right edge itself is inside the domain.
	if len(pts) != 76 {
		t.Fatalf("len = %d, want 76", len(pts))
	}
	if pts[0] != (Vec2{425, 300}) {
		t.Errorf("first point = %v, want (425, 300)", pts[0])
	}
	if last := pts[len(pts)-1]; last != (Vec2{800, 300}) {
		t.Errorf("last point = %v, want (800, 300)", last)
	}
}

func TestTraceStopsAtEquilibrium(t *testing.T) {
	cs := []Charge{
		{Pos: Vec2{300, 300}, Q: 1e-9},
		{Pos: Vec2{500, 300}, Q: 1e-9},
	}
	pts := Trace(Vec2{400, 300}, cs, testDomain, 500, 5)
	if len(pts) != 0 {
		t.Errorf("trace from equilibrium point has %d points, want 0", len(pts))
	}
}

func TestTraceStopsOnCoincidentCharge(t *testing.T) {
	// Following +E into a lone negative charge lands exactly on it, where the
	// field is defined as zero.
	cs := []Charge{{Pos: Vec2{400, 300}, Q: -1e-9}}
	pts := Trace(Vec2{420, 300}, cs, testDomain, 500, 5)
	want := []Vec2{{415, 300}, {410, 300}, {405, 300}, {400, 300}}
	if len(pts) != len(want) {
		t.Fatalf("points = %v, want %v", pts, want)
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestTraceMaxSteps(t *testing.T) {
	// Overshooting the sink makes the trace oscillate around it forever.
	cs := []Charge{{Pos: Vec2{400, 300}, Q: -1e-9}}
	pts := Trace(Vec2{418, 300}, cs, testDomain, 50, 5)
	if len(pts) != 50 {
		t.Errorf("len = %d, want 50", len(pts))
	}
}

func TestTraceSeedOutsideDomain(t *testing.T) {
	cs := []Charge{{Pos: Vec2{-50, 300}, Q: 1e-9}}
	pts := Trace(Vec2{-30, 300}, cs, testDomain, 500, 5)
	for _, p := range pts {
		if !testDomain.Contains(p) {
			t.Fatalf("point %v outside domain", p)
		}
	}
}

func TestTraceZeroMaxSteps(t *testing.T) {
	cs := []Charge{{Pos: Vec2{400, 300}, Q: 1e-9}}
	if pts := Trace(Vec2{420, 300}, cs, testDomain, 0, 5); len(pts) != 0 {
		t.Errorf("len = %d, want 0", len(pts))
	}
}

func TestTraceInvariants(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	const maxSteps = 300
	const step = 5.0
	for trial := 0; trial < 40; trial++ {
		cs := randomCharges(r, 1+r.IntN(5))
		for _, c := range cs {
			for _, seed := range Seeds(c, 20, 30) {
				pts := Trace(seed, cs, testDomain, maxSteps, step)
				if len(pts) > maxSteps {
					t.Fatalf("trace has %d points, max %d", len(pts), maxSteps)
				}
				prev := seed
				for i, p := range pts {
					if !testDomain.Contains(p) {
						t.Fatalf("point %d %v outside domain", i, p)
					}
					if d := prev.Dist(p); !approxEqual(d, step, 1e-9) {
						t.Fatalf("point %d is %v from its predecessor, want %v", i, d, step)
					}
					prev = p
				}
			}
		}
	}
}

func TestAppendTraceReverse(t *testing.T) {
	cs := []Charge{{Pos: Vec2{400, 300}, Q: -1e-9}}
	pts := AppendTrace(nil, Vec2{420, 300}, cs, testDomain, 500, 5, -1)
	if len(pts) != 76 {
		t.Fatalf("len = %d, want 76", len(pts))
	}
	if pts[0] != (Vec2{425, 300}) {
		t.Errorf("first point = %v, want (425, 300)", pts[0])
	}
}

func TestAppendTraceReusesBuffer(t *testing.T) {
	cs := []Charge{{Pos: Vec2{400, 300}, Q: 1e-9}}
	buf := make([]Vec2, 0, 128)
	pts := AppendTrace(buf, Vec2{420, 300}, cs, testDomain, 500, 5, 1)
	if &pts[0] != &buf[:1][0] {
		t.Error("AppendTrace should write into the provided buffer")
	}
}

func TestSeeds(t *testing.T) {
	c := Charge{Pos: Vec2{100, 200}, Q: 1e-9}
	seeds := Seeds(c, 20, 30)
	if len(seeds) != 12 {
		t.Fatalf("len = %d, want 12", len(seeds))
	}
	if !approxEqual(seeds[0].X, 120, 1e-12) || !approxEqual(seeds[0].Y, 200, 1e-12) {
		t.Errorf("seed 0 = %v, want (120, 200)", seeds[0])
	}
	// 90° points down the screen (+Y).
	if !approxEqual(seeds[3].X, 100, 1e-9) || !approxEqual(seeds[3].Y, 220, 1e-9) {
		t.Errorf("seed 3 = %v, want (100, 220)", seeds[3])
	}
	for i, s := range seeds {
		if d := s.Dist(c.Pos); !approxEqual(d, 20, 1e-9) {
			t.Errorf("seed %d at distance %v, want 20", i, d)
		}
	}
}

func TestSeedCount(t *testing.T) {
	tests := []struct {
		step float64
		want int
	}{
		{30, 12},
		{45, 8},
		{90, 4},
		{360, 1},
		{500, 1},
		{7, 52},
		{0, 0},
		{-30, 0},
	}
	for _, tt := range tests {
		got := seedCount(tt.step)
		if got != tt.want {
			t.Errorf("seedCount(%v) = %d, want %d", tt.step, got, tt.want)
		}
		if n := len(Seeds(Charge{}, 1, tt.step)); n != got {
			t.Errorf("len(Seeds(step=%v)) = %d, seedCount = %d", tt.step, n, got)
		}
	}
}

func TestTraceConfigDirection(t *testing.T) {
	tests := []struct {
		name    string
		outward bool
		q       float64
		want    float64
	}{
		{"default positive", false, 1e-9, 1},
		{"default negative", false, -1e-9, 1},
		{"outward positive", true, 1e-9, 1},
		{"outward negative", true, -1e-9, -1},
		{"outward zero", true, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := TraceConfig{Outward: tt.outward}
			if got := cfg.direction(Charge{Q: tt.q}); got != tt.want {
				t.Errorf("direction = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectClampAndInset(t *testing.T) {
	r := Rect{0, 0, 800, 600}
	in := r.Inset(20)
	if in != (Rect{20, 20, 760, 560}) {
		t.Errorf("Inset(20) = %v", in)
	}
	if got := in.Clamp(Vec2{-5, 1000}); got != (Vec2{20, 580}) {
		t.Errorf("Clamp = %v, want (20, 580)", got)
	}
	if got := in.Clamp(Vec2{400, 300}); got != (Vec2{400, 300}) {
		t.Errorf("Clamp of inside point moved it to %v", got)
	}
	tiny := Rect{0, 0, 10, 10}.Inset(20)
	if tiny.Width != 0 || tiny.Height != 0 || tiny.Center() != (Vec2{5, 5}) {
		t.Errorf("over-inset rect = %v, want zero-size at centre", tiny)
	}
	if math.IsNaN(tiny.Clamp(Vec2{100, 100}).X) {
		t.Error("clamp into degenerate rect produced NaN")
	}
}

func TestTraceStopsOnInfiniteField(t *testing.T) {
	cs := []Charge{{Pos: Vec2{0, 0}, Q: 1e-9}}
	pts := Trace(Vec2{1e-160, 0}, cs, testDomain, 10, 5)
	if len(pts) != 0 {
		t.Errorf("trace from an overflowing seed = %v, want no points", pts)
	}
}
