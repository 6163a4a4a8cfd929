package field

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidConfig is wrapped by every SamplerConfig validation error.
var ErrInvalidConfig = errors.New("field: invalid sampler config")

// StreamLine is one traced field line.
type StreamLine struct {
	Charge int     // index of the seeding charge
	Angle  float64 // seed angle in degrees
	Points []Vec2
}

// Frame holds everything computed for one frame. A Frame returned by
// Sampler.Sample is owned by the sampler and is only valid until the next call.
type Frame struct {
	Grid   []FieldSample
	Lines  []StreamLine
	Sensor FieldSample
}

// PointCount returns the total number of points across all lines.
func (f *Frame) PointCount() int {
	n := 0
	for i := range f.Lines {
		n += len(f.Lines[i].Points)
	}
	return n
}

// SamplerConfig configures a Sampler.
type SamplerConfig struct {
	Domain      Rect
	GridSpacing float64
	Trace       TraceConfig
	// Workers > 1 traces the lines of different charges concurrently.
	Workers int
}

// DefaultSamplerConfig returns the default sampling policy over domain.
func DefaultSamplerConfig(domain Rect) SamplerConfig {
	return SamplerConfig{
		Domain:      domain,
		GridSpacing: DefaultGridSpacing,
		Trace:       DefaultTraceConfig(),
		Workers:     1,
	}
}

// Validate reports every field that would make sampling degenerate.
func (c SamplerConfig) Validate() error {
	var errs []error
	if c.Domain.Empty() {
		errs = append(errs, fmt.Errorf("%w: domain %v has no area", ErrInvalidConfig, c.Domain))
	}
	if c.GridSpacing <= 0 {
		errs = append(errs, fmt.Errorf("%w: grid spacing %v must be positive", ErrInvalidConfig, c.GridSpacing))
	}
	if c.Trace.MaxSteps <= 0 {
		errs = append(errs, fmt.Errorf("%w: max steps %d must be positive", ErrInvalidConfig, c.Trace.MaxSteps))
	}
	if c.Trace.StepSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: step size %v must be positive", ErrInvalidConfig, c.Trace.StepSize))
	}
	if c.Trace.SeedAngleStep <= 0 {
		errs = append(errs, fmt.Errorf("%w: seed angle step %v must be positive", ErrInvalidConfig, c.Trace.SeedAngleStep))
	}
	if c.Trace.SeedRadius < 0 {
		errs = append(errs, fmt.Errorf("%w: seed radius %v must not be negative", ErrInvalidConfig, c.Trace.SeedRadius))
	}
	return errors.Join(errs...)
}

// Sampler computes a Frame from the current charges and sensor each frame.
// Buffers grow to a high-water mark and are reused; no computed values are
// carried from one frame to the next.
//
// A Sampler is not safe for concurrent use.
type Sampler struct {
	cfg      SamplerConfig
	perLine  int      // seeds per charge
	snapshot []Charge // charges as of the start of the current Sample call
	frame    Frame
}

// NewSampler returns a Sampler for cfg.
func NewSampler(cfg SamplerConfig) (*Sampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Sampler{cfg: cfg, perLine: seedCount(cfg.Trace.SeedAngleStep)}, nil
}

// Config returns the sampler's configuration.
func (s *Sampler) Config() SamplerConfig {
	return s.cfg
}

// Sample evaluates the grid, traces every seeded line and probes the sensor.
//
// charges is copied before any work starts, so the caller may mutate its slice
// as soon as Sample returns. The returned Frame is overwritten by the next call.
func (s *Sampler) Sample(charges []Charge, sensor Vec2) *Frame {
	s.snapshot = append(s.snapshot[:0], charges...)
	snap := s.snapshot

	s.frame.Grid = AppendGrid(s.frame.Grid[:0], snap, s.cfg.Domain, s.cfg.GridSpacing)

	s.frame.Lines = growLines(s.frame.Lines, len(snap)*s.perLine)
	if s.cfg.Workers > 1 && len(snap) > 1 {
		s.traceParallel(snap)
	} else {
		for i := range snap {
			s.traceCharge(snap, i)
		}
	}

	s.frame.Sensor = SampleSensor(sensor, snap)
	return &s.frame
}

// traceCharge traces all lines seeded on charge i into that charge's slots
// of s.frame.Lines. It only writes slots [i*perLine, (i+1)*perLine).
func (s *Sampler) traceCharge(snap []Charge, i int) {
	tc := s.cfg.Trace
	c := snap[i]
	dir := tc.direction(c)

	var buf [32]Vec2
	seeds := AppendSeeds(buf[:0], c, tc.SeedRadius, tc.SeedAngleStep)

	lines := s.frame.Lines[i*s.perLine : (i+1)*s.perLine]
	for k, seed := range seeds {
		ln := &lines[k]
		ln.Charge = i
		ln.Angle = float64(k) * tc.SeedAngleStep
		ln.Points = AppendTrace(ln.Points[:0], seed, snap, s.cfg.Domain, tc.MaxSteps, tc.StepSize, dir)
	}
}

// traceParallel runs traceCharge for every charge with at most cfg.Workers
// goroutines. Each goroutine owns a disjoint range of s.frame.Lines and only
// reads snap, so the result is identical to the sequential path.
func (s *Sampler) traceParallel(snap []Charge) {
	var g errgroup.Group
	g.SetLimit(s.cfg.Workers)
	for i := range snap {
		g.Go(func() error {
			s.traceCharge(snap, i)
			return nil
		})
	}
	_ = g.Wait()
}

// growLines reslices lines to n entries, keeping the Points buffers of
// entries that already existed in the backing array.
func growLines(lines []StreamLine, n int) []StreamLine {
	if cap(lines) >= n {
		return lines[:n]
	}
	grown := make([]StreamLine, n)
	copy(grown, lines[:cap(lines)])
	return grown
}
