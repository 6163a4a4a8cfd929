package efield

import (
	"errors"
	"fmt"

	"github.com/phanxgames/efield/field"
)

// ErrInvalidConfig is wrapped by every Config validation error.
var ErrInvalidConfig = errors.New("efield: invalid config")

// Slider track geometry inside the control strip.
const (
	sliderTrackX     = 150.0
	sliderTrackPitch = 300.0
	sliderTrackW     = 200.0
	sliderTrackH     = 10.0
	sliderCount      = 2
)

// PointConfig is a position in screen coordinates.
type PointConfig struct {
	X float64 `mapstructure:"x" yaml:"x"`
	Y float64 `mapstructure:"y" yaml:"y"`
}

// ChargeConfig describes one initial charge. Q is in coulombs.
type ChargeConfig struct {
	X float64 `mapstructure:"x" yaml:"x"`
	Y float64 `mapstructure:"y" yaml:"y"`
	Q float64 `mapstructure:"q" yaml:"q"`
}

// Config holds everything needed to build the window, the scene and the
// per-frame sampler.
type Config struct {
	Title  string `mapstructure:"title" yaml:"title"`
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
	// ControlStrip is the height of the slider area below the field domain.
	ControlStrip float64 `mapstructure:"control_strip" yaml:"control_strip"`

	ChargeRadius      float64 `mapstructure:"charge_radius" yaml:"charge_radius"`
	SensorRadius      float64 `mapstructure:"sensor_radius" yaml:"sensor_radius"`
	GridSpacing       float64 `mapstructure:"grid_spacing" yaml:"grid_spacing"`
	ArrowLength       float64 `mapstructure:"arrow_length" yaml:"arrow_length"`
	SensorArrowLength float64 `mapstructure:"sensor_arrow_length" yaml:"sensor_arrow_length"`

	MaxSteps      int     `mapstructure:"max_steps" yaml:"max_steps"`
	StepSize      float64 `mapstructure:"step_size" yaml:"step_size"`
	SeedAngleStep float64 `mapstructure:"seed_angle_step" yaml:"seed_angle_step"`
	OutwardLines  bool    `mapstructure:"outward_lines" yaml:"outward_lines"`
	Workers       int     `mapstructure:"workers" yaml:"workers"`

	ShowFPS       bool   `mapstructure:"show_fps" yaml:"show_fps"`
	Debug         bool   `mapstructure:"debug" yaml:"debug"`
	ScreenshotDir string `mapstructure:"screenshot_dir" yaml:"screenshot_dir"`

	Charges []ChargeConfig `mapstructure:"charges" yaml:"charges"`
	Sensor  PointConfig    `mapstructure:"sensor" yaml:"sensor"`
}

// DefaultConfig returns the classic dipole scene in an 800x700 window.
func DefaultConfig() Config {
	return Config{
		Title:             "Electric Field",
		Width:             800,
		Height:            700,
		ControlStrip:      100,
		ChargeRadius:      20,
		SensorRadius:      10,
		GridSpacing:       field.DefaultGridSpacing,
		ArrowLength:       20,
		SensorArrowLength: 50,
		MaxSteps:          field.DefaultMaxSteps,
		StepSize:          field.DefaultStepSize,
		SeedAngleStep:     field.DefaultSeedAngleStep,
		Workers:           1,
		ScreenshotDir:     "screenshots",
		Charges: []ChargeConfig{
			{X: 300, Y: 300, Q: 1e-9},
			{X: 500, Y: 300, Q: -1e-9},
		},
		Sensor: PointConfig{X: 400, Y: 450},
	}
}

// Domain returns the field rectangle: the window minus the control strip.
// Grid sampling, line tracing, drag clamping and the border all use it.
func (c Config) Domain() field.Rect {
	return field.Rect{
		Width:  float64(c.Width),
		Height: float64(c.Height) - c.ControlStrip,
	}
}

// SamplerConfig returns the per-frame sampling policy derived from c.
// Lines are seeded on the charge outline.
func (c Config) SamplerConfig() field.SamplerConfig {
	sc := field.DefaultSamplerConfig(c.Domain())
	sc.GridSpacing = c.GridSpacing
	sc.Trace = field.TraceConfig{
		MaxSteps:      c.MaxSteps,
		StepSize:      c.StepSize,
		SeedRadius:    c.ChargeRadius,
		SeedAngleStep: c.SeedAngleStep,
		Outward:       c.OutwardLines,
	}
	sc.Workers = c.Workers
	return sc
}

// SliderTrack returns the track rectangle of slider i.
func (c Config) SliderTrack(i int) field.Rect {
	return field.Rect{
		X:      sliderTrackX + float64(i)*sliderTrackPitch,
		Y:      float64(c.Height) - c.ControlStrip/2,
		Width:  sliderTrackW,
		Height: sliderTrackH,
	}
}

// Validate reports every invalid field, joined into one error.
func (c Config) Validate() error {
	var errs []error
	sized := c.Width > 0 && c.Height > 0
	if !sized {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height))
	}
	strip := c.ControlStrip >= 0 && c.ControlStrip < float64(c.Height)
	if !strip {
		errs = append(errs, fmt.Errorf("%w: control strip %v must be in [0, %d)", ErrInvalidConfig, c.ControlStrip, c.Height))
	}
	if c.ChargeRadius <= 0 {
		errs = append(errs, fmt.Errorf("%w: charge radius %v must be positive", ErrInvalidConfig, c.ChargeRadius))
	}
	if c.SensorRadius <= 0 {
		errs = append(errs, fmt.Errorf("%w: sensor radius %v must be positive", ErrInvalidConfig, c.SensorRadius))
	}
	if c.ArrowLength < 0 || c.SensorArrowLength < 0 {
		errs = append(errs, fmt.Errorf("%w: arrow lengths %v/%v must not be negative", ErrInvalidConfig, c.ArrowLength, c.SensorArrowLength))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: workers %d must not be negative", ErrInvalidConfig, c.Workers))
	}
	// Domain problems are already reported above.
	if sized && strip {
		if err := c.SamplerConfig().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
		}
	}
	return errors.Join(errs...)
}

// initialCharges converts the configured charges to field charges.
func (c Config) initialCharges() []field.Charge {
	out := make([]field.Charge, len(c.Charges))
	for i, cc := range c.Charges {
		out[i] = field.Charge{Pos: vec(cc.X, cc.Y), Q: cc.Q}
	}
	return out
}
