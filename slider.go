package efield

import (
	"math"
	"strconv"

	"github.com/phanxgames/efield/field"
	"github.com/tanema/gween/ease"
)

// Slider value range and the charge unit one step of value stands for.
const (
	SliderMin  = -5.0
	SliderMax  = 5.0
	SliderUnit = 1e-9 // coulombs per unit of value (nC)
)

// Slider is a horizontal control that sets the magnitude of one charge.
type Slider struct {
	Label  string
	Track  field.Rect
	Charge int // index of the bound charge
	Value  float64

	handleX float64 // displayed handle x, eased toward the value position
	tween   *Tween
}

// NewSlider creates a slider bound to charge index charge. value is clamped
// to [SliderMin, SliderMax].
func NewSlider(label string, track field.Rect, charge int, value float64) *Slider {
	s := &Slider{Label: label, Track: track, Charge: charge, Value: clampValue(value)}
	s.handleX = s.targetX()
	return s
}

// ValueForCharge returns the slider value that represents q.
func ValueForCharge(q float64) float64 {
	return clampValue(q / SliderUnit)
}

// Fraction returns the handle position along the track in [0, 1].
func (s *Slider) Fraction() float64 {
	return (s.Value - SliderMin) / (SliderMax - SliderMin)
}

// ChargeQ returns the charge in coulombs that the current value represents.
func (s *Slider) ChargeQ() float64 {
	return s.Value * SliderUnit
}

// SetFromX maps a pointer x coordinate to a value. The pointer is clamped to
// the track, so positions past either end select the end value.
func (s *Slider) SetFromX(x float64) float64 {
	var frac float64
	if s.Track.Width > 0 {
		frac = (x - s.Track.X) / s.Track.Width
	}
	frac = math.Max(0, math.Min(1, frac))
	s.Value = frac*(SliderMax-SliderMin) + SliderMin
	s.tween = TweenValue(&s.handleX, s.targetX(), handleDuration, ease.OutQuad)
	return s.Value
}

// Handle returns the centre of the handle as currently drawn.
func (s *Slider) Handle() field.Vec2 {
	return vec(s.handleX, s.Track.Y+s.Track.Height/2)
}

// Text returns the label drawn above the track, e.g. "Q1: 0.5 nC".
func (s *Slider) Text() string {
	v := math.Round(s.Value*100) / 100
	if v == 0 {
		v = 0 // no "-0"
	}
	return s.Label + ": " + strconv.FormatFloat(v, 'f', -1, 64) + " nC"
}

// hitShape returns the pick area: the track padded vertically by pad so the
// handle is grabbable over its full height.
func (s *Slider) hitShape(pad float64) HitRect {
	return rectPadded(s.Track, pad)
}

// reset sets the value and moves the handle there without easing.
func (s *Slider) reset(v float64) {
	s.Value = clampValue(v)
	s.handleX = s.targetX()
	s.tween = nil
}

func (s *Slider) update(dt float32) {
	if s.tween == nil {
		return
	}
	s.tween.Update(dt)
	if s.tween.Done {
		s.handleX = s.targetX()
		s.tween = nil
	}
}

func (s *Slider) targetX() float64 {
	return s.Track.X + s.Fraction()*s.Track.Width
}

func clampValue(v float64) float64 {
	return math.Max(SliderMin, math.Min(SliderMax, v))
}
