package efield

import (
	"fmt"

	"github.com/phanxgames/efield/field"
)

// NewChargeQ is the magnitude of a charge added with AddCharge.
const NewChargeQ = 1e-9

// State is the mutable scene: charges, the sensor, the sliders and the
// pointer pick. It is owned by App and mutated only from App.Update.
type State struct {
	Charges []field.Charge
	Sensor  field.Vec2
	Sliders []*Slider

	domain       field.Rect
	chargeRadius float64
	sensorRadius float64
	handleRadius float64

	pick    Pick
	visuals []*chargeVisual
}

// NewState builds the initial scene from cfg. Slider i is bound to charge i
// and starts at that charge's magnitude.
func NewState(cfg Config) *State {
	s := &State{
		Charges:      cfg.initialCharges(),
		Sensor:       vec(cfg.Sensor.X, cfg.Sensor.Y),
		domain:       cfg.Domain(),
		chargeRadius: cfg.ChargeRadius,
		sensorRadius: cfg.SensorRadius,
		handleRadius: cfg.SensorRadius,
	}
	s.visuals = make([]*chargeVisual, len(s.Charges))
	for i := range s.visuals {
		s.visuals[i] = newChargeVisual(false)
	}
	for i := 0; i < sliderCount; i++ {
		var v float64
		if i < len(s.Charges) {
			v = ValueForCharge(s.Charges[i].Q)
		}
		s.Sliders = append(s.Sliders, NewSlider(fmt.Sprintf("Q%d", i+1), cfg.SliderTrack(i), i, v))
	}
	return s
}

// Domain returns the field rectangle.
func (s *State) Domain() field.Rect {
	return s.domain
}

// Pick returns the entity currently held by the pointer.
func (s *State) Pick() Pick {
	return s.pick
}

// AddCharge appends a charge of magnitude q at the centre of the domain and
// returns its index. A slider bound to that index is reset to q.
func (s *State) AddCharge(q float64) int {
	s.Charges = append(s.Charges, field.Charge{Pos: s.domain.Center(), Q: q})
	s.visuals = append(s.visuals, newChargeVisual(true))
	i := len(s.Charges) - 1
	for _, sl := range s.Sliders {
		if sl.Charge == i {
			sl.reset(ValueForCharge(q))
		}
	}
	return i
}

// RemoveLastCharge removes the most recently added charge. It reports false
// when there are no charges. A pick on the removed charge is dropped.
func (s *State) RemoveLastCharge() bool {
	n := len(s.Charges)
	if n == 0 {
		return false
	}
	s.Charges = s.Charges[:n-1]
	s.visuals[n-1] = nil
	s.visuals = s.visuals[:n-1]
	if s.pick.Kind == PickCharge && s.pick.Index == n-1 {
		s.pick = Pick{}
	}
	return true
}

// ChargeScale returns the display scale of charge i (1 once its spawn
// animation has finished).
func (s *State) ChargeScale(i int) float64 {
	if i < 0 || i >= len(s.visuals) {
		return 1
	}
	return s.visuals[i].scale
}

// PickAt returns the entity under p without changing state. The sensor wins
// over charges, later charges win over earlier ones, and sliders are tried
// last.
func (s *State) PickAt(p field.Vec2) Pick {
	if circleAt(s.Sensor, s.sensorRadius).Contains(p.X, p.Y) {
		return Pick{Kind: PickSensor}
	}
	for i := len(s.Charges) - 1; i >= 0; i-- {
		if circleAt(s.Charges[i].Pos, s.chargeRadius).Contains(p.X, p.Y) {
			return Pick{Kind: PickCharge, Index: i}
		}
	}
	for i, sl := range s.Sliders {
		if sl.hitShape(s.handleRadius).Contains(p.X, p.Y) {
			return Pick{Kind: PickSlider, Index: i}
		}
	}
	return Pick{}
}

// Press starts a pick at p.
func (s *State) Press(p field.Vec2) Pick {
	s.pick = s.PickAt(p)
	return s.pick
}

// Move applies a pointer move to the current pick. Dragged entities follow
// the pointer, clamped so they stay fully inside the domain. A slider sets
// its value from the pointer x and updates its bound charge when that charge
// still exists.
func (s *State) Move(p field.Vec2) {
	switch s.pick.Kind {
	case PickSensor:
		s.Sensor = s.domain.Inset(s.sensorRadius).Clamp(p)
	case PickCharge:
		if s.pick.Index < len(s.Charges) {
			s.Charges[s.pick.Index].Pos = s.domain.Inset(s.chargeRadius).Clamp(p)
		}
	case PickSlider:
		sl := s.Sliders[s.pick.Index]
		sl.SetFromX(p.X)
		if sl.Charge < len(s.Charges) {
			s.Charges[sl.Charge].Q = sl.ChargeQ()
		}
	}
}

// Release ends the current pick.
func (s *State) Release() {
	s.pick = Pick{}
}

// Update advances spawn and slider animations by dt seconds.
func (s *State) Update(dt float32) {
	for _, cv := range s.visuals {
		cv.update(dt)
	}
	for _, sl := range s.Sliders {
		sl.update(dt)
	}
}
