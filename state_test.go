package efield

import (
	"testing"

	"github.com/phanxgames/efield/field"
)

func newTestState() *State {
	return NewState(DefaultConfig())
}

func TestNewState(t *testing.T) {
	st := newTestState()
	if len(st.Charges) != 2 {
		t.Fatalf("charges = %d, want 2", len(st.Charges))
	}
	if st.Sensor != (field.Vec2{X: 400, Y: 450}) {
		t.Errorf("sensor = %v", st.Sensor)
	}
	if len(st.Sliders) != 2 {
		t.Fatalf("sliders = %d, want 2", len(st.Sliders))
	}
	// Sliders start at the magnitudes of their bound charges.
	if st.Sliders[0].Value != 1 || st.Sliders[1].Value != -1 {
		t.Errorf("slider values = %v, %v; want 1, -1", st.Sliders[0].Value, st.Sliders[1].Value)
	}
	if st.Sliders[0].Label != "Q1" || st.Sliders[1].Label != "Q2" {
		t.Errorf("labels = %q, %q", st.Sliders[0].Label, st.Sliders[1].Label)
	}
	if st.Pick().Kind != PickNone {
		t.Errorf("initial pick = %v", st.Pick().Kind)
	}
}

func TestPickAt(t *testing.T) {
	tests := []struct {
		name string
		p    field.Vec2
		want Pick
	}{
		{"sensor", field.Vec2{X: 405, Y: 450}, Pick{Kind: PickSensor}},
		{"sensor edge", field.Vec2{X: 410, Y: 450}, Pick{Kind: PickSensor}},
		{"first charge", field.Vec2{X: 300, Y: 310}, Pick{Kind: PickCharge, Index: 0}},
		{"second charge edge", field.Vec2{X: 520, Y: 300}, Pick{Kind: PickCharge, Index: 1}},
		{"slider track", field.Vec2{X: 200, Y: 655}, Pick{Kind: PickSlider, Index: 0}},
		{"slider padding", field.Vec2{X: 500, Y: 642}, Pick{Kind: PickSlider, Index: 1}},
		{"empty space", field.Vec2{X: 100, Y: 100}, Pick{}},
		{"between sliders", field.Vec2{X: 400, Y: 655}, Pick{}},
	}
	st := newTestState()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := st.PickAt(tt.p); got != tt.want {
				t.Errorf("PickAt(%v) = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPickPriority(t *testing.T) {
	st := newTestState()
	// Stack a new charge and the sensor on top of charge 0.
	st.Charges = append(st.Charges, field.Charge{Pos: field.Vec2{X: 305, Y: 300}, Q: 1e-9})
	if got := st.PickAt(field.Vec2{X: 302, Y: 300}); got != (Pick{Kind: PickCharge, Index: 2}) {
		t.Errorf("overlapping charges: got %+v, want most recent charge", got)
	}
	st.Sensor = field.Vec2{X: 300, Y: 300}
	if got := st.PickAt(field.Vec2{X: 302, Y: 300}); got.Kind != PickSensor {
		t.Errorf("sensor over charges: got %+v, want sensor", got)
	}
}

func TestDragClampsToDomain(t *testing.T) {
	tests := []struct {
		name  string
		start field.Vec2
		to    field.Vec2
		want  field.Vec2
		check func(*State) field.Vec2
	}{
		{"charge inside", field.Vec2{X: 300, Y: 300}, field.Vec2{X: 100, Y: 120}, field.Vec2{X: 100, Y: 120},
			func(s *State) field.Vec2 { return s.Charges[0].Pos }},
		{"charge top-left", field.Vec2{X: 300, Y: 300}, field.Vec2{X: -50, Y: -50}, field.Vec2{X: 20, Y: 20},
			func(s *State) field.Vec2 { return s.Charges[0].Pos }},
		{"charge into controls", field.Vec2{X: 300, Y: 300}, field.Vec2{X: 900, Y: 690}, field.Vec2{X: 780, Y: 580},
			func(s *State) field.Vec2 { return s.Charges[0].Pos }},
		{"sensor into controls", field.Vec2{X: 400, Y: 450}, field.Vec2{X: 400, Y: 650}, field.Vec2{X: 400, Y: 590},
			func(s *State) field.Vec2 { return s.Sensor }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestState()
			st.Press(tt.start)
			st.Move(tt.to)
			if got := tt.check(st); got != tt.want {
				t.Errorf("position = %v, want %v", got, tt.want)
			}
			st.Release()
			if st.Pick().Kind != PickNone {
				t.Error("release should clear the pick")
			}
		})
	}
}

func TestMoveWithoutPickIsNoop(t *testing.T) {
	st := newTestState()
	before := append([]field.Charge(nil), st.Charges...)
	st.Press(field.Vec2{X: 10, Y: 10})
	st.Move(field.Vec2{X: 300, Y: 300})
	for i := range before {
		if st.Charges[i] != before[i] {
			t.Errorf("charge %d changed: %+v -> %+v", i, before[i], st.Charges[i])
		}
	}
}

func TestSliderDragSetsCharge(t *testing.T) {
	st := newTestState()
	st.Press(field.Vec2{X: 250, Y: 655})
	if st.Pick() != (Pick{Kind: PickSlider, Index: 0}) {
		t.Fatalf("pick = %+v", st.Pick())
	}
	// Press alone does not change the value.
	if st.Sliders[0].Value != 1 {
		t.Errorf("value changed on press: %v", st.Sliders[0].Value)
	}
	st.Move(field.Vec2{X: 350, Y: 700})
	if st.Sliders[0].Value != 5 {
		t.Errorf("value = %v, want 5", st.Sliders[0].Value)
	}
	if !approxEqual(st.Charges[0].Q, 5e-9, 1e-18) {
		t.Errorf("Q = %v, want 5e-9", st.Charges[0].Q)
	}
	st.Move(field.Vec2{X: 150, Y: 655})
	if !approxEqual(st.Charges[0].Q, -5e-9, 1e-18) {
		t.Errorf("Q = %v, want -5e-9", st.Charges[0].Q)
	}
}

func TestSliderWithoutCharge(t *testing.T) {
	st := newTestState()
	st.RemoveLastCharge()
	st.Press(field.Vec2{X: 550, Y: 655})
	st.Move(field.Vec2{X: 650, Y: 655})
	if st.Sliders[1].Value != 5 {
		t.Errorf("value = %v, want 5", st.Sliders[1].Value)
	}
	if len(st.Charges) != 1 || st.Charges[0].Q != 1e-9 {
		t.Errorf("charges changed: %+v", st.Charges)
	}
}

func TestAddRemoveCharge(t *testing.T) {
	st := newTestState()
	idx := st.AddCharge(NewChargeQ)
	if idx != 2 || len(st.Charges) != 3 {
		t.Fatalf("AddCharge index = %d, len = %d", idx, len(st.Charges))
	}
	if got := st.Charges[2]; got.Pos != (field.Vec2{X: 400, Y: 300}) || got.Q != 1e-9 {
		t.Errorf("new charge = %+v, want +1e-9 at (400, 300)", got)
	}
	if s := st.ChargeScale(2); s != 0 {
		t.Errorf("new charge scale = %v, want 0 before any update", s)
	}
	for i := 0; i < 30; i++ {
		st.Update(1.0 / 60)
	}
	if s := st.ChargeScale(2); s != 1 {
		t.Errorf("scale after spawn = %v, want 1", s)
	}

	for i := 3; i > 0; i-- {
		if !st.RemoveLastCharge() {
			t.Fatalf("RemoveLastCharge returned false with %d charges", i)
		}
	}
	if st.RemoveLastCharge() {
		t.Error("RemoveLastCharge on empty should return false")
	}
	if len(st.Charges) != 0 {
		t.Errorf("charges = %d, want 0", len(st.Charges))
	}
}

func TestRemovePickedCharge(t *testing.T) {
	st := newTestState()
	st.Press(field.Vec2{X: 500, Y: 300})
	if st.Pick() != (Pick{Kind: PickCharge, Index: 1}) {
		t.Fatalf("pick = %+v", st.Pick())
	}
	st.RemoveLastCharge()
	if st.Pick().Kind != PickNone {
		t.Errorf("pick on removed charge should be dropped, got %+v", st.Pick())
	}
	st.Move(field.Vec2{X: 100, Y: 100}) // must not panic
}

func TestPickKindString(t *testing.T) {
	tests := map[PickKind]string{
		PickNone:   "none",
		PickSensor: "sensor",
		PickCharge: "charge",
		PickSlider: "slider",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}

func TestAddChargeResyncsSlider(t *testing.T) {
	st := newTestState()
	if !st.RemoveLastCharge() {
		t.Fatal("remove failed")
	}
	sl := st.Sliders[1]
	if sl.Text() != "Q2: -1 nC" {
		t.Fatalf("unbound slider text = %q, want the old value", sl.Text())
	}

	i := st.AddCharge(NewChargeQ)
	if i != 1 {
		t.Fatalf("AddCharge index = %d, want 1", i)
	}
	if sl.Value != 1 || sl.Text() != "Q2: 1 nC" {
		t.Errorf("slider = %v (%q), want 1", sl.Value, sl.Text())
	}
	if !approxEqual(sl.Handle().X, sl.Track.X+sl.Fraction()*sl.Track.Width, epsilon) {
		t.Errorf("handle x = %v, not at the new value", sl.Handle().X)
	}

	// A third charge has no slider; existing sliders are untouched.
	st.AddCharge(2 * NewChargeQ)
	if st.Sliders[0].Value != 1 || sl.Value != 1 {
		t.Errorf("slider values = %v, %v after adding an unbound charge", st.Sliders[0].Value, sl.Value)
	}
}
