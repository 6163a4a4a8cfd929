package efield

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation timings.
const (
	spawnDuration  = 0.25 // seconds for a new charge to pop in
	handleDuration = 0.08 // seconds for a slider handle to catch up
)

// Tween animates a single float64 field. Create one via TweenValue and call
// Update(dt) each frame; the value is written straight to the target field.
//
// There is no global animation manager. State owns its tweens and advances
// them from App.Update.
type Tween struct {
	tween  *gween.Tween
	target *float64
	Done   bool
}

// Update advances the tween by dt seconds and writes the value to the target
// field.
func (tw *Tween) Update(dt float32) {
	if tw == nil || tw.Done {
		return
	}
	val, finished := tw.tween.Update(dt)
	*tw.target = float64(val)
	tw.Done = finished
}

// TweenValue creates a Tween that animates *v from its current value to the
// target over the specified duration using the easing function.
func TweenValue(v *float64, to float64, duration float32, fn ease.TweenFunc) *Tween {
	return &Tween{tween: gween.New(float32(*v), float32(to), duration, fn), target: v}
}

// chargeVisual holds per-charge display state that is not part of the
// physics: the pop-in scale applied to the drawn disc.
type chargeVisual struct {
	scale float64
	tween *Tween
}

func newChargeVisual(animate bool) *chargeVisual {
	if !animate {
		return &chargeVisual{scale: 1}
	}
	cv := &chargeVisual{}
	cv.tween = TweenValue(&cv.scale, 1, spawnDuration, ease.OutBack)
	return cv
}

func (cv *chargeVisual) update(dt float32) {
	if cv.tween == nil {
		return
	}
	cv.tween.Update(dt)
	if cv.tween.Done {
		cv.scale = 1
		cv.tween = nil
	}
}
