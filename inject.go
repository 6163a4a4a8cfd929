package efield

import "github.com/hajimehoshi/ebiten/v2"

type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticKey
)

// syntheticEvent is a single injected pointer or key event. Pointer events
// use screen coordinates, identical to real mouse input.
type syntheticEvent struct {
	kind    syntheticKind
	x, y    float64
	pressed bool
	key     ebiten.Key
}

// InjectPress queues a pointer press at the given screen coordinates.
// The event is consumed on the next frame's Update call.
func (in *Input) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (in *Input) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (in *Input) InjectRelease(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (in *Input) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (in *Input) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		in.InjectMove(x, y)
	}
	in.InjectRelease(toX, toY)
}

// InjectKey queues a key press. It is handled exactly like a key that was
// just pressed on the keyboard.
func (in *Input) InjectKey(k ebiten.Key) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: syntheticKey, key: k})
}

// processInjected pops one event from the inject queue and feeds it through
// the pointer state machine or the key handler. pointer is true when a
// pointer event was consumed and real pointer input should be skipped.
func (in *Input) processInjected(st *State) (pointer, screenshot bool) {
	if len(in.injectQueue) == 0 {
		return false, false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	if evt.kind == syntheticKey {
		return false, in.applyKey(st, evt.key)
	}
	in.injectDown = evt.pressed
	in.processPointer(st, evt.x, evt.y, evt.pressed)
	return true, false
}
