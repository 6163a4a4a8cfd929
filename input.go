package efield

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard bindings.
const (
	KeyAddCharge    = ebiten.KeyA
	KeyRemoveCharge = ebiten.KeyQ
	KeyScreenshot   = ebiten.KeyS
)

// pointerState is the press/move/release state of the single pointer.
type pointerState struct {
	down  bool
	lastX float64
	lastY float64
}

// Input translates mouse, touch, keyboard and injected events into State
// changes. The mouse and the first active touch drive the same pointer.
type Input struct {
	pointer     pointerState
	injectQueue []syntheticEvent
	// injectDown is set by an injected press and cleared by an injected
	// release. Real pointer input is ignored while it is set.
	injectDown bool
	// readReal polls the physical pointer.
	readReal func() (x, y float64, pressed bool)

	keys      []ebiten.Key
	touchIDs  []ebiten.TouchID
	touchID   ebiten.TouchID
	touchDown bool
}

// NewInput returns an Input with an empty inject queue.
func NewInput() *Input {
	in := &Input{}
	in.readReal = in.readPointer
	return in
}

// Pending returns the number of injected events not yet consumed.
func (in *Input) Pending() int {
	return len(in.injectQueue)
}

// Update processes one frame of input against st. It reports whether a
// screenshot was requested from the keyboard this frame.
//
// At most one injected event is consumed per frame. Real pointer input is
// ignored on any frame that consumes an injected event and for as long as an
// injected press is held, so keys and waits inside a scripted drag do not
// end it.
func (in *Input) Update(st *State) (screenshot bool) {
	consumed := len(in.injectQueue) > 0
	_, shot := in.processInjected(st)
	if shot {
		screenshot = true
	}
	if !consumed && !in.injectDown {
		x, y, pressed := in.readReal()
		in.processPointer(st, x, y, pressed)
	}

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		if in.applyKey(st, k) {
			screenshot = true
		}
	}
	return screenshot
}

// readPointer returns the pointer position and button state. A touch takes
// over the pointer while any finger is down; the finger that started the
// touch keeps it until lifted.
func (in *Input) readPointer() (x, y float64, pressed bool) {
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	if len(in.touchIDs) > 0 {
		tid := in.touchIDs[0]
		if in.touchDown {
			for _, id := range in.touchIDs {
				if id == in.touchID {
					tid = id
					break
				}
			}
		}
		in.touchID = tid
		in.touchDown = true
		tx, ty := ebiten.TouchPosition(tid)
		return float64(tx), float64(ty), true
	}
	if in.touchDown {
		// Finger lifted: release where it was last seen.
		in.touchDown = false
		return in.pointer.lastX, in.pointer.lastY, false
	}
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// processPointer runs the pointer state machine.
func (in *Input) processPointer(st *State, x, y float64, pressed bool) {
	ps := &in.pointer
	moved := x != ps.lastX || y != ps.lastY

	if pressed && !ps.down {
		ps.down = true
		st.Press(vec(x, y))
	} else if !pressed && ps.down {
		// A release away from the last move still lands the drag there.
		if moved {
			st.Move(vec(x, y))
		}
		st.Release()
		ps.down = false
	} else if pressed && ps.down {
		if moved {
			st.Move(vec(x, y))
		}
	}
	ps.lastX = x
	ps.lastY = y
}

// applyKey handles a just-pressed key. It reports whether the key asked for
// a screenshot.
func (in *Input) applyKey(st *State, k ebiten.Key) bool {
	switch k {
	case KeyAddCharge:
		st.AddCharge(NewChargeQ)
	case KeyRemoveCharge:
		st.RemoveLastCharge()
	case KeyScreenshot:
		return true
	}
	return false
}
