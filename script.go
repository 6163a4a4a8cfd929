package efield

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Script actions.
const (
	ActionPress      = "press"
	ActionMove       = "move"
	ActionRelease    = "release"
	ActionClick      = "click"
	ActionDrag       = "drag"
	ActionKey        = "key"
	ActionWait       = "wait"
	ActionScreenshot = "screenshot"
	ActionQuit       = "quit"
)

// ErrInvalidScript is wrapped by every LoadScript error.
var ErrInvalidScript = errors.New("efield: invalid script")

// scriptKeys maps script key names to the bound keys.
var scriptKeys = map[string]ebiten.Key{
	"a": KeyAddCharge,
	"q": KeyRemoveCharge,
	"s": KeyScreenshot,
}

// ScriptStep is a single action in a script.
type ScriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	Key    string  `yaml:"key,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

type script struct {
	Steps []ScriptStep `yaml:"steps"`
}

// requests collects what a frame asked the app to do after drawing.
type requests struct {
	screenshots []string
	quit        bool
}

// ScriptRunner sequences injected input, screenshots and quit across frames
// for reproducible sessions and visual testing. Attach it with App.SetScript.
type ScriptRunner struct {
	steps     []ScriptStep
	keys      []ebiten.Key // resolved key per step; zero for non-key steps
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML script. JSON is accepted as well, since every
// JSON document is valid YAML.
//
//	steps:
//	  - {action: drag, fromX: 300, fromY: 300, toX: 200, toY: 150, frames: 10}
//	  - {action: key, key: a}
//	  - {action: screenshot, label: added}
//	  - {action: quit}
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", ErrInvalidScript)
	}
	keys := make([]ebiten.Key, len(sc.Steps))
	for i, st := range sc.Steps {
		switch st.Action {
		case ActionPress, ActionMove, ActionRelease, ActionClick, ActionDrag,
			ActionWait, ActionScreenshot, ActionQuit:
		case ActionKey:
			k, ok := scriptKeys[strings.ToLower(st.Key)]
			if !ok {
				return nil, fmt.Errorf("%w: step %d: unknown key %q", ErrInvalidScript, i, st.Key)
			}
			keys[i] = k
		default:
			return nil, fmt.Errorf("%w: step %d: unknown action %q", ErrInvalidScript, i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps, keys: keys}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from App.Update before
// input is processed.
func (r *ScriptRunner) step(in *Input, req *requests) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if in.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	i := r.cursor
	st := r.steps[i]
	r.cursor++

	switch st.Action {
	case ActionPress:
		in.InjectPress(st.X, st.Y)
	case ActionMove:
		in.InjectMove(st.X, st.Y)
	case ActionRelease:
		in.InjectRelease(st.X, st.Y)
	case ActionClick:
		in.InjectClick(st.X, st.Y)
	case ActionDrag:
		in.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case ActionKey:
		in.InjectKey(r.keys[i])
	case ActionWait:
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case ActionScreenshot:
		req.screenshots = append(req.screenshots, st.Label)
	case ActionQuit:
		req.quit = true
		r.done = true
		return
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.Pending() == 0 {
		r.done = true
	}
}
