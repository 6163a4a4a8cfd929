package efield

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/efield/field"
)

// App is the ebiten.Game that ties State, Input, the field Sampler and the
// Renderer together.
//
// Update reads input, advances animations and samples the field; Draw only
// renders the sampled Frame. State is never mutated during Draw.
type App struct {
	cfg      Config
	state    *State
	input    *Input
	sampler  *field.Sampler
	renderer *Renderer
	script   *ScriptRunner
	fps      *fpsWidget
	frame    *field.Frame
	req      requests

	// OnScreenshot, when set, is called with the path of every PNG written.
	OnScreenshot func(path string)

	debugOut   io.Writer
	frameCount int
	stats      debugStats
}

// NewApp validates cfg and builds the scene, sampler and renderer.
func NewApp(cfg Config) (*App, error) {
	a, err := newApp(cfg)
	if err != nil {
		return nil, err
	}
	if a.renderer, err = NewRenderer(cfg); err != nil {
		return nil, err
	}
	if cfg.ShowFPS {
		a.fps = newFPSWidget()
	}
	return a, nil
}

// newApp builds everything that does not need the graphics driver.
func newApp(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sampler, err := field.NewSampler(cfg.SamplerConfig())
	if err != nil {
		return nil, err
	}
	return &App{
		cfg:      cfg,
		state:    NewState(cfg),
		input:    NewInput(),
		sampler:  sampler,
		debugOut: os.Stderr,
	}, nil
}

// State returns the scene state.
func (a *App) State() *State { return a.state }

// Input returns the input handler, e.g. to inject synthetic events.
func (a *App) Input() *Input { return a.input }

// Frame returns the most recently sampled frame, or nil before the first
// Update.
func (a *App) Frame() *field.Frame { return a.frame }

// SetScript attaches a ScriptRunner. Its steps run from Update, one per
// frame, before input is processed.
func (a *App) SetScript(r *ScriptRunner) {
	a.script = r
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	// Quit only after any screenshot queued with it has been drawn.
	if a.req.quit && len(a.req.screenshots) == 0 {
		return ebiten.Termination
	}
	dt := 1.0 / float64(ebiten.TPS())
	a.step(float32(dt))
	if a.fps != nil {
		a.fps.update(dt)
	}
	return nil
}

// step runs one frame of simulation without touching the graphics driver
// beyond input polling.
func (a *App) step(dt float32) {
	if a.script != nil {
		a.script.step(a.input, &a.req)
	}
	if a.input.Update(a.state) {
		a.Screenshot("key")
	}
	a.state.Update(dt)
	a.sample()
}

func (a *App) sample() {
	start := time.Now()
	a.frame = a.sampler.Sample(a.state.Charges, a.state.Sensor)
	a.stats.sampleTime = time.Since(start)
	a.stats.grid = len(a.frame.Grid)
	a.stats.lines = len(a.frame.Lines)
	a.stats.points = a.frame.PointCount()
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	if a.frame == nil {
		a.sample()
	}
	start := time.Now()
	a.renderer.Draw(screen, a.state, a.frame)
	if a.fps != nil {
		a.fps.draw(screen, borderThickness, borderThickness)
	}
	a.stats.drawTime = time.Since(start)
	a.stats.render = a.renderer.Stats()

	a.flushScreenshots(screen)
	a.frameCount++
	a.debugLog()
}

// Layout implements ebiten.Game. The logical screen is always the configured
// window size.
func (a *App) Layout(_, _ int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}

// Run opens the window and blocks until it is closed or a script quits.
func (a *App) Run() error {
	ebiten.SetWindowTitle(a.cfg.Title)
	ebiten.SetWindowSize(a.cfg.Width, a.cfg.Height)
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Run is a convenience that builds an App from cfg and runs it.
func Run(cfg Config) error {
	a, err := NewApp(cfg)
	if err != nil {
		return err
	}
	return a.Run()
}
