package efield

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/efield/field"
)

// Stroke widths in pixels.
const (
	borderThickness  = 5.0
	gridArrowWidth   = 3.0
	sensorArrowWidth = 4.0
	fieldLineWidth   = 1.0
	outlineThickness = 2.0
	labelOffsetY     = 25.0
)

// RenderStats counts what the last Draw submitted.
type RenderStats struct {
	Vertices  int
	Triangles int
	DrawCalls int
	Labels    int
}

// Renderer turns a State and its sampled Frame into triangles. Everything
// untextured is drawn from a single white pixel with per-vertex colors, so
// each layer costs one DrawTriangles32 call.
type Renderer struct {
	cfg   Config
	white *ebiten.Image
	glyph *TTFFont
	label *TTFFont

	scene   batch // border, grid, field lines, charges
	overlay batch // sensor and sliders
	stats   RenderStats
}

// NewRenderer loads the bundled fonts and prepares the white pixel.
func NewRenderer(cfg Config) (*Renderer, error) {
	glyph, label, err := loadDefaultFonts()
	if err != nil {
		return nil, err
	}
	white := ebiten.NewImage(1, 1)
	white.Fill(ColorWhite.toRGBA())
	return &Renderer{cfg: cfg, white: white, glyph: glyph, label: label}, nil
}

// Stats returns the counters of the last Draw.
func (r *Renderer) Stats() RenderStats {
	return r.stats
}

// Draw renders one frame onto screen in painter order: border, grid arrows,
// field lines, charges, sensor, sliders.
func (r *Renderer) Draw(screen *ebiten.Image, st *State, f *field.Frame) {
	r.stats = RenderStats{}
	screen.Fill(ColorBlack.toRGBA())

	r.buildScene(st, f)
	r.flush(screen, &r.scene)
	for _, c := range st.Charges {
		r.glyph.drawCentered(screen, ChargeGlyph(c.Q), c.Pos.X, c.Pos.Y, ColorWhite)
		r.stats.Labels++
	}

	r.buildOverlay(st, f)
	r.flush(screen, &r.overlay)
	for _, sl := range st.Sliders {
		s := sl.Text()
		x, y := r.labelOrigin(sl, s)
		r.label.drawAt(screen, s, x, y, ColorWhite)
		r.stats.Labels++
	}
}

// labelOrigin returns the top-left corner of slider label s: centred over
// the track, labelOffsetY above it.
func (r *Renderer) labelOrigin(sl *Slider, s string) (x, y float64) {
	w, _ := r.label.MeasureString(s)
	return sl.Track.X + (sl.Track.Width-w)/2, sl.Track.Y - labelOffsetY
}

// buildScene fills the scene batch.
func (r *Renderer) buildScene(st *State, f *field.Frame) {
	b := &r.scene
	b.reset()

	b.appendRectOutline(st.Domain(), borderThickness, ColorWhite)

	for _, s := range f.Grid {
		if v, ok := s.Arrow(r.cfg.ArrowLength); ok {
			b.appendArrow(s.Point, s.Point.Add(v), gridArrowWidth, ColorWhite)
		}
	}

	for i := range f.Lines {
		// Lines that never left their seed have nothing to show.
		if len(f.Lines[i].Points) < 2 {
			continue
		}
		b.appendPolyline(f.Lines[i].Points, fieldLineWidth, ColorLine)
	}

	for i, c := range st.Charges {
		radius := r.cfg.ChargeRadius * st.ChargeScale(i)
		b.appendDisc(c.Pos, radius, ChargeColor(c.Q))
		b.appendRing(c.Pos, radius, outlineThickness, ColorWhite)
	}
}

// buildOverlay fills the overlay batch.
func (r *Renderer) buildOverlay(st *State, f *field.Frame) {
	b := &r.overlay
	b.reset()

	b.appendDisc(st.Sensor, r.cfg.SensorRadius, ColorSensor)
	b.appendRing(st.Sensor, r.cfg.SensorRadius, outlineThickness, ColorWhite)
	if v, ok := f.Sensor.Arrow(r.cfg.SensorArrowLength); ok {
		b.appendArrow(st.Sensor, st.Sensor.Add(v), sensorArrowWidth, ColorSensor)
	}

	for _, sl := range st.Sliders {
		b.appendRectOutline(sl.Track, outlineThickness, ColorWhite)
		b.appendDisc(sl.Handle(), r.cfg.SensorRadius, ColorHandle)
	}
}

// flush submits b as a single DrawTriangles32 call.
func (r *Renderer) flush(dst *ebiten.Image, b *batch) {
	if len(b.inds) == 0 {
		return
	}
	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles32(b.verts, b.inds, r.white, &triOp)

	r.stats.Vertices += len(b.verts)
	r.stats.Triangles += len(b.inds) / 3
	r.stats.DrawCalls++
}
