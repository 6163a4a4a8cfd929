package efield

import (
	"fmt"
	"io"
	"time"
)

// debugLogInterval is the number of frames between debug stat lines.
const debugLogInterval = 60

// debugStats holds per-frame timing and geometry metrics.
// Printed only when Config.Debug is true.
type debugStats struct {
	sampleTime time.Duration
	drawTime   time.Duration
	grid       int
	lines      int
	points     int
	render     RenderStats
}

// writeDebugStats prints timing and draw-call stats to w.
func writeDebugStats(w io.Writer, stats debugStats) {
	_, _ = fmt.Fprintf(w,
		"[efield] sample: %v | draw: %v | total: %v\n",
		stats.sampleTime, stats.drawTime, stats.sampleTime+stats.drawTime)
	_, _ = fmt.Fprintf(w,
		"[efield] grid: %d | lines: %d | points: %d | vertices: %d | triangles: %d | draw calls: %d\n",
		stats.grid, stats.lines, stats.points,
		stats.render.Vertices, stats.render.Triangles, stats.render.DrawCalls)
}

// debugLog prints stats every debugLogInterval frames when debugging is on.
func (a *App) debugLog() {
	if !a.cfg.Debug || a.frameCount%debugLogInterval != 0 {
		return
	}
	writeDebugStats(a.debugOut, a.stats)
}
