// Package efield is an interactive 2D electrostatics visualizer built on
// [Ebitengine].
//
// A set of point charges produces an electric field over a rectangular
// domain. Each frame efield draws a direction field on a regular grid, field
// lines traced from every charge, the charges themselves, a draggable sensor
// with its own field arrow, and two sliders that set the magnitudes of the
// first two charges. The numerical core lives in the headless field
// package; this package owns the scene, input and drawing.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg := efield.DefaultConfig()
//	cfg.ShowFPS = true
//	if err := efield.Run(cfg); err != nil {
//		log.Fatal(err)
//	}
//
// For control over the loop, build an [App] with [NewApp]. App implements
// [ebiten.Game], so it can be handed to ebiten.RunGame directly or wrapped.
//
// # Interaction
//
// Press and drag the sensor or a charge to move it; both stay fully inside
// the domain. Drag a slider handle to set its charge between -5 and +5 nC.
// Press A to add a +1 nC charge at the centre of the domain, Q to remove the
// most recently added charge, and S to save a screenshot. The first active
// touch behaves like the mouse.
//
// # Scripting
//
// [LoadScript] parses a YAML (or JSON) list of steps that inject pointer and
// key events, wait, take screenshots and quit. Attach it with
// [App.SetScript] for reproducible sessions:
//
//	steps:
//	  - {action: drag, fromX: 400, fromY: 450, toX: 400, toY: 400, frames: 8}
//	  - {action: screenshot, label: probe}
//	  - {action: quit}
//
// [Ebitengine]: https://ebitengine.org
package efield
