// Package field computes the electric field of a set of point charges in the
// plane and turns it into draw-ready geometry.
//
// The package has three layers:
//
//   - [Evaluate] sums the inverse-square contribution of every [Charge] at a
//     point (superposition).
//   - [Trace] and [AppendTrace] integrate a streamline of the normalized field
//     with a fixed Euler step, starting from a seed produced by [Seeds].
//   - [SampleGrid], [SampleSensor] and [Sampler] evaluate the field over a
//     regular lattice, at a probe, and along every seeded line once per frame.
//
// Everything here is a pure function of the charge set and the domain. A
// [Sampler] reuses its buffers between frames but never carries results over:
// charges may move every frame.
//
// # Coincident charges
//
// A query point that coincides exactly with a charge would divide by zero.
// That charge is skipped: it contributes a zero vector, and a trace whose
// total field is exactly zero stops normally. No epsilon is applied anywhere;
// a point one ULP away from a charge is evaluated as usual.
package field
