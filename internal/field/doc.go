// Package field evaluates inverse-square point-source fields.
//
// A [Kernel] computes field vectors, scalar potentials and probe forces
// under strict linear superposition:
//
//	k := field.Defaults()
//	e := k.At(p, sources, field.Electric)
//	f := k.ForceOnProbe(p, probe.Value, sources, field.Electric)
//
// Every distance used as a denominator is clamped to [Kernel.MinDistance]
// before squaring, so evaluation at or near a source position stays finite.
// Positions are scene-length units; outputs are SI units, with
// [Kernel.SceneToMeters] applied before any physics.
//
// The kernel is stateless and every operation is a pure function of its
// arguments; degenerate inputs (zero sources, coincident points) produce
// well-defined zero-or-finite results, never errors.
package field
