package field

import (
	"math"

	"github.com/san-kum/fieldlab/internal/vec"
)

// Mode selects the force law and attraction convention.
type Mode int

const (
	Electric Mode = iota
	Gravity
)

func (m Mode) String() string {
	if m == Gravity {
		return "gravity"
	}
	return "electric"
}

// ParseMode maps a config/CLI name to a Mode. Unknown names fall back to Electric.
func ParseMode(name string) Mode {
	if name == "gravity" {
		return Gravity
	}
	return Electric
}

const (
	// DefaultCoulombK is the Coulomb constant in N*m^2/C^2.
	DefaultCoulombK = 8.9875e9
	// DefaultGravityG is the gravitational constant in N*m^2/kg^2.
	DefaultGravityG = 6.674e-11
	// DefaultMinDistance is the distance floor in scene units; every
	// source-to-point distance used as a denominator is clamped to it.
	DefaultMinDistance = 0.1
	// DefaultSceneToMeters converts scene-length units to meters.
	DefaultSceneToMeters = 1.0
)

// Source is a point charge (Electric) or point mass (Gravity).
type Source struct {
	ID    int
	Pos   vec.Vec3
	Value float64
}

// Probe is a test charge or mass; it measures force but never sources a field.
type Probe struct {
	Pos   vec.Vec3
	Value float64
}

// Kernel evaluates fields, potentials and probe forces for point sources.
// Positions are taken in scene units; field, potential and force values come
// back in SI units. The kernel holds constants only, never per-call state.
type Kernel struct {
	K             float64
	G             float64
	MinDistance   float64
	SceneToMeters float64
}

func Defaults() Kernel {
	return Kernel{
		K:             DefaultCoulombK,
		G:             DefaultGravityG,
		MinDistance:   DefaultMinDistance,
		SceneToMeters: DefaultSceneToMeters,
	}
}

// Contribution computes the single-source field term at p.
//
// Electric mode points the term from the source toward p, so the sign of
// Value alone decides repulsion versus attraction. Gravity mode points the
// term from p toward the source: always attractive, no special-casing of
// sign.
func (k Kernel) Contribution(p vec.Vec3, src Source, mode Mode) vec.Vec3 {
	away := p.Sub(src.Pos)
	r := k.clamp(away.Length()) * k.SceneToMeters

	if mode == Gravity {
		mag := k.G * src.Value / (r * r)
		return away.Normalize().Scale(-mag)
	}
	mag := k.K * src.Value / (r * r)
	return away.Normalize().Scale(mag)
}

// At returns the superposed field vector at p. Zero sources yield a zero vector.
func (k Kernel) At(p vec.Vec3, sources []Source, mode Mode) vec.Vec3 {
	var e vec.Vec3
	for _, src := range sources {
		e = e.Add(k.Contribution(p, src, mode))
	}
	return e
}

// PotentialAt returns the superposed scalar potential at p, signed and
// accumulated algebraically.
func (k Kernel) PotentialAt(p vec.Vec3, sources []Source, mode Mode) float64 {
	total := 0.0
	for _, src := range sources {
		r := k.clamp(p.Distance(src.Pos)) * k.SceneToMeters
		if mode == Gravity {
			total += -k.G * src.Value / r
		} else {
			total += k.K * src.Value / r
		}
	}
	return total
}

// ForceOnProbe returns the force on a probe of the given value at p.
func (k Kernel) ForceOnProbe(p vec.Vec3, probeValue float64, sources []Source, mode Mode) vec.Vec3 {
	return k.At(p, sources, mode).Scale(probeValue)
}

func (k Kernel) clamp(d float64) float64 {
	return math.Max(d, k.MinDistance)
}
