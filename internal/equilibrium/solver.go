package equilibrium

import (
	"math"

	"github.com/san-kum/fieldlab/internal/field"
	"github.com/san-kum/fieldlab/internal/vec"
)

const (
	DefaultTolerance = 1e-6
	DefaultMaxIters  = 32
	// DefaultGain scales the corrective step taken per unit of residual
	// field magnitude, in scene units per (N/C).
	DefaultGain = 1e-4
)

// Status classifies a solve outcome. No outcome is an error: callers render
// what they can and skip the rest.
type Status int

const (
	// Converged: the refined point's field magnitude is within tolerance.
	Converged Status = iota
	// NonConverged: the iteration budget ran out; Pos is still the best
	// estimate found and remains usable as a near-zero-field point.
	NonConverged
	// NoEquilibrium: degenerate pair (equal-magnitude opposite charges, or
	// sources closer than the distance floor).
	NoEquilibrium
	// Unsupported: source count is not exactly two, or the mode is Gravity,
	// where all sources attract and the field never cancels.
	Unsupported
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case NonConverged:
		return "non-converged"
	case NoEquilibrium:
		return "no equilibrium"
	default:
		return "unsupported"
	}
}

// Result is a zero-field point or an explicit reason there is none.
type Result struct {
	Pos      vec.Vec3
	Status   Status
	Residual float64
	Iters    int
}

func (r Result) Found() bool { return r.Status == Converged || r.Status == NonConverged }

// Solver locates the zero-field point of a two-source electric configuration:
// a closed-form estimate on the inter-source axis, then a short gradient-style
// refinement.
type Solver struct {
	Kernel    field.Kernel
	Tolerance float64
	MaxIters  int
	Gain      float64
}

func NewSolver(k field.Kernel) *Solver {
	return &Solver{
		Kernel:    k,
		Tolerance: DefaultTolerance,
		MaxIters:  DefaultMaxIters,
		Gain:      DefaultGain,
	}
}

func (s *Solver) Solve(sources []field.Source, mode field.Mode) Result {
	if len(sources) != 2 || mode != field.Electric {
		return Result{Status: Unsupported}
	}

	a, b := sources[0], sources[1]
	d := a.Pos.Distance(b.Pos)
	if d < s.Kernel.MinDistance {
		return Result{Status: NoEquilibrium}
	}

	qa, qb := math.Abs(a.Value), math.Abs(b.Value)
	sa, sb := math.Sqrt(qa), math.Sqrt(qb)

	var estimate vec.Vec3
	switch {
	case a.Value*b.Value > 0:
		// Like signs: the fields oppose each other on the segment between
		// the sources, cancelling at r1/d = sqrt(|q1|)/(sqrt(|q1|)+sqrt(|q2|)).
		r1 := d * sa / (sa + sb)
		estimate = a.Pos.Add(b.Pos.Sub(a.Pos).Normalize().Scale(r1))
	case a.Value*b.Value < 0:
		if qa == qb {
			// Equal magnitudes push the solution to infinity.
			return Result{Status: NoEquilibrium}
		}
		// Opposite signs cancel outside the segment, beyond the weaker
		// source: sqrt(|q_strong|)*x = sqrt(|q_weak|)*(x+d).
		weak, strong := a, b
		sw, ss := sa, sb
		if qa > qb {
			weak, strong = b, a
			sw, ss = sb, sa
		}
		x := sw * d / (ss - sw)
		estimate = weak.Pos.Add(weak.Pos.Sub(strong.Pos).Normalize().Scale(x))
	default:
		// A zero-valued source leaves a single bare field with no null.
		return Result{Status: NoEquilibrium}
	}

	return s.refine(estimate, sources, mode)
}

// refine nudges the estimate opposite to the residual field, with a step
// proportional to the residual's magnitude. An ad hoc correction without a
// convergence proof: exhausting the budget still returns the best point seen.
func (s *Solver) refine(pos vec.Vec3, sources []field.Source, mode field.Mode) Result {
	best := pos
	bestMag := s.Kernel.At(pos, sources, mode).Length()

	for i := 0; i < s.MaxIters; i++ {
		f := s.Kernel.At(pos, sources, mode)
		mag := f.Length()
		if mag < bestMag {
			best, bestMag = pos, mag
		}
		if mag <= s.Tolerance {
			return Result{Pos: pos, Status: Converged, Residual: mag, Iters: i}
		}
		pos = pos.Sub(f.Scale(s.Gain / s.Kernel.SceneToMeters))
	}
	return Result{Pos: best, Status: NonConverged, Residual: bestMag, Iters: s.MaxIters}
}
