package trace

import (
	"math"
	"math/rand"

	"github.com/san-kum/fieldlab/internal/field"
	"github.com/san-kum/fieldlab/internal/vec"
)

const (
	DefaultSeedCount       = 120
	DefaultSeedRadius      = 4.0
	DefaultStepSize        = 0.05
	DefaultMaxSteps        = 600
	DefaultBoxExtent       = 12.0
	DefaultExclusionRadius = 0.3
	// DefaultFieldFloor terminates integration where the field has
	// effectively vanished (near an equilibrium or far from all sources).
	DefaultFieldFloor = 1e-12
	// DefaultMinPoints discards assembled lines too short to read visually.
	DefaultMinPoints = 8
)

// Line is one continuous integrated field line. Phase is a random offset
// used by renderers to stagger flow animation; it carries no physical meaning.
type Line struct {
	Points []vec.Vec3
	Phase  float64
}

// Tracer integrates field lines with fixed-step Euler stepping. Fixed steps
// are enough for visual fidelity; path length is not quantitative.
type Tracer struct {
	Kernel          field.Kernel
	SeedCount       int
	SeedRadius      float64
	StepSize        float64
	MaxSteps        int
	BoxExtent       float64
	ExclusionRadius float64
	FieldFloor      float64
	MinPoints       int

	rng *rand.Rand
}

func NewTracer(k field.Kernel, seed int64) *Tracer {
	return &Tracer{
		Kernel:          k,
		SeedCount:       DefaultSeedCount,
		SeedRadius:      DefaultSeedRadius,
		StepSize:        DefaultStepSize,
		MaxSteps:        DefaultMaxSteps,
		BoxExtent:       DefaultBoxExtent,
		ExclusionRadius: DefaultExclusionRadius,
		FieldFloor:      DefaultFieldFloor,
		MinPoints:       DefaultMinPoints,
		rng:             rand.New(rand.NewSource(seed)),
	}
}

// Seeds distributes count points on a sphere shell enclosing the source
// configuration using the golden-angle Fibonacci spiral, which is
// approximately uniform in solid angle. Seeds landing inside a source's
// exclusion radius are dropped.
func (tr *Tracer) Seeds(sources []field.Source, count int) []vec.Vec3 {
	if count <= 0 || len(sources) == 0 {
		return nil
	}
	center := centroid(sources)
	golden := math.Pi * (3 - math.Sqrt(5))

	seeds := make([]vec.Vec3, 0, count)
	for i := 0; i < count; i++ {
		y := 1 - 2*(float64(i)+0.5)/float64(count)
		r := math.Sqrt(1 - y*y)
		phi := golden * float64(i)
		p := center.Add(vec.Vec3{
			X: r * math.Cos(phi),
			Y: y,
			Z: r * math.Sin(phi),
		}.Scale(tr.SeedRadius))
		if tr.nearSource(p, sources) {
			continue
		}
		seeds = append(seeds, p)
	}
	return seeds
}

// Trace integrates one line through the seed: the backward half is reversed
// and joined to the seed and the forward half, so the result reads as a
// single continuous curve rather than a ray. Returns a zero-value Line
// (empty Points) when the seed is excluded or the assembly is too short.
func (tr *Tracer) Trace(seed vec.Vec3, sources []field.Source, mode field.Mode) Line {
	if tr.nearSource(seed, sources) {
		return Line{}
	}
	backward := tr.traceDirection(seed, sources, mode, -1)
	forward := tr.traceDirection(seed, sources, mode, +1)

	points := make([]vec.Vec3, 0, len(backward)+len(forward)+1)
	for i := len(backward) - 1; i >= 0; i-- {
		points = append(points, backward[i])
	}
	points = append(points, seed)
	points = append(points, forward...)

	if len(points) < tr.MinPoints {
		return Line{}
	}
	return Line{Points: points, Phase: tr.rng.Float64()}
}

// TraceAll seeds the configuration and traces every surviving line.
func (tr *Tracer) TraceAll(sources []field.Source, mode field.Mode) []Line {
	seeds := tr.Seeds(sources, tr.SeedCount)
	lines := make([]Line, 0, len(seeds))
	for _, s := range seeds {
		if ln := tr.Trace(s, sources, mode); len(ln.Points) > 0 {
			lines = append(lines, ln)
		}
	}
	return lines
}

// traceDirection advances from start along the local field direction
// (sign +1) or against it (sign -1), recording every visited position.
// Termination is guaranteed: the loop runs at most MaxSteps iterations and
// additionally stops on bounding-box exit, source entry or vanished field.
func (tr *Tracer) traceDirection(start vec.Vec3, sources []field.Source, mode field.Mode, sign float64) []vec.Vec3 {
	points := make([]vec.Vec3, 0, tr.MaxSteps)
	pos := start
	for i := 0; i < tr.MaxSteps; i++ {
		if !tr.inBounds(pos) {
			break
		}
		if tr.nearSource(pos, sources) {
			break
		}
		f := tr.Kernel.At(pos, sources, mode)
		if f.Length() < tr.FieldFloor {
			break
		}
		pos = pos.Add(f.Normalize().Scale(sign * tr.StepSize))
		points = append(points, pos)
	}
	return points
}

func (tr *Tracer) inBounds(p vec.Vec3) bool {
	e := tr.BoxExtent
	return p.X >= -e && p.X <= e && p.Y >= -e && p.Y <= e && p.Z >= -e && p.Z <= e
}

func (tr *Tracer) nearSource(p vec.Vec3, sources []field.Source) bool {
	for _, src := range sources {
		if p.Distance(src.Pos) < tr.ExclusionRadius {
			return true
		}
	}
	return false
}

func centroid(sources []field.Source) vec.Vec3 {
	var c vec.Vec3
	for _, s := range sources {
		c = c.Add(s.Pos)
	}
	return c.Scale(1 / float64(len(sources)))
}
