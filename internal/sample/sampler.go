package sample

import (
	"math"

	"github.com/san-kum/fieldlab/internal/field"
	"github.com/san-kum/fieldlab/internal/vec"
)

const (
	DefaultHalfExtent      = 5.0
	DefaultStep            = 1.0
	DefaultMaxSamples      = 500
	DefaultExclusionRadius = 0.5
	// DefaultMagnitudeFloor is the absolute field magnitude below which a
	// sample is dropped rather than rendered as a zero-length arrow.
	DefaultMagnitudeFloor = 1e-12
)

// Result is one lattice sample prepared for arrow rendering.
type Result struct {
	Pos       vec.Vec3
	Field     vec.Vec3
	Magnitude float64
	// Dominant is the index into the source slice of the source whose
	// individual contribution is largest at Pos; ties go to the lowest index.
	Dominant int
	// Strength is the log-normalized display strength in [0,1].
	Strength float64
}

// Sampler walks a cubic lattice through the field and normalizes the
// resulting magnitudes for display.
type Sampler struct {
	Kernel          field.Kernel
	ExclusionRadius float64
	MagnitudeFloor  float64
}

func NewSampler(k field.Kernel) *Sampler {
	return &Sampler{
		Kernel:          k,
		ExclusionRadius: DefaultExclusionRadius,
		MagnitudeFloor:  DefaultMagnitudeFloor,
	}
}

// Lattice returns grid points spanning [-halfExtent, halfExtent] on each axis
// with the given stride. When the raw count exceeds limit the grid is thinned
// deterministically by keeping every Nth point, N = ceil(count/limit), so the
// output is bounded and reproducible.
func Lattice(halfExtent, step float64, limit int) []vec.Vec3 {
	if step <= 0 || halfExtent <= 0 {
		return nil
	}
	points := make([]vec.Vec3, 0, 128)
	for x := -halfExtent; x <= halfExtent; x += step {
		for y := -halfExtent; y <= halfExtent; y += step {
			for z := -halfExtent; z <= halfExtent; z += step {
				points = append(points, vec.Vec3{X: x, Y: y, Z: z})
			}
		}
	}
	if limit <= 0 || len(points) <= limit {
		return points
	}
	stride := (len(points) + limit - 1) / limit
	thinned := make([]vec.Vec3, 0, limit)
	for i := 0; i < len(points); i += stride {
		thinned = append(thinned, points[i])
	}
	return thinned
}

// Sample evaluates the field at each point and attaches display attribution.
// Points inside a source's exclusion radius are skipped, and points whose
// magnitude falls below the floor are omitted. Normalization is a second
// pass over the gathered set, so Strength depends on the full sample batch.
func (s *Sampler) Sample(points []vec.Vec3, sources []field.Source, mode field.Mode) []Result {
	results := make([]Result, 0, len(points))
	for _, p := range points {
		if s.nearSource(p, sources) {
			continue
		}
		f := s.Kernel.At(p, sources, mode)
		mag := f.Length()
		if mag < s.MagnitudeFloor {
			continue
		}
		results = append(results, Result{
			Pos:       p,
			Field:     f,
			Magnitude: mag,
			Dominant:  s.dominant(p, sources, mode),
		})
	}
	normalize(results)
	return results
}

func (s *Sampler) nearSource(p vec.Vec3, sources []field.Source) bool {
	for _, src := range sources {
		if p.Distance(src.Pos) < s.ExclusionRadius {
			return true
		}
	}
	return false
}

// dominant picks the source with the largest individual contribution
// magnitude; since iteration is in slice order and the comparison strict,
// ties resolve to the lowest index.
func (s *Sampler) dominant(p vec.Vec3, sources []field.Source, mode field.Mode) int {
	best, bestMag := 0, -1.0
	for i, src := range sources {
		if m := s.Kernel.Contribution(p, src, mode).Length(); m > bestMag {
			best, bestMag = i, m
		}
	}
	return best
}

// normalize maps magnitudes to [0,1] on a log10 scale. Near-source samples
// exceed distant ones by many orders of magnitude, so a linear map would
// leave everything but the closest arrows invisible.
func normalize(results []Result) {
	if len(results) == 0 {
		return
	}
	min, max := math.Inf(1), math.Inf(-1)
	for _, r := range results {
		if r.Magnitude < min {
			min = r.Magnitude
		}
		if r.Magnitude > max {
			max = r.Magnitude
		}
	}
	if max <= min {
		for i := range results {
			results[i].Strength = 1.0
		}
		return
	}
	logMin, logMax := math.Log10(min), math.Log10(max)
	for i := range results {
		t := (math.Log10(results[i].Magnitude) - logMin) / (logMax - logMin)
		results[i].Strength = math.Min(1, math.Max(0, t))
	}
}
