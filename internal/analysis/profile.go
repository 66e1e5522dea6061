package analysis

import (
	"github.com/san-kum/fieldlab/internal/field"
	"github.com/san-kum/fieldlab/internal/vec"
)

// Profile holds field magnitude and potential sampled along a segment,
// ready for terminal plotting.
type Profile struct {
	Distances  []float64
	Magnitudes []float64
	Potentials []float64
}

// SampleProfile evaluates the field along the segment from..to at n evenly
// spaced points. Handy for eyeballing the zero crossing between two sources.
func SampleProfile(k field.Kernel, sources []field.Source, mode field.Mode, from, to vec.Vec3, n int) *Profile {
	if n < 2 {
		return nil
	}
	p := &Profile{
		Distances:  make([]float64, 0, n),
		Magnitudes: make([]float64, 0, n),
		Potentials: make([]float64, 0, n),
	}
	span := to.Sub(from)
	total := span.Length()
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		pos := from.Add(span.Scale(t))
		p.Distances = append(p.Distances, t*total)
		p.Magnitudes = append(p.Magnitudes, k.At(pos, sources, mode).Length())
		p.Potentials = append(p.Potentials, k.PotentialAt(pos, sources, mode))
	}
	return p
}

// MinMagnitude returns the index and value of the weakest point on the
// profile, a cheap estimate of where the field crosses zero.
func (p *Profile) MinMagnitude() (int, float64) {
	if p == nil || len(p.Magnitudes) == 0 {
		return -1, 0
	}
	idx, min := 0, p.Magnitudes[0]
	for i, m := range p.Magnitudes {
		if m < min {
			idx, min = i, m
		}
	}
	return idx, min
}
