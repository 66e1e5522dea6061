package scene

import (
	"github.com/san-kum/fieldlab/internal/equilibrium"
	"github.com/san-kum/fieldlab/internal/field"
	"github.com/san-kum/fieldlab/internal/sample"
	"github.com/san-kum/fieldlab/internal/trace"
	"github.com/san-kum/fieldlab/internal/vec"
)

// Snapshot is the editor's state at one recompute trigger: sources, an
// optional probe, and the active mode. Compute never retains it.
type Snapshot struct {
	Sources []field.Source
	Probe   *field.Probe
	Mode    field.Mode
}

// Params are the tunables for one recompute. Zero values are replaced with
// the package defaults by Defaults().
type Params struct {
	HalfExtent      float64
	Step            float64
	SampleCap       int
	SeedCount       int
	SeedRadius      float64
	StepSize        float64
	MaxSteps        int
	BoxExtent       float64
	ExclusionRadius float64
	MinDistance     float64
	SceneToMeters   float64
	Tolerance       float64
	MaxIters        int
	Seed            int64
}

func Defaults() Params {
	return Params{
		HalfExtent:      sample.DefaultHalfExtent,
		Step:            sample.DefaultStep,
		SampleCap:       sample.DefaultMaxSamples,
		SeedCount:       trace.DefaultSeedCount,
		SeedRadius:      trace.DefaultSeedRadius,
		StepSize:        trace.DefaultStepSize,
		MaxSteps:        trace.DefaultMaxSteps,
		BoxExtent:       trace.DefaultBoxExtent,
		ExclusionRadius: sample.DefaultExclusionRadius,
		MinDistance:     field.DefaultMinDistance,
		SceneToMeters:   field.DefaultSceneToMeters,
		Tolerance:       equilibrium.DefaultTolerance,
		MaxIters:        equilibrium.DefaultMaxIters,
		Seed:            1,
	}
}

// Frame is one immutable recompute output. A frame stays valid until the
// caller triggers the next recompute; a newer frame supersedes an older one
// outright, with no merging of the two.
type Frame struct {
	Samples     []sample.Result
	Lines       []trace.Line
	Equilibrium equilibrium.Result
	ProbeForce  vec.Vec3
	Potential   float64
	HasProbe    bool
}

// Compute runs the full pipeline for one snapshot: lattice sampling, line
// tracing, equilibrium solving and probe force. It is a pure function; two
// calls with equal inputs yield equal frames.
func Compute(snap Snapshot, p Params) *Frame {
	k := field.Kernel{
		K:             field.DefaultCoulombK,
		G:             field.DefaultGravityG,
		MinDistance:   p.MinDistance,
		SceneToMeters: p.SceneToMeters,
	}

	sampler := sample.NewSampler(k)
	sampler.ExclusionRadius = p.ExclusionRadius

	tracer := trace.NewTracer(k, p.Seed)
	tracer.SeedCount = p.SeedCount
	tracer.SeedRadius = p.SeedRadius
	tracer.StepSize = p.StepSize
	tracer.MaxSteps = p.MaxSteps
	tracer.BoxExtent = p.BoxExtent
	tracer.ExclusionRadius = p.ExclusionRadius

	solver := equilibrium.NewSolver(k)
	solver.Tolerance = p.Tolerance
	solver.MaxIters = p.MaxIters

	frame := &Frame{
		Samples:     sampler.Sample(sample.Lattice(p.HalfExtent, p.Step, p.SampleCap), snap.Sources, snap.Mode),
		Lines:       tracer.TraceAll(snap.Sources, snap.Mode),
		Equilibrium: solver.Solve(snap.Sources, snap.Mode),
	}

	if snap.Probe != nil {
		frame.HasProbe = true
		frame.ProbeForce = k.ForceOnProbe(snap.Probe.Pos, snap.Probe.Value, snap.Sources, snap.Mode)
		frame.Potential = k.PotentialAt(snap.Probe.Pos, snap.Sources, snap.Mode)
	}
	return frame
}
