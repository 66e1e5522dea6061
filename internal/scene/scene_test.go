package scene

import (
	"math"
	"testing"

	"github.com/san-kum/fieldlab/internal/equilibrium"
	"github.com/san-kum/fieldlab/internal/field"
	"github.com/san-kum/fieldlab/internal/vec"
)

func TestComputeEmptyScene(t *testing.T) {
	frame := Compute(Snapshot{}, Defaults())

	if len(frame.Samples) != 0 {
		t.Errorf("got %d samples, want 0", len(frame.Samples))
	}
	if len(frame.Lines) != 0 {
		t.Errorf("got %d lines, want 0", len(frame.Lines))
	}
	if frame.Equilibrium.Status != equilibrium.Unsupported {
		t.Errorf("equilibrium status = %v, want unsupported", frame.Equilibrium.Status)
	}
	if frame.HasProbe || frame.ProbeForce != (vec.Vec3{}) {
		t.Error("empty scene should carry no probe force")
	}
}

func TestComputeDipole(t *testing.T) {
	snap := Snapshot{
		Sources: []field.Source{
			{ID: 0, Pos: vec.Vec3{X: -1.5}, Value: 1e-9},
			{ID: 1, Pos: vec.Vec3{X: 1.5}, Value: -1e-9},
		},
		Probe: &field.Probe{Pos: vec.Vec3{Y: 1}, Value: 2e-12},
		Mode:  field.Electric,
	}
	frame := Compute(snap, Defaults())

	if len(frame.Samples) == 0 {
		t.Error("expected lattice samples")
	}
	if len(frame.Lines) == 0 {
		t.Error("expected traced field lines")
	}
	if !frame.HasProbe {
		t.Fatal("probe missing from frame")
	}
	if frame.ProbeForce.Length() == 0 {
		t.Error("probe force should be nonzero off the symmetry plane")
	}
	if frame.Equilibrium.Status != equilibrium.NoEquilibrium {
		t.Errorf("equal-magnitude dipole: status = %v, want no equilibrium", frame.Equilibrium.Status)
	}
}

func TestComputeIsPure(t *testing.T) {
	snap := Snapshot{
		Sources: []field.Source{
			{ID: 0, Pos: vec.Vec3{X: -1}, Value: 1e-9},
			{ID: 1, Pos: vec.Vec3{X: 1}, Value: 4e-9},
		},
		Mode: field.Electric,
	}
	p := Defaults()

	a := Compute(snap, p)
	b := Compute(snap, p)

	if len(a.Samples) != len(b.Samples) || len(a.Lines) != len(b.Lines) {
		t.Fatal("identical inputs produced different frames")
	}
	for i := range a.Samples {
		if a.Samples[i] != b.Samples[i] {
			t.Fatalf("sample %d differs between runs", i)
		}
	}
	for i := range a.Lines {
		if a.Lines[i].Phase != b.Lines[i].Phase {
			t.Fatalf("line %d phase differs between runs", i)
		}
	}
	if a.Equilibrium != b.Equilibrium {
		t.Error("equilibrium differs between runs")
	}
}

func TestComputeHonorsSampleCap(t *testing.T) {
	snap := Snapshot{
		Sources: []field.Source{{ID: 0, Pos: vec.Vec3{}, Value: 1e-9}},
		Mode:    field.Electric,
	}
	p := Defaults()
	p.Step = 0.25
	p.SampleCap = 100

	frame := Compute(snap, p)
	if len(frame.Samples) > p.SampleCap {
		t.Errorf("got %d samples, cap is %d", len(frame.Samples), p.SampleCap)
	}
}

func TestGravityFrameHasNoEquilibrium(t *testing.T) {
	snap := Snapshot{
		Sources: []field.Source{
			{ID: 0, Pos: vec.Vec3{X: -2}, Value: 5e12},
			{ID: 1, Pos: vec.Vec3{X: 2}, Value: 1e12},
		},
		Mode: field.Gravity,
	}
	frame := Compute(snap, Defaults())

	if frame.Equilibrium.Status != equilibrium.Unsupported {
		t.Errorf("gravity equilibrium status = %v, want unsupported", frame.Equilibrium.Status)
	}
	// Both masses attract: every sample field points broadly inward.
	for _, s := range frame.Samples {
		toCenter := vec.Vec3{}.Sub(s.Pos)
		if s.Pos.Length() > 4 && s.Field.Dot(toCenter) < 0 {
			t.Errorf("far sample at %v has outward gravity", s.Pos)
		}
	}
}

func TestProbePotential(t *testing.T) {
	snap := Snapshot{
		Sources: []field.Source{{ID: 0, Pos: vec.Vec3{}, Value: 1e-9}},
		Probe:   &field.Probe{Pos: vec.Vec3{X: 2}, Value: 1e-12},
		Mode:    field.Electric,
	}
	frame := Compute(snap, Defaults())

	want := field.DefaultCoulombK * 1e-9 / 2.0
	if math.Abs(frame.Potential-want) > want*1e-9 {
		t.Errorf("potential = %v, want %v", frame.Potential, want)
	}
}
