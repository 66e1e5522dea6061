package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fieldlab/internal/field"
	"github.com/san-kum/fieldlab/internal/scene"
	"github.com/san-kum/fieldlab/internal/vec"
)

type Config struct {
	Mode    string         `yaml:"mode"`
	Sources []SourceConfig `yaml:"sources"`
	Probe   *ProbeConfig   `yaml:"probe,omitempty"`
	Seed    int64          `yaml:"seed,omitempty"`

	Sampling SamplingConfig `yaml:"sampling"`
	Tracing  TracingConfig  `yaml:"tracing"`
	Solver   SolverConfig   `yaml:"solver"`
}

type SourceConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
	Value float64 `yaml:"value"`
}

type ProbeConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
	Value float64 `yaml:"value"`
}

type SamplingConfig struct {
	HalfExtent      float64 `yaml:"half_extent"`
	Step            float64 `yaml:"step"`
	Cap             int     `yaml:"cap"`
	ExclusionRadius float64 `yaml:"exclusion_radius"`
}

type TracingConfig struct {
	SeedCount  int     `yaml:"seed_count"`
	SeedRadius float64 `yaml:"seed_radius"`
	StepSize   float64 `yaml:"step_size"`
	MaxSteps   int     `yaml:"max_steps"`
	BoxExtent  float64 `yaml:"box_extent"`
}

type SolverConfig struct {
	Tolerance float64 `yaml:"tolerance"`
	MaxIters  int     `yaml:"max_iters"`
}

func Default() *Config {
	p := scene.Defaults()
	return &Config{
		Mode: "electric",
		Seed: p.Seed,
		Sampling: SamplingConfig{
			HalfExtent:      p.HalfExtent,
			Step:            p.Step,
			Cap:             p.SampleCap,
			ExclusionRadius: p.ExclusionRadius,
		},
		Tracing: TracingConfig{
			SeedCount:  p.SeedCount,
			SeedRadius: p.SeedRadius,
			StepSize:   p.StepSize,
			MaxSteps:   p.MaxSteps,
			BoxExtent:  p.BoxExtent,
		},
		Solver: SolverConfig{
			Tolerance: p.Tolerance,
			MaxIters:  p.MaxIters,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Snapshot converts the config's scene section into a kernel snapshot.
func (c *Config) Snapshot() scene.Snapshot {
	snap := scene.Snapshot{Mode: field.ParseMode(c.Mode)}
	for i, s := range c.Sources {
		snap.Sources = append(snap.Sources, field.Source{
			ID:    i,
			Pos:   vec.Vec3{X: s.X, Y: s.Y, Z: s.Z},
			Value: s.Value,
		})
	}
	if c.Probe != nil {
		snap.Probe = &field.Probe{
			Pos:   vec.Vec3{X: c.Probe.X, Y: c.Probe.Y, Z: c.Probe.Z},
			Value: c.Probe.Value,
		}
	}
	return snap
}

// Params converts the config's tunables into compute parameters, filling
// unset values from the defaults.
func (c *Config) Params() scene.Params {
	p := scene.Defaults()
	if c.Sampling.HalfExtent > 0 {
		p.HalfExtent = c.Sampling.HalfExtent
	}
	if c.Sampling.Step > 0 {
		p.Step = c.Sampling.Step
	}
	if c.Sampling.Cap > 0 {
		p.SampleCap = c.Sampling.Cap
	}
	if c.Sampling.ExclusionRadius > 0 {
		p.ExclusionRadius = c.Sampling.ExclusionRadius
	}
	if c.Tracing.SeedCount > 0 {
		p.SeedCount = c.Tracing.SeedCount
	}
	if c.Tracing.SeedRadius > 0 {
		p.SeedRadius = c.Tracing.SeedRadius
	}
	if c.Tracing.StepSize > 0 {
		p.StepSize = c.Tracing.StepSize
	}
	if c.Tracing.MaxSteps > 0 {
		p.MaxSteps = c.Tracing.MaxSteps
	}
	if c.Tracing.BoxExtent > 0 {
		p.BoxExtent = c.Tracing.BoxExtent
	}
	if c.Solver.Tolerance > 0 {
		p.Tolerance = c.Solver.Tolerance
	}
	if c.Solver.MaxIters > 0 {
		p.MaxIters = c.Solver.MaxIters
	}
	if c.Seed != 0 {
		p.Seed = c.Seed
	}
	return p
}
