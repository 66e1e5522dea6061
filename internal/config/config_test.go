package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/fieldlab/internal/field"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	cfg := GetPreset("uneven")
	cfg.Tracing.SeedCount = 77
	cfg.Seed = 9

	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Mode != "electric" {
		t.Errorf("mode = %q", loaded.Mode)
	}
	if len(loaded.Sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(loaded.Sources))
	}
	if loaded.Sources[1].Value != -1.0e-8 {
		t.Errorf("source value = %v", loaded.Sources[1].Value)
	}
	if loaded.Probe == nil || loaded.Probe.Value != 2.0e-12 {
		t.Error("probe lost in roundtrip")
	}
	if loaded.Tracing.SeedCount != 77 || loaded.Seed != 9 {
		t.Error("tunables lost in roundtrip")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSnapshotConversion(t *testing.T) {
	cfg := GetPreset("binary")
	snap := cfg.Snapshot()

	if snap.Mode != field.Gravity {
		t.Errorf("mode = %v, want gravity", snap.Mode)
	}
	if len(snap.Sources) != 2 {
		t.Fatalf("got %d sources", len(snap.Sources))
	}
	for i, s := range snap.Sources {
		if s.ID != i {
			t.Errorf("source %d has id %d", i, s.ID)
		}
	}
	if snap.Probe != nil {
		t.Error("binary preset has no probe")
	}
}

func TestParamsFillDefaults(t *testing.T) {
	cfg := &Config{Mode: "electric"}
	p := cfg.Params()

	def := Default()
	if p.HalfExtent != def.Sampling.HalfExtent {
		t.Errorf("half extent = %v, want default %v", p.HalfExtent, def.Sampling.HalfExtent)
	}
	if p.SeedCount != def.Tracing.SeedCount {
		t.Errorf("seed count = %v, want default %v", p.SeedCount, def.Tracing.SeedCount)
	}
	if p.Tolerance != def.Solver.Tolerance {
		t.Errorf("tolerance = %v, want default %v", p.Tolerance, def.Solver.Tolerance)
	}
}

func TestPresets(t *testing.T) {
	if len(ListPresets()) == 0 {
		t.Fatal("no presets registered")
	}
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %q not retrievable", name)
		}
		if len(cfg.Sources) == 0 {
			t.Errorf("preset %q has no sources", name)
		}
		if cfg.Tracing.SeedCount == 0 {
			t.Errorf("preset %q missing default tunables", name)
		}
	}
	if GetPreset("nope") != nil {
		t.Error("unknown preset should return nil")
	}
}

func TestGetPresetCopies(t *testing.T) {
	a := GetPreset("dipole")
	a.Sources[0].Value = 99

	b := GetPreset("dipole")
	if b.Sources[0].Value == 99 {
		t.Error("preset sources are shared between calls")
	}
}
