package config

import "sort"

// Presets are ready-made source configurations. Values are coulombs for
// electric scenes and kilograms for gravity scenes; positions are scene units.
var Presets = map[string]*Config{
	"single": {
		Mode: "electric",
		Sources: []SourceConfig{
			{X: 0, Y: 0, Z: 0, Value: 2.0e-9},
		},
	},
	"dipole": {
		Mode: "electric",
		Sources: []SourceConfig{
			{X: -1.5, Y: 0, Z: 0, Value: 1.0e-9},
			{X: 1.5, Y: 0, Z: 0, Value: -1.0e-9},
		},
	},
	"like-pair": {
		Mode: "electric",
		Sources: []SourceConfig{
			{X: -1.5, Y: 0, Z: 0, Value: 1.0e-9},
			{X: 1.5, Y: 0, Z: 0, Value: 4.0e-9},
		},
	},
	"uneven": {
		Mode: "electric",
		Sources: []SourceConfig{
			{X: -0.27, Y: 0, Z: 0, Value: 3.3e-9},
			{X: 0.18, Y: 0, Z: 0, Value: -1.0e-8},
		},
		Probe: &ProbeConfig{X: 0, Y: 0, Z: 0, Value: 2.0e-12},
	},
	"trio": {
		Mode: "electric",
		Sources: []SourceConfig{
			{X: 0, Y: 1.7, Z: 0, Value: 1.0e-9},
			{X: -1.5, Y: -0.9, Z: 0, Value: 1.0e-9},
			{X: 1.5, Y: -0.9, Z: 0, Value: -2.0e-9},
		},
	},
	"binary": {
		Mode: "gravity",
		Sources: []SourceConfig{
			{X: -2, Y: 0, Z: 0, Value: 5.0e12},
			{X: 2, Y: 0, Z: 0, Value: 1.0e12},
		},
	},
}

func GetPreset(name string) *Config {
	base, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := Default()
	cfg.Mode = base.Mode
	cfg.Sources = append([]SourceConfig(nil), base.Sources...)
	cfg.Probe = base.Probe
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
