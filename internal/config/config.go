// Package config provides loading and validation of the run
// configuration for the face-export CLI.
//
// Configuration is an explicit immutable value passed into the pipeline
// entry point: target labels, output directory, reference colors with a
// shared match tolerance, the three mesh parameters, and the STL
// format. It is read once from a YAML file (flags may override
// individual fields) and never mutated during a run.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meshworks/face-export/internal/mesh"
	"github.com/meshworks/face-export/internal/model"
	"github.com/meshworks/face-export/internal/stl"
)

// Config is the complete run configuration.
type Config struct {
	// Targets are the solid labels to process, in iteration order.
	Targets []string `yaml:"targets"`

	// OutputDir receives the exported STL files. Created idempotently
	// before the first target is processed.
	OutputDir string `yaml:"output_dir"`

	// Colors configures the reference colors and match tolerance.
	Colors ColorConfig `yaml:"colors"`

	// Mesh configures the tessellation parameters.
	Mesh MeshConfig `yaml:"mesh"`

	// Format selects the STL layout: "binary" or "ascii".
	Format string `yaml:"format"`
}

// ColorConfig holds the reference RGB triples and the single shared
// tolerance used for all comparisons.
type ColorConfig struct {
	// Inlet is the inlet reference color as an RGB triple in [0, 1].
	Inlet []float64 `yaml:"inlet"`

	// Outlet is the outlet reference color as an RGB triple in [0, 1].
	Outlet []float64 `yaml:"outlet"`

	// Tolerance is the strict per-channel match bound.
	Tolerance float64 `yaml:"tolerance"`
}

// MeshConfig holds the deflection-based tessellation settings.
type MeshConfig struct {
	// LinearDeflection is the maximum chord error.
	LinearDeflection float64 `yaml:"linear_deflection"`

	// AngularDeflection is the maximum angle between adjacent facet
	// normals, in radians.
	AngularDeflection float64 `yaml:"angular_deflection"`

	// Relative interprets LinearDeflection relative to the shape's
	// bounding-box size instead of absolute units.
	Relative bool `yaml:"relative"`
}

// Default returns the built-in configuration: yellow inlet, red outlet,
// tolerance 1e-4, deflections 0.05 / 0.1 absolute, binary STL output
// into ./exports. Targets have no default and must come from the file
// or flags.
func Default() *Config {
	return &Config{
		OutputDir: "exports",
		Colors: ColorConfig{
			Inlet:     []float64{1.0, 1.0, 0.0},
			Outlet:    []float64{1.0, 0.0, 0.0},
			Tolerance: 1e-4,
		},
		Mesh: MeshConfig{
			LinearDeflection:  0.05,
			AngularDeflection: 0.1,
		},
		Format: stl.FormatBinary.String(),
	}
}

// LoadFile reads a YAML file on top of the defaults: fields present in
// the file replace the default values, absent fields keep them.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for a runnable state.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return fmt.Errorf("no target labels configured")
	}
	for i, label := range c.Targets {
		if label == "" {
			return fmt.Errorf("target %d: label must not be empty", i+1)
		}
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	if _, err := rgb(c.Colors.Inlet); err != nil {
		return fmt.Errorf("inlet color: %w", err)
	}
	if _, err := rgb(c.Colors.Outlet); err != nil {
		return fmt.Errorf("outlet color: %w", err)
	}
	if c.Colors.Tolerance <= 0 {
		return fmt.Errorf("color tolerance must be positive, got %g", c.Colors.Tolerance)
	}
	if err := c.MeshParams().Validate(); err != nil {
		return err
	}
	if _, err := stl.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}

// References returns the reference colors in match priority order:
// inlet first, then outlet. Call Validate first; malformed triples
// yield zero colors here.
func (c *Config) References() []model.ReferenceColor {
	inlet, _ := rgb(c.Colors.Inlet)
	outlet, _ := rgb(c.Colors.Outlet)
	return []model.ReferenceColor{
		{Group: model.GroupInlet, Color: inlet},
		{Group: model.GroupOutlet, Color: outlet},
	}
}

// MeshParams returns the tessellation parameters.
func (c *Config) MeshParams() mesh.Params {
	return mesh.Params{
		LinearDeflection:  c.Mesh.LinearDeflection,
		AngularDeflection: c.Mesh.AngularDeflection,
		Relative:          c.Mesh.Relative,
	}
}

// STLFormat returns the parsed output format. Call Validate first.
func (c *Config) STLFormat() stl.Format {
	f, err := stl.ParseFormat(c.Format)
	if err != nil {
		return stl.FormatBinary
	}
	return f
}

// rgb converts a YAML triple into an opaque Color.
func rgb(triple []float64) (model.Color, error) {
	if len(triple) != 3 {
		return model.Color{}, fmt.Errorf("expected an RGB triple, got %d values", len(triple))
	}
	c := model.Color{R: triple[0], G: triple[1], B: triple[2], A: 1}
	if err := c.Validate(); err != nil {
		return model.Color{}, err
	}
	return c, nil
}
