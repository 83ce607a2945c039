// Package config loads the fcsc run configuration from YAML.
//
// A file only needs the keys it changes; everything else keeps the value
// from Default. Unknown keys are rejected.
//
//	input: data/cohort.yaml   # empty: use the synthetic generator
//	synthetic: {subjects: 50, nodes: 10, seed: 1, noise: 0.1, coupling: 0.6}
//	transforms: {log: true, fisher_z: true}
//	model: {constraints: true, symmetry_eps: 0}
//	compare: {sign_adjust: true}
//	run: {parallel: true}
//	output: {format: text}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/katalvlaran/fcsc/pipeline"
	"github.com/katalvlaran/fcsc/source"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete run configuration.
type Config struct {
	Input      string          `yaml:"input"`
	Synthetic  SyntheticConfig `yaml:"synthetic"`
	Transforms TransformConfig `yaml:"transforms"`
	Model      ModelConfig     `yaml:"model"`
	Compare    CompareConfig   `yaml:"compare"`
	Run        RunConfig       `yaml:"run"`
	Output     OutputConfig    `yaml:"output"`
}

// SyntheticConfig parameterises the synthetic source (used when Input is empty).
type SyntheticConfig struct {
	Subjects int     `yaml:"subjects"`
	Nodes    int     `yaml:"nodes"`
	Seed     int64   `yaml:"seed"`
	Noise    float64 `yaml:"noise"`
	Coupling float64 `yaml:"coupling"`
}

// TransformConfig toggles the variance-stabilising transforms.
type TransformConfig struct {
	Log     bool `yaml:"log"`
	FisherZ bool `yaml:"fisher_z"`
}

// ModelConfig configures the estimator.
type ModelConfig struct {
	Constraints bool    `yaml:"constraints"`
	SymmetryEps float64 `yaml:"symmetry_eps"`
}

// CompareConfig configures the FC–SC comparison.
type CompareConfig struct {
	SignAdjust bool `yaml:"sign_adjust"`
}

// RunConfig configures execution.
type RunConfig struct {
	Parallel bool `yaml:"parallel"`
}

// OutputConfig selects the report format.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	p := pipeline.DefaultConfig()
	g := source.NewSynthetic(1)
	return Config{
		Synthetic: SyntheticConfig{
			Subjects: g.Subjects,
			Nodes:    g.Nodes,
			Seed:     g.Seed,
			Noise:    g.Noise,
			Coupling: g.Coupling,
		},
		Transforms: TransformConfig{Log: p.Log, FisherZ: p.FisherZ},
		Model:      ModelConfig{Constraints: p.Constraints},
		Compare:    CompareConfig{SignAdjust: p.SignAdjust},
		Run:        RunConfig{Parallel: p.Parallel},
		Output:     OutputConfig{Format: FormatText},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.
// An empty document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges. Synthetic parameters are only checked
// when no input file is configured.
func (c Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("output.format %q, want %q or %q: %w", c.Output.Format, FormatText, FormatJSON, ErrInvalid)
	}
	if c.Model.SymmetryEps < 0 || math.IsNaN(c.Model.SymmetryEps) || math.IsInf(c.Model.SymmetryEps, 0) {
		return fmt.Errorf("model.symmetry_eps %v: %w", c.Model.SymmetryEps, ErrInvalid)
	}
	if c.Input == "" {
		if err := c.SyntheticSource().Validate(); err != nil {
			return fmt.Errorf("synthetic: %w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// SyntheticSource returns the generator described by c.Synthetic.
func (c Config) SyntheticSource() source.Synthetic {
	return source.Synthetic{
		Subjects: c.Synthetic.Subjects,
		Nodes:    c.Synthetic.Nodes,
		Seed:     c.Synthetic.Seed,
		Noise:    c.Synthetic.Noise,
		Coupling: c.Synthetic.Coupling,
	}
}

// Source returns the file source when Input is set, the synthetic one otherwise.
func (c Config) Source(log *slog.Logger) source.Source {
	if c.Input != "" {
		return source.File{Path: c.Input, Logger: log}
	}
	return c.SyntheticSource()
}

// Pipeline returns the pipeline settings described by c.
func (c Config) Pipeline(log *slog.Logger) pipeline.Config {
	return pipeline.Config{
		Log:         c.Transforms.Log,
		FisherZ:     c.Transforms.FisherZ,
		Constraints: c.Model.Constraints,
		SignAdjust:  c.Compare.SignAdjust,
		Parallel:    c.Run.Parallel,
		SymmetryEps: c.Model.SymmetryEps,
		Logger:      log,
	}
}
