// Package config loads the run configuration for the activ CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/activ/internal/activation"
	"github.com/born-ml/activ/internal/parallel"
	"github.com/born-ml/activ/internal/tensor"
)

// Parallel modes.
const (
	ModeSequential = "sequential"
	ModeChunked    = "chunked"
	ModeLimited    = "limited"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ValidationError names the offending field.
type ValidationError struct {
	Field   string
	Details string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Details)
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// Config captures the knobs for evaluating an activation over a batch.
type Config struct {
	Activation string    `yaml:"activation"`
	Precision  string    `yaml:"precision"`
	Parallel   Parallel  `yaml:"parallel"`
	GradCheck  GradCheck `yaml:"gradcheck"`
}

// Parallel selects the per-sample iteration strategy.
type Parallel struct {
	Mode         string `yaml:"mode"`
	Workers      int    `yaml:"workers"`
	MinChunkSize int    `yaml:"min_chunk_size"`
}

// GradCheck configures finite-difference verification. Zero fields take the
// defaults for the evaluation precision; see Resolve.
type GradCheck struct {
	Epsilon   float64 `yaml:"epsilon"`
	Tolerance float64 `yaml:"tolerance"`
}

// Per-precision gradient check defaults. float32 carries about 7 significant
// digits, so its step is wider and its tolerance looser.
var gradCheckDefaults = map[tensor.DataType]GradCheck{
	tensor.Float32: {Epsilon: 1e-2, Tolerance: 1e-3},
	tensor.Float64: {Epsilon: activation.DefaultEpsilon, Tolerance: 1e-6},
}

// Resolve returns the step and tolerance to use for dt, filling unset fields
// with that precision's defaults.
func (g GradCheck) Resolve(dt tensor.DataType) (eps, tol float64) {
	def, ok := gradCheckDefaults[dt]
	if !ok {
		def = gradCheckDefaults[tensor.Float64]
	}
	eps, tol = g.Epsilon, g.Tolerance
	if eps == 0 {
		eps = def.Epsilon
	}
	if tol == 0 {
		tol = def.Tolerance
	}
	return eps, tol
}

// Overrides captures CLI supplied values.
type Overrides struct {
	Activation string
	Precision  string
	Mode       string
	Workers    int
	Epsilon    float64
	Tolerance  float64
}

// Default returns a config that evaluates sigmoid in float64 on chunked goroutines.
func Default() *Config {
	p := parallel.DefaultConfig()
	return &Config{
		Activation: activation.KindSigmoid.String(),
		Precision:  tensor.Float64.String(),
		Parallel: Parallel{
			Mode:         ModeChunked,
			Workers:      p.NumWorkers,
			MinChunkSize: p.MinChunkSize,
		},
	}
}

// Load reads and validates a Config from YAML. Fields missing from the file keep
// their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates c using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Activation != "" {
		c.Activation = o.Activation
	}
	if o.Precision != "" {
		c.Precision = o.Precision
	}
	if o.Mode != "" {
		c.Parallel.Mode = o.Mode
	}
	if o.Workers > 0 {
		c.Parallel.Workers = o.Workers
	}
	if o.Epsilon > 0 {
		c.GradCheck.Epsilon = o.Epsilon
	}
	if o.Tolerance > 0 {
		c.GradCheck.Tolerance = o.Tolerance
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if _, err := activation.ParseKind(c.Activation); err != nil {
		return &ValidationError{Field: "activation", Details: err.Error()}
	}
	if _, ok := tensor.ParseDataType(c.Precision); !ok {
		return &ValidationError{Field: "precision", Details: fmt.Sprintf("%q is not float32 or float64", c.Precision)}
	}
	switch c.Parallel.Mode {
	case ModeSequential, ModeChunked, ModeLimited:
	default:
		return &ValidationError{Field: "parallel.mode", Details: fmt.Sprintf("unknown mode %q", c.Parallel.Mode)}
	}
	if c.Parallel.Workers < 0 {
		return &ValidationError{Field: "parallel.workers", Details: "must be >= 0"}
	}
	if c.Parallel.MinChunkSize < 0 {
		return &ValidationError{Field: "parallel.min_chunk_size", Details: "must be >= 0"}
	}
	if c.GradCheck.Epsilon < 0 {
		return &ValidationError{Field: "gradcheck.epsilon", Details: "must be >= 0"}
	}
	if c.GradCheck.Tolerance < 0 {
		return &ValidationError{Field: "gradcheck.tolerance", Details: "must be >= 0"}
	}
	return nil
}

// Kind returns the configured activation. Call Validate first.
func (c *Config) Kind() activation.Kind {
	k, _ := activation.ParseKind(c.Activation)
	return k
}

// DataType returns the configured precision. Call Validate first.
func (c *Config) DataType() tensor.DataType {
	dt, _ := tensor.ParseDataType(c.Precision)
	return dt
}

// ForFunc builds the iteration strategy for the configured mode.
func (c *Config) ForFunc() parallel.ForFunc {
	switch c.Parallel.Mode {
	case ModeChunked:
		p := parallel.DefaultConfig()
		if c.Parallel.Workers > 0 {
			p.NumWorkers = c.Parallel.Workers
		}
		p.MinChunkSize = c.Parallel.MinChunkSize
		p.Enabled = p.NumWorkers > 1
		return p.ForFunc()
	case ModeLimited:
		return parallel.Limited(c.Parallel.Workers)
	default:
		return parallel.Sequential
	}
}
