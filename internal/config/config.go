// Package config loads and saves fastica run configurations as YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/fastica/ica"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMethod    = "center"
	DefaultAlgorithm = "parallel"
	DefaultContrast  = "logcosh"
	DefaultAlpha     = 1.0
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	Method     string       `yaml:"method"`
	Algorithm  string       `yaml:"algorithm"`
	Components int          `yaml:"components"` // 0 means one per variable
	Iterations int          `yaml:"iterations"`
	Tolerance  float64      `yaml:"tolerance"`
	Contrast   ContrastSpec `yaml:"contrast"`
	Overwrite  bool         `yaml:"overwrite"`
	Seed       int64        `yaml:"seed"`
	Workers    int          `yaml:"workers"` // 0 means GOMAXPROCS
	Input      InputConfig  `yaml:"input"`
}

type ContrastSpec struct {
	Name  string  `yaml:"name"`
	Alpha float64 `yaml:"alpha"`
}

type InputConfig struct {
	Header    bool   `yaml:"header"`
	Delimiter string `yaml:"delimiter"`
}

func DefaultConfig() *Config {
	return &Config{
		Method:     DefaultMethod,
		Algorithm:  DefaultAlgorithm,
		Iterations: ica.DefaultIterations,
		Tolerance:  ica.DefaultTolerance,
		Contrast: ContrastSpec{
			Name:  DefaultContrast,
			Alpha: DefaultAlpha,
		},
		Input: InputConfig{
			Header:    true,
			Delimiter: ",",
		},
	}
}

// Load reads path on top of DefaultConfig, so omitted keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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

// Validate checks every field that Options would otherwise reject later.
func (c *Config) Validate() error {
	if _, err := ica.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := ica.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := ica.ContrastByName(c.Contrast.Name, c.Contrast.Alpha); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch {
	case c.Components < 0:
		return fmt.Errorf("%w: components must be >= 0", ErrInvalid)
	case c.Iterations <= 0:
		return fmt.Errorf("%w: iterations must be > 0", ErrInvalid)
	case !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0):
		return fmt.Errorf("%w: tolerance must be positive and finite", ErrInvalid)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must be >= 0", ErrInvalid)
	case len([]rune(c.Input.Delimiter)) > 1:
		return fmt.Errorf("%w: delimiter must be a single character", ErrInvalid)
	}
	return nil
}

// Options converts the configuration into ica options.
func (c *Config) Options(log logr.Logger) ([]ica.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	method, _ := ica.ParseMethod(c.Method)
	algorithm, _ := ica.ParseAlgorithm(c.Algorithm)
	contrast, _ := ica.ContrastByName(c.Contrast.Name, c.Contrast.Alpha)
	workers := c.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return []ica.Option{
		ica.WithMethod(method),
		ica.WithAlgorithm(algorithm),
		ica.WithIterations(c.Iterations),
		ica.WithTolerance(c.Tolerance),
		ica.WithContrast(contrast),
		ica.WithOverwrite(c.Overwrite),
		ica.WithSeed(c.Seed),
		ica.WithWorkers(workers),
		ica.WithLogger(log),
	}, nil
}

// Delimiter returns the configured field separator, ',' when unset.
func (c *Config) Delimiter() rune {
	if c.Input.Delimiter == "" {
		return ','
	}
	return []rune(c.Input.Delimiter)[0]
}
