// SPDX-License-Identifier: MIT

// Package config loads agroplan settings from AGROPLAN_* environment
// variables. Command-line flags override what is loaded here.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/agroplan/perturb"
	"github.com/katalvlaran/agroplan/planning"
	"github.com/katalvlaran/agroplan/ridge"
	"github.com/katalvlaran/agroplan/sensitivity"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name.
const Prefix = "AGROPLAN"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all settings.
type Config struct {
	Seed       int64   `envconfig:"SEED" default:"0"`
	Perturb    float64 `envconfig:"PERTURB" default:"0.05"`
	Lambda     float64 `envconfig:"LAMBDA" default:"10"`
	Method     string  `envconfig:"METHOD" default:"svd"`
	SweepSeeds int     `envconfig:"SWEEP_SEEDS" default:"32"`
	Output     string  `envconfig:"OUTPUT" default:"text"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load reads the environment, applies defaults and validates.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Seed:       perturb.DefaultVectorSeed,
		Perturb:    planning.DefaultRelPerturb,
		Lambda:     ridge.DefaultLambda,
		Method:     ridge.MethodSVD.String(),
		SweepSeeds: planning.DefaultSweepSeeds,
		Output:     OutputText,
		LogLevel:   "info",
	}
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if math.IsNaN(c.Perturb) || c.Perturb < 0 || c.Perturb >= 1 {
		return fmt.Errorf("%w: perturb %g outside [0, 1)", ErrInvalidConfig, c.Perturb)
	}
	if math.IsNaN(c.Lambda) || math.IsInf(c.Lambda, 0) || c.Lambda < 0 {
		return fmt.Errorf("%w: lambda %g must be finite and ≥ 0", ErrInvalidConfig, c.Lambda)
	}
	if _, err := ridge.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("%w: method: %v", ErrInvalidConfig, err)
	}
	if c.SweepSeeds < 1 {
		return fmt.Errorf("%w: sweep seeds %d must be ≥ 1", ErrInvalidConfig, c.SweepSeeds)
	}
	switch strings.ToLower(c.Output) {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: output %q (want text, json or yaml)", ErrInvalidConfig, c.Output)
	}

	return nil
}

// RidgeMethod returns the parsed ridge method. Call after Validate.
func (c *Config) RidgeMethod() ridge.Method {
	m, _ := ridge.ParseMethod(c.Method)

	return m
}

// PlanningOptions converts the numeric settings into planning options.
func (c *Config) PlanningOptions() []planning.Option {
	return []planning.Option{
		planning.WithSeed(c.Seed),
		planning.WithLambda(c.Lambda),
		planning.WithRidgeMethod(c.RidgeMethod()),
		planning.WithSweepSeeds(c.SweepSeeds),
		planning.WithBoundTolerance(sensitivity.DefaultBoundTolerance),
	}
}
