// SPDX-License-Identifier: MIT
package config_test

import (
	"testing"

	"github.com/katalvlaran/agroplan/internal/config"
	"github.com/katalvlaran/agroplan/ridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests in this file mutate the environment and must not run in parallel.

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("AGROPLAN_SEED", "42")
	t.Setenv("AGROPLAN_PERTURB", "0.1")
	t.Setenv("AGROPLAN_LAMBDA", "1.5")
	t.Setenv("AGROPLAN_METHOD", "normal-equations")
	t.Setenv("AGROPLAN_SWEEP_SEEDS", "8")
	t.Setenv("AGROPLAN_OUTPUT", "json")
	t.Setenv("AGROPLAN_LOG_LEVEL", "debug")
	t.Setenv("AGROPLAN_LOG_DEV", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 0.1, cfg.Perturb)
	assert.Equal(t, 1.5, cfg.Lambda)
	assert.Equal(t, ridge.MethodNormalEquations, cfg.RidgeMethod())
	assert.Equal(t, 8, cfg.SweepSeeds)
	assert.Equal(t, config.OutputJSON, cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogDev)
	assert.Len(t, cfg.PlanningOptions(), 5)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"unparsable seed", "AGROPLAN_SEED", "abc"},
		{"perturb too large", "AGROPLAN_PERTURB", "1"},
		{"negative lambda", "AGROPLAN_LAMBDA", "-1"},
		{"unknown method", "AGROPLAN_METHOD", "qr"},
		{"no seeds", "AGROPLAN_SWEEP_SEEDS", "0"},
		{"unknown output", "AGROPLAN_OUTPUT", "xml"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := config.Load()
			require.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	cfg.Output = "YAML"
	require.NoError(t, cfg.Validate())

	cfg.Perturb = -0.5
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
}
