// SPDX-License-Identifier: MIT
package planning_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/agroplan/cond"
	"github.com/katalvlaran/agroplan/planning"
	"github.com/katalvlaran/agroplan/ridge"
	"github.com/katalvlaran/agroplan/sensitivity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAssess_BaseModel(t *testing.T) {
	t.Parallel()

	a, err := planning.Assess(planning.BaseModel())
	require.NoError(t, err)

	want := []float64{-5, 77.5, 27.5}
	got := a.XBase.Values()
	for i := range want {
		assert.InDeltaf(t, want[i], got[i], 1e-9, "x[%d]", i)
	}
	assert.InEpsilon(t, 257000, a.Profit, 1e-12)
	assert.Equal(t, 3, a.Rank)
	assert.False(t, a.Kappa.Singular)
	assert.Equal(t, cond.Ill, a.Class)

	// The plan is linear in b, so the scenarios scale the nominal profit.
	assert.InEpsilon(t, 0.95, a.Pessimistic.Scale, 1e-15)
	assert.InEpsilon(t, 257000*0.95, a.Pessimistic.Profit, 1e-9)
	assert.InEpsilon(t, 257000*1.05, a.Optimistic.Profit, 1e-9)

	require.NotNil(t, a.Sensitivity)
	assert.InEpsilon(t, 0.05, a.Sensitivity.RelDb, 1e-9)
	assert.False(t, a.Sensitivity.BoundExceeded)
	assert.Equal(t, sensitivity.DefaultSeed, a.Sensitivity.Seed)

	require.NotNil(t, a.Diagnostics)
	assert.False(t, a.Diagnostics.Well.Kappa.Singular)
	assert.True(t, a.Diagnostics.Ill.Kappa.Singular)

	require.NotNil(t, a.Regularization)
	assert.Equal(t, ridge.DefaultLambda, a.Regularization.Lambda)
	assert.InDelta(t, 100/math.Sqrt(3), a.Regularization.NormalNorm, 1e-6)
	assert.InDelta(t, 46.63201511716614, a.Regularization.RegularizedNorm, 1e-6)
}

func TestAssess_Heatmap(t *testing.T) {
	t.Parallel()

	a, err := planning.Assess(planning.BaseModel())
	require.NoError(t, err)

	h := a.Heatmap
	require.Len(t, h.Values, 4)
	assert.Equal(t, []string{"land", "labor", "water", "fertilizer"}, h.Resources)
	// A·x = [100, 900, 220000, 11300].
	norm := math.Sqrt(100*100 + 900*900 + 220000*220000 + 11300*11300)
	assert.InEpsilon(t, 2500*77.5/norm, h.Values[2][1], 1e-9)
	assert.InEpsilon(t, 150*5/norm, h.Values[3][0], 1e-9)
	for _, row := range h.Values {
		require.Len(t, row, 3)
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
		}
	}
}

func TestAssess_Options(t *testing.T) {
	t.Parallel()

	a, err := planning.Assess(planning.BaseModel(),
		planning.WithSeed(7),
		planning.WithLambda(1),
		planning.WithRidgeMethod(ridge.MethodNormalEquations),
		planning.WithBoundTolerance(0.5),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(7), a.Sensitivity.Seed)
	assert.Equal(t, int64(7), a.Diagnostics.Well.Seed)
	assert.Equal(t, ridge.MethodNormalEquations, a.Regularization.Method)
	want := []float64{32.674142253187014, 32.55786913227709, 32.441596011366755}
	got := a.Regularization.Regularized.Values()
	for i := range want {
		assert.InEpsilonf(t, want[i], got[i], 1e-7, "x[%d]", i)
	}
}

func TestAssess_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := planning.Assess(planning.BaseModel(), planning.WithSeed(42))
	require.NoError(t, err)
	second, err := planning.Assess(planning.BaseModel(), planning.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAssess_Errors(t *testing.T) {
	t.Parallel()

	bad := planning.BaseModel()
	bad.RelPerturb = 2
	_, err := planning.Assess(bad)
	require.ErrorIs(t, err, planning.ErrInvalidModel)

	zero := planning.WellConditioned()
	zero.B = []float64{0, 0, 0}
	_, err = planning.Assess(zero)
	require.ErrorIs(t, err, sensitivity.ErrZeroSolution)

	ref := planning.IllConditioned()
	ref.B = ref.B[:1]
	_, err = planning.Assess(planning.BaseModel(), planning.WithReference(ref))
	require.ErrorIs(t, err, planning.ErrInvalidModel)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { planning.WithLambda(-1) })
	assert.Panics(t, func() { planning.WithLambda(math.NaN()) })
	assert.Panics(t, func() { planning.WithSweepSeeds(0) })
	assert.Panics(t, func() { planning.WithRidgeMethod(ridge.Method(9)) })
	assert.Panics(t, func() { planning.WithBoundTolerance(-1) })
}

func TestSweep(t *testing.T) {
	t.Parallel()

	sum, err := planning.Sweep(planning.BaseModel(), planning.WithSweepSeeds(8), planning.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 8, sum.Runs)
	assert.Len(t, sum.RelDx, 8)
	assert.LessOrEqual(t, sum.MinRelDx, sum.MeanRelDx)
	assert.LessOrEqual(t, sum.MeanRelDx, sum.MaxRelDx)
	assert.Zero(t, sum.Violations)

	_, err = planning.Sweep(planning.Model{})
	require.ErrorIs(t, err, planning.ErrInvalidModel)
}

func TestAssessment_Encoding(t *testing.T) {
	t.Parallel()

	a, err := planning.Assess(planning.BaseModel())
	require.NoError(t, err)

	raw, err := json.Marshal(a)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "ill-conditioned", decoded["class"])
	diag := decoded["diagnostics"].(map[string]any)
	ill := diag["ill"].(map[string]any)
	assert.Nil(t, ill["kappa"].(map[string]any)["value"])

	out, err := yaml.Marshal(a)
	require.NoError(t, err)
	assert.Contains(t, string(out), "class: ill-conditioned")
	assert.Contains(t, string(out), "x_base:")
}

func TestAssessment_WriteText(t *testing.T) {
	t.Parallel()

	a, err := planning.Assess(planning.BaseModel())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, a.WriteText(&buf))
	text := buf.String()
	for _, want := range []string{"binding resources", "land, labor, water", "ill-conditioned", "soybean", "257000.00", "ridge λ=10", "fertilizer"} {
		assert.Contains(t, text, want)
	}
}

func TestAssessment_WriteTextSingularBound(t *testing.T) {
	t.Parallel()

	ill := planning.IllConditioned()
	a, err := planning.Assess(ill)
	require.NoError(t, err)
	require.True(t, a.Kappa.Singular)

	var buf bytes.Buffer
	require.NoError(t, a.WriteText(&buf))
	assert.Contains(t, buf.String(), "inf (exceeded: false)")
	assert.NotContains(t, buf.String(), "e+308")
}
