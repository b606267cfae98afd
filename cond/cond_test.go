// SPDX-License-Identifier: MIT
// Package cond_test contains unit tests for the condition estimator.
package cond_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/agroplan/cond"
	"github.com/katalvlaran/agroplan/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func TestNumber(t *testing.T) {
	t.Parallel()

	zero, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	tests := []struct {
		name         string
		a            matrix.Matrix
		singular     bool
		lo, hi       float64
		wantClassStr string
	}{
		{"identity", mustRows(t, [][]float64{{1, 0}, {0, 1}}), false, 1, 1, "well-conditioned"},
		{"diag 1,50", mustRows(t, [][]float64{{50, 0}, {0, 1}}), false, 50, 50, "well-conditioned"},
		{"diag 1,5000", mustRows(t, [][]float64{{5000, 0}, {0, 1}}), false, 5000, 5000, "moderately-conditioned"},
		{"farm resources", mustRows(t, [][]float64{{1, 1, 1}, {10, 8, 12}, {3000, 2500, 1500}}), false, 2.8e4, 3.0e4, "ill-conditioned"},
		{"near collinear 2x2", mustRows(t, [][]float64{{1, 1}, {1, 1.0001}}), false, 3.9e4, 4.1e4, "ill-conditioned"},
		{"exactly collinear rows", mustRows(t, [][]float64{{1, 1, 1}, {2.01, 2, 1.99}, {3.01, 3, 2.99}}), true, 0, 0, "ill-conditioned"},
		{"rank one", mustRows(t, [][]float64{{1, 2}, {2, 4}, {3, 6}}), true, 0, 0, "ill-conditioned"},
		{"zero", zero, true, 0, 0, "ill-conditioned"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r, err := cond.Number(tc.a)
			require.NoError(t, err)
			assert.Equal(t, tc.wantClassStr, r.Class().String())
			if tc.singular {
				assert.True(t, r.Singular)
				assert.Equal(t, math.MaxFloat64, r.Value)
				return
			}
			assert.False(t, r.Singular)
			assert.GreaterOrEqual(t, r.Value, 1.0)
			assert.InDelta(t, (tc.lo+tc.hi)/2, r.Value, (tc.hi-tc.lo)/2+1e-9*tc.hi)
		})
	}
}

func TestNumber_ScaleInvariant(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{4, 1}, {2, 3}})
	scaled := mustRows(t, [][]float64{{4e3, 1e3}, {2e3, 3e3}})
	r1, err := cond.Number(a)
	require.NoError(t, err)
	r2, err := cond.Number(scaled)
	require.NoError(t, err)
	assert.InEpsilon(t, r1.Value, r2.Value, 1e-12)
}

func TestNumber_ExtremeScale(t *testing.T) {
	t.Parallel()

	// κ of [[1,1],[1,2]] is (3+√5)/(3−√5).
	want := (3 + math.Sqrt(5)) / (3 - math.Sqrt(5))
	for _, s := range []float64{1e-170, 1e160} {
		r, err := cond.Number(mustRows(t, [][]float64{{s, s}, {s, 2 * s}}))
		require.NoError(t, err)
		assert.False(t, r.Singular)
		assert.InEpsilonf(t, want, r.Value, 1e-12, "s=%g", s)
	}
}

func TestNumber_Errors(t *testing.T) {
	t.Parallel()

	_, err := cond.Number(mustRows(t, [][]float64{{1, math.Inf(1)}}))
	require.ErrorIs(t, err, matrix.ErrInvalidInput)
	_, err = cond.Number(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFromValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cond.Result{Value: 4}, cond.FromValues([]float64{8, 4, 2}, 1e-15))
	assert.True(t, cond.FromValues([]float64{8, 1e-20}, 1e-15).Singular)
	assert.True(t, cond.FromValues([]float64{8, 0}, 0).Singular)
	assert.True(t, cond.FromValues(nil, 0).Singular)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kappa float64
		want  cond.Class
	}{
		{1, cond.Well},
		{99.9, cond.Well},
		{100, cond.Moderate},
		{9999, cond.Moderate},
		{1e4, cond.Ill},
		{math.MaxFloat64, cond.Ill},
		{math.NaN(), cond.Ill},
	}
	for _, tc := range tests {
		assert.Equalf(t, tc.want, cond.Classify(tc.kappa), "κ=%g", tc.kappa)
	}
	assert.Equal(t, "Class(7)", cond.Class(7).String())
}

func TestResult_Encoding(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(cond.Result{Value: 12.5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":12.5,"singular":false}`, string(raw))

	raw, err = json.Marshal(cond.Result{Value: math.MaxFloat64, Singular: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":null,"singular":true}`, string(raw))

	raw, err = json.Marshal(cond.Ill)
	require.NoError(t, err)
	assert.Equal(t, `"ill-conditioned"`, string(raw))

	assert.Equal(t, "inf", cond.Result{Singular: true}.String())
	assert.Equal(t, "1.250e+01", cond.Result{Value: 12.5}.String())
}
