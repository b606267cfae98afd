// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/agroplan/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"1x1", MustRows(t, [][]float64{{1}}), nil},
		{"2x3", MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
	require.ErrorIs(t, matrix.ValidateSquare(MustRows(t, [][]float64{{1, 2}})), matrix.ErrDimensionMismatch)
}

// TestValidateSystem walks the NotNil → Finite → Len → Finite(b) chain.
func TestValidateSystem(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	nanA := MustRows(t, [][]float64{{1, math.NaN()}, {3, 4}, {5, 6}})
	infA := MustRows(t, [][]float64{{1, 2}, {math.Inf(-1), 4}, {5, 6}})

	tests := []struct {
		name string
		a    matrix.Matrix
		b    matrix.Vector
		want error
	}{
		{"ok", a, matrix.NewVector(1, 2, 3), nil},
		{"nil A", nil, matrix.NewVector(1, 2, 3), matrix.ErrNilMatrix},
		{"NaN in A", nanA, matrix.NewVector(1, 2, 3), matrix.ErrNaNInf},
		{"Inf in A via At", hide{infA}, matrix.NewVector(1, 2, 3), matrix.ErrNaNInf},
		{"short b", a, matrix.NewVector(1, 2), matrix.ErrDimensionMismatch},
		{"Inf in b", a, matrix.NewVector(1, math.Inf(1), 3), matrix.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSystem(tc.a, tc.b)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateScalar(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateScalar("lambda", 0))
	require.ErrorIs(t, matrix.ValidateScalar("lambda", math.NaN()), matrix.ErrInvalidInput)
	require.ErrorIs(t, matrix.ValidateScalar("lambda", math.Inf(1)), matrix.ErrNaNInf)
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2, 3}})
	require.NoError(t, matrix.ValidateMulCompatible(a, MustRows(t, [][]float64{{1}, {2}, {3}})))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, a), matrix.ErrNilMatrix)
}
