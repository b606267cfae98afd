// SPDX-License-Identifier: MIT
package planning_test

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/agroplan/matrix"
	"github.com/katalvlaran/agroplan/planning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Plan(t *testing.T) {
	t.Parallel()

	m, err := planning.LoadFile(filepath.Join("testdata", "plan.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "farm", m.Name)
	assert.Equal(t, planning.BaseModel().A, m.A)
	assert.Equal(t, planning.BaseModel().B, m.B)
	assert.Equal(t, 0.05, m.RelPerturb)
	assert.Equal(t, 3, m.EqualityRows)
}

func TestLoadFile_Defaults(t *testing.T) {
	t.Parallel()

	m, err := planning.LoadFile(filepath.Join("testdata", "minimal.yaml"))
	require.NoError(t, err)
	assert.Equal(t, planning.DefaultRelPerturb, m.RelPerturb)
	// Fewer rows than the default binding count: all rows bind.
	assert.Equal(t, 2, m.EqualityRows)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := planning.LoadFile(filepath.Join("testdata", "bad_shape.yaml"))
	require.ErrorIs(t, err, planning.ErrInvalidModel)
	require.ErrorIs(t, err, matrix.ErrInvalidInput)

	_, err = planning.LoadFile(filepath.Join("testdata", "unknown_key.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "budget")

	_, err = planning.LoadFile(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_Empty(t *testing.T) {
	t.Parallel()

	_, err := planning.Load(strings.NewReader(""))
	require.ErrorIs(t, err, planning.ErrInvalidModel)
}

func TestLoad_ExplicitZeroPerturbation(t *testing.T) {
	t.Parallel()

	src := `
resources: [land]
crops: [corn]
a: [[1]]
b: [100]
profit: [3000]
rel_perturb: 0
equality_rows: 1
`
	m, err := planning.Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Zero(t, m.RelPerturb)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*planning.Model)
		want   error
	}{
		{"base is valid", func(*planning.Model) {}, nil},
		{"no rows", func(m *planning.Model) { m.A = nil }, planning.ErrInvalidModel},
		{"no crops", func(m *planning.Model) { m.Crops = nil }, planning.ErrInvalidModel},
		{"resource labels", func(m *planning.Model) { m.Resources = m.Resources[:2] }, planning.ErrInvalidModel},
		{"ragged A", func(m *planning.Model) { m.A = [][]float64{{1, 1, 1}, {1, 1}, {1, 1, 1}, {1, 1, 1}} }, planning.ErrInvalidModel},
		{"NaN in A", func(m *planning.Model) { m.A = [][]float64{{1, 1, 1}, {1, math.NaN(), 1}, {1, 1, 1}, {1, 1, 1}} }, matrix.ErrNaNInf},
		{"short b", func(m *planning.Model) { m.B = m.B[:3] }, planning.ErrInvalidModel},
		{"Inf in b", func(m *planning.Model) { m.B = []float64{1, 2, math.Inf(1), 4} }, matrix.ErrNaNInf},
		{"short profit", func(m *planning.Model) { m.Profit = m.Profit[:1] }, planning.ErrInvalidModel},
		{"NaN profit", func(m *planning.Model) { m.Profit = []float64{1, math.NaN(), 1} }, matrix.ErrNaNInf},
		{"negative r", func(m *planning.Model) { m.RelPerturb = -0.1 }, planning.ErrInvalidModel},
		{"r of one", func(m *planning.Model) { m.RelPerturb = 1 }, planning.ErrInvalidModel},
		{"zero equality rows", func(m *planning.Model) { m.EqualityRows = 0 }, planning.ErrInvalidModel},
		{"too many equality rows", func(m *planning.Model) { m.EqualityRows = 5 }, planning.ErrInvalidModel},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := planning.BaseModel()
			tc.mutate(&m)
			err := m.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, matrix.ErrInvalidInput)
		})
	}
}

func TestScenarios_Valid(t *testing.T) {
	t.Parallel()

	for _, m := range []planning.Model{planning.BaseModel(), planning.WellConditioned(), planning.IllConditioned()} {
		require.NoError(t, m.Validate(), m.Name)
	}
	assert.Equal(t, planning.BaseModel().A[:3], planning.WellConditioned().A)
}

func TestEquality(t *testing.T) {
	t.Parallel()

	aEq, bEq, err := planning.BaseModel().Equality()
	require.NoError(t, err)
	r, c := aEq.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []float64{100, 900, 220000}, bEq.Values())
}
