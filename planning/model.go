// SPDX-License-Identifier: MIT

package planning

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/agroplan/matrix"
	"gopkg.in/yaml.v3"
)

// Defaults applied to fields a plan file leaves out.
const (
	DefaultRelPerturb   = 0.05
	DefaultEqualityRows = 3
)

// ErrInvalidModel is returned by Validate for inconsistent plans.
var ErrInvalidModel = fmt.Errorf("planning: invalid model: %w", matrix.ErrInvalidInput)

// Model is a resource-allocation plan.
type Model struct {
	Name      string      `yaml:"name,omitempty" json:"name,omitempty"`
	Resources []string    `yaml:"resources" json:"resources"`
	Crops     []string    `yaml:"crops" json:"crops"`
	A         [][]float64 `yaml:"a" json:"a"`
	B         []float64   `yaml:"b" json:"b"`
	Profit    []float64   `yaml:"profit" json:"profit"`
	// RelPerturb is the relative magnitude of the resource perturbation, in [0, 1).
	RelPerturb float64 `yaml:"rel_perturb" json:"rel_perturb"`
	// EqualityRows is the number of leading resources treated as binding.
	EqualityRows int `yaml:"equality_rows" json:"equality_rows"`
}

// modelFile mirrors Model with optional scalars so absent keys get defaults.
type modelFile struct {
	Name         string      `yaml:"name"`
	Resources    []string    `yaml:"resources"`
	Crops        []string    `yaml:"crops"`
	A            [][]float64 `yaml:"a"`
	B            []float64   `yaml:"b"`
	Profit       []float64   `yaml:"profit"`
	RelPerturb   *float64    `yaml:"rel_perturb"`
	EqualityRows *int        `yaml:"equality_rows"`
}

// Load decodes and validates a YAML plan. Unknown keys are rejected.
func Load(r io.Reader) (Model, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f modelFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Model{}, fmt.Errorf("planning: empty plan: %w", ErrInvalidModel)
		}

		return Model{}, fmt.Errorf("planning: decode plan: %w", err)
	}

	m := Model{
		Name:         f.Name,
		Resources:    f.Resources,
		Crops:        f.Crops,
		A:            f.A,
		B:            f.B,
		Profit:       f.Profit,
		RelPerturb:   DefaultRelPerturb,
		EqualityRows: DefaultEqualityRows,
	}
	if f.RelPerturb != nil {
		m.RelPerturb = *f.RelPerturb
	}
	if f.EqualityRows != nil {
		m.EqualityRows = *f.EqualityRows
	} else if len(m.A) < DefaultEqualityRows {
		m.EqualityRows = len(m.A)
	}
	if err := m.Validate(); err != nil {
		return Model{}, err
	}

	return m, nil
}

// LoadFile reads a YAML plan from path.
func LoadFile(path string) (Model, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Model{}, fmt.Errorf("planning: open plan: %w", err)
	}
	defer fh.Close()

	m, err := Load(fh)
	if err != nil {
		return Model{}, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Validate checks labels and shapes against A, finiteness of every number,
// 0 ≤ RelPerturb < 1 and 1 ≤ EqualityRows ≤ len(Resources).
func (m Model) Validate() error {
	rows := len(m.A)
	if rows == 0 {
		return fmt.Errorf("planning: A has no rows: %w", ErrInvalidModel)
	}
	cols := len(m.Crops)
	if cols == 0 {
		return fmt.Errorf("planning: no crops: %w", ErrInvalidModel)
	}
	if len(m.Resources) != rows {
		return fmt.Errorf("planning: %d resources for %d rows of A: %w", len(m.Resources), rows, ErrInvalidModel)
	}
	for i, row := range m.A {
		if len(row) != cols {
			return fmt.Errorf("planning: row %d (%s) has %d entries, want %d: %w", i, m.Resources[i], len(row), cols, ErrInvalidModel)
		}
		if !allFinite(row) {
			return fmt.Errorf("planning: row %d (%s): %w", i, m.Resources[i], matrix.ErrNaNInf)
		}
	}
	if len(m.B) != rows {
		return fmt.Errorf("planning: b has %d entries, want %d: %w", len(m.B), rows, ErrInvalidModel)
	}
	if !allFinite(m.B) {
		return fmt.Errorf("planning: b: %w", matrix.ErrNaNInf)
	}
	if len(m.Profit) != cols {
		return fmt.Errorf("planning: profit has %d entries, want %d: %w", len(m.Profit), cols, ErrInvalidModel)
	}
	if !allFinite(m.Profit) {
		return fmt.Errorf("planning: profit: %w", matrix.ErrNaNInf)
	}
	if math.IsNaN(m.RelPerturb) || m.RelPerturb < 0 || m.RelPerturb >= 1 {
		return fmt.Errorf("planning: rel_perturb %g outside [0, 1): %w", m.RelPerturb, ErrInvalidModel)
	}
	if m.EqualityRows < 1 || m.EqualityRows > rows {
		return fmt.Errorf("planning: equality_rows %d outside [1, %d]: %w", m.EqualityRows, rows, ErrInvalidModel)
	}

	return nil
}

// Matrix returns A as a *matrix.Dense.
func (m Model) Matrix() (*matrix.Dense, error) {
	return matrix.NewDenseFromRows(m.A)
}

// Equality returns the binding subsystem (first EqualityRows rows of A and b).
func (m Model) Equality() (*matrix.Dense, matrix.Vector, error) {
	a, err := m.Matrix()
	if err != nil {
		return nil, matrix.Vector{}, err
	}
	aEq, err := a.SliceRows(0, m.EqualityRows)
	if err != nil {
		return nil, matrix.Vector{}, err
	}

	return aEq, matrix.NewVector(m.B[:m.EqualityRows]...), nil
}

func allFinite(s []float64) bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
