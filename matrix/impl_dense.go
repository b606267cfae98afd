// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep Dense immutable once constructed: constructors copy their input and
//     every accessor returning a slice returns a copy.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Numeric policy:
//   - Dense stores any float64. Finiteness is enforced by the engine entry points
//     (ValidateFinite), which report ErrNaNInf before any arithmetic happens.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At: O(1); Row/Col: O(c)/O(r); Data: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"          // method tag used in error wrappers
	ctxRow      = "Row"         // method tag used in error wrappers
	ctxCol      = "Col"         // method tag used in error wrappers
	ctxFromRows = "FromRows"    // ctor tag for NewDenseFromRows
	ctxFromData = "FromData"    // ctor tag for NewDenseFromData
	ctxSlice    = "SliceRows"   // ctor tag for Dense.SliceRows
	ctxIdentity = "NewIdentity" // ctor tag for NewIdentity
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w". The sentinel is preserved for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete, immutable row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1 for public constructors.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Only this package writes into data, and only while building a fresh result.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//
// Returns:
//   - *Dense: newly allocated zero matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from a row-major literal, copying every value.
// Implementation:
//   - Stage 1: require at least one row and one column; all rows equally long.
//   - Stage 2: copy rows into a fresh flat buffer in i→j order.
//
// Inputs:
//   - rows: slice of rows; rows[i][j] becomes A[i,j].
//
// Returns:
//   - *Dense independent from the caller's slices.
//
// Errors:
//   - ErrInvalidDimensions for empty or ragged input.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Values are copied verbatim; NaN/Inf are rejected later by engine entry points.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}

	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrInvalidDimensions)
		}
		copy(out.data[i*c:(i+1)*c], rows[i])
	}

	return out, nil
}

// NewDenseFromData builds an r×c Dense from a flat row-major slice (copied).
// Errors: ErrInvalidDimensions for non-positive shape or len(data) != r*c.
// Complexity: O(r*c).
func NewDenseFromData(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d,len=%d): %w", ctxFromData, rows, cols, len(data), ErrInvalidDimensions)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n ≤ 0.
func NewIdentity(n int) (*Dense, error) {
	out, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxIdentity, err)
	}
	var i int
	for i = 0; i < n; i++ {
		out.data[i*n+i] = 1.0
	}

	return out, nil
}

// DenseCopyOf returns a *Dense holding the values of m.
// When m already is a *Dense it is returned as-is: Dense is immutable, so
// sharing is safe. Other implementations are materialized via At in i→j order.
//
// Errors:
//   - ErrNilMatrix for nil input; propagated At errors.
//
// Complexity:
//   - O(1) for *Dense, O(r*c) otherwise.
func DenseCopyOf(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange for invalid i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange for invalid j.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Data returns a copy of the row-major backing buffer.
func (m *Dense) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// ToRows returns the matrix as freshly allocated row slices.
// Useful for serialization layers that expect [][]float64.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// SliceRows returns a copy of rows [r0, r1) as a new Dense.
// Errors: ErrOutOfRange when the window is empty or outside [0, Rows()].
// Complexity: O((r1-r0)*c).
func (m *Dense) SliceRows(r0, r1 int) (*Dense, error) {
	if r0 < 0 || r1 > m.r || r0 >= r1 {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxSlice, r0, r1, ErrOutOfRange)
	}
	buf := make([]float64, (r1-r0)*m.c)
	copy(buf, m.data[r0*m.c:r1*m.c])

	return &Dense{r: r1 - r0, c: m.c, data: buf}, nil
}

// String renders rows as lines with comma-separated values, for diagnostics.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
