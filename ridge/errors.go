// SPDX-License-Identifier: MIT

package ridge

import (
	"fmt"

	"github.com/katalvlaran/agroplan/matrix"
)

var (
	// ErrNegativeLambda is returned for a negative or non-finite λ.
	ErrNegativeLambda = fmt.Errorf("ridge: lambda must be finite and ≥ 0: %w", matrix.ErrInvalidInput)

	// ErrNotPositiveDefinite is returned by MethodNormalEquations when
	// AᵀA + λI has a non-positive Cholesky pivot.
	ErrNotPositiveDefinite = matrix.ErrNotPositiveDefinite

	// ErrUnknownMethod is returned by ParseMethod for an unrecognized name.
	ErrUnknownMethod = fmt.Errorf("ridge: unknown method: %w", matrix.ErrInvalidInput)
)
