// SPDX-License-Identifier: MIT

package perturb

import (
	"fmt"

	"github.com/katalvlaran/agroplan/matrix"
)

var (
	// ErrNegativeMagnitude is returned for a relative magnitude r < 0.
	ErrNegativeMagnitude = fmt.Errorf("perturb: relative magnitude must be ≥ 0: %w", matrix.ErrInvalidInput)

	// ErrZeroNormTarget is returned when r > 0 but the target has zero norm,
	// so no perturbation of relative size r exists.
	ErrZeroNormTarget = fmt.Errorf("perturb: target has zero norm: %w", matrix.ErrDegenerateInput)
)
