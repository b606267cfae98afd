// SPDX-License-Identifier: MIT

package sensitivity

import (
	"fmt"

	"github.com/katalvlaran/agroplan/matrix"
)

var (
	// ErrZeroSolution is returned when the base solution is the zero vector,
	// which leaves the relative change of x undefined.
	ErrZeroSolution = fmt.Errorf("sensitivity: base solution has zero norm: %w", matrix.ErrDegenerateInput)

	// ErrNoSeeds is returned by Sweep for a non-positive seed count.
	ErrNoSeeds = fmt.Errorf("sensitivity: seed count must be ≥ 1: %w", matrix.ErrInvalidInput)
)
