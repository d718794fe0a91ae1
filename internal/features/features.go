package features

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// BiasInput is the constant appended to every input row so the last
// weight acts as the intercept.
const BiasInput = -1.0

var ErrWidth = errors.New("features: row width mismatch")

// WithBias returns X as an n x (features+1) matrix whose last column is BiasInput.
func WithBias(X [][]float64, features int) (*mat.Dense, error) {
	if len(X) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrWidth)
	}
	cols := features + 1
	raw := make([]float64, 0, len(X)*cols)
	for i, row := range X {
		if len(row) != features {
			return nil, fmt.Errorf("%w: row %d has %d features, want %d", ErrWidth, i, len(row), features)
		}
		raw = append(raw, row...)
		raw = append(raw, BiasInput)
	}
	return mat.NewDense(len(X), cols, raw), nil
}

