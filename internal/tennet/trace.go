package tennet

import (
	"fmt"

	"github.com/hoomania/quatennet/internal/parallel"
	"github.com/hoomania/quatennet/internal/tensor"
)

// Trace contracts two axes of the same tensor against each other, summing
// over the diagonal where both indices coincide. The remaining axes keep
// their relative order; the result's rank drops by two. For a square rank-2
// tensor the result is the scalar matrix trace.
func Trace(t *tensor.Dense, ax1, ax2 int) (*tensor.Dense, error) {
	shape := t.Shape()
	for _, ax := range []int{ax1, ax2} {
		if ax < 0 || ax >= t.Rank() {
			return nil, fmt.Errorf("tennet: Trace: axis %d out of range [0, %d): %w", ax, t.Rank(), ErrAxisOutOfRange)
		}
	}
	if ax1 == ax2 {
		return nil, fmt.Errorf("tennet: Trace: axis %d paired with itself: %w", ax1, ErrDuplicateAxis)
	}
	if shape[ax1] != shape[ax2] {
		return nil, fmt.Errorf("tennet: Trace: traced axis sizes differ: tensor[%d] = %d, tensor[%d] = %d: %w",
			ax1, shape[ax1], ax2, shape[ax2], ErrShapeMismatch)
	}

	rest := make([]int, 0, t.Rank()-2)
	restShape := make(tensor.Shape, 0, t.Rank()-2)
	for ax := 0; ax < t.Rank(); ax++ {
		if ax != ax1 && ax != ax2 {
			rest = append(rest, ax)
			restShape = append(restShape, shape[ax])
		}
	}

	// Move the traced axes to the front; the remainder is then one
	// contiguous block per diagonal element.
	perm := append([]int{ax1, ax2}, rest...)
	tt, err := t.Transpose(perm...)
	if err != nil {
		return nil, fmt.Errorf("tennet: Trace: %w", err)
	}

	n := shape[ax1]
	restN := restShape.NumElements()
	data := tt.Data()

	out := make([]float64, restN)
	parallel.For(restN, func(r int) {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += data[(i*n+i)*restN+r]
		}
		out[r] = sum
	}, parallel.DefaultConfig())

	result, err := tensor.New(restShape, out)
	if err != nil {
		return nil, fmt.Errorf("tennet: Trace: %w", err)
	}
	return result, nil
}
