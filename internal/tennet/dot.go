package tennet

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/hoomania/quatennet/internal/tensor"
)

// TensorDot contracts the given axis pairs between two tensors: a generalized
// matrix multiplication summing over every matched axis. The result's axes
// are a's uncontracted axes in original order followed by b's.
//
// An empty pair list produces the outer product, with shape equal to the
// concatenation of both input shapes.
func TensorDot(a, b *tensor.Dense, pairs [][2]int) (*tensor.Dense, error) {
	aShape, bShape := a.Shape(), b.Shape()

	axesA := make([]int, 0, len(pairs))
	axesB := make([]int, 0, len(pairs))
	seenA := make([]bool, a.Rank())
	seenB := make([]bool, b.Rank())
	for _, p := range pairs {
		axA, axB := p[0], p[1]
		if axA < 0 || axA >= a.Rank() {
			return nil, fmt.Errorf("tennet: TensorDot: axis %d out of range [0, %d) on first operand: %w",
				axA, a.Rank(), ErrAxisOutOfRange)
		}
		if axB < 0 || axB >= b.Rank() {
			return nil, fmt.Errorf("tennet: TensorDot: axis %d out of range [0, %d) on second operand: %w",
				axB, b.Rank(), ErrAxisOutOfRange)
		}
		if seenA[axA] {
			return nil, fmt.Errorf("tennet: TensorDot: axis %d of first operand listed twice: %w", axA, ErrDuplicateAxis)
		}
		if seenB[axB] {
			return nil, fmt.Errorf("tennet: TensorDot: axis %d of second operand listed twice: %w", axB, ErrDuplicateAxis)
		}
		if aShape[axA] != bShape[axB] {
			return nil, fmt.Errorf("tennet: TensorDot: contracted axis sizes differ: a[%d] = %d, b[%d] = %d: %w",
				axA, aShape[axA], axB, bShape[axB], ErrShapeMismatch)
		}
		seenA[axA], seenB[axB] = true, true
		axesA = append(axesA, axA)
		axesB = append(axesB, axB)
	}

	freeA := freeAxes(a.Rank(), seenA)
	freeB := freeAxes(b.Rank(), seenB)

	// Flatten both operands to matrices: a as (free, linked), b as
	// (linked, free), so the contraction becomes one matrix product.
	at, err := a.Transpose(append(append([]int{}, freeA...), axesA...)...)
	if err != nil {
		return nil, fmt.Errorf("tennet: TensorDot: %w", err)
	}
	bt, err := b.Transpose(append(append([]int{}, axesB...), freeB...)...)
	if err != nil {
		return nil, fmt.Errorf("tennet: TensorDot: %w", err)
	}

	linked := 1
	for _, ax := range axesA {
		linked *= aShape[ax]
	}
	freeSizeA := at.NumElements() / linked
	freeSizeB := bt.NumElements() / linked

	var out mat.Dense
	out.Mul(
		mat.NewDense(freeSizeA, linked, at.Data()),
		mat.NewDense(linked, freeSizeB, bt.Data()),
	)

	outShape := make(tensor.Shape, 0, len(freeA)+len(freeB))
	for _, ax := range freeA {
		outShape = append(outShape, aShape[ax])
	}
	for _, ax := range freeB {
		outShape = append(outShape, bShape[ax])
	}

	result, err := tensor.New(outShape, out.RawMatrix().Data)
	if err != nil {
		return nil, fmt.Errorf("tennet: TensorDot: %w", err)
	}
	return result, nil
}

// freeAxes returns the axes of a rank-n tensor not marked as contracted,
// in original order.
func freeAxes(n int, contracted []bool) []int {
	free := make([]int, 0, n)
	for ax := 0; ax < n; ax++ {
		if !contracted[ax] {
			free = append(free, ax)
		}
	}
	return free
}
