package tensor

import (
	"errors"
	"fmt"
	"math"

	"github.com/hoomania/quatennet/internal/parallel"
)

// Package-level error kinds. Operations wrap these with context, so callers
// can match with errors.Is.
var (
	// ErrShapeMismatch reports a buffer whose length disagrees with its
	// declared shape, or axis sizes that disagree at a contraction point.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrAxisOutOfRange reports an axis index outside [0, rank).
	ErrAxisOutOfRange = errors.New("tensor: axis out of range")
)

// Dense is a dense float64 tensor: a flat contiguous buffer in row-major
// order (first axis slowest) plus its shape.
//
// A Dense is immutable: no operation writes to an existing buffer, and
// constructors copy caller-supplied slices. Views produced by Reshape may
// share the buffer safely because of this.
type Dense struct {
	data   []float64
	shape  Shape
	stride []int
}

// New creates a tensor from a shape and a flat row-major buffer.
// The data slice is copied.
func New(shape Shape, data []float64) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("tensor: New: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("tensor: New: buffer has %d elements, shape %v needs %d: %w",
			len(data), shape, shape.NumElements(), ErrShapeMismatch)
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	return &Dense{
		data:   buf,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// newOwned wraps an already-allocated buffer without copying.
// The caller must not retain the slice.
func newOwned(shape Shape, data []float64) *Dense {
	return &Dense{
		data:   data,
		shape:  shape,
		stride: shape.ComputeStrides(),
	}
}

// Shape returns a copy of the tensor's shape.
func (d *Dense) Shape() Shape {
	return d.shape.Clone()
}

// Rank returns the number of axes.
func (d *Dense) Rank() int {
	return len(d.shape)
}

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int {
	return len(d.data)
}

// Data returns the underlying buffer.
// WARNING: the slice is shared with the tensor; callers must not modify it.
func (d *Dense) Data() []float64 {
	return d.data
}

// At returns the element at the given multi-axis index.
// Panics on a wrong index count or an out-of-range index: element access is
// a programmer-error surface, not an input-validation one.
func (d *Dense) At(indices ...int) float64 {
	return d.data[d.flatIndex(indices)]
}

func (d *Dense) flatIndex(indices []int) int {
	if len(indices) != len(d.shape) {
		panic(fmt.Sprintf("tensor: At: got %d indices for rank-%d tensor", len(indices), len(d.shape)))
	}
	flat := 0
	for i, ndx := range indices {
		if ndx < 0 || ndx >= d.shape[i] {
			panic(fmt.Sprintf("tensor: At: index %d out of range [0, %d) on axis %d", ndx, d.shape[i], i))
		}
		flat += ndx * d.stride[i]
	}
	return flat
}

// Equal reports whether two tensors have the same shape and identical elements.
func (d *Dense) Equal(other *Dense) bool {
	if !d.shape.Equal(other.shape) {
		return false
	}
	for i, v := range d.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// AllClose reports whether two tensors have the same shape and elementwise
// absolute differences within tol.
func (d *Dense) AllClose(other *Dense, tol float64) bool {
	if !d.shape.Equal(other.shape) {
		return false
	}
	for i, v := range d.data {
		if math.Abs(v-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// Reshape returns a tensor with a new shape and the same elements in the same
// row-major order. One dimension may be -1 and is inferred from the element
// count. The buffer is shared: no data is copied.
func (d *Dense) Reshape(newShape Shape) (*Dense, error) {
	totalElements := d.NumElements()
	inferIdx := -1
	product := 1
	for i, dim := range newShape {
		switch {
		case dim == -1:
			if inferIdx >= 0 {
				return nil, fmt.Errorf("tensor: Reshape: can only have one -1 dimension")
			}
			inferIdx = i
		case dim <= 0:
			return nil, fmt.Errorf("tensor: Reshape: dimensions must be positive, got %d", dim)
		default:
			product *= dim
		}
	}

	actualShape := newShape.Clone()
	if inferIdx >= 0 {
		if product == 0 || totalElements%product != 0 {
			return nil, fmt.Errorf("tensor: Reshape: cannot infer dimension for shape %v from %d elements: %w",
				newShape, totalElements, ErrShapeMismatch)
		}
		actualShape[inferIdx] = totalElements / product
	}

	if actualShape.NumElements() != totalElements {
		return nil, fmt.Errorf("tensor: Reshape: cannot reshape %d elements to shape %v (%d elements): %w",
			totalElements, actualShape, actualShape.NumElements(), ErrShapeMismatch)
	}

	return &Dense{
		data:   d.data,
		shape:  actualShape,
		stride: actualShape.ComputeStrides(),
	}, nil
}

// Transpose permutes the tensor's axes according to the given permutation and
// returns the result as a new tensor. With no axes it reverses all axes.
func (d *Dense) Transpose(axes ...int) (*Dense, error) {
	ndim := len(d.shape)

	// Default: reverse all dimensions
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		return nil, fmt.Errorf("tensor: Transpose: axes length %d must match tensor rank %d", len(axes), ndim)
	}

	newShape := make(Shape, ndim)
	seen := make([]bool, ndim)
	for i, ax := range axes {
		if ax < 0 || ax >= ndim {
			return nil, fmt.Errorf("tensor: Transpose: axis %d out of range [0, %d): %w", ax, ndim, ErrAxisOutOfRange)
		}
		if seen[ax] {
			return nil, fmt.Errorf("tensor: Transpose: axis %d listed twice", ax)
		}
		seen[ax] = true
		newShape[i] = d.shape[ax]
	}

	out := make([]float64, len(d.data))
	transposeData(d.data, out, d.shape, newShape, axes)
	return newOwned(newShape, out), nil
}

func transposeData(in, out []float64, oldShape, newShape Shape, axes []int) {
	ndim := len(oldShape)
	oldStrides := oldShape.ComputeStrides()

	parallel.For(len(out), func(i int) {
		// Decompose the new flat index and accumulate the old one.
		oldFlat := 0
		tmp := i
		for j := ndim - 1; j >= 0; j-- {
			oldFlat += (tmp % newShape[j]) * oldStrides[axes[j]]
			tmp /= newShape[j]
		}
		out[i] = in[oldFlat]
	}, parallel.DefaultConfig())
}
