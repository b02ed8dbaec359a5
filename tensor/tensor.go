// Copyright 2025 QuaTenNet. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/hoomania/quatennet/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
// An empty Shape describes a scalar (rank 0, one element).
type Shape = tensor.Shape

// Dense is a dense float64 tensor: a flat contiguous buffer in row-major
// order plus its shape. Dense values are immutable; every operation returns
// a new value.
type Dense = tensor.Dense

// SVDResult holds the thin singular value decomposition of a rank-2 tensor.
type SVDResult = tensor.SVDResult

// Error kinds, matchable with errors.Is.
var (
	// ErrShapeMismatch reports a buffer whose length disagrees with its
	// declared shape, or axis sizes that disagree at a contraction point.
	ErrShapeMismatch = tensor.ErrShapeMismatch

	// ErrAxisOutOfRange reports an axis index outside [0, rank).
	ErrAxisOutOfRange = tensor.ErrAxisOutOfRange
)

// Creation functions

// New creates a tensor from a shape and a flat row-major buffer.
// The data slice is copied. Fails when the buffer length disagrees with the
// shape's element count.
//
// Example:
//
//	t, err := tensor.New(tensor.Shape{2, 3}, []float64{0, 1, 2, 3, 4, 5})
func New(shape Shape, data []float64) (*Dense, error) {
	return tensor.New(shape, data)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Dense {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Dense {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(tensor.Shape{3, 3}, 3.14)
func Full(shape Shape, value float64) *Dense {
	return tensor.Full(shape, value)
}

// Eye creates an n×n identity matrix.
func Eye(n int) *Dense {
	return tensor.Eye(n)
}

// Diag creates a square matrix with the given values on the diagonal.
func Diag(values []float64) *Dense {
	return tensor.Diag(values)
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
func Rand(shape Shape) *Dense {
	return tensor.Rand(shape)
}

// Arange creates a 1D tensor with values from start to end (exclusive).
//
// Example:
//
//	t := tensor.Arange(0, 10) // [0, 1, 2, ..., 9]
func Arange(start, end float64) *Dense {
	return tensor.Arange(start, end)
}

// Decompositions

// SVD computes the thin singular value decomposition of a rank-2 tensor,
// such that the input equals U · diag(Sigma) · VT.
func SVD(t *Dense) (*SVDResult, error) {
	return tensor.SVD(t)
}
