package tensor

import (
	"math/rand"
)

// mustNew backs the creation helpers, where an invalid shape is a programmer
// error rather than untrusted input.
func mustNew(shape Shape, data []float64) *Dense {
	t, err := New(shape, data)
	if err != nil {
		panic(err)
	}
	return t
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Dense {
	return mustNew(shape, make([]float64, shape.NumElements()))
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Dense {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(Shape{3, 3}, 3.14)
func Full(shape Shape, value float64) *Dense {
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = value
	}
	return mustNew(shape, data)
}

// Eye creates an n×n identity matrix.
func Eye(n int) *Dense {
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
	return mustNew(Shape{n, n}, data)
}

// Diag creates a square matrix with the given values on the diagonal.
func Diag(values []float64) *Dense {
	n := len(values)
	data := make([]float64, n*n)
	for i, v := range values {
		data[i*n+i] = v
	}
	return mustNew(Shape{n, n}, data)
}

// Rand creates a tensor with values uniformly distributed in [0, 1).
// Uses math/rand: numeric experiments want reproducibility, not crypto.
func Rand(shape Shape) *Dense {
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = rand.Float64() //nolint:gosec // G404: math/rand is intentional here
	}
	return mustNew(shape, data)
}

// Arange creates a 1D tensor with values from start to end (exclusive) in
// steps of one.
//
// Example:
//
//	t := tensor.Arange(0, 10) // [0, 1, 2, ..., 9]
func Arange(start, end float64) *Dense {
	n := int(end - start)
	if n <= 0 {
		panic("tensor: Arange: end must be greater than start")
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = start + float64(i)
	}
	return mustNew(Shape{n}, data)
}
