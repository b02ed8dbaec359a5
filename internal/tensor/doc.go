// Package tensor implements the dense array core of QuaTenNet.
//
// A Dense value is a flat float64 buffer with an explicit row-major Shape.
// Buffers are never mutated after construction: every operation allocates and
// returns a new value, which keeps the contraction layer free of aliasing
// concerns.
package tensor
