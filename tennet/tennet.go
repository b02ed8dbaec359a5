// Copyright 2025 QuaTenNet. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tennet

import (
	"github.com/hoomania/quatennet/internal/tennet"
	"github.com/hoomania/quatennet/tensor"
)

// Type aliases for public API

// StepRecord logs one merge performed by the contraction engine.
type StepRecord = tennet.StepRecord

// Candidate describes a potential pairwise merge considered by the greedy
// engine when picking the next contraction.
type Candidate = tennet.Candidate

// CostFunc ranks candidate merges: it reports whether a should be chosen
// over b.
type CostFunc = tennet.CostFunc

// Option configures the contraction engine.
type Option = tennet.Option

// Error kinds, matchable with errors.Is. All contraction errors are
// deterministic input-validation failures detected before numeric work.
var (
	ErrShapeMismatch       = tennet.ErrShapeMismatch
	ErrAxisOutOfRange      = tennet.ErrAxisOutOfRange
	ErrDuplicateAxis       = tennet.ErrDuplicateAxis
	ErrZeroLabel           = tennet.ErrZeroLabel
	ErrLabelArity          = tennet.ErrLabelArity
	ErrRankMismatch        = tennet.ErrRankMismatch
	ErrDisconnectedNetwork = tennet.ErrDisconnectedNetwork
	ErrEmptyInput          = tennet.ErrEmptyInput
)

// WithOuterProduct makes Contract and ContractMap resolve disconnected
// components by merging them as explicit outer products, lowest pair first,
// instead of failing with ErrDisconnectedNetwork.
func WithOuterProduct() Option {
	return tennet.WithOuterProduct()
}

// WithCostFunc replaces the default greedy pair-selection policy. The
// default prefers the pair contracting the most labels per step, then the
// smaller merged tensor, then the lowest id pair.
func WithCostFunc(f CostFunc) Option {
	return tennet.WithCostFunc(f)
}

// TensorDot contracts the given axis pairs between two tensors: a
// generalized matrix multiplication summing over every matched axis. The
// result's axes are a's uncontracted axes in original order followed by b's.
// An empty pair list produces the outer product.
//
// Example:
//
//	a, _ := tensor.New(tensor.Shape{2, 3}, ...)
//	b, _ := tensor.New(tensor.Shape{3, 2, 2}, ...)
//	c, _ := tennet.TensorDot(a, b, [][2]int{{1, 0}}) // Shape: [2, 2, 2]
func TensorDot(a, b *tensor.Dense, pairs [][2]int) (*tensor.Dense, error) {
	return tennet.TensorDot(a, b, pairs)
}

// Trace contracts two axes of the same tensor against each other, summing
// over the diagonal where both indices coincide. The result's rank drops by
// two; remaining axes keep their relative order.
func Trace(t *tensor.Dense, ax1, ax2 int) (*tensor.Dense, error) {
	return tennet.Trace(t, ax1, ax2)
}

// Contract contracts a set of tensors according to their leg labels and
// returns the fully contracted result. See the package documentation for
// the labeling convention.
func Contract(tensors []*tensor.Dense, labels [][]int, opts ...Option) (*tensor.Dense, error) {
	return tennet.Contract(tensors, labels, opts...)
}

// ContractMap is Contract plus the ordered log of every merge performed:
// which live tensors were combined, over which axis pairs, and each
// intermediate's shape. The log is purely informational; its final recorded
// shape equals the returned result's shape, and the step count equals the
// number of input tensors minus one when no traces occur.
func ContractMap(tensors []*tensor.Dense, labels [][]int, opts ...Option) (*tensor.Dense, []StepRecord, error) {
	return tennet.ContractMap(tensors, labels, opts...)
}
