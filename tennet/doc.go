// Copyright 2025 QuaTenNet. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tennet provides the public API for tensor-network contraction in
// QuaTenNet.
//
// # Overview
//
// The package exposes three layers:
//   - TensorDot: pairwise contraction over explicit axis pairs
//   - Trace: contraction of two axes within one tensor
//   - Contract / ContractMap: N-ary contraction driven by leg labels,
//     ordered by a greedy heuristic
//
// # Leg labels
//
// Each axis of each input tensor carries a signed integer label. A positive
// label marks an axis to be summed away; it must appear on exactly two
// (tensor, axis) slots of equal size across the whole input set. A negative
// label marks a free axis that survives into the result; it must be unique.
// Result axes are ordered by ascending label magnitude: −1 first, −2 second,
// and so on, independent of input order.
//
// # Basic Usage
//
//	import (
//	    "github.com/hoomania/quatennet/tennet"
//	    "github.com/hoomania/quatennet/tensor"
//	)
//
//	func main() {
//	    a, _ := tensor.New(tensor.Shape{2, 3}, []float64{0, 1, 2, 3, 4, 5})
//	    b := tensor.Ones(tensor.Shape{3, 4})
//
//	    // Matrix product as a labeled contraction: shared label 1 is
//	    // summed, free labels −1 and −2 order the result's axes.
//	    result, err := tennet.Contract(
//	        []*tensor.Dense{a, b},
//	        [][]int{{-1, 1}, {1, -2}},
//	    ) // result has Shape: [2, 4]
//	}
//
// Contraction over disconnected components fails with
// ErrDisconnectedNetwork by default; pass WithOuterProduct to combine them
// as explicit outer products instead.
package tennet
