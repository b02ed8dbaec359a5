// Package tennet implements the tensor-network contraction layer of
// QuaTenNet: the pairwise TensorDot and Trace primitives, the leg-label
// resolver, and the greedy N-ary contraction engine behind Contract and
// ContractMap.
//
// Legs are labeled with signed integers. A positive label marks an axis to be
// summed away and must appear on exactly two (tensor, axis) slots across the
// whole input set; a negative label marks a free axis that survives into the
// result and must be unique. The result's axes are ordered by ascending label
// magnitude: −1 first, −2 second, and so on.
package tennet
