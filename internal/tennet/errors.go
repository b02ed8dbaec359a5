package tennet

import (
	"errors"

	"github.com/hoomania/quatennet/internal/tensor"
)

// Error kinds reported by the contraction layer. All are deterministic
// input-validation failures, detected before any numeric work on the
// offending tensors, and matchable with errors.Is.
var (
	// ErrShapeMismatch reports axis sizes that disagree at a contraction
	// point. Shared with the tensor package so both layers report the same
	// kind.
	ErrShapeMismatch = tensor.ErrShapeMismatch

	// ErrAxisOutOfRange reports an axis index outside a tensor's rank.
	ErrAxisOutOfRange = tensor.ErrAxisOutOfRange

	// ErrDuplicateAxis reports an axis referenced twice on one side of a
	// pairwise contraction, or a trace over one axis paired with itself.
	ErrDuplicateAxis = errors.New("tennet: duplicate axis reference")

	// ErrZeroLabel reports a zero leg label, which is not valid.
	ErrZeroLabel = errors.New("tennet: zero is not a valid leg label")

	// ErrLabelArity reports a positive label not appearing exactly twice, or
	// a negative label appearing more than once, across the input set.
	ErrLabelArity = errors.New("tennet: leg label arity violation")

	// ErrRankMismatch reports a label list whose length differs from its
	// tensor's rank.
	ErrRankMismatch = errors.New("tennet: label count does not match tensor rank")

	// ErrDisconnectedNetwork reports a live set in which no pair of tensors
	// shares a pending label while more than one tensor remains.
	ErrDisconnectedNetwork = errors.New("tennet: no shared label connects the remaining tensors")

	// ErrEmptyInput reports a contraction over zero tensors.
	ErrEmptyInput = errors.New("tennet: at least one tensor is required")
)
