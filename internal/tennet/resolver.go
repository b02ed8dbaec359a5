package tennet

import (
	"fmt"

	"github.com/hoomania/quatennet/internal/tensor"
)

// slot pins one leg: the axis position of one input tensor.
type slot struct {
	tensor int
	axis   int
}

// plan is the contraction plan built once by the label resolver: the two
// slots of every positive label and the single slot of every negative label.
// Read-only after construction.
type plan struct {
	contracted map[int][2]slot
	free       map[int]slot
}

// resolve validates the leg labeling and builds the contraction plan.
//
// Rules: label lists match their tensors' ranks; no label is zero; every
// positive label appears on exactly two slots with equal axis sizes; every
// negative label appears on exactly one slot.
func resolve(tensors []*tensor.Dense, labels [][]int) (*plan, error) {
	if len(tensors) == 0 {
		return nil, fmt.Errorf("tennet: %w", ErrEmptyInput)
	}
	if len(labels) != len(tensors) {
		return nil, fmt.Errorf("tennet: got %d label lists for %d tensors: %w",
			len(labels), len(tensors), ErrRankMismatch)
	}

	occurrences := make(map[int][]slot)
	for i, list := range labels {
		if len(list) != tensors[i].Rank() {
			return nil, fmt.Errorf("tennet: tensor %d has rank %d but %d labels: %w",
				i, tensors[i].Rank(), len(list), ErrRankMismatch)
		}
		for ax, label := range list {
			if label == 0 {
				return nil, fmt.Errorf("tennet: tensor %d, axis %d: %w", i, ax, ErrZeroLabel)
			}
			occurrences[label] = append(occurrences[label], slot{tensor: i, axis: ax})
		}
	}

	p := &plan{
		contracted: make(map[int][2]slot),
		free:       make(map[int]slot),
	}

	// Walk labels in input order so a multi-violation input reports the
	// same error every run.
	checked := make(map[int]bool)
	for _, list := range labels {
		for _, label := range list {
			if checked[label] {
				continue
			}
			checked[label] = true
			slots := occurrences[label]

			if label < 0 {
				if len(slots) != 1 {
					return nil, fmt.Errorf("tennet: free label %d appears %d times, must appear exactly once: %w",
						label, len(slots), ErrLabelArity)
				}
				p.free[label] = slots[0]
				continue
			}

			if len(slots) != 2 {
				return nil, fmt.Errorf("tennet: contracted label %d appears %d times, must appear exactly twice: %w",
					label, len(slots), ErrLabelArity)
			}
			s0, s1 := slots[0], slots[1]
			size0 := tensors[s0.tensor].Shape()[s0.axis]
			size1 := tensors[s1.tensor].Shape()[s1.axis]
			if size0 != size1 {
				return nil, fmt.Errorf("tennet: label %d joins axes of different sizes: tensor %d axis %d = %d, tensor %d axis %d = %d: %w",
					label, s0.tensor, s0.axis, size0, s1.tensor, s1.axis, size1, ErrShapeMismatch)
			}
			p.contracted[label] = [2]slot{s0, s1}
		}
	}

	return p, nil
}

// traceLabels returns the positive labels whose two slots sit on the same
// tensor, making them trace candidates rather than pairwise contractions.
func (p *plan) traceLabels() []int {
	var labels []int
	for label, slots := range p.contracted {
		if slots[0].tensor == slots[1].tensor {
			labels = append(labels, label)
		}
	}
	return labels
}
