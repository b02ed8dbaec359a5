package tennet

import (
	"fmt"
	"sort"

	"github.com/hoomania/quatennet/internal/tensor"
)

// StepRecord logs one merge performed by the contraction engine.
type StepRecord struct {
	Left  int          // id of the first merged tensor; the merged result keeps this id
	Right int          // id of the second merged tensor; equal to Left for a trace
	Axes  [][2]int     // contracted axis pairs at merge time; empty for an outer product
	Shape tensor.Shape // shape of the merged tensor; the final record reports the result's output axis order
}

// liveTensor is one entry of the engine's working set: the current value of a
// (possibly already merged) tensor and its pending leg labels, one per axis.
type liveTensor struct {
	id     int
	value  *tensor.Dense
	labels []int
}

// Contract contracts a set of tensors according to their leg labels and
// returns the fully contracted result. Positive labels are summed away,
// negative labels survive as result axes ordered by ascending magnitude
// (−1 first, −2 second, ...). A labeling with no negative labels yields a
// scalar (rank-0) result.
//
// Merge order follows a greedy heuristic (see Option) and changes only the
// sizes of intermediate tensors, never the result.
func Contract(tensors []*tensor.Dense, labels [][]int, opts ...Option) (*tensor.Dense, error) {
	result, _, err := run(tensors, labels, applyOptions(opts))
	return result, err
}

// ContractMap is Contract plus the ordered log of every merge performed:
// which live tensors were combined, over which axis pairs, and the shape of
// each intermediate. The log is purely informational.
func ContractMap(tensors []*tensor.Dense, labels [][]int, opts ...Option) (*tensor.Dense, []StepRecord, error) {
	return run(tensors, labels, applyOptions(opts))
}

func run(tensors []*tensor.Dense, labels [][]int, o options) (*tensor.Dense, []StepRecord, error) {
	pl, err := resolve(tensors, labels)
	if err != nil {
		return nil, nil, err
	}

	live := make([]*liveTensor, len(tensors))
	for i, t := range tensors {
		live[i] = &liveTensor{
			id:     i,
			value:  t,
			labels: append([]int(nil), labels[i]...),
		}
	}

	var log []StepRecord

	// Trace candidates resolve before any pairwise merge. Merges cannot
	// create new ones: a merge contracts every label its operands share.
	traces := pl.traceLabels()
	sort.Ints(traces)
	for _, label := range traces {
		lt := live[pl.contracted[label][0].tensor]
		ax1, ax2 := pairIn(lt.labels, label)
		traced, err := Trace(lt.value, ax1, ax2)
		if err != nil {
			return nil, nil, err
		}
		lt.value = traced
		lt.labels = dropLabel(lt.labels, label)
		log = append(log, StepRecord{
			Left:  lt.id,
			Right: lt.id,
			Axes:  [][2]int{{ax1, ax2}},
			Shape: traced.Shape(),
		})
	}

	for len(live) > 1 {
		i, j, found := selectPair(live, o.cost)
		if !found {
			if !o.outerProduct {
				return nil, nil, fmt.Errorf("tennet: %d tensors remain unconnected: %w", len(live), ErrDisconnectedNetwork)
			}
			// Explicit outer product of the lowest id pair; the live
			// set stays sorted by id, so that is positions 0 and 1.
			i, j = 0, 1
		}

		merged, err := mergePair(live, i, j)
		if err != nil {
			return nil, nil, err
		}
		log = append(log, merged)
		live = append(live[:j], live[j+1:]...)
	}

	final := live[0]
	result, err := final.value.Transpose(finalPermutation(final.labels)...)
	if err != nil {
		return nil, nil, fmt.Errorf("tennet: output assembly: %w", err)
	}
	if len(log) > 0 {
		// The last record describes the terminal tensor; report it in
		// the caller's output axis order.
		log[len(log)-1].Shape = result.Shape()
	}
	return result, log, nil
}

// selectPair scans all live pairs sharing at least one pending label and
// returns the positions of the best pair under the cost ranking.
func selectPair(live []*liveTensor, cost CostFunc) (int, int, bool) {
	var best Candidate
	bestI, bestJ := -1, -1
	for i := 0; i < len(live); i++ {
		for j := i + 1; j < len(live); j++ {
			shared := sharedLabels(live[i].labels, live[j].labels)
			if len(shared) == 0 {
				continue
			}
			c := Candidate{
				Left:       live[i].id,
				Right:      live[j].id,
				Shared:     len(shared),
				ResultSize: mergedSize(live[i], live[j], shared),
			}
			if bestI < 0 || cost(c, best) {
				best, bestI, bestJ = c, i, j
			}
		}
	}
	return bestI, bestJ, bestI >= 0
}

// mergePair contracts live entries at positions i and j (i < j) over all
// their shared pending labels and stores the result at position i under the
// lower id. The caller removes position j.
func mergePair(live []*liveTensor, i, j int) (StepRecord, error) {
	a, b := live[i], live[j]
	shared := sharedLabels(a.labels, b.labels)

	pairs := make([][2]int, len(shared))
	for k, label := range shared {
		pairs[k] = [2]int{indexOf(a.labels, label), indexOf(b.labels, label)}
	}

	merged, err := TensorDot(a.value, b.value, pairs)
	if err != nil {
		return StepRecord{}, err
	}

	newLabels := dropLabels(a.labels, shared)
	newLabels = append(newLabels, dropLabels(b.labels, shared)...)

	record := StepRecord{
		Left:  a.id,
		Right: b.id,
		Axes:  pairs,
		Shape: merged.Shape(),
	}

	a.value = merged
	a.labels = newLabels
	return record, nil
}

// sharedLabels returns the positive labels present in both lists, in the
// order they appear in the first.
func sharedLabels(a, b []int) []int {
	inB := make(map[int]bool, len(b))
	for _, label := range b {
		if label > 0 {
			inB[label] = true
		}
	}
	var shared []int
	for _, label := range a {
		if label > 0 && inB[label] {
			shared = append(shared, label)
		}
	}
	return shared
}

// mergedSize is the element count of the tensor a pairwise merge would
// produce: the product of both operands' surviving axis sizes.
func mergedSize(a, b *liveTensor, shared []int) int {
	size := a.value.NumElements() * b.value.NumElements()
	aShape := a.value.Shape()
	for _, label := range shared {
		dim := aShape[indexOf(a.labels, label)]
		size /= dim * dim
	}
	return size
}

// finalPermutation orders the terminal tensor's axes by ascending magnitude
// of their free labels: −1 first, −2 second, and so on.
func finalPermutation(labels []int) []int {
	sorted := append([]int(nil), labels...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	perm := make([]int, len(sorted))
	for k, label := range sorted {
		perm[k] = indexOf(labels, label)
	}
	return perm
}

func indexOf(labels []int, label int) int {
	for i, l := range labels {
		if l == label {
			return i
		}
	}
	return -1
}

// pairIn returns the two axis positions of a label occurring twice in one list.
func pairIn(labels []int, label int) (int, int) {
	first := indexOf(labels, label)
	for ax := first + 1; ax < len(labels); ax++ {
		if labels[ax] == label {
			return first, ax
		}
	}
	return first, -1
}

func dropLabel(labels []int, label int) []int {
	out := make([]int, 0, len(labels))
	for _, l := range labels {
		if l != label {
			out = append(out, l)
		}
	}
	return out
}

func dropLabels(labels, drop []int) []int {
	dropped := make(map[int]bool, len(drop))
	for _, l := range drop {
		dropped[l] = true
	}
	out := make([]int, 0, len(labels))
	for _, l := range labels {
		if !dropped[l] {
			out = append(out, l)
		}
	}
	return out
}
