package tennet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoomania/quatennet/internal/tensor"
)

// networkFixture is a three-tensor network with one trace-free greedy plan:
// labels 1, 2, 3 are contracted, free legs −1..−4 order the result.
func networkFixture(t *testing.T) ([]*tensor.Dense, [][]int) {
	t.Helper()
	a := rangeTensor(t, tensor.Shape{2, 3, 2})
	b := rangeTensor(t, tensor.Shape{3, 3, 3, 3})
	return []*tensor.Dense{a, a, b}, [][]int{{-1, 1, 2}, {2, 3, -2}, {1, 3, -3, -4}}
}

func networkFixtureWant(t *testing.T) *tensor.Dense {
	t.Helper()
	want, err := tensor.New(tensor.Shape{2, 2, 3, 3}, []float64{
		12852, 13104, 13356, 13608, 13860, 14112, 14364, 14616, 14868, 15120,
		15417, 15714, 16011, 16308, 16605, 16902, 17199, 17496, 33588, 34380,
		35172, 35964, 36756, 37548, 38340, 39132, 39924, 39744, 40689, 41634,
		42579, 43524, 44469, 45414, 46359, 47304,
	})
	require.NoError(t, err)
	return want
}

func TestContract(t *testing.T) {
	tensors, labels := networkFixture(t)

	got, err := Contract(tensors, labels)
	require.NoError(t, err)

	assert.True(t, got.Equal(networkFixtureWant(t)), "got %v %v", got.Shape(), got.Data())
}

func TestContractMap(t *testing.T) {
	tensors, labels := networkFixture(t)

	got, log, err := ContractMap(tensors, labels)
	require.NoError(t, err)

	assert.True(t, got.Equal(networkFixtureWant(t)))

	// Greedy plan: every pair shares one label, so the tie breaks on the
	// smaller merged tensor (0, 1), then the remainder contracts into it.
	require.Len(t, log, 2)
	assert.Equal(t, StepRecord{Left: 0, Right: 1, Axes: [][2]int{{2, 0}}, Shape: tensor.Shape{2, 3, 3, 2}}, log[0])
	assert.Equal(t, StepRecord{Left: 0, Right: 2, Axes: [][2]int{{1, 0}, {2, 1}}, Shape: tensor.Shape{2, 2, 3, 3}}, log[1])

	// The final recorded shape matches the returned result.
	assert.Equal(t, got.Shape(), log[len(log)-1].Shape)
}

func TestContractMatrixProduct(t *testing.T) {
	a := rangeTensor(t, tensor.Shape{2, 3})
	b := rangeTensor(t, tensor.Shape{3, 4})

	got, err := Contract([]*tensor.Dense{a, b}, [][]int{{-1, 1}, {1, -2}})
	require.NoError(t, err)

	want, err := TensorDot(a, b, [][2]int{{1, 0}})
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
}

func TestContractInputOrderInvariance(t *testing.T) {
	tensors, labels := networkFixture(t)

	base, err := Contract(tensors, labels)
	require.NoError(t, err)

	// Permuting the tensor list with correspondingly permuted labels must
	// not change the result: output order depends only on the free labels.
	permuted, err := Contract(
		[]*tensor.Dense{tensors[2], tensors[0], tensors[1]},
		[][]int{labels[2], labels[0], labels[1]},
	)
	require.NoError(t, err)

	assert.True(t, base.Equal(permuted))
}

func TestContractRelabelingBijection(t *testing.T) {
	a := rangeTensor(t, tensor.Shape{2, 3})
	b := rangeTensor(t, tensor.Shape{3, 4})

	base, err := Contract([]*tensor.Dense{a, b}, [][]int{{-1, 1}, {1, -2}})
	require.NoError(t, err)

	// An order-preserving relabeling of the free legs (−1 → −3, −2 → −7)
	// keeps values and axis order.
	relabeled, err := Contract([]*tensor.Dense{a, b}, [][]int{{-3, 5}, {5, -7}})
	require.NoError(t, err)

	assert.True(t, base.Equal(relabeled))
}

func TestContractFreeLabelOrdering(t *testing.T) {
	a := rangeTensor(t, tensor.Shape{2, 3})

	got, err := Contract([]*tensor.Dense{a}, [][]int{{-2, -1}})
	require.NoError(t, err)

	// −1 labels the size-3 axis, so it comes first.
	want, err := a.Transpose(1, 0)
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
}

func TestContractMapFinalShapeAfterPermutation(t *testing.T) {
	a := rangeTensor(t, tensor.Shape{2, 3})
	b := rangeTensor(t, tensor.Shape{3, 4})

	// Merged labels run (−2, −1), so output assembly permutes the axes.
	got, log, err := ContractMap([]*tensor.Dense{a, b}, [][]int{{-2, 1}, {1, -1}})
	require.NoError(t, err)

	require.Len(t, log, 1)
	assert.Equal(t, tensor.Shape{4, 2}, got.Shape())
	assert.Equal(t, got.Shape(), log[0].Shape)
}

func TestContractTraceOnly(t *testing.T) {
	a := rangeTensor(t, tensor.Shape{2, 2})

	got, err := Contract([]*tensor.Dense{a}, [][]int{{1, 1}})
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{}, got.Shape())
	assert.Equal(t, 3.0, got.At())
}

func TestContractMapTrace(t *testing.T) {
	a := rangeTensor(t, tensor.Shape{2, 3, 2})

	// Axes 0 and 2 are traced; the free axis survives.
	got, log, err := ContractMap([]*tensor.Dense{a}, [][]int{{1, -1, 1}})
	require.NoError(t, err)

	want, err := tensor.New(tensor.Shape{3}, []float64{7, 11, 15})
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "got %v", got.Data())

	require.Len(t, log, 1)
	assert.Equal(t, StepRecord{Left: 0, Right: 0, Axes: [][2]int{{0, 2}}, Shape: tensor.Shape{3}}, log[0])
}

func TestContractTraceThenMerge(t *testing.T) {
	a := rangeTensor(t, tensor.Shape{2, 3, 2})
	b := rangeTensor(t, tensor.Shape{3, 4})

	got, log, err := ContractMap([]*tensor.Dense{a, b}, [][]int{{1, 2, 1}, {2, -1}})
	require.NoError(t, err)

	// Trace first, then the pairwise merge.
	require.Len(t, log, 2)
	assert.Equal(t, 0, log[0].Left)
	assert.Equal(t, 0, log[0].Right)
	assert.Equal(t, 1, log[1].Right)

	traced, err := Trace(a, 0, 2)
	require.NoError(t, err)
	want, err := TensorDot(traced, b, [][2]int{{0, 0}})
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
}

func TestContractScalarResult(t *testing.T) {
	a := rangeTensor(t, tensor.Shape{3})
	b := rangeTensor(t, tensor.Shape{3})

	got, err := Contract([]*tensor.Dense{a, b}, [][]int{{1}, {1}})
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{}, got.Shape())
	assert.Equal(t, 5.0, got.At())
}

func TestContractEmptyInput(t *testing.T) {
	_, err := Contract(nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestContractTripleLabel(t *testing.T) {
	a := rangeTensor(t, tensor.Shape{2})

	_, err := Contract([]*tensor.Dense{a, a, a}, [][]int{{1}, {1}, {1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLabelArity))
}

func TestContractDisconnectedFails(t *testing.T) {
	a := rangeTensor(t, tensor.Shape{2})
	b := rangeTensor(t, tensor.Shape{3})

	_, err := Contract([]*tensor.Dense{a, b}, [][]int{{-1}, {-2}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDisconnectedNetwork))
}

func TestContractDisconnectedOuterProduct(t *testing.T) {
	a := rangeTensor(t, tensor.Shape{2})
	b := rangeTensor(t, tensor.Shape{3})

	got, log, err := ContractMap(
		[]*tensor.Dense{a, b},
		[][]int{{-1}, {-2}},
		WithOuterProduct(),
	)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 3}, got.Shape())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, a.At(i)*b.At(j), got.At(i, j))
		}
	}

	require.Len(t, log, 1)
	assert.Equal(t, 0, log[0].Left)
	assert.Equal(t, 1, log[0].Right)
	assert.Empty(t, log[0].Axes)
}

func TestContractDisconnectedComponents(t *testing.T) {
	// Two connected pairs with no label between the pairs.
	a := rangeTensor(t, tensor.Shape{2, 3})
	b := rangeTensor(t, tensor.Shape{3})
	c := rangeTensor(t, tensor.Shape{4, 2})
	d := rangeTensor(t, tensor.Shape{2})

	tensors := []*tensor.Dense{a, b, c, d}
	labels := [][]int{{-1, 1}, {1}, {-2, 2}, {2}}

	_, err := Contract(tensors, labels)
	assert.True(t, errors.Is(err, ErrDisconnectedNetwork))

	got, err := Contract(tensors, labels, WithOuterProduct())
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 4}, got.Shape())

	// Each component contracts internally, then the outer product glues them.
	left, err := TensorDot(a, b, [][2]int{{1, 0}})
	require.NoError(t, err)
	right, err := TensorDot(c, d, [][2]int{{1, 0}})
	require.NoError(t, err)
	want, err := TensorDot(left, right, nil)
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
}

func TestContractGreedyPrefersMostSharedLabels(t *testing.T) {
	// t0 shares two labels with t1 and only one with t2: (0, 1) merges first.
	t0 := rangeTensor(t, tensor.Shape{2, 3, 4})
	t1 := rangeTensor(t, tensor.Shape{2, 3})
	t2 := rangeTensor(t, tensor.Shape{4, 5})

	_, log, err := ContractMap(
		[]*tensor.Dense{t0, t1, t2},
		[][]int{{1, 2, 3}, {1, 2}, {3, -1}},
	)
	require.NoError(t, err)

	require.Len(t, log, 2)
	assert.Equal(t, 0, log[0].Left)
	assert.Equal(t, 1, log[0].Right)
}

func TestContractGreedyTieBreaksOnResultSize(t *testing.T) {
	// Both candidate merges contract one label; (0, 2) yields the smaller
	// intermediate (2 elements vs 3) and must win despite the higher id.
	t0 := rangeTensor(t, tensor.Shape{2, 3})
	t1 := rangeTensor(t, tensor.Shape{2})
	t2 := rangeTensor(t, tensor.Shape{3})

	got, log, err := ContractMap(
		[]*tensor.Dense{t0, t1, t2},
		[][]int{{1, 2}, {1}, {2}},
	)
	require.NoError(t, err)

	require.Len(t, log, 2)
	assert.Equal(t, 0, log[0].Left)
	assert.Equal(t, 2, log[0].Right)

	// Full contraction: Σ_ij t0[i,j]·t1[i]·t2[j].
	want := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			want += t0.At(i, j) * t1.At(i) * t2.At(j)
		}
	}
	assert.Equal(t, tensor.Shape{}, got.Shape())
	assert.Equal(t, want, got.At())
}

func TestContractWithCostFunc(t *testing.T) {
	tensors, labels := networkFixture(t)

	// Invert the size preference: the largest intermediate wins. The plan
	// changes but the result must not.
	gluttonous := func(a, b Candidate) bool {
		return a.ResultSize > b.ResultSize
	}

	got, log, err := ContractMap(tensors, labels, WithCostFunc(gluttonous))
	require.NoError(t, err)

	require.Len(t, log, 2)
	assert.Equal(t, 0, log[0].Left)
	assert.Equal(t, 2, log[0].Right)

	assert.True(t, got.Equal(networkFixtureWant(t)))
}
