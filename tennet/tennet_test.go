// Copyright 2025 QuaTenNet. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tennet_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoomania/quatennet/tennet"
	"github.com/hoomania/quatennet/tensor"
)

func TestPublicContract(t *testing.T) {
	a, err := tensor.New(tensor.Shape{2, 3}, []float64{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	b := tensor.Ones(tensor.Shape{3, 4})

	got, err := tennet.Contract([]*tensor.Dense{a, b}, [][]int{{-1, 1}, {1, -2}})
	require.NoError(t, err)

	want, err := tennet.TensorDot(a, b, [][2]int{{1, 0}})
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
}

func TestPublicContractMap(t *testing.T) {
	a := tensor.Ones(tensor.Shape{2, 2})
	b := tensor.Ones(tensor.Shape{2, 2})

	got, log, err := tennet.ContractMap([]*tensor.Dense{a, b}, [][]int{{-1, 1}, {1, -2}})
	require.NoError(t, err)

	require.Len(t, log, 1)
	assert.Equal(t, got.Shape(), log[0].Shape)
}

func TestPublicTrace(t *testing.T) {
	got, err := tennet.Trace(tensor.Eye(3), 0, 1)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{}, got.Shape())
	assert.Equal(t, 3.0, got.At())
}

func TestPublicErrors(t *testing.T) {
	a := tensor.Ones(tensor.Shape{2})
	b := tensor.Ones(tensor.Shape{3})

	_, err := tennet.Contract([]*tensor.Dense{a, b}, [][]int{{-1}, {-2}})
	assert.True(t, errors.Is(err, tennet.ErrDisconnectedNetwork))

	_, err = tennet.Contract([]*tensor.Dense{a, b}, [][]int{{-1}, {-2}}, tennet.WithOuterProduct())
	assert.NoError(t, err)

	_, err = tennet.Contract(nil, nil)
	assert.True(t, errors.Is(err, tennet.ErrEmptyInput))
}
