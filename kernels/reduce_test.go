// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"math"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/staticrt/types/tensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumOut(t *testing.T) {
	input := tensors.FromFlatDataAndDimensions([]int64{
		1, 2, 3,
		4, 5, 6,
	}, 2, 3)
	out := newOut(dtypes.Int64)

	// All axes.
	SumOut(out, input, nil, false)
	assert.Equal(t, 0, out.Rank())
	assert.Equal(t, []int64{21}, tensors.Flat[int64](out))

	SumOut(out, input, []int{0}, false)
	assert.Equal(t, []int{3}, out.Dims())
	assert.Equal(t, []int64{5, 7, 9}, tensors.Flat[int64](out))

	SumOut(out, input, []int{-1}, false)
	assert.Equal(t, []int{2}, out.Dims())
	assert.Equal(t, []int64{6, 15}, tensors.Flat[int64](out))

	SumOut(out, input, []int{1}, true)
	assert.Equal(t, []int{2, 1}, out.Dims())
	assert.Equal(t, []int64{6, 15}, tensors.Flat[int64](out))

	require.Panics(t, func() { SumOut(out, input, []int{2}, false) })
	require.Panics(t, func() { SumOut(out, input, []int{0, 0}, false) })
}

func TestNormOut(t *testing.T) {
	input := tensors.FromFlatDataAndDimensions([]float64{3, -4, 0, 5}, 4)
	out := newOut(dtypes.Float64)

	NormOut(out, input, 2, nil, false)
	assert.InDelta(t, math.Sqrt(9+16+25), tensors.Flat[float64](out)[0], 1e-12)

	NormOut(out, input, 1, nil, false)
	assert.Equal(t, 12.0, tensors.Flat[float64](out)[0])

	// p == 0 counts non-zero elements.
	NormOut(out, input, 0, nil, false)
	assert.Equal(t, 3.0, tensors.Flat[float64](out)[0])

	NormOut(out, input, math.Inf(1), nil, false)
	assert.Equal(t, 5.0, tensors.Flat[float64](out)[0])
	NormOut(out, input, math.Inf(-1), nil, false)
	assert.Equal(t, 0.0, tensors.Flat[float64](out)[0])

	NormOut(out, input, 3, nil, false)
	assert.InDelta(t, math.Pow(27+64+125, 1.0/3), tensors.Flat[float64](out)[0], 1e-12)

	// Per-axis reduction.
	m := tensors.FromFlatDataAndDimensions([]float64{3, 4, 0, 12, 5, 0}, 2, 3)
	NormOut(out, m, 2, []int{1}, false)
	got := tensors.Flat[float64](out)
	assert.InDelta(t, 5.0, got[0], 1e-12)
	assert.InDelta(t, 13.0, got[1], 1e-12)

	iInput := tensors.FromFlatDataAndDimensions([]int64{1}, 1)
	require.Panics(t, func() { NormOut(newOut(dtypes.Int64), iInput, 2, nil, false) })
}

func TestArgMinOut(t *testing.T) {
	input := tensors.FromFlatDataAndDimensions([]float32{
		3, 1, 2,
		0, 5, -1,
	}, 2, 3)
	out := newOut(dtypes.Int64)

	axis := 1
	ArgMinOut(out, input, &axis, false)
	assert.Equal(t, []int{2}, out.Dims())
	assert.Equal(t, []int64{1, 2}, tensors.Flat[int64](out))

	ArgMinOut(out, input, &axis, true)
	assert.Equal(t, []int{2, 1}, out.Dims())
	assert.Equal(t, []int64{1, 2}, tensors.Flat[int64](out))

	axis0 := 0
	ArgMinOut(out, input, &axis0, false)
	assert.Equal(t, []int64{1, 0, 1}, tensors.Flat[int64](out))

	// Nil axis reduces over the flattened input.
	ArgMinOut(out, input, nil, false)
	assert.Equal(t, 0, out.Rank())
	assert.Equal(t, []int64{5}, tensors.Flat[int64](out))

	// Ties keep the first occurrence.
	ties := tensors.FromFlatDataAndDimensions([]int32{7, 7, 7}, 3)
	ArgMinOut(out, ties, nil, false)
	assert.Equal(t, []int64{0}, tensors.Flat[int64](out))

	require.Panics(t, func() { ArgMinOut(newOut(dtypes.Int32), input, nil, false) })
	empty := tensors.FromFlatDataAndDimensions([]float32{}, 0)
	require.Panics(t, func() { ArgMinOut(out, empty, nil, false) })
}
