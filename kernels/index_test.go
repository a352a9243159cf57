// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/staticrt/types/tensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNarrowBounds(t *testing.T) {
	assert.Equal(t, 2, NarrowBounds(5, 2, 3))
	assert.Equal(t, 4, NarrowBounds(5, -1, 1))
	// start == dimSize addresses the end for a zero-length narrow.
	assert.Equal(t, 5, NarrowBounds(5, 5, 0))
	assert.Equal(t, 0, NarrowBounds(5, -5, 5))

	require.Panics(t, func() { NarrowBounds(5, 6, 0) })
	require.Panics(t, func() { NarrowBounds(5, -6, 1) })
	require.Panics(t, func() { NarrowBounds(5, -1, 2) }) // resolved start 4 + length 2 > 5
	require.Panics(t, func() { NarrowBounds(5, 2, -1) })
}

func TestNarrowCopyOut(t *testing.T) {
	input := tensors.FromFlatDataAndDimensions([]float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, 3, 3)
	out := newOut(dtypes.Float32)

	NarrowCopyOut(out, input, 0, 1, 2)
	assert.Equal(t, []int{2, 3}, out.Dims())
	assert.Equal(t, []float32{4, 5, 6, 7, 8, 9}, tensors.Flat[float32](out))

	NarrowCopyOut(out, input, 1, -2, 2)
	assert.Equal(t, []int{3, 2}, out.Dims())
	assert.Equal(t, []float32{2, 3, 5, 6, 8, 9}, tensors.Flat[float32](out))

	NarrowCopyOut(out, input, 0, 3, 0)
	assert.Equal(t, []int{0, 3}, out.Dims())
}

func TestIndexOut(t *testing.T) {
	input := tensors.FromFlatDataAndDimensions([]float32{
		1, 2,
		3, 4,
		5, 6,
	}, 3, 2)
	out := newOut(dtypes.Float32)

	idx := tensors.FromFlatDataAndDimensions([]int64{2, 0, -1}, 3)
	IndexOut(out, input, []*tensors.Tensor{idx})
	assert.Equal(t, []int{3, 2}, out.Dims())
	assert.Equal(t, []float32{5, 6, 1, 2, 5, 6}, tensors.Flat[float32](out))

	// Index tensor shape is carried into the output.
	idx2 := tensors.FromFlatDataAndDimensions([]int32{0, 1}, 2, 1)
	IndexOut(out, input, []*tensors.Tensor{idx2})
	assert.Equal(t, []int{2, 1, 2}, out.Dims())
	assert.Equal(t, []float32{1, 2, 3, 4}, tensors.Flat[float32](out))

	oob := tensors.FromFlatDataAndDimensions([]int64{3}, 1)
	require.Panics(t, func() { IndexOut(out, input, []*tensors.Tensor{oob}) })
	require.Panics(t, func() { IndexOut(out, input, []*tensors.Tensor{nil, idx}) })
	require.Panics(t, func() { IndexOut(out, input, []*tensors.Tensor{nil}) })
}

func TestIndexOutBoolMask(t *testing.T) {
	input := tensors.FromFlatDataAndDimensions([]float32{1, 2, 3, 4}, 2, 2)
	mask := tensors.FromFlatDataAndDimensions([]bool{true, false, false, true}, 2, 2)
	out := newOut(dtypes.Float32)

	IndexOut(out, input, []*tensors.Tensor{mask})
	assert.Equal(t, []int{2}, out.Dims())
	assert.Equal(t, []float32{1, 4}, tensors.Flat[float32](out))

	badMask := tensors.FromFlatDataAndDimensions([]bool{true}, 1)
	require.Panics(t, func() { IndexOut(out, input, []*tensors.Tensor{badMask}) })
}
