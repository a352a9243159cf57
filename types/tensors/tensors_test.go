// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tensors

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/staticrt/types/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFlatDataAndDimensions(t *testing.T) {
	x := FromFlatDataAndDimensions([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
	assert.Equal(t, dtypes.Float32, x.DType())
	assert.Equal(t, []int{2, 3}, x.Dims())
	assert.Equal(t, []int{3, 1}, x.Strides())
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, Flat[float32](x))

	require.Panics(t, func() { FromFlatDataAndDimensions([]float32{1, 2}, 2, 3) })
	require.Panics(t, func() { Flat[float64](x) })
}

func TestResizeKeepsStorage(t *testing.T) {
	x := New(shapes.Make(dtypes.Float32, 4, 5))
	storageCap := x.Capacity()
	require.Equal(t, 20, storageCap)

	// Shrinking to zero keeps the allocation.
	x.ResizeToZero()
	assert.Equal(t, 0, x.Size())
	assert.Equal(t, storageCap, x.Capacity())

	// Growing within capacity does not reallocate.
	x.Resize([]int{2, 3})
	assert.Equal(t, []int{2, 3}, x.Dims())
	assert.Equal(t, storageCap, x.Capacity())

	// Growing beyond capacity reallocates.
	x.Resize([]int{7, 5})
	assert.Equal(t, 35, x.Capacity())
}

func TestResizeWithStrides(t *testing.T) {
	x := NewEmpty(dtypes.Float32, FormatPreserve)
	x.ResizeWithStrides([]int{2, 3}, []int{1, 2})
	assert.Equal(t, []int{2, 3}, x.Dims())
	assert.Equal(t, []int{1, 2}, x.Strides())
	assert.False(t, x.IsContiguous())
	assert.True(t, x.IsNonOverlappingAndDense())
	assert.GreaterOrEqual(t, x.Capacity(), 6)
}

func TestChannelsLast(t *testing.T) {
	x := NewEmpty(dtypes.Float32, FormatChannelsLast)
	x.Resize([]int{2, 3, 4, 5})
	assert.Equal(t, []int{60, 1, 15, 3}, x.Strides())
	assert.False(t, x.IsContiguous())
	assert.True(t, x.IsNonOverlappingAndDense())
	assert.Equal(t, FormatChannelsLast, x.SuggestMemoryFormat())
}

func TestViews(t *testing.T) {
	x := FromFlatDataAndDimensions([]int32{0, 1, 2, 3, 4, 5}, 2, 3)

	tr := x.Transpose(0, 1)
	assert.Equal(t, []int{3, 2}, tr.Dims())
	assert.True(t, tr.SharesStorageWith(x))
	assert.False(t, tr.IsContiguous())

	c := tr.Contiguous()
	assert.False(t, c.SharesStorageWith(x))
	assert.Equal(t, []int32{0, 3, 1, 4, 2, 5}, Flat[int32](c))

	s := x.Slice(1, 1, 3, 1)
	assert.Equal(t, []int{2, 2}, s.Dims())
	assert.Equal(t, []int32{1, 2, 4, 5}, Flat[int32](s.Contiguous()))

	// Negative wrap and clamping.
	s2 := x.Slice(1, -2, 1000, 1)
	assert.Equal(t, []int{2, 2}, s2.Dims())

	p := x.Permute([]int{1, 0})
	assert.Equal(t, []int{3, 2}, p.Dims())
	require.Panics(t, func() { x.Permute([]int{0, 0}) })
}

func TestReshapeView(t *testing.T) {
	x := FromFlatDataAndDimensions([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
	v := x.ReshapeView(3, 2)
	assert.True(t, v.SharesStorageWith(x))
	assert.Equal(t, []int{3, 2}, v.Dims())
	require.Panics(t, func() { x.ReshapeView(4, 2) })
	require.Panics(t, func() { x.Transpose(0, 1).ReshapeView(6) })
}

func TestCopyFromStrided(t *testing.T) {
	src := FromFlatDataAndDimensions([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
	dst := New(shapes.Make(dtypes.Float32, 3, 2))
	dst.CopyFrom(src.Transpose(0, 1))
	assert.Equal(t, []float32{1, 4, 2, 5, 3, 6}, Flat[float32](dst))

	require.Panics(t, func() { dst.CopyFrom(src) }) // dimensions mismatch
}

func TestFromScalar(t *testing.T) {
	x := FromScalar(int64(42))
	assert.Equal(t, 0, x.Rank())
	assert.Equal(t, []int64{42}, Flat[int64](x))
}

func TestMemoryFormatString(t *testing.T) {
	assert.Equal(t, "Contiguous", FormatContiguous.String())
	assert.Equal(t, "ChannelsLast", FormatChannelsLast.String())
	assert.True(t, FormatPreserve.IsAMemoryFormat())
}
