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

func TestReLUOut(t *testing.T) {
	input := tensors.FromFlatDataAndDimensions([]float32{-1, 0, 2.5, -0.5}, 2, 2)
	out := newOut(dtypes.Float32)
	ReLUOut(out, input)
	assert.Equal(t, []int{2, 2}, out.Dims())
	assert.Equal(t, []float32{0, 0, 2.5, 0}, tensors.Flat[float32](out))

	iInput := tensors.FromFlatDataAndDimensions([]int32{-3, 7}, 2)
	iOut := newOut(dtypes.Int32)
	ReLUOut(iOut, iInput)
	assert.Equal(t, []int32{0, 7}, tensors.Flat[int32](iOut))
}

func TestTanhAndSigmoidOut(t *testing.T) {
	input := tensors.FromFlatDataAndDimensions([]float64{-1, 0, 1}, 3)
	out := newOut(dtypes.Float64)

	TanhOut(out, input)
	got := tensors.Flat[float64](out)
	assert.InDelta(t, math.Tanh(-1), got[0], 1e-15)
	assert.Equal(t, 0.0, got[1])

	SigmoidOut(out, input)
	got = tensors.Flat[float64](out)
	assert.Equal(t, 0.5, got[1])
	assert.InDelta(t, 1/(1+math.Exp(-1)), got[2], 1e-15)

	require.Panics(t, func() { TanhOut(newOut(dtypes.Int32), tensors.FromScalar(int32(1))) })
}

func TestLogitOut(t *testing.T) {
	input := tensors.FromFlatDataAndDimensions([]float64{0, 0.5, 1}, 3)
	out := newOut(dtypes.Float64)

	// Without clamping, the endpoints diverge.
	LogitOut(out, input, -1)
	got := tensors.Flat[float64](out)
	assert.True(t, math.IsInf(got[0], -1))
	assert.Equal(t, 0.0, got[1])
	assert.True(t, math.IsInf(got[2], 1))

	// eps clamps the input into [eps, 1-eps].
	LogitOut(out, input, 0.25)
	got = tensors.Flat[float64](out)
	logit := func(x float64) float64 { return math.Log(x / (1 - x)) }
	assert.InDelta(t, logit(0.25), got[0], 1e-15)
	assert.InDelta(t, logit(0.75), got[2], 1e-15)
}

func TestClampOut(t *testing.T) {
	input := tensors.FromFlatDataAndDimensions([]float32{-5, 0, 5}, 3)
	out := newOut(dtypes.Float32)
	lo, hi := -1.0, 2.0

	ClampOut(out, input, &lo, &hi)
	assert.Equal(t, []float32{-1, 0, 2}, tensors.Flat[float32](out))
	ClampOut(out, input, nil, &hi)
	assert.Equal(t, []float32{-5, 0, 2}, tensors.Flat[float32](out))
	ClampOut(out, input, nil, nil)
	assert.Equal(t, []float32{-5, 0, 5}, tensors.Flat[float32](out))

	iInput := tensors.FromFlatDataAndDimensions([]int64{-5, 0, 5}, 3)
	iOut := newOut(dtypes.Int64)
	ClampMinOut(iOut, iInput, 0)
	assert.Equal(t, []int64{0, 0, 5}, tensors.Flat[int64](iOut))
}

func TestLeakyReLUOut(t *testing.T) {
	input := tensors.FromFlatDataAndDimensions([]float32{-2, 0, 3}, 3)
	out := newOut(dtypes.Float32)
	LeakyReLUOut(out, input, 0.1)
	got := tensors.Flat[float32](out)
	assert.InDelta(t, -0.2, float64(got[0]), 1e-7)
	assert.Equal(t, float32(0), got[1])
	assert.Equal(t, float32(3), got[2])
}

func TestNaNToNumOut(t *testing.T) {
	nan32 := float32(math.NaN())
	inf32 := float32(math.Inf(1))
	input := tensors.FromFlatDataAndDimensions([]float32{nan32, inf32, -inf32, 1.5}, 4)
	out := newOut(dtypes.Float32)

	NaNToNumOut(out, input, nil, nil, nil)
	assert.Equal(t, []float32{0, math.MaxFloat32, -math.MaxFloat32, 1.5}, tensors.Flat[float32](out))

	nan, pos, neg := 9.0, 100.0, -100.0
	NaNToNumOut(out, input, &nan, &pos, &neg)
	assert.Equal(t, []float32{9, 100, -100, 1.5}, tensors.Flat[float32](out))

	iInput := tensors.FromFlatDataAndDimensions([]int64{1, 2}, 2)
	iOut := newOut(dtypes.Int64)
	NaNToNumOut(iOut, iInput, &nan, nil, nil)
	assert.Equal(t, []int64{1, 2}, tensors.Flat[int64](iOut))
}
