// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package static

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/staticrt/graph"
	"github.com/gomlx/staticrt/types/tensors"
	"github.com/gomlx/staticrt/types/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCopyDType(t *testing.T) {
	x := graph.Parameter(graph.TensorType())
	toCopy := graph.NewNode(graph.OpTypeToCopy,
		[]*graph.Node{x, constDType(dtypes.Float64), constBool(false), constBool(false)},
		graph.TensorType())
	prog := compileOne(t, []*graph.Node{x}, toCopy)

	input := tensors.FromFlatDataAndDimensions([]float32{1.5, -2}, 2)
	out := runOne(t, prog, values.NewTensor(input)).Tensor()
	assert.Equal(t, dtypes.Float64, out.DType())
	assert.Equal(t, []float64{1.5, -2}, tensors.Flat[float64](out))

	// The conversion always copies, even for a matching dtype.
	f64 := tensors.FromFlatDataAndDimensions([]float64{3, 4}, 2)
	out = runOne(t, prog, values.NewTensor(f64)).Tensor()
	assert.False(t, out.SharesStorageWith(f64))
	assert.Equal(t, []float64{3, 4}, tensors.Flat[float64](out))
}

func TestToCopyFactoryValidation(t *testing.T) {
	x := graph.Parameter(graph.TensorType())

	// Only the 4- and 5-argument forms exist; anything else is rejected when
	// the kernel is built, not silently executed as a plain copy.
	short := graph.NewNode(graph.OpTypeToCopy, []*graph.Node{x}, graph.TensorType())
	require.Panics(t, func() { OutVariants().Create(short) })

	long := graph.NewNode(graph.OpTypeToCopy,
		[]*graph.Node{x, constNone(), constBool(false), constBool(false), constNone(), constNone()},
		graph.TensorType())
	require.Panics(t, func() { OutVariants().Create(long) })
}

func TestToCopyReferenceTensorDType(t *testing.T) {
	x := graph.Parameter(graph.TensorType())
	ref := constTensor(tensors.FromFlatDataAndDimensions([]int64{0}, 1))
	toCopy := graph.NewNode(graph.OpTypeToCopy,
		[]*graph.Node{x, ref, constBool(false), constBool(false)}, graph.TensorType())
	prog := compileOne(t, []*graph.Node{x}, toCopy)

	input := tensors.FromFlatDataAndDimensions([]float32{1.9, -2.1}, 2)
	out := runOne(t, prog, values.NewTensor(input)).Tensor()
	assert.Equal(t, dtypes.Int64, out.DType())
	assert.Equal(t, []int64{1, -2}, tensors.Flat[int64](out))
}

func TestToCopyPreservesDenseStrides(t *testing.T) {
	x := graph.Parameter(graph.TensorType())
	toCopy := graph.NewNode(graph.OpTypeToCopy,
		[]*graph.Node{x, constNone(), constBool(false), constBool(false), constNone()},
		graph.TensorType())
	prog := compileOne(t, []*graph.Node{x}, toCopy)

	// A transposed tensor is dense but not contiguous; a Preserve copy keeps
	// its exact strides.
	base := tensors.FromFlatDataAndDimensions([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
	transposed := base.Transpose(0, 1)
	out := runOne(t, prog, values.NewTensor(transposed)).Tensor()
	assert.Equal(t, []int{3, 2}, out.Dims())
	assert.Equal(t, transposed.Strides(), out.Strides())
	assert.False(t, out.SharesStorageWith(base))
	assert.Equal(t, tensors.Flat[float32](transposed.Contiguous()),
		tensors.Flat[float32](out.Contiguous()))
}

func TestToCopyExplicitFormat(t *testing.T) {
	x := graph.Parameter(graph.TensorType())
	toCopy := graph.NewNode(graph.OpTypeToCopy,
		[]*graph.Node{x, constNone(), constBool(false), constBool(false),
			constFormat(tensors.FormatChannelsLast)},
		graph.TensorType())
	prog := compileOne(t, []*graph.Node{x}, toCopy)

	input := tensors.FromFlatDataAndDimensions(randomFloat32s(24), 1, 2, 3, 4)
	out := runOne(t, prog, values.NewTensor(input)).Tensor()
	assert.Equal(t, []int{24, 1, 8, 2}, out.Strides())
	assert.Equal(t, tensors.Flat[float32](input), tensors.Flat[float32](out.Contiguous()))
}

func TestNativeToPassthrough(t *testing.T) {
	x := graph.Parameter(graph.TensorType())
	to := graph.NewNode(graph.OpTypeTo,
		[]*graph.Node{x, constDType(dtypes.Float32), constBool(false), constBool(false), constNone()},
		graph.TensorType())
	prog := compileOne(t, []*graph.Node{x}, to)

	// Matching dtype, no forced copy, no explicit format: the input tensor
	// passes through untouched.
	input := tensors.FromFlatDataAndDimensions([]float32{1, 2}, 2)
	out := runOne(t, prog, values.NewTensor(input)).Tensor()
	assert.Same(t, input, out)
}

func TestNativeToForcedCopy(t *testing.T) {
	x := graph.Parameter(graph.TensorType())
	to := graph.NewNode(graph.OpTypeTo,
		[]*graph.Node{x, constDType(dtypes.Float32), constBool(false), constBool(true), constNone()},
		graph.TensorType())
	prog := compileOne(t, []*graph.Node{x}, to)

	input := tensors.FromFlatDataAndDimensions([]float32{1, 2}, 2)
	out := runOne(t, prog, values.NewTensor(input)).Tensor()
	assert.NotSame(t, input, out)
	assert.False(t, out.SharesStorageWith(input))
	assert.Equal(t, []float32{1, 2}, tensors.Flat[float32](out))
}

func TestNativeToConversion(t *testing.T) {
	x := graph.Parameter(graph.TensorType())
	to := graph.NewNode(graph.OpTypeTo,
		[]*graph.Node{x, constDType(dtypes.Int32), constBool(false), constBool(false), constNone()},
		graph.TensorType())
	prog := compileOne(t, []*graph.Node{x}, to)

	input := tensors.FromFlatDataAndDimensions([]float32{1.7, -2.7}, 2)
	out := runOne(t, prog, values.NewTensor(input)).Tensor()
	assert.Equal(t, dtypes.Int32, out.DType())
	assert.Equal(t, []int32{1, -2}, tensors.Flat[int32](out))

	// The native executor allocates fresh outputs every run.
	out2 := runOne(t, prog, values.NewTensor(input)).Tensor()
	assert.NotSame(t, out, out2)
}
