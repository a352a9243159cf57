// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package static

import (
	"testing"

	"github.com/gomlx/staticrt/graph"
	"github.com/gomlx/staticrt/kernels"
	"github.com/gomlx/staticrt/types/tensors"
	"github.com/gomlx/staticrt/types/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func embeddingBagNode(indices *graph.Node, mode int) *graph.Node {
	weight := constTensor(tensors.FromFlatDataAndDimensions([]float32{
		1, 10,
		2, 20,
		3, 30,
	}, 3, 2))
	offsets := constTensor(tensors.FromFlatDataAndDimensions([]int64{0, 2}, 2))
	return graph.NewNode(graph.OpTypeEmbeddingBag,
		[]*graph.Node{weight, indices, offsets, constBool(false), constInt(int64(mode)),
			constBool(false), constNone(), constBool(false)},
		graph.TensorType(), graph.TensorType(), graph.TensorType(), graph.TensorType())
}

func TestEmbeddingBagThroughGetItem(t *testing.T) {
	indices := graph.Parameter(graph.TensorType())
	bag := embeddingBagNode(indices, kernels.EmbeddingBagSum)
	reduced := graph.NewNode(graph.OpTypeGetItem, []*graph.Node{bag, constInt(0)}, graph.TensorType())
	bagSizes := graph.NewNode(graph.OpTypeGetItem, []*graph.Node{bag, constInt(2)}, graph.TensorType())
	prog, err := Compile([]*graph.Node{indices}, []*graph.Node{reduced, bagSizes})
	require.NoError(t, err)

	idx := tensors.FromFlatDataAndDimensions([]int64{0, 1, 2}, 3)
	results := prog.Run(values.NewTensor(idx))
	require.Len(t, results, 2)
	out := results[0].Tensor()
	assert.Equal(t, []int{2, 2}, out.Dims())
	assert.Equal(t, []float32{3, 30, 3, 30}, tensors.Flat[float32](out))
	assert.Equal(t, []int64{2, 1}, tensors.Flat[int64](results[1].Tensor()))

	// Each of the four output slots reuses its own retained buffer.
	results2 := prog.Run(values.NewTensor(idx))
	assert.Same(t, out, results2[0].Tensor())
}

func TestEmbeddingBagMaxIndices(t *testing.T) {
	indices := graph.Parameter(graph.TensorType())
	bag := embeddingBagNode(indices, kernels.EmbeddingBagMax)
	maxIdx := graph.NewNode(graph.OpTypeGetItem, []*graph.Node{bag, constInt(3)}, graph.TensorType())
	prog := compileOne(t, []*graph.Node{indices}, maxIdx)

	idx := tensors.FromFlatDataAndDimensions([]int64{0, 2, 1}, 3)
	out := runOne(t, prog, values.NewTensor(idx)).Tensor()
	assert.Equal(t, []int{2, 2}, out.Dims())
	assert.Equal(t, []int64{2, 2, 1, 1}, tensors.Flat[int64](out))
}

func TestEmbeddingBagFactoryValidation(t *testing.T) {
	indices := graph.Parameter(graph.TensorType())
	weight := constTensor(tensors.FromFlatDataAndDimensions([]float32{1, 2}, 1, 2))

	// Wrong arity is caught when the kernel is built, not at run time.
	bad := graph.NewNode(graph.OpTypeEmbeddingBag,
		[]*graph.Node{weight, indices}, graph.TensorType())
	require.Panics(t, func() { OutVariants().Create(bad) })

	// So is a wrong output count.
	badOutputs := graph.NewNode(graph.OpTypeEmbeddingBag,
		[]*graph.Node{weight, indices, indices, constBool(false), constInt(0),
			constBool(false), constNone(), constBool(false)},
		graph.TensorType())
	require.Panics(t, func() { OutVariants().Create(badOutputs) })
}
