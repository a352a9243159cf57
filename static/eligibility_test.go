// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package static

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/staticrt/graph"
	"github.com/stretchr/testify/assert"
)

func TestCanRunOutOfPlace(t *testing.T) {
	x := graph.Parameter(graph.TensorType())
	mul := graph.NewNode(graph.OpTypeMul, []*graph.Node{x, x}, graph.TensorType())
	assert.True(t, CanRunOutOfPlace(mul))

	transpose := graph.NewNode(graph.OpTypeTranspose,
		[]*graph.Node{x, constInt(0), constInt(1)}, graph.TensorType())
	assert.False(t, CanRunOutOfPlace(transpose))
	assert.False(t, CanRunOutOfPlace(x))
	assert.False(t, CanRunOutOfPlace(constInt(1)))
}

func TestInputsCanRunOutOfPlace(t *testing.T) {
	x := graph.Parameter(graph.TensorType())
	relu := graph.NewNode(graph.OpTypeReLU, []*graph.Node{x}, graph.TensorType())
	tanh := graph.NewNode(graph.OpTypeTanh, []*graph.Node{relu}, graph.TensorType())

	// All inputs out of place.
	mul := graph.NewNode(graph.OpTypeMul, []*graph.Node{relu, tanh}, graph.TensorType())
	assert.True(t, InputsCanRunOutOfPlace(mul))

	// A parameter input breaks the property: its value comes from outside.
	mulParam := graph.NewNode(graph.OpTypeMul, []*graph.Node{relu, x}, graph.TensorType())
	assert.False(t, InputsCanRunOutOfPlace(mulParam))

	// So does a constant input.
	mulConst := graph.NewNode(graph.OpTypeMul, []*graph.Node{relu, constFloat(2)}, graph.TensorType())
	assert.False(t, InputsCanRunOutOfPlace(mulConst))
}

func TestIsOptimizableContainerType(t *testing.T) {
	x := graph.Parameter(graph.TensorType())
	relu := graph.NewNode(graph.OpTypeReLU, []*graph.Node{x}, graph.TensorType())

	// Tensor list fed by out-of-place producers.
	list := graph.NewNode(graph.OpTypeListConstruct, []*graph.Node{relu},
		graph.ListOf(graph.TensorType()))
	assert.True(t, IsOptimizableContainerType(list))

	// Tuple qualifies when any element is a tensor.
	tuple := graph.NewNode(graph.OpTypeTupleConstruct, []*graph.Node{relu},
		graph.TupleOf(graph.TensorType(), graph.IntType()))
	assert.True(t, IsOptimizableContainerType(tuple))

	// A parameter input disqualifies the container.
	paramList := graph.NewNode(graph.OpTypeListConstruct, []*graph.Node{x},
		graph.ListOf(graph.TensorType()))
	assert.False(t, IsOptimizableContainerType(paramList))

	// Containers without tensors are rebuilt every run.
	intList := graph.NewNode(graph.OpTypeListConstruct, []*graph.Node{relu},
		graph.ListOf(graph.IntType()))
	assert.False(t, IsOptimizableContainerType(intList))

	// Non-container output types never qualify.
	assert.False(t, IsOptimizableContainerType(relu))
}

func TestCanRunNatively(t *testing.T) {
	x := graph.Parameter(graph.TensorType())
	for _, op := range []graph.OpType{
		graph.OpTypeTranspose, graph.OpTypeFlatten, graph.OpTypeReshape,
		graph.OpTypePermute, graph.OpTypeSlice, graph.OpTypeNarrow,
		graph.OpTypeListConstruct, graph.OpTypeListUnpack,
		graph.OpTypeTupleConstruct, graph.OpTypeDictConstruct, graph.OpTypeGetItem,
	} {
		node := graph.NewNode(op, []*graph.Node{x}, graph.TensorType())
		assert.True(t, CanRunNatively(node), "expected %s to run natively", op)
	}

	mul := graph.NewNode(graph.OpTypeMul, []*graph.Node{x, x}, graph.TensorType())
	assert.False(t, CanRunNatively(mul))

	// The conversion operator only runs natively in its full 5-argument form.
	to5 := graph.NewNode(graph.OpTypeTo,
		[]*graph.Node{x, constDType(dtypes.Float32), constBool(false), constBool(false), constNone()},
		graph.TensorType())
	assert.True(t, CanRunNatively(to5))
	to2 := graph.NewNode(graph.OpTypeTo,
		[]*graph.Node{x, constDType(dtypes.Float32)}, graph.TensorType())
	assert.False(t, CanRunNatively(to2))
}
