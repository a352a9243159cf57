// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package static

import (
	"testing"

	"github.com/gomlx/staticrt/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry("test")
	assert.False(t, reg.Has(graph.OpTypeMul))

	var built int
	factory := func(node *graph.Node) Executor {
		built++
		return func(r *Record) {}
	}
	reg.Register(graph.OpTypeMul, factory)
	assert.True(t, reg.Has(graph.OpTypeMul))
	assert.False(t, reg.Has(graph.OpTypeSub))
	assert.False(t, reg.Has(graph.OpTypeInvalid))

	node := graph.NewNode(graph.OpTypeMul,
		[]*graph.Node{constInt(1), constInt(2)}, graph.TensorType())
	exec := reg.Create(node)
	require.NotNil(t, exec)
	assert.Equal(t, 1, built)

	// One kernel per operator per registry.
	require.Panics(t, func() { reg.Register(graph.OpTypeMul, factory) })
	// Invalid operators cannot be registered.
	require.Panics(t, func() { reg.Register(graph.OpTypeInvalid, factory) })
	require.Panics(t, func() { reg.Register(graph.OpTypeLast, factory) })
	// Creating for a missing operator is a programming error.
	sub := graph.NewNode(graph.OpTypeSub,
		[]*graph.Node{constInt(1), constInt(2)}, graph.TensorType())
	require.Panics(t, func() { reg.Create(sub) })
}

func TestBuiltinRegistries(t *testing.T) {
	// The out-variant set carries the arithmetic, pointwise, copying and
	// reducing operators.
	for _, op := range []graph.OpType{
		graph.OpTypeMul, graph.OpTypeDiv, graph.OpTypeSub, graph.OpTypePow,
		graph.OpTypeAddMM, graph.OpTypeBMM,
		graph.OpTypeClamp, graph.OpTypeClampMin, graph.OpTypeLeakyReLU, graph.OpTypeNaNToNum,
		graph.OpTypeReLU, graph.OpTypeTanh, graph.OpTypeSigmoid, graph.OpTypeLogit,
		graph.OpTypeClone, graph.OpTypeCat, graph.OpTypeStack,
		graph.OpTypeIndex, graph.OpTypeNarrowCopy, graph.OpTypeToCopy,
		graph.OpTypeSum, graph.OpTypeNorm, graph.OpTypeArgMin,
		graph.OpTypeLayerNorm, graph.OpTypeEmbeddingBag,
		graph.OpTypeListConstruct, graph.OpTypeTupleConstruct,
	} {
		assert.True(t, OutVariants().Has(op), "out variant missing for %s", op)
	}

	// View-copy variants live in their own registry.
	assert.True(t, ViewVariants().Has(graph.OpTypeReshapeCopy))
	assert.True(t, ViewVariants().Has(graph.OpTypeFlattenCopy))
	assert.False(t, OutVariants().Has(graph.OpTypeReshapeCopy))
	assert.False(t, ViewVariants().Has(graph.OpTypeMul))

	// Native-only operators are in neither registry.
	assert.False(t, OutVariants().Has(graph.OpTypeTranspose))
	assert.False(t, OutVariants().Has(graph.OpTypeGetItem))
}
