// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package graph

import (
	"testing"

	"github.com/gomlx/staticrt/types/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpTypeStrings(t *testing.T) {
	assert.Equal(t, "Mul", OpTypeMul.String())
	assert.Equal(t, "EmbeddingBag", OpTypeEmbeddingBag.String())
	assert.Equal(t, "GetItem", OpTypeGetItem.String())

	// String and OpTypeString round-trip for every value.
	for _, op := range OpTypeValues() {
		parsed, err := OpTypeString(op.String())
		require.NoError(t, err)
		assert.Equal(t, op, parsed)
	}
	_, err := OpTypeString("NotAnOp")
	assert.Error(t, err)
	assert.False(t, OpType(-1).IsAOpType())
}

func TestNewNode(t *testing.T) {
	a := Parameter(TensorType())
	b := Parameter(TensorType())
	n := NewNode(OpTypeMul, []*Node{a, b}, TensorType())

	assert.Equal(t, OpTypeMul, n.Op())
	assert.Equal(t, 2, n.NumInputs())
	assert.Same(t, a, n.Input(0))
	assert.Same(t, b, n.Input(1))
	assert.Equal(t, 1, n.NumOutputs())
	assert.True(t, n.OutputType(0).IsTensor())
	assert.Equal(t, "Mul(#2 inputs, 1 output)", n.String())

	require.Panics(t, func() { NewNode(OpTypeInvalid, nil, TensorType()) })
	require.Panics(t, func() { NewNode(OpTypeLast, nil, TensorType()) })
}

func TestConstant(t *testing.T) {
	c := Constant(values.NewInt(5))
	assert.True(t, c.IsConstant())
	assert.Equal(t, int64(5), c.ConstantValue().Int())
	assert.Equal(t, KindInt, c.OutputType(0).Kind)

	p := Parameter(TensorType())
	assert.False(t, p.IsConstant())
	require.Panics(t, func() { p.ConstantValue() })
}

func TestInputConstant(t *testing.T) {
	c := Constant(values.NewFloat(0.5))
	p := Parameter(TensorType())
	n := NewNode(OpTypeClamp, []*Node{p, c}, TensorType())

	_, ok := n.InputConstant(0)
	assert.False(t, ok)
	v, ok := n.InputConstant(1)
	require.True(t, ok)
	assert.Equal(t, 0.5, v.Float())
	_, ok = n.InputConstant(2)
	assert.False(t, ok)
}

func TestTypes(t *testing.T) {
	assert.True(t, TensorType().ContainsTensor())
	assert.False(t, IntType().ContainsTensor())
	assert.True(t, ListOf(TensorType()).ContainsTensor())
	assert.True(t, TupleOf(IntType(), TensorType()).ContainsTensor())
	assert.False(t, TupleOf(IntType(), StringType()).ContainsTensor())
	assert.True(t, DictOf(StringType(), TensorType()).ContainsTensor())

	assert.Equal(t, TensorType(), ListOf(TensorType()).Element())
	assert.Equal(t, Type{}, TupleOf(TensorType()).Element())
	assert.Equal(t, "List", KindList.String())
}

func TestTypeOfValue(t *testing.T) {
	assert.Equal(t, KindInt, TypeOfValue(values.NewInt(1)).Kind)
	assert.Equal(t, KindNone, TypeOfValue(values.None()).Kind)
	lt := TypeOfValue(values.NewIntList([]int64{1}))
	assert.Equal(t, KindList, lt.Kind)
	assert.Equal(t, KindInt, lt.Element().Kind)
}
