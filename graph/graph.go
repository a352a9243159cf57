// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package graph defines the pre-compiled inference graph consumed by the
// static runtime: operator nodes with fixed inputs, static output types and
// a closed operator set (OpType).
//
// A graph here is already optimized and frozen. Nodes carry no execution
// state, they only describe which operator runs, which nodes feed it and
// the static type of each output. All execution state lives in the
// per-run records of the static package.
package graph

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/staticrt/types/values"
)

// Node is one operator application in a frozen graph.
type Node struct {
	op       OpType
	inputs   []*Node
	outTypes []Type

	// constant is only set for OpTypeConstant nodes.
	constant values.Value
}

// NewNode creates an operator node with the given inputs and output types.
// It panics if op is not a valid operator.
func NewNode(op OpType, inputs []*Node, outputTypes ...Type) *Node {
	if op <= OpTypeInvalid || op >= OpTypeLast {
		exceptions.Panicf("graph.NewNode: invalid operator %d", op)
	}
	return &Node{op: op, inputs: inputs, outTypes: outputTypes}
}

// Constant creates a node holding a fixed value, resolved at graph build time.
func Constant(v values.Value) *Node {
	return &Node{op: OpTypeConstant, outTypes: []Type{TypeOfValue(v)}, constant: v}
}

// Parameter creates a graph input node of the given type.
func Parameter(t Type) *Node {
	return &Node{op: OpTypeParameter, outTypes: []Type{t}}
}

// Op returns the node's operator.
func (n *Node) Op() OpType { return n.op }

// NumInputs returns how many input nodes feed this node.
func (n *Node) NumInputs() int { return len(n.inputs) }

// Input returns the i-th input node.
func (n *Node) Input(i int) *Node { return n.inputs[i] }

// Inputs returns the input nodes. The returned slice is owned by the node
// and must not be modified.
func (n *Node) Inputs() []*Node { return n.inputs }

// NumOutputs returns how many values this node produces.
func (n *Node) NumOutputs() int { return len(n.outTypes) }

// OutputType returns the static type of the i-th output.
func (n *Node) OutputType(i int) Type { return n.outTypes[i] }

// IsConstant reports whether the node holds a compile-time constant.
func (n *Node) IsConstant() bool { return n.op == OpTypeConstant }

// ConstantValue returns the value of a constant node. It panics if the node
// is not a constant.
func (n *Node) ConstantValue() values.Value {
	if n.op != OpTypeConstant {
		exceptions.Panicf("graph.Node.ConstantValue: node is %s, not a constant", n.op)
	}
	return n.constant
}

// InputConstant returns the value of the i-th input if that input is a
// constant node, and whether it was one.
func (n *Node) InputConstant(i int) (values.Value, bool) {
	if i < 0 || i >= len(n.inputs) {
		return values.None(), false
	}
	in := n.inputs[i]
	if in == nil || in.op != OpTypeConstant {
		return values.None(), false
	}
	return in.constant, true
}

// String returns a short description, e.g. "Mul(#2 inputs, 1 output)".
func (n *Node) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s(#%d inputs, %d output", n.op, len(n.inputs), len(n.outTypes))
	if len(n.outTypes) != 1 {
		b.WriteString("s")
	}
	b.WriteString(")")
	return b.String()
}

// TypeOfValue returns the static type describing a runtime value.
func TypeOfValue(v values.Value) Type {
	switch v.Kind() {
	case values.KindTensor:
		return TensorType()
	case values.KindInt:
		return IntType()
	case values.KindFloat:
		return FloatType()
	case values.KindBool:
		return BoolType()
	case values.KindString:
		return StringType()
	case values.KindIntList:
		return ListOf(IntType())
	case values.KindList:
		if l := v.List(); len(l) > 0 {
			return ListOf(TypeOfValue(l[0]))
		}
		return ListOf(Type{})
	case values.KindTuple:
		elems := v.Tuple()
		ts := make([]Type, len(elems))
		for i, e := range elems {
			ts[i] = TypeOfValue(e)
		}
		return TupleOf(ts...)
	case values.KindDict:
		return DictOf(Type{}, Type{})
	default:
		return NoneType()
	}
}
