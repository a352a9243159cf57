// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package static

import (
	"github.com/gomlx/staticrt/graph"
	"github.com/gomlx/staticrt/types"
)

// Eligibility analysis: which execution strategy each node can use. All of
// these are pure functions of the graph, evaluated once at compile time.

// CanRunOutOfPlace reports whether node's operator has a buffer-reusing out
// variant registered.
func CanRunOutOfPlace(node *graph.Node) bool {
	return outVariants.Has(node.Op())
}

// InputsCanRunOutOfPlace reports whether every input of node is produced by
// an operator that itself runs out of place. Parameters and constants are
// not: their values come from outside the engine.
func InputsCanRunOutOfPlace(node *graph.Node) bool {
	for _, input := range node.Inputs() {
		if !CanRunOutOfPlace(input) {
			return false
		}
	}
	return true
}

// IsOptimizableContainerType reports whether a ListConstruct or
// TupleConstruct node can skip rebuilding its container after the first run:
// the container must hold a tensor (directly for tuples, as the element type
// for lists) and every input must be produced out of place, so the element
// identities are stable across runs.
func IsOptimizableContainerType(node *graph.Node) bool {
	t := node.OutputType(0)
	var containsTensor bool
	switch t.Kind {
	case graph.KindList:
		containsTensor = t.Element().IsTensor()
	case graph.KindTuple:
		for _, e := range t.Elems {
			if e.IsTensor() {
				containsTensor = true
				break
			}
		}
	default:
		return false
	}
	return containsTensor && InputsCanRunOutOfPlace(node)
}

// nativeOps is the closed set of operators the native fallback executes.
// These produce fresh values every run (views, scalars, containers), never
// reusing output buffers.
var nativeOps = types.SetWith(
	graph.OpTypeTranspose,
	graph.OpTypeFlatten,
	graph.OpTypeReshape,
	graph.OpTypePermute,
	graph.OpTypeSlice,
	graph.OpTypeNarrow,
	graph.OpTypeTo,
	graph.OpTypeListConstruct,
	graph.OpTypeListUnpack,
	graph.OpTypeTupleConstruct,
	graph.OpTypeDictConstruct,
	graph.OpTypeGetItem,
)

// CanRunNatively reports whether node is in the native executor's allow-list.
// The dtype/device conversion operator only qualifies in its full 5-argument
// form (input, dtype, non-blocking, copy, memory format): the shorter forms
// are reserved for the out-variant copy.
func CanRunNatively(node *graph.Node) bool {
	op := node.Op()
	if !nativeOps.Has(op) {
		return false
	}
	if op == graph.OpTypeTo {
		return node.NumInputs() == 5
	}
	return true
}
