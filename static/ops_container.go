// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package static

import (
	"github.com/gomlx/staticrt/graph"
	"github.com/gomlx/staticrt/types/values"
)

func init() {
	outVariants.Register(graph.OpTypeListConstruct, makeListConstruct)
	outVariants.Register(graph.OpTypeTupleConstruct, makeTupleConstruct)
}

// Container construction is registered as an out variant so that graphs made
// purely of out-variant operators stay on the buffer-reusing path. When the
// container holds tensors whose producers all run out of place, the element
// identities are stable across runs and the container built on the first run
// is simply kept.

func makeListConstruct(node *graph.Node) Executor {
	keepAcrossRuns := IsOptimizableContainerType(node)
	return func(r *Record) {
		if keepAcrossRuns && !r.Output(0).IsNone() {
			return
		}
		elems := make([]values.Value, r.NumInputs())
		for i := range elems {
			elems[i] = r.Input(i)
		}
		r.SetOutput(0, values.NewList(elems))
	}
}

func makeTupleConstruct(node *graph.Node) Executor {
	keepAcrossRuns := IsOptimizableContainerType(node)
	return func(r *Record) {
		if keepAcrossRuns && !r.Output(0).IsNone() {
			return
		}
		elems := make([]values.Value, r.NumInputs())
		for i := range elems {
			elems[i] = r.Input(i)
		}
		r.SetOutput(0, values.NewTuple(elems))
	}
}
