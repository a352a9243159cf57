// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package static

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/staticrt/graph"
	"github.com/gomlx/staticrt/kernels"
	"github.com/gomlx/staticrt/types/tensors"
)

func init() {
	outVariants.Register(graph.OpTypeEmbeddingBag, makeEmbeddingBag)
}

// makeEmbeddingBag takes (weight, indices, offsets, scale-grad-by-freq,
// mode, sparse, per-sample-weights, include-last-offset) plus an optional
// trailing padding index, and fills four output slots: the reduced bags, the
// index-to-bag map, the bag sizes and the per-element argmax rows. Each slot
// reuses its retained buffer independently.
func makeEmbeddingBag(node *graph.Node) Executor {
	if n := node.NumInputs(); n != 8 && n != 9 {
		exceptions.Panicf("EmbeddingBag takes 8 or 9 arguments, node has %d", n)
	}
	if node.NumOutputs() != 4 {
		exceptions.Panicf("EmbeddingBag produces 4 outputs, node has %d", node.NumOutputs())
	}
	return func(r *Record) {
		weight := inputTensor(r, 0)
		indices := inputTensor(r, 1)
		offsets := inputTensor(r, 2)
		mode := int(r.Input(4).Int())
		var perSampleWeights *tensors.Tensor
		if t, ok := r.Input(6).OptionalTensor(); ok {
			perSampleWeights = t.Contiguous()
		}
		includeLastOffset := r.Input(7).Bool()
		var paddingIdx *int
		if r.NumInputs() == 9 {
			paddingIdx = optInt(r.Input(8))
		}
		outs := kernels.EmbeddingBagOutputs{
			Output:     r.OutputTensor(0, weight.DType(), tensors.FormatContiguous),
			Offset2Bag: r.OutputTensor(1, dtypes.Int64, tensors.FormatContiguous),
			BagSize:    r.OutputTensor(2, dtypes.Int64, tensors.FormatContiguous),
			MaxIndices: r.OutputTensor(3, dtypes.Int64, tensors.FormatContiguous),
		}
		kernels.EmbeddingBagOut(outs, weight, indices, offsets, mode,
			perSampleWeights, includeLastOffset, paddingIdx)
	}
}
