// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package static

import (
	"github.com/gomlx/staticrt/graph"
	"github.com/gomlx/staticrt/kernels"
	"github.com/gomlx/staticrt/types/tensors"
)

func init() {
	outVariants.Register(graph.OpTypeLayerNorm, makeLayerNorm)
}

// makeLayerNorm's arguments are (input, normalized shape, weight, bias, eps);
// weight and bias may be None.
func makeLayerNorm(node *graph.Node) Executor {
	return func(r *Record) {
		input := inputTensor(r, 0)
		normalizedShape := intListArg(r.Input(1))
		var weight, bias *tensors.Tensor
		if r.NumInputs() > 2 {
			if t, ok := r.Input(2).OptionalTensor(); ok {
				weight = t.Contiguous()
			}
		}
		if r.NumInputs() > 3 {
			if t, ok := r.Input(3).OptionalTensor(); ok {
				bias = t.Contiguous()
			}
		}
		eps := 1e-5
		if r.NumInputs() > 4 {
			if f, ok := r.Input(4).OptionalScalar(); ok {
				eps = f
			}
		}
		out := r.OutputTensor(0, input.DType(), tensors.FormatContiguous)
		kernels.LayerNormOut(out, input, normalizedShape, weight, bias, eps)
	}
}
