// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package static

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/staticrt/graph"
	"github.com/gomlx/staticrt/types/tensors"
	"github.com/gomlx/staticrt/types/values"
)

func init() {
	outVariants.Register(graph.OpTypeToCopy, makeToCopy)
}

// toCopyTarget resolves the target dtype of a conversion: an explicit dtype
// argument, the dtype of a reference tensor, or the source's own dtype when
// the argument is None.
func toCopyTarget(self *tensors.Tensor, arg values.Value) dtypes.DType {
	if arg.IsTensor() {
		return arg.Tensor().DType()
	}
	if d, ok := arg.OptionalDType(); ok {
		return d
	}
	return self.DType()
}

// makeToCopy implements the copying dtype/layout conversion. Arguments are
// (self, dtype, non-blocking, copy) with an optional trailing memory format.
// A Preserve (or missing) memory format keeps the source's exact strides
// when the source is non-overlapping and dense, and falls back to the
// source's suggested format otherwise.
func makeToCopy(node *graph.Node) Executor {
	if n := node.NumInputs(); n != 4 && n != 5 {
		exceptions.Panicf("ToCopy takes 4 or 5 arguments, node has %d", n)
	}
	return func(r *Record) {
		self := r.Input(0).Tensor()
		dtype := toCopyTarget(self, r.Input(1))
		format := tensors.FormatPreserve
		if r.NumInputs() == 5 {
			if f, ok := r.Input(4).OptionalMemoryFormat(); ok {
				format = f
			}
		}
		var copyStrides []int
		if format == tensors.FormatPreserve {
			if self.IsNonOverlappingAndDense() {
				copyStrides = self.Strides()
			} else {
				format = self.SuggestMemoryFormat()
			}
		}
		out := r.OutputTensor(0, dtype, format)
		if copyStrides != nil {
			out.ResizeWithStrides(self.Dims(), copyStrides)
		} else {
			out.Resize(self.Dims())
		}
		if dtype == self.DType() {
			out.CopyFrom(self)
			return
		}
		out.CopyFrom(castContiguous(self, dtype))
	}
}
