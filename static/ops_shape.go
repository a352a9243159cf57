// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package static

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/staticrt/graph"
	"github.com/gomlx/staticrt/kernels"
	"github.com/gomlx/staticrt/types/tensors"
)

func init() {
	outVariants.Register(graph.OpTypeClone, makeClone)
	outVariants.Register(graph.OpTypeCat, makeCat)
	outVariants.Register(graph.OpTypeStack, makeStack)
	outVariants.Register(graph.OpTypeIndex, makeIndex)
	outVariants.Register(graph.OpTypeNarrowCopy, makeNarrowCopy)

	viewVariants.Register(graph.OpTypeReshapeCopy, makeReshapeCopy)
	viewVariants.Register(graph.OpTypeFlattenCopy, makeFlattenCopy)
}

func makeClone(node *graph.Node) Executor {
	return func(r *Record) {
		input := r.Input(0).Tensor()
		format := tensors.FormatPreserve
		if r.NumInputs() > 1 {
			if f, ok := r.Input(1).OptionalMemoryFormat(); ok {
				format = f
			}
		}
		if format == tensors.FormatPreserve {
			format = input.SuggestMemoryFormat()
		}
		out := r.OutputTensor(0, input.DType(), format)
		out.Resize(input.Dims())
		out.CopyFrom(input)
	}
}

func makeCat(node *graph.Node) Executor {
	return func(r *Record) {
		inputs := r.Input(0).TensorList()
		axis := int(r.Input(1).Int())
		for i, t := range inputs {
			inputs[i] = t.Contiguous()
		}
		if len(inputs) == 0 {
			exceptions.Panicf("Cat: empty tensor list")
		}
		out := r.OutputTensor(0, inputs[0].DType(), tensors.FormatContiguous)
		kernels.CatOut(out, inputs, axis)
	}
}

func makeStack(node *graph.Node) Executor {
	return func(r *Record) {
		inputs := r.Input(0).TensorList()
		axis := 0
		if r.NumInputs() > 1 {
			axis = int(r.Input(1).Int())
		}
		for i, t := range inputs {
			inputs[i] = t.Contiguous()
		}
		if len(inputs) == 0 {
			exceptions.Panicf("Stack: empty tensor list")
		}
		out := r.OutputTensor(0, inputs[0].DType(), tensors.FormatContiguous)
		kernels.StackOut(out, inputs, axis)
	}
}

func makeIndex(node *graph.Node) Executor {
	return func(r *Record) {
		input := inputTensor(r, 0)
		list := r.Input(1).List()
		indices := make([]*tensors.Tensor, len(list))
		for i, v := range list {
			if t, ok := v.OptionalTensor(); ok {
				indices[i] = t.Contiguous()
			}
		}
		out := r.OutputTensor(0, input.DType(), tensors.FormatContiguous)
		kernels.IndexOut(out, input, indices)
	}
}

func makeNarrowCopy(node *graph.Node) Executor {
	return func(r *Record) {
		input := inputTensor(r, 0)
		axis := int(r.Input(1).Int())
		start := int(r.Input(2).Int())
		length := int(r.Input(3).Int())
		out := r.OutputTensor(0, input.DType(), tensors.FormatContiguous)
		kernels.NarrowCopyOut(out, input, axis, start, length)
	}
}

// inferSize resolves a reshape target containing at most one free dimension
// (-1) against the input element count.
func inferSize(dims []int, numel int) []int {
	out := append([]int(nil), dims...)
	known := 1
	free := -1
	for i, d := range out {
		switch {
		case d == -1:
			if free >= 0 {
				exceptions.Panicf("reshape %v: only one dimension may be -1", dims)
			}
			free = i
		case d < 0:
			exceptions.Panicf("reshape %v: invalid dimension %d", dims, d)
		default:
			known *= d
		}
	}
	if free >= 0 {
		if known == 0 || numel%known != 0 {
			exceptions.Panicf("reshape %v: cannot infer free dimension for %d elements", dims, numel)
		}
		out[free] = numel / known
		return out
	}
	if known != numel {
		exceptions.Panicf("reshape %v: wrong number of elements, input has %d", dims, numel)
	}
	return out
}

// flattenDims computes the dimensions of flattening axes [start, end] into
// one. The collapsed dimension is the direct product of the flattened axes,
// never inferred from the element count, so zero-sized axes outside the
// range survive.
func flattenDims(dims []int, start, end int) []int {
	rank := len(dims)
	if rank == 0 {
		return []int{1}
	}
	wrap := func(axis int) int {
		if axis < 0 {
			axis += rank
		}
		if axis < 0 || axis >= rank {
			exceptions.Panicf("flatten: axis %d out-of-bounds for rank %d", axis, rank)
		}
		return axis
	}
	start, end = wrap(start), wrap(end)
	if start > end {
		exceptions.Panicf("flatten: start axis %d is beyond end axis %d", start, end)
	}
	sliceNumel := 1
	for _, d := range dims[start : end+1] {
		sliceNumel *= d
	}
	out := make([]int, 0, rank-(end-start))
	out = append(out, dims[:start]...)
	out = append(out, sliceNumel)
	out = append(out, dims[end+1:]...)
	return out
}

func makeReshapeCopy(node *graph.Node) Executor {
	return func(r *Record) {
		input := inputTensor(r, 0)
		dims := inferSize(intListArg(r.Input(1)), input.Size())
		out := r.OutputTensor(0, input.DType(), tensors.FormatContiguous)
		kernels.CastCopyOut(out, input)
		out.Resize(dims)
	}
}

func makeFlattenCopy(node *graph.Node) Executor {
	return func(r *Record) {
		input := inputTensor(r, 0)
		start, end := 0, -1
		if r.NumInputs() > 1 {
			start = int(r.Input(1).Int())
		}
		if r.NumInputs() > 2 {
			end = int(r.Input(2).Int())
		}
		dims := flattenDims(input.Dims(), start, end)
		out := r.OutputTensor(0, input.DType(), tensors.FormatContiguous)
		kernels.CastCopyOut(out, input)
		out.Resize(dims)
	}
}
