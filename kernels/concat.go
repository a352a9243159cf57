// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/staticrt/types/tensors"
)

func wrapCatAxis(axis, rank int) int {
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		exceptions.Panicf("axis %d is out-of-bounds for rank %d", axis, rank)
	}
	return axis
}

func prod(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}
	return p
}

// CatOut concatenates inputs along axis into out. All inputs must share a
// dtype and agree on every dimension except axis. Rank-1 zero-sized inputs
// are skipped.
func CatOut(out *tensors.Tensor, inputs []*tensors.Tensor, axis int) {
	if len(inputs) == 0 {
		exceptions.Panicf("CatOut: no inputs")
	}
	kept := make([]*tensors.Tensor, 0, len(inputs))
	for _, t := range inputs {
		if t.Rank() == 1 && t.Dim(0) == 0 {
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) == 0 {
		out.Resize([]int{0})
		return
	}
	checkSameDType("CatOut", append([]*tensors.Tensor{out}, kept...)...)
	first := kept[0]
	rank := first.Rank()
	axis = wrapCatAxis(axis, rank)
	catDim := 0
	for _, t := range kept {
		if t.Rank() != rank {
			exceptions.Panicf("CatOut: rank mismatch %d vs %d", t.Rank(), rank)
		}
		for d := 0; d < rank; d++ {
			if d != axis && t.Dim(d) != first.Dim(d) {
				exceptions.Panicf("CatOut: dimension mismatch at axis %d: %s vs %s",
					d, t.Shape(), first.Shape())
			}
		}
		catDim += t.Dim(axis)
	}
	outDims := append([]int(nil), first.Dims()...)
	outDims[axis] = catDim
	out.Resize(outDims)

	outer := prod(outDims[:axis])
	inner := prod(outDims[axis+1:])
	outChunk := catDim * inner
	prefix := 0
	for _, t := range kept {
		chunk := t.Dim(axis) * inner
		for o := 0; o < outer; o++ {
			copyFlat(out, t, o*outChunk+prefix, o*chunk, chunk)
		}
		prefix += chunk
	}
}

// StackOut stacks inputs along a new axis into out. All inputs must share
// dtype and dimensions; axis may range over [0, rank] (or the negative
// equivalents).
func StackOut(out *tensors.Tensor, inputs []*tensors.Tensor, axis int) {
	if len(inputs) == 0 {
		exceptions.Panicf("StackOut: no inputs")
	}
	checkSameDType("StackOut", append([]*tensors.Tensor{out}, inputs...)...)
	first := inputs[0]
	rank := first.Rank() + 1
	axis = wrapCatAxis(axis, rank)
	for _, t := range inputs[1:] {
		if !sameDims(t.Dims(), first.Dims()) {
			exceptions.Panicf("StackOut: dimension mismatch %s vs %s", t.Shape(), first.Shape())
		}
	}
	outDims := make([]int, 0, rank)
	outDims = append(outDims, first.Dims()[:axis]...)
	outDims = append(outDims, len(inputs))
	outDims = append(outDims, first.Dims()[axis:]...)
	out.Resize(outDims)

	outer := prod(first.Dims()[:axis])
	inner := prod(first.Dims()[axis:])
	for j, t := range inputs {
		for o := 0; o < outer; o++ {
			copyFlat(out, t, (o*len(inputs)+j)*inner, o*inner, inner)
		}
	}
}
