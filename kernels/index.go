// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/staticrt/types/tensors"
)

// NarrowBounds validates a narrow of length elements starting at start on an
// axis of the given size, and returns the resolved (non-negative) start.
// A negative start wraps around; start == dimSize is allowed so a zero-length
// narrow can address the end of the axis.
func NarrowBounds(dimSize, start, length int) int {
	if start < -dimSize || start > dimSize {
		exceptions.Panicf("narrow: start %d out of range for axis of size %d", start, dimSize)
	}
	if start < 0 {
		start += dimSize
	}
	if length < 0 || start+length > dimSize {
		exceptions.Panicf("narrow: start %d plus length %d exceeds axis of size %d",
			start, length, dimSize)
	}
	return start
}

// NarrowCopyOut writes a copy of length elements of input starting at start
// along axis into out.
func NarrowCopyOut(out, input *tensors.Tensor, axis, start, length int) {
	checkSameDType("NarrowCopyOut", out, input)
	axis = wrapCatAxis(axis, input.Rank())
	start = NarrowBounds(input.Dim(axis), start, length)
	dims := append([]int(nil), input.Dims()...)
	dims[axis] = length
	out.Resize(dims)
	outer := prod(dims[:axis])
	inner := prod(dims[axis+1:])
	srcChunk := input.Dim(axis) * inner
	dstChunk := length * inner
	for o := 0; o < outer; o++ {
		copyFlat(out, input, o*dstChunk, o*srcChunk+start*inner, dstChunk)
	}
}

func indexValues(idx *tensors.Tensor) []int {
	switch flat := idx.Flat().(type) {
	case []int32:
		out := make([]int, len(flat))
		for i, v := range flat {
			out[i] = int(v)
		}
		return out
	case []int64:
		out := make([]int, len(flat))
		for i, v := range flat {
			out[i] = int(v)
		}
		return out
	}
	exceptions.Panicf("index tensor must be Int32 or Int64, got %s", idx.DType())
	return nil
}

// IndexOut implements tensor indexing with a list of index tensors, one per
// leading axis (nil meaning "all of this axis"). Two forms are supported: a
// single integer tensor selecting along axis 0, and a single boolean mask
// with input's dimensions selecting individual elements.
func IndexOut(out, input *tensors.Tensor, indices []*tensors.Tensor) {
	checkSameDType("IndexOut", out, input)
	var idx *tensors.Tensor
	for i, t := range indices {
		if t == nil {
			continue
		}
		if idx != nil || i != 0 {
			exceptions.Panicf("IndexOut: only a single index tensor on the first axis is supported")
		}
		idx = t
	}
	if idx == nil {
		exceptions.Panicf("IndexOut: no index tensor given")
	}
	if idx.DType() == dtypes.Bool {
		indexMaskOut(out, input, idx)
		return
	}
	if input.Rank() < 1 {
		exceptions.Panicf("IndexOut: cannot index a scalar")
	}
	rows := indexValues(idx)
	dim0 := input.Dim(0)
	inner := prod(input.Dims()[1:])
	dims := append(append([]int(nil), idx.Dims()...), input.Dims()[1:]...)
	out.Resize(dims)
	for i, row := range rows {
		if row < 0 {
			row += dim0
		}
		if row < 0 || row >= dim0 {
			exceptions.Panicf("IndexOut: index %d out of range for axis of size %d", rows[i], dim0)
		}
		copyFlat(out, input, i*inner, row*inner, inner)
	}
}

func indexMaskOut(out, input, mask *tensors.Tensor) {
	if !sameDims(mask.Dims(), input.Dims()) {
		exceptions.Panicf("IndexOut: boolean mask %s does not match input %s",
			mask.Shape(), input.Shape())
	}
	flags := tensors.Flat[bool](mask)
	count := 0
	for _, f := range flags {
		if f {
			count++
		}
	}
	out.Resize([]int{count})
	j := 0
	for i, f := range flags {
		if f {
			copyFlat(out, input, j, i, 1)
			j++
		}
	}
}
