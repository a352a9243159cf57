// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tensors

import (
	"reflect"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/staticrt/types/shapes"
)

// wrapAxis resolves a possibly-negative axis, panicking if out-of-bounds.
func (t *Tensor) wrapAxis(axis int) int {
	adjusted := axis
	if adjusted < 0 {
		adjusted += t.Rank()
	}
	if adjusted < 0 || adjusted >= t.Rank() {
		exceptions.Panicf("axis %d is out-of-bounds for tensor of rank %d", axis, t.Rank())
	}
	return adjusted
}

// view returns a shallow copy sharing storage.
func (t *Tensor) view() *Tensor {
	return &Tensor{
		shape:   t.shape.Clone(),
		strides: slices.Clone(t.strides),
		offset:  t.offset,
		format:  t.format,
		storage: t.storage,
	}
}

// Transpose returns a view of the tensor with axis0 and axis1 swapped.
// No data is moved.
func (t *Tensor) Transpose(axis0, axis1 int) *Tensor {
	axis0, axis1 = t.wrapAxis(axis0), t.wrapAxis(axis1)
	v := t.view()
	v.shape.Dimensions[axis0], v.shape.Dimensions[axis1] = v.shape.Dimensions[axis1], v.shape.Dimensions[axis0]
	v.strides[axis0], v.strides[axis1] = v.strides[axis1], v.strides[axis0]
	return v
}

// Permute returns a view with the axes reordered: axis ii of the result is
// axis permutation[ii] of t.
func (t *Tensor) Permute(permutation []int) *Tensor {
	if len(permutation) != t.Rank() {
		exceptions.Panicf("Permute: permutation %v has %d axes, tensor has rank %d",
			permutation, len(permutation), t.Rank())
	}
	seen := make([]bool, t.Rank())
	v := t.view()
	for ii, axis := range permutation {
		axis = t.wrapAxis(axis)
		if seen[axis] {
			exceptions.Panicf("Permute: axis %d repeated in permutation %v", axis, permutation)
		}
		seen[axis] = true
		v.shape.Dimensions[ii] = t.shape.Dimensions[axis]
		v.strides[ii] = t.strides[axis]
	}
	return v
}

// Slice returns a view over [start, end) of the given axis, taking every
// step-th element. Negative start/end wrap relative to the axis dimension,
// and both are clamped into range. step must be > 0.
func (t *Tensor) Slice(axis, start, end, step int) *Tensor {
	axis = t.wrapAxis(axis)
	if step <= 0 {
		exceptions.Panicf("Slice: step must be positive, got %d", step)
	}
	dim := t.shape.Dimensions[axis]
	if start < 0 {
		start += dim
	}
	if end < 0 {
		end += dim
	}
	start = min(max(start, 0), dim)
	end = min(max(end, start), dim)
	v := t.view()
	v.offset += start * t.strides[axis]
	v.shape.Dimensions[axis] = (end - start + step - 1) / step
	v.strides[axis] = t.strides[axis] * step
	return v
}

// ReshapeView returns a view of t with the given dimensions, sharing
// storage. t must be contiguous and the element count must match.
func (t *Tensor) ReshapeView(dimensions ...int) *Tensor {
	if !t.IsContiguous() {
		exceptions.Panicf("ReshapeView: tensor %s is not contiguous", t.shape)
	}
	numel := 1
	for _, d := range dimensions {
		if d < 0 {
			exceptions.Panicf("ReshapeView: dimensions must be >= 0, got %v", dimensions)
		}
		numel *= d
	}
	if numel != t.Size() {
		exceptions.Panicf("ReshapeView: cannot view %s as %v", t.shape, dimensions)
	}
	v := t.view()
	v.shape = shapes.Make(t.shape.DType, dimensions...)
	v.strides = contiguousStrides(v.shape.Dimensions)
	return v
}

// Contiguous returns t itself when already contiguous, otherwise a compact
// row-major copy.
func (t *Tensor) Contiguous() *Tensor {
	if t.IsContiguous() {
		return t
	}
	return t.Clone()
}

// Clone returns a contiguous deep copy.
func (t *Tensor) Clone() *Tensor {
	c := New(t.shape)
	c.CopyFrom(t)
	return c
}

// CopyFrom copies src's elements into t, respecting the strides of both.
// Both tensors must have the same dtype and dimensions.
func (t *Tensor) CopyFrom(src *Tensor) {
	if t.DType() != src.DType() {
		exceptions.Panicf("CopyFrom: dtype mismatch %s vs %s -- use kernels.CastCopyOut for conversions",
			t.DType(), src.DType())
	}
	if !t.shape.EqualDimensions(src.shape) {
		exceptions.Panicf("CopyFrom: dimensions mismatch %s vs %s", t.shape, src.shape)
	}
	size := t.Size()
	if size == 0 {
		return
	}
	if t.IsContiguous() && src.IsContiguous() {
		reflect.Copy(reflect.ValueOf(t.Flat()), reflect.ValueOf(src.Flat()))
		return
	}
	dstV := reflect.ValueOf(t.storage.flat)
	srcV := reflect.ValueOf(src.storage.flat)
	dstIt := newStridedIterator(t.shape.Dimensions, t.strides, t.offset)
	srcIt := newStridedIterator(src.shape.Dimensions, src.strides, src.offset)
	for range size {
		dstV.Index(dstIt.Next()).Set(srcV.Index(srcIt.Next()))
	}
}

// stridedIterator yields the flat storage offsets of a strided tensor in
// row-major logical order.
type stridedIterator struct {
	dims, strides []int
	coords        []int
	offset        int
}

func newStridedIterator(dims, strides []int, offset int) *stridedIterator {
	return &stridedIterator{
		dims:    dims,
		strides: strides,
		coords:  make([]int, len(dims)),
		offset:  offset,
	}
}

// Next returns the current offset and advances. The caller must not call it
// more than size times.
func (it *stridedIterator) Next() (offset int) {
	offset = it.offset
	for axis := len(it.dims) - 1; axis >= 0; axis-- {
		it.coords[axis]++
		it.offset += it.strides[axis]
		if it.coords[axis] < it.dims[axis] {
			return
		}
		it.coords[axis] = 0
		it.offset -= it.dims[axis] * it.strides[axis]
	}
	return
}
