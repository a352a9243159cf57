// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tensors

import (
	"slices"
	"sort"

	"github.com/gomlx/exceptions"
)

// MemoryFormat describes how a tensor's elements are laid out in its backing
// storage.
type MemoryFormat int

//go:generate go tool enumer -type=MemoryFormat -trimprefix=Format -output=gen_memoryformat_enumer.go layout.go

const (
	// FormatPreserve is not a concrete layout: as an allocation request it
	// means "no explicit format", and resizes keep the source striding.
	FormatPreserve MemoryFormat = iota

	// FormatContiguous is the default row-major layout.
	FormatContiguous

	// FormatChannelsLast is the NHWC layout for rank-4 tensors: the channel
	// axis (axis 1) has stride 1.
	FormatChannelsLast
)

// channelsLastStrides for rank-4 dims [N, C, H, W]: stride order N, H, W, C.
func channelsLastStrides(dims []int) []int {
	c, h, w := dims[1], dims[2], dims[3]
	return []int{c * h * w, 1, w * c, c}
}

// IsContiguous returns whether the tensor's elements are laid out row-major
// and densely. Tensors with no elements or a single element are always
// contiguous.
func (t *Tensor) IsContiguous() bool {
	if t.Size() <= 1 {
		return true
	}
	expected := 1
	for axis := t.Rank() - 1; axis >= 0; axis-- {
		dim := t.shape.Dimensions[axis]
		if dim == 1 {
			continue
		}
		if t.strides[axis] != expected {
			return false
		}
		expected *= dim
	}
	return true
}

// IsNonOverlappingAndDense reports whether the elements cover the storage
// window exactly once, in some axis permutation: contiguous tensors qualify,
// and so do, e.g., channels-last tensors; a strided slice does not.
func (t *Tensor) IsNonOverlappingAndDense() bool {
	if t.Size() <= 1 {
		return true
	}
	type axisInfo struct{ dim, stride int }
	axes := make([]axisInfo, 0, t.Rank())
	for axis, dim := range t.shape.Dimensions {
		if dim == 1 {
			continue
		}
		axes = append(axes, axisInfo{dim: dim, stride: t.strides[axis]})
	}
	sort.Slice(axes, func(i, j int) bool { return axes[i].stride < axes[j].stride })
	expected := 1
	for _, a := range axes {
		if a.stride != expected {
			return false
		}
		expected *= a.dim
	}
	return true
}

// SuggestMemoryFormat returns the concrete format that best matches the
// tensor's current striding: FormatChannelsLast for rank-4 tensors strided
// that way, FormatContiguous otherwise.
func (t *Tensor) SuggestMemoryFormat() MemoryFormat {
	if t.Rank() == 4 && !t.IsContiguous() &&
		slices.Equal(t.strides, channelsLastStrides(t.shape.Dimensions)) {
		return FormatChannelsLast
	}
	return FormatContiguous
}

// Format returns the explicit memory format recorded at allocation time.
// FormatPreserve means none was requested.
func (t *Tensor) Format() MemoryFormat { return t.format }

// SetFormat changes the memory format used by future Resize calls. It does
// not rearrange current contents.
func (t *Tensor) SetFormat(format MemoryFormat) { t.format = format }

// ResizeToZero drops the logical size to zero elements -- shape becomes [0] --
// without releasing the backing storage. This is the "fast resize" half of the
// buffer-reuse contract: the next Resize re-grows within the same allocation
// whenever the capacity suffices.
func (t *Tensor) ResizeToZero() {
	t.shape.Dimensions = []int{0}
	t.strides = []int{1}
	t.offset = 0
}

// Resize sets the logical dimensions, laying elements out according to the
// tensor's recorded memory format (contiguous unless FormatChannelsLast was
// requested for a rank-4 resize). Storage is reallocated only if the new
// element count exceeds the current capacity; contents after a resize are
// unspecified.
//
// Resize must not be called on a view that shares storage: growing would
// detach it from its siblings silently.
func (t *Tensor) Resize(dimensions []int) {
	for _, dim := range dimensions {
		if dim < 0 {
			exceptions.Panicf("Tensor.Resize: dimensions must be >= 0, got %v", dimensions)
		}
	}
	t.shape.Dimensions = slices.Clone(dimensions)
	if t.format == FormatChannelsLast && len(dimensions) == 4 {
		t.strides = channelsLastStrides(dimensions)
	} else {
		t.strides = contiguousStrides(dimensions)
	}
	t.offset = 0
	t.ensureCapacity(t.shape.Size())
}

// ResizeWithStrides sets the logical dimensions and explicit strides, used to
// preserve a source tensor's striding when no explicit memory format was
// requested. Storage grows to cover the strided span if needed.
func (t *Tensor) ResizeWithStrides(dimensions, strides []int) {
	if len(dimensions) != len(strides) {
		exceptions.Panicf("Tensor.ResizeWithStrides: %d dimensions but %d strides", len(dimensions), len(strides))
	}
	t.shape.Dimensions = slices.Clone(dimensions)
	t.strides = slices.Clone(strides)
	t.offset = 0
	// Span is the highest flat index reachable, plus one.
	span := 0
	if t.shape.Size() > 0 {
		span = 1
		for axis, dim := range dimensions {
			span += (dim - 1) * strides[axis]
		}
	}
	t.ensureCapacity(span)
}

func (t *Tensor) ensureCapacity(numElements int) {
	if numElements <= t.storage.capacity() {
		return
	}
	t.storage = newStorage(t.shape.DType, numElements)
}
