// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package tensors implements a dense multi-dimensional array whose backing
// storage outlives logical resizes.
//
// The central contract, relied upon by the out-variant executors in the
// static package, is that a Tensor's storage is owned by the value slot
// holding it: ResizeToZero drops the logical size without releasing the
// allocation, and a later Resize only reallocates when the element count
// grows beyond the storage capacity. Repeated executions with non-increasing
// shapes therefore never allocate.
//
// Views (Transpose, Permute, Slice) alias the storage of the viewed tensor.
package tensors

import (
	"reflect"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"

	"github.com/gomlx/staticrt/types/shapes"
)

// Tensor is a strided view over a reference-counted-by-GC storage.
//
// The zero value is not usable; create tensors with New, NewLike, NewEmpty or
// FromFlatDataAndDimensions.
type Tensor struct {
	shape   shapes.Shape
	strides []int // in elements, one per axis
	offset  int   // in elements, into storage

	// format records an explicit memory format requested at allocation time.
	// FormatPreserve means "no explicit format": see Resize.
	format MemoryFormat

	storage *storage
}

// storage holds the flat backing data. flat is always a slice of the Go type
// corresponding to the tensor's dtype, with len == capacity in elements.
type storage struct {
	flat any
}

func newStorage(dtype dtypes.DType, numElements int) *storage {
	return &storage{
		flat: reflect.MakeSlice(reflect.SliceOf(dtype.GoType()), numElements, numElements).Interface(),
	}
}

func (s *storage) capacity() int {
	return reflect.ValueOf(s.flat).Len()
}

// contiguousStrides for the given dimensions (row-major).
func contiguousStrides(dims []int) []int {
	strides := make([]int, len(dims))
	stride := 1
	for axis := len(dims) - 1; axis >= 0; axis-- {
		strides[axis] = stride
		stride *= dims[axis]
	}
	return strides
}

// New creates a contiguous tensor of the given shape. Contents are zero.
func New(shape shapes.Shape) *Tensor {
	if !shape.Ok() {
		exceptions.Panicf("tensors.New: invalid shape")
	}
	return &Tensor{
		shape:   shape.Clone(),
		strides: contiguousStrides(shape.Dimensions),
		storage: newStorage(shape.DType, shape.Size()),
	}
}

// NewLike creates a contiguous tensor with the same shape and dtype as t.
func NewLike(t *Tensor) *Tensor {
	return New(t.shape)
}

// NewLikeWithDType creates a contiguous tensor with the same dimensions as t
// but the given dtype.
func NewLikeWithDType(t *Tensor, dtype dtypes.DType) *Tensor {
	return New(shapes.Make(dtype, t.shape.Dimensions...))
}

// NewEmpty creates a tensor of shape [0] with the given dtype, recording the
// memory format that later Resize calls should honor. FormatPreserve records
// "no explicit format".
func NewEmpty(dtype dtypes.DType, format MemoryFormat) *Tensor {
	t := New(shapes.Make(dtype, 0))
	t.format = format
	return t
}

// FromFlatDataAndDimensions creates a tensor from a flat slice and
// dimensions. The flat slice is used directly as storage (not copied), so it
// must not be mutated by the caller afterwards.
func FromFlatDataAndDimensions[T dtypes.Supported](flat []T, dimensions ...int) *Tensor {
	dtype := dtypes.FromGenericsType[T]()
	shape := shapes.Make(dtype, dimensions...)
	if shape.Size() != len(flat) {
		exceptions.Panicf("FromFlatDataAndDimensions: flat has %d elements, shape %s requires %d",
			len(flat), shape, shape.Size())
	}
	return &Tensor{
		shape:   shape,
		strides: contiguousStrides(shape.Dimensions),
		storage: &storage{flat: flat},
	}
}

// FromScalar creates a rank-0 tensor holding the given value.
func FromScalar[T dtypes.Supported](value T) *Tensor {
	t := New(shapes.Scalar(dtypes.FromGenericsType[T]()))
	t.storage.flat.([]T)[0] = value
	return t
}

// Shape of the tensor. The returned value shares the Dimensions slice; treat
// it as read-only.
func (t *Tensor) Shape() shapes.Shape { return t.shape }

// DType of the tensor elements.
func (t *Tensor) DType() dtypes.DType { return t.shape.DType }

// Rank is the number of axes.
func (t *Tensor) Rank() int { return t.shape.Rank() }

// Dim returns the dimension of the given axis; negative axis counts from the end.
func (t *Tensor) Dim(axis int) int { return t.shape.Dim(axis) }

// Dims returns the dimensions. Read-only.
func (t *Tensor) Dims() []int { return t.shape.Dimensions }

// Size is the number of logical elements.
func (t *Tensor) Size() int { return t.shape.Size() }

// Strides in elements, one per axis. Read-only.
func (t *Tensor) Strides() []int { return t.strides }

// Offset in elements into the backing storage.
func (t *Tensor) Offset() int { return t.offset }

// Capacity returns the number of elements the backing storage can hold
// without reallocation.
func (t *Tensor) Capacity() int { return t.storage.capacity() }

// SharesStorageWith returns whether both tensors alias the same backing
// storage.
func (t *Tensor) SharesStorageWith(other *Tensor) bool {
	return t.storage == other.storage
}

// Flat returns the logical window of the backing storage as a []T slice
// (T being the Go type of the dtype). It requires the tensor to be
// contiguous.
func (t *Tensor) Flat() any {
	if !t.IsContiguous() {
		exceptions.Panicf("Tensor.Flat: tensor (shape=%s, strides=%v) is not contiguous", t.shape, t.strides)
	}
	v := reflect.ValueOf(t.storage.flat)
	return v.Slice(t.offset, t.offset+t.Size()).Interface()
}

// Flat returns the typed logical window of tensor t. It panics if T does not
// match t's dtype or if t is not contiguous.
func Flat[T dtypes.Supported](t *Tensor) []T {
	flat, ok := t.Flat().([]T)
	if !ok {
		exceptions.Panicf("tensors.Flat[%s]: tensor has dtype %s",
			dtypes.FromGenericsType[T](), t.DType())
	}
	return flat
}
