// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package shapes defines Shape, the (dtype, dimensions) descriptor shared by
// tensors and graph nodes.
//
// Differently from the usual array libraries, zero-sized dimensions are valid
// here: a shape like (Float32)[0 3] holds no data but keeps its rank and the
// sizes of the non-empty axes, which matters for structural ops (flatten,
// narrow) applied to empty tensors.
package shapes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
)

// Shape represents the shape of a tensor: its DType and the dimension of each
// of its axes. A rank-0 shape is a scalar.
//
// Shape is a value type: pass it by value, and use Clone if mutating
// Dimensions of a copy.
type Shape struct {
	DType      dtypes.DType
	Dimensions []int
}

// Make returns a Shape with the given dtype and dimensions.
// Dimensions must be >= 0 -- zero-sized axes are valid.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	s := Shape{DType: dtype, Dimensions: slices.Clone(dimensions)}
	for _, dim := range dimensions {
		if dim < 0 {
			exceptions.Panicf("shapes.Make(%s): dimensions must be >= 0, got %v", dtype, dimensions)
		}
	}
	return s
}

// Scalar returns a rank-0 shape of the given dtype.
func Scalar(dtype dtypes.DType) Shape {
	return Shape{DType: dtype}
}

// Invalid returns an invalid shape. Invalid().Ok() == false.
func Invalid() Shape { return Shape{DType: dtypes.InvalidDType} }

// Ok returns whether this is a valid Shape.
// The zero value of Shape is invalid.
func (s Shape) Ok() bool { return s.DType != dtypes.InvalidDType }

// Rank of the shape, that is, its number of axes.
func (s Shape) Rank() int { return len(s.Dimensions) }

// IsScalar returns whether the shape has rank 0.
func (s Shape) IsScalar() bool { return s.Ok() && s.Rank() == 0 }

// Dim returns the dimension of the given axis. Negative axis counts from the
// end, so Dim(-1) is the last axis. It panics on an out-of-bounds axis.
func (s Shape) Dim(axis int) int {
	adjusted := axis
	if adjusted < 0 {
		adjusted += s.Rank()
	}
	if adjusted < 0 || adjusted >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d): out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.Dimensions[adjusted]
}

// Size returns the number of elements: the product of all dimensions.
// A scalar has size 1; any zero-sized axis makes the size 0.
func (s Shape) Size() int {
	size := 1
	for _, dim := range s.Dimensions {
		size *= dim
	}
	return size
}

// Memory returns the number of bytes needed to store the shape's data.
func (s Shape) Memory() uintptr {
	return s.DType.Memory() * uintptr(s.Size())
}

// Clone makes a deep copy of the shape.
func (s Shape) Clone() Shape {
	return Shape{DType: s.DType, Dimensions: slices.Clone(s.Dimensions)}
}

// Equal compares dtype and dimensions.
func (s Shape) Equal(other Shape) bool {
	return s.DType == other.DType && slices.Equal(s.Dimensions, other.Dimensions)
}

// EqualDimensions compares only the dimensions, ignoring dtype.
func (s Shape) EqualDimensions(other Shape) bool {
	return slices.Equal(s.Dimensions, other.Dimensions)
}

// String implements fmt.Stringer. E.g.: "(Float32)[2 3]".
func (s Shape) String() string {
	if !s.Ok() {
		return "(invalid shape)"
	}
	if s.IsScalar() {
		return fmt.Sprintf("(%s)", s.DType)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "(%s)[", s.DType)
	for ii, dim := range s.Dimensions {
		if ii > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", dim)
	}
	sb.WriteByte(']')
	return sb.String()
}
