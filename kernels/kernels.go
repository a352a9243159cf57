// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package kernels implements the numeric routines the static runtime invokes:
// buffer-writing ("Out") variants of arithmetic, reduction, indexing,
// normalization and embedding operators.
//
// Every exported kernel takes its output tensor first and resizes it to the
// result dimensions before writing, so callers can pass a zero-sized tensor
// whose storage retains the capacity of previous runs. Kernels never allocate
// when the output's storage already has room for the result.
//
// Kernels expect contiguous inputs unless documented otherwise; callers make
// inputs contiguous first.
package kernels

import (
	"reflect"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/staticrt/types/tensors"
)

// numericPODConstraints covers the Go plain-old-data numeric types kernels
// are instantiated for. BFloat16 and Float16 are handled by the conversion
// kernels only.
type numericPODConstraints interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

type integerPODConstraints interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

type floatPODConstraints interface {
	float32 | float64
}

// copyFlat copies n elements from src's flat storage (starting at srcOff) into
// dst's flat storage (starting at dstOff). Both must be contiguous and share a
// dtype. It is dtype-agnostic, used by the block-copy kernels (cat, stack,
// narrow copies).
func copyFlat(dst, src *tensors.Tensor, dstOff, srcOff, n int) {
	if n == 0 {
		return
	}
	dstV := reflect.ValueOf(dst.Flat())
	srcV := reflect.ValueOf(src.Flat())
	reflect.Copy(dstV.Slice(dstOff, dstOff+n), srcV.Slice(srcOff, srcOff+n))
}

func checkSameDType(name string, ts ...*tensors.Tensor) {
	dtype := ts[0].DType()
	for _, t := range ts[1:] {
		if t.DType() != dtype {
			exceptions.Panicf("%s: mixed dtypes %s and %s", name, dtype, t.DType())
		}
	}
}
