// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"math"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/staticrt/types/tensors"
)

// This file implements the broadcasting binary arithmetic kernels.
// Inputs must be contiguous and share the output's dtype; mixed-dtype
// promotion is resolved by the caller before the kernel runs.

func sameDims(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, d := range a {
		if d != b[i] {
			return false
		}
	}
	return true
}

// binaryOutGeneric evaluates fn over lhs and rhs broadcast to dims, writing
// into out's flat storage.
func binaryOutGeneric[T numericPODConstraints](out, lhs, rhs *tensors.Tensor, dims []int, fn func(a, b T) T) {
	outFlat := tensors.Flat[T](out)
	lhsFlat := tensors.Flat[T](lhs)
	rhsFlat := tensors.Flat[T](rhs)
	if sameDims(lhs.Dims(), rhs.Dims()) {
		for i := range outFlat {
			outFlat[i] = fn(lhsFlat[i], rhsFlat[i])
		}
		return
	}
	lhsIter := newBroadcastIterator(lhs.Dims(), dims)
	rhsIter := newBroadcastIterator(rhs.Dims(), dims)
	for i := range outFlat {
		outFlat[i] = fn(lhsFlat[lhsIter.Next()], rhsFlat[rhsIter.Next()])
	}
}

// MulOut writes the elementwise product of lhs and rhs, with implicit
// broadcasting, into out.
func MulOut(out, lhs, rhs *tensors.Tensor) {
	checkSameDType("MulOut", out, lhs, rhs)
	dims := BroadcastDims(lhs.Dims(), rhs.Dims())
	out.Resize(dims)
	switch out.DType() {
	case dtypes.Int32:
		binaryOutGeneric(out, lhs, rhs, dims, func(a, b int32) int32 { return a * b })
	case dtypes.Int64:
		binaryOutGeneric(out, lhs, rhs, dims, func(a, b int64) int64 { return a * b })
	case dtypes.Float32:
		binaryOutGeneric(out, lhs, rhs, dims, func(a, b float32) float32 { return a * b })
	case dtypes.Float64:
		binaryOutGeneric(out, lhs, rhs, dims, func(a, b float64) float64 { return a * b })
	default:
		exceptions.Panicf("unsupported data type %s for MulOut", out.DType())
	}
}

// SubOut writes lhs - alpha*rhs, with implicit broadcasting, into out.
// For integer dtypes alpha must hold an integral value.
func SubOut(out, lhs, rhs *tensors.Tensor, alpha float64) {
	checkSameDType("SubOut", out, lhs, rhs)
	if out.DType().IsInt() && alpha != math.Trunc(alpha) {
		exceptions.Panicf("SubOut: alpha=%g is not integral for dtype %s", alpha, out.DType())
	}
	dims := BroadcastDims(lhs.Dims(), rhs.Dims())
	out.Resize(dims)
	switch out.DType() {
	case dtypes.Int32:
		a := int32(alpha)
		binaryOutGeneric(out, lhs, rhs, dims, func(x, y int32) int32 { return x - a*y })
	case dtypes.Int64:
		a := int64(alpha)
		binaryOutGeneric(out, lhs, rhs, dims, func(x, y int64) int64 { return x - a*y })
	case dtypes.Float32:
		a := float32(alpha)
		binaryOutGeneric(out, lhs, rhs, dims, func(x, y float32) float32 { return x - a*y })
	case dtypes.Float64:
		binaryOutGeneric(out, lhs, rhs, dims, func(x, y float64) float64 { return x - alpha*y })
	default:
		exceptions.Panicf("unsupported data type %s for SubOut", out.DType())
	}
}

// Rounding modes accepted by DivOut.
const (
	RoundingNone  = ""
	RoundingTrunc = "trunc"
	RoundingFloor = "floor"
)

func floorDivInt[T int32 | int64](a, b T) T {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// DivOut writes lhs / rhs, with implicit broadcasting and the given rounding
// mode, into out. Integer dtypes require an explicit rounding mode; true
// division of integers is resolved by the caller promoting to float first.
func DivOut(out, lhs, rhs *tensors.Tensor, roundingMode string) {
	checkSameDType("DivOut", out, lhs, rhs)
	dims := BroadcastDims(lhs.Dims(), rhs.Dims())
	out.Resize(dims)
	dtype := out.DType()
	if dtype.IsInt() && roundingMode == RoundingNone {
		exceptions.Panicf("DivOut: integer dtype %s requires a rounding mode", dtype)
	}
	switch roundingMode {
	case RoundingNone:
		switch dtype {
		case dtypes.Float32:
			binaryOutGeneric(out, lhs, rhs, dims, func(a, b float32) float32 { return a / b })
		case dtypes.Float64:
			binaryOutGeneric(out, lhs, rhs, dims, func(a, b float64) float64 { return a / b })
		default:
			exceptions.Panicf("unsupported data type %s for DivOut", dtype)
		}
	case RoundingTrunc:
		switch dtype {
		case dtypes.Int32:
			binaryOutGeneric(out, lhs, rhs, dims, func(a, b int32) int32 { return a / b })
		case dtypes.Int64:
			binaryOutGeneric(out, lhs, rhs, dims, func(a, b int64) int64 { return a / b })
		case dtypes.Float32:
			binaryOutGeneric(out, lhs, rhs, dims, func(a, b float32) float32 {
				return float32(math.Trunc(float64(a / b)))
			})
		case dtypes.Float64:
			binaryOutGeneric(out, lhs, rhs, dims, func(a, b float64) float64 { return math.Trunc(a / b) })
		default:
			exceptions.Panicf("unsupported data type %s for DivOut", dtype)
		}
	case RoundingFloor:
		switch dtype {
		case dtypes.Int32:
			binaryOutGeneric(out, lhs, rhs, dims, floorDivInt[int32])
		case dtypes.Int64:
			binaryOutGeneric(out, lhs, rhs, dims, floorDivInt[int64])
		case dtypes.Float32:
			binaryOutGeneric(out, lhs, rhs, dims, func(a, b float32) float32 {
				return float32(math.Floor(float64(a / b)))
			})
		case dtypes.Float64:
			binaryOutGeneric(out, lhs, rhs, dims, func(a, b float64) float64 { return math.Floor(a / b) })
		default:
			exceptions.Panicf("unsupported data type %s for DivOut", dtype)
		}
	default:
		exceptions.Panicf("DivOut: unknown rounding mode %q", roundingMode)
	}
}

// powIntGeneric is an O(number of bits) integer power.
func powIntGeneric[T integerPODConstraints](base, exp T) T {
	result := T(1)
	for exp > 0 {
		if exp%2 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// PowOut writes lhs raised to rhs, with implicit broadcasting, into out.
func PowOut(out, lhs, rhs *tensors.Tensor) {
	checkSameDType("PowOut", out, lhs, rhs)
	dims := BroadcastDims(lhs.Dims(), rhs.Dims())
	out.Resize(dims)
	switch out.DType() {
	case dtypes.Int32:
		binaryOutGeneric(out, lhs, rhs, dims, powIntGeneric[int32])
	case dtypes.Int64:
		binaryOutGeneric(out, lhs, rhs, dims, powIntGeneric[int64])
	case dtypes.Float32:
		binaryOutGeneric(out, lhs, rhs, dims, func(a, b float32) float32 {
			return float32(math.Pow(float64(a), float64(b)))
		})
	case dtypes.Float64:
		binaryOutGeneric(out, lhs, rhs, dims, math.Pow)
	default:
		exceptions.Panicf("unsupported data type %s for PowOut", out.DType())
	}
}
