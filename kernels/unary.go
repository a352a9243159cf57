// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"math"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/staticrt/types/tensors"
)

// Pointwise kernels. The exported float32 scalar helpers (ReLU32, Tanh32,
// Sigmoid32, Logit32) are shared with the runtime-compiled vector kernels so
// both paths produce bit-identical results.

func unaryOutGeneric[T numericPODConstraints](out, input *tensors.Tensor, fn func(T) T) {
	outFlat := tensors.Flat[T](out)
	inFlat := tensors.Flat[T](input)
	for i, v := range inFlat {
		outFlat[i] = fn(v)
	}
}

func ReLU32(x float32) float32 {
	if x < 0 {
		return 0
	}
	return x
}

func Tanh32(x float32) float32 {
	return float32(math.Tanh(float64(x)))
}

func Sigmoid32(x float32) float32 {
	return float32(1 / (1 + math.Exp(-float64(x))))
}

func Logit32(x float32, eps float64) float32 {
	if eps >= 0 {
		lo, hi := float32(eps), float32(1-eps)
		if x < lo {
			x = lo
		} else if x > hi {
			x = hi
		}
	}
	return float32(math.Log(float64(x) / (1 - float64(x))))
}

// ReLUOut writes max(input, 0) into out.
func ReLUOut(out, input *tensors.Tensor) {
	checkSameDType("ReLUOut", out, input)
	out.Resize(input.Dims())
	switch out.DType() {
	case dtypes.Int32:
		unaryOutGeneric(out, input, func(x int32) int32 { return max(x, 0) })
	case dtypes.Int64:
		unaryOutGeneric(out, input, func(x int64) int64 { return max(x, 0) })
	case dtypes.Float32:
		unaryOutGeneric(out, input, ReLU32)
	case dtypes.Float64:
		unaryOutGeneric(out, input, func(x float64) float64 { return math.Max(x, 0) })
	default:
		exceptions.Panicf("unsupported data type %s for ReLUOut", out.DType())
	}
}

// TanhOut writes tanh(input) into out. Float dtypes only.
func TanhOut(out, input *tensors.Tensor) {
	checkSameDType("TanhOut", out, input)
	out.Resize(input.Dims())
	switch out.DType() {
	case dtypes.Float32:
		unaryOutGeneric(out, input, Tanh32)
	case dtypes.Float64:
		unaryOutGeneric(out, input, math.Tanh)
	default:
		exceptions.Panicf("unsupported data type %s for TanhOut", out.DType())
	}
}

// SigmoidOut writes 1/(1+exp(-input)) into out. Float dtypes only.
func SigmoidOut(out, input *tensors.Tensor) {
	checkSameDType("SigmoidOut", out, input)
	out.Resize(input.Dims())
	switch out.DType() {
	case dtypes.Float32:
		unaryOutGeneric(out, input, Sigmoid32)
	case dtypes.Float64:
		unaryOutGeneric(out, input, func(x float64) float64 { return 1 / (1 + math.Exp(-x)) })
	default:
		exceptions.Panicf("unsupported data type %s for SigmoidOut", out.DType())
	}
}

// LogitOut writes log(input/(1-input)) into out, first clamping input to
// [eps, 1-eps] when eps >= 0. Pass a negative eps for no clamping.
func LogitOut(out, input *tensors.Tensor, eps float64) {
	checkSameDType("LogitOut", out, input)
	out.Resize(input.Dims())
	switch out.DType() {
	case dtypes.Float32:
		unaryOutGeneric(out, input, func(x float32) float32 { return Logit32(x, eps) })
	case dtypes.Float64:
		unaryOutGeneric(out, input, func(x float64) float64 {
			if eps >= 0 {
				x = math.Min(math.Max(x, eps), 1-eps)
			}
			return math.Log(x / (1 - x))
		})
	default:
		exceptions.Panicf("unsupported data type %s for LogitOut", out.DType())
	}
}

func clampGeneric[T numericPODConstraints](x T, hasMin bool, lo T, hasMax bool, hi T) T {
	if hasMin && x < lo {
		return lo
	}
	if hasMax && x > hi {
		return hi
	}
	return x
}

// ClampOut writes input clamped to [minVal, maxVal] into out. Either bound
// may be nil, meaning unbounded on that side.
func ClampOut(out, input *tensors.Tensor, minVal, maxVal *float64) {
	checkSameDType("ClampOut", out, input)
	out.Resize(input.Dims())
	hasMin, hasMax := minVal != nil, maxVal != nil
	var lo, hi float64
	if hasMin {
		lo = *minVal
	}
	if hasMax {
		hi = *maxVal
	}
	switch out.DType() {
	case dtypes.Int32:
		unaryOutGeneric(out, input, func(x int32) int32 {
			return clampGeneric(x, hasMin, int32(lo), hasMax, int32(hi))
		})
	case dtypes.Int64:
		unaryOutGeneric(out, input, func(x int64) int64 {
			return clampGeneric(x, hasMin, int64(lo), hasMax, int64(hi))
		})
	case dtypes.Float32:
		unaryOutGeneric(out, input, func(x float32) float32 {
			return clampGeneric(x, hasMin, float32(lo), hasMax, float32(hi))
		})
	case dtypes.Float64:
		unaryOutGeneric(out, input, func(x float64) float64 {
			return clampGeneric(x, hasMin, lo, hasMax, hi)
		})
	default:
		exceptions.Panicf("unsupported data type %s for ClampOut", out.DType())
	}
}

// ClampMinOut writes max(input, minVal) into out.
func ClampMinOut(out, input *tensors.Tensor, minVal float64) {
	ClampOut(out, input, &minVal, nil)
}

// LeakyReLUOut writes input where positive and negSlope*input elsewhere.
// Float dtypes only.
func LeakyReLUOut(out, input *tensors.Tensor, negSlope float64) {
	checkSameDType("LeakyReLUOut", out, input)
	out.Resize(input.Dims())
	switch out.DType() {
	case dtypes.Float32:
		slope := float32(negSlope)
		unaryOutGeneric(out, input, func(x float32) float32 {
			if x < 0 {
				return slope * x
			}
			return x
		})
	case dtypes.Float64:
		unaryOutGeneric(out, input, func(x float64) float64 {
			if x < 0 {
				return negSlope * x
			}
			return x
		})
	default:
		exceptions.Panicf("unsupported data type %s for LeakyReLUOut", out.DType())
	}
}

// NaNToNumOut writes input with NaNs replaced by nan, +Inf by posInf and
// -Inf by negInf into out. Nil replacements default to 0, the dtype's
// largest finite value, and the dtype's smallest finite value. Integer input
// is copied unchanged.
func NaNToNumOut(out, input *tensors.Tensor, nan, posInf, negInf *float64) {
	checkSameDType("NaNToNumOut", out, input)
	out.Resize(input.Dims())
	replace := func(x, maxFinite float64) float64 {
		switch {
		case math.IsNaN(x):
			if nan != nil {
				return *nan
			}
			return 0
		case math.IsInf(x, 1):
			if posInf != nil {
				return *posInf
			}
			return maxFinite
		case math.IsInf(x, -1):
			if negInf != nil {
				return *negInf
			}
			return -maxFinite
		}
		return x
	}
	switch out.DType() {
	case dtypes.Int32, dtypes.Int64:
		copyFlat(out, input, 0, 0, input.Size())
	case dtypes.Float32:
		unaryOutGeneric(out, input, func(x float32) float32 {
			return float32(replace(float64(x), math.MaxFloat32))
		})
	case dtypes.Float64:
		unaryOutGeneric(out, input, func(x float64) float64 {
			return replace(x, math.MaxFloat64)
		})
	default:
		exceptions.Panicf("unsupported data type %s for NaNToNumOut", out.DType())
	}
}
