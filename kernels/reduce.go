// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"math"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/staticrt/types/tensors"
)

// reductionLayout resolves which axes a reduction removes and returns the
// output dimensions plus, aligned to the input rank, the output stride each
// input axis contributes (0 for reduced axes). Iterating the input in flat
// order while accumulating these strides yields the output index of every
// element.
func reductionLayout(inDims []int, axes []int, keepDims bool) (outDims, outStrides []int, reduced []bool) {
	rank := len(inDims)
	reduced = make([]bool, rank)
	if len(axes) == 0 {
		for i := range reduced {
			reduced[i] = true
		}
	}
	for _, axis := range axes {
		if axis < 0 {
			axis += rank
		}
		if axis < 0 || axis >= rank {
			exceptions.Panicf("reduction axis %d out-of-bounds for rank %d", axis, rank)
		}
		if reduced[axis] {
			exceptions.Panicf("reduction axis %d given twice", axis)
		}
		reduced[axis] = true
	}
	outDims = make([]int, 0, rank)
	for axis, d := range inDims {
		if !reduced[axis] {
			outDims = append(outDims, d)
		} else if keepDims {
			outDims = append(outDims, 1)
		}
	}
	outStrides = make([]int, rank)
	stride := 1
	for axis := rank - 1; axis >= 0; axis-- {
		if reduced[axis] {
			continue
		}
		outStrides[axis] = stride
		stride *= inDims[axis]
	}
	return
}

func sumGeneric[T numericPODConstraints](outFlat, inFlat []T, inDims, outStrides []int) {
	coords := make([]int, len(inDims))
	outIdx := 0
	for _, v := range inFlat {
		outFlat[outIdx] += v
		for axis := len(inDims) - 1; axis >= 0; axis-- {
			coords[axis]++
			outIdx += outStrides[axis]
			if coords[axis] < inDims[axis] {
				break
			}
			coords[axis] = 0
			outIdx -= outStrides[axis] * inDims[axis]
		}
	}
}

// SumOut reduces input by summation over axes (all axes when empty) into
// out, keeping reduced axes as size-1 dimensions when keepDims is set.
func SumOut(out, input *tensors.Tensor, axes []int, keepDims bool) {
	checkSameDType("SumOut", out, input)
	outDims, outStrides, _ := reductionLayout(input.Dims(), axes, keepDims)
	out.Resize(outDims)
	switch out.DType() {
	case dtypes.Int32:
		flat := tensors.Flat[int32](out)
		clear(flat)
		sumGeneric(flat, tensors.Flat[int32](input), input.Dims(), outStrides)
	case dtypes.Int64:
		flat := tensors.Flat[int64](out)
		clear(flat)
		sumGeneric(flat, tensors.Flat[int64](input), input.Dims(), outStrides)
	case dtypes.Float32:
		flat := tensors.Flat[float32](out)
		clear(flat)
		sumGeneric(flat, tensors.Flat[float32](input), input.Dims(), outStrides)
	case dtypes.Float64:
		flat := tensors.Flat[float64](out)
		clear(flat)
		sumGeneric(flat, tensors.Flat[float64](input), input.Dims(), outStrides)
	default:
		exceptions.Panicf("unsupported data type %s for SumOut", out.DType())
	}
}

func normAccumulate[T floatPODConstraints](acc []float64, inFlat []T, inDims, outStrides []int, p float64) {
	coords := make([]int, len(inDims))
	outIdx := 0
	for _, v := range inFlat {
		x := math.Abs(float64(v))
		switch {
		case math.IsInf(p, 1):
			acc[outIdx] = math.Max(acc[outIdx], x)
		case math.IsInf(p, -1):
			acc[outIdx] = math.Min(acc[outIdx], x)
		case p == 0:
			if x != 0 {
				acc[outIdx]++
			}
		case p == 1:
			acc[outIdx] += x
		case p == 2:
			acc[outIdx] += x * x
		default:
			acc[outIdx] += math.Pow(x, p)
		}
		for axis := len(inDims) - 1; axis >= 0; axis-- {
			coords[axis]++
			outIdx += outStrides[axis]
			if coords[axis] < inDims[axis] {
				break
			}
			coords[axis] = 0
			outIdx -= outStrides[axis] * inDims[axis]
		}
	}
}

// NormOut reduces input to its p-norm over axes (all axes when empty) into
// out. p may be 0 (count of non-zeros), 1, 2, any positive power, or +/-Inf
// (largest and smallest absolute value). Float dtypes only.
func NormOut(out, input *tensors.Tensor, p float64, axes []int, keepDims bool) {
	checkSameDType("NormOut", out, input)
	outDims, outStrides, _ := reductionLayout(input.Dims(), axes, keepDims)
	out.Resize(outDims)
	acc := make([]float64, out.Size())
	if math.IsInf(p, -1) {
		for i := range acc {
			acc[i] = math.Inf(1)
		}
	}
	switch input.DType() {
	case dtypes.Float32:
		normAccumulate(acc, tensors.Flat[float32](input), input.Dims(), outStrides, p)
	case dtypes.Float64:
		normAccumulate(acc, tensors.Flat[float64](input), input.Dims(), outStrides, p)
	default:
		exceptions.Panicf("unsupported data type %s for NormOut", input.DType())
	}
	if !math.IsInf(p, 0) && p != 0 && p != 1 {
		exp := 1 / p
		if p == 2 {
			for i, v := range acc {
				acc[i] = math.Sqrt(v)
			}
		} else {
			for i, v := range acc {
				acc[i] = math.Pow(v, exp)
			}
		}
	}
	outFlat := out.Flat()
	for i, v := range acc {
		storeFloat64(outFlat, i, v)
	}
}

func argMinGeneric[T numericPODConstraints](outFlat []int64, inFlat []T, inDims, outStrides []int, axis int) {
	best := make([]T, len(outFlat))
	coords := make([]int, len(inDims))
	outIdx := 0
	for _, v := range inFlat {
		along := coords[axis]
		if along == 0 || v < best[outIdx] {
			best[outIdx] = v
			outFlat[outIdx] = int64(along)
		}
		for ax := len(inDims) - 1; ax >= 0; ax-- {
			coords[ax]++
			outIdx += outStrides[ax]
			if coords[ax] < inDims[ax] {
				break
			}
			coords[ax] = 0
			outIdx -= outStrides[ax] * inDims[ax]
		}
	}
}

// ArgMinOut writes the index of the smallest element along axis into out,
// which must be Int64. A nil axis reduces over all elements, producing a
// scalar index into the flattened input.
func ArgMinOut(out, input *tensors.Tensor, axis *int, keepDims bool) {
	if out.DType() != dtypes.Int64 {
		exceptions.Panicf("ArgMinOut: output must be Int64, got %s", out.DType())
	}
	inDims := input.Dims()
	reduceAxis := 0
	if axis == nil {
		// Flatten, then reduce the single axis.
		inDims = []int{input.Size()}
		keepDims = false
	} else {
		reduceAxis = *axis
		if reduceAxis < 0 {
			reduceAxis += len(inDims)
		}
	}
	if input.Size() == 0 {
		exceptions.Panicf("ArgMinOut: cannot reduce an empty tensor")
	}
	outDims, outStrides, _ := reductionLayout(inDims, []int{reduceAxis}, keepDims)
	out.Resize(outDims)
	outFlat := tensors.Flat[int64](out)
	switch input.DType() {
	case dtypes.Int32:
		argMinGeneric(outFlat, tensors.Flat[int32](input), inDims, outStrides, reduceAxis)
	case dtypes.Int64:
		argMinGeneric(outFlat, tensors.Flat[int64](input), inDims, outStrides, reduceAxis)
	case dtypes.Float32:
		argMinGeneric(outFlat, tensors.Flat[float32](input), inDims, outStrides, reduceAxis)
	case dtypes.Float64:
		argMinGeneric(outFlat, tensors.Flat[float64](input), inDims, outStrides, reduceAxis)
	default:
		exceptions.Panicf("unsupported data type %s for ArgMinOut", input.DType())
	}
}
