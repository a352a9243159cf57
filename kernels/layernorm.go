// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"math"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/staticrt/types/tensors"
)

func layerNormGeneric[T floatPODConstraints](outFlat, inFlat, weight, bias []T, rows, cols int, eps float64) {
	for r := 0; r < rows; r++ {
		in := inFlat[r*cols : (r+1)*cols]
		out := outFlat[r*cols : (r+1)*cols]
		var sum, sumSq float64
		for _, v := range in {
			x := float64(v)
			sum += x
			sumSq += x * x
		}
		n := float64(cols)
		mean := sum / n
		variance := sumSq/n - mean*mean
		invStd := 1 / math.Sqrt(variance+eps)
		for i, v := range in {
			y := (float64(v) - mean) * invStd
			if weight != nil {
				y *= float64(weight[i])
			}
			if bias != nil {
				y += float64(bias[i])
			}
			out[i] = T(y)
		}
	}
}

// LayerNormOut normalizes input over its trailing normalizedShape dimensions
// into out: per slice, subtract the mean and divide by the standard
// deviation (with eps added to the variance), then apply the optional
// elementwise weight and bias (both shaped normalizedShape, nil to skip).
func LayerNormOut(out, input *tensors.Tensor, normalizedShape []int, weight, bias *tensors.Tensor, eps float64) {
	checkSameDType("LayerNormOut", out, input)
	rank, nRank := input.Rank(), len(normalizedShape)
	if nRank == 0 || nRank > rank {
		exceptions.Panicf("LayerNormOut: normalized shape %v incompatible with input %s",
			normalizedShape, input.Shape())
	}
	for i, d := range normalizedShape {
		if input.Dim(rank-nRank+i) != d {
			exceptions.Panicf("LayerNormOut: normalized shape %v does not match trailing dimensions of %s",
				normalizedShape, input.Shape())
		}
	}
	cols := prod(normalizedShape)
	rows := input.Size() / max(cols, 1)
	if weight != nil && weight.Size() != cols {
		exceptions.Panicf("LayerNormOut: weight %s does not match normalized shape %v",
			weight.Shape(), normalizedShape)
	}
	if bias != nil && bias.Size() != cols {
		exceptions.Panicf("LayerNormOut: bias %s does not match normalized shape %v",
			bias.Shape(), normalizedShape)
	}
	out.Resize(input.Dims())
	switch out.DType() {
	case dtypes.Float32:
		var w, b []float32
		if weight != nil {
			w = tensors.Flat[float32](weight)
		}
		if bias != nil {
			b = tensors.Flat[float32](bias)
		}
		layerNormGeneric(tensors.Flat[float32](out), tensors.Flat[float32](input), w, b, rows, cols, eps)
	case dtypes.Float64:
		var w, b []float64
		if weight != nil {
			w = tensors.Flat[float64](weight)
		}
		if bias != nil {
			b = tensors.Flat[float64](bias)
		}
		layerNormGeneric(tensors.Flat[float64](out), tensors.Flat[float64](input), w, b, rows, cols, eps)
	default:
		exceptions.Panicf("unsupported data type %s for LayerNormOut", out.DType())
	}
}
