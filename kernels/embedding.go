// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/staticrt/types/tensors"
)

// Embedding bag reduction modes.
const (
	EmbeddingBagSum = iota
	EmbeddingBagMean
	EmbeddingBagMax
)

// EmbeddingBagOutputs bundles the four output slots of EmbeddingBagOut, each
// resized and filled independently.
type EmbeddingBagOutputs struct {
	// Output is the [bags, dim] reduced embedding, with weight's dtype.
	Output *tensors.Tensor
	// Offset2Bag maps each index position to its bag (Int64).
	Offset2Bag *tensors.Tensor
	// BagSize holds the number of non-padding indices per bag (Int64).
	BagSize *tensors.Tensor
	// MaxIndices holds, for the max mode, the weight row selected per output
	// element ([bags, dim], Int64, -1 for empty bags); it is resized to zero
	// elements for the other modes.
	MaxIndices *tensors.Tensor
}

func embeddingBagGeneric[T floatPODConstraints](outs EmbeddingBagOutputs, weightFlat []T,
	rows, dim int, idx, bagStarts []int, mode int, sampleWeights []T, paddingIdx int) {
	bags := len(bagStarts) - 1
	outFlat := tensors.Flat[T](outs.Output)
	clear(outFlat)
	offset2bag := tensors.Flat[int64](outs.Offset2Bag)
	bagSize := tensors.Flat[int64](outs.BagSize)
	var maxIndices []int64
	if mode == EmbeddingBagMax {
		maxIndices = tensors.Flat[int64](outs.MaxIndices)
		for i := range maxIndices {
			maxIndices[i] = -1
		}
	}
	for b := 0; b < bags; b++ {
		outRow := outFlat[b*dim : (b+1)*dim]
		count := 0
		for i := bagStarts[b]; i < bagStarts[b+1]; i++ {
			offset2bag[i] = int64(b)
			row := idx[i]
			if row < 0 || row >= rows {
				exceptions.Panicf("EmbeddingBagOut: index %d out of range for %d embedding rows", row, rows)
			}
			if row == paddingIdx {
				continue
			}
			wRow := weightFlat[row*dim : (row+1)*dim]
			switch mode {
			case EmbeddingBagMax:
				if count == 0 {
					copy(outRow, wRow)
					for d := range outRow {
						maxIndices[b*dim+d] = int64(row)
					}
				} else {
					for d, v := range wRow {
						if v > outRow[d] {
							outRow[d] = v
							maxIndices[b*dim+d] = int64(row)
						}
					}
				}
			default:
				scale := T(1)
				if sampleWeights != nil {
					scale = sampleWeights[i]
				}
				for d, v := range wRow {
					outRow[d] += scale * v
				}
			}
			count++
		}
		bagSize[b] = int64(count)
		if mode == EmbeddingBagMean && count > 0 {
			inv := T(1) / T(count)
			for d := range outRow {
				outRow[d] *= inv
			}
		}
	}
}

// EmbeddingBagOut gathers rows of weight selected by indices, reduces them
// per bag delimited by offsets, and writes the four outputs in outs.
// perSampleWeights (sum mode only) scales each gathered row and may be nil.
// paddingIdx, when non-nil, names a weight row excluded from the reduction
// and from the bag sizes.
func EmbeddingBagOut(outs EmbeddingBagOutputs, weight, indices, offsets *tensors.Tensor,
	mode int, perSampleWeights *tensors.Tensor, includeLastOffset bool, paddingIdx *int) {
	if weight.Rank() != 2 {
		exceptions.Panicf("EmbeddingBagOut: weight must be rank-2, got %s", weight.Shape())
	}
	if indices.Rank() != 1 || offsets.Rank() != 1 {
		exceptions.Panicf("EmbeddingBagOut: indices and offsets must be rank-1, got %s and %s",
			indices.Shape(), offsets.Shape())
	}
	if perSampleWeights != nil && mode != EmbeddingBagSum {
		exceptions.Panicf("EmbeddingBagOut: per-sample weights require the sum mode")
	}
	rows, dim := weight.Dim(0), weight.Dim(1)
	idx := indexValues(indices)
	bagStarts := append(indexValues(offsets), 0)
	if includeLastOffset {
		if len(bagStarts) < 2 {
			exceptions.Panicf("EmbeddingBagOut: offsets must have at least one entry beyond the last bag")
		}
		bagStarts = bagStarts[:len(bagStarts)-1]
	} else {
		bagStarts[len(bagStarts)-1] = len(idx)
	}
	bags := len(bagStarts) - 1
	for b := 0; b < bags; b++ {
		if bagStarts[b] > bagStarts[b+1] || bagStarts[b+1] > len(idx) {
			exceptions.Panicf("EmbeddingBagOut: offsets %v are not monotonic over %d indices",
				bagStarts[:bags+1], len(idx))
		}
	}
	padding := -1
	if paddingIdx != nil {
		padding = *paddingIdx
		if padding < 0 {
			padding += rows
		}
	}

	outs.Output.Resize([]int{bags, dim})
	outs.Offset2Bag.Resize([]int{len(idx)})
	outs.BagSize.Resize([]int{bags})
	if mode == EmbeddingBagMax {
		outs.MaxIndices.Resize([]int{bags, dim})
	} else {
		outs.MaxIndices.Resize([]int{0})
	}

	switch weight.DType() {
	case dtypes.Float32:
		var sw []float32
		if perSampleWeights != nil {
			sw = tensors.Flat[float32](perSampleWeights)
		}
		embeddingBagGeneric(outs, tensors.Flat[float32](weight), rows, dim, idx, bagStarts, mode, sw, padding)
	case dtypes.Float64:
		var sw []float64
		if perSampleWeights != nil {
			sw = tensors.Flat[float64](perSampleWeights)
		}
		embeddingBagGeneric(outs, tensors.Flat[float64](weight), rows, dim, idx, bagStarts, mode, sw, padding)
	default:
		exceptions.Panicf("unsupported data type %s for EmbeddingBagOut", weight.DType())
	}
}
