// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"github.com/gomlx/exceptions"
)

// BroadcastDims returns the dimensions resulting from broadcasting a against
// b: ranks are aligned on the right, and on each axis the dimensions must
// match or one of them must be 1 (or missing).
func BroadcastDims(a, b []int) []int {
	rank := max(len(a), len(b))
	dims := make([]int, rank)
	for axis := rank - 1; axis >= 0; axis-- {
		da, db := 1, 1
		if i := axis - (rank - len(a)); i >= 0 {
			da = a[i]
		}
		if i := axis - (rank - len(b)); i >= 0 {
			db = b[i]
		}
		switch {
		case da == db:
			dims[axis] = da
		case da == 1:
			dims[axis] = db
		case db == 1:
			dims[axis] = da
		default:
			exceptions.Panicf("dimensions %v and %v are not broadcastable", a, b)
		}
	}
	return dims
}

// padDims left-pads dims with 1s up to rank. It returns dims itself when no
// padding is needed.
func padDims(dims []int, rank int) []int {
	if len(dims) == rank {
		return dims
	}
	padded := make([]int, rank)
	for i := range padded {
		padded[i] = 1
	}
	copy(padded[rank-len(dims):], dims)
	return padded
}

// broadcastIterator iterates over the flat indices of a tensor being
// broadcast to a larger shape: on broadcast axes the same slice of the tensor
// is revisited instead of advancing.
type broadcastIterator struct {
	flatIdx     int
	perAxesIdx  []int
	targetDims  []int
	isBroadcast []bool
	strides     []int
}

// newBroadcastIterator iterates the flat indices of a tensor with dimensions
// fromDims as it is broadcast to toDims. fromDims may have a smaller rank, it
// is aligned on the right.
func newBroadcastIterator(fromDims, toDims []int) *broadcastIterator {
	rank := len(toDims)
	fromDims = padDims(fromDims, rank)
	bi := &broadcastIterator{
		perAxesIdx:  make([]int, rank),
		targetDims:  toDims,
		isBroadcast: make([]bool, rank),
		strides:     make([]int, rank),
	}
	stride := 1
	for axis := rank - 1; axis >= 0; axis-- {
		bi.strides[axis] = stride
		stride *= fromDims[axis]
		bi.isBroadcast[axis] = fromDims[axis] != toDims[axis]
	}
	return bi
}

func (bi *broadcastIterator) Next() (flatIdx int) {
	flatIdx = bi.flatIdx
	bi.flatIdx++
	rank := len(bi.perAxesIdx)
	for axis := rank - 1; axis >= 0; axis-- {
		bi.perAxesIdx[axis]++
		if bi.perAxesIdx[axis] < bi.targetDims[axis] {
			if bi.isBroadcast[axis] {
				// Revisit the same slice of the source tensor on this axis.
				bi.flatIdx -= bi.strides[axis]
			}
			break
		}
		bi.perAxesIdx[axis] = 0
	}
	return
}
