// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/staticrt/types/tensors"
)

// Matrix multiplication kernels. The inner loops use an i-k-j order so the
// innermost traversal is contiguous over both the right-hand operand and the
// output row.

func matMulAccumulate[T floatPODConstraints](out, lhs, rhs []T, n, m, p int, alpha T) {
	for i := 0; i < n; i++ {
		outRow := out[i*p : (i+1)*p]
		lhsRow := lhs[i*m : (i+1)*m]
		for k := 0; k < m; k++ {
			scale := alpha * lhsRow[k]
			if scale == 0 {
				continue
			}
			rhsRow := rhs[k*p : (k+1)*p]
			for j, v := range rhsRow {
				outRow[j] += scale * v
			}
		}
	}
}

func addMMGeneric[T floatPODConstraints](out, self, mat1, mat2 *tensors.Tensor, beta, alpha T) {
	n, m, p := mat1.Dim(0), mat1.Dim(1), mat2.Dim(1)
	outFlat := tensors.Flat[T](out)
	selfFlat := tensors.Flat[T](self)
	// Initialize with beta*self, broadcasting a rank-1 bias along rows.
	switch {
	case beta == 0:
		for i := range outFlat {
			outFlat[i] = 0
		}
	case self.Rank() == 1:
		for i := 0; i < n; i++ {
			row := outFlat[i*p : (i+1)*p]
			for j := range row {
				row[j] = beta * selfFlat[j]
			}
		}
	default:
		for i, v := range selfFlat {
			outFlat[i] = beta * v
		}
	}
	matMulAccumulate(outFlat, tensors.Flat[T](mat1), tensors.Flat[T](mat2), n, m, p, alpha)
}

// AddMMOut writes beta*self + alpha*(mat1 @ mat2) into out. mat1 is [n, m],
// mat2 is [m, p] and self is [n, p] or a rank-1 bias [p].
func AddMMOut(out, self, mat1, mat2 *tensors.Tensor, beta, alpha float64) {
	checkSameDType("AddMMOut", out, self, mat1, mat2)
	if mat1.Rank() != 2 || mat2.Rank() != 2 || mat1.Dim(1) != mat2.Dim(0) {
		exceptions.Panicf("AddMMOut: cannot multiply %s by %s", mat1.Shape(), mat2.Shape())
	}
	n, p := mat1.Dim(0), mat2.Dim(1)
	if !(self.Rank() == 2 && self.Dim(0) == n && self.Dim(1) == p) &&
		!(self.Rank() == 1 && self.Dim(0) == p) {
		exceptions.Panicf("AddMMOut: self %s does not broadcast to [%d %d]", self.Shape(), n, p)
	}
	out.Resize([]int{n, p})
	switch out.DType() {
	case dtypes.Float32:
		addMMGeneric(out, self, mat1, mat2, float32(beta), float32(alpha))
	case dtypes.Float64:
		addMMGeneric(out, self, mat1, mat2, beta, alpha)
	default:
		exceptions.Panicf("unsupported data type %s for AddMMOut", out.DType())
	}
}

func bmmGeneric[T floatPODConstraints](out, lhs, rhs *tensors.Tensor, batch, n, m, p int) {
	outFlat := tensors.Flat[T](out)
	lhsFlat := tensors.Flat[T](lhs)
	rhsFlat := tensors.Flat[T](rhs)
	for i := range outFlat {
		outFlat[i] = 0
	}
	for b := 0; b < batch; b++ {
		matMulAccumulate(
			outFlat[b*n*p:(b+1)*n*p],
			lhsFlat[b*n*m:(b+1)*n*m],
			rhsFlat[b*m*p:(b+1)*m*p],
			n, m, p, 1)
	}
}

// BMMOut writes the batched matrix product of lhs [b, n, m] and rhs [b, m, p]
// into out as [b, n, p].
func BMMOut(out, lhs, rhs *tensors.Tensor) {
	checkSameDType("BMMOut", out, lhs, rhs)
	if lhs.Rank() != 3 || rhs.Rank() != 3 ||
		lhs.Dim(0) != rhs.Dim(0) || lhs.Dim(2) != rhs.Dim(1) {
		exceptions.Panicf("BMMOut: cannot batch-multiply %s by %s", lhs.Shape(), rhs.Shape())
	}
	batch, n, m, p := lhs.Dim(0), lhs.Dim(1), lhs.Dim(2), rhs.Dim(2)
	out.Resize([]int{batch, n, p})
	switch out.DType() {
	case dtypes.Float32:
		bmmGeneric[float32](out, lhs, rhs, batch, n, m, p)
	case dtypes.Float64:
		bmmGeneric[float64](out, lhs, rhs, batch, n, m, p)
	default:
		exceptions.Panicf("unsupported data type %s for BMMOut", out.DType())
	}
}
