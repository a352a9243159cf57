// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package static

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/staticrt/graph"
	"github.com/gomlx/staticrt/kernels"
	"github.com/gomlx/staticrt/types/tensors"
)

func init() {
	outVariants.Register(graph.OpTypeMul, makeMul)
	outVariants.Register(graph.OpTypeDiv, makeDiv)
	outVariants.Register(graph.OpTypeSub, makeSub)
	outVariants.Register(graph.OpTypePow, makePow)
	outVariants.Register(graph.OpTypeAddMM, makeAddMM)
	outVariants.Register(graph.OpTypeBMM, makeBMM)
}

func makeMul(node *graph.Node) Executor {
	operandA, operandB := operandTensor(node, 0), operandTensor(node, 1)
	return func(r *Record) {
		dtype := commonDType(r.Input(0), r.Input(1))
		out := r.OutputTensor(0, dtype, tensors.FormatContiguous)
		kernels.MulOut(out, operandA(r, dtype), operandB(r, dtype))
	}
}

// makeDiv handles both the 2-argument form and the 3-argument form with a
// rounding mode. True division of integer operands promotes to Float32.
func makeDiv(node *graph.Node) Executor {
	operandA, operandB := operandTensor(node, 0), operandTensor(node, 1)
	return func(r *Record) {
		mode := kernels.RoundingNone
		if r.NumInputs() > 2 {
			if s, ok := r.Input(2).OptionalStr(); ok {
				mode = s
			}
		}
		dtype := commonDType(r.Input(0), r.Input(1))
		if mode == kernels.RoundingNone && !dtype.IsFloat() {
			dtype = dtypes.Float32
		}
		out := r.OutputTensor(0, dtype, tensors.FormatContiguous)
		kernels.DivOut(out, operandA(r, dtype), operandB(r, dtype), mode)
	}
}

func makeSub(node *graph.Node) Executor {
	operandA, operandB := operandTensor(node, 0), operandTensor(node, 1)
	return func(r *Record) {
		alpha := 1.0
		if r.NumInputs() > 2 {
			if f, ok := r.Input(2).OptionalScalar(); ok {
				alpha = f
			}
		}
		dtype := commonDType(r.Input(0), r.Input(1))
		out := r.OutputTensor(0, dtype, tensors.FormatContiguous)
		kernels.SubOut(out, operandA(r, dtype), operandB(r, dtype), alpha)
	}
}

// makePow covers the tensor^tensor, tensor^scalar and scalar^tensor forms,
// promoting both operands to their common dtype.
func makePow(node *graph.Node) Executor {
	operandA, operandB := operandTensor(node, 0), operandTensor(node, 1)
	return func(r *Record) {
		dtype := commonDType(r.Input(0), r.Input(1))
		out := r.OutputTensor(0, dtype, tensors.FormatContiguous)
		kernels.PowOut(out, operandA(r, dtype), operandB(r, dtype))
	}
}

func makeAddMM(node *graph.Node) Executor {
	return func(r *Record) {
		self := inputTensor(r, 0)
		mat1 := inputTensor(r, 1)
		mat2 := inputTensor(r, 2)
		beta, alpha := 1.0, 1.0
		if r.NumInputs() > 3 {
			if f, ok := r.Input(3).OptionalScalar(); ok {
				beta = f
			}
		}
		if r.NumInputs() > 4 {
			if f, ok := r.Input(4).OptionalScalar(); ok {
				alpha = f
			}
		}
		out := r.OutputTensor(0, mat1.DType(), tensors.FormatContiguous)
		kernels.AddMMOut(out, self, mat1, mat2, beta, alpha)
	}
}

func makeBMM(node *graph.Node) Executor {
	return func(r *Record) {
		lhs := inputTensor(r, 0)
		rhs := inputTensor(r, 1)
		out := r.OutputTensor(0, lhs.DType(), tensors.FormatContiguous)
		kernels.BMMOut(out, lhs, rhs)
	}
}
