// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package static

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/staticrt/graph"
	"github.com/gomlx/staticrt/kernels"
	"github.com/gomlx/staticrt/types/tensors"
)

func init() {
	outVariants.Register(graph.OpTypeSum, makeSum)
	outVariants.Register(graph.OpTypeNorm, makeNorm)
	outVariants.Register(graph.OpTypeArgMin, makeArgMin)
}

// makeSum covers the overloads (self), (self, dtype) and
// (self, axes, keepdim, dtype).
func makeSum(node *graph.Node) Executor {
	return func(r *Record) {
		input := inputTensor(r, 0)
		var axes []int
		keepDims := false
		dtypeArg := 1
		if r.NumInputs() >= 4 {
			if v := r.Input(1); !v.IsNone() {
				axes = intListArg(v)
			}
			keepDims = r.Input(2).Bool()
			dtypeArg = 3
		}
		dtype := input.DType()
		if r.NumInputs() > dtypeArg {
			if d, ok := r.Input(dtypeArg).OptionalDType(); ok {
				dtype = d
			}
		}
		input = castContiguous(input, dtype)
		out := r.OutputTensor(0, dtype, tensors.FormatContiguous)
		kernels.SumOut(out, input, axes, keepDims)
	}
}

// makeNorm covers (self, p, dtype) and (self, p, axes, keepdim[, dtype]).
// The 2-argument form has no support here.
func makeNorm(node *graph.Node) Executor {
	if n := node.NumInputs(); n <= 2 {
		exceptions.Panicf("Norm takes at least 3 arguments, node has %d", n)
	}
	return func(r *Record) {
		input := inputTensor(r, 0)
		p := 2.0
		if f, ok := r.Input(1).OptionalScalar(); ok {
			p = f
		}
		var axes []int
		keepDims := false
		dtypeArg := 2
		if r.NumInputs() >= 4 {
			if v := r.Input(2); !v.IsNone() {
				axes = intListArg(v)
			}
			keepDims = r.Input(3).Bool()
			dtypeArg = 4
		}
		dtype := input.DType()
		if r.NumInputs() > dtypeArg {
			if d, ok := r.Input(dtypeArg).OptionalDType(); ok {
				dtype = d
			}
		}
		input = castContiguous(input, dtype)
		out := r.OutputTensor(0, dtype, tensors.FormatContiguous)
		kernels.NormOut(out, input, p, axes, keepDims)
	}
}

// makeArgMin always produces an Int64 index tensor.
func makeArgMin(node *graph.Node) Executor {
	return func(r *Record) {
		input := inputTensor(r, 0)
		var axis *int
		keepDims := false
		if r.NumInputs() > 1 {
			axis = optInt(r.Input(1))
		}
		if r.NumInputs() > 2 {
			if b := r.Input(2); !b.IsNone() {
				keepDims = b.Bool()
			}
		}
		out := r.OutputTensor(0, dtypes.Int64, tensors.FormatContiguous)
		kernels.ArgMinOut(out, input, axis, keepDims)
	}
}
