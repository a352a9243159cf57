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
	outVariants.Register(graph.OpTypeClamp, makeClamp)
	outVariants.Register(graph.OpTypeClampMin, makeClampMin)
	outVariants.Register(graph.OpTypeLeakyReLU, makeLeakyReLU)
	outVariants.Register(graph.OpTypeNaNToNum, makeNaNToNum)
	outVariants.Register(graph.OpTypeReLU, makeReLU)
	outVariants.Register(graph.OpTypeTanh, makeTanh)
	outVariants.Register(graph.OpTypeSigmoid, makeSigmoid)
	outVariants.Register(graph.OpTypeLogit, makeLogit)
}

func makeClamp(node *graph.Node) Executor {
	return func(r *Record) {
		input := inputTensor(r, 0)
		var lo, hi *float64
		if r.NumInputs() > 1 {
			lo = optFloat(r.Input(1))
		}
		if r.NumInputs() > 2 {
			hi = optFloat(r.Input(2))
		}
		out := r.OutputTensor(0, input.DType(), tensors.FormatContiguous)
		kernels.ClampOut(out, input, lo, hi)
	}
}

func makeClampMin(node *graph.Node) Executor {
	return func(r *Record) {
		input := inputTensor(r, 0)
		out := r.OutputTensor(0, input.DType(), tensors.FormatContiguous)
		kernels.ClampMinOut(out, input, r.Input(1).Scalar())
	}
}

// makeLeakyReLU reuses the retained buffer without the logical shrink: the
// output has the input's dimensions every run, so the kernel's resize is
// enough.
func makeLeakyReLU(node *graph.Node) Executor {
	return func(r *Record) {
		input := inputTensor(r, 0)
		slope := 0.01
		if r.NumInputs() > 1 {
			if f, ok := r.Input(1).OptionalScalar(); ok {
				slope = f
			}
		}
		out := r.OutputTensorKeepSize(0, input.DType(), tensors.FormatContiguous)
		kernels.LeakyReLUOut(out, input, slope)
	}
}

func makeNaNToNum(node *graph.Node) Executor {
	return func(r *Record) {
		input := inputTensor(r, 0)
		var nan, posInf, negInf *float64
		if r.NumInputs() > 1 {
			nan = optFloat(r.Input(1))
		}
		if r.NumInputs() > 2 {
			posInf = optFloat(r.Input(2))
		}
		if r.NumInputs() > 3 {
			negInf = optFloat(r.Input(3))
		}
		out := r.OutputTensor(0, input.DType(), tensors.FormatContiguous)
		kernels.NaNToNumOut(out, input, nan, posInf, negInf)
	}
}

// The four operators below compile their vector kernel when the executor is
// built and capture it in the closure, so runs take no locks. The kernel
// applies to contiguous Float32 inputs; everything else uses the scalar
// fallback, which shares the same scalar math.

func runPointwise(r *Record, fn pointwiseFunc,
	fallback func(out, input *tensors.Tensor)) {
	input := r.Input(0).Tensor()
	if fn != nil && input.DType() == dtypes.Float32 && input.IsContiguous() {
		out := r.OutputTensor(0, dtypes.Float32, tensors.FormatContiguous)
		out.Resize(input.Dims())
		fn(tensors.Flat[float32](out), tensors.Flat[float32](input))
		return
	}
	input = input.Contiguous()
	out := r.OutputTensor(0, input.DType(), tensors.FormatContiguous)
	fallback(out, input)
}

func makeReLU(node *graph.Node) Executor {
	fn, _ := compiledPointwise(pointwiseReLU, -1)
	return func(r *Record) {
		runPointwise(r, fn, kernels.ReLUOut)
	}
}

func makeTanh(node *graph.Node) Executor {
	fn, _ := compiledPointwise(pointwiseTanh, -1)
	return func(r *Record) {
		runPointwise(r, fn, kernels.TanhOut)
	}
}

func makeSigmoid(node *graph.Node) Executor {
	fn, _ := compiledPointwise(pointwiseSigmoid, -1)
	return func(r *Record) {
		runPointwise(r, fn, kernels.SigmoidOut)
	}
}

// makeLogit keys the compiled kernel by its clamping epsilon: the clamp is
// baked into the compiled expression, so the epsilon argument must be a
// compile-time constant.
func makeLogit(node *graph.Node) Executor {
	eps := -1.0
	if node.NumInputs() > 1 {
		v, ok := node.InputConstant(1)
		if !ok {
			exceptions.Panicf("Logit: the epsilon argument must be a constant, got %s",
				node.Input(1))
		}
		if f, found := v.OptionalScalar(); found {
			eps = f
		}
	}
	fn, _ := compiledPointwise(pointwiseLogit, eps)
	return func(r *Record) {
		runPointwise(r, fn, func(out, input *tensors.Tensor) {
			kernels.LogitOut(out, input, eps)
		})
	}
}
