// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package static

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/staticrt/graph"
	"github.com/gomlx/staticrt/kernels"
	"github.com/gomlx/staticrt/types/shapes"
	"github.com/gomlx/staticrt/types/tensors"
	"github.com/gomlx/staticrt/types/values"
)

// Argument plumbing shared by the kernels' executors.

// inputTensor returns input i as a contiguous tensor.
func inputTensor(r *Record, i int) *tensors.Tensor {
	return r.Input(i).Tensor().Contiguous()
}

// castContiguous returns t converted to dtype (and contiguous); t itself
// when it already matches.
func castContiguous(t *tensors.Tensor, dtype dtypes.DType) *tensors.Tensor {
	t = t.Contiguous()
	if t.DType() == dtype {
		return t
	}
	converted := tensors.New(shapes.Make(dtype, t.Dims()...))
	kernels.CastCopyOut(converted, t)
	return converted
}

// scalarTensor materializes a scalar as a 0-dimensional tensor of dtype.
func scalarTensor(dtype dtypes.DType, v float64) *tensors.Tensor {
	t := tensors.New(shapes.Make(dtype))
	kernels.FillScalar(t, v)
	return t
}

// asTensor resolves a tensor-or-scalar argument to a contiguous tensor of
// dtype.
func asTensor(v values.Value, dtype dtypes.DType) *tensors.Tensor {
	if v.IsTensor() {
		return castContiguous(v.Tensor(), dtype)
	}
	return scalarTensor(dtype, v.Scalar())
}

// operandTensor builds the resolver for a tensor-or-scalar operand of node's
// i-th input. A constant operand is materialized once per promoted dtype and
// reused across runs, so it costs steady-state runs no allocation; runtime
// operands resolve on every run.
func operandTensor(node *graph.Node, i int) func(*Record, dtypes.DType) *tensors.Tensor {
	v, ok := node.InputConstant(i)
	if !ok {
		return func(r *Record, dtype dtypes.DType) *tensors.Tensor {
			return asTensor(r.Input(i), dtype)
		}
	}
	memo := make(map[dtypes.DType]*tensors.Tensor)
	return func(_ *Record, dtype dtypes.DType) *tensors.Tensor {
		t, found := memo[dtype]
		if !found {
			t = asTensor(v, dtype)
			memo[dtype] = t
		}
		return t
	}
}

// commonDType resolves the dtype binary arithmetic on the two operands
// promotes to. Scalars are weak: an int scalar adopts the tensor's dtype,
// and a float scalar only forces Float32 on integer tensors.
func commonDType(a, b values.Value) dtypes.DType {
	switch {
	case a.IsTensor() && b.IsTensor():
		return kernels.ResultType(a.Tensor().DType(), b.Tensor().DType())
	case a.IsTensor():
		return scalarOperandDType(a.Tensor().DType(), b)
	case b.IsTensor():
		return scalarOperandDType(b.Tensor().DType(), a)
	}
	return dtypes.Float32
}

func scalarOperandDType(tensorDType dtypes.DType, scalar values.Value) dtypes.DType {
	if scalar.Kind() == values.KindFloat && !tensorDType.IsFloat() {
		return dtypes.Float32
	}
	return tensorDType
}

// optFloat reads an optional scalar argument, nil when the value is None.
func optFloat(v values.Value) *float64 {
	if f, ok := v.OptionalScalar(); ok {
		return &f
	}
	return nil
}

// optInt reads an optional integer argument, nil when the value is None.
func optInt(v values.Value) *int {
	if i, ok := v.OptionalInt(); ok {
		n := int(i)
		return &n
	}
	return nil
}

// intListArg reads an int-list argument as []int.
func intListArg(v values.Value) []int {
	return v.IntListAsInts()
}
