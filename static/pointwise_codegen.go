// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

//go:build !purego

package static

import (
	"github.com/gomlx/staticrt/kernels"
)

// Runtime construction of the vectorized pointwise kernels. The kernels
// process fixed-width blocks through array pointers so the compiler can
// unroll and vectorize the inner loop; the block width is 16 lanes, except
// sigmoid which uses 8. The lane math is the kernels package's scalar
// helpers, keeping the vector and fallback paths bit-identical.

const pointwiseCompileSupported = true

func pointwiseVectorWidth(kind pointwiseKind) int {
	if kind == pointwiseSigmoid {
		return 8
	}
	return 16
}

func blocked16(lane func(float32) float32) pointwiseFunc {
	return func(out, input []float32) {
		n := len(input)
		i := 0
		for ; i+16 <= n; i += 16 {
			src := (*[16]float32)(input[i:])
			dst := (*[16]float32)(out[i:])
			for j := range src {
				dst[j] = lane(src[j])
			}
		}
		for ; i < n; i++ {
			out[i] = lane(input[i])
		}
	}
}

func blocked8(lane func(float32) float32) pointwiseFunc {
	return func(out, input []float32) {
		n := len(input)
		i := 0
		for ; i+8 <= n; i += 8 {
			src := (*[8]float32)(input[i:])
			dst := (*[8]float32)(out[i:])
			for j := range src {
				dst[j] = lane(src[j])
			}
		}
		for ; i < n; i++ {
			out[i] = lane(input[i])
		}
	}
}

func buildPointwise(kind pointwiseKind, clamp float64) pointwiseFunc {
	switch kind {
	case pointwiseReLU:
		return blocked16(kernels.ReLU32)
	case pointwiseTanh:
		return blocked16(kernels.Tanh32)
	case pointwiseSigmoid:
		return blocked8(kernels.Sigmoid32)
	case pointwiseLogit:
		return blocked16(func(x float32) float32 {
			return kernels.Logit32(x, clamp)
		})
	}
	return nil
}
