// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/gomlx/staticrt/types/tensors"
	"github.com/x448/float16"
)

// ResultType returns the dtype arithmetic between values of dtype a and b
// promotes to. Floating point beats integer, wider beats narrower, and
// mixing signed with unsigned promotes to a signed type wide enough for both.
func ResultType(a, b dtypes.DType) dtypes.DType {
	if a == b {
		return a
	}
	aFloat, bFloat := a.IsFloat(), b.IsFloat()
	if aFloat && bFloat {
		if a.Memory() != b.Memory() {
			if a.Memory() > b.Memory() {
				return a
			}
			return b
		}
		// Same width but different types (Float16 vs BFloat16).
		return dtypes.Float32
	}
	if aFloat {
		return a
	}
	if bFloat {
		return b
	}
	if a == dtypes.Bool {
		return b
	}
	if b == dtypes.Bool {
		return a
	}
	if a.IsUnsigned() == b.IsUnsigned() {
		if a.Memory() > b.Memory() {
			return a
		}
		return b
	}
	// Mixed signedness: the smallest signed type that holds both.
	signed, unsigned := a, b
	if a.IsUnsigned() {
		signed, unsigned = b, a
	}
	bytes := max(signed.Memory(), unsigned.Memory()*2)
	switch {
	case bytes <= 2:
		return dtypes.Int16
	case bytes <= 4:
		return dtypes.Int32
	default:
		return dtypes.Int64
	}
}

// loadFloat64 reads element i of a flat storage slice as a float64.
func loadFloat64(flat any, i int) float64 {
	switch s := flat.(type) {
	case []bool:
		if s[i] {
			return 1
		}
		return 0
	case []int8:
		return float64(s[i])
	case []int16:
		return float64(s[i])
	case []int32:
		return float64(s[i])
	case []int64:
		return float64(s[i])
	case []uint8:
		return float64(s[i])
	case []uint16:
		return float64(s[i])
	case []uint32:
		return float64(s[i])
	case []uint64:
		return float64(s[i])
	case []float16.Float16:
		return float64(s[i].Float32())
	case []bfloat16.BFloat16:
		return float64(s[i].Float32())
	case []float32:
		return float64(s[i])
	case []float64:
		return s[i]
	}
	exceptions.Panicf("unsupported flat storage type %T", flat)
	return 0
}

// storeFloat64 writes v into element i of a flat storage slice, converting to
// its element type.
func storeFloat64(flat any, i int, v float64) {
	switch s := flat.(type) {
	case []bool:
		s[i] = v != 0
	case []int8:
		s[i] = int8(v)
	case []int16:
		s[i] = int16(v)
	case []int32:
		s[i] = int32(v)
	case []int64:
		s[i] = int64(v)
	case []uint8:
		s[i] = uint8(v)
	case []uint16:
		s[i] = uint16(v)
	case []uint32:
		s[i] = uint32(v)
	case []uint64:
		s[i] = uint64(v)
	case []float16.Float16:
		s[i] = float16.Fromfloat32(float32(v))
	case []bfloat16.BFloat16:
		s[i] = bfloat16.FromFloat32(float32(v))
	case []float32:
		s[i] = float32(v)
	case []float64:
		s[i] = v
	default:
		exceptions.Panicf("unsupported flat storage type %T", flat)
	}
}

// FillScalar sets every element of t to v, converted to t's dtype.
func FillScalar(t *tensors.Tensor, v float64) {
	flat := t.Flat()
	for i := 0; i < t.Size(); i++ {
		storeFloat64(flat, i, v)
	}
}

// CastCopyOut copies input into out, converting elements to out's dtype.
// The output keeps its own dtype and is resized to input's dimensions.
func CastCopyOut(out, input *tensors.Tensor) {
	out.Resize(input.Dims())
	if out.DType() == input.DType() {
		copyFlat(out, input, 0, 0, input.Size())
		return
	}
	inFlat, outFlat := input.Flat(), out.Flat()
	// Direct conversions for the common float pairs, float64 path otherwise.
	switch in := inFlat.(type) {
	case []float32:
		switch o := outFlat.(type) {
		case []float16.Float16:
			for i, v := range in {
				o[i] = float16.Fromfloat32(v)
			}
			return
		case []bfloat16.BFloat16:
			for i, v := range in {
				o[i] = bfloat16.FromFloat32(v)
			}
			return
		}
	case []float16.Float16:
		if o, ok := outFlat.([]float32); ok {
			for i, v := range in {
				o[i] = v.Float32()
			}
			return
		}
	case []bfloat16.BFloat16:
		if o, ok := outFlat.([]float32); ok {
			for i, v := range in {
				o[i] = v.Float32()
			}
			return
		}
	}
	for i := 0; i < input.Size(); i++ {
		storeFloat64(outFlat, i, loadFloat64(inFlat, i))
	}
}
