// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package values implements Value, the tagged union passed between operators
// of a compiled graph: a tensor, a scalar (int, float, bool), a string, a
// list of ints, a generic list or tuple, a dictionary, or None.
//
// The zero Value is None. Accessors are type-checked: requesting a tag other
// than the stored one panics -- an invalid graph is a programming error, not
// a runtime condition to recover from.
//
// Ownership: a Value placed in an output slot is owned by that slot until
// overwritten. Tensor-valued entries may alias storage across executions when
// an operator reuses the slot's buffer in place.
package values

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"

	"github.com/gomlx/staticrt/types/tensors"
)

// Kind is the tag of a Value.
type Kind int

const (
	KindNone Kind = iota
	KindTensor
	KindInt
	KindFloat
	KindBool
	KindString
	KindIntList
	KindList
	KindTuple
	KindDict
)

var kindNames = [...]string{"None", "Tensor", "Int", "Float", "Bool", "String", "IntList", "List", "Tuple", "Dict"}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// Value is a tagged union. The zero value is None.
type Value struct {
	kind Kind
	num  int64 // Int; Bool stored as 0/1
	f    float64
	str  string
	t    *tensors.Tensor
	list []Value // List and Tuple
	ints []int64
	dict map[DictKey]Value
}

// DictKey is a dictionary key: either a string or an int.
type DictKey struct {
	Str   string
	Int   int64
	IsStr bool
}

// StrKey makes a string dictionary key.
func StrKey(s string) DictKey { return DictKey{Str: s, IsStr: true} }

// IntKey makes an int dictionary key.
func IntKey(i int64) DictKey { return DictKey{Int: i} }

// KeyOf converts a scalar Value into a DictKey. Only string and int values
// are valid keys.
func KeyOf(v Value) DictKey {
	switch v.kind {
	case KindString:
		return StrKey(v.str)
	case KindInt:
		return IntKey(v.num)
	}
	exceptions.Panicf("values.KeyOf: %s cannot be used as a dictionary key", v.kind)
	return DictKey{}
}

// None returns the empty value. Equivalent to Value{}.
func None() Value { return Value{} }

// NewTensor wraps a tensor.
func NewTensor(t *tensors.Tensor) Value { return Value{kind: KindTensor, t: t} }

// NewInt wraps an int scalar.
func NewInt(i int64) Value { return Value{kind: KindInt, num: i} }

// NewFloat wraps a float scalar.
func NewFloat(f float64) Value { return Value{kind: KindFloat, f: f} }

// NewBool wraps a bool scalar.
func NewBool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

// NewString wraps a string.
func NewString(s string) Value { return Value{kind: KindString, str: s} }

// NewIntList wraps a list of ints. The slice is not copied.
func NewIntList(ints []int64) Value { return Value{kind: KindIntList, ints: ints} }

// NewDType wraps a dtype -- stored as an int scalar, like any other
// compile-time enum operand.
func NewDType(dtype dtypes.DType) Value { return NewInt(int64(dtype)) }

// NewMemoryFormat wraps a memory format -- stored as an int scalar.
func NewMemoryFormat(format tensors.MemoryFormat) Value { return NewInt(int64(format)) }

// NewList wraps a generic list. The slice is not copied.
func NewList(elements []Value) Value { return Value{kind: KindList, list: elements} }

// NewTuple wraps a tuple. The slice is not copied.
func NewTuple(elements []Value) Value { return Value{kind: KindTuple, list: elements} }

// NewDict wraps a dictionary. The map is not copied.
func NewDict(entries map[DictKey]Value) Value { return Value{kind: KindDict, dict: entries} }

// Kind returns the tag of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNone returns whether the value is empty.
func (v Value) IsNone() bool { return v.kind == KindNone }

// IsTensor returns whether the value holds a tensor.
func (v Value) IsTensor() bool { return v.kind == KindTensor }

func (v Value) check(kind Kind) {
	if v.kind != kind {
		exceptions.Panicf("values.Value: requested %s from a %s value", kind, v.kind)
	}
}

// Tensor returns the held tensor; panics if the value is not a tensor.
func (v Value) Tensor() *tensors.Tensor {
	v.check(KindTensor)
	return v.t
}

// Int returns the held int scalar.
func (v Value) Int() int64 {
	v.check(KindInt)
	return v.num
}

// Float returns the held float scalar.
func (v Value) Float() float64 {
	v.check(KindFloat)
	return v.f
}

// Bool returns the held bool scalar.
func (v Value) Bool() bool {
	v.check(KindBool)
	return v.num != 0
}

// Str returns the held string.
func (v Value) Str() string {
	v.check(KindString)
	return v.str
}

// Scalar returns a numeric scalar (int or float) widened to float64.
func (v Value) Scalar() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.num)
	case KindFloat:
		return v.f
	}
	exceptions.Panicf("values.Value: requested a numeric scalar from a %s value", v.kind)
	return 0
}

// IsScalar returns whether the value is an int or float scalar.
func (v Value) IsScalar() bool { return v.kind == KindInt || v.kind == KindFloat }

// IntList returns the held list of ints. Read-only.
func (v Value) IntList() []int64 {
	v.check(KindIntList)
	return v.ints
}

// IntListAsInts converts the held int list to []int.
func (v Value) IntListAsInts() []int {
	v.check(KindIntList)
	ints := make([]int, len(v.ints))
	for ii, x := range v.ints {
		ints[ii] = int(x)
	}
	return ints
}

// List returns the held list elements. Read-only.
func (v Value) List() []Value {
	v.check(KindList)
	return v.list
}

// Tuple returns the held tuple elements. Read-only.
func (v Value) Tuple() []Value {
	v.check(KindTuple)
	return v.list
}

// TensorList returns the elements of a list value, all of which must be
// tensors.
func (v Value) TensorList() []*tensors.Tensor {
	v.check(KindList)
	ts := make([]*tensors.Tensor, len(v.list))
	for ii, elem := range v.list {
		ts[ii] = elem.Tensor()
	}
	return ts
}

// Dict returns the held dictionary. Read-only.
func (v Value) Dict() map[DictKey]Value {
	v.check(KindDict)
	return v.dict
}

// DType interprets an int scalar as a dtype.
func (v Value) DType() dtypes.DType {
	return dtypes.DType(v.Int())
}

// MemoryFormat interprets an int scalar as a memory format.
func (v Value) MemoryFormat() tensors.MemoryFormat {
	return tensors.MemoryFormat(v.Int())
}

// OptionalTensor returns (tensor, true), or (nil, false) for None.
func (v Value) OptionalTensor() (*tensors.Tensor, bool) {
	if v.IsNone() {
		return nil, false
	}
	return v.Tensor(), true
}

// OptionalInt returns (int, true), or (0, false) for None.
func (v Value) OptionalInt() (int64, bool) {
	if v.IsNone() {
		return 0, false
	}
	return v.Int(), true
}

// OptionalFloat returns (float, true), or (0, false) for None.
func (v Value) OptionalFloat() (float64, bool) {
	if v.IsNone() {
		return 0, false
	}
	return v.Float(), true
}

// OptionalScalar returns a numeric scalar widened to float64, or (0, false)
// for None.
func (v Value) OptionalScalar() (float64, bool) {
	if v.IsNone() {
		return 0, false
	}
	return v.Scalar(), true
}

// OptionalStr returns (string, true), or ("", false) for None.
func (v Value) OptionalStr() (string, bool) {
	if v.IsNone() {
		return "", false
	}
	return v.Str(), true
}

// OptionalIntList returns (ints, true), or (nil, false) for None.
func (v Value) OptionalIntList() ([]int64, bool) {
	if v.IsNone() {
		return nil, false
	}
	return v.IntList(), true
}

// OptionalDType returns (dtype, true), or (InvalidDType, false) for None.
func (v Value) OptionalDType() (dtypes.DType, bool) {
	if v.IsNone() {
		return dtypes.InvalidDType, false
	}
	return v.DType(), true
}

// OptionalMemoryFormat returns (format, true), or (FormatPreserve, false) for
// None.
func (v Value) OptionalMemoryFormat() (tensors.MemoryFormat, bool) {
	if v.IsNone() {
		return tensors.FormatPreserve, false
	}
	return v.MemoryFormat(), true
}
