// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package graph

// TypeKind is the top-level classification of a static value type.
type TypeKind int

const (
	KindInvalid TypeKind = iota
	KindNone
	KindTensor
	KindInt
	KindFloat
	KindBool
	KindString
	KindList
	KindTuple
	KindDict
)

var typeKindNames = []string{
	"Invalid", "None", "Tensor", "Int", "Float", "Bool", "String", "List", "Tuple", "Dict"}

func (k TypeKind) String() string {
	if k < 0 || int(k) >= len(typeKindNames) {
		return "Invalid"
	}
	return typeKindNames[k]
}

// Type is the static type of a graph value, known at compile time.
// For containers, Elems holds the element types: one element for lists
// (the homogeneous element type), one per position for tuples, and
// two for dicts (key and value).
type Type struct {
	Kind  TypeKind
	Elems []Type
}

func TensorType() Type { return Type{Kind: KindTensor} }
func IntType() Type    { return Type{Kind: KindInt} }
func FloatType() Type  { return Type{Kind: KindFloat} }
func BoolType() Type   { return Type{Kind: KindBool} }
func StringType() Type { return Type{Kind: KindString} }
func NoneType() Type   { return Type{Kind: KindNone} }

// ListOf returns the type of a homogeneous list with the given element type.
func ListOf(elem Type) Type { return Type{Kind: KindList, Elems: []Type{elem}} }

// TupleOf returns the type of a tuple with the given element types.
func TupleOf(elems ...Type) Type { return Type{Kind: KindTuple, Elems: elems} }

// DictOf returns the type of a dict with the given key and value types.
func DictOf(key, value Type) Type { return Type{Kind: KindDict, Elems: []Type{key, value}} }

// IsTensor reports whether the type is a tensor.
func (t Type) IsTensor() bool { return t.Kind == KindTensor }

// Element returns the element type of a list, or an invalid type otherwise.
func (t Type) Element() Type {
	if t.Kind == KindList && len(t.Elems) == 1 {
		return t.Elems[0]
	}
	return Type{}
}

// ContainsTensor reports whether the type is a tensor or a container that
// holds a tensor at any depth.
func (t Type) ContainsTensor() bool {
	if t.Kind == KindTensor {
		return true
	}
	for _, e := range t.Elems {
		if e.ContainsTensor() {
			return true
		}
	}
	return false
}
