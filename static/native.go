// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package static

import (
	"math"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/staticrt/graph"
	"github.com/gomlx/staticrt/kernels"
	"github.com/gomlx/staticrt/types/tensors"
	"github.com/gomlx/staticrt/types/values"
)

// The native fallback executor. It covers the structural operators that need
// no buffer reuse: views, reshapes, containers and scalar plumbing all
// produce fresh values every run. Dispatch is a closed switch over the
// operator set declared in nativeOps; kernels cannot be added to it at run
// time.
func makeNativeExecutor(node *graph.Node) Executor {
	if !CanRunNatively(node) {
		exceptions.Panicf("operator %s cannot run natively", node.Op())
	}
	switch node.Op() {
	case graph.OpTypeTranspose:
		return execNativeTranspose
	case graph.OpTypeFlatten:
		return execNativeFlatten
	case graph.OpTypeReshape:
		return execNativeReshape
	case graph.OpTypePermute:
		return execNativePermute
	case graph.OpTypeSlice:
		return execNativeSlice
	case graph.OpTypeNarrow:
		return execNativeNarrow
	case graph.OpTypeTo:
		return execNativeTo
	case graph.OpTypeListConstruct:
		return execNativeListConstruct
	case graph.OpTypeListUnpack:
		return execNativeListUnpack
	case graph.OpTypeTupleConstruct:
		return execNativeTupleConstruct
	case graph.OpTypeDictConstruct:
		return execNativeDictConstruct
	case graph.OpTypeGetItem:
		return execNativeGetItem
	}
	exceptions.Panicf("operator %s missing from the native executor switch", node.Op())
	return nil
}

func execNativeTranspose(r *Record) {
	t := r.Input(0).Tensor()
	axis0 := int(r.Input(1).Int())
	axis1 := int(r.Input(2).Int())
	r.SetOutput(0, values.NewTensor(t.Transpose(axis0, axis1)))
}

// execNativeFlatten returns a view when the input is contiguous, a compact
// copy otherwise.
func execNativeFlatten(r *Record) {
	t := r.Input(0).Tensor()
	start, end := 0, -1
	if r.NumInputs() > 1 {
		start = int(r.Input(1).Int())
	}
	if r.NumInputs() > 2 {
		end = int(r.Input(2).Int())
	}
	dims := flattenDims(t.Dims(), start, end)
	r.SetOutput(0, values.NewTensor(t.Contiguous().ReshapeView(dims...)))
}

func execNativeReshape(r *Record) {
	t := r.Input(0).Tensor()
	dims := inferSize(intListArg(r.Input(1)), t.Size())
	r.SetOutput(0, values.NewTensor(t.Contiguous().ReshapeView(dims...)))
}

func execNativePermute(r *Record) {
	t := r.Input(0).Tensor()
	r.SetOutput(0, values.NewTensor(t.Permute(intListArg(r.Input(1)))))
}

// execNativeSlice reads (self, axis, start, end, step); start and end may be
// None, defaulting to the full axis.
func execNativeSlice(r *Record) {
	t := r.Input(0).Tensor()
	axis := int(r.Input(1).Int())
	start, end := 0, math.MaxInt
	if v, ok := r.Input(2).OptionalInt(); ok {
		start = int(v)
	}
	if v, ok := r.Input(3).OptionalInt(); ok {
		end = int(v)
	}
	step := 1
	if r.NumInputs() > 4 {
		step = int(r.Input(4).Int())
	}
	r.SetOutput(0, values.NewTensor(t.Slice(axis, start, end, step)))
}

// execNativeNarrow returns a length-sized view starting at start (which may
// wrap around when negative, or be given as a scalar tensor).
func execNativeNarrow(r *Record) {
	t := r.Input(0).Tensor()
	axis := int(r.Input(1).Int())
	var start int
	if sv := r.Input(2); sv.IsTensor() {
		switch flat := sv.Tensor().Contiguous().Flat().(type) {
		case []int32:
			start = int(flat[0])
		case []int64:
			start = int(flat[0])
		default:
			exceptions.Panicf("Narrow: start tensor must be Int32 or Int64")
		}
	} else {
		start = int(sv.Int())
	}
	length := int(r.Input(3).Int())
	if t.Rank() == 0 {
		exceptions.Panicf("Narrow: cannot narrow a scalar")
	}
	dimSize := t.Dim(axis)
	start = kernels.NarrowBounds(dimSize, start, length)
	r.SetOutput(0, values.NewTensor(t.Slice(axis, start, start+length, 1)))
}

// execNativeTo implements the 5-argument conversion
// (self, dtype, non-blocking, copy, memory format). When the dtype already
// matches, no copy is requested and no explicit format is given, the input
// value is passed through unchanged.
func execNativeTo(r *Record) {
	self := r.Input(0).Tensor()
	dtype := toCopyTarget(self, r.Input(1))
	forceCopy := false
	if b := r.Input(3); !b.IsNone() {
		forceCopy = b.Bool()
	}
	format := tensors.FormatPreserve
	if f, ok := r.Input(4).OptionalMemoryFormat(); ok {
		format = f
	}
	if dtype == self.DType() && !forceCopy && format == tensors.FormatPreserve {
		r.SetOutput(0, r.Input(0))
		return
	}
	out := tensors.NewEmpty(dtype, format)
	if format == tensors.FormatPreserve && self.IsNonOverlappingAndDense() {
		out.ResizeWithStrides(self.Dims(), self.Strides())
	} else {
		if format == tensors.FormatPreserve {
			out.SetFormat(self.SuggestMemoryFormat())
		}
		out.Resize(self.Dims())
	}
	if dtype == self.DType() {
		out.CopyFrom(self)
	} else {
		out.CopyFrom(castContiguous(self, dtype))
	}
	r.SetOutput(0, values.NewTensor(out))
}

func execNativeListConstruct(r *Record) {
	elems := make([]values.Value, r.NumInputs())
	for i := range elems {
		elems[i] = r.Input(i)
	}
	r.SetOutput(0, values.NewList(elems))
}

func execNativeTupleConstruct(r *Record) {
	elems := make([]values.Value, r.NumInputs())
	for i := range elems {
		elems[i] = r.Input(i)
	}
	r.SetOutput(0, values.NewTuple(elems))
}

// execNativeListUnpack spreads a list value over the node's outputs.
func execNativeListUnpack(r *Record) {
	list := r.Input(0).List()
	if len(list) != r.node.NumOutputs() {
		exceptions.Panicf("ListUnpack: list has %d elements, node expects %d",
			len(list), r.node.NumOutputs())
	}
	for i, v := range list {
		r.SetOutput(i, v)
	}
}

// execNativeDictConstruct reads alternating key and value inputs.
func execNativeDictConstruct(r *Record) {
	if r.NumInputs()%2 != 0 {
		exceptions.Panicf("DictConstruct: odd number of inputs %d", r.NumInputs())
	}
	dict := make(map[values.DictKey]values.Value, r.NumInputs()/2)
	for i := 0; i < r.NumInputs(); i += 2 {
		dict[values.KeyOf(r.Input(i))] = r.Input(i + 1)
	}
	r.SetOutput(0, values.NewDict(dict))
}

// execNativeGetItem indexes into a container. For a multi-output producer it
// selects that producer's outputs directly; for tuples and lists it indexes
// (with negative wrap-around); for dicts a missing key is fatal.
func execNativeGetItem(r *Record) {
	key := r.Input(1)
	if producer := r.InputRecord(0); producer != nil && producer.node.NumOutputs() > 1 {
		i := int(key.Int())
		if i < 0 || i >= producer.node.NumOutputs() {
			exceptions.Panicf("GetItem: output %d out of range for %s", i, producer.node)
		}
		r.SetOutput(0, producer.Output(i))
		return
	}
	container := r.Input(0)
	switch container.Kind() {
	case values.KindList, values.KindTuple:
		elems := container.List()
		if container.Kind() == values.KindTuple {
			elems = container.Tuple()
		}
		i := int(key.Int())
		if i < 0 {
			i += len(elems)
		}
		if i < 0 || i >= len(elems) {
			exceptions.Panicf("GetItem: index %d out of range for %d elements", key.Int(), len(elems))
		}
		r.SetOutput(0, elems[i])
	case values.KindDict:
		v, found := container.Dict()[values.KeyOf(key)]
		if !found {
			exceptions.Panicf("GetItem: key %v not found", key)
		}
		r.SetOutput(0, v)
	default:
		exceptions.Panicf("GetItem: cannot index a %s value", container.Kind())
	}
}
