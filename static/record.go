// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package static

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/staticrt/graph"
	"github.com/gomlx/staticrt/types/tensors"
	"github.com/gomlx/staticrt/types/values"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Record is the per-node execution frame. Its output slots persist across
// runs: a kernel that finds a tensor of the right dtype in its slot shrinks
// it to zero elements and writes into the retained storage instead of
// allocating.
type Record struct {
	node    *graph.Node
	inputs  []*Record // parallel to node.Inputs(); nil for constant producers
	outputs []values.Value
}

func newRecord(node *graph.Node) *Record {
	return &Record{
		node:    node,
		inputs:  make([]*Record, node.NumInputs()),
		outputs: make([]values.Value, node.NumOutputs()),
	}
}

// Node returns the graph node this record executes.
func (r *Record) Node() *graph.Node { return r.node }

// NumInputs returns the node's input count.
func (r *Record) NumInputs() int { return r.node.NumInputs() }

// Input returns the current value of the i-th input: the constant payload
// for constant producers, the producer record's first output otherwise.
func (r *Record) Input(i int) values.Value {
	if v, ok := r.node.InputConstant(i); ok {
		return v
	}
	return r.inputs[i].outputs[0]
}

// InputRecord returns the record of the i-th input's producer, or nil when
// the producer is a constant.
func (r *Record) InputRecord(i int) *Record { return r.inputs[i] }

// Output returns the i-th output slot's current value.
func (r *Record) Output(i int) values.Value { return r.outputs[i] }

// SetOutput stores v in the i-th output slot.
func (r *Record) SetOutput(i int, v values.Value) { r.outputs[i] = v }

// OutputTensor returns the tensor of output slot i ready for an out-variant
// kernel to write: a retained tensor of the right dtype is logically resized
// to zero elements (keeping its storage), anything else is replaced by a new
// empty tensor with the given memory format.
func (r *Record) OutputTensor(i int, dtype dtypes.DType, format tensors.MemoryFormat) *tensors.Tensor {
	t := r.retainedTensor(i, dtype, format)
	t.ResizeToZero()
	return t
}

// OutputTensorKeepSize is OutputTensor without the logical shrink, for
// kernels that overwrite the retained buffer in place.
func (r *Record) OutputTensorKeepSize(i int, dtype dtypes.DType, format tensors.MemoryFormat) *tensors.Tensor {
	return r.retainedTensor(i, dtype, format)
}

func (r *Record) retainedTensor(i int, dtype dtypes.DType, format tensors.MemoryFormat) *tensors.Tensor {
	if v := r.outputs[i]; v.IsTensor() {
		if t := v.Tensor(); t.DType() == dtype {
			if format != tensors.FormatPreserve {
				t.SetFormat(format)
			}
			return t
		}
	}
	t := tensors.NewEmpty(dtype, format)
	r.outputs[i] = values.NewTensor(t)
	return t
}

// Program is a compiled, ready-to-run form of a frozen graph: one record and
// one executor per node, in topological order. A Program keeps per-node
// state across runs (that is the point), so it must not be shared between
// goroutines; compile one Program per worker instead.
type Program struct {
	params    []*Record
	order     []*Record // execution order, excludes parameters and constants
	executors []Executor
	returns   []*Record
}

// Compile builds a Program evaluating the outputs from the params. Every
// node reachable from outputs must either be a parameter listed in params, a
// constant, or an operator with an out-variant, view-copy or native kernel;
// otherwise an error is returned.
func Compile(params []*graph.Node, outputs []*graph.Node) (*Program, error) {
	p := &Program{}
	records := make(map[*graph.Node]*Record)
	paramSet := make(map[*graph.Node]bool, len(params))
	for _, node := range params {
		if node.Op() != graph.OpTypeParameter {
			return nil, errors.Errorf("Compile: params must be Parameter nodes, got %s", node)
		}
		paramSet[node] = true
	}

	var build func(node *graph.Node) (*Record, error)
	build = func(node *graph.Node) (*Record, error) {
		if r, found := records[node]; found {
			return r, nil
		}
		if node.Op() == graph.OpTypeConstant {
			records[node] = nil
			return nil, nil
		}
		r := newRecord(node)
		records[node] = r
		for i, input := range node.Inputs() {
			inputRecord, err := build(input)
			if err != nil {
				return nil, err
			}
			r.inputs[i] = inputRecord
		}
		switch {
		case node.Op() == graph.OpTypeParameter:
			if !paramSet[node] {
				return nil, errors.Errorf("Compile: graph parameter %s is not bound", node)
			}
		case CanRunOutOfPlace(node):
			p.order = append(p.order, r)
			p.executors = append(p.executors, outVariants.Create(node))
			klog.V(1).Infof("Compile: %s uses its out variant", node)
		case viewVariants.Has(node.Op()):
			p.order = append(p.order, r)
			p.executors = append(p.executors, viewVariants.Create(node))
			klog.V(1).Infof("Compile: %s uses its view-copy variant", node)
		case CanRunNatively(node):
			p.order = append(p.order, r)
			p.executors = append(p.executors, makeNativeExecutor(node))
			klog.V(1).Infof("Compile: %s runs natively", node)
		default:
			return nil, errors.Errorf("Compile: operator %s has no out variant and cannot run natively", node.Op())
		}
		return r, nil
	}

	for _, node := range outputs {
		r, err := build(node)
		if err != nil {
			return nil, err
		}
		if r == nil {
			return nil, errors.Errorf("Compile: returning a constant node is not supported")
		}
		if node.NumOutputs() != 1 {
			return nil, errors.Errorf("Compile: return multi-output node %s through GetItem", node)
		}
		p.returns = append(p.returns, r)
	}
	for _, node := range params {
		r, err := build(node) // binds parameters the outputs never reach
		if err != nil {
			return nil, err
		}
		p.params = append(p.params, r)
	}
	return p, nil
}

// Run executes the program over the given parameter values and returns the
// output values, in the order given to Compile. Outputs may alias buffers
// retained by the program: they are valid until the next Run.
func (p *Program) Run(args ...values.Value) []values.Value {
	if len(args) != len(p.params) {
		exceptions.Panicf("Program.Run: got %d arguments, graph has %d parameters",
			len(args), len(p.params))
	}
	for i, r := range p.params {
		r.outputs[0] = args[i]
	}
	for i, r := range p.order {
		p.executors[i](r)
	}
	results := make([]values.Value, len(p.returns))
	for i, r := range p.returns {
		results[i] = r.outputs[0]
	}
	return results
}

// Records returns the execution records in run order, for inspection in
// tests and diagnostics.
func (p *Program) Records() []*Record { return p.order }
