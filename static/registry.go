// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package static

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/staticrt/graph"
	"k8s.io/klog/v2"
)

// Executor runs one node over its execution record. Executors are built once
// per node at compile time and invoked once per run.
type Executor func(r *Record)

// KernelFactory builds the executor closure for a node. Factories validate
// what they can about the node up-front and capture it in the closure; input
// values are read from the record at run time.
type KernelFactory func(node *graph.Node) Executor

// Registry maps operator types to their kernel factories. Registries are
// populated from init() functions only and are read-only afterwards, so
// lookups need no locking.
type Registry struct {
	name      string
	factories [graph.OpTypeLast]KernelFactory
}

// NewRegistry creates an empty registry. The name appears in diagnostics.
func NewRegistry(name string) *Registry {
	return &Registry{name: name}
}

// Register installs the factory for the given operator. Registering the same
// operator twice panics: each operator has exactly one kernel per registry.
func (reg *Registry) Register(op graph.OpType, factory KernelFactory) {
	if op <= graph.OpTypeInvalid || op >= graph.OpTypeLast {
		exceptions.Panicf("registry %q: cannot register invalid operator %d", reg.name, op)
	}
	if reg.factories[op] != nil {
		exceptions.Panicf("registry %q: operator %s registered twice", reg.name, op)
	}
	reg.factories[op] = factory
	klog.V(2).Infof("registry %q: registered %s", reg.name, op)
}

// Has reports whether the registry holds a kernel for op.
func (reg *Registry) Has(op graph.OpType) bool {
	return op > graph.OpTypeInvalid && op < graph.OpTypeLast && reg.factories[op] != nil
}

// Create builds the executor for node. It panics if the registry has no
// kernel for the node's operator; callers check Has first.
func (reg *Registry) Create(node *graph.Node) Executor {
	if !reg.Has(node.Op()) {
		exceptions.Panicf("registry %q: no kernel for operator %s", reg.name, node.Op())
	}
	return reg.factories[node.Op()](node)
}

// outVariants holds the buffer-reusing kernels: their outputs keep storage
// across runs and are logically resized per run.
var outVariants = NewRegistry("out-variant")

// viewVariants holds the copy variants of view-producing operators
// (reshape, flatten). They are kept apart from outVariants: their outputs
// are full copies, never aliases of the input, and the analyzer treats them
// separately.
var viewVariants = NewRegistry("view-copy")

// OutVariants returns the registry of buffer-reusing kernels.
func OutVariants() *Registry { return outVariants }

// ViewVariants returns the registry of view-copy kernels.
func ViewVariants() *Registry { return viewVariants }
