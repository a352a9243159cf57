// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package static executes frozen inference graphs with near-zero steady-state
// allocation.
//
// Compile turns a graph into a Program: one execution record and one
// executor closure per node, chosen once by the eligibility analysis.
// Operators with a registered out variant write into output tensors whose
// storage persists across runs, logically resized per run; view-copy
// operators (reshape, flatten) do the same but always produce independent
// copies; the remaining structural operators run through the native fallback
// and yield fresh values. The four pointwise operators (relu, tanh, sigmoid,
// logit) additionally try a runtime-compiled vector kernel, cached per
// operator and clamp, degrading to their scalar kernels when unavailable.
//
// A Program is single-goroutine: it owns mutable per-node state. Compile one
// Program per worker; compiled pointwise kernels are shared process-wide.
package static
