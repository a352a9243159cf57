// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package static

import (
	"sync"

	"k8s.io/klog/v2"
)

// pointwiseKind identifies a runtime-compiled pointwise kernel.
type pointwiseKind int

const (
	pointwiseReLU pointwiseKind = iota
	pointwiseTanh
	pointwiseSigmoid
	pointwiseLogit
)

var pointwiseKindNames = []string{"relu", "tanh", "sigmoid", "logit"}

func (k pointwiseKind) String() string { return pointwiseKindNames[k] }

// pointwiseFunc applies a pointwise operation over contiguous Float32 data.
// out and input have the same length.
type pointwiseFunc func(out, input []float32)

// pointwiseKey identifies one compiled kernel. The clamping epsilon is part
// of the key because it is baked into the compiled expression; kinds without
// a clamp use -1.
type pointwiseKey struct {
	kind  pointwiseKind
	clamp float64
}

var (
	pointwiseMu    sync.Mutex
	pointwiseCache = make(map[pointwiseKey]pointwiseFunc)
)

// compiledPointwise returns the compiled vector kernel for (kind, clamp),
// building it the first time the pair is requested. Executor factories call
// this once and capture the result, so runs never touch the lock. It returns
// ok=false when compilation is unavailable in this build, in which case
// callers use the scalar kernels.
func compiledPointwise(kind pointwiseKind, clamp float64) (pointwiseFunc, bool) {
	if !pointwiseCompileSupported {
		return nil, false
	}
	key := pointwiseKey{kind: kind, clamp: clamp}
	pointwiseMu.Lock()
	defer pointwiseMu.Unlock()
	if fn, found := pointwiseCache[key]; found {
		return fn, fn != nil
	}
	fn := buildPointwise(kind, clamp)
	pointwiseCache[key] = fn
	if fn == nil {
		klog.V(1).Infof("pointwise kernel %s: compilation failed, using scalar fallback", kind)
		return nil, false
	}
	klog.V(1).Infof("pointwise kernel %s (clamp=%g): compiled with vector width %d",
		kind, clamp, pointwiseVectorWidth(kind))
	return fn, true
}
