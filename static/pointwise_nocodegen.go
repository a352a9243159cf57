// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

//go:build purego

package static

// Without codegen support every pointwise operator permanently degrades to
// its scalar kernel.

const pointwiseCompileSupported = false

func pointwiseVectorWidth(kind pointwiseKind) int { return 0 }

func buildPointwise(kind pointwiseKind, clamp float64) pointwiseFunc { return nil }
