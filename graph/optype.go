// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package graph

// OpType enumerates every operator the engine knows about. The set is closed:
// dispatch is done by indexing tables with the OpType, never by comparing
// operator name strings at run time.
type OpType int

//go:generate go tool enumer -type=OpType -trimprefix=OpType -output=gen_optype_enumer.go optype.go

const (
	OpTypeInvalid OpType = iota

	// Structural nodes of the graph itself.
	OpTypeParameter
	OpTypeConstant

	// Operators with buffer-reusing out variants.
	OpTypeMul
	OpTypeDiv
	OpTypeSub
	OpTypePow
	OpTypeAddMM
	OpTypeBMM
	OpTypeClamp
	OpTypeClampMin
	OpTypeLeakyReLU
	OpTypeNaNToNum
	OpTypeReLU
	OpTypeTanh
	OpTypeSigmoid
	OpTypeLogit
	OpTypeClone
	OpTypeCat
	OpTypeStack
	OpTypeIndex
	OpTypeNarrowCopy
	OpTypeToCopy
	OpTypeSum
	OpTypeNorm
	OpTypeArgMin
	OpTypeLayerNorm
	OpTypeEmbeddingBag
	OpTypeListConstruct
	OpTypeTupleConstruct

	// View-copy operators: out variants whose outputs are independent copies,
	// registered on a separate registry.
	OpTypeReshapeCopy
	OpTypeFlattenCopy

	// Structural operators executed natively, without buffer reuse.
	OpTypeTranspose
	OpTypeFlatten
	OpTypeReshape
	OpTypePermute
	OpTypeSlice
	OpTypeNarrow
	OpTypeTo
	OpTypeDictConstruct
	OpTypeListUnpack
	OpTypeGetItem

	// OpTypeLast should always be kept the last, it is used as a counter/marker for OpType.
	OpTypeLast
)
