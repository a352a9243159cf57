// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	s := Make(dtypes.Float32, 2, 3)
	require.True(t, s.Ok())
	assert.Equal(t, 2, s.Rank())
	assert.Equal(t, 6, s.Size())
	assert.Equal(t, "(Float32)[2 3]", s.String())

	// Zero-sized axes are legal and zero the element count.
	z := Make(dtypes.Float32, 0, 1, 3, 0)
	require.True(t, z.Ok())
	assert.Equal(t, 0, z.Size())

	require.Panics(t, func() { Make(dtypes.Float32, 2, -1) })
}

func TestScalar(t *testing.T) {
	s := Scalar(dtypes.Int64)
	assert.True(t, s.IsScalar())
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 1, s.Size())
}

func TestDim(t *testing.T) {
	s := Make(dtypes.Float32, 2, 3, 5)
	assert.Equal(t, 5, s.Dim(-1))
	assert.Equal(t, 2, s.Dim(0))
	require.Panics(t, func() { s.Dim(3) })
}

func TestEqual(t *testing.T) {
	a := Make(dtypes.Float32, 2, 3)
	b := Make(dtypes.Float32, 2, 3)
	c := Make(dtypes.Float64, 2, 3)
	d := Make(dtypes.Float32, 3, 2)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.True(t, a.EqualDimensions(c))
}

func TestInvalid(t *testing.T) {
	var s Shape
	assert.False(t, s.Ok())
	assert.False(t, Invalid().Ok())
}
