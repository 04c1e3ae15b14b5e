// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/op"
	"ocio.dev/ocio/opdata"
)

func TestRemoveIdentity(t *testing.T) {
	l := op.NewList()
	l.Append(op.New(&opdata.Matrix{M: ocmath.Identity4()}))
	l.Append(op.New(opdata.NewExponent(2.2, 2.2, 2.2, 1)))
	Run(l, RemoveIdentity)
	assert.Equal(t, 1, l.Len())
}

func TestComposeMatrix(t *testing.T) {
	l := op.NewList()
	l.Append(op.New(&opdata.Matrix{M: ocmath.Identity4(), Offset: ocmath.NewVec4(0.1, 0, 0, 0)}))
	l.Append(op.New(&opdata.Matrix{M: ocmath.Identity4(), Offset: ocmath.NewVec4(0.2, 0, 0, 0)}))
	Run(l, ComposeMatrix)
	if assert.Equal(t, 1, l.Len()) {
		m := l.Ops[0].Data.(*opdata.Matrix)
		assert.InDelta(t, 0.3, m.Offset[0], 1e-6)
	}
}

func TestPairInverse(t *testing.T) {
	e := opdata.NewExponent(2.2, 2.2, 2.2, 1)
	l := op.NewList()
	l.Append(op.New(e))
	l.Append(op.NewInverse(e))
	Run(l, PairInverse)
	assert.Equal(t, 0, l.Len())
}

func TestPromoteRangeToMatrix(t *testing.T) {
	r := &opdata.Range{HasMinIn: true, HasMaxIn: true, MaxIn: 1, HasMinOut: true, HasMaxOut: true, MaxOut: 2}
	l := op.NewList()
	l.Append(op.New(r))
	Run(l, ComposeMatrix)
	if assert.Equal(t, 1, l.Len()) {
		_, ok := l.Ops[0].Data.(*opdata.Matrix)
		assert.True(t, ok)
	}
}

func TestRunRemovesNoOpMarkersUnconditionally(t *testing.T) {
	l := op.NewList()
	l.Append(op.New(&opdata.NoOp{Marker: opdata.FileNoOp}))
	Run(l, 0)
	assert.Equal(t, 0, l.Len())
}

func TestComposeSeparableLUTIsLossy(t *testing.T) {
	a := &opdata.Lut1D{R: []float32{0, 0.5, 1}, G: []float32{0, 0.5, 1}, B: []float32{0, 0.5, 1}, DomainMin: 0, DomainMax: 1}
	b := &opdata.Lut1D{R: []float32{0, 0.25, 1}, G: []float32{0, 0.25, 1}, B: []float32{0, 0.25, 1}, DomainMin: 0, DomainMax: 1}
	l := op.NewList()
	l.Append(op.New(a))
	l.Append(op.New(b))
	res := Run(l, ComposeSeparableLUT)
	assert.Equal(t, 1, l.Len())
	assert.True(t, res.LossyHint)
}
