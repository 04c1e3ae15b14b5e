// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package op

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
)

func TestMatrixCombine(t *testing.T) {
	m1 := New(&opdata.Matrix{M: ocmath.Identity4(), Offset: ocmath.NewVec4(0.1, 0, 0, 0)})
	m2 := New(&opdata.Matrix{M: ocmath.Identity4(), Offset: ocmath.NewVec4(0.2, 0, 0, 0)})
	assert.True(t, m1.CanCombineWith(m2))
	combined := m1.CombineWith(m2)
	k, err := combined.CPU()
	assert.NoError(t, err)
	out := k.ApplyRGBA(ocmath.NewVec4(0, 0, 0, 1))
	assert.InDelta(t, 0.3, out[0], 1e-6)
}

func TestIsInverseOf(t *testing.T) {
	e := opdata.NewExponent(2.2, 2.2, 2.2, 1)
	fwd := New(e)
	inv := NewInverse(e)
	assert.True(t, fwd.IsInverseOf(inv))
	assert.False(t, fwd.IsInverseOf(fwd))
}

func TestListInverse(t *testing.T) {
	l := NewList()
	l.Append(New(&opdata.Matrix{M: ocmath.Identity4(), Offset: ocmath.NewVec4(0.1, 0, 0, 0)}))
	l.Append(New(opdata.NewExponent(2.0, 2.0, 2.0, 1)))
	inv := l.Inverse()
	assert.Equal(t, 2, inv.Len())
	assert.Equal(t, optypes.Inverse, inv.Ops[0].Dir)
}

func TestMetadataCloneIsIndependent(t *testing.T) {
	m := Metadata{Name: "n", ID: "id", Attributes: []Attribute{{Key: "k", Value: "v"}}}
	c := m.Clone()
	c.Attributes[0].Value = "changed"
	assert.Equal(t, "v", m.Attributes[0].Value)
	val, ok := m.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

func TestListCloneCopiesMetadata(t *testing.T) {
	l := NewList()
	l.Meta.ID = "abc"
	l.Append(New(opdata.NewExponent(2.0, 2.0, 2.0, 1)))
	l.Ops[0].Meta.Name = "exp"
	c := l.Clone()
	assert.Equal(t, "abc", c.Meta.ID)
	assert.Equal(t, "exp", c.Ops[0].Meta.Name)
	c.Ops[0].Meta.Name = "renamed"
	assert.Equal(t, "exp", l.Ops[0].Meta.Name)
}
