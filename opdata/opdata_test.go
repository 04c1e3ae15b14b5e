// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"ocio.dev/ocio/ocmath"
)

func TestExponentIdentityRoundTrip(t *testing.T) {
	e := NewExponent(2.0, 2.0, 2.0, 1.0)
	assert.NoError(t, e.Validate())
	inv := e.Inverse()
	composed := ComposeExponents(e, inv)
	assert.True(t, composed.IsIdentity())
}

func TestCDLv12Forward(t *testing.T) {
	c := &CDL{
		Style:      CDLv12Fwd,
		Slope:      ocmath.NewVec4(1.2, 1.3, 1.4, 0),
		Offset:     ocmath.NewVec4(0, 0, 0, 0),
		Power:      ocmath.NewVec4(1, 1, 1, 0),
		Saturation: 1.0,
	}
	assert.NoError(t, c.Validate())
	r := c.ApplyChannel(0.1, 0)
	g := c.ApplyChannel(0.3, 1)
	b := c.ApplyChannel(0.9, 2)
	assert.InDelta(t, 0.12, r, 1e-6)
	assert.InDelta(t, 0.39, g, 1e-6)
	assert.InDelta(t, 1.0, b, 1e-6) // 1.4*0.9 = 1.26, clamped to 1
}

func TestLut1DMonotonicRequiredForInverse(t *testing.T) {
	l := &Lut1D{
		R: []float32{0, 0.5, 0.3, 1},
		G: []float32{0, 0.3, 0.6, 1},
		B: []float32{0, 0.3, 0.6, 1},
	}
	assert.NoError(t, l.Validate())
	assert.Error(t, l.ValidateInverse())
}

func TestLut1DIdentityDetection(t *testing.T) {
	l := &Lut1D{
		R: []float32{0, 1.0 / 3, 2.0 / 3, 1},
		G: []float32{0, 1.0 / 3, 2.0 / 3, 1},
		B: []float32{0, 1.0 / 3, 2.0 / 3, 1},
	}
	assert.True(t, l.IsIdentity())
}

func TestLut3DIdentityDetection(t *testing.T) {
	edge := 3
	table := make([]float32, edge*edge*edge*3)
	idx := 0
	for r := 0; r < edge; r++ {
		for g := 0; g < edge; g++ {
			for b := 0; b < edge; b++ {
				table[idx] = float32(r) / float32(edge-1)
				table[idx+1] = float32(g) / float32(edge-1)
				table[idx+2] = float32(b) / float32(edge-1)
				idx += 3
			}
		}
	}
	l := &Lut3D{Edge: edge, Table: table}
	assert.NoError(t, l.Validate())
	assert.True(t, l.IsIdentity())
}

func TestMatrixCacheIDStable(t *testing.T) {
	m1 := NewMatrix(ocmath.Identity4(), ocmath.Vec4{})
	m2 := NewMatrix(ocmath.Identity4(), ocmath.Vec4{})
	assert.Equal(t, m1.CacheID(), m2.CacheID())
}
