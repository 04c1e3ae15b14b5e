// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpuproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/op"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
)

func scaleList(s float32) *op.List {
	m := &opdata.Matrix{
		M: ocmath.Matrix4{
			s, 0, 0, 0,
			0, s, 0, 0,
			0, 0, s, 0,
			0, 0, 0, 1,
		},
	}
	m.SetBitDepths(optypes.F32, optypes.F32)
	list := op.NewList()
	list.Append(op.New(m))
	return list
}

func TestApplyRGBAChainsKernels(t *testing.T) {
	p, err := New(scaleList(2))
	require.NoError(t, err)
	out := p.ApplyRGBA(ocmath.NewVec4(0.1, 0.2, 0.3, 1))
	assert.InDelta(t, 0.2, out[0], 1e-6)
	assert.InDelta(t, 0.6, out[2], 1e-6)
}

func TestApplyRGBInverseDirectionReversesChain(t *testing.T) {
	list := scaleList(2)
	fwd, err := New(list)
	require.NoError(t, err)
	inv, err := New(list.Inverse())
	require.NoError(t, err)
	r, g, b := fwd.ApplyRGB(0.1, 0.2, 0.3)
	r2, g2, b2 := inv.ApplyRGB(r, g, b)
	assert.InDelta(t, 0.1, r2, 1e-4)
	assert.InDelta(t, 0.2, g2, 1e-4)
	assert.InDelta(t, 0.3, b2, 1e-4)
}

func TestApplyPackedRGBA(t *testing.T) {
	p, err := New(scaleList(2))
	require.NoError(t, err)
	img := &PackedImage{
		Data:     []float32{0.1, 0.2, 0.3, 1, 0.4, 0.5, 0.6, 1},
		Width:    2,
		Height:   1,
		Channels: RGBA,
	}
	require.NoError(t, p.ApplyPacked(img))
	assert.InDelta(t, 0.2, img.Data[0], 1e-6)
	assert.InDelta(t, 1.0, img.Data[5], 1e-6)
}

func TestApplyPackedRejectsNilAndBadDims(t *testing.T) {
	p, err := New(scaleList(2))
	require.NoError(t, err)
	assert.Error(t, p.ApplyPacked(nil))
	assert.Error(t, p.ApplyPacked(&PackedImage{Width: -1, Height: 1, Channels: RGBA}))
	assert.Error(t, p.ApplyPacked(&PackedImage{Data: []float32{1, 2, 3}, Width: 2, Height: 1, Channels: RGBA}))
}

func TestApplyPlanarFastPathMatchesScalar(t *testing.T) {
	p, err := New(scaleList(3))
	require.NoError(t, err)
	img := &PlanarImage{
		R: []float32{0.1, 0.2}, G: []float32{0.3, 0.4}, B: []float32{0.5, 0.6},
		A: []float32{1, 1}, Width: 2, Height: 1,
	}
	require.NoError(t, p.ApplyPlanar(img))
	assert.InDelta(t, 0.3, img.R[0], 1e-6)
	assert.InDelta(t, 1.8, img.B[1], 1e-6)
}

func TestApplyPlanarWithoutAlphaSkipsAlphaFastPath(t *testing.T) {
	p, err := New(scaleList(2))
	require.NoError(t, err)
	img := &PlanarImage{R: []float32{0.5}, G: []float32{0.5}, B: []float32{0.5}, Width: 1, Height: 1}
	require.NoError(t, p.ApplyPlanar(img))
	assert.InDelta(t, 1.0, img.R[0], 1e-6)
	assert.Nil(t, img.A)
}

func TestApplyPlanarRejectsMismatchedLengths(t *testing.T) {
	p, err := New(scaleList(2))
	require.NoError(t, err)
	img := &PlanarImage{R: []float32{0.5}, G: []float32{0.5, 0.1}, B: []float32{0.5}, Width: 1, Height: 1}
	assert.Error(t, p.ApplyPlanar(img))
}

func TestDynamicHandlesFromExposureContrastKernel(t *testing.T) {
	d := &opdata.ExposureContrast{
		Style:    opdata.ECLinearFwd,
		Exposure: 0,
		Contrast: 1,
		Gamma:    1,
		Pivot:    0.18,
		Dynamic:  map[opdata.DynamicProperty]bool{opdata.DynExposure: true},
	}
	d.SetBitDepths(optypes.F32, optypes.F32)
	list := op.NewList()
	list.Append(op.New(d))
	p, err := New(list)
	require.NoError(t, err)
	h := p.Dynamic()
	h.Exposure.Set(1.5)
	assert.InDelta(t, 1.5, h.Exposure.Value(), 1e-6)
	assert.InDelta(t, 0, h.Contrast.Value(), 1e-6)
}
