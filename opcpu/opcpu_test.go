// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opcpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
)

func TestMatrixKernelRoundTrip(t *testing.T) {
	m := &opdata.Matrix{
		M: ocmath.Matrix4{
			1.5, 0, 0, 0,
			0, 1.5, 0, 0,
			0, 0, 1.5, 0,
			0, 0, 0, 1,
		},
		Offset: ocmath.NewVec4(0.1, 0.1, 0.1, 0),
	}
	fwd, err := New(m, optypes.Forward)
	assert.NoError(t, err)
	inv, err := New(m, optypes.Inverse)
	assert.NoError(t, err)

	in := ocmath.NewVec4(0.2, 0.3, 0.4, 1)
	out := fwd.ApplyRGBA(in)
	back := inv.ApplyRGBA(out)
	assert.InDelta(t, in[0], back[0], 1e-4)
	assert.InDelta(t, in[1], back[1], 1e-4)
	assert.InDelta(t, in[2], back[2], 1e-4)
}

func TestCDLKernelForwardMatchesApplyChannel(t *testing.T) {
	d := &opdata.CDL{
		Style:      opdata.CDLv12Fwd,
		Slope:      ocmath.NewVec4(1.1, 1.0, 0.9, 0),
		Offset:     ocmath.NewVec4(0, 0, 0, 0),
		Power:      ocmath.NewVec4(1, 1, 1, 0),
		Saturation: 1,
		Luma:       ocmath.NewVec4(0.2126, 0.7152, 0.0722, 0),
	}
	k, err := New(d, optypes.Forward)
	assert.NoError(t, err)
	out := k.ApplyRGBA(ocmath.NewVec4(0.5, 0.5, 0.5, 1))
	assert.InDelta(t, 0.5*1.1, out[0], 1e-6)
	assert.InDelta(t, 0.5*0.9, out[2], 1e-6)
}

func TestLut3DFastInverseRoundTrip(t *testing.T) {
	edge := 5
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
	lut := &opdata.Lut3D{Edge: edge, Table: table, Interp: optypes.Tetrahedral}
	assert.True(t, lut.IsIdentity())

	fwd, err := New(lut, optypes.Forward)
	assert.NoError(t, err)
	out := fwd.ApplyRGBA(ocmath.NewVec4(0.3, 0.6, 0.9, 1))
	assert.InDelta(t, 0.3, out[0], 1e-3)
	assert.InDelta(t, 0.6, out[1], 1e-3)
	assert.InDelta(t, 0.9, out[2], 1e-3)

	inv, err := New(lut, optypes.Inverse)
	assert.NoError(t, err)
	back := inv.ApplyRGBA(out)
	assert.InDelta(t, 0.3, back[0], 1e-3)
	assert.InDelta(t, 0.6, back[1], 1e-3)
	assert.InDelta(t, 0.9, back[2], 1e-3)
}

func TestFixedFunctionHSVRoundTrip(t *testing.T) {
	d := &opdata.FixedFunction{Style: opdata.FFRGBToHSV}
	fwd, err := New(d, optypes.Forward)
	assert.NoError(t, err)
	inv, err := New(d, optypes.Inverse)
	assert.NoError(t, err)

	in := ocmath.NewVec4(0.8, 0.3, 0.1, 1)
	out := fwd.ApplyRGBA(in)
	back := inv.ApplyRGBA(out)
	assert.InDelta(t, in[0], back[0], 1e-4)
	assert.InDelta(t, in[1], back[1], 1e-4)
	assert.InDelta(t, in[2], back[2], 1e-4)
}

func TestFixedFunctionAcesRedMod10RoundTrip(t *testing.T) {
	d := &opdata.FixedFunction{Style: opdata.FFAcesRedModV10}
	fwd, err := New(d, optypes.Forward)
	assert.NoError(t, err)
	inv, err := New(d, optypes.Inverse)
	assert.NoError(t, err)

	inputs := []ocmath.Vec4{
		ocmath.NewVec4(0.90, 0.05, 0.22, 0.5),
		ocmath.NewVec4(0.97, 0.097, 0.0097, 1.0),
		ocmath.NewVec4(0.89, 0.15, 0.56, 0.0),
	}
	for _, in := range inputs {
		out := fwd.ApplyRGBA(in)
		back := inv.ApplyRGBA(out)
		assert.InDelta(t, in[0], back[0], 1e-5)
		assert.InDelta(t, in[1], back[1], 1e-5)
		assert.InDelta(t, in[2], back[2], 1e-5)
	}
}

func TestFixedFunctionAcesStyleRoundTrips(t *testing.T) {
	in := ocmath.NewVec4(0.43, 0.82, 0.71, 1)
	cases := []struct {
		name   string
		style  opdata.FixedFunctionStyle
		params []float32
	}{
		{"red-mod-03", opdata.FFAcesRedModV03, nil},
		{"red-mod-10", opdata.FFAcesRedModV10, nil},
		{"glow-03", opdata.FFAcesGlowV03, nil},
		{"glow-10", opdata.FFAcesGlowV10, nil},
		{"dark-to-dim-10", opdata.FFAcesDarkToDimV10, nil},
		{"gamut-comp-13", opdata.FFAcesGamutCompV13, []float32{1.147, 1.264, 1.312, 0.815, 0.803, 0.880, 1.2}},
		{"rec2100-surround", opdata.FFRec2100Surround, []float32{0.78}},
	}
	for _, c := range cases {
		d := &opdata.FixedFunction{Style: c.style, Params: c.params}
		fwd, err := New(d, optypes.Forward)
		assert.NoError(t, err, c.name)
		inv, err := New(d, optypes.Inverse)
		assert.NoError(t, err, c.name)

		out := fwd.ApplyRGBA(in)
		back := inv.ApplyRGBA(out)
		assert.InDelta(t, in[0], back[0], 1e-4, c.name)
		assert.InDelta(t, in[1], back[1], 1e-4, c.name)
		assert.InDelta(t, in[2], back[2], 1e-4, c.name)
	}
}

func TestFixedFunctionRec2100SurroundReciprocalMatchesForward(t *testing.T) {
	in := ocmath.NewVec4(0.71, 0.51, 0.81, 1)
	fwd := &opdata.FixedFunction{Style: opdata.FFRec2100Surround, Params: []float32{0.78}}
	fwdK, err := New(fwd, optypes.Forward)
	assert.NoError(t, err)

	invAsFwd := &opdata.FixedFunction{Style: opdata.FFRec2100SurroundInv, Params: []float32{1 / float32(0.78)}}
	invK, err := New(invAsFwd, optypes.Forward)
	assert.NoError(t, err)

	want := fwdK.ApplyRGBA(in)
	got := invK.ApplyRGBA(in)
	assert.InDelta(t, want[0], got[0], 1e-5)
	assert.InDelta(t, want[1], got[1], 1e-5)
	assert.InDelta(t, want[2], got[2], 1e-5)
}

func TestExposureContrastIdentity(t *testing.T) {
	d := &opdata.ExposureContrast{
		Style:    opdata.ECLinearFwd,
		Contrast: 1,
		Gamma:    1,
		Pivot:    1,
	}
	k, err := New(d, optypes.Forward)
	assert.NoError(t, err)
	out := k.ApplyRGBA(ocmath.NewVec4(0.5, 0.5, 0.5, 1))
	assert.InDelta(t, 0.5, out[0], 1e-6)
}
