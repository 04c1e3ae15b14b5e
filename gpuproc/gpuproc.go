// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpuproc implements the GPUProcessor: it walks an optimized
// op.List through opgpu emitters to build a shaderdesc.Desc a host can
// translate to its shading language of choice, or bakes the whole chain
// down to a single shaper-plus-3D-LUT pair for hosts that only support
// that legacy model (§4.5).
package gpuproc

import (
	"ocio.dev/ocio/cpuproc"
	"ocio.dev/ocio/ocioerr"
	"ocio.dev/ocio/op"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
	"ocio.dev/ocio/shaderdesc"
)

// Build emits a full-fidelity shader for list: one function that runs
// every op's own GPU emitter in order, reading and writing d.PixelName.
func Build(list *op.List, lang shaderdesc.Language) (*shaderdesc.Desc, error) {
	d := shaderdesc.New(lang)
	d.AddFunctionHeader("vec4 " + d.FunctionName + "(vec4 inPixel) {")
	d.AddFunctionHeader("  vec4 " + d.PixelName + " = inPixel;")
	for _, o := range list.Ops {
		e, err := o.GPU()
		if err != nil {
			return nil, ocioerr.Wrap(ocioerr.KindInternal, "gpuproc.Build", "building emitter", err)
		}
		if err := e.Emit(d, o.Dir); err != nil {
			return nil, ocioerr.Wrap(ocioerr.KindShaderLimitExceeded, "gpuproc.Build", "emitting op", err)
		}
	}
	d.AddFunctionFooter("  return " + d.PixelName + ";")
	d.AddFunctionFooter("}")
	return d, nil
}

// LegacyEdge is the 3D LUT edge length used by BuildLegacy's baked cube,
// matching the resolution the 3D LUT fast-inverse path already uses for
// fast LUT materialization.
const LegacyEdge = opdata.DefaultFastInverseEdge

// ShaperSize is the 1D shaper LUT's sample count in the legacy bake.
const ShaperSize = 4096

// BuildLegacy bakes list down to a shaper-plus-3D-LUT pair by sampling a
// CPU processor over list at a fixed grid, clamping every sample to
// [0,1] (§4.5's legacy model is display-referred and has no extended
// range), and emitting those two textures through the ordinary LUT
// emitters. The returned Desc is marked legacy.
func BuildLegacy(list *op.List, lang shaderdesc.Language) (*shaderdesc.Desc, error) {
	proc, err := cpuproc.New(list)
	if err != nil {
		return nil, ocioerr.Wrap(ocioerr.KindInternal, "gpuproc.BuildLegacy", "building baking processor", err)
	}

	shaper := bakeShaper(proc)
	cube := bakeCube(proc)

	baked := op.NewList()
	baked.Append(op.New(shaper))
	baked.Append(op.New(cube))

	d, err := Build(baked, lang)
	if err != nil {
		return nil, err
	}
	d.MarkLegacy()
	return d, nil
}

// bakeShaper builds an identity-ramp Lut1D over [0,1], keeping the
// two-stage shaper-plus-cube shape of a legacy bake. It does not sample
// proc, and it does not compress out-of-range inputs: values outside
// [0,1] are clamped by the LUT's domain.
func bakeShaper(proc *cpuproc.Processor) *opdata.Lut1D {
	r := make([]float32, ShaperSize)
	g := make([]float32, ShaperSize)
	b := make([]float32, ShaperSize)
	for i := 0; i < ShaperSize; i++ {
		t := float32(i) / float32(ShaperSize-1)
		r[i], g[i], b[i] = clamp01(t), clamp01(t), clamp01(t)
	}
	l := &opdata.Lut1D{R: r, G: g, B: b, DomainMin: 0, DomainMax: 1, Interp: optypes.Linear}
	l.SetBitDepths(optypes.F32, optypes.F32)
	return l
}

// bakeCube samples proc at every vertex of an Edge^3 grid into a Lut3D;
// the shaper ahead of it in the baked list is an identity ramp, so the
// grid is indexed directly in [0,1] input space.
func bakeCube(proc *cpuproc.Processor) *opdata.Lut3D {
	n := LegacyEdge
	table := make([]float32, n*n*n*3)
	idx := 0
	for ri := 0; ri < n; ri++ {
		rv := float32(ri) / float32(n-1)
		for gi := 0; gi < n; gi++ {
			gv := float32(gi) / float32(n-1)
			for bi := 0; bi < n; bi++ {
				bv := float32(bi) / float32(n-1)
				r, g, b := proc.ApplyRGB(rv, gv, bv)
				table[idx] = clamp01(r)
				table[idx+1] = clamp01(g)
				table[idx+2] = clamp01(b)
				idx += 3
			}
		}
	}
	l := &opdata.Lut3D{Edge: n, Table: table, Interp: optypes.Linear}
	l.SetBitDepths(optypes.F32, optypes.F32)
	return l
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
