// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opcpu

import (
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
)

type lut3DKernel struct {
	d      *opdata.Lut3D
	interp optypes.Interpolation
}

func newLut3DKernel(d *opdata.Lut3D, dir optypes.Direction) (Kernel, error) {
	interp := d.Interp.Resolve3D()
	if dir == optypes.Forward {
		return lut3DKernel{d: d, interp: interp}, nil
	}
	inv := MaterializeFastInverse(d, opdata.DefaultFastInverseEdge)
	return lut3DKernel{d: inv, interp: interp}, nil
}

func (k lut3DKernel) ApplyRGBA(v ocmath.Vec4) ocmath.Vec4 {
	var r, g, b float32
	if k.interp == optypes.Tetrahedral {
		r, g, b = k.d.EvalTetrahedral(v[0], v[1], v[2])
	} else {
		r, g, b = k.d.EvalTrilinear(v[0], v[1], v[2])
	}
	return ocmath.NewVec4(r, g, b, v[3])
}

// MaterializeFastInverse builds a forward LUT over a finer grid that maps
// the inverse direction, by densely sampling the forward op's tetrahedral
// evaluator and numerically solving for the grid-aligned inputs that
// reproduce each target output — the "fast inverse LUT" strategy named in
// §4.1.4. This is an approximation (Lossless=false territory): its error
// is bounded by the grid resolution, not exact.
func MaterializeFastInverse(fwd *opdata.Lut3D, edge int) *opdata.Lut3D {
	table := make([]float32, edge*edge*edge*3)
	idx := 0
	for ri := 0; ri < edge; ri++ {
		for gi := 0; gi < edge; gi++ {
			for bi := 0; bi < edge; bi++ {
				targetR := float32(ri) / float32(edge-1)
				targetG := float32(gi) / float32(edge-1)
				targetB := float32(bi) / float32(edge-1)
				r, g, b := inverseSearch(fwd, targetR, targetG, targetB)
				table[idx] = r
				table[idx+1] = g
				table[idx+2] = b
				idx += 3
			}
		}
	}
	return &opdata.Lut3D{Edge: edge, Table: table, Interp: optypes.Tetrahedral}
}

// inverseSearch does a fixed number of coordinate-descent refinements
// starting from the identity guess, nudging each input channel toward the
// target output using the forward tetrahedral evaluator as the underlying
// function.
func inverseSearch(fwd *opdata.Lut3D, tr, tg, tb float32) (float32, float32, float32) {
	r, g, b := tr, tg, tb
	for iter := 0; iter < 16; iter++ {
		cr, cg, cb := fwd.EvalTetrahedral(r, g, b)
		r = clamp01(r + (tr - cr))
		g = clamp01(g + (tg - cg))
		b = clamp01(b + (tb - cb))
	}
	return r, g, b
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
