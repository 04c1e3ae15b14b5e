// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opdata

import "ocio.dev/ocio/optypes"

// MaxLut3DEdge is the spec's N <= 129 bound.
const MaxLut3DEdge = 129

// DefaultFastInverseEdge is the edge length used when materializing a fast
// inverse 3D LUT (§4.1.4).
const DefaultFastInverseEdge = 48

// Lut3D is a cube of N^3 RGB samples, domain [0,1]^3 (inputs clamped).
type Lut3D struct {
	bitDepths
	Edge   int
	Table  []float32 // len == Edge^3*3, indexed [((r*Edge+g)*Edge+b)*3+c]
	Interp optypes.Interpolation
}

func (l *Lut3D) Kind() Kind { return KindLut3D }

func (l *Lut3D) Validate() error {
	if l.Edge < 2 || l.Edge > MaxLut3DEdge {
		return invalidParam("Lut3D", "edge length must be in [2,129]")
	}
	want := l.Edge * l.Edge * l.Edge * 3
	if len(l.Table) != want {
		return invalidParam("Lut3D", "table length does not match edge^3*3")
	}
	return nil
}

func (l *Lut3D) IsIdentity() bool {
	const tol = 1e-5
	n := l.Edge
	for r := 0; r < n; r++ {
		for g := 0; g < n; g++ {
			for b := 0; b < n; b++ {
				idx := ((r*n+g)*n + b) * 3
				rt := float32(r) / float32(n-1)
				gt := float32(g) / float32(n-1)
				bt := float32(b) / float32(n-1)
				if !feq(l.Table[idx], rt, tol) || !feq(l.Table[idx+1], gt, tol) || !feq(l.Table[idx+2], bt, tol) {
					return false
				}
			}
		}
	}
	return true
}

func (l *Lut3D) HasChannelCrosstalk() bool { return true }

func (l *Lut3D) CacheID() string {
	ints := []int{l.Edge, int(l.in), int(l.out), int(l.Interp)}
	return hashParts("Lut3D", nil, l.Table, ints)
}

func (l *Lut3D) Clone() OpData {
	c := *l
	c.Table = append([]float32{}, l.Table...)
	return &c
}

func (l *Lut3D) at(r, g, b int) (rr, gg, bb float32) {
	idx := ((r*l.Edge+g)*l.Edge + b) * 3
	return l.Table[idx], l.Table[idx+1], l.Table[idx+2]
}

// EvalTrilinear evaluates the cube at normalized [0,1]^3 input using
// trilinear interpolation.
func (l *Lut3D) EvalTrilinear(r, g, b float32) (float32, float32, float32) {
	r = clamp01(r)
	g = clamp01(g)
	b = clamp01(b)
	n := l.Edge
	rf := r * float32(n-1)
	gf := g * float32(n-1)
	bf := b * float32(n-1)
	r0, g0, b0 := int(rf), int(gf), int(bf)
	r1, g1, b1 := minInt(r0+1, n-1), minInt(g0+1, n-1), minInt(b0+1, n-1)
	dr, dg, db := rf-float32(r0), gf-float32(g0), bf-float32(b0)

	lerp3 := func(c000, c100, c010, c110, c001, c101, c011, c111 float32) float32 {
		c00 := c000*(1-dr) + c100*dr
		c10 := c010*(1-dr) + c110*dr
		c01 := c001*(1-dr) + c101*dr
		c11 := c011*(1-dr) + c111*dr
		c0 := c00*(1-dg) + c10*dg
		c1 := c01*(1-dg) + c11*dg
		return c0*(1-db) + c1*db
	}

	var out [3]float32
	for c := 0; c < 3; c++ {
		get := func(ri, gi, bi int) float32 {
			r, g, b := l.at(ri, gi, bi)
			switch c {
			case 0:
				return r
			case 1:
				return g
			default:
				return b
			}
		}
		out[c] = lerp3(
			get(r0, g0, b0), get(r1, g0, b0), get(r0, g1, b0), get(r1, g1, b0),
			get(r0, g0, b1), get(r1, g0, b1), get(r0, g1, b1), get(r1, g1, b1),
		)
	}
	return out[0], out[1], out[2]
}

// EvalTetrahedral evaluates the cube using tetrahedral interpolation: the
// fractional coordinates are sorted to pick one of six simplices, the
// default "best" 3D interpolation per §4.1.4.
func (l *Lut3D) EvalTetrahedral(r, g, b float32) (float32, float32, float32) {
	r = clamp01(r)
	g = clamp01(g)
	b = clamp01(b)
	n := l.Edge
	rf := r * float32(n-1)
	gf := g * float32(n-1)
	bf := b * float32(n-1)
	r0, g0, b0 := int(rf), int(gf), int(bf)
	r1, g1, b1 := minInt(r0+1, n-1), minInt(g0+1, n-1), minInt(b0+1, n-1)
	dr, dg, db := rf-float32(r0), gf-float32(g0), bf-float32(b0)

	c000r, c000g, c000b := l.at(r0, g0, b0)
	c111r, c111g, c111b := l.at(r1, g1, b1)

	var outR, outG, outB float32
	add := func(w, vr, vg, vb float32) {
		outR += w * vr
		outG += w * vg
		outB += w * vb
	}

	switch {
	case dr >= dg && dg >= db:
		c100r, c100g, c100b := l.at(r1, g0, b0)
		c110r, c110g, c110b := l.at(r1, g1, b0)
		add(1-dr, c000r, c000g, c000b)
		add(dr-dg, c100r, c100g, c100b)
		add(dg-db, c110r, c110g, c110b)
		add(db, c111r, c111g, c111b)
	case dr >= db && db >= dg:
		c100r, c100g, c100b := l.at(r1, g0, b0)
		c101r, c101g, c101b := l.at(r1, g0, b1)
		add(1-dr, c000r, c000g, c000b)
		add(dr-db, c100r, c100g, c100b)
		add(db-dg, c101r, c101g, c101b)
		add(dg, c111r, c111g, c111b)
	case db >= dr && dr >= dg:
		c001r, c001g, c001b := l.at(r0, g0, b1)
		c101r, c101g, c101b := l.at(r1, g0, b1)
		add(1-db, c000r, c000g, c000b)
		add(db-dr, c001r, c001g, c001b)
		add(dr-dg, c101r, c101g, c101b)
		add(dg, c111r, c111g, c111b)
	case dg >= dr && dr >= db:
		c010r, c010g, c010b := l.at(r0, g1, b0)
		c110r, c110g, c110b := l.at(r1, g1, b0)
		add(1-dg, c000r, c000g, c000b)
		add(dg-dr, c010r, c010g, c010b)
		add(dr-db, c110r, c110g, c110b)
		add(db, c111r, c111g, c111b)
	case dg >= db && db >= dr:
		c010r, c010g, c010b := l.at(r0, g1, b0)
		c011r, c011g, c011b := l.at(r0, g1, b1)
		add(1-dg, c000r, c000g, c000b)
		add(dg-db, c010r, c010g, c010b)
		add(db-dr, c011r, c011g, c011b)
		add(dr, c111r, c111g, c111b)
	default: // db >= dg >= dr
		c001r, c001g, c001b := l.at(r0, g0, b1)
		c011r, c011g, c011b := l.at(r0, g1, b1)
		add(1-db, c000r, c000g, c000b)
		add(db-dg, c001r, c001g, c001b)
		add(dg-dr, c011r, c011g, c011b)
		add(dr, c111r, c111g, c111b)
	}
	return outR, outG, outB
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

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
