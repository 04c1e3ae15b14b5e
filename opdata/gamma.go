// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opdata

import "ocio.dev/ocio/ocmath"

// GammaStyle is the closed set of Gamma curve families.
type GammaStyle int

const (
	GammaBasicFwd GammaStyle = iota
	GammaBasicRev
	GammaMoncurveFwd
	GammaMoncurveRev
	GammaBasicMirrorFwd
	GammaBasicMirrorRev
	GammaMoncurveMirrorFwd
	GammaMoncurveMirrorRev
	GammaBasicPassThruFwd
	GammaBasicPassThruRev
)

func (s GammaStyle) String() string {
	names := [...]string{
		"basicFwd", "basicRev", "moncurveFwd", "moncurveRev",
		"basicMirrorFwd", "basicMirrorRev", "moncurveMirrorFwd", "moncurveMirrorRev",
		"basicPassThruFwd", "basicPassThruRev",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

func (s GammaStyle) isMirror() bool {
	return s == GammaBasicMirrorFwd || s == GammaBasicMirrorRev || s == GammaMoncurveMirrorFwd || s == GammaMoncurveMirrorRev
}

func (s GammaStyle) isMoncurve() bool {
	return s == GammaMoncurveFwd || s == GammaMoncurveRev || s == GammaMoncurveMirrorFwd || s == GammaMoncurveMirrorRev
}

func (s GammaStyle) isPassThru() bool {
	return s == GammaBasicPassThruFwd || s == GammaBasicPassThruRev
}

func (s GammaStyle) isForward() bool {
	return s == GammaBasicFwd || s == GammaMoncurveFwd || s == GammaBasicMirrorFwd || s == GammaMoncurveMirrorFwd || s == GammaBasicPassThruFwd
}

// IsMirror reports whether s uses the sign-preserving odd extension, for
// callers outside this package (the GPU emitter) that need to branch on it.
func (s GammaStyle) IsMirror() bool { return s.isMirror() }

// IsMoncurve reports whether s is one of the moncurve (linear-toe) styles.
func (s GammaStyle) IsMoncurve() bool { return s.isMoncurve() }

// IsPassThru reports whether s is a pass-through style.
func (s GammaStyle) IsPassThru() bool { return s.isPassThru() }

// Gamma is the general gamma-curve op: style selects basic/moncurve, plain
// or mirrored (sign-preserving odd extension), or pass-through, each in a
// forward or reverse direction; Value/Offset are per-channel.
type Gamma struct {
	bitDepths
	Style  GammaStyle
	Value  ocmath.Vec4
	Offset ocmath.Vec4
}

func (g *Gamma) Kind() Kind { return KindGamma }

func (g *Gamma) Validate() error {
	if g.Style.isPassThru() {
		return nil
	}
	for _, v := range g.Value {
		if v <= 0 {
			return invalidParam("Gamma", "gamma value must be > 0")
		}
	}
	return nil
}

func (g *Gamma) IsIdentity() bool {
	if g.Style.isPassThru() {
		return true
	}
	const tol = 1e-8
	for i, v := range g.Value {
		if !feq(v, 1, tol) {
			return false
		}
		if g.Style.isMoncurve() && !feq(g.Offset[i], 0, tol) {
			return false
		}
	}
	return true
}

func (g *Gamma) HasChannelCrosstalk() bool { return false }

func (g *Gamma) CacheID() string {
	floats := append(append([]float32{}, g.Value[:]...), g.Offset[:]...)
	return hashParts("Gamma", []string{g.Style.String()}, floats, []int{int(g.in), int(g.out)})
}

func (g *Gamma) Clone() OpData {
	c := *g
	return &c
}

// ApplyChannel evaluates the forward curve for one channel. Mirror styles
// use a sign-preserving odd extension: f(-x) = -f(x).
func (g *Gamma) ApplyChannel(x float32, ch int) float32 {
	if g.Style.isPassThru() {
		return x
	}
	gamma := g.Value[ch]
	off := g.Offset[ch]

	eval := func(v float32) float32 {
		if g.Style.isMoncurve() {
			bp, slope, scale, offset := moncurveConsts(gamma, off)
			if v < bp {
				return slope * v
			}
			return scale * ocmath.Pow(v+offset, gamma)
		}
		return ocmath.Pow(v, gamma)
	}

	if g.Style.isMirror() && x < 0 {
		return -eval(-x)
	}
	if x < 0 {
		x = 0
	}
	return eval(x)
}

// MoncurveConsts exposes the finalized breakPnt/slope/scale/offset
// constants for channel ch, letting callers outside this package (the GPU
// emitter) bake the same closed form into generated shader source instead
// of re-deriving it.
func (g *Gamma) MoncurveConsts(ch int) (breakPnt, slope, scale, offset float32) {
	return moncurveConsts(g.Value[ch], g.Offset[ch])
}

// moncurveConsts computes breakPnt, slope, scale, offset once from
// (gamma, linearOffset) so the per-pixel evaluator is a branch plus a
// multiply-add, per §4.1.6.
func moncurveConsts(gamma, linearOffset float32) (breakPnt, slope, scale, offset float32) {
	if linearOffset <= 0 {
		return 0, 1, 1, 0
	}
	offset = linearOffset
	// breakPnt chosen so the power segment and linear toe meet with equal
	// value and slope: breakPnt = offset / (gamma - 1).
	if gamma <= 1 {
		breakPnt = 0
	} else {
		breakPnt = offset / (gamma - 1)
	}
	scale = 1 / ocmath.Pow(1+offset, gamma)
	slope = scale * gamma * ocmath.Pow(breakPnt+offset, gamma-1)
	return
}
