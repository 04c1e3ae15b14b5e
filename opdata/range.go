// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opdata

// Range is a piecewise-linear map `[minIn,maxIn] -> [minOut,maxOut]`, where
// either bound may be open (nil in the on-disk form, represented here with
// the HasXxx flags rather than NaN so zero-valued Range literals are not
// accidentally "open").
type Range struct {
	bitDepths
	MinIn, MaxIn   float32
	MinOut, MaxOut float32
	HasMinIn       bool
	HasMaxIn       bool
	HasMinOut      bool
	HasMaxOut      bool
}

func (r *Range) Kind() Kind { return KindRange }

func (r *Range) Validate() error {
	if r.HasMinIn && r.HasMaxIn && r.MinIn > r.MaxIn {
		return invalidParam("Range", "minIn must be <= maxIn")
	}
	if r.HasMinOut && r.HasMaxOut && r.MinOut > r.MaxOut {
		return invalidParam("Range", "minOut must be <= maxOut")
	}
	return nil
}

// IsIdentity is true when all bounds are open (per the Range invariant
// table) or when the closed bounds describe a pure pass-through mapping.
func (r *Range) IsIdentity() bool {
	if !r.HasMinIn && !r.HasMaxIn && !r.HasMinOut && !r.HasMaxOut {
		return true
	}
	if r.HasMinIn && r.HasMaxIn && r.HasMinOut && r.HasMaxOut {
		const tol = 1e-8
		return feq(r.MinIn, r.MinOut, tol) && feq(r.MaxIn, r.MaxOut, tol)
	}
	return false
}

func (r *Range) HasChannelCrosstalk() bool { return false }

func (r *Range) CacheID() string {
	floats := []float32{b2f(r.HasMinIn), r.MinIn, b2f(r.HasMaxIn), r.MaxIn, b2f(r.HasMinOut), r.MinOut, b2f(r.HasMaxOut), r.MaxOut}
	return hashParts("Range", nil, floats, []int{int(r.in), int(r.out)})
}

func (r *Range) Clone() OpData {
	c := *r
	return &c
}

// IsPureScaleOffset reports whether both ends are closed, making this
// Range equivalent to a Matrix (scale + offset) — the "Range -> matrix
// promotion" optimizer rewrite's precondition.
func (r *Range) IsPureScaleOffset() bool {
	return r.HasMinIn && r.HasMaxIn && r.HasMinOut && r.HasMaxOut
}

// ScaleOffset returns the (scale, offset) pair such that
// `out = in*scale + offset` when IsPureScaleOffset is true.
func (r *Range) ScaleOffset() (scale, offset float32) {
	scale = (r.MaxOut - r.MinOut) / (r.MaxIn - r.MinIn)
	offset = r.MinOut - r.MinIn*scale
	return
}

// Apply evaluates the forward Range map on a single scalar: clamp to the
// input domain (where closed), scale/offset, clamp to the output domain
// (where closed).
func (r *Range) Apply(x float32) float32 {
	if r.HasMinIn && x < r.MinIn {
		x = r.MinIn
	}
	if r.HasMaxIn && x > r.MaxIn {
		x = r.MaxIn
	}
	if r.IsPureScaleOffset() {
		scale, offset := r.ScaleOffset()
		y := x*scale + offset
		return y
	}
	y := x
	if r.HasMinOut && y < r.MinOut {
		y = r.MinOut
	}
	if r.HasMaxOut && y > r.MaxOut {
		y = r.MaxOut
	}
	return y
}

// ComposeRanges tightens two adjacent ranges: intersect the output domain
// of first with the input domain of second and propagate, per the
// Range composition rule in §4.1.2.
func ComposeRanges(first, second *Range) *Range {
	out := &Range{
		MinIn: first.MinIn, HasMinIn: first.HasMinIn,
		MaxIn: first.MaxIn, HasMaxIn: first.HasMaxIn,
		MinOut: second.MinOut, HasMinOut: second.HasMinOut,
		MaxOut: second.MaxOut, HasMaxOut: second.HasMaxOut,
	}
	out.SetBitDepths(first.in, second.out)
	return out
}

func feq(a, b, tol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func b2f(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
