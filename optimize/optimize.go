// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optimize is the Optimizer (§2 item 8, §4.3): it rewrites an
// op.List in place to a fixed point under a Flags set, composing,
// removing identities, pairing up inverses, and replacing ops with
// cheaper equivalents without changing observable behavior beyond the
// tolerance the flags allow.
package optimize

import (
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/op"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
)

// Flags selects which rewrites are legal, per the table in §4.3.
type Flags uint32

const (
	RemoveIdentity Flags = 1 << iota
	ComposeMatrix
	PairInverse
	ComposeSeparableLUT

	// Lossless is all of the above but only applied when the rewrite is
	// exactly invertible (no LUT resampling that introduces sampling
	// error).
	Lossless = RemoveIdentity | ComposeMatrix | PairInverse

	// Default is Lossless plus ComposeSeparableLUT's lossy LUT-fusion
	// resampling. No rewrite under any flag replaces an op that is an
	// identity only on [0,1] with a cheaper op.
	Default = RemoveIdentity | ComposeMatrix | PairInverse | ComposeSeparableLUT
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }

// Result carries the optimizer's side metadata for the processor (§4.3's
// closing rule: a lossy rewrite attaches a hint rather than silently
// degrading accuracy expectations).
type Result struct {
	LossyHint bool
}

// Run rewrites list in place to a fixed point under flags, then normalizes
// every remaining op's bit depths to F32 (§4.3 item 5). It returns metadata
// about whether any lossy rewrite was applied.
func Run(list *op.List, flags Flags) Result {
	var res Result
	for {
		changed := false
		if removeNoOpMarkers(list) {
			changed = true
		}
		if flags.has(RemoveIdentity) && removeIdentities(list) {
			changed = true
		}
		if flags.has(PairInverse) && removeInversePairs(list) {
			changed = true
		}
		if flags.has(ComposeMatrix) && promoteRangesToMatrix(list) {
			changed = true
		}
		if combineAdjacent(list, flags, &res) {
			changed = true
		}
		if !changed {
			break
		}
	}
	normalizeBitDepths(list)
	return res
}

// removeNoOpMarkers drops every builder breadcrumb (§4.2's
// FileNoOp/LookNoOp/AllocationNoOp); these never survive to a finalized
// processor regardless of flags.
func removeNoOpMarkers(list *op.List) bool {
	out := list.Ops[:0]
	changed := false
	for _, o := range list.Ops {
		if _, ok := o.Data.(*opdata.NoOp); ok {
			changed = true
			continue
		}
		out = append(out, o)
	}
	list.Ops = out
	return changed
}

// removeIdentities drops any op whose IsIdentity() holds.
func removeIdentities(list *op.List) bool {
	out := list.Ops[:0]
	changed := false
	for _, o := range list.Ops {
		if o.IsIdentity() {
			changed = true
			continue
		}
		out = append(out, o)
	}
	list.Ops = out
	return changed
}

// removeInversePairs scans for adjacent ops where the first is the exact
// inverse of the second and drops both, one pass left to right (repeated
// passes by the Run loop converge to the fixed point).
func removeInversePairs(list *op.List) bool {
	ops := list.Ops
	out := make([]*op.Op, 0, len(ops))
	changed := false
	for i := 0; i < len(ops); i++ {
		if i+1 < len(ops) && ops[i].IsInverseOf(ops[i+1]) {
			changed = true
			i++
			continue
		}
		out = append(out, ops[i])
	}
	list.Ops = out
	return changed
}

// combineAdjacent fuses adjacent same-kind ops per CanCombineWith/
// CombineWith when ComposeMatrix is set, and additionally fuses adjacent
// separable 1D LUTs when ComposeSeparableLUT is set (a lossy rewrite, so
// it sets res.LossyHint).
func combineAdjacent(list *op.List, flags Flags, res *Result) bool {
	ops := list.Ops
	out := make([]*op.Op, 0, len(ops))
	changed := false
	i := 0
	for i < len(ops) {
		if i+1 < len(ops) {
			if flags.has(ComposeMatrix) && ops[i].CanCombineWith(ops[i+1]) {
				combined := ops[i].CombineWith(ops[i+1])
				if combined != nil {
					out = append(out, combined)
					changed = true
					i += 2
					continue
				}
			}
			if flags.has(ComposeSeparableLUT) {
				if fused, ok := fuseLut1D(ops[i], ops[i+1]); ok {
					out = append(out, fused)
					res.LossyHint = true
					changed = true
					i += 2
					continue
				}
			}
		}
		out = append(out, ops[i])
		i++
	}
	list.Ops = out
	return changed
}

// fuseLut1D resamples two adjacent forward 1D LUTs into one by composing
// their sample functions over a shared domain, per §4.3 item 2's "for two
// separable 1D LUTs it resamples one through the other."
func fuseLut1D(a, b *op.Op) (*op.Op, bool) {
	la, aok := a.Data.(*opdata.Lut1D)
	lb, bok := b.Data.(*opdata.Lut1D)
	if !aok || !bok || a.Dir != optypes.Forward || b.Dir != optypes.Forward {
		return nil, false
	}
	n := len(la.R)
	if len(lb.R) > n {
		n = len(lb.R)
	}
	fused := &opdata.Lut1D{
		R: make([]float32, n), G: make([]float32, n), B: make([]float32, n),
		DomainMin: 0, DomainMax: 1,
	}
	for i := 0; i < n; i++ {
		t := float32(i) / float32(n-1)
		fused.R[i] = lb.SampleChannel(lb.R, lb.Index(la.SampleChannel(la.R, la.Index(t))))
		fused.G[i] = lb.SampleChannel(lb.G, lb.Index(la.SampleChannel(la.G, la.Index(t))))
		fused.B[i] = lb.SampleChannel(lb.B, lb.Index(la.SampleChannel(la.B, la.Index(t))))
	}
	fused.SetBitDepths(la.InBitDepth(), lb.OutBitDepth())
	return op.New(fused), true
}

// promoteRangesToMatrix rewrites every pure-scale-offset Range (both ends
// closed) into an equivalent Matrix, enabling further matrix fusion.
func promoteRangesToMatrix(list *op.List) bool {
	changed := false
	for i, o := range list.Ops {
		r, ok := o.Data.(*opdata.Range)
		if !ok || o.Dir != optypes.Forward || !r.IsPureScaleOffset() {
			continue
		}
		scale, offset := r.ScaleOffset()
		m := opdata.NewMatrix(diagonalScale(scale), ocmath.NewVec4(offset, offset, offset, 0))
		m.SetBitDepths(r.InBitDepth(), r.OutBitDepth())
		list.Ops[i] = op.New(m)
		changed = true
	}
	return changed
}

// normalizeBitDepths sets every remaining op's internal bit depths to F32,
// per §4.3 item 5: conversions to/from the requested I/O bit depths are
// the CPU processor boundary's job, not an internal op's.
func normalizeBitDepths(list *op.List) {
	for _, o := range list.Ops {
		o.Data.SetBitDepths(optypes.F32, optypes.F32)
	}
}

// diagonalScale builds the 4x4 matrix that scales r,g,b by the same factor
// and passes alpha through untouched.
func diagonalScale(s float32) ocmath.Matrix4 {
	return ocmath.Matrix4{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, 1,
	}
}
