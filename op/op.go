// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package op is the graph node layer of the design (§2 item 4): an Op pairs
// one opdata.OpData with an evaluation direction and knows how to clone,
// detect identities, pair up with its inverse, and fuse with compatible
// neighbors. OpList is the ordered sequence the optimizer rewrites.
package op

import (
	"ocio.dev/ocio/opcpu"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/opgpu"
	"ocio.dev/ocio/optypes"
)

// Op is one graph node: an OpData evaluated in a given direction.
type Op struct {
	Data opdata.OpData
	Dir  optypes.Direction
	Meta Metadata
}

// New wraps data for forward evaluation.
func New(data opdata.OpData) *Op { return &Op{Data: data, Dir: optypes.Forward} }

// NewInverse wraps data for inverse evaluation.
func NewInverse(data opdata.OpData) *Op { return &Op{Data: data, Dir: optypes.Inverse} }

// Clone deep-copies the op.
func (o *Op) Clone() *Op {
	return &Op{Data: o.Data.Clone(), Dir: o.Dir, Meta: o.Meta.Clone()}
}

// IsIdentity reports whether evaluating o changes no pixel, independent of
// direction (an identity op's inverse is also an identity).
func (o *Op) IsIdentity() bool { return o.Data.IsIdentity() }

// IsNoOp is the stronger identity-and-matching-bit-depths predicate.
func (o *Op) IsNoOp() bool { return opdata.IsNoOp(o.Data) }

// IsInverseOf reports whether o and other are the same OpData evaluated in
// opposite directions, the optimizer's "inverse pair" collapse
// precondition.
func (o *Op) IsInverseOf(other *Op) bool {
	if other == nil || o.Dir == other.Dir {
		return false
	}
	if o.Data.Kind() != other.Data.Kind() {
		return false
	}
	return o.Data.CacheID() == other.Data.CacheID()
}

// CanCombineWith reports whether o and next are adjacent ops the optimizer
// may fuse into one, the same-kind fusion rule named per op kind in §4.1:
// two Matrices, two Ranges, or two Exponents in the same direction.
func (o *Op) CanCombineWith(next *Op) bool {
	if next == nil || o.Dir != next.Dir {
		return false
	}
	switch o.Data.Kind() {
	case opdata.KindMatrix:
		_, ok := next.Data.(*opdata.Matrix)
		return ok
	case opdata.KindRange:
		_, ok := next.Data.(*opdata.Range)
		return ok
	case opdata.KindExponent:
		_, ok := next.Data.(*opdata.Exponent)
		return ok
	default:
		return false
	}
}

// CombineWith fuses o and next (o first, next second) into one equivalent
// Op, per the same-kind composition rule in opdata. Callers must check
// CanCombineWith first.
func (o *Op) CombineWith(next *Op) *Op {
	switch o.Data.Kind() {
	case opdata.KindMatrix:
		a, b := o.Data.(*opdata.Matrix), next.Data.(*opdata.Matrix)
		if o.Dir == optypes.Forward {
			return &Op{Data: opdata.ComposeMatrices(a, b), Dir: optypes.Forward}
		}
		return &Op{Data: opdata.ComposeMatrices(b, a), Dir: optypes.Inverse}
	case opdata.KindRange:
		a, b := o.Data.(*opdata.Range), next.Data.(*opdata.Range)
		return &Op{Data: opdata.ComposeRanges(a, b), Dir: o.Dir}
	case opdata.KindExponent:
		a, b := o.Data.(*opdata.Exponent), next.Data.(*opdata.Exponent)
		return &Op{Data: opdata.ComposeExponents(a, b), Dir: o.Dir}
	default:
		return nil
	}
}

// CPU builds the op's CPU evaluation kernel.
func (o *Op) CPU() (opcpu.Kernel, error) { return opcpu.New(o.Data, o.Dir) }

// GPU builds the op's shader emitter; callers pass o.Dir to its Emit call,
// since unlike CPU kernels, emitters are not direction-bound at build time.
func (o *Op) GPU() (opgpu.Emitter, error) { return opgpu.New(o.Data) }

// Inverse returns the same OpData evaluated in the opposite direction.
func (o *Op) Inverse() *Op {
	return &Op{Data: o.Data, Dir: o.Dir.Opposite(), Meta: o.Meta}
}
