// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opdata holds the declarative parameters of every op kind (§4.1 of
// the design spec). Each variant owns its parameter struct and implements
// the common OpData contract: Validate, IsIdentity, HasChannelCrosstalk,
// CacheID, Clone, plus bit depths; the package function IsNoOp builds on
// IsIdentity. The set of kinds is closed; Kind()
// returns a tag from the enumerated Kind type so callers can exhaustively
// switch instead of relying on dynamic type assertions alone.
package opdata

import "ocio.dev/ocio/optypes"

// Kind tags the closed set of op variants.
type Kind int

const (
	KindMatrix Kind = iota
	KindRange
	KindExponent
	KindExponentLinear
	KindLog
	KindGamma
	KindLut1D
	KindLut3D
	KindCDL
	KindFixedFunction
	KindExposureContrast
	KindReference
	KindNoOp
)

func (k Kind) String() string {
	switch k {
	case KindMatrix:
		return "Matrix"
	case KindRange:
		return "Range"
	case KindExponent:
		return "Exponent"
	case KindExponentLinear:
		return "ExponentLinear"
	case KindLog:
		return "Log"
	case KindGamma:
		return "Gamma"
	case KindLut1D:
		return "Lut1D"
	case KindLut3D:
		return "Lut3D"
	case KindCDL:
		return "CDL"
	case KindFixedFunction:
		return "FixedFunction"
	case KindExposureContrast:
		return "ExposureContrast"
	case KindReference:
		return "Reference"
	case KindNoOp:
		return "NoOp"
	default:
		return "Unknown"
	}
}

// OpData is the contract every op-kind parameter struct implements.
type OpData interface {
	// Kind identifies which variant this is.
	Kind() Kind

	// Validate fails with ocioerr.InvalidParameters when a parameter is
	// outside its domain.
	Validate() error

	// IsIdentity is an identity predicate under the op's own numeric
	// semantics. Parameters are compared with a per-kind tolerance: 1e-8
	// for scalar parameters, 1e-5 for 1D and 3D LUT table entries.
	IsIdentity() bool

	// HasChannelCrosstalk reports whether an output channel can depend on
	// more than its own input channel.
	HasChannelCrosstalk() bool

	// CacheID is a deterministic hash of the canonicalized parameters,
	// direction, style, and interpolation.
	CacheID() string

	// Clone deep-copies the OpData.
	Clone() OpData

	// InBitDepth/OutBitDepth govern only the scaling interpretation of
	// on-disk (CLF/CTF) parameters, never the processing precision.
	InBitDepth() optypes.BitDepth
	OutBitDepth() optypes.BitDepth
	SetBitDepths(in, out optypes.BitDepth)
}

// IsNoOp reports identity *and* matching bit depths, the stronger
// "IsNoOp()" predicate from §4.1.
func IsNoOp(d OpData) bool {
	return d.IsIdentity() && d.InBitDepth() == d.OutBitDepth()
}

// bitDepths is embedded by every variant to provide the InBitDepth /
// OutBitDepth / SetBitDepths boilerplate in one place.
type bitDepths struct {
	in, out optypes.BitDepth
}

func (b *bitDepths) InBitDepth() optypes.BitDepth  { return b.in }
func (b *bitDepths) OutBitDepth() optypes.BitDepth { return b.out }
func (b *bitDepths) SetBitDepths(in, out optypes.BitDepth) {
	b.in, b.out = in, out
}
