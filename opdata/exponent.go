// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opdata

import "ocio.dev/ocio/ocmath"

// Exponent carries four exponents (R, G, B, A). Apply raises R, G and B to
// their own exponents, clamping the base to >=0 first, and passes alpha
// through unchanged; the alpha exponent takes part only in validation,
// identity, inversion and composition.
type Exponent struct {
	bitDepths
	Gamma ocmath.Vec4 // four exponents, R,G,B,A
}

func NewExponent(r, g, b, a float32) *Exponent {
	return &Exponent{Gamma: ocmath.NewVec4(r, g, b, a)}
}

func (e *Exponent) Kind() Kind { return KindExponent }

func (e *Exponent) Validate() error {
	for _, v := range e.Gamma {
		if v <= 0 {
			return invalidParam("Exponent", "all exponents must be > 0")
		}
	}
	return nil
}

func (e *Exponent) IsIdentity() bool {
	const tol = 1e-8
	for _, v := range e.Gamma {
		if !feq(v, 1, tol) {
			return false
		}
	}
	return true
}

func (e *Exponent) HasChannelCrosstalk() bool { return false }

func (e *Exponent) CacheID() string {
	return hashParts("Exponent", nil, e.Gamma[:], []int{int(e.in), int(e.out)})
}

func (e *Exponent) Clone() OpData {
	c := *e
	return &c
}

// Inverse returns the reciprocal-exponent Exponent, valid whenever
// Validate() holds (every component strictly positive).
func (e *Exponent) Inverse() *Exponent {
	inv := ocmath.NewVec4(1/e.Gamma[0], 1/e.Gamma[1], 1/e.Gamma[2], 1/e.Gamma[3])
	out := &Exponent{Gamma: inv}
	out.SetBitDepths(e.out, e.in)
	return out
}

// ComposeExponents multiplies two exponents applied in sequence, the
// "two exponents: multiply the exponents" optimizer rule.
func ComposeExponents(first, second *Exponent) *Exponent {
	out := &Exponent{Gamma: ocmath.NewVec4(
		first.Gamma[0]*second.Gamma[0],
		first.Gamma[1]*second.Gamma[1],
		first.Gamma[2]*second.Gamma[2],
		first.Gamma[3]*second.Gamma[3],
	)}
	out.SetBitDepths(first.in, second.out)
	return out
}

// Apply evaluates the forward exponent on a single RGBA pixel.
func (e *Exponent) Apply(v ocmath.Vec4) ocmath.Vec4 {
	return ocmath.Power4(v, e.Gamma)
}
