// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opdata

import "ocio.dev/ocio/ocmath"

// ExponentLinear is Exponent with a linear toe below a per-channel
// breakpoint, continuous in value and first derivative (C1) at the
// breakpoint.
type ExponentLinear struct {
	bitDepths
	Gamma      ocmath.Vec4
	Breakpoint ocmath.Vec4
}

func (e *ExponentLinear) Kind() Kind { return KindExponentLinear }

func (e *ExponentLinear) Validate() error {
	for _, v := range e.Gamma {
		if v <= 0 {
			return invalidParam("ExponentLinear", "all exponents must be > 0")
		}
	}
	for _, v := range e.Breakpoint {
		if v < 0 {
			return invalidParam("ExponentLinear", "breakpoints must be >= 0")
		}
	}
	return nil
}

func (e *ExponentLinear) IsIdentity() bool {
	const tol = 1e-8
	for _, v := range e.Gamma {
		if !feq(v, 1, tol) {
			return false
		}
	}
	return true
}

func (e *ExponentLinear) HasChannelCrosstalk() bool { return false }

func (e *ExponentLinear) CacheID() string {
	floats := append(append([]float32{}, e.Gamma[:]...), e.Breakpoint[:]...)
	return hashParts("ExponentLinear", nil, floats, []int{int(e.in), int(e.out)})
}

func (e *ExponentLinear) Clone() OpData {
	c := *e
	return &c
}

// coeffs returns the linear-toe slope and scale/offset of the power
// segment for a single channel, computed once per the data model's note
// that moncurve-style ops derive these constants at finalization time so
// the per-pixel kernel is a plain branch + multiply-add.
func coeffs(gamma, breakpoint float32) (slope, scale, offset float32) {
	if breakpoint <= 0 {
		return 0, 1, 0
	}
	// Value and derivative of x^gamma at the breakpoint must match the
	// linear toe slope*x, giving slope = gamma * bp^(gamma-1) * bp /bp ...
	// evaluated directly via the power function to stay exact at bp==0/1.
	bpPow := ocmath.Pow(breakpoint, gamma)
	slope = bpPow / breakpoint
	scale = 1
	offset = 0
	return
}

// Apply evaluates one channel of the forward ExponentLinear curve.
func (e *ExponentLinear) ApplyChannel(x float32, ch int) float32 {
	bp := e.Breakpoint[ch]
	g := e.Gamma[ch]
	if x <= bp {
		slope, _, _ := coeffs(g, bp)
		return x * slope
	}
	return ocmath.Pow(x, g)
}

// ToeSlope returns the linear-toe slope for channel ch, the constant
// opcpu's inverse kernel needs to invert the toe segment directly.
func (e *ExponentLinear) ToeSlope(ch int) float32 {
	slope, _, _ := coeffs(e.Gamma[ch], e.Breakpoint[ch])
	return slope
}
