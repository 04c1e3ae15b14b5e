// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opdata

import (
	"math"

	"ocio.dev/ocio/ocioerr"
	"ocio.dev/ocio/optypes"
)

// MaxLut1DLength is the spec's N <= 2^22 bound.
const MaxLut1DLength = 1 << 22

// Lut1D is an N-sample-per-channel 1D lookup table.
type Lut1D struct {
	bitDepths
	R, G, B     []float32
	DomainMin   float32
	DomainMax   float32
	HalfDomain  bool
	HueAdjust   bool
	Interp      optypes.Interpolation
}

func (l *Lut1D) Kind() Kind { return KindLut1D }

func (l *Lut1D) Validate() error {
	n := len(l.R)
	if n == 0 || len(l.G) != n || len(l.B) != n {
		return invalidParam("Lut1D", "R,G,B arrays must be equal non-zero length")
	}
	if n > MaxLut1DLength {
		return invalidParam("Lut1D", "length exceeds 2^22")
	}
	return nil
}

// ValidateInverse additionally requires each channel to be monotonic,
// since inverse evaluation depends on per-channel binary search over
// monotonic segments.
func (l *Lut1D) ValidateInverse() error {
	if err := l.Validate(); err != nil {
		return err
	}
	for _, ch := range [][]float32{l.R, l.G, l.B} {
		if !isMonotonic(ch) {
			return ocioerr.New(ocioerr.KindNotInvertible, "opdata.Lut1D.ValidateInverse", "channel is not monotonic")
		}
	}
	return nil
}

func isMonotonic(v []float32) bool {
	if len(v) < 2 {
		return true
	}
	asc := v[1] >= v[0]
	for i := 1; i < len(v); i++ {
		if asc && v[i] < v[i-1] {
			return false
		}
		if !asc && v[i] > v[i-1] {
			return false
		}
	}
	return true
}

// IsIdentity reports whether every sample equals the identity ramp to
// within 1e-5 absolute tolerance, the threshold named in §4.1.3.
func (l *Lut1D) IsIdentity() bool {
	const tol = 1e-5
	n := len(l.R)
	if n < 2 {
		return true
	}
	domainMin, domainMax := l.domain()
	for i := 0; i < n; i++ {
		t := domainMin + (domainMax-domainMin)*float32(i)/float32(n-1)
		if !feq(l.R[i], t, tol) || !feq(l.G[i], t, tol) || !feq(l.B[i], t, tol) {
			return false
		}
	}
	return true
}

func (l *Lut1D) domain() (min, max float32) {
	if l.DomainMin == 0 && l.DomainMax == 0 {
		return 0, 1
	}
	return l.DomainMin, l.DomainMax
}

func (l *Lut1D) HasChannelCrosstalk() bool { return l.HueAdjust }

func (l *Lut1D) CacheID() string {
	floats := make([]float32, 0, len(l.R)+len(l.G)+len(l.B)+2)
	floats = append(floats, l.DomainMin, l.DomainMax)
	floats = append(floats, l.R...)
	floats = append(floats, l.G...)
	floats = append(floats, l.B...)
	ints := []int{int(l.in), int(l.out), b2i(l.HalfDomain), b2i(l.HueAdjust), int(l.Interp)}
	return hashParts("Lut1D", nil, floats, ints)
}

func (l *Lut1D) Clone() OpData {
	c := *l
	c.R = append([]float32{}, l.R...)
	c.G = append([]float32{}, l.G...)
	c.B = append([]float32{}, l.B...)
	return &c
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// halfToIndex reinterprets x as an IEEE half-precision bit pattern and
// returns the raw 16-bit integer as a float index, the non-uniform,
// dense-near-zero sampling used by HalfDomain LUTs.
func halfToIndex(x float32) float32 {
	h := float32ToHalfBits(x)
	return float32(h)
}

// float32ToHalfBits converts x to its IEEE 754 half-precision bit pattern
// by truncating the mantissa. Values below the normal half range flush to
// signed zero; values too large for half (and NaN) map to the signed
// infinity pattern 0x7c00.
func float32ToHalfBits(x float32) uint16 {
	bits := math.Float32bits(x)
	sign := uint16((bits >> 16) & 0x8000)
	exp := int32((bits>>23)&0xff) - 127 + 15
	mant := bits & 0x7fffff
	if exp <= 0 {
		return sign
	}
	if exp >= 0x1f {
		return sign | 0x7c00
	}
	return sign | uint16(exp<<10) | uint16(mant>>13)
}

// Index converts a normalized input in the LUT's domain to a fractional
// sample index in [0, N-1].
func (l *Lut1D) Index(x float32) float32 {
	n := len(l.R)
	if l.HalfDomain {
		return halfToIndex(x)
	}
	domainMin, domainMax := l.domain()
	if domainMax == domainMin {
		return 0
	}
	t := (x - domainMin) / (domainMax - domainMin)
	return t * float32(n-1)
}

// SampleChannel interpolates one channel at a fractional index, clamping
// out-of-domain indices (nearest or linear per Interp).
func (l *Lut1D) SampleChannel(ch []float32, idx float32) float32 {
	n := len(ch)
	if idx <= 0 {
		return ch[0]
	}
	if idx >= float32(n-1) {
		return ch[n-1]
	}
	if l.Interp.Resolve1D() == optypes.Nearest {
		return ch[int(idx+0.5)]
	}
	lo := int(idx)
	hi := lo + 1
	frac := idx - float32(lo)
	return ch[lo]*(1-frac) + ch[hi]*frac
}

// ApplyHueAdjust rescales rgb to preserve the hue of the maximum channel,
// the ACES 1.0 hue-preserving rescale named in §4.1.3.
func ApplyHueAdjust(orig, result [3]float32) [3]float32 {
	maxOrig := orig[0]
	maxIdx := 0
	for i := 1; i < 3; i++ {
		if orig[i] > maxOrig {
			maxOrig = orig[i]
			maxIdx = i
		}
	}
	if maxOrig == 0 {
		return result
	}
	ratio := result[maxIdx] / maxOrig
	return [3]float32{orig[0] * ratio, orig[1] * ratio, orig[2] * ratio}
}
