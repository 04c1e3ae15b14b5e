// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opdata

import "ocio.dev/ocio/ocmath"

// CDLStyle is the closed set of ASC CDL clamp/direction combinations
// described in §4.1.5.
type CDLStyle int

const (
	CDLv12Fwd CDLStyle = iota
	CDLv12Rev
	CDLNoClampFwd
	CDLNoClampRev
)

func (s CDLStyle) String() string {
	switch s {
	case CDLv12Fwd:
		return "v1_2_Fwd"
	case CDLv12Rev:
		return "v1_2_Rev"
	case CDLNoClampFwd:
		return "noClampFwd"
	case CDLNoClampRev:
		return "noClampRev"
	default:
		return "unknown"
	}
}

func (s CDLStyle) clamps() bool    { return s == CDLv12Fwd || s == CDLv12Rev }
func (s CDLStyle) isForward() bool { return s == CDLv12Fwd || s == CDLNoClampFwd }

// IsForward reports whether c's style applies SOP-then-saturation (true)
// or undoes saturation-then-SOP (false).
func (c *CDL) IsForward() bool { return c.Style.isForward() }

// ClampsPublic reports whether s clamps to [0,1] (v1.2 styles) rather than
// using the sign-preserving odd extension (noClamp styles), exported for
// the GPU emitter.
func (s CDLStyle) ClampsPublic() bool { return s.clamps() }

// CDL is the ASC Color Decision List transform:
// out = (slope*in + offset)^power, followed by a saturation blend using
// luma coefficients.
type CDL struct {
	bitDepths
	Style      CDLStyle
	Slope      ocmath.Vec4 // r,g,b,_
	Offset     ocmath.Vec4
	Power      ocmath.Vec4
	Saturation float32
	Luma       ocmath.Vec4 // the config's luma coefficients, r,g,b
}

func (c *CDL) Kind() Kind { return KindCDL }

func (c *CDL) Validate() error {
	for i := 0; i < 3; i++ {
		if c.Slope[i] < 0 {
			return invalidParam("CDL", "slope must be >= 0")
		}
		if c.Power[i] <= 0 {
			return invalidParam("CDL", "power must be > 0")
		}
	}
	if c.Saturation < 0 {
		return invalidParam("CDL", "saturation must be >= 0")
	}
	return nil
}

func (c *CDL) IsIdentity() bool {
	const tol = 1e-8
	for i := 0; i < 3; i++ {
		if !feq(c.Slope[i], 1, tol) || !feq(c.Offset[i], 0, tol) || !feq(c.Power[i], 1, tol) {
			return false
		}
	}
	return feq(c.Saturation, 1, tol)
}

func (c *CDL) HasChannelCrosstalk() bool {
	const tol = 1e-8
	return !feq(c.Saturation, 1, tol)
}

func (c *CDL) CacheID() string {
	floats := append(append(append([]float32{}, c.Slope[:3]...), c.Offset[:3]...), c.Power[:3]...)
	floats = append(floats, c.Saturation)
	return hashParts("CDL", []string{c.Style.String()}, floats, []int{int(c.in), int(c.out)})
}

func (c *CDL) Clone() OpData {
	cc := *c
	return &cc
}

// ApplyChannel evaluates slope/offset/power for one channel, honoring the
// style's clamp-at-0/clamp-at-1 behavior or the sign-preserving odd
// extension for noClamp styles.
func (c *CDL) ApplyChannel(x float32, ch int) float32 {
	v := c.Slope[ch]*x + c.Offset[ch]
	if c.Style.clamps() && v < 0 {
		v = 0
	}
	var p float32
	if c.Style.clamps() {
		p = ocmath.Pow(v, c.Power[ch])
	} else {
		p = ocmath.SignPow(v, c.Power[ch])
	}
	if c.Style.clamps() && p > 1 {
		p = 1
	}
	return p
}

// ApplySaturation blends rgb with its luma-weighted grayscale equivalent by
// Saturation, the final stage of the forward CDL.
func (c *CDL) ApplySaturation(r, g, b float32) (float32, float32, float32) {
	luma := r*c.Luma[0] + g*c.Luma[1] + b*c.Luma[2]
	s := c.Saturation
	return luma + (r-luma)*s, luma + (g-luma)*s, luma + (b-luma)*s
}

// ApplySaturationInverse undoes ApplySaturation given the same Saturation
// and Luma weights, the first stage of a reverse-style CDL.
func (c *CDL) ApplySaturationInverse(r, g, b float32) (float32, float32, float32) {
	if c.Saturation == 0 {
		return r, g, b
	}
	luma := (r*c.Luma[0] + g*c.Luma[1] + b*c.Luma[2]) // luma of the saturated triple is not
	// separable from the unsaturated one in closed form for arbitrary Luma
	// weights, so this inverts under the same assumption OCIO's CDL op
	// makes: luma is invariant under the saturation blend.
	s := c.Saturation
	inv := func(x float32) float32 { return luma + (x-luma)/s }
	return inv(r), inv(g), inv(b)
}

// ApplyChannelInverse evaluates the inverse of ApplyChannel for one
// channel: undo the power, then the slope/offset.
func (c *CDL) ApplyChannelInverse(y float32, ch int) float32 {
	v := y
	if c.Style.clamps() {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		v = ocmath.Pow(v, 1/c.Power[ch])
	} else {
		v = ocmath.SignPow(v, 1/c.Power[ch])
	}
	if c.Slope[ch] == 0 {
		return 0
	}
	return (v - c.Offset[ch]) / c.Slope[ch]
}
