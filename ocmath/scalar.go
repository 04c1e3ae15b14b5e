// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ocmath

import "math"

// powClamped computes x^e after clamping x to a non-negative base, per the
// Exponent op's invariant: "Clamps to >=0 before pow."
func powClamped(x, e float32) float32 {
	if x < 0 {
		x = 0
	}
	return float32(math.Pow(float64(x), float64(e)))
}

// Pow is float32 math.Pow, used by op kernels that are not vectorized over
// four lanes (Log, Gamma moncurve toe/shoulder math).
func Pow(x, e float32) float32 {
	return float32(math.Pow(float64(x), float64(e)))
}

// SignPow raises |x| to the given exponent and reapplies the original sign,
// the odd extension used by noClamp CDL power and mirror-style Gamma.
func SignPow(x, e float32) float32 {
	if x < 0 {
		return -Pow(-x, e)
	}
	return Pow(x, e)
}

// Log2 is float32 math.Log2.
func Log2(x float32) float32 {
	return float32(math.Log2(float64(x)))
}

// Log10 is float32 math.Log10.
func Log10(x float32) float32 {
	return float32(math.Log10(float64(x)))
}

// Clamp restricts x to [lo,hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp linearly interpolates between a and b by t in [0,1].
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// NearlyEqual reports whether a and b are within the given absolute or
// relative tolerance, the comparison used by the round-trip and
// optimizer-preserves-semantics testable properties.
func NearlyEqual(a, b, absTol, relTol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	if d <= absTol {
		return true
	}
	m := a
	if m < 0 {
		m = -m
	}
	if bm := b; bm < 0 {
		if -bm > m {
			m = -bm
		}
	} else if bm > m {
		m = bm
	}
	return d <= relTol*m
}
