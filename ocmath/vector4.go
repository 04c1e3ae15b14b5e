// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ocmath provides the float32 vector and matrix primitives shared
// by the op data, CPU kernel, and GPU shader packages. Four-lane values use
// [golang.org/x/image/math/f32.Vec4] so that the same storage shape can be
// handed directly to SIMD-friendly kernels without a conversion copy.
package ocmath

import "golang.org/x/image/math/f32"

// Vec4 is an RGBA (or homogeneous xyzw) value.
type Vec4 = f32.Vec4

// NewVec4 builds a Vec4 from four scalars.
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// Add returns a+b componentwise.
func Add(a, b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub returns a-b componentwise.
func Sub(a, b Vec4) Vec4 {
	return Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Scale returns v scaled by s.
func Scale(v Vec4, s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// pack4 lifts a scalar lane function to all four channels. The name and
// shape follow the 4-lane SSE-style abstraction used throughout the CPU
// kernels: a single scalar implementation expresses both the scalar and
// vector evaluation paths.
func pack4(f func(float32) float32, v Vec4) Vec4 {
	return Vec4{f(v[0]), f(v[1]), f(v[2]), f(v[3])}
}

// Pack4 applies f independently to each of the four lanes of v.
func Pack4(f func(float32) float32, v Vec4) Vec4 {
	return pack4(f, v)
}

// Power4 raises each of the first three (color) lanes of v to the
// corresponding exponent in e, leaving the fourth lane (typically alpha)
// untouched. Negative bases are clamped to zero first, per the Exponent op
// invariant in the data model.
func Power4(v, e Vec4) Vec4 {
	return Vec4{
		powClamped(v[0], e[0]),
		powClamped(v[1], e[1]),
		powClamped(v[2], e[2]),
		v[3],
	}
}

// Max4 returns the componentwise maximum of v and the scalar lo.
func Max4(v Vec4, lo float32) Vec4 {
	return pack4(func(x float32) float32 {
		if x < lo {
			return lo
		}
		return x
	}, v)
}

// Min4 returns the componentwise minimum of v and the scalar hi.
func Min4(v Vec4, hi float32) Vec4 {
	return pack4(func(x float32) float32 {
		if x > hi {
			return hi
		}
		return x
	}, v)
}

// Clamp4 clamps every lane of v to [lo,hi].
func Clamp4(v Vec4, lo, hi float32) Vec4 {
	return Min4(Max4(v, lo), hi)
}

// Select4 returns a[i] where mask[i] is non-zero and b[i] otherwise, the
// branch-free analogue of the SSE blend instruction used to keep scalar and
// vector kernel code identical.
func Select4(mask, a, b Vec4) Vec4 {
	var out Vec4
	for i := 0; i < 4; i++ {
		if mask[i] != 0 {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}
