// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ocmath

// Matrix4 is a row-major 4x4 matrix: element [row*4+col].
type Matrix4 [16]float32

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// IsIdentity reports whether m equals the identity matrix within tol.
func (m Matrix4) IsIdentity(tol float32) bool {
	id := Identity4()
	for i := range m {
		if !NearlyEqual(m[i], id[i], tol, 0) {
			return false
		}
	}
	return true
}

// MulVec4 returns m*v.
func (m Matrix4) MulVec4(v Vec4) Vec4 {
	var out Vec4
	for r := 0; r < 4; r++ {
		var s float32
		for c := 0; c < 4; c++ {
			s += m[r*4+c] * v[c]
		}
		out[r] = s
	}
	return out
}

// Mul returns m*n (m applied after n).
func (m Matrix4) Mul(n Matrix4) Matrix4 {
	var out Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m[r*4+k] * n[k*4+c]
			}
			out[r*4+c] = s
		}
	}
	return out
}

// Determinant computes the 4x4 determinant by cofactor expansion.
func (m Matrix4) Determinant() float32 {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	return b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
}

// Inverse returns the analytic inverse of m together with its raw
// determinant, or the zero matrix and 0 when the determinant is exactly
// zero. It applies no singularity threshold of its own; the caller,
// opdata.Matrix, applies the spec's 1e-12 absolute threshold to the
// returned determinant.
func (m Matrix4) Inverse() (Matrix4, float32) {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if det == 0 {
		return Matrix4{}, 0
	}
	invDet := 1 / det

	var out Matrix4
	out[0] = (a11*b11 - a12*b10 + a13*b09) * invDet
	out[1] = (a02*b10 - a01*b11 - a03*b09) * invDet
	out[2] = (a31*b05 - a32*b04 + a33*b03) * invDet
	out[3] = (a22*b04 - a21*b05 - a23*b03) * invDet
	out[4] = (a12*b08 - a10*b11 - a13*b07) * invDet
	out[5] = (a00*b11 - a02*b08 + a03*b07) * invDet
	out[6] = (a32*b02 - a30*b05 - a33*b01) * invDet
	out[7] = (a20*b05 - a22*b02 + a23*b01) * invDet
	out[8] = (a10*b10 - a11*b08 + a13*b06) * invDet
	out[9] = (a01*b08 - a00*b10 - a03*b06) * invDet
	out[10] = (a30*b04 - a31*b02 + a33*b00) * invDet
	out[11] = (a21*b02 - a20*b04 - a23*b00) * invDet
	out[12] = (a11*b07 - a10*b09 - a12*b06) * invDet
	out[13] = (a00*b09 - a01*b07 + a02*b06) * invDet
	out[14] = (a31*b01 - a30*b03 - a32*b00) * invDet
	out[15] = (a20*b03 - a21*b01 + a22*b00) * invDet
	return out, det
}
