// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opdata

import (
	"ocio.dev/ocio/ocioerr"
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/optypes"
)

// singularThreshold is the spec's absolute determinant threshold below
// which a Matrix is treated as non-invertible.
const singularThreshold = 1e-12

// Matrix is `y = M*x + b`: a row-major 4x4 matrix plus a 4-vector offset.
type Matrix struct {
	bitDepths
	M      ocmath.Matrix4
	Offset ocmath.Vec4
	Dir    optypes.Direction
}

// NewMatrix builds a forward Matrix op data from a 4x4 matrix and offset.
func NewMatrix(m ocmath.Matrix4, offset ocmath.Vec4) *Matrix {
	return &Matrix{M: m, Offset: offset}
}

func (m *Matrix) Kind() Kind { return KindMatrix }

func (m *Matrix) Validate() error {
	// No parameter domain restriction beyond finiteness; inversion
	// feasibility is checked lazily by Inverse(), not Validate(), since a
	// forward-only Matrix is always valid.
	return nil
}

func (m *Matrix) IsIdentity() bool {
	const tol = 1e-8
	if !m.M.IsIdentity(tol) {
		return false
	}
	for _, v := range m.Offset {
		if v < -tol || v > tol {
			return false
		}
	}
	return true
}

// HasChannelCrosstalk reports whether M has any non-diagonal entries among
// the RGB 3x3 block.
func (m *Matrix) HasChannelCrosstalk() bool {
	const tol = 1e-8
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if r == c {
				continue
			}
			v := m.M[r*4+c]
			if v < -tol || v > tol {
				return true
			}
		}
	}
	return false
}

func (m *Matrix) CacheID() string {
	floats := append(append([]float32{}, m.M[:]...), m.Offset[:]...)
	return hashParts("Matrix", nil, floats, []int{int(m.in), int(m.out)})
}

func (m *Matrix) Clone() OpData {
	c := *m
	return &c
}

// Inverse computes the analytic inverse of the affine transform
// `y = M*x + b`, i.e. `x = M^-1*y - M^-1*b`. It returns ocioerr.NotInvertible
// when |det M| is below the spec's 1e-12 threshold.
func (m *Matrix) Inverse() (*Matrix, error) {
	invM, det := m.M.Inverse()
	if det < 0 {
		det = -det
	}
	if det < singularThreshold {
		return nil, ocioerr.New(ocioerr.KindNotInvertible, "opdata.Matrix.Inverse", "matrix determinant below threshold")
	}
	invOffset := invM.MulVec4(ocmath.Scale(m.Offset, -1))
	out := &Matrix{M: invM, Offset: invOffset, Dir: m.Dir.Opposite()}
	out.SetBitDepths(m.out, m.in)
	return out, nil
}

// ComposeMatrices fuses two matrices applied in sequence (first, then
// second) into a single equivalent Matrix: the optimizer's basic fusion
// rule for ComposeMatrix.
func ComposeMatrices(first, second *Matrix) *Matrix {
	m := second.M.Mul(first.M)
	off := ocmath.Add(second.M.MulVec4(first.Offset), second.Offset)
	out := &Matrix{M: m, Offset: off}
	out.SetBitDepths(first.in, second.out)
	return out
}
