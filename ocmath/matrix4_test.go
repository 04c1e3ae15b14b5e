// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ocmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix4InverseRoundTrip(t *testing.T) {
	m := Matrix4{
		0.7537, 0.1337, 0.1120, 0,
		0.0212, 1.0054, -0.0266, 0,
		-0.0098, 0.0045, 1.0053, 0,
		0, 0, 0, 1,
	}
	inv, det := m.Inverse()
	assert.NotZero(t, det)

	prod := inv.Mul(m)
	assert.True(t, prod.IsIdentity(1e-5), "expected identity, got %v", prod)
}

func TestMatrix4Singular(t *testing.T) {
	m := Matrix4{} // all zero, determinant 0
	_, det := m.Inverse()
	assert.Equal(t, float32(0), det)
}

func TestNearlyEqual(t *testing.T) {
	assert.True(t, NearlyEqual(1.0, 1.0+1e-7, 1e-5, 1e-5))
	assert.False(t, NearlyEqual(1.0, 1.1, 1e-5, 1e-5))
}
