// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opcpu

import (
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
)

type matrixKernel struct {
	m      ocmath.Matrix4
	offset ocmath.Vec4
}

func newMatrixKernel(d *opdata.Matrix, dir optypes.Direction) (Kernel, error) {
	if dir == optypes.Forward {
		return matrixKernel{m: d.M, offset: d.Offset}, nil
	}
	inv, err := d.Inverse()
	if err != nil {
		return nil, err
	}
	return matrixKernel{m: inv.M, offset: inv.Offset}, nil
}

func (k matrixKernel) ApplyRGBA(v ocmath.Vec4) ocmath.Vec4 {
	return ocmath.Add(k.m.MulVec4(v), k.offset)
}

func (k matrixKernel) ApplyPlanar(r, g, b, a []float32) {
	for i := range r {
		v := k.ApplyRGBA(ocmath.NewVec4(r[i], g[i], b[i], a[i]))
		r[i], g[i], b[i], a[i] = v[0], v[1], v[2], v[3]
	}
}
