// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opcpu

import (
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
)

type exponentKernel struct {
	gamma ocmath.Vec4
}

func newExponentKernel(d *opdata.Exponent, dir optypes.Direction) (Kernel, error) {
	g := d.Gamma
	if dir == optypes.Inverse {
		g = d.Inverse().Gamma
	}
	return exponentKernel{gamma: g}, nil
}

func (k exponentKernel) ApplyRGBA(v ocmath.Vec4) ocmath.Vec4 {
	return ocmath.Power4(v, k.gamma)
}

type exponentLinearKernel struct {
	d   *opdata.ExponentLinear
	dir optypes.Direction
}

func newExponentLinearKernel(d *opdata.ExponentLinear, dir optypes.Direction) (Kernel, error) {
	return exponentLinearKernel{d: d, dir: dir}, nil
}

func (k exponentLinearKernel) ApplyRGBA(v ocmath.Vec4) ocmath.Vec4 {
	if k.dir == optypes.Forward {
		return ocmath.NewVec4(
			k.d.ApplyChannel(v[0], 0),
			k.d.ApplyChannel(v[1], 1),
			k.d.ApplyChannel(v[2], 2),
			v[3],
		)
	}
	// Inverse: invert the piecewise function per-channel via closed form
	// (power segment inverse, then linear-toe inverse).
	inv := func(y, gamma, bp, slope float32) float32 {
		yAtBp := bp * slope
		if y <= yAtBp {
			if slope == 0 {
				return 0
			}
			return y / slope
		}
		return ocmath.Pow(y, 1/gamma)
	}
	return ocmath.NewVec4(
		inv(v[0], k.d.Gamma[0], k.d.Breakpoint[0], k.d.ToeSlope(0)),
		inv(v[1], k.d.Gamma[1], k.d.Breakpoint[1], k.d.ToeSlope(1)),
		inv(v[2], k.d.Gamma[2], k.d.Breakpoint[2], k.d.ToeSlope(2)),
		v[3],
	)
}
