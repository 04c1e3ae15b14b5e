// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opcpu

import (
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
)

type logKernel struct {
	d   *opdata.Log
	dir optypes.Direction
}

func newLogKernel(d *opdata.Log, dir optypes.Direction) (Kernel, error) {
	return logKernel{d: d, dir: dir}, nil
}

func (k logKernel) ApplyRGBA(v ocmath.Vec4) ocmath.Vec4 {
	if k.dir == optypes.Forward {
		return ocmath.NewVec4(
			k.d.ApplyChannel(v[0], 0),
			k.d.ApplyChannel(v[1], 1),
			k.d.ApplyChannel(v[2], 2),
			v[3],
		)
	}
	return ocmath.NewVec4(
		k.d.InverseChannel(v[0], 0),
		k.d.InverseChannel(v[1], 1),
		k.d.InverseChannel(v[2], 2),
		v[3],
	)
}

type gammaKernel struct {
	d   *opdata.Gamma
	dir optypes.Direction
}

func newGammaKernel(d *opdata.Gamma, dir optypes.Direction) (Kernel, error) {
	return gammaKernel{d: d, dir: dir}, nil
}

func (k gammaKernel) ApplyRGBA(v ocmath.Vec4) ocmath.Vec4 {
	// Rev styles evaluate the functional inverse of the paired forward
	// curve; an Inverse kernel direction flips that choice once more.
	inverse := k.dir == optypes.Inverse
	switch k.d.Style {
	case opdata.GammaBasicRev, opdata.GammaMoncurveRev, opdata.GammaBasicMirrorRev, opdata.GammaMoncurveMirrorRev:
		inverse = !inverse
	}
	apply := k.d.ApplyChannel
	if inverse {
		apply = func(x float32, ch int) float32 {
			// invert numerically via bisection over [-4,4] since Gamma's
			// closed forms are monotonic per-channel by construction.
			lo, hi := float32(-4), float32(4)
			for i := 0; i < 40; i++ {
				mid := (lo + hi) / 2
				if k.d.ApplyChannel(mid, ch) < x {
					lo = mid
				} else {
					hi = mid
				}
			}
			return (lo + hi) / 2
		}
	}
	return ocmath.NewVec4(apply(v[0], 0), apply(v[1], 1), apply(v[2], 2), v[3])
}
