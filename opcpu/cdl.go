// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opcpu

import (
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
)

type cdlKernel struct {
	d       *opdata.CDL
	forward bool
}

func newCDLKernel(d *opdata.CDL, dir optypes.Direction) (Kernel, error) {
	return cdlKernel{d: d, forward: d.IsForward() != (dir == optypes.Inverse)}, nil
}

// ApplyRGBA applies SOP then saturation when the CDL's Style and the op
// direction together select the forward evaluation (a forward style in
// the forward direction, or a reverse style inverted), and otherwise undoes
// saturation then SOP (§4.1.5).
func (k cdlKernel) ApplyRGBA(v ocmath.Vec4) ocmath.Vec4 {
	if k.forward {
		r := k.d.ApplyChannel(v[0], 0)
		g := k.d.ApplyChannel(v[1], 1)
		b := k.d.ApplyChannel(v[2], 2)
		r, g, b = k.d.ApplySaturation(r, g, b)
		return ocmath.NewVec4(r, g, b, v[3])
	}
	r, g, b := k.d.ApplySaturationInverse(v[0], v[1], v[2])
	r = k.d.ApplyChannelInverse(r, 0)
	g = k.d.ApplyChannelInverse(g, 1)
	b = k.d.ApplyChannelInverse(b, 2)
	return ocmath.NewVec4(r, g, b, v[3])
}
