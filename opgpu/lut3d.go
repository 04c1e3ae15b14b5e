// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opgpu

import (
	"ocio.dev/ocio/opcpu"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
	"ocio.dev/ocio/shaderdesc"
)

type lut3DEmitter struct{ d *opdata.Lut3D }

// Emit registers the cube as an RGB 3D texture; an inverse request first
// materializes the fast-inverse cube (opcpu.MaterializeFastInverse), the
// same strategy the CPU kernel uses, so the GPU and CPU evaluators agree.
func (e lut3DEmitter) Emit(d *shaderdesc.Desc, dir optypes.Direction) error {
	l := e.d
	if dir == optypes.Inverse {
		l = opcpu.MaterializeFastInverse(l, opdata.DefaultFastInverseEdge)
	}
	tex, err := d.AddTexture3D(l.Table, l.Edge, l.Interp.Resolve3D())
	if err != nil {
		return err
	}
	d.AddDeclaration(fmtHelper("uniform sampler3D %s;", tex.SamplerID))
	bodyf(d, "%s.rgb = texture3D(%s, %s.rgb).rgb;", pixel(d), tex.SamplerID, pixel(d))
	return nil
}
