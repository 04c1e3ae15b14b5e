// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opgpu

import (
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
	"ocio.dev/ocio/shaderdesc"
)

type lut1DEmitter struct{ d *opdata.Lut1D }

// Emit registers R/G/B as three separable RED-only 1D (or 2D-wrapped)
// textures and samples them in the body, per §4.5 item 1. Inverse
// evaluation is not registered as a texture lookup; the GPU path for an
// inverse 1D LUT instead relies on the optimizer materializing a forward
// op (mirroring the CPU fast-inverse strategy) before reaching OpGpu.
func (e lut1DEmitter) Emit(d *shaderdesc.Desc, dir optypes.Direction) error {
	l := e.d
	interp := l.Interp.Resolve1D()
	texR, err := d.AddTexture1D(l.R, shaderdesc.ChannelRed, interp)
	if err != nil {
		return err
	}
	texG, err := d.AddTexture1D(l.G, shaderdesc.ChannelRed, interp)
	if err != nil {
		return err
	}
	texB, err := d.AddTexture1D(l.B, shaderdesc.ChannelRed, interp)
	if err != nil {
		return err
	}
	d.AddDeclaration(fmtHelper("uniform sampler1D %s;", texR.SamplerID))
	d.AddDeclaration(fmtHelper("uniform sampler1D %s;", texG.SamplerID))
	d.AddDeclaration(fmtHelper("uniform sampler1D %s;", texB.SamplerID))

	domainMin, domainMax := float32(0), float32(1)
	if l.DomainMin != 0 || l.DomainMax != 0 {
		domainMin, domainMax = l.DomainMin, l.DomainMax
	}
	bodyf(d, "{")
	bodyf(d, "  vec3 t = clamp((%s.rgb - vec3(%g)) / vec3(%g), 0.0, 1.0);",
		pixel(d), domainMin, domainMax-domainMin)
	bodyf(d, "  %s.r = texture1D(%s, t.r).r;", pixel(d), texR.SamplerID)
	bodyf(d, "  %s.g = texture1D(%s, t.g).r;", pixel(d), texG.SamplerID)
	bodyf(d, "  %s.b = texture1D(%s, t.b).r;", pixel(d), texB.SamplerID)
	bodyf(d, "}")
	return nil
}
