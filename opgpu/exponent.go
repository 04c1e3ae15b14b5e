// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opgpu

import (
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
	"ocio.dev/ocio/shaderdesc"
)

type exponentEmitter struct{ d *opdata.Exponent }

func (e exponentEmitter) Emit(d *shaderdesc.Desc, dir optypes.Direction) error {
	g := e.d.Gamma
	if dir == optypes.Inverse {
		g = e.d.Inverse().Gamma
	}
	bodyf(d, "%s.rgb = pow(max(%s.rgb, vec3(0.0)), vec3(%g, %g, %g));", pixel(d), pixel(d), g[0], g[1], g[2])
	return nil
}

type exponentLinearEmitter struct{ d *opdata.ExponentLinear }

func (e exponentLinearEmitter) Emit(d *shaderdesc.Desc, dir optypes.Direction) error {
	c := e.d
	if dir == optypes.Forward {
		name := d.NextResourceName("explin")
		d.AddHelper(explinHelper(name, c.Gamma[0], c.Gamma[1], c.Gamma[2], c.Breakpoint[0], c.Breakpoint[1], c.Breakpoint[2], c.ToeSlope(0), c.ToeSlope(1), c.ToeSlope(2)))
		bodyf(d, "%s.rgb = %s(%s.rgb);", pixel(d), name, pixel(d))
		return nil
	}
	name := d.NextResourceName("explininv")
	d.AddHelper(explinInverseHelper(name, c.Gamma[0], c.Gamma[1], c.Gamma[2], c.Breakpoint[0], c.Breakpoint[1], c.Breakpoint[2], c.ToeSlope(0), c.ToeSlope(1), c.ToeSlope(2)))
	bodyf(d, "%s.rgb = %s(%s.rgb);", pixel(d), name, pixel(d))
	return nil
}

func explinHelper(name string, g0, g1, g2, bp0, bp1, bp2, s0, s1, s2 float32) string {
	return fmtHelper(
		"vec3 %s(vec3 x) {\n"+
			"  vec3 bp = vec3(%g, %g, %g);\n"+
			"  vec3 slope = vec3(%g, %g, %g);\n"+
			"  vec3 gamma = vec3(%g, %g, %g);\n"+
			"  vec3 toe = x * slope;\n"+
			"  vec3 pw = pow(max(x, vec3(0.0)), gamma);\n"+
			"  return mix(pw, toe, step(x, bp));\n"+
			"}\n",
		name, bp0, bp1, bp2, s0, s1, s2, g0, g1, g2,
	)
}

func explinInverseHelper(name string, g0, g1, g2, bp0, bp1, bp2, s0, s1, s2 float32) string {
	return fmtHelper(
		"vec3 %s(vec3 y) {\n"+
			"  vec3 bp = vec3(%g, %g, %g);\n"+
			"  vec3 slope = vec3(%g, %g, %g);\n"+
			"  vec3 gamma = vec3(%g, %g, %g);\n"+
			"  vec3 yAtBp = bp * slope;\n"+
			"  vec3 linInv = y / max(slope, vec3(1e-8));\n"+
			"  vec3 powInv = pow(max(y, vec3(0.0)), 1.0/gamma);\n"+
			"  return mix(powInv, linInv, step(y, yAtBp));\n"+
			"}\n",
		name, bp0, bp1, bp2, s0, s1, s2, g0, g1, g2,
	)
}
