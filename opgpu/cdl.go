// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opgpu

import (
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
	"ocio.dev/ocio/shaderdesc"
)

type cdlEmitter struct{ d *opdata.CDL }

func (e cdlEmitter) Emit(d *shaderdesc.Desc, dir optypes.Direction) error {
	c := e.d
	name := d.NextResourceName("cdl")
	clampExpr := "clamp(v, 0.0, 1.0)"
	powExpr := "pow(v, power)"
	if !c.Style.ClampsPublic() {
		clampExpr = "v"
		powExpr = "sign(v) * pow(abs(v), power)"
	}
	fwdBody := fmtHelper(
		"vec3 slope = vec3(%g,%g,%g);\n"+
			"  vec3 offset = vec3(%g,%g,%g);\n"+
			"  vec3 power = vec3(%g,%g,%g);\n"+
			"  vec3 v = slope * x + offset;\n"+
			"  v = %s;\n"+
			"  vec3 p = %s;\n"+
			"  return clamp(p, %s);\n",
		c.Slope[0], c.Slope[1], c.Slope[2],
		c.Offset[0], c.Offset[1], c.Offset[2],
		c.Power[0], c.Power[1], c.Power[2],
		clampExpr, powExpr,
		clampBound(c.Style.ClampsPublic()),
	)
	lumaExpr := fmtHelper("vec3(%g,%g,%g)", c.Luma[0], c.Luma[1], c.Luma[2])

	if c.IsForward() != (dir == optypes.Inverse) {
		d.AddHelper(fmtHelper("vec3 %s(vec3 x) {\n  %s}\n", name, fwdBody))
		bodyf(d, "%s.rgb = %s(%s.rgb);", pixel(d), name, pixel(d))
		bodyf(d, "{")
		bodyf(d, "  float luma = dot(%s.rgb, %s);", pixel(d), lumaExpr)
		bodyf(d, "  %s.rgb = luma + (%s.rgb - luma) * %g;", pixel(d), pixel(d), c.Saturation)
		bodyf(d, "}")
		return nil
	}

	bodyf(d, "{")
	bodyf(d, "  float luma = dot(%s.rgb, %s);", pixel(d), lumaExpr)
	if c.Saturation != 0 {
		bodyf(d, "  %s.rgb = luma + (%s.rgb - luma) / %g;", pixel(d), pixel(d), c.Saturation)
	}
	bodyf(d, "}")
	invPowExpr := "pow(max(v, 0.0), 1.0/power)"
	invClampExpr := "y"
	if c.Style.ClampsPublic() {
		invClampExpr = "clamp(y, 0.0, 1.0)"
	} else {
		invPowExpr = "sign(v) * pow(abs(v), 1.0/power)"
	}
	d.AddHelper(fmtHelper(
		"vec3 %s(vec3 y) {\n"+
			"  vec3 slope = vec3(%g,%g,%g);\n"+
			"  vec3 offset = vec3(%g,%g,%g);\n"+
			"  vec3 power = vec3(%g,%g,%g);\n"+
			"  vec3 v = %s;\n"+
			"  v = %s;\n"+
			"  return (v - offset) / max(slope, vec3(1e-8));\n"+
			"}\n",
		name,
		c.Slope[0], c.Slope[1], c.Slope[2],
		c.Offset[0], c.Offset[1], c.Offset[2],
		c.Power[0], c.Power[1], c.Power[2],
		invClampExpr, invPowExpr,
	))
	bodyf(d, "%s.rgb = %s(%s.rgb);", pixel(d), name, pixel(d))
	return nil
}

func clampBound(clamps bool) string {
	if clamps {
		return "0.0, 1.0"
	}
	return "-1e30, 1e30"
}
