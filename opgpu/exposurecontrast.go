// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opgpu

import (
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
	"ocio.dev/ocio/shaderdesc"
)

type exposureContrastEmitter struct{ d *opdata.ExposureContrast }

// Emit registers exposure, contrast and gamma as uniforms whether or not
// they are marked dynamic, bakes the remaining parameters (pivot and the
// log-style constants) as literals, then emits the matching style's closed
// form.
func (e exposureContrastEmitter) Emit(d *shaderdesc.Desc, dir optypes.Direction) error {
	ec := e.d
	exposure := d.AddUniform(shaderdesc.UniformDouble, constGetter(ec.Exposure))
	contrast := d.AddUniform(shaderdesc.UniformDouble, constGetter(ec.Contrast))
	gamma := d.AddUniform(shaderdesc.UniformDouble, constGetter(ec.Gamma))
	d.AddDeclaration(fmtHelper("uniform float %s;", exposure))
	d.AddDeclaration(fmtHelper("uniform float %s;", contrast))
	d.AddDeclaration(fmtHelper("uniform float %s;", gamma))

	isFwd := ec.Style == opdata.ECLinearFwd || ec.Style == opdata.ECVideoFwd || ec.Style == opdata.ECLogFwd
	if dir == optypes.Inverse {
		isFwd = !isFwd
	}

	var bodyExpr string
	switch ec.Style {
	case opdata.ECVideoFwd, opdata.ECVideoRev:
		bodyExpr = fmtHelper(
			"vec3 v = c * exp2(%s * %s);\n"+
				"  return pow(v / %g, vec3(%s)) * %g;\n",
			exposure, gamma, ec.Pivot, contrast, ec.Pivot,
		)
	case opdata.ECLogFwd, opdata.ECLogRev:
		bodyExpr = fmtHelper(
			"vec3 v = c + %s * %g;\n"+
				"  return (v - vec3(%g)) * %s + vec3(%g);\n",
			exposure, ec.LogExposureStep, ec.LogMidGray, contrast, ec.LogMidGray,
		)
	default:
		bodyExpr = fmtHelper(
			"vec3 v = c * exp2(%s);\n"+
				"  v = pow(v / %g, vec3(%s)) * %g;\n"+
				"  return pow(v, vec3(1.0 / %s));\n",
			exposure, ec.Pivot, contrast, ec.Pivot, gamma,
		)
	}

	name := d.NextResourceName("ec")
	d.AddHelper(fmtHelper("vec3 %s(vec3 c) {\n  %s}\n", name, bodyExpr))

	if isFwd {
		bodyf(d, "%s.rgb = %s(%s.rgb);", pixel(d), name, pixel(d))
		return nil
	}
	invName := d.NextResourceName("ecinv")
	d.AddHelper(fmtHelper(
		"vec3 %s(vec3 y) {\n"+
			"  vec3 lo = vec3(-20.0), hi = vec3(20.0);\n"+
			"  for (int i = 0; i < 48; i++) {\n"+
			"    vec3 mid = (lo + hi) * 0.5;\n"+
			"    vec3 below = step(%s(mid), y);\n"+
			"    lo = mix(lo, mid, below);\n"+
			"    hi = mix(mid, hi, below);\n"+
			"  }\n"+
			"  return (lo + hi) * 0.5;\n"+
			"}\n",
		invName, name,
	))
	bodyf(d, "%s.rgb = %s(%s.rgb);", pixel(d), invName, pixel(d))
	return nil
}

func constGetter(v float32) func() any {
	return func() any { return v }
}
