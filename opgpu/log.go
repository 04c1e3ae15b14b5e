// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opgpu

import (
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
	"ocio.dev/ocio/shaderdesc"
)

type logEmitter struct{ d *opdata.Log }

func (e logEmitter) Emit(d *shaderdesc.Desc, dir optypes.Direction) error {
	l := e.d
	name := d.NextResourceName("log")
	if dir == optypes.Forward {
		d.AddHelper(fmtHelper(
			"vec3 %s(vec3 x) {\n"+
				"  vec3 lin = vec3(%g,%g,%g) * x + vec3(%g,%g,%g);\n"+
				"  lin = max(lin, vec3(1e-10));\n"+
				"  vec3 base = vec3(%g,%g,%g);\n"+
				"  return vec3(%g,%g,%g) * (log2(lin) / log2(base)) + vec3(%g,%g,%g);\n"+
				"}\n",
			name,
			l.LinSlope[0], l.LinSlope[1], l.LinSlope[2],
			l.LinOffset[0], l.LinOffset[1], l.LinOffset[2],
			l.Base[0], l.Base[1], l.Base[2],
			l.LogSlope[0], l.LogSlope[1], l.LogSlope[2],
			l.LogOffset[0], l.LogOffset[1], l.LogOffset[2],
		))
	} else {
		d.AddHelper(fmtHelper(
			"vec3 %s(vec3 y) {\n"+
				"  vec3 e = (y - vec3(%g,%g,%g)) / vec3(%g,%g,%g);\n"+
				"  vec3 base = vec3(%g,%g,%g);\n"+
				"  vec3 lin = pow(base, e);\n"+
				"  return (lin - vec3(%g,%g,%g)) / vec3(%g,%g,%g);\n"+
				"}\n",
			name,
			l.LogOffset[0], l.LogOffset[1], l.LogOffset[2],
			l.LogSlope[0], l.LogSlope[1], l.LogSlope[2],
			l.Base[0], l.Base[1], l.Base[2],
			l.LinOffset[0], l.LinOffset[1], l.LinOffset[2],
			l.LinSlope[0], l.LinSlope[1], l.LinSlope[2],
		))
	}
	bodyf(d, "%s.rgb = %s(%s.rgb);", pixel(d), name, pixel(d))
	return nil
}

type gammaEmitter struct{ d *opdata.Gamma }

// Emit bakes this op's concrete Style/Value/Offset into a closed-form GLSL
// helper: pass-through is the identity, moncurve bakes MoncurveConsts per
// channel as a branch plus multiply-add, and mirror styles wrap the
// evaluation in sign(x) * f(abs(x)).
func (e gammaEmitter) Emit(d *shaderdesc.Desc, dir optypes.Direction) error {
	g := e.d
	if g.Style.IsPassThru() {
		return nil
	}
	inverse := dir == optypes.Inverse
	switch g.Style {
	case opdata.GammaBasicRev, opdata.GammaMoncurveRev, opdata.GammaBasicMirrorRev, opdata.GammaMoncurveMirrorRev:
		inverse = !inverse
	}
	fwdName := d.NextResourceName("gamma")
	d.AddHelper(e.forwardHelperText(fwdName))
	if !inverse {
		bodyf(d, "%s.rgb = %s(%s.rgb);", pixel(d), fwdName, pixel(d))
		return nil
	}

	invName := d.NextResourceName("gammainv")
	d.AddHelper(fmtHelper(
		"vec3 %s(vec3 y) {\n"+
			"  vec3 lo = vec3(-4.0), hi = vec3(4.0);\n"+
			"  for (int i = 0; i < 40; i++) {\n"+
			"    vec3 mid = (lo + hi) * 0.5;\n"+
			"    vec3 below = step(%s(mid), y);\n"+
			"    lo = mix(lo, mid, below);\n"+
			"    hi = mix(mid, hi, below);\n"+
			"  }\n"+
			"  return (lo + hi) * 0.5;\n"+
			"}\n",
		invName, fwdName,
	))
	bodyf(d, "%s.rgb = %s(%s.rgb);", pixel(d), invName, pixel(d))
	return nil
}

// forwardHelperText returns the GLSL text of a vec3->vec3 function
// evaluating the forward curve, baking this op's concrete Style/Value/
// Offset in as literals.
func (e gammaEmitter) forwardHelperText(name string) string {
	g := e.d
	absExpr, sign := "max(x, vec3(0.0))", "p"
	if g.Style.IsMirror() {
		absExpr, sign = "abs(x)", "sign(x) * p"
	}
	if !g.Style.IsMoncurve() {
		return fmtHelper(
			"// gamma style: %s\n"+
				"vec3 %s(vec3 x) {\n"+
				"  vec3 p = pow(%s, vec3(%g,%g,%g));\n"+
				"  return %s;\n"+
				"}\n",
			g.Style.String(), name, absExpr, g.Value[0], g.Value[1], g.Value[2], sign,
		)
	}
	var bp, slope, scale, offset [3]float32
	for ch := 0; ch < 3; ch++ {
		bp[ch], slope[ch], scale[ch], offset[ch] = g.MoncurveConsts(ch)
	}
	return fmtHelper(
		"// gamma style: %s\n"+
			"vec3 %s(vec3 x0) {\n"+
			"  vec3 x = %s;\n"+
			"  vec3 bp = vec3(%g,%g,%g);\n"+
			"  vec3 slope = vec3(%g,%g,%g);\n"+
			"  vec3 scale = vec3(%g,%g,%g);\n"+
			"  vec3 offset = vec3(%g,%g,%g);\n"+
			"  vec3 toe = slope * x;\n"+
			"  vec3 curve = scale * pow(x + offset, vec3(%g,%g,%g));\n"+
			"  vec3 p = mix(curve, toe, step(x, bp));\n"+
			"  return %s;\n"+
			"}\n",
		g.Style.String(), name, absExpr,
		bp[0], bp[1], bp[2],
		slope[0], slope[1], slope[2],
		scale[0], scale[1], scale[2],
		offset[0], offset[1], offset[2],
		g.Value[0], g.Value[1], g.Value[2],
		sign,
	)
}
