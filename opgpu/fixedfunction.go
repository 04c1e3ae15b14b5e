// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opgpu

import (
	"ocio.dev/ocio/ocioerr"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
	"ocio.dev/ocio/shaderdesc"
)

type fixedFunctionEmitter struct{ d *opdata.FixedFunction }

// Emit looks up a prewritten GLSL helper body for the resolved style (style
// pairs invert by swapping to the matched inverse per §4.1.7) and appends
// a call to it.
func (e fixedFunctionEmitter) Emit(d *shaderdesc.Desc, dir optypes.Direction) error {
	style := e.d.Style
	if dir == optypes.Inverse {
		inv, ok := e.d.Inverse()
		if !ok {
			return opdata.NotInvertible("FixedFunction", style.String())
		}
		style = inv.Style
	}
	body, ok := ffGLSL[style]
	if !ok {
		return ocioerr.New(ocioerr.KindUnsupportedFormat, "opgpu.FixedFunction.Emit", "style "+style.String()+" has no GLSL emitter")
	}
	name := d.NextResourceName("ff")
	d.AddHelper(fmtHelper("vec3 %s(vec3 c) {\n%s}\n", name, body))
	bodyf(d, "%s.rgb = %s(%s.rgb);", pixel(d), name, pixel(d))
	return nil
}

// ffGLSL mirrors the CPU opcpu.fixedFunctionTable math in GLSL text; kept
// as a second, independent expression of the same closed forms rather than
// a codegen of the Go functions, since the two run on different engines.
var ffGLSL = map[opdata.FixedFunctionStyle]string{
	opdata.FFRGBToHSV: "" +
		"  float mx = max(c.r, max(c.g, c.b));\n" +
		"  float mn = min(c.r, min(c.g, c.b));\n" +
		"  float delta = mx - mn;\n" +
		"  float h = 0.0;\n" +
		"  if (delta > 0.0) {\n" +
		"    if (mx == c.r) h = mod((c.g - c.b) / delta, 6.0);\n" +
		"    else if (mx == c.g) h = (c.b - c.r) / delta + 2.0;\n" +
		"    else h = (c.r - c.g) / delta + 4.0;\n" +
		"  }\n" +
		"  h = fract(h / 6.0);\n" +
		"  float s = mx == 0.0 ? 0.0 : delta / mx;\n" +
		"  return vec3(h, s, mx);\n",
	opdata.FFHSVToRGB: "" +
		"  float h = fract(c.x) * 6.0;\n" +
		"  float s = c.y, v = c.z;\n" +
		"  float i = floor(h);\n" +
		"  float f = h - i;\n" +
		"  float p = v * (1.0 - s);\n" +
		"  float q = v * (1.0 - s * f);\n" +
		"  float t = v * (1.0 - s * (1.0 - f));\n" +
		"  if (i == 0.0) return vec3(v, t, p);\n" +
		"  if (i == 1.0) return vec3(q, v, p);\n" +
		"  if (i == 2.0) return vec3(p, v, t);\n" +
		"  if (i == 3.0) return vec3(p, q, v);\n" +
		"  if (i == 4.0) return vec3(t, p, v);\n" +
		"  return vec3(v, p, q);\n",
	opdata.FFXYZToxyY: "" +
		"  float sum = c.x + c.y + c.z;\n" +
		"  if (sum == 0.0) return vec3(0.0);\n" +
		"  return vec3(c.x / sum, c.y / sum, c.y);\n",
	opdata.FFxyYToXYZ: "" +
		"  if (c.y == 0.0) return vec3(0.0);\n" +
		"  float X = c.x * c.z / c.y;\n" +
		"  float Z = (1.0 - c.x - c.y) * c.z / c.y;\n" +
		"  return vec3(X, c.z, Z);\n",
}

// aces, rec2100, and Luv/uvY styles are intentionally absent from ffGLSL:
// no shader body has been written for opcpu's red-mod/glow/dark-to-dim/
// gamut-comp/surround kernels yet, so the GPU path fails at build time
// (KindUnsupportedFormat) rather than shipping a shader that silently
// diverges from the CPU kernel's result.
