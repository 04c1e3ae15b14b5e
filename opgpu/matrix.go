// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opgpu

import (
	"fmt"

	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
	"ocio.dev/ocio/shaderdesc"
)

type matrixEmitter struct{ d *opdata.Matrix }

func (e matrixEmitter) Emit(d *shaderdesc.Desc, dir optypes.Direction) error {
	m, off := e.d.M, e.d.Offset
	if dir == optypes.Inverse {
		inv, err := e.d.Inverse()
		if err != nil {
			return err
		}
		m, off = inv.M, inv.Offset
	}
	name := d.NextResourceName("matrix")
	d.AddDeclaration(fmt.Sprintf(
		"mat4 %s = mat4(%s);", name, mat4Literal(m),
	))
	d.AddDeclaration(fmt.Sprintf(
		"vec4 %s_offset = vec4(%g, %g, %g, %g);", name, off[0], off[1], off[2], off[3],
	))
	bodyf(d, "%s = %s * %s + %s_offset;", pixel(d), name, pixel(d), name)
	return nil
}

// mat4Literal formats a row-major Matrix4 as a GLSL mat4 constructor's
// column-major argument list (GLSL mat4() takes columns).
func mat4Literal(m [16]float32) string {
	var cols [4][4]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			cols[c][r] = m[r*4+c]
		}
	}
	s := ""
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			if s != "" {
				s += ", "
			}
			s += fmt.Sprintf("%g", cols[c][r])
		}
	}
	return s
}
