// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opgpu

import (
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
	"ocio.dev/ocio/shaderdesc"
)

type rangeEmitter struct{ d *opdata.Range }

func (e rangeEmitter) Emit(d *shaderdesc.Desc, dir optypes.Direction) error {
	r := e.d
	if dir == optypes.Inverse && r.IsPureScaleOffset() {
		scale, offset := r.ScaleOffset()
		name := d.NextResourceName("rangeinv")
		bodyf(d, "%s.rgb = (%s.rgb - vec3(%g)) / vec3(%g); // %s", pixel(d), pixel(d), offset, scale, name)
		return nil
	}
	if r.HasMinIn {
		bodyf(d, "%s.rgb = max(%s.rgb, vec3(%g));", pixel(d), pixel(d), r.MinIn)
	}
	if r.HasMaxIn {
		bodyf(d, "%s.rgb = min(%s.rgb, vec3(%g));", pixel(d), pixel(d), r.MaxIn)
	}
	if r.IsPureScaleOffset() {
		scale, offset := r.ScaleOffset()
		bodyf(d, "%s.rgb = %s.rgb * vec3(%g) + vec3(%g);", pixel(d), pixel(d), scale, offset)
		return nil
	}
	if r.HasMinOut {
		bodyf(d, "%s.rgb = max(%s.rgb, vec3(%g));", pixel(d), pixel(d), r.MinOut)
	}
	if r.HasMaxOut {
		bodyf(d, "%s.rgb = min(%s.rgb, vec3(%g));", pixel(d), pixel(d), r.MaxOut)
	}
	return nil
}
