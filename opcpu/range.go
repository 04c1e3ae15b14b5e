// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opcpu

import (
	"ocio.dev/ocio/ocioerr"
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
)

type rangeKernel struct {
	r *opdata.Range
}

func newRangeKernel(d *opdata.Range, dir optypes.Direction) (Kernel, error) {
	if dir == optypes.Forward {
		return rangeKernel{r: d}, nil
	}
	if !d.IsPureScaleOffset() {
		return nil, ocioerr.New(ocioerr.KindNotInvertible, "opcpu.Range", "one-sided clamp range has no exact inverse")
	}
	inv := &opdata.Range{
		MinIn: d.MinOut, MaxIn: d.MaxOut, HasMinIn: true, HasMaxIn: true,
		MinOut: d.MinIn, MaxOut: d.MaxIn, HasMinOut: true, HasMaxOut: true,
	}
	return rangeKernel{r: inv}, nil
}

func (k rangeKernel) ApplyRGBA(v ocmath.Vec4) ocmath.Vec4 {
	return ocmath.NewVec4(k.r.Apply(v[0]), k.r.Apply(v[1]), k.r.Apply(v[2]), v[3])
}
