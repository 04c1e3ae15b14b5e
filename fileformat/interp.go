// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fileformat

import (
	"ocio.dev/ocio/op"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
)

func parseInterpolation(s string) (optypes.Interpolation, bool) {
	switch s {
	case "nearest":
		return optypes.Nearest, true
	case "linear":
		return optypes.Linear, true
	case "tetrahedral":
		return optypes.Tetrahedral, true
	case "cubic":
		return optypes.Cubic, true
	case "best":
		return optypes.Best, true
	default:
		return optypes.Default, false
	}
}

func setInterpolation(o *op.Op, interp optypes.Interpolation) {
	switch d := o.Data.(type) {
	case *opdata.Lut1D:
		d.Interp = interp
	case *opdata.Lut3D:
		d.Interp = interp
	}
}
