// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opcpu

import (
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
)

type lut1DKernel struct {
	d   *opdata.Lut1D
	dir optypes.Direction
}

func newLut1DKernel(d *opdata.Lut1D, dir optypes.Direction) (Kernel, error) {
	if dir == optypes.Inverse {
		if err := d.ValidateInverse(); err != nil {
			return nil, err
		}
	}
	return lut1DKernel{d: d, dir: dir}, nil
}

func (k lut1DKernel) ApplyRGBA(v ocmath.Vec4) ocmath.Vec4 {
	if k.dir == optypes.Forward {
		return k.forward(v)
	}
	return k.inverse(v)
}

func (k lut1DKernel) forward(v ocmath.Vec4) ocmath.Vec4 {
	r := k.d.SampleChannel(k.d.R, k.d.Index(v[0]))
	g := k.d.SampleChannel(k.d.G, k.d.Index(v[1]))
	b := k.d.SampleChannel(k.d.B, k.d.Index(v[2]))
	if k.d.HueAdjust {
		adj := opdata.ApplyHueAdjust([3]float32{v[0], v[1], v[2]}, [3]float32{r, g, b})
		r, g, b = adj[0], adj[1], adj[2]
	}
	return ocmath.NewVec4(r, g, b, v[3])
}

// inverse performs a per-channel binary search over the monotonic LUT
// samples followed by linear interpolation of indices, per §4.1.3.
func (k lut1DKernel) inverse(v ocmath.Vec4) ocmath.Vec4 {
	return ocmath.NewVec4(
		invertChannel(k.d.R, v[0]),
		invertChannel(k.d.G, v[1]),
		invertChannel(k.d.B, v[2]),
		v[3],
	)
}

func invertChannel(table []float32, y float32) float32 {
	n := len(table)
	ascending := table[n-1] >= table[0]

	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if (table[mid] < y) == ascending {
			lo = mid
		} else {
			hi = mid
		}
	}
	v0, v1 := table[lo], table[hi]
	if v1 == v0 {
		return float32(lo)
	}
	frac := (y - v0) / (v1 - v0)
	idx := float32(lo) + frac
	if idx < 0 {
		idx = 0
	}
	if idx > float32(n-1) {
		idx = float32(n - 1)
	}
	return idx / float32(n-1)
}
