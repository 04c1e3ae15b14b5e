// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opcpu

import (
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
)

// DynamicHandle lets a host mutate one of exposure/contrast/gamma after the
// processor has been built, per §4.1.8 and §5's dynamic property handles.
type DynamicHandle struct {
	value *float32
}

// Set updates the live value the bound kernel reads on its next ApplyRGBA.
func (h DynamicHandle) Set(v float32) {
	if h.value != nil {
		*h.value = v
	}
}

// Value returns the handle's current value.
func (h DynamicHandle) Value() float32 {
	if h.value == nil {
		return 0
	}
	return *h.value
}

type exposureContrastKernel struct {
	d        opdata.ExposureContrast
	isFwd    bool
}

func newExposureContrastKernel(d *opdata.ExposureContrast, dir optypes.Direction) (Kernel, error) {
	local := *d
	isFwd := d.Style == opdata.ECLinearFwd || d.Style == opdata.ECVideoFwd || d.Style == opdata.ECLogFwd
	if dir == optypes.Inverse {
		isFwd = !isFwd
	}
	return &exposureContrastKernel{d: local, isFwd: isFwd}, nil
}

func (k *exposureContrastKernel) ApplyRGBA(v ocmath.Vec4) ocmath.Vec4 {
	if k.isFwd {
		return ocmath.NewVec4(k.d.Apply(v[0]), k.d.Apply(v[1]), k.d.Apply(v[2]), v[3])
	}
	inv := func(x float32) float32 {
		lo, hi := float32(-20), float32(20)
		for i := 0; i < 48; i++ {
			mid := (lo + hi) / 2
			if k.d.Apply(mid) < x {
				lo = mid
			} else {
				hi = mid
			}
		}
		return (lo + hi) / 2
	}
	return ocmath.NewVec4(inv(v[0]), inv(v[1]), inv(v[2]), v[3])
}

// ExposureHandle returns a handle bound to k's live Exposure value, or the
// zero DynamicHandle if Exposure was not marked dynamic.
func (k *exposureContrastKernel) ExposureHandle() DynamicHandle {
	if !k.d.IsDynamic(opdata.DynExposure) {
		return DynamicHandle{}
	}
	return DynamicHandle{value: &k.d.Exposure}
}

// ContrastHandle returns a handle bound to k's live Contrast value, or the
// zero DynamicHandle if Contrast was not marked dynamic.
func (k *exposureContrastKernel) ContrastHandle() DynamicHandle {
	if !k.d.IsDynamic(opdata.DynContrast) {
		return DynamicHandle{}
	}
	return DynamicHandle{value: &k.d.Contrast}
}

// GammaHandle returns a handle bound to k's live Gamma value, or the zero
// DynamicHandle if Gamma was not marked dynamic.
func (k *exposureContrastKernel) GammaHandle() DynamicHandle {
	if !k.d.IsDynamic(opdata.DynGamma) {
		return DynamicHandle{}
	}
	return DynamicHandle{value: &k.d.Gamma}
}
