// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opbuild

import (
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/transform"
)

func matrix4(m [16]float64) ocmath.Matrix4 {
	var out ocmath.Matrix4
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

func vec4(v [4]float64) ocmath.Vec4 {
	return ocmath.NewVec4(float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3]))
}

func rangeFromTransform(v transform.RangeTransform) *opdata.Range {
	r := &opdata.Range{}
	if v.MinInValue != nil {
		r.HasMinIn, r.MinIn = true, float32(*v.MinInValue)
	}
	if v.MaxInValue != nil {
		r.HasMaxIn, r.MaxIn = true, float32(*v.MaxInValue)
	}
	if v.MinOutValue != nil {
		r.HasMinOut, r.MinOut = true, float32(*v.MinOutValue)
	}
	if v.MaxOutValue != nil {
		r.HasMaxOut, r.MaxOut = true, float32(*v.MaxOutValue)
	}
	return r
}

var cdlStyleByName = map[string]opdata.CDLStyle{
	"Fwd": opdata.CDLv12Fwd, "Rev": opdata.CDLv12Rev,
	"noClampFwd": opdata.CDLNoClampFwd, "noClampRev": opdata.CDLNoClampRev,
	"": opdata.CDLv12Fwd,
}

func (b *Builder) cdlFromTransform(v transform.CDLTransform) *opdata.CDL {
	luma := ocmath.NewVec4(
		float32(b.cfg.LumaCoefficients[0]), float32(b.cfg.LumaCoefficients[1]), float32(b.cfg.LumaCoefficients[2]), 0)
	style, ok := cdlStyleByName[v.Style]
	if !ok {
		style = opdata.CDLv12Fwd
	}
	return &opdata.CDL{
		Style:      style,
		Slope:      ocmath.NewVec4(float32(v.Slope[0]), float32(v.Slope[1]), float32(v.Slope[2]), 0),
		Offset:     ocmath.NewVec4(float32(v.Offset[0]), float32(v.Offset[1]), float32(v.Offset[2]), 0),
		Power:      ocmath.NewVec4(float32(v.Power[0]), float32(v.Power[1]), float32(v.Power[2]), 0),
		Saturation: float32(orDefault(v.Sat, 1)),
		Luma:       luma,
	}
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

var ecStyleByName = map[string]opdata.ExposureContrastStyle{
	"linear": opdata.ECLinearFwd, "linearRev": opdata.ECLinearRev,
	"video": opdata.ECVideoFwd, "videoRev": opdata.ECVideoRev,
	"log": opdata.ECLogFwd, "logRev": opdata.ECLogRev,
}

func exposureContrastFromTransform(v transform.ExposureContrastTransform) *opdata.ExposureContrast {
	style, ok := ecStyleByName[v.Style]
	if !ok {
		style = opdata.ECLinearFwd
	}
	pivot := v.Pivot
	if pivot == 0 {
		pivot = 1
	}
	gamma := v.Gamma
	if gamma == 0 {
		gamma = 1
	}
	dyn := map[opdata.DynamicProperty]bool{}
	if v.DynamicExposure {
		dyn[opdata.DynExposure] = true
	}
	if v.DynamicContrast {
		dyn[opdata.DynContrast] = true
	}
	if v.DynamicGamma {
		dyn[opdata.DynGamma] = true
	}
	return &opdata.ExposureContrast{
		Style: style, Exposure: float32(v.Exposure), Contrast: float32(v.Contrast),
		Gamma: float32(gamma), Pivot: float32(pivot),
		LogExposureStep: float32(v.LogExposureStep), LogMidGray: float32(v.LogMidGray),
		Dynamic: dyn,
	}
}
