// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform is the user-level request layer (§2 item 6). Variants
// mirror the op kinds one-for-one, plus the higher-level composites
// (ColorSpaceTransform, DisplayViewTransform, LookTransform, GroupTransform,
// FileTransform) that OpBuilder lowers into an op.List. Every variant is
// YAML-serializable via the `yaml` struct tags, since Config files embed
// them under type tags (`!<MatrixTransform>`, etc.).
package transform

import "ocio.dev/ocio/optypes"

// Transform is the common contract every variant implements: a tag for
// type-switch dispatch in OpBuilder and the codec, plus its own direction.
type Transform interface {
	TransformKind() string
	Direction() optypes.Direction
}

// base is embedded by every leaf variant to provide Direction() boilerplate.
type base struct {
	Dir optypes.Direction `yaml:"direction,omitempty"`
}

func (b base) Direction() optypes.Direction { return b.Dir }

// MatrixTransform mirrors opdata.Matrix.
type MatrixTransform struct {
	base   `yaml:",inline"`
	Matrix [16]float64 `yaml:"matrix"`
	Offset [4]float64  `yaml:"offset"`
}

func (MatrixTransform) TransformKind() string { return "MatrixTransform" }

// RangeTransform mirrors opdata.Range.
type RangeTransform struct {
	base                                         `yaml:",inline"`
	MinInValue, MaxInValue, MinOutValue, MaxOutValue *float64 `yaml:",omitempty"`
}

func (RangeTransform) TransformKind() string { return "RangeTransform" }

// ExponentTransform mirrors opdata.Exponent.
type ExponentTransform struct {
	base  `yaml:",inline"`
	Value [4]float64 `yaml:"value"`
}

func (ExponentTransform) TransformKind() string { return "ExponentTransform" }

// ExponentWithLinearTransform mirrors opdata.ExponentLinear.
type ExponentWithLinearTransform struct {
	base       `yaml:",inline"`
	Gamma      [4]float64 `yaml:"gamma"`
	Offset     [4]float64 `yaml:"offset"`
}

func (ExponentWithLinearTransform) TransformKind() string { return "ExponentWithLinearTransform" }

// LogTransform mirrors opdata.Log.
type LogTransform struct {
	base                                          `yaml:",inline"`
	Base                                           float64    `yaml:"base"`
	LinSideSlope, LinSideOffset, LogSideSlope, LogSideOffset [4]float64 `yaml:",omitempty"`
}

func (LogTransform) TransformKind() string { return "LogTransform" }

// GammaTransform mirrors opdata.Gamma.
type GammaTransform struct {
	base   `yaml:",inline"`
	Style  string     `yaml:"style"`
	Value  [4]float64 `yaml:"value"`
	Offset [4]float64 `yaml:"offset,omitempty"`
}

func (GammaTransform) TransformKind() string { return "GammaTransform" }

// Lut1DTransform mirrors opdata.Lut1D; Src, when set, names a file the
// builder loads rather than carrying an inline table.
type Lut1DTransform struct {
	base                 `yaml:",inline"`
	Src                   string    `yaml:"src,omitempty"`
	R, G, B               []float64 `yaml:",omitempty"`
	HalfDomain, HueAdjust bool      `yaml:",omitempty"`
	Interpolation         string    `yaml:"interpolation,omitempty"`
}

func (Lut1DTransform) TransformKind() string { return "Lut1DTransform" }

// Lut3DTransform mirrors opdata.Lut3D.
type Lut3DTransform struct {
	base          `yaml:",inline"`
	Src            string    `yaml:"src,omitempty"`
	Table          []float64 `yaml:",omitempty"`
	GridSize       int       `yaml:"gridSize,omitempty"`
	Interpolation  string    `yaml:"interpolation,omitempty"`
}

func (Lut3DTransform) TransformKind() string { return "Lut3DTransform" }

// CDLTransform mirrors opdata.CDL.
type CDLTransform struct {
	base                  `yaml:",inline"`
	Slope, Offset, Power   [3]float64 `yaml:",omitempty"`
	Sat                    float64    `yaml:"sat,omitempty"`
	Style                  string     `yaml:"style,omitempty"`
}

func (CDLTransform) TransformKind() string { return "CDLTransform" }

// FixedFunctionTransform mirrors opdata.FixedFunction.
type FixedFunctionTransform struct {
	base   `yaml:",inline"`
	Style   string    `yaml:"style"`
	Params  []float64 `yaml:"params,omitempty"`
}

func (FixedFunctionTransform) TransformKind() string { return "FixedFunctionTransform" }

// ExposureContrastTransform mirrors opdata.ExposureContrast.
type ExposureContrastTransform struct {
	base                                     `yaml:",inline"`
	Style                                     string   `yaml:"style"`
	Exposure, Contrast, Gamma, Pivot          float64  `yaml:",omitempty"`
	LogExposureStep, LogMidGray               float64  `yaml:",omitempty"`
	DynamicExposure, DynamicContrast, DynamicGamma bool `yaml:",omitempty"`
}

func (ExposureContrastTransform) TransformKind() string { return "ExposureContrastTransform" }
