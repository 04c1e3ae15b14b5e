// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaderdesc is the GPU shader-description object: the five text
// accumulators an OpGpu emitter writes into, plus the texture and uniform
// registries the emitted shader references (§4.5).
package shaderdesc

import (
	"fmt"
	"strings"

	"ocio.dev/ocio/ocioerr"
	"ocio.dev/ocio/optypes"
)

// Language is the target shading language a Desc emits source for.
type Language int

const (
	GLSL1_2 Language = iota
	GLSL1_3
	GLSL4_0
	GLSLES
	HLSL_DX11
	Metal
	Cg
)

func (l Language) String() string {
	switch l {
	case GLSL1_2:
		return "glsl_1.2"
	case GLSL1_3:
		return "glsl_1.3"
	case GLSL4_0:
		return "glsl_4.0"
	case GLSLES:
		return "glsl_es"
	case HLSL_DX11:
		return "hlsl_dx11"
	case Metal:
		return "metal"
	case Cg:
		return "cg"
	default:
		return "unknown"
	}
}

// TextureChannels describes whether a registered texture carries a single
// separable channel (packed 1D LUTs) or full RGB (3D LUTs).
type TextureChannels int

const (
	ChannelRed TextureChannels = iota
	ChannelRGB
)

// Texture1D describes a 1D (or 2D-wrapped) LUT texture the shader samples.
type Texture1D struct {
	Name      string
	SamplerID string
	Values    []float32
	Width     int
	Height    int // >1 when wrapped into a 2D texture by MaxTextureWidth
	Channels  TextureChannels
	Interp    optypes.Interpolation
}

// Texture3D describes a cube LUT texture the shader samples.
type Texture3D struct {
	Name      string
	SamplerID string
	Values    []float32 // RGB, Edge^3*3
	Edge      int
	Interp    optypes.Interpolation
}

// UniformKind is the closed set of dynamic-property uniform types (§4.5).
type UniformKind int

const (
	UniformDouble UniformKind = iota
	UniformBool
	UniformFloat3
	UniformVectorFloat
	UniformVectorInt
)

// Uniform is a host-refreshable value the emitted shader reads; Getter is
// called by the host at render time to refresh the bound value (the "each
// carries a getter closure" contract in §4.5).
type Uniform struct {
	Name   string
	Kind   UniformKind
	Getter func() any
}

// Desc accumulates one GPU shader's declarations, helper functions,
// function header/body/footer, and its texture and uniform registries. One
// Desc is built per GPUProcessor request; OpGpu emitters append to it in op
// order.
type Desc struct {
	Lang         Language
	FunctionName string
	PixelName    string
	ResourcePrefix string
	MaxTextureWidth int

	declarations strings.Builder
	helpers      strings.Builder
	funcHeader   strings.Builder
	funcBody     strings.Builder
	funcFooter   strings.Builder

	textures1D []Texture1D
	textures3D []Texture3D
	uniforms   []Uniform

	legacy    bool
	resourceN int
}

// New creates a Desc with the given target language and sane defaults for
// function/pixel names and texture width cap.
func New(lang Language) *Desc {
	return &Desc{
		Lang:            lang,
		FunctionName:    "OCIOMain",
		PixelName:       "outColor",
		ResourcePrefix:  "ocio",
		MaxTextureWidth: 4096,
	}
}

// AddDeclaration appends a line to the declarations accumulator.
func (d *Desc) AddDeclaration(line string) { writeLine(&d.declarations, line) }

// AddHelper appends a block to the helpers accumulator.
func (d *Desc) AddHelper(block string) { writeLine(&d.helpers, block) }

// AddFunctionHeader appends a line to the function-header accumulator.
func (d *Desc) AddFunctionHeader(line string) { writeLine(&d.funcHeader, line) }

// AddBody appends a line to the function-body accumulator, the fragment
// most OpGpu emitters write to.
func (d *Desc) AddBody(line string) { writeLine(&d.funcBody, line) }

// AddFunctionFooter appends a line to the function-footer accumulator.
func (d *Desc) AddFunctionFooter(line string) { writeLine(&d.funcFooter, line) }

func writeLine(b *strings.Builder, s string) {
	b.WriteString(s)
	if !strings.HasSuffix(s, "\n") {
		b.WriteByte('\n')
	}
}

// ShaderText returns the full generated shader: the concatenation of all
// five accumulators in order, per §4.5.
func (d *Desc) ShaderText() string {
	var out strings.Builder
	out.WriteString(d.declarations.String())
	out.WriteString(d.helpers.String())
	out.WriteString(d.funcHeader.String())
	out.WriteString(d.funcBody.String())
	out.WriteString(d.funcFooter.String())
	return out.String()
}

// NextResourceName returns a fresh, prefix-qualified resource name (used
// for texture samplers and uniform identifiers) unique within this Desc.
func (d *Desc) NextResourceName(kind string) string {
	d.resourceN++
	return fmt.Sprintf("%s_%s%d", d.ResourcePrefix, kind, d.resourceN)
}

// AddTexture1D registers a 1D LUT texture, wrapping it into a 2D texture
// when its width exceeds MaxTextureWidth (§4.5 item 1).
func (d *Desc) AddTexture1D(values []float32, channels TextureChannels, interp optypes.Interpolation) (Texture1D, error) {
	width := len(values)
	if channels == ChannelRed {
		// width already counts samples
	} else {
		width = len(values) / 3
	}
	height := 1
	if width > d.MaxTextureWidth {
		height = (width + d.MaxTextureWidth - 1) / d.MaxTextureWidth
		if height > d.MaxTextureWidth {
			return Texture1D{}, ocioerr.New(ocioerr.KindShaderLimitExceeded, "shaderdesc.AddTexture1D", "1D LUT too large for any 2D texture wrapping at this width cap")
		}
		width = d.MaxTextureWidth
	}
	tex := Texture1D{
		Name:      d.NextResourceName("tex1d"),
		SamplerID: d.NextResourceName("sampler1d"),
		Values:    values,
		Width:     width,
		Height:    height,
		Channels:  channels,
		Interp:    interp,
	}
	d.textures1D = append(d.textures1D, tex)
	return tex, nil
}

// AddTexture3D registers a 3D LUT texture.
func (d *Desc) AddTexture3D(values []float32, edge int, interp optypes.Interpolation) (Texture3D, error) {
	if edge > d.MaxTextureWidth {
		return Texture3D{}, ocioerr.New(ocioerr.KindShaderLimitExceeded, "shaderdesc.AddTexture3D", "3D LUT edge exceeds host texture width cap")
	}
	tex := Texture3D{
		Name:      d.NextResourceName("tex3d"),
		SamplerID: d.NextResourceName("sampler3d"),
		Values:    values,
		Edge:      edge,
		Interp:    interp,
	}
	d.textures3D = append(d.textures3D, tex)
	return tex, nil
}

// AddUniform registers a dynamic-property uniform and returns its
// generated name for use in emitted body text.
func (d *Desc) AddUniform(kind UniformKind, getter func() any) string {
	name := d.NextResourceName("uniform")
	d.uniforms = append(d.uniforms, Uniform{Name: name, Kind: kind, Getter: getter})
	return name
}

// Textures1D returns the registered 1D textures in registration order.
func (d *Desc) Textures1D() []Texture1D { return d.textures1D }

// Textures3D returns the registered 3D textures in registration order.
func (d *Desc) Textures3D() []Texture3D { return d.textures3D }

// Uniforms returns the registered uniforms in registration order.
func (d *Desc) Uniforms() []Uniform { return d.uniforms }

// MarkLegacy flags the description as produced by the legacy bake-to-LUT
// path, which clamps to [0,1] and loses extended-range fidelity (§4.5).
func (d *Desc) MarkLegacy() { d.legacy = true }

// IsLegacy reports whether MarkLegacy was called on this Desc.
func (d *Desc) IsLegacy() bool { return d.legacy }
