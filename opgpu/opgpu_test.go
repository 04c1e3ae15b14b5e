// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opgpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
	"ocio.dev/ocio/shaderdesc"
)

func TestMatrixEmitterWritesBody(t *testing.T) {
	m := &opdata.Matrix{M: ocmath.Identity4(), Offset: ocmath.NewVec4(0, 0, 0, 0)}
	e, err := New(m)
	assert.NoError(t, err)
	d := shaderdesc.New(shaderdesc.GLSL4_0)
	assert.NoError(t, e.Emit(d, optypes.Forward))
	text := d.ShaderText()
	assert.Contains(t, text, "mat4")
	assert.Contains(t, text, d.PixelName)
}

func TestLut3DEmitterRegistersTexture(t *testing.T) {
	edge := 3
	table := make([]float32, edge*edge*edge*3)
	l := &opdata.Lut3D{Edge: edge, Table: table, Interp: optypes.Tetrahedral}
	e, err := New(l)
	assert.NoError(t, err)
	d := shaderdesc.New(shaderdesc.GLSL4_0)
	assert.NoError(t, e.Emit(d, optypes.Forward))
	assert.Len(t, d.Textures3D(), 1)
	assert.True(t, strings.Contains(d.ShaderText(), "sampler3D"))
}

func TestFixedFunctionUnsupportedStyleErrors(t *testing.T) {
	ff := &opdata.FixedFunction{Style: opdata.FFAcesGamutCompV13}
	e, err := New(ff)
	assert.NoError(t, err)
	d := shaderdesc.New(shaderdesc.GLSL4_0)
	assert.Error(t, e.Emit(d, optypes.Forward))
}
