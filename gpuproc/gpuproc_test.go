// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpuproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/op"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
	"ocio.dev/ocio/shaderdesc"
)

func matrixList(scale float32) *op.List {
	m := &opdata.Matrix{
		M: ocmath.Matrix4{
			scale, 0, 0, 0,
			0, scale, 0, 0,
			0, 0, scale, 0,
			0, 0, 0, 1,
		},
	}
	m.SetBitDepths(optypes.F32, optypes.F32)
	list := op.NewList()
	list.Append(op.New(m))
	return list
}

func TestBuildEmitsFunctionWrapper(t *testing.T) {
	d, err := Build(matrixList(2), shaderdesc.GLSL4_0)
	require.NoError(t, err)
	text := d.ShaderText()
	assert.Contains(t, text, "OCIOMain")
	assert.Contains(t, text, "return "+d.PixelName)
	assert.False(t, d.IsLegacy())
}

func TestBuildLegacyBakesAndMarksLegacy(t *testing.T) {
	d, err := BuildLegacy(matrixList(0.5), shaderdesc.GLSL4_0)
	require.NoError(t, err)
	assert.True(t, d.IsLegacy())
	require.Len(t, d.Textures3D(), 1)
	require.Len(t, d.Textures1D(), 1)
	cube := d.Textures3D()[0]
	assert.Equal(t, LegacyEdge, cube.Edge)
}

func TestBuildLegacyClampsOutOfRangeSamples(t *testing.T) {
	d, err := BuildLegacy(matrixList(3), shaderdesc.GLSL4_0)
	require.NoError(t, err)
	cube := d.Textures3D()[0]
	for _, v := range cube.Values {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestBuildPropagatesEmptyListAsIdentity(t *testing.T) {
	d, err := Build(op.NewList(), shaderdesc.GLSL4_0)
	require.NoError(t, err)
	assert.Contains(t, d.ShaderText(), "outColor = inPixel")
}
