// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ocio.dev/ocio/opdata"
)

const spi1d = `Version 1
From 0.0 1.0
Length 3
Components 3
{
0.0 0.0 0.0
0.5 0.5 0.5
1.0 1.0 1.0
}
`

func TestLoadSPI1D(t *testing.T) {
	list, err := LoadSPI1D(strings.NewReader(spi1d))
	require.NoError(t, err)
	require.Equal(t, 1, list.Len())
	l := list.Ops[0].Data.(*opdata.Lut1D)
	assert.Equal(t, 3, len(l.R))
	assert.InDelta(t, 0.5, l.G[1], 1e-6)
}

const spi3d = `SPILUT 1.0 0 2 2 2
0 0 0 0.0 0.0 0.0
0 0 1 0.0 0.0 1.0
0 1 0 0.0 1.0 0.0
0 1 1 0.0 1.0 1.0
1 0 0 1.0 0.0 0.0
1 0 1 1.0 0.0 1.0
1 1 0 1.0 1.0 0.0
1 1 1 1.0 1.0 1.0
`

func TestLoadSPI3D(t *testing.T) {
	list, err := LoadSPI3D(strings.NewReader(spi3d))
	require.NoError(t, err)
	l := list.Ops[0].Data.(*opdata.Lut3D)
	assert.Equal(t, 2, l.Edge)
	assert.Equal(t, 24, len(l.Table))
}

const spimtx = `1.0 0.0 0.0 0.0 0.0 1.0 0.0 0.0 0.0 0.0 1.0 6553.5`

func TestLoadSPIMtx(t *testing.T) {
	list, err := LoadSPIMtx(strings.NewReader(spimtx))
	require.NoError(t, err)
	m := list.Ops[0].Data.(*opdata.Matrix)
	assert.InDelta(t, 0.1, m.Offset[2], 1e-6)
}

const cube3D = `TITLE "test"
LUT_3D_SIZE 2
0.0 0.0 0.0
0.0 0.0 1.0
0.0 1.0 0.0
0.0 1.0 1.0
1.0 0.0 0.0
1.0 0.0 1.0
1.0 1.0 0.0
1.0 1.0 1.0
`

func TestLoadCube3DOnly(t *testing.T) {
	list, err := LoadCube(strings.NewReader(cube3D))
	require.NoError(t, err)
	require.Equal(t, 1, list.Len())
	l := list.Ops[0].Data.(*opdata.Lut3D)
	assert.Equal(t, 2, l.Edge)
}

const cubeCombined = `LUT_1D_SIZE 2
LUT_3D_SIZE 2
0.0 0.0 0.0
1.0 1.0 1.0
0.0 0.0 0.0
0.0 0.0 1.0
0.0 1.0 0.0
0.0 1.0 1.0
1.0 0.0 0.0
1.0 0.0 1.0
1.0 1.0 0.0
1.0 1.0 1.0
`

func TestLoadCubeCombinedShaperAnd3D(t *testing.T) {
	list, err := LoadCube(strings.NewReader(cubeCombined))
	require.NoError(t, err)
	require.Equal(t, 2, list.Len())
	_, ok1 := list.Ops[0].Data.(*opdata.Lut1D)
	_, ok2 := list.Ops[1].Data.(*opdata.Lut3D)
	assert.True(t, ok1)
	assert.True(t, ok2)
}

func TestLoadSPI1DRejectsMalformedFloat(t *testing.T) {
	bad := strings.Replace(spi1d, "0.5 0.5 0.5", "x 0.5 0.5", 1)
	_, err := LoadSPI1D(strings.NewReader(bad))
	assert.Error(t, err)
}
