// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/op"
	"ocio.dev/ocio/opdata"
)

const sampleCLF = `<?xml version="1.0" encoding="UTF-8"?>
<ProcessList compCLFversion="3.0">
  <Matrix inBitDepth="32f" outBitDepth="32f">
    <Array dim="3 4 3">
      1 0 0 0.1
      0 1 0 0.2
      0 0 1 0.3
    </Array>
  </Matrix>
  <Range inBitDepth="32f" outBitDepth="32f" minInValue="0" maxInValue="1" minOutValue="0" maxOutValue="1"></Range>
</ProcessList>
`

func TestLoadMatrixAndRange(t *testing.T) {
	list, err := Load(strings.NewReader(sampleCLF))
	require.NoError(t, err)
	require.Equal(t, 2, list.Len())
	m, ok := list.Ops[0].Data.(*opdata.Matrix)
	require.True(t, ok)
	assert.InDelta(t, 0.1, m.Offset[0], 1e-6)
	r, ok := list.Ops[1].Data.(*opdata.Range)
	require.True(t, ok)
	assert.True(t, r.HasMinIn)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	list := op.NewList()
	list.Append(op.New(opdata.NewMatrix(ocmath.Identity4(), ocmath.NewVec4(0.25, 0, 0, 0))))
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, list, CLF))
	reloaded, err := Load(&buf)
	require.NoError(t, err)
	require.Equal(t, 1, reloaded.Len())
	m := reloaded.Ops[0].Data.(*opdata.Matrix)
	assert.InDelta(t, 0.25, m.Offset[0], 1e-6)
}

func TestLoadProcessListMetadata(t *testing.T) {
	const withMeta = `<?xml version="1.0" encoding="UTF-8"?>
<ProcessList id="cc-id-1" name="look-a-to-b" compCLFversion="3.0">
  <Description>a simple look conversion</Description>
  <Matrix id="m1" inBitDepth="32f" outBitDepth="32f">
    <Array dim="3 4 3">
      1 0 0 0
      0 1 0 0
      0 0 1 0
    </Array>
  </Matrix>
</ProcessList>
`
	list, err := Load(strings.NewReader(withMeta))
	require.NoError(t, err)
	assert.Equal(t, "cc-id-1", list.Meta.ID)
	assert.Equal(t, "look-a-to-b", list.Meta.Name)
	assert.Equal(t, "a simple look conversion", list.Meta.Description)
	require.Equal(t, 1, list.Len())
	assert.Equal(t, "m1", list.Ops[0].Meta.ID)
}

func TestSaveRoundTripsMetadata(t *testing.T) {
	list := op.NewList()
	list.Meta.ID = "abc123"
	list.Meta.Name = "my-list"
	list.Meta.Description = "round trip check"
	o := op.New(opdata.NewMatrix(ocmath.Identity4(), ocmath.NewVec4(0, 0, 0, 0)))
	o.Meta.Name = "identity"
	list.Append(o)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, list, CLF))
	reloaded, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, "abc123", reloaded.Meta.ID)
	assert.Equal(t, "my-list", reloaded.Meta.Name)
	assert.Equal(t, "round trip check", reloaded.Meta.Description)
	require.Equal(t, 1, reloaded.Len())
	assert.Equal(t, "identity", reloaded.Ops[0].Meta.Name)
}

func TestCheckDialectRejectsCTFOnlyUnderCLF(t *testing.T) {
	list := op.NewList()
	ec := &opdata.ExposureContrast{Contrast: 1, Gamma: 1, Pivot: 1, Dynamic: map[opdata.DynamicProperty]bool{}}
	list.Append(op.New(ec))
	var buf bytes.Buffer
	err := Save(&buf, list, CLF)
	assert.Error(t, err)
}
