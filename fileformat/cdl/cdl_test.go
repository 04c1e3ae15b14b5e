// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdl

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
	"ocio.dev/ocio/opdata"
)

const sampleCC = `<ColorCorrection id="cc01">
  <SOPNode>
    <Slope>1.1 1.0 0.9</Slope>
    <Offset>0.01 0.0 -0.01</Offset>
    <Power>1.0 1.0 1.0</Power>
  </SOPNode>
  <SatNode>
    <Saturation>1.2</Saturation>
  </SatNode>
</ColorCorrection>
`

func TestLoadCC(t *testing.T) {
	list, err := LoadCC(strings.NewReader(sampleCC))
	require.NoError(t, err)
	require.Equal(t, 1, list.Len())
	c := list.Ops[0].Data.(*opdata.CDL)
	assert.InDelta(t, 1.1, c.Slope[0], 1e-6)
	assert.InDelta(t, 1.2, c.Saturation, 1e-6)
}

const sampleCCC = `<ColorDecisionList>
  <ColorDecision>
    <ColorCorrection id="shot01">
      <SOPNode><Slope>1 1 1</Slope><Offset>0 0 0</Offset><Power>1 1 1</Power></SOPNode>
    </ColorCorrection>
  </ColorDecision>
  <ColorDecision>
    <ColorCorrection id="shot02">
      <SOPNode><Slope>0.5 0.5 0.5</Slope><Offset>0 0 0</Offset><Power>1 1 1</Power></SOPNode>
    </ColorCorrection>
  </ColorDecision>
</ColorDecisionList>
`

func TestLoadCCCByID(t *testing.T) {
	list, err := LoadCCC(strings.NewReader(sampleCCC), "shot02")
	require.NoError(t, err)
	c := list.Ops[0].Data.(*opdata.CDL)
	assert.InDelta(t, 0.5, c.Slope[0], 1e-6)
}

func TestLoadCCCFallsBackToPositionalIndex(t *testing.T) {
	list, err := LoadCCC(strings.NewReader(sampleCCC), "1")
	require.NoError(t, err)
	c := list.Ops[0].Data.(*opdata.CDL)
	assert.InDelta(t, 0.5, c.Slope[0], 1e-6)
}

func TestLoadCCCMissingIDErrors(t *testing.T) {
	_, err := LoadCCC(strings.NewReader(sampleCCC), "nonexistent")
	assert.Error(t, err)
}

// namedColorSlope builds an SOP Slope fixture out of a well-known named
// color instead of arbitrary floats, so a reviewer can tell at a glance
// which hue a test's assertions are about.
func namedColorSlope(name string) (r, g, b float64) {
	c := colornames.Map[name]
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

func TestLoadCCNamedColorSlopeFixture(t *testing.T) {
	r, g, b := namedColorSlope("orangered")
	cc := fmt.Sprintf(`<ColorCorrection id="named-orangered">
  <SOPNode>
    <Slope>%f %f %f</Slope>
    <Offset>0 0 0</Offset>
    <Power>1 1 1</Power>
  </SOPNode>
</ColorCorrection>
`, r, g, b)
	list, err := LoadCC(strings.NewReader(cc))
	require.NoError(t, err)
	c := list.Ops[0].Data.(*opdata.CDL)
	assert.InDelta(t, r, c.Slope[0], 1e-4)
	assert.InDelta(t, g, c.Slope[1], 1e-4)
	assert.InDelta(t, b, c.Slope[2], 1e-4)
}
