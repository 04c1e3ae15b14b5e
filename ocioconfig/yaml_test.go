// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ocioconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"ocio.dev/ocio/transform"
)

const sampleConfig = `
ocio_profile_version: 2
search_path: "luts"
roles:
  reference: lin_srgb
  scene_linear: lin_srgb
displays:
  sRGB:
    - !<View>
      view: Film
      colorspace: lin_srgb
colorspaces:
  - !<ColorSpace>
    name: lin_srgb
    to_reference: !<MatrixTransform>
      matrix: [1,0,0,0, 0,1,0,0, 0,0,1,0, 0,0,0,1]
      offset: [0,0,0,0]
  - !<ColorSpace>
    name: look_grade
    from_reference: !<GroupTransform>
      children:
        - !<ExponentTransform>
          value: [2.2, 2.2, 2.2, 1.0]
        - !<CDLTransform>
          slope: [1.1, 1.0, 1.0]
`

func TestDecodeConfigBasics(t *testing.T) {
	cfg, err := Decode([]byte(sampleConfig))
	assert.NoError(t, err)
	assert.Equal(t, []string{"luts"}, cfg.SearchPath)
	target, ok := cfg.Role("reference")
	assert.True(t, ok)
	assert.Equal(t, "lin_srgb", target)

	cs, err := cfg.ColorSpace("lin_srgb")
	assert.NoError(t, err)
	mt, ok := cs.ToReference.(transform.MatrixTransform)
	assert.True(t, ok)
	assert.Equal(t, 1.0, mt.Matrix[0])

	grade, err := cfg.ColorSpace("look_grade")
	assert.NoError(t, err)
	gt, ok := grade.FromReference.(transform.GroupTransform)
	assert.True(t, ok)
	assert.Len(t, gt.Children, 2)
	assert.Equal(t, "ExponentTransform", gt.Children[0].TransformKind())
	assert.Equal(t, "CDLTransform", gt.Children[1].TransformKind())

	v, err := cfg.View("sRGB", "Film")
	assert.NoError(t, err)
	assert.Equal(t, "lin_srgb", v.ColorSpace)
}
