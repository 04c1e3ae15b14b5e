// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"ocio.dev/ocio/optypes"
)

func TestKindTags(t *testing.T) {
	assert.Equal(t, "MatrixTransform", MatrixTransform{}.TransformKind())
	assert.Equal(t, "ColorSpaceTransform", ColorSpaceTransform{}.TransformKind())
	assert.Equal(t, "GroupTransform", GroupTransform{}.TransformKind())
}

func TestDirectionDefault(t *testing.T) {
	m := MatrixTransform{base: base{Dir: optypes.Inverse}}
	assert.Equal(t, optypes.Inverse, m.Direction())
	var z RangeTransform
	assert.Equal(t, optypes.Forward, z.Direction())
}

func TestGroupHoldsChildren(t *testing.T) {
	g := GroupTransform{Children: []Transform{
		MatrixTransform{}, ExponentTransform{Value: [4]float64{2.2, 2.2, 2.2, 1}},
	}}
	assert.Len(t, g.Children, 2)
	assert.Equal(t, "ExponentTransform", g.Children[1].TransformKind())
}
