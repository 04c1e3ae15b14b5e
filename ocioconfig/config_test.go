// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ocioconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"ocio.dev/ocio/colorspace"
)

func TestColorSpaceAndRoleResolution(t *testing.T) {
	cfg := New()
	assert.NoError(t, cfg.AddColorSpace(&colorspace.ColorSpace{Name: "lin_srgb", Aliases: []string{"scene_linear"}}))
	assert.NoError(t, cfg.SetRole("reference", "lin_srgb"))

	cs, err := cfg.ColorSpace("scene_linear")
	assert.NoError(t, err)
	assert.Equal(t, "lin_srgb", cs.Name)

	cs, err = cfg.ColorSpace("reference")
	assert.NoError(t, err)
	assert.Equal(t, "lin_srgb", cs.Name)

	_, err = cfg.ColorSpace("nope")
	assert.Error(t, err)
}

func TestFreezeBlocksMutation(t *testing.T) {
	cfg := New()
	cfg.Freeze()
	err := cfg.AddColorSpace(&colorspace.ColorSpace{Name: "x"})
	assert.Error(t, err)
}

func TestCloneAfterFreezeIsMutable(t *testing.T) {
	cfg := New()
	assert.NoError(t, cfg.AddColorSpace(&colorspace.ColorSpace{Name: "x"}))
	cfg.Freeze()
	clone := cfg.Clone()
	assert.NoError(t, clone.AddColorSpace(&colorspace.ColorSpace{Name: "y"}))
	_, err := clone.ColorSpace("x")
	assert.NoError(t, err)
}

func TestDisplaysAndViews(t *testing.T) {
	cfg := New()
	assert.NoError(t, cfg.AddDisplay(&colorspace.Display{Name: "sRGB", Views: []colorspace.View{
		{Name: "Film", ViewTransform: "ACES 1.0", DisplayColorSpace: "sRGB - Display"},
	}}))
	assert.Equal(t, []string{"sRGB"}, cfg.Displays())
	v, err := cfg.View("sRGB", "Film")
	assert.NoError(t, err)
	assert.Equal(t, "ACES 1.0", v.ViewTransform)
}
