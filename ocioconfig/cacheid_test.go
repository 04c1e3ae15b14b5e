// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ocioconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"ocio.dev/ocio/colorspace"
)

func TestConfigCacheIDStableAcrossEquivalentConfigs(t *testing.T) {
	a := New()
	assert.NoError(t, a.AddColorSpace(&colorspace.ColorSpace{Name: "lin_srgb"}))
	b := New()
	assert.NoError(t, b.AddColorSpace(&colorspace.ColorSpace{Name: "lin_srgb"}))
	assert.Equal(t, a.CacheID(), b.CacheID())
}

func TestConfigCacheIDChangesWithColorSpace(t *testing.T) {
	a := New()
	assert.NoError(t, a.AddColorSpace(&colorspace.ColorSpace{Name: "lin_srgb"}))
	b := New()
	assert.NoError(t, b.AddColorSpace(&colorspace.ColorSpace{Name: "lin_acescg"}))
	assert.NotEqual(t, a.CacheID(), b.CacheID())
}

func TestContextCacheIDChangesWithVar(t *testing.T) {
	a := NewContext()
	a.SetVar("SHOW", "foo")
	b := NewContext()
	b.SetVar("SHOW", "bar")
	assert.NotEqual(t, a.CacheID(), b.CacheID())
}

func TestContextCacheIDStableForEqualVars(t *testing.T) {
	a := NewContext()
	a.SetVar("SHOW", "foo")
	b := NewContext()
	b.SetVar("SHOW", "foo")
	assert.Equal(t, a.CacheID(), b.CacheID())
}
