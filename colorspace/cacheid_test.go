// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"ocio.dev/ocio/transform"
)

func TestColorSpaceCacheIDChangesWithTransform(t *testing.T) {
	a := &ColorSpace{Name: "lin_srgb", ToReference: transform.MatrixTransform{}}
	b := &ColorSpace{Name: "lin_srgb", ToReference: transform.ExponentTransform{}}
	assert.NotEqual(t, a.CacheID(), b.CacheID())
}

func TestLookCacheIDStableForEqualValues(t *testing.T) {
	a := &Look{Name: "grade", ProcessSpace: "lin_srgb"}
	b := &Look{Name: "grade", ProcessSpace: "lin_srgb"}
	assert.Equal(t, a.CacheID(), b.CacheID())
}

func TestDisplayCacheIDReflectsViews(t *testing.T) {
	a := &Display{Name: "sRGB", Views: []View{{Name: "Film", ColorSpace: "out_srgb"}}}
	b := &Display{Name: "sRGB", Views: []View{{Name: "Film", ColorSpace: "out_rec709"}}}
	assert.NotEqual(t, a.CacheID(), b.CacheID())
}
