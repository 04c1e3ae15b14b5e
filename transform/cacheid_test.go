// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheIDIsStableAndDistinguishesValues(t *testing.T) {
	a := MatrixTransform{Matrix: [16]float64{1: 1, 5: 1, 10: 1, 15: 1}}
	b := MatrixTransform{Matrix: [16]float64{1: 1, 5: 1, 10: 1, 15: 1}}
	c := MatrixTransform{Matrix: [16]float64{1: 2, 5: 1, 10: 1, 15: 1}}

	assert.Equal(t, CacheID(a), CacheID(b))
	assert.NotEqual(t, CacheID(a), CacheID(c))
}

func TestCacheIDHandlesNil(t *testing.T) {
	assert.Equal(t, "nil", CacheID(nil))
}
