// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package processor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ocio.dev/ocio/ocioconfig"
	"ocio.dev/ocio/optimize"
	"ocio.dev/ocio/shaderdesc"
	"ocio.dev/ocio/transform"
)

func scaleTransform(s float64) transform.MatrixTransform {
	return transform.MatrixTransform{
		Matrix: [16]float64{s, 0, 0, 0, 0, s, 0, 0, 0, 0, s, 0, 0, 0, 0, 1},
	}
}

func TestGetBuildsAndCachesByKey(t *testing.T) {
	cfg := ocioconfig.New()
	ctx := ocioconfig.NewContext()
	cache := New()

	p1, err := cache.Get(cfg, ctx, scaleTransform(2), optimize.Default)
	require.NoError(t, err)
	p2, err := cache.Get(cfg, ctx, scaleTransform(2), optimize.Default)
	require.NoError(t, err)
	assert.Same(t, p1, p2)
}

func TestGetDistinguishesTransforms(t *testing.T) {
	cfg := ocioconfig.New()
	ctx := ocioconfig.NewContext()
	cache := New()

	p1, err := cache.Get(cfg, ctx, scaleTransform(2), optimize.Default)
	require.NoError(t, err)
	p2, err := cache.Get(cfg, ctx, scaleTransform(3), optimize.Default)
	require.NoError(t, err)
	assert.NotSame(t, p1, p2)
}

func TestGetConcurrentBuildsOnlyOnce(t *testing.T) {
	cfg := ocioconfig.New()
	ctx := ocioconfig.NewContext()
	cache := New()

	var wg sync.WaitGroup
	results := make([]*Processor, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := cache.Get(cfg, ctx, scaleTransform(2), optimize.Default)
			require.NoError(t, err)
			results[i] = p
		}(i)
	}
	wg.Wait()
	for _, p := range results {
		assert.Same(t, results[0], p)
	}
}

func TestClearDoesNotInvalidateOutstandingReference(t *testing.T) {
	cfg := ocioconfig.New()
	ctx := ocioconfig.NewContext()
	cache := New()

	p, err := cache.Get(cfg, ctx, scaleTransform(2), optimize.Default)
	require.NoError(t, err)
	cache.Clear()
	cpu, err := p.CPU()
	require.NoError(t, err)
	r, _, _ := cpu.ApplyRGB(0.1, 0.1, 0.1)
	assert.InDelta(t, 0.2, r, 1e-6)
}

func TestCPUIsCachedAcrossCalls(t *testing.T) {
	cfg := ocioconfig.New()
	ctx := ocioconfig.NewContext()
	cache := New()
	p, err := cache.Get(cfg, ctx, scaleTransform(2), optimize.Default)
	require.NoError(t, err)

	c1, err := p.CPU()
	require.NoError(t, err)
	c2, err := p.CPU()
	require.NoError(t, err)
	assert.Same(t, c1, c2)
}

func TestGPULegacyMarksDescriptionLegacy(t *testing.T) {
	cfg := ocioconfig.New()
	ctx := ocioconfig.NewContext()
	cache := New()
	p, err := cache.Get(cfg, ctx, scaleTransform(2), optimize.Default)
	require.NoError(t, err)

	d, err := p.GPULegacy(shaderdesc.GLSL4_0)
	require.NoError(t, err)
	assert.True(t, d.IsLegacy())
}
