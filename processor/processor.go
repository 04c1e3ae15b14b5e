// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package processor is the Processor cache (§2 item 9, §4.6): it ties
// opbuild, optimize, cpuproc, and gpuproc together behind a content-
// addressed, at-most-one-build-per-key cache keyed by the config's cache
// id, the context's cache id, the requested transform's cache id, and the
// optimization flags.
package processor

import (
	"fmt"
	"sync"

	"ocio.dev/ocio/cpuproc"
	"ocio.dev/ocio/gpuproc"
	"ocio.dev/ocio/ocioconfig"
	"ocio.dev/ocio/ocioerr"
	"ocio.dev/ocio/ociofs"
	"ocio.dev/ocio/op"
	"ocio.dev/ocio/opbuild"
	"ocio.dev/ocio/optimize"
	"ocio.dev/ocio/shaderdesc"
	"ocio.dev/ocio/transform"
)

var defaultCache = New()

// Default returns the process-wide processor cache, mirroring
// ociofs.Default()'s process-wide file cache.
func Default() *Cache { return defaultCache }

// ClearAllCaches drops every cached Processor in the default cache and
// every cached parsed file/CDL in the process-wide file cache (§5's
// "the processor cache on a Config is per-config; clearing it is safe
// while other threads hold processors" extended to every process-wide
// cache at once).
func ClearAllCaches() {
	defaultCache.Clear()
	ociofs.Default().Clear()
}

// Processor is the built, immutable end product of one (config, context,
// transform) request: an optimized op.List plus lazily-built CPU and GPU
// sub-processors specialized per request, mirroring Config/Context/
// CPUProcessor/GPUProcessor's "immutable after construction except for
// dynamic-property writes and lazily-initialized internal state" rule
// (§5).
type Processor struct {
	list  *op.List
	flags optimize.Flags

	mu   sync.Mutex
	cpus map[cpuKey]*cpuproc.Processor
	gpus map[gpuKey]*shaderdesc.Desc
}

type cpuKey struct{ legacy bool }
type gpuKey struct {
	lang   shaderdesc.Language
	legacy bool
}

// List returns the optimized op list this processor was built from, the
// same list every CPU/GPU sub-processor derives from.
func (p *Processor) List() *op.List { return p.list }

// Flags returns the optimization flags this processor was built under.
func (p *Processor) Flags() optimize.Flags { return p.flags }

// CPU returns (building and caching on first use) the default CPU
// sub-processor for this Processor's optimized list.
func (p *Processor) CPU() (*cpuproc.Processor, error) {
	return p.cpuFor(cpuKey{})
}

func (p *Processor) cpuFor(k cpuKey) (*cpuproc.Processor, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.cpus[k]; ok {
		return c, nil
	}
	c, err := cpuproc.New(p.list)
	if err != nil {
		return nil, err
	}
	if p.cpus == nil {
		p.cpus = map[cpuKey]*cpuproc.Processor{}
	}
	p.cpus[k] = c
	return c, nil
}

// GPU returns (building and caching on first use) the full-fidelity GPU
// shader description for lang.
func (p *Processor) GPU(lang shaderdesc.Language) (*shaderdesc.Desc, error) {
	return p.gpuFor(gpuKey{lang: lang})
}

// GPULegacy returns (building and caching on first use) the baked
// shaper-plus-3D-LUT GPU shader description for lang, for hosts that only
// support the legacy model (§4.5).
func (p *Processor) GPULegacy(lang shaderdesc.Language) (*shaderdesc.Desc, error) {
	return p.gpuFor(gpuKey{lang: lang, legacy: true})
}

func (p *Processor) gpuFor(k gpuKey) (*shaderdesc.Desc, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if d, ok := p.gpus[k]; ok {
		return d, nil
	}
	var d *shaderdesc.Desc
	var err error
	if k.legacy {
		d, err = gpuproc.BuildLegacy(p.list, k.lang)
	} else {
		d, err = gpuproc.Build(p.list, k.lang)
	}
	if err != nil {
		return nil, err
	}
	if p.gpus == nil {
		p.gpus = map[gpuKey]*shaderdesc.Desc{}
	}
	p.gpus[k] = d
	return d, nil
}

// entry is one cache slot: built at most once regardless of how many
// goroutines call Cache.Get with the same key concurrently, the same
// per-entry sync.Once discipline ociofs.Cache uses for parsed files.
type entry struct {
	once sync.Once
	proc *Processor
	err  error
}

// Cache is a processor cache, held apart from any Config: a concurrent map from
// (config cache id, context cache id, transform cache id, flags) to a
// built Processor.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// New returns an empty processor cache.
func New() *Cache {
	return &Cache{entries: map[string]*entry{}}
}

// Get returns the cached Processor for (cfg, ctx, t, flags), building it
// at most once. Concurrent callers requesting the same key block on the
// first builder rather than duplicating the build.
func (c *Cache) Get(cfg *ocioconfig.Config, ctx *ocioconfig.Context, t transform.Transform, flags optimize.Flags) (*Processor, error) {
	key := cacheKey(cfg, ctx, t, flags)

	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		e.proc, e.err = build(cfg, ctx, t, flags)
	})
	return e.proc, e.err
}

// Clear drops every cached Processor. Safe to call while other goroutines
// hold references to Processors it returned; they remain valid (§5).
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = map[string]*entry{}
}

func cacheKey(cfg *ocioconfig.Config, ctx *ocioconfig.Context, t transform.Transform, flags optimize.Flags) string {
	return fmt.Sprintf("%s|%s|%s|%d", cfg.CacheID(), ctx.CacheID(), transform.CacheID(t), flags)
}

func build(cfg *ocioconfig.Config, ctx *ocioconfig.Context, t transform.Transform, flags optimize.Flags) (*Processor, error) {
	b := opbuild.New(cfg, ctx, opbuild.DefaultOptions())
	list, err := b.Build(t)
	if err != nil {
		return nil, ocioerr.Wrap(ocioerr.KindInternal, "processor.build", "lowering transform", err)
	}
	optimize.Run(list, flags)
	cfg.Freeze()
	return &Processor{list: list, flags: flags}, nil
}
