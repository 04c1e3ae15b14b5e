// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ociofs is the process-wide file and CDL cache (§5): a parsed
// file's op list, keyed by absolute path plus filesystem fingerprint, is
// built at most once even under concurrent callers, and the main map is
// never held during the actual file read and parse.
package ociofs

import (
	"os"
	"sync"

	"ocio.dev/ocio/op"
)

// entry is a lazily-initialized cache slot: the per-entry mutex lets two
// goroutines miss the map at the same time without double-parsing the
// same file, while never holding the cache's own mutex during the parse.
type entry struct {
	once   sync.Once
	list   *op.List
	err    error
	loader func() (*op.List, error)
}

func (e *entry) get() (*op.List, error) {
	e.once.Do(func() { e.list, e.err = e.loader() })
	return e.list, e.err
}

type fileKey struct {
	path    string
	modTime int64
	size    int64
}

// Cache is a process-wide, mutex-guarded map from resolved file path (plus
// a filesystem fingerprint invalidating stale entries) to its parsed op
// list, and from (path, cccId) to a parsed CDL transform.
type Cache struct {
	mu    sync.Mutex
	files map[fileKey]*entry
	cdls  map[cdlKey]*entry
}

type cdlKey struct {
	fileKey
	cccID string
}

var defaultCache = New()

// Default returns the process-wide cache instance.
func Default() *Cache { return defaultCache }

// New returns an independent cache, useful for tests that must not share
// state with other packages' use of the process-wide default.
func New() *Cache {
	return &Cache{files: map[fileKey]*entry{}, cdls: map[cdlKey]*entry{}}
}

func fingerprint(path string) fileKey {
	fi, err := os.Stat(path)
	if err != nil {
		return fileKey{path: path}
	}
	return fileKey{path: path, modTime: fi.ModTime().UnixNano(), size: fi.Size()}
}

// LoadFile returns the cached parse of path, invoking parse at most once
// per distinct (path, fingerprint) even under concurrent callers.
func (c *Cache) LoadFile(path string, parse func() (*op.List, error)) (*op.List, error) {
	key := fingerprint(path)
	c.mu.Lock()
	e, ok := c.files[key]
	if !ok {
		e = &entry{loader: parse}
		c.files[key] = e
	}
	c.mu.Unlock()
	return e.get()
}

// LoadCDL returns the cached parse of a (path, cccId) CDL lookup.
func (c *Cache) LoadCDL(path, cccID string, parse func() (*op.List, error)) (*op.List, error) {
	key := cdlKey{fileKey: fingerprint(path), cccID: cccID}
	c.mu.Lock()
	e, ok := c.cdls[key]
	if !ok {
		e = &entry{loader: parse}
		c.cdls[key] = e
	}
	c.mu.Unlock()
	return e.get()
}

// Clear drops every cached entry; safe to call while other threads hold
// op lists previously returned from the cache, since it only drops the
// cache's own references to them (every caller of LoadFile/LoadCDL for
// the same key receives the same *op.List).
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files = map[fileKey]*entry{}
	c.cdls = map[cdlKey]*entry{}
}
