// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ocioconfig

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"ocio.dev/ocio/transform"
)

// CacheID returns a stable digest of every field that changes what a
// Transform built against this config resolves to: color spaces, roles,
// looks, view transforms, displays/views, luma coefficients, and the
// family/search-path settings OpBuilder consults (§4.6's "config's cache
// id" cache key component). Two Configs with the same CacheID produce
// identical processors for the same transform and context. The contents
// of files that FileTransforms reference are not part of the digest.
func (c *Config) CacheID() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "v%d.%d|fam=%c|strict=%v|luma=%v", c.MajorVersion, c.MinorVersion, c.FamilySeparator, c.StrictParsing, c.LumaCoefficients)
	writeSortedStrings(&b, "search", c.SearchPath)
	writeSortedStrings(&b, "active_displays", c.ActiveDisplays)
	writeSortedStrings(&b, "active_views", c.ActiveViews)
	writeSortedStrings(&b, "inactive", c.InactiveColorSpaces)
	writeSortedStringMap(&b, "env", c.EnvironmentVars)
	writeSortedStringMap(&b, "roles", c.roles)

	names := make([]string, 0, len(c.colorSpaces))
	for name := range c.colorSpaces {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "|cs:%s=%s", name, c.colorSpaces[name].CacheID())
	}

	lookNames := make([]string, 0, len(c.looks))
	for name := range c.looks {
		lookNames = append(lookNames, name)
	}
	sort.Strings(lookNames)
	for _, name := range lookNames {
		fmt.Fprintf(&b, "|look:%s=%s", name, c.looks[name].CacheID())
	}

	vtNames := make([]string, 0, len(c.viewTransforms))
	for name := range c.viewTransforms {
		vtNames = append(vtNames, name)
	}
	sort.Strings(vtNames)
	for _, name := range vtNames {
		vt := c.viewTransforms[name]
		fmt.Fprintf(&b, "|vt:%s=%d/%s/%s", name, vt.ReferenceSpace, transform.CacheID(vt.ToReference), transform.CacheID(vt.FromReference))
	}

	for _, dname := range c.displayOrder {
		fmt.Fprintf(&b, "|display:%s=%s", dname, c.displays[dname].CacheID())
	}

	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func writeSortedStrings(b *strings.Builder, tag string, vals []string) {
	cp := append([]string(nil), vals...)
	sort.Strings(cp)
	fmt.Fprintf(b, "|%s=%s", tag, strings.Join(cp, ","))
}

func writeSortedStringMap(b *strings.Builder, tag string, m map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	b.WriteByte('|')
	b.WriteString(tag)
	for _, k := range keys {
		fmt.Fprintf(b, ";%s=%s", k, m[k])
	}
}

// CacheID returns a stable digest of every variable this context defines
// plus its search path and working directory: the "resolved values of
// every variable the transform actually consumed" component of the
// processor cache key is approximated here by the context's full variable
// set, since the builder does not currently track per-transform variable
// usage.
func (c *Context) CacheID() string {
	var b strings.Builder
	writeSortedStringMap(&b, "vars", c.vars)
	writeSortedStrings(&b, "search", c.searchPath)
	fmt.Fprintf(&b, "|wd=%s", c.workingDir)
	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
