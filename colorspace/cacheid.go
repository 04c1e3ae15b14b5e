// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"ocio.dev/ocio/transform"
)

// CacheID digests every field that changes what pixels this color space
// produces, for the config-level cache id Processor keys on (§4.6).
func (cs *ColorSpace) CacheID() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%s|%v|%d|%s|%v", cs.Name, cs.BitDepth, cs.IsData, cs.ReferenceSpace, cs.Allocation.Kind, cs.Allocation.Vars)
	b.WriteString("|to=")
	b.WriteString(transform.CacheID(cs.ToReference))
	b.WriteString("|from=")
	b.WriteString(transform.CacheID(cs.FromReference))
	return digest(b.String())
}

// CacheID digests a look's process space and both transform directions.
func (l *Look) CacheID() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%s", l.Name, l.ProcessSpace)
	b.WriteString("|fwd=")
	b.WriteString(transform.CacheID(l.Transform))
	b.WriteString("|inv=")
	b.WriteString(transform.CacheID(l.InverseTransform))
	return digest(b.String())
}

// CacheID digests a display's full set of named views.
func (d *Display) CacheID() string {
	var b strings.Builder
	b.WriteString(d.Name)
	for _, v := range d.Views {
		fmt.Fprintf(&b, "|%s=%s/%s/%s/%s", v.Name, v.ColorSpace, v.ViewTransform, v.DisplayColorSpace, v.Looks)
	}
	return digest(b.String())
}

func digest(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
