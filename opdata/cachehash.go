// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opdata

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// hashParts canonicalizes a kind tag, direction/style/interpolation
// descriptors and a flat list of numeric parameters into a stable MD5 hex
// digest, per §4.1's "MD5 of canonicalized parameters, followed by
// direction, style, interpolation."
func hashParts(kind string, tags []string, floats []float32, ints []int) string {
	var b strings.Builder
	b.WriteString(kind)
	for _, t := range tags {
		b.WriteByte('|')
		b.WriteString(t)
	}
	for _, f := range floats {
		fmt.Fprintf(&b, "|%.9g", f)
	}
	for _, i := range ints {
		fmt.Fprintf(&b, "|%d", i)
	}
	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
