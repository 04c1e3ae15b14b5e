// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// CacheID returns a stable digest of t's full field tree, the "canonical
// string of the Transform tree requested" component of the processor
// cache key (§4.6). fmt's %#v sorts map keys and walks nested structs and
// slices deterministically, so two Transforms built with the same field
// values produce the same id. Pointer-valued fields (RangeTransform's
// bounds) are formatted by address, not by the value they point to, so
// equal bounds held in distinct pointers give distinct ids.
func CacheID(t Transform) string {
	if t == nil {
		return "nil"
	}
	sum := md5.Sum([]byte(fmt.Sprintf("%#v", t)))
	return hex.EncodeToString(sum[:])
}
