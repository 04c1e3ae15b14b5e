// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opdata

import "ocio.dev/ocio/optypes"

// Reference is a CLF <Reference> or FileTransform pointer to another op
// list on disk; resolved (inlined) before optimization. A Reference that
// survives to optimization time is a builder bug.
type Reference struct {
	bitDepths
	Path string
	Dir  optypes.Direction
}

func (r *Reference) Kind() Kind { return KindReference }

func (r *Reference) Validate() error {
	if r.Path == "" {
		return invalidParam("Reference", "path must not be empty")
	}
	return nil
}

func (r *Reference) IsIdentity() bool { return false }

func (r *Reference) HasChannelCrosstalk() bool { return true }

func (r *Reference) CacheID() string {
	return hashParts("Reference", []string{r.Path, r.Dir.String()}, nil, []int{int(r.in), int(r.out)})
}

func (r *Reference) Clone() OpData {
	c := *r
	return &c
}
