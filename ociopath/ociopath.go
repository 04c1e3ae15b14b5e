// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ociopath resolves a (context-variable-substituted) file
// reference against a working directory and an ordered search path, the
// second half of FileTransform lowering (§4.2, §5).
package ociopath

import (
	"fmt"
	"os"
	"path/filepath"

	"ocio.dev/ocio/ocioerr"
)

// Resolve returns the first existing path among: name as given (if
// absolute, the only candidate), workingDir joined with name, each
// searchPath entry (themselves already variable-substituted) joined with
// name, with relative entries taken under workingDir, and finally name as
// given, in that order.
func Resolve(name, workingDir string, searchPath []string) (string, error) {
	if filepath.IsAbs(name) {
		if exists(name) {
			return name, nil
		}
		return "", missing(name)
	}
	candidates := make([]string, 0, len(searchPath)+2)
	if workingDir != "" {
		candidates = append(candidates, filepath.Join(workingDir, name))
	}
	for _, dir := range searchPath {
		if filepath.IsAbs(dir) {
			candidates = append(candidates, filepath.Join(dir, name))
		} else {
			candidates = append(candidates, filepath.Join(workingDir, dir, name))
		}
	}
	candidates = append(candidates, name)
	for _, c := range candidates {
		if exists(c) {
			return c, nil
		}
	}
	return "", missing(name)
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

func missing(name string) error {
	return ocioerr.New(ocioerr.KindMissingFile, "ociopath.Resolve", fmt.Sprintf("%q not found on search path", name))
}
