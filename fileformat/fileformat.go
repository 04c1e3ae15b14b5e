// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fileformat dispatches a resolved file path to the right parser
// by extension (§6.2, §6.3) and routes every read through the process-wide
// cache so a file is parsed at most once regardless of how many
// FileTransforms reference it.
package fileformat

import (
	"os"
	"path/filepath"
	"strings"

	"ocio.dev/ocio/fileformat/cdl"
	"ocio.dev/ocio/fileformat/clf"
	"ocio.dev/ocio/fileformat/lut"
	"ocio.dev/ocio/ociofs"
	"ocio.dev/ocio/ocioerr"
	"ocio.dev/ocio/op"
)

// Load parses path through the cache, applying interp as the
// interpolation override for any LUT ops the file produces (an empty
// interp leaves each op's own default).
func Load(cache *ociofs.Cache, path, cccID, interp string) (*op.List, error) {
	if strings.EqualFold(filepath.Ext(path), ".ccc") {
		list, err := cache.LoadCDL(path, cccID, func() (*op.List, error) { return parseCCC(path, cccID) })
		if err != nil {
			return nil, err
		}
		return withInterpolation(list.Clone(), interp), nil
	}
	list, err := cache.LoadFile(path, func() (*op.List, error) { return parseFile(path) })
	if err != nil {
		return nil, err
	}
	return withInterpolation(list.Clone(), interp), nil
}

func parseFile(path string) (*op.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ocioerr.Wrap(ocioerr.KindMissingFile, "fileformat.parseFile", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".clf", ".ctf":
		return clf.Load(f)
	case ".spi1d":
		return lut.LoadSPI1D(f)
	case ".spi3d":
		return lut.LoadSPI3D(f)
	case ".spimtx":
		return lut.LoadSPIMtx(f)
	case ".cube":
		return lut.LoadCube(f)
	case ".cc":
		return cdl.LoadCC(f)
	default:
		return nil, ocioerr.New(ocioerr.KindUnsupportedFormat, "fileformat.parseFile", "unrecognized extension "+filepath.Ext(path))
	}
}

func parseCCC(path, cccID string) (*op.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ocioerr.Wrap(ocioerr.KindMissingFile, "fileformat.parseCCC", path, err)
	}
	defer f.Close()
	return cdl.LoadCCC(f, cccID)
}

// withInterpolation applies an explicit interpolation override (from
// FileTransform.Interpolation) to every LUT op in list, matching the
// builder's expectation that the file format layer honors it.
func withInterpolation(list *op.List, interp string) *op.List {
	if interp == "" {
		return list
	}
	parsed, ok := parseInterpolation(interp)
	if !ok {
		return list
	}
	for _, o := range list.Ops {
		setInterpolation(o, parsed)
	}
	return list
}
