// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fileformat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ocio.dev/ocio/ociofs"
	"ocio.dev/ocio/opdata"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDispatchesBySPIMtxExtension(t *testing.T) {
	path := writeTemp(t, "m.spimtx", "1.0 0.0 0.0 0.0 0.0 1.0 0.0 0.0 0.0 0.0 1.0 0.0")
	cache := ociofs.New()
	list, err := Load(cache, path, "", "")
	require.NoError(t, err)
	_, ok := list.Ops[0].Data.(*opdata.Matrix)
	assert.True(t, ok)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := writeTemp(t, "m.unknownfmt", "garbage")
	cache := ociofs.New()
	_, err := Load(cache, path, "", "")
	assert.Error(t, err)
}

func TestLoadAppliesInterpolationOverride(t *testing.T) {
	path := writeTemp(t, "lut.spi3d", "SPILUT 1.0 0 2 2 2\n"+
		"0 0 0 0 0 0\n0 0 1 0 0 1\n0 1 0 0 1 0\n0 1 1 0 1 1\n"+
		"1 0 0 1 0 0\n1 0 1 1 0 1\n1 1 0 1 1 0\n1 1 1 1 1 1\n")
	cache := ociofs.New()
	list, err := Load(cache, path, "", "nearest")
	require.NoError(t, err)
	l := list.Ops[0].Data.(*opdata.Lut3D)
	assert.Equal(t, 0, int(l.Interp))
}

func TestLoadDoesNotMutateCachedEntry(t *testing.T) {
	path := writeTemp(t, "lut.spi3d", "SPILUT 1.0 0 2 2 2\n"+
		"0 0 0 0 0 0\n0 0 1 0 0 1\n0 1 0 0 1 0\n0 1 1 0 1 1\n"+
		"1 0 0 1 0 0\n1 0 1 1 0 1\n1 1 0 1 1 0\n1 1 1 1 1 1\n")
	cache := ociofs.New()
	_, err := Load(cache, path, "", "cubic")
	require.NoError(t, err)
	list2, err := Load(cache, path, "", "")
	require.NoError(t, err)
	l := list2.Ops[0].Data.(*opdata.Lut3D)
	assert.NotEqual(t, int(l.Interp), 3) // 3 == Cubic; the first call's override must not leak into the cache
}
