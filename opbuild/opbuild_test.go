// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opbuild

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ocio.dev/ocio/colorspace"
	"ocio.dev/ocio/ocioconfig"
	"ocio.dev/ocio/ocioerr"
	"ocio.dev/ocio/transform"
)

func identityMatrix() transform.MatrixTransform {
	return transform.MatrixTransform{Matrix: [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}}
}

func TestLookChainAppliesSingleLook(t *testing.T) {
	cfg := ocioconfig.New()
	require.NoError(t, cfg.AddLook(&colorspace.Look{Name: "grade1", Transform: identityMatrix()}))

	b := New(cfg, ocioconfig.NewContext(), DefaultOptions())
	list, err := b.Build(transform.LookTransform{Src: "in", Dst: "in", Looks: "grade1"})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Len())
}

// TestLookAlternativeRetriesOnMissingFile covers §4.2's "if a look lookup
// fails because a referenced file is missing, the builder tries the next
// look": the first alternative names a real look whose own transform is a
// FileTransform to a file that doesn't exist, so the build of that
// alternative fails with KindMissingFile and the second alternative runs.
func TestLookAlternativeRetriesOnMissingFile(t *testing.T) {
	cfg := ocioconfig.New()
	require.NoError(t, cfg.AddLook(&colorspace.Look{
		Name:      "broken",
		Transform: transform.FileTransform{Src: "does-not-exist.clf"},
	}))
	require.NoError(t, cfg.AddLook(&colorspace.Look{Name: "good", Transform: identityMatrix()}))

	b := New(cfg, ocioconfig.NewContext(), DefaultOptions())
	list, err := b.Build(transform.LookTransform{Src: "in", Dst: "in", Looks: "broken|good"})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Len())
}

// TestLookAlternativeUnknownNameAbortsImmediately checks the retry fix
// doesn't over-widen: a look name that simply isn't registered in the
// config (KindUnknownName, not KindMissingFile) must fail the whole chain
// rather than silently falling through to the next alternative.
func TestLookAlternativeUnknownNameAbortsImmediately(t *testing.T) {
	cfg := ocioconfig.New()
	require.NoError(t, cfg.AddLook(&colorspace.Look{Name: "good", Transform: identityMatrix()}))

	b := New(cfg, ocioconfig.NewContext(), DefaultOptions())
	_, err := b.Build(transform.LookTransform{Src: "in", Dst: "in", Looks: "not-registered|good"})
	require.Error(t, err)
	assert.True(t, ocioerr.Is(err, ocioerr.UnknownName))
}

func TestLookAlternativesAllMissingFileFails(t *testing.T) {
	cfg := ocioconfig.New()
	require.NoError(t, cfg.AddLook(&colorspace.Look{
		Name:      "broken1",
		Transform: transform.FileTransform{Src: "missing1.clf"},
	}))
	require.NoError(t, cfg.AddLook(&colorspace.Look{
		Name:      "broken2",
		Transform: transform.FileTransform{Src: "missing2.clf"},
	}))

	b := New(cfg, ocioconfig.NewContext(), DefaultOptions())
	_, err := b.Build(transform.LookTransform{Src: "in", Dst: "in", Looks: "broken1|broken2"})
	require.Error(t, err)
	assert.True(t, ocioerr.Is(err, ocioerr.MissingFile))
}

func TestDisplayViewResolvesToDisplayColorSpace(t *testing.T) {
	cfg := ocioconfig.New()
	require.NoError(t, cfg.AddColorSpace(&colorspace.ColorSpace{
		Name:          "sRGB - Display",
		FromReference: identityMatrix(),
	}))
	require.NoError(t, cfg.AddDisplay(&colorspace.Display{
		Name: "sRGB",
		Views: []colorspace.View{
			{Name: "Standard", DisplayColorSpace: "sRGB - Display"},
		},
	}))

	b := New(cfg, ocioconfig.NewContext(), DefaultOptions())
	list, err := b.Build(transform.DisplayViewTransform{Src: "scene_linear", Display: "sRGB", View: "Standard"})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Len())
}

func TestDisplayViewUnknownViewErrors(t *testing.T) {
	cfg := ocioconfig.New()
	require.NoError(t, cfg.AddDisplay(&colorspace.Display{Name: "sRGB"}))

	b := New(cfg, ocioconfig.NewContext(), DefaultOptions())
	_, err := b.Build(transform.DisplayViewTransform{Src: "scene_linear", Display: "sRGB", View: "nope"})
	require.Error(t, err)
	assert.True(t, ocioerr.Is(err, ocioerr.UnknownName))
}

func TestFileTransformMissingFileErrors(t *testing.T) {
	ctx := ocioconfig.NewContext()
	ctx.SetWorkingDir(t.TempDir())
	b := New(ocioconfig.New(), ctx, DefaultOptions())
	_, err := b.Build(transform.FileTransform{Src: "nope.clf"})
	require.Error(t, err)
	assert.True(t, ocioerr.Is(err, ocioerr.MissingFile))
}

const cyclicCLF = `<?xml version="1.0" encoding="UTF-8"?>
<ProcessList compCLFversion="3.0">
  <Reference path="%s"></Reference>
</ProcessList>
`

// TestFileReferenceCycleRejected covers spec §8 Quantified Invariant 6: a
// <Reference> chain that transitively points back to a file still open on
// the build's call stack raises KindReferenceCycle instead of recursing
// forever.
func TestFileReferenceCycleRejected(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.clf"), []byte(sprintfCLF("b.clf")), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.clf"), []byte(sprintfCLF("a.clf")), 0o644))

	ctx := ocioconfig.NewContext()
	ctx.SetWorkingDir(dir)
	b := New(ocioconfig.New(), ctx, DefaultOptions())
	_, err := b.Build(transform.FileTransform{Src: "a.clf"})
	require.Error(t, err)
	assert.True(t, ocioerr.Is(err, ocioerr.ReferenceCycle))
}

func TestFileReferenceChainInlinesWithoutCycle(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "root.clf"), []byte(sprintfCLF("leaf.clf")), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leaf.clf"), []byte(matrixCLF), 0o644))

	ctx := ocioconfig.NewContext()
	ctx.SetWorkingDir(dir)
	b := New(ocioconfig.New(), ctx, DefaultOptions())
	list, err := b.Build(transform.FileTransform{Src: "root.clf"})
	require.NoError(t, err)
	// Two FileNoOp breadcrumbs bracket the single inlined Matrix op.
	assert.Equal(t, 3, list.Len())
}

const matrixCLF = `<?xml version="1.0" encoding="UTF-8"?>
<ProcessList compCLFversion="3.0">
  <Matrix inBitDepth="32f" outBitDepth="32f">
    <Array dim="3 4 3">
      1 0 0 0
      0 1 0 0
      0 0 1 0
    </Array>
  </Matrix>
</ProcessList>
`

func sprintfCLF(path string) string {
	return "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<ProcessList compCLFversion=\"3.0\">\n  <Reference path=\"" + path + "\"></Reference>\n</ProcessList>\n"
}
