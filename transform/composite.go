// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

// GroupTransform is an ordered sequence of child transforms flattened by
// OpBuilder; no GroupTransform survives into an optimized op.List.
type GroupTransform struct {
	base        `yaml:",inline"`
	Children    []Transform `yaml:"children"`
	Description string      `yaml:"description,omitempty"`
}

func (GroupTransform) TransformKind() string { return "GroupTransform" }

// ColorSpaceTransform moves pixels from one named colorspace to another,
// by convention through the config's reference space unless both spaces
// resolve to the same one. IsData colorspaces bypass the hop entirely
// (data channels, e.g. normals or IDs, must not be color-processed).
type ColorSpaceTransform struct {
	base       `yaml:",inline"`
	Src        string `yaml:"src"`
	Dst        string `yaml:"dst"`
	DataBypass bool   `yaml:"dataBypass,omitempty"`
}

func (ColorSpaceTransform) TransformKind() string { return "ColorSpaceTransform" }

// DisplayViewTransform renders a named colorspace (or the config's scene
// reference) to a display's view: input colorspace to reference, then the
// view's look chain, then the view transform, then the display colorspace.
type DisplayViewTransform struct {
	base            `yaml:",inline"`
	Src             string `yaml:"src"`
	Display         string `yaml:"display"`
	View            string `yaml:"view"`
	LooksBypass     bool   `yaml:"looksBypass,omitempty"`
	LooksOverride   string `yaml:"looksOverride,omitempty"`
}

func (DisplayViewTransform) TransformKind() string { return "DisplayViewTransform" }

// LookTransform applies a comma-separated, optionally `:`-process-space-
// qualified list of named looks (each optionally `+`/`-` prefixed to force
// forward/inverse, with `|`-separated fallback alternatives tried in order
// when a look's file is missing) between Src and Dst colorspaces.
type LookTransform struct {
	base  `yaml:",inline"`
	Src   string `yaml:"src"`
	Dst   string `yaml:"dst"`
	Looks string `yaml:"looks"`
}

func (LookTransform) TransformKind() string { return "LookTransform" }

// FileTransform loads an op chain from an external file (CLF/CTF/.spi1d/
// .spi3d/.cube/.spimtx/.cc/.ccc), after resolving context variables and
// searching the config's search_path for the named file.
type FileTransform struct {
	base          `yaml:",inline"`
	Src           string `yaml:"src"`
	CCCId         string `yaml:"cccId,omitempty"`
	Interpolation string `yaml:"interpolation,omitempty"`
}

func (FileTransform) TransformKind() string { return "FileTransform" }
