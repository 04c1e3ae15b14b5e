// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorspace holds the named, addressable pieces of a config's
// color model (§2 item 7): ColorSpace, Role, Look, ViewTransform, Display,
// and View. OpBuilder resolves Transform references against these by name.
package colorspace

import (
	"ocio.dev/ocio/optypes"
	"ocio.dev/ocio/transform"
)

// ColorSpace is a named space plus the transforms that move pixels to and
// from the config's reference space. Either direction may be nil; OpBuilder
// derives the missing one from the other when only one is given, and errors
// if neither is present and a hop through this space is requested.
type ColorSpace struct {
	Name           string
	Aliases        []string
	Family         string
	Description    string
	EqualityGroup  string
	BitDepth       string
	IsData         bool
	ReferenceSpace optypes.ReferenceSpaceType
	Allocation     optypes.Allocation
	ToReference    transform.Transform
	FromReference  transform.Transform
	Categories     []string
}

// Role names a logical purpose ("reference", "scene_linear", "color_timing",
// "compositing_log", "matte_paint", ...) pointing at a ColorSpace by name.
type Role struct {
	Name       string
	ColorSpace string
}

// Look is a named, optional grade: a forward transform plus an optional
// explicit-process-space colorspace and an optional separate inverse
// transform used when the look is requested in reverse.
type Look struct {
	Name            string
	ProcessSpace    string
	Transform       transform.Transform
	InverseTransform transform.Transform
	Description     string
}

// ViewTransform carries scene-referred pixels to a display-referred space,
// the hop DisplayViewTransform inserts between the look chain and the
// display colorspace.
type ViewTransform struct {
	Name           string
	Family         string
	Description    string
	ToReference    transform.Transform
	FromReference  transform.Transform
	ReferenceSpace optypes.ReferenceSpaceType
}

// View binds a display's named view to a colorspace or a view transform
// plus looks, per the DisplayViewTransform resolution order.
type View struct {
	Name              string
	ColorSpace        string
	ViewTransform     string
	DisplayColorSpace string
	Looks             string
	Description       string
	Rule              string
}

// Display groups the named Views available for one physical/virtual output
// device.
type Display struct {
	Name  string
	Views []View
}
