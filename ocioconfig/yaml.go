// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ocioconfig

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"ocio.dev/ocio/colorspace"
	"ocio.dev/ocio/ocioerr"
	"ocio.dev/ocio/transform"
)

// yamlDoc mirrors the config file's top-level shape. Transform-bearing
// fields are decoded through transformNode so that each list element's
// `!<Kind>` tag selects the right Go type.
type yamlDoc struct {
	OCIOProfileVersion string                 `yaml:"ocio_profile_version"`
	Description         string                `yaml:"description,omitempty"`
	SearchPath          string                `yaml:"search_path,omitempty"`
	WorkingDir          string                `yaml:"working_dir,omitempty"`
	Environment         map[string]string     `yaml:"environment,omitempty"`
	ActiveDisplays      []string              `yaml:"active_displays,omitempty"`
	ActiveViews         []string              `yaml:"active_views,omitempty"`
	LumaCoef            []float64             `yaml:"luma,omitempty"`
	StrictParsing       *bool                 `yaml:"strictparsing,omitempty"`
	InactiveColorSpaces []string              `yaml:"inactive_colorspaces,omitempty"`
	Roles               map[string]string     `yaml:"roles,omitempty"`
	Displays            map[string][]yamlView `yaml:"displays,omitempty"`
	Looks               []yamlLook            `yaml:"looks,omitempty"`
	ColorSpaces         []yamlColorSpace      `yaml:"colorspaces,omitempty"`
}

type yamlView struct {
	Name              string `yaml:"view"`
	ColorSpace        string `yaml:"colorspace,omitempty"`
	ViewTransform     string `yaml:"view_transform,omitempty"`
	DisplayColorSpace string `yaml:"display_colorspace,omitempty"`
	Looks             string `yaml:"looks,omitempty"`
	Description       string `yaml:"description,omitempty"`
}

type yamlLook struct {
	Name             string        `yaml:"name"`
	ProcessSpace     string        `yaml:"process_space,omitempty"`
	Description      string        `yaml:"description,omitempty"`
	Transform        transformNode `yaml:"transform,omitempty"`
	InverseTransform transformNode `yaml:"inverse_transform,omitempty"`
}

type yamlColorSpace struct {
	Name           string        `yaml:"name"`
	Aliases        []string      `yaml:"aliases,omitempty"`
	Family         string        `yaml:"family,omitempty"`
	Description    string        `yaml:"description,omitempty"`
	BitDepth       string        `yaml:"bitdepth,omitempty"`
	IsData         bool          `yaml:"isdata,omitempty"`
	Categories     []string      `yaml:"categories,omitempty"`
	ToReference    transformNode `yaml:"to_reference,omitempty"`
	FromReference  transformNode `yaml:"from_reference,omitempty"`
}

// transformNode wraps a transform.Transform so it can be nil, unlike the
// interface type itself under yaml.v3's decode-into-zero-value rules.
type transformNode struct {
	T transform.Transform
}

func (n transformNode) IsZero() bool { return n.T == nil }

// MarshalYAML emits the node's concrete type tagged `!<Kind>`, the format
// the OCIO config grammar uses to discriminate the Transform union on
// decode.
func (n transformNode) MarshalYAML() (any, error) {
	if n.T == nil {
		return nil, nil
	}
	node := &yaml.Node{}
	if err := node.Encode(n.T); err != nil {
		return nil, err
	}
	node.Tag = "!<" + n.T.TransformKind() + ">"
	return node, nil
}

// UnmarshalYAML reads the `!<Kind>` tag and decodes into the matching
// concrete struct, or recurses into GroupTransform's child list.
func (n *transformNode) UnmarshalYAML(node *yaml.Node) error {
	t, err := decodeTransform(node)
	if err != nil {
		return err
	}
	n.T = t
	return nil
}

func decodeTransform(node *yaml.Node) (transform.Transform, error) {
	kind := node.Tag
	kind = trimTag(kind)
	switch kind {
	case "MatrixTransform":
		var t transform.MatrixTransform
		err := node.Decode(&t)
		return t, err
	case "RangeTransform":
		var t transform.RangeTransform
		err := node.Decode(&t)
		return t, err
	case "ExponentTransform":
		var t transform.ExponentTransform
		err := node.Decode(&t)
		return t, err
	case "ExponentWithLinearTransform":
		var t transform.ExponentWithLinearTransform
		err := node.Decode(&t)
		return t, err
	case "LogTransform":
		var t transform.LogTransform
		err := node.Decode(&t)
		return t, err
	case "GammaTransform":
		var t transform.GammaTransform
		err := node.Decode(&t)
		return t, err
	case "Lut1DTransform":
		var t transform.Lut1DTransform
		err := node.Decode(&t)
		return t, err
	case "Lut3DTransform":
		var t transform.Lut3DTransform
		err := node.Decode(&t)
		return t, err
	case "CDLTransform":
		var t transform.CDLTransform
		err := node.Decode(&t)
		return t, err
	case "FixedFunctionTransform":
		var t transform.FixedFunctionTransform
		err := node.Decode(&t)
		return t, err
	case "ExposureContrastTransform":
		var t transform.ExposureContrastTransform
		err := node.Decode(&t)
		return t, err
	case "FileTransform":
		var t transform.FileTransform
		err := node.Decode(&t)
		return t, err
	case "ColorSpaceTransform":
		var t transform.ColorSpaceTransform
		err := node.Decode(&t)
		return t, err
	case "DisplayViewTransform":
		var t transform.DisplayViewTransform
		err := node.Decode(&t)
		return t, err
	case "LookTransform":
		var t transform.LookTransform
		err := node.Decode(&t)
		return t, err
	case "GroupTransform":
		return decodeGroupTransform(node)
	default:
		return nil, ocioerr.New(ocioerr.KindParseError, "ocioconfig.decodeTransform", fmt.Sprintf("unknown transform tag %q", node.Tag))
	}
}

func decodeGroupTransform(node *yaml.Node) (transform.Transform, error) {
	var raw struct {
		Children    []yaml.Node `yaml:"children"`
		Description string      `yaml:"description,omitempty"`
	}
	if err := node.Decode(&raw); err != nil {
		return nil, err
	}
	g := transform.GroupTransform{Description: raw.Description}
	for i := range raw.Children {
		child, err := decodeTransform(&raw.Children[i])
		if err != nil {
			return nil, err
		}
		g.Children = append(g.Children, child)
	}
	return g, nil
}

func trimTag(tag string) string {
	if len(tag) > 3 && tag[0] == '!' && tag[1] == '<' && tag[len(tag)-1] == '>' {
		return tag[2 : len(tag)-1]
	}
	return tag
}

// Decode parses a config file's YAML body into a fresh, unfrozen Config.
func Decode(data []byte) (*Config, error) {
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, ocioerr.Wrap(ocioerr.KindParseError, "ocioconfig.Decode", "invalid config yaml", err)
	}
	cfg := New()
	cfg.Description = doc.Description
	if doc.SearchPath != "" {
		cfg.SearchPath = []string{doc.SearchPath}
	}
	cfg.WorkingDir = doc.WorkingDir
	cfg.EnvironmentVars = doc.Environment
	cfg.ActiveDisplays = doc.ActiveDisplays
	cfg.ActiveViews = doc.ActiveViews
	if len(doc.LumaCoef) == 3 {
		cfg.LumaCoefficients = [3]float64{doc.LumaCoef[0], doc.LumaCoef[1], doc.LumaCoef[2]}
	}
	if doc.StrictParsing != nil {
		cfg.StrictParsing = *doc.StrictParsing
	}
	cfg.InactiveColorSpaces = doc.InactiveColorSpaces
	for role, target := range doc.Roles {
		if err := cfg.SetRole(role, target); err != nil {
			return nil, err
		}
	}
	for _, cs := range doc.ColorSpaces {
		err := cfg.AddColorSpace(&colorspace.ColorSpace{
			Name: cs.Name, Aliases: cs.Aliases, Family: cs.Family,
			Description: cs.Description, BitDepth: cs.BitDepth, IsData: cs.IsData,
			Categories: cs.Categories, ToReference: cs.ToReference.T, FromReference: cs.FromReference.T,
		})
		if err != nil {
			return nil, err
		}
	}
	for _, lk := range doc.Looks {
		err := cfg.AddLook(&colorspace.Look{
			Name: lk.Name, ProcessSpace: lk.ProcessSpace, Description: lk.Description,
			Transform: lk.Transform.T, InverseTransform: lk.InverseTransform.T,
		})
		if err != nil {
			return nil, err
		}
	}
	for name, views := range doc.Displays {
		d := &colorspace.Display{Name: name}
		for _, v := range views {
			d.Views = append(d.Views, colorspace.View{
				Name: v.Name, ColorSpace: v.ColorSpace, ViewTransform: v.ViewTransform,
				DisplayColorSpace: v.DisplayColorSpace, Looks: v.Looks, Description: v.Description,
			})
		}
		if err := cfg.AddDisplay(d); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
