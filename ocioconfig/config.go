// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ocioconfig

import (
	"fmt"
	"sync"

	"ocio.dev/ocio/colorspace"
	"ocio.dev/ocio/ocioerr"
)

// Config is the immutable-after-build container of a color management
// setup: color spaces, roles, displays/views, looks, and the parsing/search
// settings OpBuilder and the file-format loaders need. The first call that
// produces a Processor freezes it. After that, AddColorSpace and the other
// mutator methods return an error and leave the config unchanged; they do
// not derive a new config. Clone returns an unfrozen copy, and processors
// already produced remain valid.
type Config struct {
	MajorVersion, MinorVersion int
	FamilySeparator            rune
	Description                string
	SearchPath                 []string
	WorkingDir                 string
	EnvironmentVars            map[string]string
	ActiveDisplays             []string
	ActiveViews                []string
	LumaCoefficients           [3]float64
	StrictParsing              bool
	InactiveColorSpaces        []string

	colorSpaces    map[string]*colorspace.ColorSpace
	roles          map[string]string
	looks          map[string]*colorspace.Look
	viewTransforms map[string]*colorspace.ViewTransform
	displays       map[string]*colorspace.Display
	displayOrder   []string
	fileRules      []colorspace.FileRule
	viewingRules   []colorspace.ViewingRule

	mu     sync.Mutex
	frozen bool
}

// New returns an empty Config with OCIO's conventional defaults: family
// separator "/", luma coefficients the Rec.709 primaries imply.
func New() *Config {
	return &Config{
		MajorVersion:     2,
		MinorVersion:     0,
		FamilySeparator:  '/',
		LumaCoefficients: [3]float64{0.2126, 0.7152, 0.0722},
		colorSpaces:      map[string]*colorspace.ColorSpace{},
		roles:            map[string]string{},
		looks:            map[string]*colorspace.Look{},
		viewTransforms:   map[string]*colorspace.ViewTransform{},
		displays:         map[string]*colorspace.Display{},
	}
}

// Freeze marks the config as built; AddColorSpace and friends return an
// error on a frozen config instead of mutating it, so callers who want to
// change a processed config must clone it first.
func (c *Config) Freeze() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = true
}

func (c *Config) checkMutable(op string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.frozen {
		return ocioerr.New(ocioerr.KindInvalidParameters, op, "config is frozen; clone before mutating")
	}
	return nil
}

// Clone returns a deep, unfrozen copy.
func (c *Config) Clone() *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := New()
	*out = Config{
		MajorVersion: c.MajorVersion, MinorVersion: c.MinorVersion,
		FamilySeparator: c.FamilySeparator, Description: c.Description,
		SearchPath: append([]string(nil), c.SearchPath...), WorkingDir: c.WorkingDir,
		EnvironmentVars:     cloneStrMap(c.EnvironmentVars),
		ActiveDisplays:      append([]string(nil), c.ActiveDisplays...),
		ActiveViews:         append([]string(nil), c.ActiveViews...),
		LumaCoefficients:    c.LumaCoefficients,
		StrictParsing:       c.StrictParsing,
		InactiveColorSpaces: append([]string(nil), c.InactiveColorSpaces...),
		colorSpaces:         map[string]*colorspace.ColorSpace{},
		roles:               cloneStrMap(c.roles),
		looks:               map[string]*colorspace.Look{},
		viewTransforms:      map[string]*colorspace.ViewTransform{},
		displays:            map[string]*colorspace.Display{},
		displayOrder:        append([]string(nil), c.displayOrder...),
		fileRules:           append([]colorspace.FileRule(nil), c.fileRules...),
		viewingRules:        append([]colorspace.ViewingRule(nil), c.viewingRules...),
	}
	for k, v := range c.colorSpaces {
		cp := *v
		out.colorSpaces[k] = &cp
	}
	for k, v := range c.looks {
		lk := *v
		out.looks[k] = &lk
	}
	for k, v := range c.viewTransforms {
		vt := *v
		out.viewTransforms[k] = &vt
	}
	for k, v := range c.displays {
		d := *v
		out.displays[k] = &d
	}
	return out
}

func cloneStrMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// AddColorSpace registers a color space by name, along with its aliases.
func (c *Config) AddColorSpace(cs *colorspace.ColorSpace) error {
	if err := c.checkMutable("Config.AddColorSpace"); err != nil {
		return err
	}
	c.colorSpaces[cs.Name] = cs
	for _, a := range cs.Aliases {
		c.colorSpaces[a] = cs
	}
	return nil
}

// ColorSpace resolves a name or alias to its ColorSpace, or a role name to
// the ColorSpace the role points at.
func (c *Config) ColorSpace(name string) (*colorspace.ColorSpace, error) {
	if cs, ok := c.colorSpaces[name]; ok {
		return cs, nil
	}
	if target, ok := c.roles[name]; ok {
		if cs, ok := c.colorSpaces[target]; ok {
			return cs, nil
		}
	}
	return nil, ocioerr.New(ocioerr.KindUnknownName, "Config.ColorSpace", fmt.Sprintf("color space %q not found", name))
}

// SetRole points a logical role name at a color space name.
func (c *Config) SetRole(role, colorSpaceName string) error {
	if err := c.checkMutable("Config.SetRole"); err != nil {
		return err
	}
	c.roles[role] = colorSpaceName
	return nil
}

// Role resolves a role to its target color space name.
func (c *Config) Role(role string) (string, bool) {
	v, ok := c.roles[role]
	return v, ok
}

// AddLook registers a named look.
func (c *Config) AddLook(l *colorspace.Look) error {
	if err := c.checkMutable("Config.AddLook"); err != nil {
		return err
	}
	c.looks[l.Name] = l
	return nil
}

// Look resolves a look by name.
func (c *Config) Look(name string) (*colorspace.Look, error) {
	if l, ok := c.looks[name]; ok {
		return l, nil
	}
	return nil, ocioerr.New(ocioerr.KindUnknownName, "Config.Look", fmt.Sprintf("look %q not found", name))
}

// AddViewTransform registers a named view transform.
func (c *Config) AddViewTransform(vt *colorspace.ViewTransform) error {
	if err := c.checkMutable("Config.AddViewTransform"); err != nil {
		return err
	}
	c.viewTransforms[vt.Name] = vt
	return nil
}

// ViewTransform resolves a view transform by name.
func (c *Config) ViewTransform(name string) (*colorspace.ViewTransform, error) {
	if vt, ok := c.viewTransforms[name]; ok {
		return vt, nil
	}
	return nil, ocioerr.New(ocioerr.KindUnknownName, "Config.ViewTransform", fmt.Sprintf("view transform %q not found", name))
}

// AddDisplay registers a named display and its views, in insertion order
// (the order display listing APIs report when ActiveDisplays is empty).
func (c *Config) AddDisplay(d *colorspace.Display) error {
	if err := c.checkMutable("Config.AddDisplay"); err != nil {
		return err
	}
	if _, exists := c.displays[d.Name]; !exists {
		c.displayOrder = append(c.displayOrder, d.Name)
	}
	c.displays[d.Name] = d
	return nil
}

// Display resolves a display by name.
func (c *Config) Display(name string) (*colorspace.Display, error) {
	if d, ok := c.displays[name]; ok {
		return d, nil
	}
	return nil, ocioerr.New(ocioerr.KindUnknownName, "Config.Display", fmt.Sprintf("display %q not found", name))
}

// Displays returns the effective display listing: ActiveDisplays if set,
// else insertion order.
func (c *Config) Displays() []string {
	if len(c.ActiveDisplays) > 0 {
		return c.ActiveDisplays
	}
	return c.displayOrder
}

// View resolves a named view on a named display.
func (c *Config) View(display, view string) (*colorspace.View, error) {
	d, err := c.Display(display)
	if err != nil {
		return nil, err
	}
	for i := range d.Views {
		if d.Views[i].Name == view {
			return &d.Views[i], nil
		}
	}
	return nil, ocioerr.New(ocioerr.KindUnknownName, "Config.View", fmt.Sprintf("view %q not found on display %q", view, display))
}

// SetFileRules replaces the ordered file-to-colorspace inference rules.
func (c *Config) SetFileRules(rules []colorspace.FileRule) error {
	if err := c.checkMutable("Config.SetFileRules"); err != nil {
		return err
	}
	c.fileRules = rules
	return nil
}

// FileRules returns the ordered file rules.
func (c *Config) FileRules() []colorspace.FileRule { return c.fileRules }

// SetViewingRules replaces the viewing rules.
func (c *Config) SetViewingRules(rules []colorspace.ViewingRule) error {
	if err := c.checkMutable("Config.SetViewingRules"); err != nil {
		return err
	}
	c.viewingRules = rules
	return nil
}

// ViewingRules returns the viewing rules.
func (c *Config) ViewingRules() []colorspace.ViewingRule { return c.viewingRules }

// IsInactive reports whether a color space name is listed in
// InactiveColorSpaces, so a host can omit it from pickers while OpBuilder
// still resolves references to it.
func (c *Config) IsInactive(name string) bool {
	for _, n := range c.InactiveColorSpaces {
		if n == name {
			return true
		}
	}
	return false
}

// NewContext builds a Context seeded from the config's declared
// environment variables, search path, and working directory.
func (c *Config) NewContext() *Context {
	ctx := NewContext()
	for k, v := range c.EnvironmentVars {
		ctx.SetVar(k, v)
	}
	ctx.SetSearchPath(c.SearchPath)
	ctx.SetWorkingDir(c.WorkingDir)
	return ctx
}
