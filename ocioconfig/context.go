// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ocioconfig holds the Config and Context (§2 item 10): the
// read-only views OpBuilder consults for name resolution, roles,
// displays/views, looks, and for substituting context variables and
// resolving file paths.
package ocioconfig

import (
	"os"
	"strings"
)

// Context is a cheap, copy-on-write view of the current environment/string
// variables, search paths, and working directory. Every Processor captures
// the Context used to build it, so later Context mutation never invalidates
// an existing Processor.
type Context struct {
	vars       map[string]string
	searchPath []string
	workingDir string
}

// NewContext builds an empty context seeded from the process environment
// for any variable later resolution falls through to.
func NewContext() *Context {
	return &Context{vars: map[string]string{}}
}

// Clone returns a copy-on-write snapshot: safe to mutate independently of
// the original.
func (c *Context) Clone() *Context {
	out := &Context{
		vars:       make(map[string]string, len(c.vars)),
		searchPath: append([]string(nil), c.searchPath...),
		workingDir: c.workingDir,
	}
	for k, v := range c.vars {
		out.vars[k] = v
	}
	return out
}

// SetVar declares or overrides a string variable available to substitution.
func (c *Context) SetVar(name, value string) { c.vars[name] = value }

// SetSearchPath replaces the ordered list of directories FileTransform
// searches for a named file, each entry itself substituted.
func (c *Context) SetSearchPath(dirs []string) { c.searchPath = dirs }

// SearchPath returns the configured search directories, each with context
// variables already substituted.
func (c *Context) SearchPath() []string {
	out := make([]string, len(c.searchPath))
	for i, d := range c.searchPath {
		out[i] = c.ResolveVars(d)
	}
	return out
}

// SetWorkingDir sets the directory relative paths resolve against.
func (c *Context) SetWorkingDir(dir string) { c.workingDir = dir }

// WorkingDir returns the working directory.
func (c *Context) WorkingDir() string { return c.workingDir }

// ResolveVars substitutes ${VAR}, $VAR, and %VAR% placeholders, trying the
// longest-named variable first at each position, then recursing until a
// fixed point (a substitution that introduces no further placeholder) or a
// bounded number of passes to guard against a self-referential cycle.
func (c *Context) ResolveVars(s string) string {
	for pass := 0; pass < 10; pass++ {
		next := c.resolveOnce(s)
		if next == s {
			return next
		}
		s = next
	}
	return s
}

func (c *Context) resolveOnce(s string) string {
	names := make([]string, 0, len(c.vars))
	for k := range c.vars {
		names = append(names, k)
	}
	// Longest name first so "FOO_BAR" resolves before "FOO" inside it.
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if len(names[j]) > len(names[i]) {
				names[i], names[j] = names[j], names[i]
			}
		}
	}
	replace := func(s string, pattern func(string) string) string {
		for _, n := range names {
			if v, ok := c.lookup(n); ok {
				s = strings.ReplaceAll(s, pattern(n), v)
			}
		}
		return s
	}
	s = replace(s, func(n string) string { return "${" + n + "}" })
	s = replace(s, func(n string) string { return "%" + n + "%" })
	// $VAR form last, so it never eats the $ of an already-substituted ${VAR}.
	s = replace(s, func(n string) string { return "$" + n })
	return s
}

func (c *Context) lookup(name string) (string, bool) {
	if v, ok := c.vars[name]; ok {
		return v, true
	}
	if v, ok := os.LookupEnv(name); ok {
		return v, true
	}
	return "", false
}
