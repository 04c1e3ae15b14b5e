// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package op

// Attribute is a single ordered key/value pair inside a Metadata blob.
type Attribute struct {
	Key   string
	Value string
}

// Metadata is the small descriptive bag OCIO calls FormatMetadata: a name,
// an id, a free-text description, and an ordered set of further
// attributes and nested children. It is attached at the top level of a
// List (mirroring a CLF/CTF `<ProcessList>`'s id/name/`<Description>`) and
// optionally on a single Op (a CLF/CTF process node's own `<Description>`/
// vendor attributes). Kept as an ordered slice rather than a map so
// round-tripping through CLF/CTF reproduces the same attribute order.
type Metadata struct {
	Name        string
	ID          string
	Description string
	Attributes  []Attribute
	Children    []Metadata
}

// IsZero reports whether m carries no information at all, so callers can
// skip emitting an empty metadata block.
func (m Metadata) IsZero() bool {
	return m.Name == "" && m.ID == "" && m.Description == "" && len(m.Attributes) == 0 && len(m.Children) == 0
}

// Get returns the value of the first attribute with the given key.
func (m Metadata) Get(key string) (string, bool) {
	for _, a := range m.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Set appends or updates an attribute, preserving first-seen order.
func (m *Metadata) Set(key, value string) {
	for i := range m.Attributes {
		if m.Attributes[i].Key == key {
			m.Attributes[i].Value = value
			return
		}
	}
	m.Attributes = append(m.Attributes, Attribute{Key: key, Value: value})
}

// Clone deep-copies the metadata blob.
func (m Metadata) Clone() Metadata {
	out := m
	out.Attributes = append([]Attribute(nil), m.Attributes...)
	out.Children = make([]Metadata, len(m.Children))
	for i, c := range m.Children {
		out.Children[i] = c.Clone()
	}
	return out
}
