// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package op

import "strings"

// List is an ordered sequence of Ops plus the top-level metadata the
// optimizer and processor attach to a built chain: the unit the optimizer
// rewrites (§2 item 5).
type List struct {
	Ops         []*Op
	Description string
	Meta        Metadata
}

// NewList builds an empty List.
func NewList() *List { return &List{} }

// Append adds ops to the end of the list.
func (l *List) Append(ops ...*Op) { l.Ops = append(l.Ops, ops...) }

// Len returns the number of ops.
func (l *List) Len() int { return len(l.Ops) }

// Clone deep-copies the list and every op in it.
func (l *List) Clone() *List {
	out := &List{Description: l.Description, Meta: l.Meta.Clone(), Ops: make([]*Op, len(l.Ops))}
	for i, o := range l.Ops {
		out.Ops[i] = o.Clone()
	}
	return out
}

// IsIdentity reports whether every op in the list is an identity, i.e. the
// list as a whole is a pass-through.
func (l *List) IsIdentity() bool {
	for _, o := range l.Ops {
		if !o.IsIdentity() {
			return false
		}
	}
	return true
}

// Inverse returns a new list that evaluates the original in reverse: the
// ops in reverse order, each direction flipped.
func (l *List) Inverse() *List {
	out := &List{Description: l.Description, Meta: l.Meta.Clone(), Ops: make([]*Op, len(l.Ops))}
	n := len(l.Ops)
	for i, o := range l.Ops {
		out.Ops[n-1-i] = o.Inverse()
	}
	return out
}

// CacheID returns a stable identifier for the list's content: the ordered
// concatenation of each op's direction tag and CacheID, the Transform-tree
// canonical string component of the processor cache key (§4.6).
func (l *List) CacheID() string {
	var b strings.Builder
	for _, o := range l.Ops {
		b.WriteString(o.Dir.String())
		b.WriteByte(':')
		b.WriteString(o.Data.CacheID())
		b.WriteByte('|')
	}
	return b.String()
}
