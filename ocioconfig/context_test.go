// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ocioconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveVarsBraceAndBare(t *testing.T) {
	c := NewContext()
	c.SetVar("SHOW", "myshow")
	c.SetVar("SHOW_SEQ", "seq01")
	assert.Equal(t, "/shows/myshow/plates", c.ResolveVars("/shows/${SHOW}/plates"))
	assert.Equal(t, "/shows/seq01/plates", c.ResolveVars("/shows/$SHOW_SEQ/plates"))
	assert.Equal(t, "C:\\shows\\myshow", c.ResolveVars("C:\\shows\\%SHOW%"))
}

func TestResolveVarsFixedPoint(t *testing.T) {
	c := NewContext()
	c.SetVar("A", "${B}")
	c.SetVar("B", "final")
	assert.Equal(t, "final", c.ResolveVars("${A}"))
}

func TestCloneIsIndependent(t *testing.T) {
	c := NewContext()
	c.SetVar("X", "1")
	c2 := c.Clone()
	c2.SetVar("X", "2")
	assert.Equal(t, "1", c.ResolveVars("${X}"))
	assert.Equal(t, "2", c2.ResolveVars("${X}"))
}
