// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cdl reads ASC Color Decision List XML: a single `.cc`
// `<ColorCorrection>` root element, or a `.ccc` `<ColorDecisionList>`
// collection of them looked up by `id`.
package cdl

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"ocio.dev/ocio/ocioerr"
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/op"
	"ocio.dev/ocio/opdata"
)

// sopNode and satNode mirror the small, fixed XML shape of a
// `<ColorCorrection>` element; encoding/xml's struct-tag decoding is a
// clean fit here since (unlike CLF) the node set is small and fixed.
type sopNode struct {
	Slope  string `xml:"Slope"`
	Offset string `xml:"Offset"`
	Power  string `xml:"Power"`
}

type satNode struct {
	Saturation string `xml:"Saturation"`
}

type colorCorrection struct {
	XMLName xml.Name `xml:"ColorCorrection"`
	ID      string   `xml:"id,attr"`
	SOPNode sopNode  `xml:"SOPNode"`
	SatNode satNode  `xml:"SatNode"`
}

type ccc struct {
	XMLName          xml.Name          `xml:"ColorDecisionList"`
	ColorCorrections []colorCorrection `xml:"ColorDecision>ColorCorrection"`
	Bare             []colorCorrection `xml:"ColorCorrection"`
}

// LoadCC parses a single `.cc` file into a one-op CDL list.
func LoadCC(r io.Reader) (*op.List, error) {
	var doc colorCorrection
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, ocioerr.Wrap(ocioerr.KindParseError, "cdl.LoadCC", "reading XML", err)
	}
	data, err := buildCDL(doc.SOPNode, doc.SatNode)
	if err != nil {
		return nil, err
	}
	list := op.NewList()
	list.Append(op.New(data))
	return list, nil
}

// LoadCCC parses a `.ccc` collection, returning the entry whose `id`
// attribute matches id. An empty id selects the first entry; an id that
// matches nothing is read as a positional index when it is all digits and
// in range, and is otherwise an error, per the original implementation's
// permissive lookup (SPEC_FULL §5).
func LoadCCC(r io.Reader, id string) (*op.List, error) {
	var doc ccc
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, ocioerr.Wrap(ocioerr.KindParseError, "cdl.LoadCCC", "reading XML", err)
	}
	all := doc.ColorCorrections
	if len(all) == 0 {
		all = doc.Bare
	}
	if len(all) == 0 {
		return nil, ocioerr.New(ocioerr.KindParseError, "cdl.LoadCCC", "no ColorCorrection entries found")
	}
	entry, err := pickByID(all, id)
	if err != nil {
		return nil, err
	}
	data, err := buildCDL(entry.SOPNode, entry.SatNode)
	if err != nil {
		return nil, err
	}
	list := op.NewList()
	list.Append(op.New(data))
	return list, nil
}

func pickByID(all []colorCorrection, id string) (*colorCorrection, error) {
	if id == "" {
		return &all[0], nil
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	if idx, ok := positionalIndex(id); ok && idx >= 0 && idx < len(all) {
		return &all[idx], nil
	}
	return nil, ocioerr.New(ocioerr.KindMissingFile, "cdl.LoadCCC", "no entry with cccid "+id)
}

func positionalIndex(s string) (int, bool) {
	n := 0
	if len(s) == 0 {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

func buildCDL(sop sopNode, sat satNode) (*opdata.CDL, error) {
	slope, err := parseVec3(sop.Slope, ocmath.NewVec4(1, 1, 1, 0))
	if err != nil {
		return nil, err
	}
	offset, err := parseVec3(sop.Offset, ocmath.NewVec4(0, 0, 0, 0))
	if err != nil {
		return nil, err
	}
	power, err := parseVec3(sop.Power, ocmath.NewVec4(1, 1, 1, 0))
	if err != nil {
		return nil, err
	}
	saturation := float32(1)
	if sat.Saturation != "" {
		saturation, err = parseOneFloat(sat.Saturation)
		if err != nil {
			return nil, err
		}
	}
	return &opdata.CDL{
		Style:      opdata.CDLv12Fwd,
		Slope:      slope,
		Offset:     offset,
		Power:      power,
		Saturation: saturation,
		Luma:       ocmath.NewVec4(0.2126, 0.7152, 0.0722, 0),
	}, nil
}

// parseVec3 parses a "r g b" whitespace-separated triple, returning
// dflt unchanged when s is empty (an absent SOPNode child means identity
// for that component).
func parseVec3(s string, dflt ocmath.Vec4) (ocmath.Vec4, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return dflt, nil
	}
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return dflt, ocioerr.New(ocioerr.KindParseError, "cdl.parseVec3", "expected 3 floats, got "+s)
	}
	var out ocmath.Vec4
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return dflt, ocioerr.Wrap(ocioerr.KindParseError, "cdl.parseVec3", "malformed float "+f, err)
		}
		out[i] = float32(v)
	}
	return out, nil
}

func parseOneFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, ocioerr.Wrap(ocioerr.KindParseError, "cdl.parseOneFloat", "malformed float "+s, err)
	}
	return float32(v), nil
}
