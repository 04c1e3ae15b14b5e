// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lut reads the simple ASCII LUT formats named in §6.3: `.spi1d`,
// `.spi3d`, `.spimtx`, and the Iridas/Resolve `.cube` dialect including its
// combined 1D-shaper-plus-3D form. Parsers tolerate a leading BOM, CRLF or
// LF line endings, and trailing blank lines, but reject malformed floats.
package lut

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/ocioerr"
	"ocio.dev/ocio/op"
	"ocio.dev/ocio/opdata"
)

const bom = "﻿"

// lines splits r into trimmed, non-empty, BOM/CRLF-stripped lines.
func lines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var out []string
	first := true
	for sc.Scan() {
		ln := sc.Text()
		ln = strings.TrimRight(ln, "\r")
		if first {
			ln = strings.TrimPrefix(ln, bom)
			first = false
		}
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		out = append(out, ln)
	}
	if err := sc.Err(); err != nil {
		return nil, ocioerr.Wrap(ocioerr.KindParseError, "lut.lines", "reading file", err)
	}
	return out, nil
}

func parseFloat(s, op string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, ocioerr.Wrap(ocioerr.KindParseError, op, "malformed float "+s, err)
	}
	return float32(v), nil
}

func parseFloats(fields []string, op string) ([]float32, error) {
	out := make([]float32, len(fields))
	for i, f := range fields {
		v, err := parseFloat(f, op)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// LoadSPI1D parses a `.spi1d` file: a `Version`/`From`/`Length`/`Components`
// header followed by `{` ... `}`-bracketed rows of per-channel samples.
func LoadSPI1D(r io.Reader) (*op.List, error) {
	ls, err := lines(r)
	if err != nil {
		return nil, err
	}
	var from0, from1 float32 = 0, 1
	length, components := -1, 3
	i := 0
	for ; i < len(ls); i++ {
		fields := strings.Fields(ls[i])
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "Version":
			continue
		case "From":
			if len(fields) >= 3 {
				from0, err = parseFloat(fields[1], "lut.LoadSPI1D")
				if err != nil {
					return nil, err
				}
				from1, err = parseFloat(fields[2], "lut.LoadSPI1D")
				if err != nil {
					return nil, err
				}
			}
		case "Length":
			if len(fields) >= 2 {
				length, _ = strconv.Atoi(fields[1])
			}
		case "Components":
			if len(fields) >= 2 {
				components, _ = strconv.Atoi(fields[1])
			}
		case "{":
			i++
			goto data
		}
	}
data:
	if length < 0 {
		return nil, ocioerr.New(ocioerr.KindParseError, "lut.LoadSPI1D", "missing Length header")
	}
	l := &opdata.Lut1D{DomainMin: from0, DomainMax: from1, R: make([]float32, length), G: make([]float32, length), B: make([]float32, length)}
	for n := 0; n < length && i < len(ls); n, i = n+1, i+1 {
		if ls[i] == "}" {
			break
		}
		fields := strings.Fields(ls[i])
		vals, err := parseFloats(fields, "lut.LoadSPI1D")
		if err != nil {
			return nil, err
		}
		if len(vals) == 0 {
			return nil, ocioerr.New(ocioerr.KindParseError, "lut.LoadSPI1D", "empty data row")
		}
		r, g, b := vals[0], vals[0], vals[0]
		if components >= 3 && len(vals) >= 3 {
			r, g, b = vals[0], vals[1], vals[2]
		}
		l.R[n], l.G[n], l.B[n] = r, g, b
	}
	list := op.NewList()
	list.Append(op.New(l))
	return list, nil
}

// LoadSPI3D parses a `.spi3d` file: a header giving the cube edge length
// (as the last field of the first line with at least three fields,
// which may be the `SPILUT` line itself) followed by `edge^3` lines of
// `r g b outR outG outB`, where the `r g b` grid indices decide which
// cube cell the output triple is stored in.
func LoadSPI3D(r io.Reader) (*op.List, error) {
	ls, err := lines(r)
	if err != nil {
		return nil, err
	}
	i := 0
	for ; i < len(ls); i++ {
		if strings.HasPrefix(ls[i], "SPILUT") && len(strings.Fields(ls[i])) < 3 {
			continue
		}
		break
	}
	if i >= len(ls) {
		return nil, ocioerr.New(ocioerr.KindParseError, "lut.LoadSPI3D", "missing size header")
	}
	fields := strings.Fields(ls[i])
	if len(fields) < 3 {
		return nil, ocioerr.New(ocioerr.KindParseError, "lut.LoadSPI3D", "malformed size header")
	}
	edge, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return nil, ocioerr.Wrap(ocioerr.KindParseError, "lut.LoadSPI3D", "malformed edge length", err)
	}
	i++
	l := &opdata.Lut3D{Edge: edge, Table: make([]float32, edge*edge*edge*3)}
	for ; i < len(ls); i++ {
		fields := strings.Fields(ls[i])
		if len(fields) < 6 {
			continue
		}
		vals, err := parseFloats(fields, "lut.LoadSPI3D")
		if err != nil {
			return nil, err
		}
		ri, gi, bi := int(vals[0]), int(vals[1]), int(vals[2])
		if ri < 0 || ri >= edge || gi < 0 || gi >= edge || bi < 0 || bi >= edge {
			return nil, ocioerr.New(ocioerr.KindParseError, "lut.LoadSPI3D", "grid index out of range")
		}
		idx := ((ri*edge+gi)*edge + bi) * 3
		l.Table[idx], l.Table[idx+1], l.Table[idx+2] = vals[3], vals[4], vals[5]
	}
	list := op.NewList()
	list.Append(op.New(l))
	return list, nil
}

// LoadSPIMtx parses a `.spimtx` file: a single line of 12 floats, a 3x4
// row-major matrix whose last column is an offset scaled by 1/65535.
func LoadSPIMtx(r io.Reader) (*op.List, error) {
	ls, err := lines(r)
	if err != nil {
		return nil, err
	}
	if len(ls) == 0 {
		return nil, ocioerr.New(ocioerr.KindParseError, "lut.LoadSPIMtx", "empty file")
	}
	fields := strings.Fields(ls[0])
	if len(fields) != 12 {
		return nil, ocioerr.New(ocioerr.KindParseError, "lut.LoadSPIMtx", "expected 12 floats")
	}
	vals, err := parseFloats(fields, "lut.LoadSPIMtx")
	if err != nil {
		return nil, err
	}
	m := ocmath.Identity4()
	var offset ocmath.Vec4
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m[row*4+col] = vals[row*4+col]
		}
		offset[row] = vals[row*4+3] / 65535
	}
	list := op.NewList()
	list.Append(op.New(opdata.NewMatrix(m, offset)))
	return list, nil
}

// LoadCube parses a `.cube` file (Iridas/Resolve dialect). When both
// `LUT_1D_SIZE` and `LUT_3D_SIZE` headers are present, it returns the
// combined shaper-plus-3D form: `[shaperLUT1D, cube3D]` (SPEC_FULL §5).
func LoadCube(r io.Reader) (*op.List, error) {
	ls, err := lines(r)
	if err != nil {
		return nil, err
	}
	size1D, size3D := -1, -1
	domainMin, domainMax := float32(0), float32(1)
	i := 0
	for ; i < len(ls); i++ {
		fields := strings.Fields(ls[i])
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "TITLE":
			continue
		case "LUT_1D_SIZE":
			size1D, _ = strconv.Atoi(fields[1])
		case "LUT_3D_SIZE":
			size3D, _ = strconv.Atoi(fields[1])
		case "DOMAIN_MIN":
			domainMin, err = parseFloat(fields[1], "lut.LoadCube")
			if err != nil {
				return nil, err
			}
		case "DOMAIN_MAX":
			domainMax, err = parseFloat(fields[len(fields)-1], "lut.LoadCube")
			if err != nil {
				return nil, err
			}
		default:
			goto data
		}
	}
data:
	if size1D < 0 && size3D < 0 {
		return nil, ocioerr.New(ocioerr.KindParseError, "lut.LoadCube", "missing LUT_1D_SIZE/LUT_3D_SIZE header")
	}
	var shaper *opdata.Lut1D
	if size1D > 0 {
		shaper = &opdata.Lut1D{DomainMin: domainMin, DomainMax: domainMax, R: make([]float32, size1D), G: make([]float32, size1D), B: make([]float32, size1D)}
		for n := 0; n < size1D && i < len(ls); n, i = n+1, i+1 {
			vals, err := parseFloats(strings.Fields(ls[i]), "lut.LoadCube")
			if err != nil {
				return nil, err
			}
			if len(vals) < 3 {
				return nil, ocioerr.New(ocioerr.KindParseError, "lut.LoadCube", "expected 3 floats per row")
			}
			shaper.R[n], shaper.G[n], shaper.B[n] = vals[0], vals[1], vals[2]
		}
	}
	var cube *opdata.Lut3D
	if size3D > 0 {
		cube = &opdata.Lut3D{Edge: size3D, Table: make([]float32, size3D*size3D*size3D*3)}
		n := 0
		for ; i < len(ls) && n < size3D*size3D*size3D; i, n = i+1, n+1 {
			vals, err := parseFloats(strings.Fields(ls[i]), "lut.LoadCube")
			if err != nil {
				return nil, err
			}
			if len(vals) < 3 {
				return nil, ocioerr.New(ocioerr.KindParseError, "lut.LoadCube", "expected 3 floats per row")
			}
			// .cube enumerates the blue index fastest, matching our
			// (r*edge+g)*edge+b row-major layout once r is the outer loop.
			b := n % size3D
			g := (n / size3D) % size3D
			r := n / (size3D * size3D)
			idx := ((r*size3D+g)*size3D + b) * 3
			cube.Table[idx], cube.Table[idx+1], cube.Table[idx+2] = vals[0], vals[1], vals[2]
		}
	}
	list := op.NewList()
	if shaper != nil {
		list.Append(op.New(shaper))
	}
	if cube != nil {
		list.Append(op.New(cube))
	}
	return list, nil
}
