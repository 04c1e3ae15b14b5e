// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opgpu binds one opdata.OpData to a GPU shader emitter: the OpGpu
// layer of the design spec (§2 item 3, §4.5). Each Emitter appends
// declarations, helpers, texture/uniform registrations, and a body
// fragment to a shaderdesc.Desc.
package opgpu

import (
	"fmt"

	"ocio.dev/ocio/ocioerr"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
	"ocio.dev/ocio/shaderdesc"
)

// Emitter appends one op's shader contribution to d, reading and writing
// the pixel variable d.PixelName.
type Emitter interface {
	Emit(d *shaderdesc.Desc, dir optypes.Direction) error
}

// New builds the GPU emitter for one OpData.
func New(data opdata.OpData) (Emitter, error) {
	switch d := data.(type) {
	case *opdata.Matrix:
		return matrixEmitter{d: d}, nil
	case *opdata.Range:
		return rangeEmitter{d: d}, nil
	case *opdata.Exponent:
		return exponentEmitter{d: d}, nil
	case *opdata.ExponentLinear:
		return exponentLinearEmitter{d: d}, nil
	case *opdata.Log:
		return logEmitter{d: d}, nil
	case *opdata.Gamma:
		return gammaEmitter{d: d}, nil
	case *opdata.Lut1D:
		return lut1DEmitter{d: d}, nil
	case *opdata.Lut3D:
		return lut3DEmitter{d: d}, nil
	case *opdata.CDL:
		return cdlEmitter{d: d}, nil
	case *opdata.FixedFunction:
		return fixedFunctionEmitter{d: d}, nil
	case *opdata.ExposureContrast:
		return exposureContrastEmitter{d: d}, nil
	case *opdata.NoOp:
		return noOpEmitter{}, nil
	default:
		return nil, ocioerr.New(ocioerr.KindInternal, "opgpu.New", "unsupported op data kind")
	}
}

type noOpEmitter struct{}

func (noOpEmitter) Emit(d *shaderdesc.Desc, dir optypes.Direction) error { return nil }

func pixel(d *shaderdesc.Desc) string { return d.PixelName }

func bodyf(d *shaderdesc.Desc, format string, args ...any) {
	d.AddBody(fmt.Sprintf(format, args...))
}

func fmtHelper(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
