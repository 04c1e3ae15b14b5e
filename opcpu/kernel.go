// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opcpu binds one opdata.OpData to a stateless pixel kernel: the
// OpCPU layer of the design spec (§2 item 2). Kernels are safe to call from
// many threads because they close over nothing but the (read-only) OpData
// they were built from.
package opcpu

import (
	"ocio.dev/ocio/ocioerr"
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
)

// Kernel evaluates one op, in the direction it was built for, on a single
// RGBA value through ApplyRGBA.
type Kernel interface {
	ApplyRGBA(v ocmath.Vec4) ocmath.Vec4
}

// PlanarKernel is implemented by kernels that can also process decoupled
// per-channel slices in one call. cpuproc's ApplyPlanar takes this path
// when every kernel in the chain implements it and the boundary is F32;
// otherwise it loops over pixels with ApplyRGBA.
type PlanarKernel interface {
	Kernel
	ApplyPlanar(r, g, b, a []float32)
}

// New builds the CPU kernel for one OpData in the given direction.
func New(data opdata.OpData, dir optypes.Direction) (Kernel, error) {
	switch d := data.(type) {
	case *opdata.Matrix:
		return newMatrixKernel(d, dir)
	case *opdata.Range:
		return newRangeKernel(d, dir)
	case *opdata.Exponent:
		return newExponentKernel(d, dir)
	case *opdata.ExponentLinear:
		return newExponentLinearKernel(d, dir)
	case *opdata.Log:
		return newLogKernel(d, dir)
	case *opdata.Gamma:
		return newGammaKernel(d, dir)
	case *opdata.Lut1D:
		return newLut1DKernel(d, dir)
	case *opdata.Lut3D:
		return newLut3DKernel(d, dir)
	case *opdata.CDL:
		return newCDLKernel(d, dir)
	case *opdata.FixedFunction:
		return newFixedFunctionKernel(d, dir)
	case *opdata.ExposureContrast:
		return newExposureContrastKernel(d, dir)
	case *opdata.NoOp:
		return identityKernel{}, nil
	default:
		return nil, ocioerr.New(ocioerr.KindInternal, "opcpu.New", "unsupported op data kind")
	}
}

type identityKernel struct{}

func (identityKernel) ApplyRGBA(v ocmath.Vec4) ocmath.Vec4 { return v }
