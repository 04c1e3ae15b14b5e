// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpuproc implements the CPUProcessor: an optimized op.List bound
// to input/output bit depths, applied to single pixels or whole images in
// packed or planar layout (§4.4).
package cpuproc

import (
	"ocio.dev/ocio/ocioerr"
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/op"
	"ocio.dev/ocio/opcpu"
	"ocio.dev/ocio/optypes"
)

// Processor evaluates an optimized op.List against in-memory pixels. Its
// kernels are built once at New and are safe to call concurrently from
// many goroutines, since none of them hold mutable state of their own
// (dynamic properties aside, which a caller mutates explicitly through a
// DynamicHandle and is responsible for synchronizing itself, per §5).
type Processor struct {
	kernels  []opcpu.Kernel
	inDepth  optypes.BitDepth
	outDepth optypes.BitDepth
}

// New builds a Processor from an already-optimized list, in the direction
// each op's own Dir already encodes (pass list.Inverse() for the reverse
// direction, the same convention opbuild uses for FileTransform). It reads
// the first op's input bit depth and the last op's output bit depth as
// the boundary encodings; an empty list is the identity at F32/F32.
func New(list *op.List) (*Processor, error) {
	kernels := make([]opcpu.Kernel, 0, len(list.Ops))
	for _, o := range list.Ops {
		k, err := o.CPU()
		if err != nil {
			return nil, ocioerr.Wrap(ocioerr.KindInternal, "cpuproc.New", "building kernel", err)
		}
		kernels = append(kernels, k)
	}
	in, out := optypes.F32, optypes.F32
	if len(list.Ops) > 0 {
		in = list.Ops[0].Data.InBitDepth()
		out = list.Ops[len(list.Ops)-1].Data.OutBitDepth()
	}
	return &Processor{kernels: kernels, inDepth: in, outDepth: out}, nil
}

// allPlanar reports whether every kernel in the chain supports the
// whole-slice PlanarKernel fast path, letting ApplyPlanar skip the
// per-pixel Vec4 round trip when the boundary is already F32.
func (p *Processor) allPlanar() bool {
	for _, k := range p.kernels {
		if _, ok := k.(opcpu.PlanarKernel); !ok {
			return false
		}
	}
	return true
}

// InputBitDepth and OutputBitDepth report the native encodings apply's
// packed/planar entrypoints expect at the processor's boundary.
func (p *Processor) InputBitDepth() optypes.BitDepth  { return p.inDepth }
func (p *Processor) OutputBitDepth() optypes.BitDepth { return p.outDepth }

// ApplyRGBA runs one normalized RGBA pixel through every kernel in order.
func (p *Processor) ApplyRGBA(v ocmath.Vec4) ocmath.Vec4 {
	for _, k := range p.kernels {
		v = k.ApplyRGBA(v)
	}
	return v
}

// ApplyRGB runs one normalized RGB triple through every kernel, treating
// alpha as opaque (1) and discarding whatever the chain does to it.
func (p *Processor) ApplyRGB(r, g, b float32) (float32, float32, float32) {
	v := p.ApplyRGBA(ocmath.NewVec4(r, g, b, 1))
	return v[0], v[1], v[2]
}

// DynamicHandles walks the kernel chain looking for dynamic-property
// exposure and returns the three handles any exposure/contrast/gamma
// kernel in the chain makes available; unbound handles are no-ops.
type DynamicHandles struct {
	Exposure opcpu.DynamicHandle
	Contrast opcpu.DynamicHandle
	Gamma    opcpu.DynamicHandle
}

type exposureHandleSource interface {
	ExposureHandle() opcpu.DynamicHandle
}
type contrastHandleSource interface {
	ContrastHandle() opcpu.DynamicHandle
}
type gammaHandleSource interface {
	GammaHandle() opcpu.DynamicHandle
}

// Dynamic returns the dynamic-property handles exposed by this
// processor's kernel chain, per §5's dynamic property synchronization
// contract. A kernel not implementing the corresponding source interface
// contributes a zero (no-op) handle.
func (p *Processor) Dynamic() DynamicHandles {
	var h DynamicHandles
	for _, k := range p.kernels {
		if s, ok := k.(exposureHandleSource); ok {
			if v := s.ExposureHandle(); v != (opcpu.DynamicHandle{}) {
				h.Exposure = v
			}
		}
		if s, ok := k.(contrastHandleSource); ok {
			if v := s.ContrastHandle(); v != (opcpu.DynamicHandle{}) {
				h.Contrast = v
			}
		}
		if s, ok := k.(gammaHandleSource); ok {
			if v := s.GammaHandle(); v != (opcpu.DynamicHandle{}) {
				h.Gamma = v
			}
		}
	}
	return h
}
