// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpuproc

import (
	"ocio.dev/ocio/ocioerr"
	"ocio.dev/ocio/ocmath"
	"ocio.dev/ocio/opcpu"
	"ocio.dev/ocio/optypes"
)

// Channels names the packed channel layouts Apply understands.
type Channels int

const (
	RGBA Channels = iota
	RGB
)

func (c Channels) count() int {
	if c == RGB {
		return 3
	}
	return 4
}

// PackedImage describes one interleaved-channel buffer: width*height
// pixels of Channels.count() float32s each, row-major, no padding between
// rows. Callers own the backing storage; Apply mutates it in place.
type PackedImage struct {
	Data     []float32
	Width    int
	Height   int
	Channels Channels
}

// PlanarImage describes an image as independent per-channel slices. A is
// nil for images with no alpha channel, in which case alpha is treated as
// opaque and never written back.
type PlanarImage struct {
	R, G, B, A []float32
	Width      int
	Height     int
}

func validateDims(width, height int) error {
	if width < 0 || height < 0 {
		return ocioerr.New(ocioerr.KindInvalidParameters, "cpuproc", "negative image dimensions")
	}
	return nil
}

// ApplyPacked runs every pixel of img through the processor in place. The
// native bit depth conversion at the boundary uses p's InputBitDepth and
// OutputBitDepth; img.Data is read and written in that native encoding.
func (p *Processor) ApplyPacked(img *PackedImage) error {
	if img == nil {
		return ocioerr.New(ocioerr.KindInvalidParameters, "cpuproc.ApplyPacked", "nil image")
	}
	if err := validateDims(img.Width, img.Height); err != nil {
		return err
	}
	n := img.Channels.count()
	want := img.Width * img.Height * n
	if len(img.Data) != want {
		return ocioerr.New(ocioerr.KindInvalidParameters, "cpuproc.ApplyPacked", "buffer length does not match width*height*channels")
	}
	inDepth, outDepth := p.inDepth, p.outDepth
	if img.Channels == RGBA {
		for i := 0; i < want; i += 4 {
			v := ocmath.NewVec4(
				inDepth.ToNormalized(img.Data[i]),
				inDepth.ToNormalized(img.Data[i+1]),
				inDepth.ToNormalized(img.Data[i+2]),
				inDepth.ToNormalized(img.Data[i+3]),
			)
			v = p.ApplyRGBA(v)
			img.Data[i] = outDepth.FromNormalized(v[0])
			img.Data[i+1] = outDepth.FromNormalized(v[1])
			img.Data[i+2] = outDepth.FromNormalized(v[2])
			img.Data[i+3] = outDepth.FromNormalized(v[3])
		}
		return nil
	}
	for i := 0; i < want; i += 3 {
		r, g, b := p.ApplyRGB(
			inDepth.ToNormalized(img.Data[i]),
			inDepth.ToNormalized(img.Data[i+1]),
			inDepth.ToNormalized(img.Data[i+2]),
		)
		img.Data[i] = outDepth.FromNormalized(r)
		img.Data[i+1] = outDepth.FromNormalized(g)
		img.Data[i+2] = outDepth.FromNormalized(b)
	}
	return nil
}

// ApplyPlanar runs every pixel of img through the processor in place,
// reading and writing each channel's independent slice. All non-nil
// slices must have exactly Width*Height elements.
func (p *Processor) ApplyPlanar(img *PlanarImage) error {
	if img == nil {
		return ocioerr.New(ocioerr.KindInvalidParameters, "cpuproc.ApplyPlanar", "nil image")
	}
	if err := validateDims(img.Width, img.Height); err != nil {
		return err
	}
	n := img.Width * img.Height
	if len(img.R) != n || len(img.G) != n || len(img.B) != n {
		return ocioerr.New(ocioerr.KindInvalidParameters, "cpuproc.ApplyPlanar", "R/G/B slice length does not match width*height")
	}
	if img.A != nil && len(img.A) != n {
		return ocioerr.New(ocioerr.KindInvalidParameters, "cpuproc.ApplyPlanar", "A slice length does not match width*height")
	}
	inDepth, outDepth := p.inDepth, p.outDepth
	if inDepth == optypes.F32 && outDepth == optypes.F32 && img.A != nil && p.allPlanar() {
		a := img.A
		for _, k := range p.kernels {
			k.(opcpu.PlanarKernel).ApplyPlanar(img.R, img.G, img.B, a)
		}
		return nil
	}
	for i := 0; i < n; i++ {
		a := float32(1)
		if img.A != nil {
			a = inDepth.ToNormalized(img.A[i])
		}
		v := p.ApplyRGBA(ocmath.NewVec4(
			inDepth.ToNormalized(img.R[i]),
			inDepth.ToNormalized(img.G[i]),
			inDepth.ToNormalized(img.B[i]),
			a,
		))
		img.R[i] = outDepth.FromNormalized(v[0])
		img.G[i] = outDepth.FromNormalized(v[1])
		img.B[i] = outDepth.FromNormalized(v[2])
		if img.A != nil {
			img.A[i] = outDepth.FromNormalized(v[3])
		}
	}
	return nil
}
