// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opbuild is the OpBuilder (§2 item 7, §4.2): it lowers a
// transform.Transform tree, against a Config and Context, into an op.List
// ready for the optimizer.
package opbuild

import (
	"path/filepath"
	"strings"

	"ocio.dev/ocio/colorspace"
	"ocio.dev/ocio/fileformat"
	"ocio.dev/ocio/ociofs"
	"ocio.dev/ocio/ociopath"
	"ocio.dev/ocio/ocioconfig"
	"ocio.dev/ocio/ocioerr"
	"ocio.dev/ocio/op"
	"ocio.dev/ocio/opdata"
	"ocio.dev/ocio/optypes"
	"ocio.dev/ocio/transform"
)

// Options controls builder behavior the caller may override per request.
type Options struct {
	// DataBypass, when false, forces ColorSpaceTransform to apply
	// numerically even between isData=true color spaces.
	DataBypass bool
	Files      *ociofs.Cache
}

// DefaultOptions returns the conventional setting: data color spaces
// bypass color processing.
func DefaultOptions() Options { return Options{DataBypass: true} }

// Builder lowers transforms against one Config/Context pair.
type Builder struct {
	cfg     *ocioconfig.Config
	ctx     *ocioconfig.Context
	opts    Options
	visited map[string]bool
}

// New returns a Builder bound to cfg and ctx.
func New(cfg *ocioconfig.Config, ctx *ocioconfig.Context, opts Options) *Builder {
	return &Builder{cfg: cfg, ctx: ctx, opts: opts, visited: map[string]bool{}}
}

// Build lowers t into a fresh op.List. It inserts no AllocationNoOp
// markers at color-space boundaries; the only breadcrumbs it emits are the
// FileNoOp pair around each inlined FileTransform.
func (b *Builder) Build(t transform.Transform) (*op.List, error) {
	list := op.NewList()
	if err := b.lower(t, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (b *Builder) lower(t transform.Transform, list *op.List) error {
	if t == nil {
		return nil
	}
	dir := t.Direction()
	switch v := t.(type) {
	case transform.MatrixTransform:
		return b.appendLeaf(list, &opdata.Matrix{M: matrix4(v.Matrix), Offset: vec4(v.Offset)}, dir)
	case transform.RangeTransform:
		return b.appendLeaf(list, rangeFromTransform(v), dir)
	case transform.ExponentTransform:
		return b.appendLeaf(list, opdata.NewExponent(
			float32(v.Value[0]), float32(v.Value[1]), float32(v.Value[2]), float32(v.Value[3])), dir)
	case transform.CDLTransform:
		return b.appendLeaf(list, b.cdlFromTransform(v), dir)
	case transform.FixedFunctionTransform:
		style, err := opdata.ParseFixedFunctionStyle(v.Style)
		if err != nil {
			return err
		}
		params := make([]float32, len(v.Params))
		for i, p := range v.Params {
			params[i] = float32(p)
		}
		return b.appendLeaf(list, &opdata.FixedFunction{Style: style, Params: params}, dir)
	case transform.ExposureContrastTransform:
		return b.appendLeaf(list, exposureContrastFromTransform(v), dir)
	case transform.GroupTransform:
		return b.lowerGroup(v, list)
	case transform.ColorSpaceTransform:
		return b.lowerColorSpace(v, list)
	case transform.DisplayViewTransform:
		return b.lowerDisplayView(v, list)
	case transform.LookTransform:
		return b.lowerLook(v, list)
	case transform.FileTransform:
		return b.lowerFile(v, list)
	default:
		return ocioerr.New(ocioerr.KindUnsupportedFormat, "opbuild.lower", "unrecognized transform kind")
	}
}

func (b *Builder) appendLeaf(list *op.List, data opdata.OpData, dir optypes.Direction) error {
	if dir == optypes.Inverse {
		list.Append(op.NewInverse(data))
		return nil
	}
	list.Append(op.New(data))
	return nil
}

// lowerGroup flattens a GroupTransform's children in order; a reverse
// direction on the group itself reverses the child order and each child's
// effective direction, mirroring op.List.Inverse.
func (b *Builder) lowerGroup(g transform.GroupTransform, list *op.List) error {
	children := g.Children
	if g.Direction() == optypes.Inverse {
		children = reverseTransforms(children)
	}
	for _, c := range children {
		if g.Direction() == optypes.Inverse {
			c = flip(c)
		}
		if err := b.lower(c, list); err != nil {
			return err
		}
	}
	return nil
}

func reverseTransforms(in []transform.Transform) []transform.Transform {
	out := make([]transform.Transform, len(in))
	for i, t := range in {
		out[len(in)-1-i] = t
	}
	return out
}

// lowerColorSpace emits A.toReference then B.fromReference, inverting
// whichever leg is missing, and collapses to a no-op when either space is
// data unless the caller disabled data bypass.
func (b *Builder) lowerColorSpace(ct transform.ColorSpaceTransform, list *op.List) error {
	src, err := b.cfg.ColorSpace(ct.Src)
	if err != nil {
		return err
	}
	dst, err := b.cfg.ColorSpace(ct.Dst)
	if err != nil {
		return err
	}
	if b.opts.DataBypass && (src.IsData || dst.IsData) {
		return nil
	}
	if src.Name == dst.Name {
		return nil
	}
	toRef, err := legToReference(src)
	if err != nil {
		return err
	}
	if err := b.lower(toRef, list); err != nil {
		return err
	}
	fromRef, err := legFromReference(dst)
	if err != nil {
		return err
	}
	return b.lower(fromRef, list)
}

func legToReference(cs *colorspace.ColorSpace) (transform.Transform, error) {
	if cs.ToReference != nil {
		return cs.ToReference, nil
	}
	if cs.FromReference != nil {
		return flip(cs.FromReference), nil
	}
	return nil, ocioerr.New(ocioerr.KindInvalidParameters, "opbuild.legToReference", "color space "+cs.Name+" has no reference transform")
}

func legFromReference(cs *colorspace.ColorSpace) (transform.Transform, error) {
	if cs.FromReference != nil {
		return cs.FromReference, nil
	}
	if cs.ToReference != nil {
		return flip(cs.ToReference), nil
	}
	return nil, ocioerr.New(ocioerr.KindInvalidParameters, "opbuild.legFromReference", "color space "+cs.Name+" has no reference transform")
}

// flip returns a transform with its direction inverted; for a
// GroupTransform only the group's own direction is toggled, and
// lowerGroup reverses and flips the children when the group is lowered.
func flip(t transform.Transform) transform.Transform {
	if g, ok := t.(transform.GroupTransform); ok {
		g.Dir = g.Dir.Opposite()
		return g
	}
	return withDirection(t, directionOf(t).Opposite())
}

func directionOf(t transform.Transform) optypes.Direction { return t.Direction() }

// withDirection rebuilds t with dir substituted for its base.Dir field, via
// a type switch since Transform carries no settable Direction method.
func withDirection(t transform.Transform, dir optypes.Direction) transform.Transform {
	switch v := t.(type) {
	case transform.MatrixTransform:
		v.Dir = dir
		return v
	case transform.RangeTransform:
		v.Dir = dir
		return v
	case transform.ExponentTransform:
		v.Dir = dir
		return v
	case transform.ExponentWithLinearTransform:
		v.Dir = dir
		return v
	case transform.LogTransform:
		v.Dir = dir
		return v
	case transform.GammaTransform:
		v.Dir = dir
		return v
	case transform.Lut1DTransform:
		v.Dir = dir
		return v
	case transform.Lut3DTransform:
		v.Dir = dir
		return v
	case transform.CDLTransform:
		v.Dir = dir
		return v
	case transform.FixedFunctionTransform:
		v.Dir = dir
		return v
	case transform.ExposureContrastTransform:
		v.Dir = dir
		return v
	case transform.FileTransform:
		v.Dir = dir
		return v
	default:
		return t
	}
}

// lowerDisplayView resolves src -> view.processSpace (if the view names
// explicit looks), the look chain, the view transform to display
// reference, and the display color space from reference, in that order.
func (b *Builder) lowerDisplayView(dv transform.DisplayViewTransform, list *op.List) error {
	view, err := b.cfg.View(dv.Display, dv.View)
	if err != nil {
		return err
	}
	looks := dv.LooksOverride
	if looks == "" && !dv.LooksBypass {
		looks = view.Looks
	}
	processSpace := dv.Src
	if view.ColorSpace != "" {
		processSpace = view.ColorSpace
	}
	if looks != "" {
		if err := b.lower(transform.LookTransform{Src: dv.Src, Dst: processSpace, Looks: looks}, list); err != nil {
			return err
		}
	} else if processSpace != dv.Src {
		if err := b.lower(transform.ColorSpaceTransform{Src: dv.Src, Dst: processSpace}, list); err != nil {
			return err
		}
	}
	if view.ViewTransform != "" {
		vt, err := b.cfg.ViewTransform(view.ViewTransform)
		if err != nil {
			return err
		}
		toRef, err := viewToReference(vt)
		if err != nil {
			return err
		}
		if err := b.lower(toRef, list); err != nil {
			return err
		}
	}
	display, err := b.cfg.ColorSpace(view.DisplayColorSpace)
	if err != nil {
		return err
	}
	fromRef, err := legFromReference(display)
	if err != nil {
		return err
	}
	return b.lower(fromRef, list)
}

func viewToReference(vt *colorspace.ViewTransform) (transform.Transform, error) {
	if vt.ToReference != nil {
		return vt.ToReference, nil
	}
	if vt.FromReference != nil {
		return flip(vt.FromReference), nil
	}
	return nil, ocioerr.New(ocioerr.KindInvalidParameters, "opbuild.viewToReference", "view transform "+vt.Name+" has no reference transform")
}

// lowerLook parses the comma/colon-separated, sign-prefixed,
// pipe-alternative look list and chains each look's process-space
// conversion plus its forward or inverse transform.
func (b *Builder) lowerLook(lt transform.LookTransform, list *op.List) error {
	specs := splitLooks(lt.Looks)
	cur := lt.Src
	for _, spec := range specs {
		next, err := b.lowerLookSpec(spec, cur, list)
		if err != nil {
			return err
		}
		cur = next
	}
	if cur != lt.Dst {
		if err := b.lower(transform.ColorSpaceTransform{Src: cur, Dst: lt.Dst}, list); err != nil {
			return err
		}
	}
	return nil
}

// splitLooks splits a looks string on commas and colons, per the grammar's
// acceptance of either separator between look specs.
func splitLooks(s string) []string {
	s = strings.ReplaceAll(s, ":", ",")
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// lowerLookSpec reads one spec's `+`/`-` direction prefix and tries each
// `|`-separated alternative's full build, in order: look-name resolution
// plus lowering of its process-space conversion and its forward or inverse
// transform. An alternative advances to the next only when that full build
// fails with KindMissingFile (a referenced file the alternative needs
// could not be found); any other error aborts immediately. The winning
// alternative's ops are appended to list and its resulting color space is
// returned as the new current space.
func (b *Builder) lowerLookSpec(spec string, cur string, list *op.List) (string, error) {
	forward := true
	if strings.HasPrefix(spec, "+") {
		spec = spec[1:]
	} else if strings.HasPrefix(spec, "-") {
		forward = false
		spec = spec[1:]
	}
	alts := strings.Split(spec, "|")
	var lastErr error
	for _, alt := range alts {
		alt = strings.TrimSpace(alt)
		process, trial, err := b.tryLook(alt, forward, cur)
		if err == nil {
			list.Append(trial.Ops...)
			return process, nil
		}
		if !ocioerr.Is(err, ocioerr.MissingFile) {
			return "", err
		}
		lastErr = err
	}
	return "", ocioerr.Wrap(ocioerr.KindMissingFile, "opbuild.lowerLookSpec", "no alternative in %q resolved: "+spec, lastErr)
}

// tryLook builds one look alternative's process-space conversion and
// forward/inverse transform into a fresh, isolated list, so a failed
// alternative never leaves partial ops behind in the caller's list.
func (b *Builder) tryLook(name string, forward bool, cur string) (process string, trial *op.List, err error) {
	lk, err := b.cfg.Look(name)
	if err != nil {
		return "", nil, err
	}
	process = lk.ProcessSpace
	if process == "" {
		process = cur
	}
	trial = op.NewList()
	if process != cur {
		if err := b.lower(transform.ColorSpaceTransform{Src: cur, Dst: process}, trial); err != nil {
			return "", nil, err
		}
	}
	lookT := lk.Transform
	if !forward {
		if lk.InverseTransform != nil {
			lookT = lk.InverseTransform
		} else {
			lookT = flip(lk.Transform)
		}
	}
	if err := b.lower(lookT, trial); err != nil {
		return "", nil, err
	}
	return process, trial, nil
}

// lowerFile substitutes context variables, resolves the file on the
// search path, dispatches to the file-format layer by extension, inlines
// any <Reference> the file contains, and wraps the resulting op list with
// a FileNoOp breadcrumb to detect self-reference cycles.
func (b *Builder) lowerFile(ft transform.FileTransform, list *op.List) error {
	resolved := b.ctx.ResolveVars(ft.Src)
	path, err := ociopath.Resolve(resolved, b.ctx.WorkingDir(), b.ctx.SearchPath())
	if err != nil {
		return err
	}
	fileList, err := b.loadFileAt(path, ft.CCCId, ft.Interpolation)
	if err != nil {
		return err
	}
	if ft.Direction() == optypes.Inverse {
		fileList = fileList.Inverse()
	}
	list.Append(op.New(&opdata.NoOp{Marker: opdata.FileNoOp, Tag: path}))
	list.Append(fileList.Ops...)
	list.Append(op.New(&opdata.NoOp{Marker: opdata.FileNoOp, Tag: path}))
	return nil
}

// loadFileAt loads the file at an already-resolved path and inlines any
// <Reference> op it contains, tracking path against b.visited for the
// duration of the load so a reference chain that cycles back to a file
// still open on the call stack raises KindReferenceCycle instead of
// recursing forever.
func (b *Builder) loadFileAt(path, cccID, interp string) (*op.List, error) {
	if b.visited[path] {
		return nil, ocioerr.New(ocioerr.KindReferenceCycle, "opbuild.lowerFile", "cycle through "+path)
	}
	b.visited[path] = true
	defer delete(b.visited, path)

	fileList, err := fileformat.Load(b.files(), path, cccID, interp)
	if err != nil {
		return nil, err
	}
	return b.expandReferences(fileList, filepath.Dir(path))
}

// expandReferences replaces each *opdata.Reference op in list with the op
// list loaded (and itself reference-expanded) from its target path,
// resolved relative to dir, the directory of the file that referenced it.
func (b *Builder) expandReferences(in *op.List, dir string) (*op.List, error) {
	hasRef := false
	for _, o := range in.Ops {
		if _, ok := o.Data.(*opdata.Reference); ok {
			hasRef = true
			break
		}
	}
	if !hasRef {
		return in, nil
	}
	out := op.NewList()
	out.Description = in.Description
	out.Meta = in.Meta
	for _, o := range in.Ops {
		ref, ok := o.Data.(*opdata.Reference)
		if !ok {
			out.Append(o)
			continue
		}
		path, err := ociopath.Resolve(b.ctx.ResolveVars(ref.Path), dir, b.ctx.SearchPath())
		if err != nil {
			return nil, err
		}
		sub, err := b.loadFileAt(path, "", "")
		if err != nil {
			return nil, err
		}
		if ref.Dir == optypes.Inverse {
			sub = sub.Inverse()
		}
		out.Append(sub.Ops...)
	}
	return out, nil
}

func (b *Builder) files() *ociofs.Cache {
	if b.opts.Files != nil {
		return b.opts.Files
	}
	return ociofs.Default()
}
