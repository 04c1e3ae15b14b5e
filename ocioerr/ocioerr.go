// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ocioerr provides the small error taxonomy used across the
// pipeline (§7 of the design spec), following the same thin-wrapper style
// as the teacher's base/errors package: sentinel values plus helpers that
// compose with the standard library's errors.Is/errors.As.
package ocioerr

import "errors"

// Kind identifies which row of the error taxonomy an error belongs to.
type Kind int

const (
	KindParseError Kind = iota
	KindMissingFile
	KindReferenceCycle
	KindUnknownName
	KindInvalidParameters
	KindNotInvertible
	KindUnsupportedFormat
	KindShaderLimitExceeded
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindParseError:
		return "ParseError"
	case KindMissingFile:
		return "MissingFile"
	case KindReferenceCycle:
		return "ReferenceCycle"
	case KindUnknownName:
		return "UnknownName"
	case KindInvalidParameters:
		return "InvalidParameters"
	case KindNotInvertible:
		return "NotInvertible"
	case KindUnsupportedFormat:
		return "UnsupportedFormat"
	case KindShaderLimitExceeded:
		return "ShaderLimitExceeded"
	case KindInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned at every API boundary. Kind
// lets callers use errors.As to distinguish taxonomy rows without string
// matching; Op/Detail add context the way the builder and file-format
// readers need to report exactly what failed.
type Error struct {
	Kind   Kind
	Op     string // the operation that failed, e.g. "opbuild.ColorSpaceTransform"
	Detail string
	Err    error // wrapped cause, if any
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg += " in " + e.Op
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ocioerr.NotInvertible) match any *Error of that
// Kind regardless of Op/Detail/wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New builds an *Error of the given kind.
func New(kind Kind, op, detail string) *Error {
	return &Error{Kind: kind, Op: op, Detail: detail}
}

// Wrap builds an *Error of the given kind wrapping cause.
func Wrap(kind Kind, op, detail string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Detail: detail, Err: cause}
}

// Sentinel values usable with errors.Is for kind-only matching, mirroring
// the taxonomy table in spec §7.
var (
	ParseError          = &Error{Kind: KindParseError}
	MissingFile         = &Error{Kind: KindMissingFile}
	ReferenceCycle      = &Error{Kind: KindReferenceCycle}
	UnknownName         = &Error{Kind: KindUnknownName}
	InvalidParameters   = &Error{Kind: KindInvalidParameters}
	NotInvertible       = &Error{Kind: KindNotInvertible}
	UnsupportedFormat   = &Error{Kind: KindUnsupportedFormat}
	ShaderLimitExceeded = &Error{Kind: KindShaderLimitExceeded}
	Internal            = &Error{Kind: KindInternal}
)

// Is reports whether any error in err's tree matches target; re-exported so
// callers need only import one package for the common case, the way
// base/errors re-exports the stdlib errors package.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's tree assignable to target.
func As(err error, target any) bool { return errors.As(err, target) }
