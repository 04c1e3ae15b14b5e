// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opdata

import "ocio.dev/ocio/ocioerr"

// invalidParam builds the ocioerr.InvalidParameters error every variant's
// Validate returns for an out-of-domain parameter.
func invalidParam(kind, detail string) error {
	return ocioerr.New(ocioerr.KindInvalidParameters, "opdata."+kind+".Validate", detail)
}

func notInvertible(kind, detail string) error {
	return ocioerr.New(ocioerr.KindNotInvertible, "opdata."+kind+".Inverse", detail)
}

// NotInvertible builds the ocioerr.NotInvertible error for a named kind and
// style/detail string, exported for opcpu's kernel factories to report the
// same taxonomy when a requested inverse direction has no defined mapping.
func NotInvertible(kind, detail string) error {
	return notInvertible(kind, detail)
}
