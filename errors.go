// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "errors"

// These are the usage-ordering errors returned by pipeline and geometry
// entry points. They are ordinary recoverable errors, unlike contract
// violations (ill-formed constraints, geometry outside its constraints),
// which are programming errors and panic.
var (
	// ErrDetached indicates an operation that requires an attached tree:
	// the object has been destroyed, or the pipeline has no root.
	ErrDetached = errors.New("render: object is not attached to a pipeline")

	// ErrPassActive indicates a structural tree mutation or a re-entrant
	// flush requested while a layout, paint, or hit-test pass is in
	// flight. Use [Pipeline.Defer] to queue work until the pass completes.
	ErrPassActive = errors.New("render: tree mutated during an active pass")

	// ErrDirtyGeometry indicates a geometry query on an object whose
	// layout is still marked dirty: the value is not ready, as distinct
	// from malformed.
	ErrDirtyGeometry = errors.New("render: geometry is not current; layout is dirty")
)
