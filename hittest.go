// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"cogentcore.org/render/math32"
)

// HitTestEntry records one object hit during a hit-test pass: the object,
// the position in its local coordinate space at the time of the hit, and
// the transform needed to re-derive that local position from a global one
// later (e.g. for subsequent events in a drag). Entries are immutable once
// added.
type HitTestEntry struct {
	// Object is the render object that was hit.
	Object Object

	// Position is the hit position in Object's local coordinate space.
	Position math32.Vector2

	// Transform maps the global (root) coordinate space into Object's
	// local space as of the hit-test pass that produced this entry.
	Transform math32.Matrix2
}

func (e HitTestEntry) String() string {
	return fmt.Sprintf("%v at %v", e.Object.AsRender().name(), e.Position)
}

// HitTestResult accumulates the objects hit during one hit-test pass, in
// order of innermost (visually topmost) first. That ordering is the
// contract consumed by the event-dispatch collaborator, which typically
// delivers events innermost-out until one is handled. A result is built
// by one pass over one tree and must not be reused across passes.
type HitTestResult struct {
	// Entries is the ordered list of hits, innermost first.
	Entries []HitTestEntry

	// transforms is the stack of global-to-local transforms pushed while
	// descending the tree; the top applies to entries added now.
	transforms []math32.Matrix2
}

// NewHitTestResult returns a new [HitTestResult] with an identity
// global-to-local transform.
func NewHitTestResult() *HitTestResult {
	return &HitTestResult{transforms: []math32.Matrix2{math32.Identity2()}}
}

// Transform returns the current global-to-local transform.
func (r *HitTestResult) Transform() math32.Matrix2 {
	return r.transforms[len(r.transforms)-1]
}

// Add appends an entry for the given object hit at the given local
// position, recording the current transform.
func (r *HitTestResult) Add(n Object, pos math32.Vector2) {
	r.Entries = append(r.Entries, HitTestEntry{Object: n, Position: pos, Transform: r.Transform()})
}

// PushOffset pushes a translation by the given offset: positions in the
// child space being entered are parent positions minus offset.
func (r *HitTestResult) PushOffset(offset math32.Vector2) {
	r.PushTransform(math32.Translate2D(-offset.X, -offset.Y))
}

// PushTransform pushes the given parent-to-child transform, composing it
// with the current global-to-parent transform. Each push must be matched
// by a [HitTestResult.Pop] after the child subtree has been tested.
func (r *HitTestResult) PushTransform(m math32.Matrix2) {
	r.transforms = append(r.transforms, m.Mul(r.Transform()))
}

// Pop pops the transform pushed by the most recent
// [HitTestResult.PushOffset] or [HitTestResult.PushTransform].
func (r *HitTestResult) Pop() {
	if len(r.transforms) > 1 {
		r.transforms = r.transforms[:len(r.transforms)-1]
	}
}

// HitTest hit tests the tree rooted at the given box against the given
// position in the root's coordinate space, returning the accumulated
// result with entries ordered innermost first. It is read-only over the
// tree. It returns [ErrDetached] if the root has been destroyed and
// [ErrDirtyGeometry] if the root still needs layout, since hit testing
// stale geometry would silently misattribute hits. Prefer
// [Pipeline.HitTest] for trees driven by a pipeline, which also guards
// against in-flight passes.
func HitTest(root Box, pos math32.Vector2) (*HitTestResult, error) {
	rb := root.AsRender()
	if rb.This == nil {
		return nil, fmt.Errorf("%w: root destroyed", ErrDetached)
	}
	if rb.needsLayout {
		return nil, fmt.Errorf("%w: %s", ErrDirtyGeometry, rb.Path())
	}
	r := NewHitTestResult()
	root.HitTest(r, pos)
	return r, nil
}
