// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"cogentcore.org/render/math32"
)

// Box is the interface for render objects with two-dimensional axis-aligned
// geometry: a resolved size and a position within the parent. It adds
// hit testing to the base [Object] protocol. The core functionality is
// defined on [BoxBase], which all box kinds must embed.
type Box interface {
	Object

	// AsBox returns the [BoxBase] of this Box.
	AsBox() *BoxBase

	// HitTest reports whether the given position, in this box's local
	// coordinate space, hits this box or a descendant, appending entries
	// for everything hit to the given result, innermost first. The caller
	// must have already transformed the position into this box's local
	// space, recording the transform on the result so that local positions
	// can be re-derived from global ones later.
	HitTest(r *HitTestResult, pos math32.Vector2) bool

	// HitTestSelf reports whether this box's own (non-child) area absorbs
	// hits at the given local position. False by default; opaque leaf
	// kinds override it.
	HitTestSelf(pos math32.Vector2) bool

	// HitTestChildren hit tests this box's children against the given
	// local position. False by default; container kinds override it,
	// typically via [HitTestBoxChildren], and must visit children in
	// reverse paint order so the visually topmost child gets first
	// refusal.
	HitTestChildren(r *HitTestResult, pos math32.Vector2) bool
}

// BoxBase implements the [Box] interface and provides the box geometry and
// hit-testing defaults for two-dimensional node kinds, which must embed it.
type BoxBase struct {
	Base

	// Pos is the position of this box within its parent's coordinate
	// space, resolved by the parent's [Object.PerformLayout].
	Pos math32.Vector2

	// Size is the resolved size of this box, set during layout. It must
	// satisfy the constraints the box was laid out with.
	Size math32.Vector2

	// At is the offset at which offset-placing containers such as [Frame]
	// position this box. It is a styled input, as distinct from Pos,
	// which is the resolved output.
	At math32.Vector2
}

// AsBox returns this [BoxBase].
func (bb *BoxBase) AsBox() *BoxBase { return bb }

// Bounds returns this box's bounds in its own coordinate space:
// from the origin to [BoxBase.Size].
func (bb *BoxBase) Bounds() math32.Box2 {
	return math32.Box2{Max: bb.Size}
}

// Geometry returns this box's bounds within its parent's coordinate space.
// It returns [ErrDirtyGeometry] if the box is marked as needing layout
// (the geometry is stale, as distinct from malformed), and [ErrDetached]
// if the box has been destroyed.
func (bb *BoxBase) Geometry() (math32.Box2, error) {
	if bb.This == nil {
		return math32.Box2{}, fmt.Errorf("%w: object destroyed", ErrDetached)
	}
	if bb.needsLayout {
		return math32.Box2{}, fmt.Errorf("%w: %s", ErrDirtyGeometry, bb.Path())
	}
	return bb.Bounds().Translate(bb.Pos), nil
}

// BoxConstraints returns the box form of the constraints this box was last
// laid out with, and false if it has never been laid out.
func (bb *BoxBase) BoxConstraints() (BoxConstraints, bool) {
	if bb.constraints == nil {
		return BoxConstraints{}, false
	}
	return BoxConstraintsOf(bb.constraints), true
}

// MeetsConstraints reports whether the resolved size satisfies the box form
// of the given constraints.
func (bb *BoxBase) MeetsConstraints(c Constraints) bool {
	return BoxConstraintsOf(c).IsSatisfiedBy(bb.Size)
}

// HitTest implements the box hit-testing algorithm: the position must lie
// within [BoxBase.Bounds]; children get first refusal in reverse paint
// order via [Box.HitTestChildren]; only if no child absorbs the hit is
// [Box.HitTestSelf] consulted. If either absorbs it, an entry for this box
// is appended and the hit stops here; otherwise it passes through to
// whatever is below this box in z-order.
func (bb *BoxBase) HitTest(r *HitTestResult, pos math32.Vector2) bool {
	if bb.This == nil || !bb.Bounds().ContainsPoint(pos) {
		return false
	}
	this := bb.This.(Box)
	hit := this.HitTestChildren(r, pos)
	if !hit {
		hit = this.HitTestSelf(pos)
	}
	if hit {
		r.Add(bb.This, pos)
	}
	return hit
}

// HitTestSelf returns false by default.
func (bb *BoxBase) HitTestSelf(pos math32.Vector2) bool { return false }

// HitTestChildren returns false by default.
func (bb *BoxBase) HitTestChildren(r *HitTestResult, pos math32.Vector2) bool { return false }

// HitTestBoxChildren hit tests the box children of the given box in
// reverse paint order (visually topmost first), translating the position
// into each child's coordinate space and recording the offset transform on
// the result around each child's test. It stops at the first child that
// absorbs the hit, so children painted earlier are never tested once a
// later sibling has absorbed it. Container kinds use it to implement
// [Box.HitTestChildren].
func HitTestBoxChildren(r *HitTestResult, bb *BoxBase, pos math32.Vector2) bool {
	for i := len(bb.Children) - 1; i >= 0; i-- {
		child, ok := bb.Children[i].(Box)
		if !ok {
			continue
		}
		cb := child.AsBox()
		r.PushOffset(cb.Pos)
		hit := child.HitTest(r, pos.Sub(cb.Pos))
		r.Pop()
		if hit {
			return true
		}
	}
	return false
}
