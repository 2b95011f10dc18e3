// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"cogentcore.org/render/math32"
)

// Constraints describes the range of geometries a parent allows a child to
// resolve during layout. It is the sole input, along with the child's own
// content, to the child's layout.
//
// Implementations must be comparable value types: the == operator and use as
// a map key must work on them. A relayout boundary compares the constraints
// it is re-handed against the ones it was last laid out with to skip
// recomputation, and caches can key on them directly.
type Constraints interface {
	fmt.Stringer

	// WellFormed reports whether the constraints are internally consistent:
	// minimums are non-negative and do not exceed maximums on any axis.
	// Handing ill-formed constraints to [Base.Layout] is a contract
	// violation and panics.
	WellFormed() bool

	// Tight reports whether the constraints admit exactly one geometry.
	// A node given tight constraints is always a relayout boundary, since
	// nothing it does can change its size.
	Tight() bool
}

// BoxConstraints is the two-dimensional [Constraints] family: independent
// closed ranges of admissible widths and heights. The maximums may be
// [math32.Infinity] for unbounded axes.
type BoxConstraints struct {
	Min math32.Vector2
	Max math32.Vector2
}

// NewBoxConstraints returns a new [BoxConstraints] with the given width and
// height ranges.
func NewBoxConstraints(minWidth, maxWidth, minHeight, maxHeight float32) BoxConstraints {
	return BoxConstraints{Min: math32.Vec2(minWidth, minHeight), Max: math32.Vec2(maxWidth, maxHeight)}
}

// TightBox returns [BoxConstraints] admitting exactly the given size.
func TightBox(size math32.Vector2) BoxConstraints {
	return BoxConstraints{Min: size, Max: size}
}

// LooseBox returns [BoxConstraints] admitting any size from zero up to the
// given size.
func LooseBox(size math32.Vector2) BoxConstraints {
	return BoxConstraints{Max: size}
}

// UnboundedBox returns [BoxConstraints] admitting any size at all.
func UnboundedBox() BoxConstraints {
	return BoxConstraints{Max: math32.Vector2Scalar(math32.Infinity)}
}

// WellFormed reports whether minimums are non-negative and do not exceed
// maximums on either axis. NaN values on any field make the constraints
// ill-formed.
func (c BoxConstraints) WellFormed() bool {
	return c.Min.X >= 0 && c.Min.Y >= 0 &&
		c.Min.X <= c.Max.X && c.Min.Y <= c.Max.Y
}

// Tight reports whether the constraints admit exactly one size.
func (c BoxConstraints) Tight() bool {
	return c.Min == c.Max
}

// Bounded reports whether both maximums are finite.
func (c BoxConstraints) Bounded() bool {
	return !math32.IsInf(c.Max.X, 1) && !math32.IsInf(c.Max.Y, 1)
}

// Constrain returns the size closest to the given size that satisfies the
// constraints.
func (c BoxConstraints) Constrain(size math32.Vector2) math32.Vector2 {
	return math32.Vec2(c.ConstrainWidth(size.X), c.ConstrainHeight(size.Y))
}

// ConstrainWidth returns the width closest to the given width that satisfies
// the constraints.
func (c BoxConstraints) ConstrainWidth(width float32) float32 {
	return math32.Clamp(width, c.Min.X, c.Max.X)
}

// ConstrainHeight returns the height closest to the given height that
// satisfies the constraints.
func (c BoxConstraints) ConstrainHeight(height float32) float32 {
	return math32.Clamp(height, c.Min.Y, c.Max.Y)
}

// IsSatisfiedBy reports whether the given size satisfies the constraints on
// both axes.
func (c BoxConstraints) IsSatisfiedBy(size math32.Vector2) bool {
	return c.Min.X <= size.X && size.X <= c.Max.X &&
		c.Min.Y <= size.Y && size.Y <= c.Max.Y
}

// Loosen returns the constraints with the minimums removed, admitting any
// size from zero up to the existing maximums.
func (c BoxConstraints) Loosen() BoxConstraints {
	return BoxConstraints{Max: c.Max}
}

// Enforce returns these constraints with their ranges clamped to fall
// within the ranges of the other given constraints.
func (c BoxConstraints) Enforce(o BoxConstraints) BoxConstraints {
	return BoxConstraints{
		Min: math32.Vec2(math32.Clamp(c.Min.X, o.Min.X, o.Max.X), math32.Clamp(c.Min.Y, o.Min.Y, o.Max.Y)),
		Max: math32.Vec2(math32.Clamp(c.Max.X, o.Min.X, o.Max.X), math32.Clamp(c.Max.Y, o.Min.Y, o.Max.Y)),
	}
}

func (c BoxConstraints) String() string {
	return fmt.Sprintf("BoxConstraints{w: [%v, %v], h: [%v, %v]}", c.Min.X, c.Max.X, c.Min.Y, c.Max.Y)
}

// BoxConstraintsOf returns the box form of the given constraints, reducing
// sliver constraints through [SliverConstraints.BoxConstraints]. Box node
// kinds use it so that they can be laid out directly by axis-aware
// ancestors. It panics on an unrecognized constraints family.
func BoxConstraintsOf(c Constraints) BoxConstraints {
	switch bc := c.(type) {
	case BoxConstraints:
		return bc
	case SliverConstraints:
		return bc.BoxConstraints()
	}
	panic(fmt.Sprintf("render: no box form for constraints type %T", c))
}
