// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"cogentcore.org/render/math32"
)

// Axis is a 2D axis along which scrolling happens.
type Axis int32

const (
	// Horizontal is the X axis.
	Horizontal Axis = iota

	// Vertical is the Y axis.
	Vertical
)

func (a Axis) String() string {
	if a == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// Main returns the component of the given vector along this axis.
func (a Axis) Main(v math32.Vector2) float32 {
	if a == Horizontal {
		return v.X
	}
	return v.Y
}

// Cross returns the component of the given vector along the other axis.
func (a Axis) Cross(v math32.Vector2) float32 {
	if a == Horizontal {
		return v.Y
	}
	return v.X
}

// Vec returns a vector with the given main and cross axis components
// placed per this axis.
func (a Axis) Vec(main, cross float32) math32.Vector2 {
	if a == Horizontal {
		return math32.Vec2(main, cross)
	}
	return math32.Vec2(cross, main)
}

// SliverConstraints is the one-dimensional scroll-axis [Constraints] family:
// an extent along the scroll axis plus a box range on the cross axis,
// as handed down by a [Viewport] to its scrolling content.
type SliverConstraints struct {
	// Axis is the scroll axis.
	Axis Axis

	// ScrollOffset is the amount of content before this sliver that has
	// already been scrolled past the leading edge of the viewport.
	ScrollOffset float32

	// RemainingExtent is the space remaining along the scroll axis in
	// which this sliver can place content. May be [math32.Infinity].
	RemainingExtent float32

	// CrossMin and CrossMax bound the extent on the cross axis.
	CrossMin float32
	CrossMax float32
}

// WellFormed reports whether the scroll offset and extents are non-negative
// and the cross-axis range is ordered.
func (c SliverConstraints) WellFormed() bool {
	return c.ScrollOffset >= 0 && c.RemainingExtent >= 0 &&
		c.CrossMin >= 0 && c.CrossMin <= c.CrossMax
}

// Tight always returns false: sliver constraints never pin content to a
// single geometry along the scroll axis.
func (c SliverConstraints) Tight() bool {
	return false
}

func (c SliverConstraints) String() string {
	return fmt.Sprintf("SliverConstraints{%v, scroll: %v, remaining: %v, cross: [%v, %v]}",
		c.Axis, c.ScrollOffset, c.RemainingExtent, c.CrossMin, c.CrossMax)
}

// BoxConstraints returns the box projection of these sliver constraints,
// used when an axis-aware ancestor lays out a box-only descendant. The
// projection is total and deterministic: degenerate inputs (negative or NaN
// extents, inverted cross range) are canonicalized rather than rejected, and
// ScrollOffset plays no role in the result.
func (c SliverConstraints) BoxConstraints() BoxConstraints {
	main := c.RemainingExtent
	if !(main > 0) {
		main = 0
	}
	cmin := c.CrossMin
	if !(cmin > 0) {
		cmin = 0
	}
	cmax := c.CrossMax
	if !(cmax > cmin) {
		cmax = cmin
	}
	return BoxConstraints{Min: c.Axis.Vec(0, cmin), Max: c.Axis.Vec(main, cmax)}
}
