// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/render/events"
	"cogentcore.org/render/math32"
)

// Dim is a dimension styling value for the basic node kinds: an automatic,
// fixed, or proportional extent, resolved against the constraint range the
// kind is laid out with.
type Dim struct {
	Kind  DimKinds
	Value float32
}

// DimKinds are the kinds of [Dim] values.
type DimKinds int32

const (
	// DimAuto resolves to the minimum of the constraint range.
	// It is the zero value.
	DimAuto DimKinds = iota

	// DimPoints is a fixed extent, clamped into the constraint range.
	DimPoints

	// DimPercent is a fraction of the maximum of the constraint range.
	DimPercent
)

// Points returns a fixed [Dim] of the given extent.
func Points(v float32) Dim {
	return Dim{Kind: DimPoints, Value: v}
}

// Percent returns a proportional [Dim] of the given fraction (0..1) of the
// maximum constraint.
func Percent(f float32) Dim {
	return Dim{Kind: DimPercent, Value: f}
}

// Resolve resolves this dimension against the given constraint range.
// Percent values resolve against max, falling back to min when max is
// unbounded; auto resolves to min.
func (d Dim) Resolve(min, max float32) float32 {
	switch d.Kind {
	case DimPoints:
		return math32.Clamp(d.Value, min, max)
	case DimPercent:
		if math32.IsInf(max, 1) {
			return min
		}
		return math32.Clamp(d.Value*max, min, max)
	}
	return min
}

// Rect is an opaque rectangular leaf: it sizes itself from its [Dim]
// styling within its constraints and absorbs any hit within its bounds.
type Rect struct {
	BoxBase

	// Width and Height size the rect within its constraints.
	Width  Dim
	Height Dim

	// OnEvent, if set, handles pointer events dispatched to this rect.
	OnEvent func(e events.Event, entry *HitTestEntry)
}

// NewRect returns a new initialized [Rect].
func NewRect() *Rect {
	r := &Rect{}
	r.Init(r)
	return r
}

func (r *Rect) PerformLayout(c Constraints) {
	bc := BoxConstraintsOf(c)
	r.Size = math32.Vec2(r.Width.Resolve(bc.Min.X, bc.Max.X), r.Height.Resolve(bc.Min.Y, bc.Max.Y))
}

func (r *Rect) HitTestSelf(pos math32.Vector2) bool { return true }

func (r *Rect) HandleEvent(e events.Event, entry *HitTestEntry) {
	if r.OnEvent != nil {
		r.OnEvent(e, entry)
	}
}

// Frame is a container that places each child at the child's [BoxBase.At]
// offset, laying children out with constraints loosened from its own size.
// With [Frame.FitContent] it instead sizes itself to the spanning bounds of
// its children, declaring the child-size dependency at each child's layout
// call so that child size changes dirty the frame as well.
type Frame struct {
	BoxBase

	// Width and Height size the frame within its constraints.
	// Ignored when FitContent is set.
	Width  Dim
	Height Dim

	// FitContent sizes the frame to the union of its children's bounds.
	FitContent bool
}

// NewFrame returns a new initialized [Frame].
func NewFrame() *Frame {
	f := &Frame{}
	f.Init(f)
	return f
}

func (f *Frame) PerformLayout(c Constraints) {
	bc := BoxConstraintsOf(c)
	inner := bc.Loosen()
	if !f.FitContent {
		f.Size = math32.Vec2(f.Width.Resolve(bc.Min.X, bc.Max.X), f.Height.Resolve(bc.Min.Y, bc.Max.Y))
		inner = LooseBox(f.Size)
	}
	for _, child := range f.Children {
		cb, ok := child.(Box)
		if !ok {
			continue
		}
		child.AsRender().Layout(inner, f.FitContent)
		cb.AsBox().Pos = cb.AsBox().At
	}
	if f.FitContent {
		span := math32.B2Empty()
		span.ExpandByPoint(math32.Vector2{})
		for _, child := range f.Children {
			cb, ok := child.(Box)
			if !ok {
				continue
			}
			span.ExpandByBox(cb.AsBox().Bounds().Translate(cb.AsBox().Pos))
		}
		f.Size = bc.Constrain(span.Max)
	}
}

func (f *Frame) HitTestChildren(r *HitTestResult, pos math32.Vector2) bool {
	return HitTestBoxChildren(r, &f.BoxBase, pos)
}

// Layer is a [Frame] that is a repaint boundary: paint invalidation below
// it is isolated to its own cached paint surface and never forces
// ancestors to repaint.
type Layer struct {
	Frame
}

// NewLayer returns a new initialized [Layer].
func NewLayer() *Layer {
	l := &Layer{}
	l.Init(l)
	return l
}

func (l *Layer) IsRepaintBoundary() bool { return true }

// Filler is a leaf that expands to fill the space its constraints allow:
// its size is a pure function of the constraints alone, so it is sized by
// parent and always a relayout boundary.
type Filler struct {
	BoxBase
}

// NewFiller returns a new initialized [Filler].
func NewFiller() *Filler {
	f := &Filler{}
	f.Init(f)
	return f
}

func (f *Filler) SizedByParent() bool { return true }

func (f *Filler) PerformResize(c Constraints) {
	bc := BoxConstraintsOf(c)
	sz := bc.Max
	if math32.IsInf(sz.X, 1) {
		sz.X = bc.Min.X
	}
	if math32.IsInf(sz.Y, 1) {
		sz.Y = bc.Min.Y
	}
	f.Size = sz
}

func (f *Filler) HitTestSelf(pos math32.Vector2) bool { return true }

// Viewport scrolls box content along one axis. It is sized by parent
// (filling the space its constraints allow, independent of content), and
// lays its children out with [SliverConstraints] carrying the current
// scroll offset; box children reduce those through the box projection.
// Scroll events hit-tested to the viewport move the content.
type Viewport struct {
	BoxBase

	// Axis is the scroll axis.
	Axis Axis

	scroll float32
}

// NewViewport returns a new initialized [Viewport] scrolling on the given
// axis.
func NewViewport(axis Axis) *Viewport {
	v := &Viewport{}
	v.Init(v)
	v.Axis = axis
	return v
}

// ScrollOffset returns the current scroll offset along the axis.
func (v *Viewport) ScrollOffset() float32 { return v.scroll }

// ScrollBy moves the content by the given delta along the axis, clamped at
// zero, and marks the viewport as needing layout.
func (v *Viewport) ScrollBy(delta float32) {
	next := math32.Max(v.scroll+delta, 0)
	if next == v.scroll {
		return
	}
	v.scroll = next
	v.MarkNeedsLayout()
}

func (v *Viewport) SizedByParent() bool { return true }

func (v *Viewport) PerformResize(c Constraints) {
	bc := BoxConstraintsOf(c)
	sz := bc.Max
	if math32.IsInf(sz.X, 1) {
		sz.X = bc.Min.X
	}
	if math32.IsInf(sz.Y, 1) {
		sz.Y = bc.Min.Y
	}
	v.Size = sz
}

func (v *Viewport) PerformLayout(c Constraints) {
	sc := SliverConstraints{
		Axis:            v.Axis,
		ScrollOffset:    v.scroll,
		RemainingExtent: math32.Infinity,
		CrossMin:        v.Axis.Cross(v.Size),
		CrossMax:        v.Axis.Cross(v.Size),
	}
	for _, child := range v.Children {
		cb, ok := child.(Box)
		if !ok {
			continue
		}
		child.AsRender().Layout(sc, false)
		cb.AsBox().Pos = v.Axis.Vec(-v.scroll, 0)
	}
}

func (v *Viewport) HitTestSelf(pos math32.Vector2) bool { return true }

func (v *Viewport) HitTestChildren(r *HitTestResult, pos math32.Vector2) bool {
	return HitTestBoxChildren(r, &v.BoxBase, pos)
}

func (v *Viewport) HandleEvent(e events.Event, entry *HitTestEntry) {
	if se, ok := e.(*events.MouseScroll); ok {
		v.ScrollBy(v.Axis.Main(se.Delta))
		e.SetHandled()
	}
}
