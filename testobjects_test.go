// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render_test

import (
	. "cogentcore.org/render"
	"cogentcore.org/render/math32"
)

// fillSize returns the largest size the given constraints allow,
// falling back to the minimum on unbounded axes.
func fillSize(bc BoxConstraints) math32.Vector2 {
	sz := bc.Max
	if math32.IsInf(sz.X, 1) {
		sz.X = bc.Min.X
	}
	if math32.IsInf(sz.Y, 1) {
		sz.Y = bc.Min.Y
	}
	return sz
}

// counterBox is a leaf box that counts protocol calls, with a configurable
// sized-by-parent value.
type counterBox struct {
	BoxBase
	sized   bool
	layouts int
	resizes int
}

func newCounterBox(sized bool) *counterBox {
	b := &counterBox{sized: sized}
	b.Init(b)
	return b
}

func (b *counterBox) SizedByParent() bool { return b.sized }

func (b *counterBox) PerformResize(c Constraints) {
	b.resizes++
	b.Size = fillSize(BoxConstraintsOf(c))
}

func (b *counterBox) PerformLayout(c Constraints) {
	b.layouts++
	if !b.sized {
		b.Size = BoxConstraintsOf(c).Constrain(math32.Vec2(10, 10))
	}
}

// counterFrame is a container box that counts layout calls and lays out
// all children with loosened constraints, optionally declaring that it
// uses their sizes.
type counterFrame struct {
	BoxBase
	usesChildSize bool
	layouts       int
}

func newCounterFrame(usesChildSize bool) *counterFrame {
	f := &counterFrame{usesChildSize: usesChildSize}
	f.Init(f)
	return f
}

func (f *counterFrame) PerformLayout(c Constraints) {
	f.layouts++
	bc := BoxConstraintsOf(c)
	f.Size = fillSize(bc)
	for _, child := range f.Children {
		cb, ok := child.(Box)
		if !ok {
			continue
		}
		child.AsRender().Layout(bc.Loosen(), f.usesChildSize)
		cb.AsBox().Pos = cb.AsBox().At
	}
}

func (f *counterFrame) HitTestChildren(r *HitTestResult, pos math32.Vector2) bool {
	return HitTestBoxChildren(r, &f.BoxBase, pos)
}

// hookBox is a leaf box that runs a hook from within PerformLayout, for
// exercising mutation-during-pass handling.
type hookBox struct {
	BoxBase
	onLayout func()
}

func newHookBox(onLayout func()) *hookBox {
	b := &hookBox{onLayout: onLayout}
	b.Init(b)
	return b
}

func (b *hookBox) PerformLayout(c Constraints) {
	b.Size = fillSize(BoxConstraintsOf(c))
	if b.onLayout != nil {
		b.onLayout()
	}
}

// rogueBox resolves a size that ignores its constraints.
type rogueBox struct {
	BoxBase
}

func newRogueBox() *rogueBox {
	b := &rogueBox{}
	b.Init(b)
	return b
}

func (b *rogueBox) PerformLayout(c Constraints) {
	b.Size = math32.Vec2(1000, 1000)
}

// markRect is a [Rect] that records whether its own area was hit tested.
type markRect struct {
	Rect
	selfTested bool
}

func newMarkRect() *markRect {
	r := &markRect{}
	r.Init(r)
	return r
}

func (r *markRect) HitTestSelf(pos math32.Vector2) bool {
	r.selfTested = true
	return true
}
