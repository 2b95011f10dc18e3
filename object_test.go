// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/render"
	"cogentcore.org/render/math32"
)

// newTestTree returns a pipeline with a rooted counterFrame laid out at
// 100x100, fully flushed.
func newTestTree(t *testing.T, usesChildSize bool, children ...Object) (*Pipeline, *counterFrame) {
	t.Helper()
	p := NewPipeline()
	root := newCounterFrame(usesChildSize)
	root.Name = "root"
	for _, c := range children {
		require.NoError(t, root.AddChild(c))
	}
	require.NoError(t, p.SetRoot(root))
	require.NoError(t, p.SetFrameConstraints(TightBox(math32.Vec2(100, 100))))
	require.NoError(t, p.FlushLayout())
	return p, root
}

func TestTreeStructure(t *testing.T) {
	parent := newCounterFrame(false)
	parent.Name = "parent"
	child := newCounterBox(false)
	child.Name = "child"

	require.NoError(t, parent.AddChild(child))
	assert.Len(t, parent.Children, 1)
	assert.Equal(t, Object(parent), child.Parent)
	assert.Equal(t, "/parent/child", child.Path())

	other := newCounterBox(false)
	require.NoError(t, parent.InsertChild(other, 0))
	assert.Equal(t, Object(other), parent.Children[0])

	assert.Error(t, parent.AddChild(child)) // already has a parent
	assert.Error(t, parent.InsertChild(newCounterBox(false), 5))

	require.NoError(t, parent.DeleteChild(other))
	assert.Len(t, parent.Children, 1)
	assert.True(t, other.IsDestroyed())

	uninit := &counterBox{}
	assert.Error(t, parent.AddChild(uninit))
}

func TestLayoutBasics(t *testing.T) {
	b := newCounterBox(false)
	b.Layout(LooseBox(math32.Vec2(50, 50)), false)
	assert.Equal(t, 1, b.layouts)
	assert.Equal(t, math32.Vec2(10, 10), b.Size)
	assert.False(t, b.NeedsLayout())
}

func TestLayoutMemoization(t *testing.T) {
	b := newCounterBox(true)
	c := LooseBox(math32.Vec2(50, 50))

	b.Layout(c, false)
	assert.Equal(t, 1, b.resizes)
	assert.Equal(t, math32.Vec2(50, 50), b.Size)

	// clean object with equal constraints: skipped entirely
	b.Layout(c, false)
	assert.Equal(t, 1, b.resizes)
	assert.Equal(t, 1, b.layouts)

	// different constraints: recomputed
	b.Layout(LooseBox(math32.Vec2(80, 80)), false)
	assert.Equal(t, 2, b.resizes)
	assert.Equal(t, math32.Vec2(80, 80), b.Size)
}

// The size resolved by the resize step is a pure function of the
// constraints: equal constraints yield equal sizes.
func TestSizedByParentPurity(t *testing.T) {
	c := NewBoxConstraints(10, 70, 5, 90)
	a := newCounterBox(true)
	b := newCounterBox(true)
	a.Layout(c, false)
	b.Layout(c, false)
	assert.Equal(t, a.Size, b.Size)

	a.MarkNeedsLayout()
	a.Layout(c, false)
	assert.Equal(t, b.Size, a.Size)
	assert.Equal(t, 2, a.resizes)
}

func TestLayoutContractViolations(t *testing.T) {
	b := newCounterBox(false)
	assert.Panics(t, func() {
		b.Layout(NewBoxConstraints(10, 5, 0, 10), false) // ill-formed
	})
	assert.Panics(t, func() {
		b.Layout(nil, false)
	})

	r := newRogueBox()
	assert.Panics(t, func() {
		r.Layout(LooseBox(math32.Vec2(100, 100)), false) // size violates constraints
	})

	d := newCounterBox(false)
	d.Destroy()
	assert.Panics(t, func() {
		d.Layout(LooseBox(math32.Vec2(100, 100)), false)
	})
}

// After layout, the resolved size satisfies the given constraints.
func TestSizeSatisfiesConstraints(t *testing.T) {
	cases := []BoxConstraints{
		NewBoxConstraints(20, 30, 20, 30),
		LooseBox(math32.Vec2(5, 5)),
		TightBox(math32.Vec2(42, 17)),
	}
	for _, c := range cases {
		b := newCounterBox(false)
		b.Layout(c, false)
		assert.True(t, c.IsSatisfiedBy(b.Size), "constraints %v, size %v", c, b.Size)
	}
}

func TestMarkNeedsLayoutIdempotent(t *testing.T) {
	child := newCounterBox(false)
	p, root := newTestTree(t, false, child)
	rootLayouts, childLayouts := root.layouts, child.layouts

	child.MarkNeedsLayout()
	child.MarkNeedsLayout()
	child.MarkNeedsLayout()
	require.NoError(t, p.FlushLayout())

	assert.Equal(t, childLayouts+1, child.layouts)
	assert.Equal(t, rootLayouts, root.layouts)
	assert.False(t, child.NeedsLayout())
}

// Marking a non-boundary child dirty enqueues its nearest relayout
// boundary, transiently dirtying every node on the path between them, and
// nothing above the boundary recomputes.
func TestMarkNeedsLayoutPropagation(t *testing.T) {
	leaf := newCounterBox(false)
	mid := newCounterFrame(true) // uses child sizes: leaf is not a boundary
	require.NoError(t, mid.AddChild(leaf))
	p, root := newTestTree(t, false, mid)
	rootLayouts, midLayouts, leafLayouts := root.layouts, mid.layouts, leaf.layouts

	leaf.MarkNeedsLayout()
	assert.True(t, leaf.NeedsLayout())
	assert.True(t, mid.NeedsLayout()) // path to the boundary is dirty
	assert.False(t, root.NeedsLayout())

	require.NoError(t, p.FlushLayout())
	assert.Equal(t, midLayouts+1, mid.layouts)
	assert.Equal(t, leafLayouts+1, leaf.layouts)
	assert.Equal(t, rootLayouts, root.layouts)
	assert.False(t, leaf.NeedsLayout())
	assert.False(t, mid.NeedsLayout())
}

// A detached root with no boundary ancestor is the terminal case: marking
// it simply dirties it, and attaching registers it.
func TestMarkNeedsLayoutDetached(t *testing.T) {
	b := newCounterBox(false)
	b.MarkNeedsLayout()
	assert.True(t, b.NeedsLayout())

	p := NewPipeline()
	require.NoError(t, p.SetFrameConstraints(TightBox(math32.Vec2(10, 10))))
	require.NoError(t, p.SetRoot(b))
	require.NoError(t, p.FlushLayout())
	assert.False(t, b.NeedsLayout())
	assert.Equal(t, math32.Vec2(10, 10), b.Size)
}

func TestMarkNeedsLayoutForSizedByParentChange(t *testing.T) {
	child := newCounterBox(false)
	p, root := newTestTree(t, false, child)
	rootLayouts := root.layouts

	child.sized = true
	child.MarkNeedsLayoutForSizedByParentChange()
	require.NoError(t, p.FlushLayout())

	// both the parent and the child recomputed
	assert.Equal(t, rootLayouts+1, root.layouts)
	assert.Equal(t, 1, child.resizes)
	assert.Equal(t, fillSize(LooseBox(math32.Vec2(100, 100))), child.Size)
}

func TestMutationDuringPassRejected(t *testing.T) {
	var gotErr error
	var deferredRan bool
	var p *Pipeline
	hook := newHookBox(nil)
	hook.onLayout = func() {
		gotErr = p.Root().AsRender().AddChild(newCounterBox(false))
		p.Defer(func() { deferredRan = true })
		assert.False(t, deferredRan)
	}
	p = NewPipeline()
	root := newCounterFrame(false)
	require.NoError(t, root.AddChild(hook))
	require.NoError(t, p.SetRoot(root))
	require.NoError(t, p.SetFrameConstraints(TightBox(math32.Vec2(100, 100))))
	require.NoError(t, p.FlushLayout())

	assert.ErrorIs(t, gotErr, ErrPassActive)
	assert.True(t, deferredRan) // drained right after the pass
	assert.Len(t, root.Children, 1)
}

func TestDeferOutsidePassRunsImmediately(t *testing.T) {
	p := NewPipeline()
	ran := false
	p.Defer(func() { ran = true })
	assert.True(t, ran)
}

func TestDestroyInvalidatesDirtyEntries(t *testing.T) {
	child := newCounterBox(true) // boundary: registers itself when marked
	p, root := newTestTree(t, false, child)

	child.MarkNeedsLayout()
	require.NoError(t, root.DeleteChild(child))
	assert.True(t, child.IsDestroyed())

	layouts := child.layouts
	require.NoError(t, p.FlushLayout()) // must not visit the removed object
	assert.Equal(t, layouts, child.layouts)
}

func TestWalks(t *testing.T) {
	leaf := newCounterBox(false)
	leaf.Name = "leaf"
	mid := newCounterFrame(false)
	mid.Name = "mid"
	require.NoError(t, mid.AddChild(leaf))
	root := newCounterFrame(false)
	root.Name = "root"
	require.NoError(t, root.AddChild(mid))

	var down []string
	root.WalkDown(func(n Object) bool {
		down = append(down, n.AsRender().Name)
		return Continue
	})
	assert.Equal(t, []string{"root", "mid", "leaf"}, down)

	var up []string
	leaf.WalkUp(func(n Object) bool {
		up = append(up, n.AsRender().Name)
		return Continue
	})
	assert.Equal(t, []string{"leaf", "mid", "root"}, up)

	var pruned []string
	root.WalkDown(func(n Object) bool {
		pruned = append(pruned, n.AsRender().Name)
		return n.AsRender().Name != "mid"
	})
	assert.Equal(t, []string{"root", "mid"}, pruned)
}
