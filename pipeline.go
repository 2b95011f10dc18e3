// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/render/math32"
)

// phase is the pass currently in flight on a [Pipeline].
type phase int32

const (
	phaseIdle phase = iota
	phaseLayout
	phasePaint
	phaseHitTest
)

// Pipeline owns one render tree and batches its dirty state between frames:
// relayout boundaries needing layout and repaint boundaries needing paint,
// each deduplicated and drained by the flush methods that the frame driver
// calls once per visual frame.
//
// A Pipeline is an explicit context object, not ambient state: multiple
// independent trees, each with its own Pipeline, can coexist (e.g. in
// tests). It is strictly single-threaded and cooperative: exactly one
// layout or hit-test pass may be in flight at a time, flushes and marks
// must all come from the same goroutine, and structural tree mutation
// during an active pass is rejected with [ErrPassActive] rather than
// silently corrupting the dirty sets. Use [Pipeline.Defer] to queue such
// mutations; the queue is drained immediately after the active pass
// completes.
type Pipeline struct {
	// OnPaint is the hook for the paint collaborator: called by
	// [Pipeline.FlushPaint] for each repaint boundary needing paint, with
	// geometry guaranteed current, and its return value replaces the
	// boundary's [Base.Surface] handle. May be nil.
	OnPaint func(n Object) any

	root        Object
	frame       Constraints
	dirtyLayout []Object
	dirtyPaint  []Object
	deferred    []func()
	phase       phase
}

// NewPipeline returns a new [Pipeline] with no tree attached.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Root returns the root of the tree this pipeline owns, or nil if no tree
// is attached.
func (p *Pipeline) Root() Object { return p.root }

// InPass reports whether a layout, paint, or hit-test pass is currently in
// flight.
func (p *Pipeline) InPass() bool { return p.phase != phaseIdle }

// SetRoot attaches the tree rooted at the given object to this pipeline.
// The whole subtree is attached, and any dirty state it accumulated while
// detached is registered. The root must be initialized and parentless, and
// the pipeline must not already have a root.
func (p *Pipeline) SetRoot(root Object) error {
	if p.InPass() {
		return fmt.Errorf("%w: SetRoot", ErrPassActive)
	}
	if p.root != nil {
		return fmt.Errorf("render: pipeline already has root %s; ClearRoot first", p.root.AsRender().Path())
	}
	rb := root.AsRender()
	if rb.This == nil {
		return fmt.Errorf("render: root is not initialized; use a New constructor or call Init")
	}
	if rb.Parent != nil {
		return fmt.Errorf("render: root %s has a parent", rb.Path())
	}
	p.root = root
	rb.attach(p, 0)
	return nil
}

// ClearRoot detaches the tree from this pipeline without destroying it, and
// drops all pending dirty entries. The tree keeps its dirty flags and
// re-registers them if rooted again.
func (p *Pipeline) ClearRoot() error {
	if p.InPass() {
		return fmt.Errorf("%w: ClearRoot", ErrPassActive)
	}
	if p.root == nil {
		return nil
	}
	p.root.AsRender().detach()
	p.root = nil
	for _, n := range p.dirtyLayout {
		n.AsRender().inDirtyList = false
	}
	for _, n := range p.dirtyPaint {
		n.AsRender().inPaintList = false
	}
	p.dirtyLayout = nil
	p.dirtyPaint = nil
	return nil
}

// SetFrameConstraints sets the constraints the root is laid out with on
// each [Pipeline.FlushLayout], marking the root as needing layout. The
// constraints must be well-formed (panics otherwise).
func (p *Pipeline) SetFrameConstraints(c Constraints) error {
	if c == nil || !c.WellFormed() {
		panic(fmt.Sprintf("render: ill-formed frame constraints %v", c))
	}
	if p.InPass() {
		return fmt.Errorf("%w: SetFrameConstraints", ErrPassActive)
	}
	p.frame = c
	if p.root != nil {
		p.root.AsRender().MarkNeedsLayout()
	}
	return nil
}

// Defer queues the given function to run as soon as no pass is in flight:
// immediately after the current pass completes, or immediately if none is
// active. It is the mechanism for tree mutations requested from within
// [Object.PerformLayout] or event handling during a pass.
func (p *Pipeline) Defer(fun func()) {
	if !p.InPass() {
		fun()
		return
	}
	p.deferred = append(p.deferred, fun)
}

// drainDeferred runs queued deferred work, including work queued by the
// deferred functions themselves. Only called with no pass in flight.
func (p *Pipeline) drainDeferred() {
	for len(p.deferred) > 0 {
		fns := p.deferred
		p.deferred = nil
		for _, fun := range fns {
			fun()
		}
	}
}

// requestLayout registers the given object in the dirty-layout set.
// Already-registered objects are not added again.
func (p *Pipeline) requestLayout(n Object) {
	nb := n.AsRender()
	if nb.inDirtyList {
		return
	}
	nb.inDirtyList = true
	p.dirtyLayout = append(p.dirtyLayout, n)
}

// requestPaint registers the given object in the dirty-paint set.
func (p *Pipeline) requestPaint(n Object) {
	nb := n.AsRender()
	if nb.inPaintList {
		return
	}
	nb.inPaintList = true
	p.dirtyPaint = append(p.dirtyPaint, n)
}

// FlushLayout drains the dirty-layout set, laying out each dirty relayout
// boundary in depth order (shallowest first) with the constraints it was
// last laid out with, and the root with the frame constraints. Entries
// produced during the drain by dependent parents are processed before the
// call returns, and the set is fully drained on return. Entries for
// objects that were removed or destroyed after being marked are skipped.
//
// Returns [ErrDetached] if no tree is attached and [ErrPassActive] if
// called re-entrantly from within a pass.
func (p *Pipeline) FlushLayout() error {
	if p.InPass() {
		return fmt.Errorf("%w: FlushLayout", ErrPassActive)
	}
	if p.root == nil {
		return fmt.Errorf("%w: FlushLayout", ErrDetached)
	}
	p.phase = phaseLayout
	defer func() {
		p.phase = phaseIdle
		p.drainDeferred()
	}()
	for len(p.dirtyLayout) > 0 {
		list := p.dirtyLayout
		p.dirtyLayout = nil
		slices.SortFunc(list, func(a, b Object) int {
			return cmp.Compare(a.AsRender().depth, b.AsRender().depth)
		})
		for _, n := range list {
			nb := n.AsRender()
			nb.inDirtyList = false
			if nb.This == nil || nb.Owner != p {
				// removed from the tree after being marked dirty
				continue
			}
			if !nb.needsLayout {
				continue
			}
			c, parentUsesSize := nb.constraints, nb.parentUsesSize
			if n == p.root {
				c, parentUsesSize = p.frame, false
			}
			if c == nil {
				slog.Warn("render: dirty object has no constraints to lay out with; skipping",
					"object", nb.Path())
				nb.needsLayout = false
				continue
			}
			nb.Layout(c, parentUsesSize)
		}
	}
	return nil
}

// FlushPaint drains the dirty-paint set, visiting each repaint boundary
// needing paint in reverse depth order (deepest first) so that nested
// boundaries have current surfaces before their ancestors repaint. For
// each, it clears the paint flags of the subtree down to (not through) any
// nested repaint boundaries, then invokes [Pipeline.OnPaint] and replaces
// the boundary's [Base.Surface] with its result.
//
// The layout dirty set must already be empty: geometry is guaranteed
// current before paint is invoked, and flushing paint with pending layout
// returns [ErrDirtyGeometry].
func (p *Pipeline) FlushPaint() error {
	if p.InPass() {
		return fmt.Errorf("%w: FlushPaint", ErrPassActive)
	}
	if p.root == nil {
		return fmt.Errorf("%w: FlushPaint", ErrDetached)
	}
	if len(p.dirtyLayout) > 0 {
		return fmt.Errorf("%w: FlushPaint with pending layout; FlushLayout first", ErrDirtyGeometry)
	}
	p.phase = phasePaint
	defer func() {
		p.phase = phaseIdle
		p.drainDeferred()
	}()
	list := p.dirtyPaint
	p.dirtyPaint = nil
	slices.SortFunc(list, func(a, b Object) int {
		return cmp.Compare(b.AsRender().depth, a.AsRender().depth)
	})
	for _, n := range list {
		nb := n.AsRender()
		nb.inPaintList = false
		if nb.This == nil || nb.Owner != p || !nb.needsPaint {
			continue
		}
		p.paintNode(n)
	}
	return nil
}

// paintNode clears the paint flags of the subtree rooted at the given
// repaint boundary, stopping at nested repaint boundaries (their paint
// state is isolated and flushed separately), and repaints it via OnPaint.
func (p *Pipeline) paintNode(n Object) {
	nb := n.AsRender()
	nb.WalkDown(func(k Object) bool {
		if k != n && k.IsRepaintBoundary() {
			return Break
		}
		k.AsRender().needsPaint = false
		return Continue
	})
	if p.OnPaint != nil {
		nb.Surface = p.OnPaint(n)
	}
}

// HitTest hit tests the tree against the given position in the root's
// coordinate space, returning entries ordered innermost first. The pass is
// read-only: partially built results are simply discarded on error. It
// returns [ErrDetached] with no tree attached, [ErrPassActive] from within
// a pass, [ErrDirtyGeometry] if layout is pending, and an error if the
// root is not a [Box].
func (p *Pipeline) HitTest(pos math32.Vector2) (*HitTestResult, error) {
	if p.InPass() {
		return nil, fmt.Errorf("%w: HitTest", ErrPassActive)
	}
	if p.root == nil {
		return nil, fmt.Errorf("%w: HitTest", ErrDetached)
	}
	root, ok := p.root.(Box)
	if !ok {
		return nil, fmt.Errorf("render: root %s does not support box hit testing", p.root.AsRender().Path())
	}
	if len(p.dirtyLayout) > 0 || p.root.AsRender().needsLayout {
		return nil, fmt.Errorf("%w: HitTest with pending layout; FlushLayout first", ErrDirtyGeometry)
	}
	p.phase = phaseHitTest
	defer func() {
		p.phase = phaseIdle
		p.drainDeferred()
	}()
	r := NewHitTestResult()
	root.HitTest(r, pos)
	return r, nil
}
