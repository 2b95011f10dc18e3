// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/render/events"
)

// Object is the interface that all render objects satisfy. The core
// functionality is defined on [Base], which all concrete node kinds must
// embed; this interface contains only the protocol points that kinds
// override. Call [Object.AsRender] to get the [Base] of an Object.
type Object interface {
	// AsRender returns the [Base] of this Object. Most core render tree
	// functionality is implemented on [Base].
	AsRender() *Base

	// SizedByParent reports whether the constraints are the only input to
	// the sizing of this object, with children having no impact. Returning
	// false is always correct; returning true enables resolving the size in
	// [Object.PerformResize] without visiting children, and skipping that
	// work entirely when the constraints have not changed. The value must
	// be effectively constant for a given object: if a kind ever changes
	// it, it must call [Base.MarkNeedsLayoutForSizedByParentChange] at the
	// transition, since both the parent and the cached relayout boundary
	// depend on the previous value.
	SizedByParent() bool

	// PerformResize resolves this object's size purely from the given
	// constraints. It is only called when [Object.SizedByParent] is true,
	// before [Object.PerformLayout] in the same pass.
	PerformResize(c Constraints)

	// PerformLayout does the kind-specific layout work. Do not call it
	// directly: call [Base.Layout] instead, which only invokes it when
	// there is work to do. If [Object.SizedByParent] is false, this must
	// both resolve the object's own size and lay out every child, passing
	// each child the sub-constraints computed for it; if true, it must not
	// change the object's size, which was already resolved by
	// [Object.PerformResize]. A kind that uses a child's resolved size for
	// its own sizing must pass parentUsesSize to [Base.Layout] at the call
	// site that lays out that child, so that the child's future size
	// changes dirty this object too.
	PerformLayout(c Constraints)

	// MeetsConstraints reports whether the geometry this object resolved
	// during layout satisfies the given constraints. [Base.Layout] checks
	// it after [Object.PerformLayout] returns and panics if it fails.
	MeetsConstraints(c Constraints) bool

	// IsRepaintBoundary reports whether this object repaints separately
	// from its parent, isolating paint invalidation below it with its own
	// cached paint surface. The value must not change over the lifetime of
	// the object; it is declared by the concrete kind.
	IsRepaintBoundary() bool

	// HandleEvent handles a pointer event that was matched to this object
	// during hit testing, with the entry recording the local position and
	// transform at the time of the hit. It does nothing by default.
	HandleEvent(e events.Event, entry *HitTestEntry)

	// Destroy recursively destroys this object and all of its children.
	// Kinds can implement it to release kind-specific resources; if they
	// do, they must call [Base.Destroy] at the end.
	Destroy()
}

// Continue and Break are return values for tree walking functions,
// reporting whether the walk should descend into the current node's
// children.
const (
	Continue = true
	Break    = false
)

// Base implements the [Object] interface and provides the core render tree
// functionality: tree structure, dirty marking, and the layout protocol.
// All concrete node kinds must embed it and must be initialized with
// [Base.Init] before use, which constructors such as [NewFrame] do.
type Base struct {
	// Name is an optional name for this object, used in paths and
	// diagnostic messages.
	Name string

	// This is the value of this object as its true underlying type,
	// allowing methods defined on Base to call the protocol points
	// overridden by higher-level kinds. It is set to nil when the object
	// is destroyed.
	This Object

	// Parent is the parent of this object. It is a back-reference only,
	// used for dirty propagation and upward walks: children are owned by
	// their parent's Children list, never the other way around.
	Parent Object

	// Children is the list of children of this object, in paint order.
	// Modify it only through [Base.AddChild], [Base.InsertChild], and
	// [Base.DeleteChild] so that attachment and dirty state stay correct.
	Children []Object

	// Surface is the opaque paint-output handle for repaint boundaries.
	// The paint collaborator owns it and replaces it on each repaint via
	// [Pipeline.OnPaint]; the core never inspects it.
	Surface any

	// Owner is the pipeline this object is attached to, or nil while
	// detached. It is set on the whole subtree when a tree is rooted with
	// [Pipeline.SetRoot] and cleared on removal.
	Owner *Pipeline

	// depth is the number of ancestors, maintained on attach and used by
	// the pipeline to order dirty boundaries top-down.
	depth int

	// needsLayout is the dirty-layout flag: set by [Base.MarkNeedsLayout],
	// cleared by a successful [Base.Layout]. No other transitions.
	needsLayout bool

	// needsPaint is the dirty-paint flag, scoped by repaint boundaries.
	needsPaint bool

	// inDirtyList and inPaintList record membership in the pipeline's
	// dirty sets, making repeated marking a no-op.
	inDirtyList bool
	inPaintList bool

	// relayoutBoundary is the nearest object at or above this one whose
	// layout can be recomputed without involving its own parent. It is
	// recomputed on every [Base.Layout].
	relayoutBoundary Object

	// constraints is the constraints this object was last laid out with,
	// nil before the first layout.
	constraints Constraints

	// parentUsesSize records whether the parent declared, at the call site
	// of the last [Base.Layout], that it uses this object's resolved size.
	parentUsesSize bool
}

// Init initializes the object, setting [Base.This] to the given full value
// of the object and marking it as needing layout and paint. Constructors
// such as [NewRect] call it; call it directly only when embedding a kind in
// a new type.
func (b *Base) Init(this Object) {
	if b.This != nil {
		return
	}
	b.This = this
	b.needsLayout = true
	b.needsPaint = true
}

// AsRender returns this [Base].
func (b *Base) AsRender() *Base { return b }

// SizedByParent returns false by default.
func (b *Base) SizedByParent() bool { return false }

// PerformResize does nothing by default; kinds whose [Object.SizedByParent]
// is true must implement it.
func (b *Base) PerformResize(c Constraints) {}

// PerformLayout does nothing by default.
func (b *Base) PerformLayout(c Constraints) {}

// MeetsConstraints returns true by default; geometry-bearing kinds such as
// [BoxBase] override it.
func (b *Base) MeetsConstraints(c Constraints) bool { return true }

// IsRepaintBoundary returns false by default.
func (b *Base) IsRepaintBoundary() bool { return false }

// HandleEvent does nothing by default.
func (b *Base) HandleEvent(e events.Event, entry *HitTestEntry) {}

// NeedsLayout reports whether this object is marked as needing layout.
func (b *Base) NeedsLayout() bool { return b.needsLayout }

// NeedsPaint reports whether this object is marked as needing paint.
func (b *Base) NeedsPaint() bool { return b.needsPaint }

// Constraints returns the constraints this object was last laid out with,
// or nil if it has never been laid out.
func (b *Base) Constraints() Constraints { return b.constraints }

// IsDestroyed reports whether this object has been destroyed.
func (b *Base) IsDestroyed() bool { return b.This == nil }

// name returns the name of this object for paths and messages.
func (b *Base) name() string {
	if b.Name != "" {
		return b.Name
	}
	if b.This == nil {
		return "(destroyed)"
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", b.This), "*")
}

// Path returns the slash-delimited path to this object from its root.
func (b *Base) Path() string {
	if b.Parent != nil {
		return b.Parent.AsRender().Path() + "/" + b.name()
	}
	return "/" + b.name()
}

func (b *Base) String() string { return b.name() }

// WalkDown calls the given function on this object and then recursively on
// all of its children in paint order. Return [Continue] to descend into a
// node's children and [Break] to prune that subtree.
func (b *Base) WalkDown(fun func(n Object) bool) {
	if b.This == nil {
		return
	}
	if !fun(b.This) {
		return
	}
	for _, child := range b.Children {
		child.AsRender().WalkDown(fun)
	}
}

// WalkUp calls the given function on this object and then each of its
// parents up to the root, stopping early if the function returns [Break].
func (b *Base) WalkUp(fun func(n Object) bool) {
	cur := b.This
	for cur != nil {
		if !fun(cur) {
			return
		}
		cur = cur.AsRender().Parent
	}
}

// canMutate returns [ErrPassActive] if this object is attached to a
// pipeline that currently has a pass in flight.
func (b *Base) canMutate() error {
	if b.Owner != nil && b.Owner.InPass() {
		return fmt.Errorf("%w: %s", ErrPassActive, b.Path())
	}
	return nil
}

// AddChild adds the given child to the end of this object's children. The
// child must be initialized and must not already have a parent. Returns
// [ErrPassActive] if a pass is in flight; use [Pipeline.Defer] for
// mutations requested during a pass.
func (b *Base) AddChild(child Object) error {
	return b.InsertChild(child, len(b.Children))
}

// InsertChild inserts the given child at the given index in this object's
// children. See [Base.AddChild].
func (b *Base) InsertChild(child Object, at int) error {
	if err := b.canMutate(); err != nil {
		return err
	}
	if b.This == nil {
		return fmt.Errorf("%w: AddChild on destroyed object", ErrDetached)
	}
	cb := child.AsRender()
	if cb.This == nil {
		return fmt.Errorf("render: child is not initialized; use a New constructor or call Init")
	}
	if cb.Parent != nil {
		return fmt.Errorf("render: child %s already has a parent", cb.Path())
	}
	if at < 0 || at > len(b.Children) {
		return fmt.Errorf("render: insert index %d out of range", at)
	}
	b.Children = slices.Insert(b.Children, at, child)
	cb.Parent = b.This
	if b.Owner != nil {
		cb.attach(b.Owner, b.depth+1)
	}
	b.MarkNeedsLayout()
	return nil
}

// DeleteChild removes the given child from this object's children and
// destroys it along with its whole subtree. Any pending dirty-set entries
// for the removed objects are invalidated and ignored by the pipeline.
func (b *Base) DeleteChild(child Object) error {
	if err := b.canMutate(); err != nil {
		return err
	}
	idx := slices.Index(b.Children, child)
	if idx < 0 {
		return fmt.Errorf("render: %s is not a child of %s", child.AsRender().name(), b.Path())
	}
	b.Children = slices.Delete(b.Children, idx, idx+1)
	child.AsRender().Parent = nil
	child.Destroy()
	b.MarkNeedsLayout()
	return nil
}

// Destroy implements [Object.Destroy]: it recursively destroys this object
// and all of its children, detaching them from the pipeline. Destroyed
// objects still present in a dirty set are skipped when it is flushed.
func (b *Base) Destroy() {
	if b.This == nil {
		return
	}
	for _, child := range b.Children {
		child.AsRender().Parent = nil
		child.Destroy()
	}
	b.Children = nil
	b.Parent = nil
	b.Owner = nil
	b.relayoutBoundary = nil
	b.This = nil
}

// attach recursively attaches this subtree to the given pipeline at the
// given depth, re-registering any pending dirty state with its owner.
func (b *Base) attach(owner *Pipeline, depth int) {
	b.Owner = owner
	b.depth = depth
	if b.needsLayout {
		// re-fire so the mark is routed now that parent links are valid
		b.needsLayout = false
		b.MarkNeedsLayout()
	}
	if b.needsPaint {
		b.needsPaint = false
		b.MarkNeedsPaint()
	}
	for _, child := range b.Children {
		child.AsRender().attach(owner, depth+1)
	}
}

// detach recursively detaches this subtree from its pipeline. Dirty flags
// are kept so that reattaching re-registers them.
func (b *Base) detach() {
	b.Owner = nil
	for _, child := range b.Children {
		child.AsRender().detach()
	}
}

// MarkNeedsLayout marks this object's layout information as dirty and
// either registers it with its [Pipeline] or defers to the parent,
// depending on whether this object is a relayout boundary or not.
//
// Rather than eagerly updating layout in response to writes, layout is
// marked dirty, batching the work so that multiple sequential writes are
// coalesced into one layout pass driven by [Pipeline.FlushLayout]. Calling
// this repeatedly before the next flush has the same effect as calling it
// once.
//
// If the parent declared that it uses this object's size, this object is
// not a relayout boundary and the mark propagates to the parent: both need
// recomputation, and only the boundary is registered with the pipeline.
// A detached root with no boundary ancestor is the terminal case: it is
// simply marked dirty, and registered if it has an owner.
func (b *Base) MarkNeedsLayout() {
	if b.This == nil || b.needsLayout {
		return
	}
	b.needsLayout = true
	switch {
	case b.relayoutBoundary == nil && b.Parent != nil:
		// boundary not yet known (never laid out): propagate up
		b.Parent.AsRender().MarkNeedsLayout()
	case b.relayoutBoundary != nil && b.relayoutBoundary != b.This:
		b.Parent.AsRender().MarkNeedsLayout()
	default:
		if b.Owner != nil {
			b.Owner.requestLayout(b.This)
		}
	}
}

// MarkNeedsLayoutForSizedByParentChange marks this object as needing layout
// in the specific case where its [Object.SizedByParent] value has changed.
// Both this object and its parent must be recomputed, since the parent's
// cached treatment of this object depends on the previous value.
func (b *Base) MarkNeedsLayoutForSizedByParentChange() {
	b.MarkNeedsLayout()
	if b.Parent != nil {
		b.Parent.AsRender().MarkNeedsLayout()
	}
}

// MarkNeedsPaint marks this object as needing paint and registers the
// nearest repaint boundary at or above it with the pipeline. Paint
// invalidation below a repaint boundary never forces ancestors to repaint.
// Idempotent before the next [Pipeline.FlushPaint].
func (b *Base) MarkNeedsPaint() {
	if b.This == nil || b.needsPaint {
		return
	}
	b.needsPaint = true
	switch {
	case b.This.IsRepaintBoundary():
		if b.Owner != nil {
			b.Owner.requestPaint(b.This)
		}
	case b.Parent != nil:
		b.Parent.AsRender().MarkNeedsPaint()
	default:
		// unboundaried root repaints as a whole
		if b.Owner != nil {
			b.Owner.requestPaint(b.This)
		}
	}
}

// Layout lays this object out with the given constraints, which must be
// well-formed (panics otherwise: a contract violation, not a recoverable
// error). parentUsesSize declares that the caller uses this object's
// resolved size in its own layout, so that future size changes here dirty
// the caller as well; parents must pass it at the call site that lays out
// the child, not discover the dependency after the fact.
//
// If this object is clean and the constraints are equal to the ones it was
// last laid out with, layout is skipped entirely. Otherwise the size is
// resolved ([Object.PerformResize] for sized-by-parent kinds, then
// [Object.PerformLayout]), the resolved geometry is checked against the
// constraints via [Object.MeetsConstraints] (panics on violation), the
// dirty-layout flag is cleared, and the object is marked as needing paint.
//
// Layout is depth-first and synchronous: it returns only after every child
// laid out by [Object.PerformLayout] has returned.
func (b *Base) Layout(c Constraints, parentUsesSize bool) {
	if b.This == nil {
		panic("render: Layout called on destroyed object")
	}
	if c == nil || !c.WellFormed() {
		panic(fmt.Sprintf("render: %s given ill-formed constraints %v", b.Path(), c))
	}
	rb := b.This
	if parentUsesSize && !b.This.SizedByParent() && !c.Tight() && b.Parent != nil {
		rb = b.Parent.AsRender().relayoutBoundary
	}
	if !b.needsLayout && c == b.constraints && rb == b.relayoutBoundary {
		return
	}
	b.constraints = c
	b.parentUsesSize = parentUsesSize
	b.relayoutBoundary = rb
	if b.This.SizedByParent() {
		b.This.PerformResize(c)
	}
	b.This.PerformLayout(c)
	if !b.This.MeetsConstraints(c) {
		panic(fmt.Sprintf("render: %s resolved geometry violating its constraints %v", b.Path(), c))
	}
	b.needsLayout = false
	b.MarkNeedsPaint()
}
