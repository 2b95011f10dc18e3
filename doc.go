// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render implements the layout and hit-testing core of a
// retained-mode render tree: a tree of render objects that compute their
// geometry under [Constraints] handed down from an ancestor, cache that
// geometry until invalidated through [Base.MarkNeedsLayout], and resolve
// which objects a pointer position hits, in visual top-to-bottom order.
//
// The [Object] protocol is generic over the constraint family: the
// two-dimensional [BoxConstraints] and the scroll-axis [SliverConstraints]
// both implement [Constraints], and slivers reduce to boxes through a
// total projection when an axis-aware ancestor lays out a box-only
// descendant. [Box] is the two-dimensional specialization, adding size
// resolution and depth-ordered hit testing.
//
// A [Pipeline] owns each tree and batches dirty state between frames:
// mutations mark objects dirty, the nearest relayout boundary is registered
// with the pipeline, and the frame driver drains the dirty sets once per
// frame with [Pipeline.FlushLayout] and [Pipeline.FlushPaint]. Everything
// is single-threaded and cooperative; structural mutation during an active
// pass is rejected and can be queued with [Pipeline.Defer] instead.
//
// Painting, text layout, event-dispatch policy, and platform input are
// external collaborators: the paint backend owns the [Base.Surface] handles
// replaced via [Pipeline.OnPaint], and the dispatcher consumes
// [HitTestResult] entries and delivers [cogentcore.org/render/events]
// values to [Object.HandleEvent] in the order it decides.
package render
