// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/render"
	"cogentcore.org/render/events"
	"cogentcore.org/render/math32"
)

func TestDimResolve(t *testing.T) {
	tests := []struct {
		name     string
		d        Dim
		min, max float32
		want     float32
	}{
		{"auto is min", Dim{}, 10, 100, 10},
		{"points", Points(50), 0, 100, 50},
		{"points clamped low", Points(5), 10, 100, 10},
		{"points clamped high", Points(500), 0, 100, 100},
		{"percent of max", Percent(0.5), 0, 100, 50},
		{"percent clamped", Percent(2), 0, 100, 100},
		{"percent unbounded falls back to min", Percent(0.5), 10, math32.Infinity, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.Resolve(tt.min, tt.max))
		})
	}
}

// A proportional child resolves against the range its parent hands down,
// and the child's result never feeds back into the parent's size.
func TestRectPercentInFrame(t *testing.T) {
	root := NewFrame()
	root.Width, root.Height = Points(100), Points(100)
	child := NewRect()
	child.Width = Percent(0.5) // height stays auto
	require.NoError(t, root.AddChild(child))

	p := NewPipeline()
	require.NoError(t, p.SetRoot(root))
	require.NoError(t, p.SetFrameConstraints(NewBoxConstraints(0, 100, 0, 100)))
	require.NoError(t, p.FlushLayout())

	assert.Equal(t, math32.Vec2(100, 100), root.Size)
	assert.Equal(t, math32.Vec2(50, 0), child.Size)
}

func TestFrameFitContent(t *testing.T) {
	frame := NewFrame()
	frame.FitContent = true

	a := NewRect()
	a.Width, a.Height = Points(30), Points(10)
	b := NewRect()
	b.Width, b.Height = Points(20), Points(20)
	b.At = math32.Vec2(5, 40)
	require.NoError(t, frame.AddChild(a))
	require.NoError(t, frame.AddChild(b))

	p := NewPipeline()
	require.NoError(t, p.SetRoot(frame))
	require.NoError(t, p.SetFrameConstraints(NewBoxConstraints(0, 200, 0, 200)))
	require.NoError(t, p.FlushLayout())
	assert.Equal(t, math32.Vec2(30, 60), frame.Size)

	// the frame declared the child-size dependency, so growing a child
	// dirties the frame too
	a.Width = Points(70)
	a.MarkNeedsLayout()
	assert.True(t, frame.NeedsLayout())
	require.NoError(t, p.FlushLayout())
	assert.Equal(t, math32.Vec2(70, 60), frame.Size)

	// content never grows it past its constraints
	a.Width = Points(500)
	a.MarkNeedsLayout()
	require.NoError(t, p.FlushLayout())
	assert.Equal(t, math32.Vec2(200, 60), frame.Size)
}

func TestFiller(t *testing.T) {
	filler := NewFiller()
	assert.True(t, filler.SizedByParent())

	root := NewFrame()
	root.Width, root.Height = Points(100), Points(100)
	require.NoError(t, root.AddChild(filler))

	p := NewPipeline()
	require.NoError(t, p.SetRoot(root))
	require.NoError(t, p.SetFrameConstraints(NewBoxConstraints(0, 100, 0, 100)))
	require.NoError(t, p.FlushLayout())
	assert.Equal(t, math32.Vec2(100, 100), filler.Size)

	// unbounded axes fall back to the minimum
	solo := NewFiller()
	solo.Layout(NewBoxConstraints(20, math32.Infinity, 0, 50), false)
	assert.Equal(t, math32.Vec2(20, 50), solo.Size)
}

// dispatch delivers an event along a hit-test path innermost first,
// stopping once an object marks it handled, the way an event-dispatch
// collaborator would.
func dispatch(r *HitTestResult, e events.Event) {
	for i := range r.Entries {
		entry := &r.Entries[i]
		entry.Object.HandleEvent(e, entry)
		if e.IsHandled() {
			return
		}
	}
}

func TestRectEvents(t *testing.T) {
	var got events.Event
	var at math32.Vector2
	rect := NewRect()
	rect.Width, rect.Height = Points(60), Points(60)
	rect.At = math32.Vec2(20, 20)
	rect.OnEvent = func(e events.Event, entry *HitTestEntry) {
		got = e
		at = entry.Position
		e.SetHandled()
	}

	root := NewFrame()
	root.Width, root.Height = Points(100), Points(100)
	require.NoError(t, root.AddChild(rect))

	p := NewPipeline()
	require.NoError(t, p.SetRoot(root))
	require.NoError(t, p.SetFrameConstraints(NewBoxConstraints(0, 100, 0, 100)))
	require.NoError(t, p.FlushLayout())

	r, err := p.HitTest(math32.Vec2(50, 30))
	require.NoError(t, err)
	require.NotEmpty(t, r.Entries)

	ev := events.NewMouse(events.MouseDown, events.Left, math32.Vec2(50, 30))
	dispatch(r, ev)
	assert.Equal(t, events.Event(ev), got)
	assert.Equal(t, math32.Vec2(30, 10), at) // local to the rect
	assert.True(t, ev.IsHandled())
}

func newViewportTree(t *testing.T) (*Pipeline, *Viewport, *Rect) {
	t.Helper()
	v := NewViewport(Vertical)
	content := NewRect()
	content.Width, content.Height = Points(100), Points(300)
	require.NoError(t, v.AddChild(content))

	p := NewPipeline()
	require.NoError(t, p.SetRoot(v))
	require.NoError(t, p.SetFrameConstraints(TightBox(math32.Vec2(100, 100))))
	require.NoError(t, p.FlushLayout())
	return p, v, content
}

func TestViewportLayout(t *testing.T) {
	p, v, content := newViewportTree(t)
	assert.Equal(t, math32.Vec2(100, 100), v.Size) // independent of content
	assert.Equal(t, math32.Vec2(100, 300), content.Size)
	assert.Equal(t, math32.Vec2(0, 0), content.Pos)

	v.ScrollBy(50)
	assert.Equal(t, float32(50), v.ScrollOffset())
	assert.True(t, v.NeedsLayout())
	require.NoError(t, p.FlushLayout())
	assert.Equal(t, math32.Vec2(0, -50), content.Pos)

	// clamped at zero
	v.ScrollBy(-500)
	assert.Equal(t, float32(0), v.ScrollOffset())
	require.NoError(t, p.FlushLayout())
	assert.Equal(t, math32.Vec2(0, 0), content.Pos)
}

func TestViewportScrollEvent(t *testing.T) {
	p, v, content := newViewportTree(t)

	r, err := p.HitTest(math32.Vec2(50, 10))
	require.NoError(t, err)
	require.Len(t, r.Entries, 2)
	assert.Equal(t, Object(content), r.Entries[0].Object)
	assert.Equal(t, Object(v), r.Entries[1].Object)

	// the content rect has no handler, so the scroll bubbles to the viewport
	ev := events.NewScroll(math32.Vec2(50, 10), math32.Vec2(0, 25))
	dispatch(r, ev)
	assert.True(t, ev.IsHandled())
	assert.Equal(t, float32(25), v.ScrollOffset())

	require.NoError(t, p.FlushLayout())
	assert.Equal(t, math32.Vec2(0, -25), content.Pos)
}

func TestViewportHorizontal(t *testing.T) {
	v := NewViewport(Horizontal)
	content := NewRect()
	content.Width, content.Height = Points(300), Points(100)
	require.NoError(t, v.AddChild(content))

	p := NewPipeline()
	require.NoError(t, p.SetRoot(v))
	require.NoError(t, p.SetFrameConstraints(TightBox(math32.Vec2(100, 100))))
	require.NoError(t, p.FlushLayout())
	assert.Equal(t, math32.Vec2(300, 100), content.Size)

	v.ScrollBy(40)
	require.NoError(t, p.FlushLayout())
	assert.Equal(t, math32.Vec2(-40, 0), content.Pos)
}
