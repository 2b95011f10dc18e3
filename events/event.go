// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides the pointer event types delivered to render
// objects matched during hit testing. The event-dispatch collaborator owns
// delivery policy (capture vs. bubble order); this package only defines the
// event values themselves.
package events

import (
	"time"

	"cogentcore.org/render/math32"
)

// Event is the interface for pointer events delivered to render objects.
type Event interface {
	// Type returns the type of the event.
	Type() Types

	// HasPos returns whether the event has a position associated with it.
	HasPos() bool

	// Pos returns the position of the event in the global (root) coordinate
	// space of the render tree it was dispatched into.
	Pos() math32.Vector2

	// IsHandled returns whether the event has been handled.
	// Handled events are not delivered to any further entries
	// on the hit-test path by the dispatcher.
	IsHandled() bool

	// SetHandled marks the event as handled.
	SetHandled()

	// Time returns the time at which the event was generated.
	Time() time.Time
}

// Base is the base type for events, implementing the [Event] interface.
// Concrete event types embed it and set the relevant fields.
type Base struct {
	// Typ is the type of the event.
	Typ Types

	// Where is the position of the event in the global coordinate space.
	Where math32.Vector2

	// Tm is the time at which the event was generated.
	Tm time.Time

	handled bool
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) HasPos() bool {
	return true
}

func (ev *Base) Pos() math32.Vector2 {
	return ev.Where
}

func (ev *Base) IsHandled() bool {
	return ev.handled
}

func (ev *Base) SetHandled() {
	ev.handled = true
}

func (ev *Base) Time() time.Time {
	return ev.Tm
}
