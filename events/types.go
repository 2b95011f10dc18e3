// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of pointer event. The type includes both the
// source / nature of the event and the "action" type of the event
// (e.g., MouseDown and MouseUp are separate event types). The standard
// [JavaScript Event](https://developer.mozilla.org/en-US/docs/Web/Events)
// provides the basis for most of the event type names and categories.
type Types int32

const (
	// UnknownType is the zero value, an unknown event type.
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	// See [Mouse.Button] for which. See Click for a synthetic event
	// representing a MouseDown followed by MouseUp on the same element,
	// which is often the most useful.
	MouseDown

	// MouseUp happens when a mouse button is released.
	MouseUp

	// MouseMove is sent when the mouse is moving but no button is down.
	MouseMove

	// MouseDrag is sent when the mouse is moving and a button is down.
	MouseDrag

	// Click represents a MouseDown followed by MouseUp in sequence on the
	// same element, with the same button. This is the typical event for
	// most basic user interaction.
	Click

	// Scroll is a mouse scroll wheel event.
	Scroll
)

var typeNames = map[Types]string{
	UnknownType: "UnknownType",
	MouseDown:   "MouseDown",
	MouseUp:     "MouseUp",
	MouseMove:   "MouseMove",
	MouseDrag:   "MouseDrag",
	Click:       "Click",
	Scroll:      "Scroll",
}

// String returns the name of the event type.
func (tp Types) String() string {
	if nm, ok := typeNames[tp]; ok {
		return nm
	}
	return "UnknownType"
}

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

var buttonNames = map[Buttons]string{
	NoButton: "NoButton",
	Left:     "Left",
	Middle:   "Middle",
	Right:    "Right",
}

// String returns the name of the button.
func (bt Buttons) String() string {
	if nm, ok := buttonNames[bt]; ok {
		return nm
	}
	return "NoButton"
}
