// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"time"

	"cogentcore.org/render/math32"
)

// Mouse is a basic mouse event for all mouse events except [Scroll].
type Mouse struct {
	Base

	// Button is the mouse button the event is for.
	Button Buttons
}

// NewMouse returns a new [Mouse] event of the given type, for the given
// button, at the given position in the global coordinate space.
func NewMouse(typ Types, but Buttons, where math32.Vector2) *Mouse {
	ev := &Mouse{}
	ev.Typ = typ
	ev.Button = but
	ev.Where = where
	ev.Tm = time.Now()
	return ev
}

// NewMouseMove returns a new [MouseMove] event at the given position.
func NewMouseMove(where math32.Vector2) *Mouse {
	return NewMouse(MouseMove, NoButton, where)
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Time: %v}", ev.Type(), ev.Button, ev.Where, ev.Time().Format("04:05"))
}

// MouseScroll is a mouse scroll wheel event.
type MouseScroll struct {
	Base

	// Delta is the amount of scrolling in each axis.
	Delta math32.Vector2
}

// NewScroll returns a new [Scroll] event at the given position,
// with the given scroll delta.
func NewScroll(where, delta math32.Vector2) *MouseScroll {
	ev := &MouseScroll{}
	ev.Typ = Scroll
	ev.Where = where
	ev.Delta = delta
	ev.Tm = time.Now()
	return ev
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v, Time: %v}", ev.Type(), ev.Delta, ev.Where, ev.Time().Format("04:05"))
}
