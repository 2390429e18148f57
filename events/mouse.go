// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/modelview/math32"
)

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

// Mouse is a basic mouse event for all mouse events except Scroll
type Mouse struct {
	Base

	// Button is the button that was pressed or released.
	Button Buttons
}

// NewMouse returns a new [Mouse] event of the given type.
func NewMouse(typ Types, but Buttons, where math32.Vector2) *Mouse {
	ev := &Mouse{}
	ev.Typ = typ
	ev.Button = but
	ev.Where = where
	return ev
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v}", ev.Type(), ev.Button, ev.Where)
}

func (ev *Mouse) HasPos() bool {
	return true
}

// MouseScroll is for mouse scrolling, recording the delta of the scroll
type MouseScroll struct {
	Mouse

	// Delta is the amount of scrolling in each axis, in view units.
	Delta math32.Vector2
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v}", ev.Type(), ev.Delta, ev.Where)
}

// NewScroll returns a new [MouseScroll] event.
func NewScroll(where, delta math32.Vector2) *MouseScroll {
	ev := &MouseScroll{}
	ev.Typ = Scroll
	ev.Where = where
	ev.Delta = delta
	return ev
}
