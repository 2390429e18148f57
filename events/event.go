// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"cogentcore.org/modelview/math32"
)

// Event is the interface for all input events.
type Event interface {
	// Type returns the type of event.
	Type() Types

	// HasPos returns true if the event has a pointer position.
	HasPos() bool

	// Pos returns the pointer position, in the local coordinates
	// of the receiving view, for events that have one.
	Pos() math32.Vector2

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as having been processed,
	// so that it is not passed to further listeners.
	SetHandled()
}

// Base is the base type for events. It implements the [Event] interface.
type Base struct {
	// Typ is the type of event.
	Typ Types

	// Where is the event location, in the coordinates of the receiving view.
	Where math32.Vector2

	// handled indicates that the event has been handled and
	// should not be further processed.
	handled bool
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) HasPos() bool {
	return false
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

// NewBase returns a new event of the given type with no other data,
// as used for [Focus] and [FocusLost].
func NewBase(typ Types) *Base {
	return &Base{Typ: typ}
}
