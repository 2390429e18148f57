// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the pointer and keyboard events that views
// consume, and the [Listeners] used to dispatch them. Translating OS
// input into these events is the job of the host windowing system.
package events

// Types determines the type of input event, and also the
// level at which one can select which events to listen to.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	// A view uses it to select the companion under the pointer provisionally.
	MouseDown

	// MouseUp happens when a mouse button is released.
	// A view commits or cancels the provisional selection on it.
	MouseUp

	// MouseMove is sent when the mouse is moving, whether or not a button is down.
	MouseMove

	// Scroll is for scroll wheel or other scrolling events (gestures).
	Scroll

	// KeyChord is sent when a non-modifier key is pressed, with the
	// key code and any modifiers that were held.
	KeyChord

	// Focus is sent to a view when it gets the keyboard focus.
	Focus

	// FocusLost is sent to a view when it loses the keyboard focus.
	FocusLost

	// TypesN is the number of event types.
	TypesN
)

var typesNames = [...]string{"UnknownType", "MouseDown", "MouseUp", "MouseMove", "Scroll", "KeyChord", "Focus", "FocusLost"}

func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "Types(?)"
	}
	return typesNames[tp]
}
