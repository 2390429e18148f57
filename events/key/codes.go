// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the key codes and modifiers carried by key events.
package key

import "strings"

// Codes are the physical key codes that views react to.
type Codes int32

const (
	CodeUnknown Codes = iota
	CodeUpArrow
	CodeDownArrow
	CodeLeftArrow
	CodeRightArrow
	CodePageUp
	CodePageDown
	CodeHome
	CodeEnd
	CodeReturnEnter
	CodeSpacebar
	CodeEscape

	CodesN
)

var codesNames = [...]string{"Unknown", "UpArrow", "DownArrow", "LeftArrow", "RightArrow", "PageUp", "PageDown", "Home", "End", "ReturnEnter", "Spacebar", "Escape"}

func (c Codes) String() string {
	if c < 0 || c >= CodesN {
		return "Codes(?)"
	}
	return codesNames[c]
}

// Modifiers are used as bit flags representing a set of modifier keys.
type Modifiers int32

const (
	// Shift is the shift key modifier
	Shift Modifiers = 1 << iota

	// Control is the control key modifier
	Control

	// Alt is the alt or option key modifier
	Alt

	// Meta is the system meta key (Command on Mac, Windows key on Windows)
	Meta
)

var modifierNames = []string{"Shift", "Control", "Alt", "Meta"}

// HasAnyModifier tests whether any of given modifier flags are set
func HasAnyModifier(flags Modifiers, mods ...Modifiers) bool {
	for _, m := range mods {
		if flags&m != 0 {
			return true
		}
	}
	return false
}

func (m Modifiers) String() string {
	var names []string
	for i, nm := range modifierNames {
		if m&(1<<i) != 0 {
			names = append(names, nm)
		}
	}
	return strings.Join(names, "|")
}
