// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/modelview/events/key"
)

// Key is a [KeyChord] event.
type Key struct {
	Base

	// Code is the key that was pressed.
	Code key.Codes

	// Mods are the modifier keys that were held.
	Mods key.Modifiers
}

// NewKey returns a new [KeyChord] event for the given key code and modifiers.
func NewKey(code key.Codes, mods key.Modifiers) *Key {
	ev := &Key{}
	ev.Typ = KeyChord
	ev.Code = code
	ev.Mods = mods
	return ev
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Code: %v, Mods: %v}", ev.Type(), ev.Code, ev.Mods)
}
