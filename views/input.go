// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"cogentcore.org/modelview/base/errors"
	"cogentcore.org/modelview/events"
	"cogentcore.org/modelview/events/key"
	"cogentcore.org/modelview/models"
)

// handleEvents adds the standard event listeners of the view.
func (vb *ViewBase) handleEvents() {
	vb.Listeners.Add(events.MouseDown, func(e events.Event) {
		if m, ok := e.(*events.Mouse); ok && m.Button == events.Left {
			vb.press(e)
		}
	})
	vb.Listeners.Add(events.MouseUp, func(e events.Event) {
		if m, ok := e.(*events.Mouse); ok && m.Button == events.Left {
			vb.release(e)
		}
	})
	vb.Listeners.Add(events.Scroll, func(e events.Event) {
		if s, ok := e.(*events.MouseScroll); ok {
			vb.ScrollBy(s.Delta)
			e.SetHandled()
		}
	})
	vb.Listeners.Add(events.KeyChord, func(e events.Event) {
		if k, ok := e.(*events.Key); ok {
			vb.keyInput(k)
		}
	})
	vb.Listeners.Add(events.Focus, func(e events.Event) {
		vb.focused = true
		e.SetHandled()
	})
	vb.Listeners.Add(events.FocusLost, func(e events.Event) {
		vb.focused = false
		vb.cancelPress()
		e.SetHandled()
	})
}

// HandleEvent sends the given event to the listeners of the view.
func (vb *ViewBase) HandleEvent(e events.Event) {
	vb.Listeners.Call(e)
}

// HasFocus returns whether the view has keyboard focus.
func (vb *ViewBase) HasFocus() bool {
	return vb.focused
}

// press provisionally selects the companion under the pointer.
func (vb *ViewBase) press(e events.Event) {
	vb.cancelPress()
	c := vb.This.HitTest(e.Pos())
	if c == nil {
		return
	}
	vb.pressed = c
	c.SetSelected(true)
	e.SetHandled()
}

// release commits the provisional selection if the pointer is released
// over the pressed companion, and cancels it otherwise.
func (vb *ViewBase) release(e events.Event) {
	p := vb.pressed
	if p == nil {
		return
	}
	vb.pressed = nil
	if vb.This.HitTest(e.Pos()) != p {
		vb.selectMaterialized(p)
		return
	}
	vb.This.SetCurrentIndex(p.Index())
	vb.selectMaterialized(p)
	e.SetHandled()
}

// cancelPress cancels any provisional selection.
func (vb *ViewBase) cancelPress() {
	if vb.pressed != nil {
		vb.selectMaterialized(vb.pressed)
		vb.pressed = nil
	}
}

// keyInput handles navigation and editing keys.
func (vb *ViewBase) keyInput(k *events.Key) {
	switch k.Code {
	case key.CodeUpArrow, key.CodeDownArrow, key.CodeLeftArrow, key.CodeRightArrow,
		key.CodePageUp, key.CodePageDown, key.CodeHome, key.CodeEnd:
		nidx := vb.This.Navigate(vb.current, k.Code)
		if nidx.IsValid() {
			vb.This.SetCurrentIndex(nidx)
			vb.ScrollToIndex(nidx)
		}
		k.SetHandled()
	case key.CodeSpacebar, key.CodeReturnEnter:
		errors.Log(vb.ToggleCheck(vb.current))
		k.SetHandled()
	case key.CodeEscape:
		vb.This.SetCurrentIndex(models.Index{})
		k.SetHandled()
	}
}

// ToggleCheck toggles the check state of the given index in the model,
// if the model provides a check role. It does nothing for an invalid index.
func (vb *ViewBase) ToggleCheck(idx models.Index) error {
	if !idx.IsValid() || vb.model == nil {
		return nil
	}
	for _, rt := range vb.model.Roles() {
		if rt.Kind != models.CheckKind {
			continue
		}
		b, _ := vb.model.ItemData(idx, rt.Role).(bool)
		return vb.model.SetItemData(idx, !b, rt.Role)
	}
	return nil
}
