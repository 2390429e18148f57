// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package items provides the built-in item kinds, plain [Text] and
// icon + text + checkbox [Item], and generic list, table and tree
// models of them built on the storage engines.
package items

import (
	"fmt"

	"cogentcore.org/modelview/models"
)

// Payload is the data of one cell of a built-in model,
// accessed per role.
type Payload interface {
	// Data returns the data for the given role, or nil if the
	// payload does not provide that role.
	Data(role models.Role) any

	// SetData sets the data for the given role, returning an error
	// wrapping [models.ErrRole] if the role is not settable or the
	// data has the wrong type.
	SetData(v any, role models.Role) error
}

// roleError returns an error for data that can not be set for a role.
func roleError(v any, role models.Role) error {
	return fmt.Errorf("%w: %v (%T)", models.ErrRole, role, v)
}

// Text is a plain text payload.
type Text struct {
	Text string
}

// NewText returns a new [Text] payload.
func NewText(s string) *Text {
	return &Text{Text: s}
}

func (tx *Text) Data(role models.Role) any {
	switch role {
	case models.DisplayRole, models.EditRole:
		return tx.Text
	}
	return nil
}

func (tx *Text) SetData(v any, role models.Role) error {
	s, ok := v.(string)
	if !ok || (role != models.DisplayRole && role != models.EditRole) {
		return roleError(v, role)
	}
	tx.Text = s
	return nil
}

// Item is a payload with an icon, text and a checkbox.
type Item struct {
	// Icon is the name of the icon.
	Icon string

	// Text is the display text.
	Text string

	// Checked is the checkbox state.
	Checked bool

	// ToolTip is the tooltip text.
	ToolTip string
}

// NewItem returns a new [Item] payload.
func NewItem(icon, text string, checked bool) *Item {
	return &Item{Icon: icon, Text: text, Checked: checked}
}

func (it *Item) Data(role models.Role) any {
	switch role {
	case models.IconRole:
		return it.Icon
	case models.DisplayRole, models.EditRole:
		return it.Text
	case models.CheckRole:
		return it.Checked
	case models.ToolTipRole:
		return it.ToolTip
	}
	return nil
}

func (it *Item) SetData(v any, role models.Role) error {
	switch role {
	case models.CheckRole:
		if b, ok := v.(bool); ok {
			it.Checked = b
			return nil
		}
	case models.IconRole, models.DisplayRole, models.EditRole, models.ToolTipRole:
		s, ok := v.(string)
		if !ok {
			break
		}
		switch role {
		case models.IconRole:
			it.Icon = s
		case models.ToolTipRole:
			it.ToolTip = s
		default:
			it.Text = s
		}
		return nil
	}
	return roleError(v, role)
}

// ItemRoles is the role description of models of [Item]s,
// in the order their parts are shown.
var ItemRoles = []models.RoleType{
	{Role: models.IconRole, Kind: models.IconKind, Name: "Icon"},
	{Role: models.DisplayRole, Kind: models.TextKind, Name: "Text"},
	{Role: models.CheckRole, Kind: models.CheckKind, Name: "Check"},
}
