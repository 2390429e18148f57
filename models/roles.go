// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import "strconv"

// Role selects which aspect of an item's data is accessed,
// for example its display text or its check state.
type Role int32

const (
	// DisplayRole is the main text shown for an item.
	DisplayRole Role = iota

	// IconRole is the name of the icon shown for an item.
	IconRole

	// CheckRole is the checked state of an item, as a bool.
	CheckRole

	// EditRole is the value used when editing an item.
	EditRole

	// ToolTipRole is the tooltip text for an item.
	ToolTipRole

	// UserRole is the first role available for application use.
	UserRole Role = 256
)

var roleNames = [...]string{"Display", "Icon", "Check", "Edit", "ToolTip"}

func (r Role) String() string {
	if r >= 0 && int(r) < len(roleNames) {
		return roleNames[r]
	}
	if r >= UserRole {
		return "User+" + strconv.Itoa(int(r-UserRole))
	}
	return "Role(" + strconv.Itoa(int(r)) + ")"
}

// RoleKinds are the kinds of data that a role carries, which views use
// to pick the companion kind that presents it.
type RoleKinds int32

const (
	// TextKind data is a string.
	TextKind RoleKinds = iota

	// IconKind data is an icon name string.
	IconKind

	// CheckKind data is a bool.
	CheckKind
)

func (k RoleKinds) String() string {
	switch k {
	case TextKind:
		return "Text"
	case IconKind:
		return "Icon"
	case CheckKind:
		return "Check"
	}
	return "RoleKinds(" + strconv.Itoa(int(k)) + ")"
}

// RoleType is the static description of one role that a model provides.
type RoleType struct {
	// Role is the role being described.
	Role Role

	// Kind is the kind of data the role carries.
	Kind RoleKinds

	// Name is a human-readable name for the role.
	Name string
}

// TextRoles is the role description for models of plain text items.
var TextRoles = []RoleType{{Role: DisplayRole, Kind: TextKind, Name: "Text"}}
