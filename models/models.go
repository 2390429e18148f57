// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package models provides the model side of the model/view system:
// the [Index] that addresses one cell, the [Model] contract with its
// list, table and tree variants, and the synchronous notifications
// that attached views receive for every mutation.
package models

import "strings"

// Model is the interface that all models satisfy. All models must embed
// [ModelBase], usually through one of the shape bases [ListBase],
// [TableBase] or [TreeBase].
//
// A parent [Index] that is not valid denotes the root of the model.
// Structural operations take a gap position in [0, n] for inserts and
// moves, and return an error rather than emitting a notification if
// their preconditions do not hold.
type Model interface {
	// AsModelBase returns the [ModelBase] of the model.
	AsModelBase() *ModelBase

	// Index returns the index of the given cell under the given parent,
	// or an invalid index if there is no such cell.
	Index(row, col int, parent Index) Index

	// Parent returns the parent of the given index, which is invalid
	// for top-level items.
	Parent(child Index) Index

	// Sibling returns the index at the given row and column
	// under the same parent as the given index.
	Sibling(row, col int, idx Index) Index

	// HasChildren returns whether the given parent has any child rows.
	HasChildren(parent Index) bool

	// ChildrenCount returns the number of child rows of the given parent.
	ChildrenCount(parent Index) int

	// RowCount returns the number of rows under the given parent.
	RowCount(parent Index) int

	// ColCount returns the number of columns under the given parent.
	ColCount(parent Index) int

	// ItemData returns the data for the given role of the given cell,
	// or nil if the index is invalid or stale.
	ItemData(idx Index, role Role) any

	// SetItemData sets the data for the given role of the given cell
	// and emits [ItemUpdated].
	SetItemData(idx Index, data any, role Role) error

	// InsertRows inserts count rows at the given gap under the parent.
	InsertRows(at, count int, parent Index) error

	// InsertCols inserts count columns at the given gap.
	InsertCols(at, count int, parent Index) error

	// RemoveRows removes the count rows starting at at under the parent.
	RemoveRows(at, count int, parent Index) error

	// RemoveCols removes the count columns starting at at.
	RemoveCols(at, count int, parent Index) error

	// MoveRows moves count rows starting at srcAt under srcParent
	// to the gap dstAt under dstParent, in pre-move coordinates.
	MoveRows(srcParent Index, srcAt int, dstParent Index, dstAt int, count int) error

	// MoveCols moves count columns starting at srcAt to the gap dstAt,
	// in pre-move coordinates.
	MoveCols(srcParent Index, srcAt int, dstParent Index, dstAt int, count int) error

	// Roles returns the static description of the roles the model provides.
	Roles() []RoleType

	// Capabilities returns the set of operations the model supports.
	Capabilities() Capabilities
}

// Capabilities are bit flags for the kinds of operations a model supports.
// Views consult them before invoking an operation.
type Capabilities int32

const (
	// RowEdits means rows can be inserted, removed and moved.
	RowEdits Capabilities = 1 << iota

	// ColEdits means columns can be inserted, removed and moved.
	ColEdits

	// Hierarchy means rows can have child rows.
	Hierarchy

	// CrossParentMoves means rows can be moved between different parents.
	CrossParentMoves
)

var capabilityNames = []string{"RowEdits", "ColEdits", "Hierarchy", "CrossParentMoves"}

// Has returns whether all of the given flags are set.
func (c Capabilities) Has(flags Capabilities) bool {
	return c&flags == flags
}

func (c Capabilities) String() string {
	var names []string
	for i, nm := range capabilityNames {
		if c&(1<<i) != 0 {
			names = append(names, nm)
		}
	}
	return strings.Join(names, "|")
}
