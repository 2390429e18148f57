// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

// RowStore is the row storage of a flat model. Its operations are
// only called after their preconditions have been checked.
// The move destination is a gap position in pre-move coordinates.
type RowStore interface {
	Len() int
	InsertRows(at, count int)
	RemoveRows(at, count int)
	MoveRows(src, count, dst int)
}

// ColStore is the column storage of a model that supports column edits.
type ColStore interface {
	Cols() int
	InsertCols(at, count int)
	RemoveCols(at, count int)
	MoveCols(src, count, dst int)
}

// GridStore is the storage of a table: rows and columns.
type GridStore interface {
	RowStore
	ColStore
}

// CellStore provides the data of the cells of a flat model.
// Row and column are always in range.
type CellStore interface {
	CellData(row, col int, role Role) any
	SetCellData(row, col int, data any, role Role) error
}

// TreeStore is the node storage of a tree model, addressed by stable
// node ids, with id 0 as the invisible root. Its operations are only
// called after their preconditions have been checked.
type TreeStore interface {
	// Has returns whether the given id is a live node.
	Has(id int) bool

	// Reuses returns the number of times the given id has been freed.
	Reuses(id int) int

	// Parent returns the id of the parent of the given node, or -1 for the root.
	Parent(id int) int

	// Row returns the row of the given node within its parent.
	Row(id int) int

	// ChildCount returns the number of children of the given node.
	ChildCount(id int) int

	// Child returns the id of the child at the given row of the given node.
	Child(id, row int) int

	// Insert inserts count new nodes at the given row of the parent,
	// returning their ids.
	Insert(parent, row, count int) []int

	// Remove removes count children of the parent starting at row,
	// with all of their descendants, returning all of the removed ids.
	Remove(parent, row, count int) []int

	// Move moves count children of srcParent starting at srcRow to the
	// gap dstRow under dstParent, in pre-move coordinates.
	Move(srcParent, srcRow, dstParent, dstRow, count int) error
}

// NodeStore provides the data of the cells of a tree model.
type NodeStore interface {
	NodeData(id, col int, role Role) any
	SetNodeData(id, col int, data any, role Role) error
}
