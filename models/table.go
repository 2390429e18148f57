// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import "fmt"

// TableBase is the base for flat models of rows and columns, whose
// items have no children. Its storage is supplied by the embedding
// type through the Grid and Cells fields, which must be set along
// with [ModelBase.Init] before use.
type TableBase struct {
	ModelBase

	// Grid is the row and column storage.
	Grid GridStore

	// Cells provides the data of each cell.
	Cells CellStore

	// RoleTypes are the roles the model provides.
	RoleTypes []RoleType
}

// Index returns the index of the given cell, which must be at the root.
func (tb *TableBase) Index(row, col int, parent Index) Index {
	if parent.IsValid() || row < 0 || row >= tb.Grid.Len() || col < 0 || col >= tb.Grid.Cols() {
		return Index{}
	}
	return NewIndex(row, col, NoTag, tb.This)
}

// Parent returns an invalid index, as all items are at the root.
func (tb *TableBase) Parent(child Index) Index {
	return Index{}
}

func (tb *TableBase) Sibling(row, col int, idx Index) Index {
	return tb.This.Index(row, col, tb.This.Parent(idx))
}

// HasChildren returns whether the root has any rows.
func (tb *TableBase) HasChildren(parent Index) bool {
	return tb.This.ChildrenCount(parent) > 0
}

func (tb *TableBase) ChildrenCount(parent Index) int {
	return tb.This.RowCount(parent)
}

func (tb *TableBase) RowCount(parent Index) int {
	if parent.IsValid() {
		return 0
	}
	return tb.Grid.Len()
}

func (tb *TableBase) ColCount(parent Index) int {
	if parent.IsValid() {
		return 0
	}
	return tb.Grid.Cols()
}

// cell returns the row and column of the given index,
// and whether it is a current cell of this model.
func (tb *TableBase) cell(idx Index) (int, int, error) {
	if err := tb.CheckIndex(idx); err != nil {
		return 0, 0, err
	}
	if idx.row >= tb.Grid.Len() || idx.col >= tb.Grid.Cols() {
		return 0, 0, fmt.Errorf("%w: %v", ErrOutOfRange, idx)
	}
	return idx.row, idx.col, nil
}

func (tb *TableBase) ItemData(idx Index, role Role) any {
	row, col, err := tb.cell(idx)
	if err != nil {
		return nil
	}
	return tb.Cells.CellData(row, col, role)
}

func (tb *TableBase) SetItemData(idx Index, data any, role Role) error {
	if err := tb.CheckAlive(); err != nil {
		return err
	}
	row, col, err := tb.cell(idx)
	if err != nil {
		return err
	}
	if err := tb.Cells.SetCellData(row, col, data, role); err != nil {
		return err
	}
	tb.EmitItemUpdated(idx, role)
	return nil
}

// checkRoot checks that the model is alive and the given parent is the root.
func (tb *TableBase) checkRoot(parent Index) error {
	if err := tb.CheckAlive(); err != nil {
		return err
	}
	if parent.IsValid() {
		return fmt.Errorf("%w: %v: items of a flat model have no children", ErrInvalidIndex, parent)
	}
	return nil
}

func (tb *TableBase) InsertRows(at, count int, parent Index) error {
	if err := tb.checkRoot(parent); err != nil {
		return err
	}
	if err := tb.CheckInsert(at, count, tb.Grid.Len()); err != nil {
		return err
	}
	tb.Grid.InsertRows(at, count)
	tb.EmitRowsInserted(at, count, parent)
	return nil
}

func (tb *TableBase) RemoveRows(at, count int, parent Index) error {
	if err := tb.checkRoot(parent); err != nil {
		return err
	}
	if err := tb.CheckRemove(at, count, tb.Grid.Len()); err != nil {
		return err
	}
	tb.Grid.RemoveRows(at, count)
	tb.EmitRowsRemoved(at, count, parent)
	return nil
}

func (tb *TableBase) MoveRows(srcParent Index, srcAt int, dstParent Index, dstAt int, count int) error {
	if err := tb.checkRoot(srcParent); err != nil {
		return err
	}
	if err := tb.checkRoot(dstParent); err != nil {
		return err
	}
	n := tb.Grid.Len()
	if err := tb.CheckMove(srcAt, dstAt, count, n, n, true); err != nil {
		return err
	}
	tb.Grid.MoveRows(srcAt, count, dstAt)
	tb.EmitRowsMoved(srcParent, srcAt, dstParent, dstAt, count)
	return nil
}

func (tb *TableBase) InsertCols(at, count int, parent Index) error {
	if err := tb.checkRoot(parent); err != nil {
		return err
	}
	if err := tb.CheckInsert(at, count, tb.Grid.Cols()); err != nil {
		return err
	}
	tb.Grid.InsertCols(at, count)
	tb.EmitColsInserted(at, count, parent)
	return nil
}

func (tb *TableBase) RemoveCols(at, count int, parent Index) error {
	if err := tb.checkRoot(parent); err != nil {
		return err
	}
	if err := tb.CheckRemove(at, count, tb.Grid.Cols()); err != nil {
		return err
	}
	tb.Grid.RemoveCols(at, count)
	tb.EmitColsRemoved(at, count, parent)
	return nil
}

func (tb *TableBase) MoveCols(srcParent Index, srcAt int, dstParent Index, dstAt int, count int) error {
	if err := tb.checkRoot(srcParent); err != nil {
		return err
	}
	if err := tb.checkRoot(dstParent); err != nil {
		return err
	}
	n := tb.Grid.Cols()
	if err := tb.CheckMove(srcAt, dstAt, count, n, n, true); err != nil {
		return err
	}
	tb.Grid.MoveCols(srcAt, count, dstAt)
	tb.EmitColsMoved(srcParent, srcAt, dstParent, dstAt, count)
	return nil
}

func (tb *TableBase) Roles() []RoleType {
	return tb.RoleTypes
}

func (tb *TableBase) Capabilities() Capabilities {
	return RowEdits | ColEdits
}
