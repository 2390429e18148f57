// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import "fmt"

// TreeBase is the base for hierarchical models. Every item is a node
// with a stable id that is carried in the [IDTag] of its indexes,
// so that an id stays valid across mutations elsewhere in the tree.
// The tag also carries the reuse count of the id, so an index of a
// removed node never resolves to a later node that reuses its id.
// The embedding type sets Nodes, Data and optionally Columns,
// and calls [ModelBase.Init].
type TreeBase struct {
	ModelBase

	// Nodes is the node storage.
	Nodes TreeStore

	// Data provides the data of each cell.
	Data NodeStore

	// Columns is the optional column storage. If it is nil,
	// the tree has a single column and column edits are unsupported.
	Columns ColStore

	// RoleTypes are the roles the model provides.
	RoleTypes []RoleType
}

// numCols returns the number of columns.
func (tb *TreeBase) numCols() int {
	if tb.Columns == nil {
		return 1
	}
	return tb.Columns.Cols()
}

// tag returns the tag of the live node with the given id.
func (tb *TreeBase) tag(id int) RowTag {
	return ReusedIDTag(id, tb.Nodes.Reuses(id))
}

// liveID returns the id held by the given tag, and whether it is
// the id of a live node that has not been reused since the tag was made.
func (tb *TreeBase) liveID(tag RowTag) (int, bool) {
	id, ok := tag.ID()
	if !ok || !tb.Nodes.Has(id) || tb.Nodes.Reuses(id) != tag.Reuse() {
		return 0, false
	}
	return id, true
}

// nodeID returns the node id of the given index, which must be
// a current index of this model. The invalid index is the root, id 0.
func (tb *TreeBase) nodeID(idx Index) (int, error) {
	if err := tb.CheckParent(idx); err != nil {
		return 0, err
	}
	if !idx.IsValid() {
		return 0, nil
	}
	id, ok := tb.liveID(idx.tag)
	if !ok || id == 0 {
		return 0, fmt.Errorf("%w: %v is not a live node", ErrInvalidIndex, idx)
	}
	return id, nil
}

// IndexByID returns the column 0 index of the node with the given id,
// or an invalid index if there is no such node. Id 0 is the root,
// which also has the invalid index.
func (tb *TreeBase) IndexByID(id int) Index {
	if id <= 0 || !tb.Nodes.Has(id) {
		return Index{}
	}
	return NewIndex(tb.Nodes.Row(id), 0, tb.tag(id), tb.This)
}

// ID returns the stable node id of the given index, and whether it
// refers to a live node. The id remains valid after the index is stale,
// until the node is removed, even if the id is then reused.
func (tb *TreeBase) ID(idx Index) (int, bool) {
	if !idx.IsValid() || idx.model.AsModelBase() != &tb.ModelBase {
		return 0, false
	}
	return tb.liveID(idx.tag)
}

// IsLive returns whether the given tag is that of a live node of the
// model, not reused since the tag was made.
func (tb *TreeBase) IsLive(tag RowTag) bool {
	_, ok := tb.liveID(tag)
	return ok
}

func (tb *TreeBase) Index(row, col int, parent Index) Index {
	pid, err := tb.nodeID(parent)
	if err != nil || row < 0 || row >= tb.Nodes.ChildCount(pid) || col < 0 || col >= tb.numCols() {
		return Index{}
	}
	return NewIndex(row, col, tb.tag(tb.Nodes.Child(pid, row)), tb.This)
}

func (tb *TreeBase) Parent(child Index) Index {
	id, err := tb.nodeID(child)
	if err != nil || id == 0 {
		return Index{}
	}
	return tb.IndexByID(tb.Nodes.Parent(id))
}

func (tb *TreeBase) Sibling(row, col int, idx Index) Index {
	return tb.This.Index(row, col, tb.This.Parent(idx))
}

func (tb *TreeBase) HasChildren(parent Index) bool {
	return tb.This.ChildrenCount(parent) > 0
}

func (tb *TreeBase) ChildrenCount(parent Index) int {
	return tb.This.RowCount(parent)
}

func (tb *TreeBase) RowCount(parent Index) int {
	pid, err := tb.nodeID(parent)
	if err != nil {
		return 0
	}
	return tb.Nodes.ChildCount(pid)
}

func (tb *TreeBase) ColCount(parent Index) int {
	if _, err := tb.nodeID(parent); err != nil {
		return 0
	}
	return tb.numCols()
}

func (tb *TreeBase) ItemData(idx Index, role Role) any {
	if !idx.IsValid() || idx.col >= tb.numCols() {
		return nil
	}
	id, err := tb.nodeID(idx)
	if err != nil {
		return nil
	}
	return tb.Data.NodeData(id, idx.col, role)
}

func (tb *TreeBase) SetItemData(idx Index, data any, role Role) error {
	if err := tb.CheckAlive(); err != nil {
		return err
	}
	if err := tb.CheckIndex(idx); err != nil {
		return err
	}
	if idx.col >= tb.numCols() {
		return fmt.Errorf("%w: %v", ErrOutOfRange, idx)
	}
	id, err := tb.nodeID(idx)
	if err != nil {
		return err
	}
	if err := tb.Data.SetNodeData(id, idx.col, data, role); err != nil {
		return err
	}
	tb.EmitItemUpdated(idx, role)
	return nil
}

// parentID is like nodeID, for the parent of a structural operation.
func (tb *TreeBase) parentID(parent Index) (int, error) {
	if err := tb.CheckAlive(); err != nil {
		return 0, err
	}
	return tb.nodeID(parent)
}

func (tb *TreeBase) InsertRows(at, count int, parent Index) error {
	pid, err := tb.parentID(parent)
	if err != nil {
		return err
	}
	if err := tb.CheckInsert(at, count, tb.Nodes.ChildCount(pid)); err != nil {
		return err
	}
	tb.Nodes.Insert(pid, at, count)
	tb.EmitRowsInserted(at, count, tb.IndexByID(pid))
	return nil
}

func (tb *TreeBase) RemoveRows(at, count int, parent Index) error {
	pid, err := tb.parentID(parent)
	if err != nil {
		return err
	}
	if err := tb.CheckRemove(at, count, tb.Nodes.ChildCount(pid)); err != nil {
		return err
	}
	tb.Nodes.Remove(pid, at, count)
	tb.EmitRowsRemoved(at, count, tb.IndexByID(pid))
	return nil
}

// MoveRows moves rows within one parent or between parents.
// It fails with [ErrMoveIntoSelf] if the destination parent is
// one of the moved nodes or one of their descendants.
func (tb *TreeBase) MoveRows(srcParent Index, srcAt int, dstParent Index, dstAt int, count int) error {
	spid, err := tb.parentID(srcParent)
	if err != nil {
		return err
	}
	dpid, err := tb.nodeID(dstParent)
	if err != nil {
		return err
	}
	if err := tb.CheckMove(srcAt, dstAt, count, tb.Nodes.ChildCount(spid), tb.Nodes.ChildCount(dpid), spid == dpid); err != nil {
		return err
	}
	for a := dpid; a > 0; a = tb.Nodes.Parent(a) {
		if tb.Nodes.Parent(a) == spid {
			if r := tb.Nodes.Row(a); r >= srcAt && r < srcAt+count {
				return fmt.Errorf("%w: node %d", ErrMoveIntoSelf, a)
			}
		}
	}
	if err := tb.Nodes.Move(spid, srcAt, dpid, dstAt, count); err != nil {
		return err
	}
	tb.EmitRowsMoved(tb.IndexByID(spid), srcAt, tb.IndexByID(dpid), dstAt, count)
	return nil
}

// checkCols checks that the tree has column storage and the
// parent is the root, as columns are shared by all nodes.
func (tb *TreeBase) checkCols(parent Index) error {
	if err := tb.CheckAlive(); err != nil {
		return err
	}
	if tb.Columns == nil {
		return fmt.Errorf("%w: tree has a single column", ErrUnsupported)
	}
	if parent.IsValid() {
		return fmt.Errorf("%w: %v: columns are edited at the root", ErrInvalidIndex, parent)
	}
	return nil
}

func (tb *TreeBase) InsertCols(at, count int, parent Index) error {
	if err := tb.checkCols(parent); err != nil {
		return err
	}
	if err := tb.CheckInsert(at, count, tb.Columns.Cols()); err != nil {
		return err
	}
	tb.Columns.InsertCols(at, count)
	tb.EmitColsInserted(at, count, parent)
	return nil
}

func (tb *TreeBase) RemoveCols(at, count int, parent Index) error {
	if err := tb.checkCols(parent); err != nil {
		return err
	}
	if err := tb.CheckRemove(at, count, tb.Columns.Cols()); err != nil {
		return err
	}
	tb.Columns.RemoveCols(at, count)
	tb.EmitColsRemoved(at, count, parent)
	return nil
}

func (tb *TreeBase) MoveCols(srcParent Index, srcAt int, dstParent Index, dstAt int, count int) error {
	if err := tb.checkCols(srcParent); err != nil {
		return err
	}
	if err := tb.checkCols(dstParent); err != nil {
		return err
	}
	n := tb.Columns.Cols()
	if err := tb.CheckMove(srcAt, dstAt, count, n, n, true); err != nil {
		return err
	}
	tb.Columns.MoveCols(srcAt, count, dstAt)
	tb.EmitColsMoved(srcParent, srcAt, dstParent, dstAt, count)
	return nil
}

func (tb *TreeBase) Roles() []RoleType {
	return tb.RoleTypes
}

func (tb *TreeBase) Capabilities() Capabilities {
	c := RowEdits | Hierarchy | CrossParentMoves
	if tb.Columns != nil {
		c |= ColEdits
	}
	return c
}
