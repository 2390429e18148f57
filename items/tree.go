// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package items

import (
	"fmt"
	"slices"

	"cogentcore.org/modelview/base/slicesx"
	"cogentcore.org/modelview/models"
	"cogentcore.org/modelview/storage"
)

// TreeModel is a tree model of payloads of type P, which must be
// a pointer type. Each node holds one payload per column.
type TreeModel[P Payload] struct {
	models.TreeBase

	// Tree is the storage of the nodes.
	Tree *storage.Tree[[]P]

	// fill makes new payloads.
	fill func() P

	// cols is the number of columns.
	cols int
}

// NewTreeModel returns a new empty [TreeModel] with the given number of
// columns, function to make new payloads, and roles.
func NewTreeModel[P Payload](cols int, fill func() P, roles []models.RoleType) *TreeModel[P] {
	m := &TreeModel[P]{fill: fill, cols: max(cols, 1)}
	m.Tree = storage.NewTree(m.newRow)
	m.Nodes = m.Tree
	m.Data = m
	m.Columns = &treeColumns[P]{m: m}
	m.RoleTypes = roles
	m.Init(m)
	return m
}

// NewStringTree returns a new empty tree model of [Text]s.
func NewStringTree(cols int) *TreeModel[*Text] {
	return NewTreeModel(cols, func() *Text { return &Text{} }, models.TextRoles)
}

// NewItemTree returns a new empty tree model of [Item]s.
func NewItemTree(cols int) *TreeModel[*Item] {
	return NewTreeModel(cols, func() *Item { return &Item{} }, ItemRoles)
}

// newRow makes the payloads of a new node.
func (m *TreeModel[P]) newRow() []P {
	row := make([]P, m.cols)
	for i := range row {
		row[i] = m.fill()
	}
	return row
}

func (m *TreeModel[P]) NodeData(id, col int, role models.Role) any {
	return m.Tree.Value(id)[col].Data(role)
}

func (m *TreeModel[P]) SetNodeData(id, col int, data any, role models.Role) error {
	return m.Tree.Value(id)[col].SetData(data, role)
}

// Payload returns the payload at the given index,
// and false if the index is not a current index of the model.
func (m *TreeModel[P]) Payload(idx models.Index) (P, bool) {
	id, ok := m.ID(idx)
	if !ok || id == 0 || m.CheckIndex(idx) != nil || idx.Col() >= m.cols {
		var zv P
		return zv, false
	}
	return m.Tree.Value(id)[idx.Col()], true
}

// AppendRow appends a child to the given parent, with the given payloads
// for its first columns, emitting a single [models.RowsInserted].
// It returns the index of the new node.
func (m *TreeModel[P]) AppendRow(parent models.Index, values ...P) (models.Index, error) {
	if err := m.CheckAlive(); err != nil {
		return models.Index{}, err
	}
	pid := 0
	if parent.IsValid() {
		if err := m.CheckIndex(parent); err != nil {
			return models.Index{}, err
		}
		id, ok := m.ID(parent)
		if !ok {
			return models.Index{}, fmt.Errorf("%w: %v is not a live node", models.ErrInvalidIndex, parent)
		}
		pid = id
	}
	row := m.Tree.ChildCount(pid)
	id := m.Tree.Insert(pid, row, 1)[0]
	copy(m.Tree.Value(id), values)
	m.EmitRowsInserted(row, 1, m.IndexByID(pid))
	return m.IndexByID(id), nil
}

// treeColumns is the column storage of a [TreeModel], which edits
// the payload slice of every node.
type treeColumns[P Payload] struct {
	m *TreeModel[P]
}

// each calls the given function on the payloads of every node, setting
// them to the result.
func (tc *treeColumns[P]) each(fun func(row []P) []P) {
	tc.m.Tree.Walk(0, func(id int) bool {
		tc.m.Tree.SetValue(id, fun(tc.m.Tree.Value(id)))
		return true
	})
}

func (tc *treeColumns[P]) Cols() int {
	return tc.m.cols
}

func (tc *treeColumns[P]) InsertCols(at, count int) {
	tc.each(func(row []P) []P {
		ns := make([]P, count)
		for i := range ns {
			ns[i] = tc.m.fill()
		}
		return slices.Insert(row, at, ns...)
	})
	tc.m.cols += count
}

func (tc *treeColumns[P]) RemoveCols(at, count int) {
	tc.each(func(row []P) []P {
		return slices.Delete(row, at, at+count)
	})
	tc.m.cols -= count
}

func (tc *treeColumns[P]) MoveCols(src, count, dst int) {
	tc.each(func(row []P) []P {
		slicesx.MoveBlock(row, src, count, dst)
		return row
	})
}
