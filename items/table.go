// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package items

import (
	"cogentcore.org/modelview/models"
	"cogentcore.org/modelview/storage"
)

// TableModel is a table model of payloads of type P,
// which must be a pointer type.
type TableModel[P Payload] struct {
	models.TableBase

	// Table is the storage of the payloads.
	Table *storage.Table[P]
}

// NewTableModel returns a new [TableModel] of the given size, with the
// given function to make new payloads and the given roles.
func NewTableModel[P Payload](rows, cols int, fill func() P, roles []models.RoleType) *TableModel[P] {
	m := &TableModel[P]{Table: storage.NewTable(rows, cols, fill)}
	m.Grid = m.Table
	m.Cells = m
	m.RoleTypes = roles
	m.Init(m)
	return m
}

// NewStringTable returns a new table model of empty [Text]s.
func NewStringTable(rows, cols int) *TableModel[*Text] {
	return NewTableModel(rows, cols, func() *Text { return &Text{} }, models.TextRoles)
}

// NewItemTable returns a new table model of empty [Item]s.
func NewItemTable(rows, cols int) *TableModel[*Item] {
	return NewTableModel(rows, cols, func() *Item { return &Item{} }, ItemRoles)
}

func (m *TableModel[P]) CellData(row, col int, role models.Role) any {
	return m.Table.At(row, col).Data(role)
}

func (m *TableModel[P]) SetCellData(row, col int, data any, role models.Role) error {
	return m.Table.At(row, col).SetData(data, role)
}

// Payload returns the payload at the given index,
// and false if the index is not a current index of the model.
func (m *TableModel[P]) Payload(idx models.Index) (P, bool) {
	if m.CheckIndex(idx) != nil || idx.Row() >= m.Table.Len() || idx.Col() >= m.Table.Cols() {
		var zv P
		return zv, false
	}
	return m.Table.At(idx.Row(), idx.Col()), true
}

// DuplicateRows inserts deep copies of the count rows starting at
// at right after them, emitting a single [models.RowsInserted].
func (m *TableModel[P]) DuplicateRows(at, count int) error {
	if err := m.CheckAlive(); err != nil {
		return err
	}
	if err := m.CheckRemove(at, count, m.Table.Len()); err != nil {
		return err
	}
	var src []P
	for r := at; r < at+count; r++ {
		src = append(src, m.Table.Row(r)...)
	}
	dups, err := duplicate(m.Table.New, src)
	if err != nil {
		return err
	}
	m.Table.InsertRows(at+count, count)
	cols := m.Table.Cols()
	for i, d := range dups {
		m.Table.Set(at+count+i/cols, i%cols, d)
	}
	m.EmitRowsInserted(at+count, count, models.Index{})
	return nil
}
