// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package items

import (
	"slices"

	"cogentcore.org/modelview/models"
	"cogentcore.org/modelview/storage"
)

// ListModel is a list model of payloads of type P,
// which must be a pointer type.
type ListModel[P Payload] struct {
	models.ListBase

	// List is the storage of the payloads.
	List *storage.List[P]
}

// NewListModel returns a new [ListModel] with the given function to
// make new payloads, the given roles, and the given initial payloads.
func NewListModel[P Payload](fill func() P, roles []models.RoleType, values ...P) *ListModel[P] {
	m := &ListModel[P]{List: storage.NewList(fill, values...)}
	m.Rows = m.List
	m.Cells = m
	m.RoleTypes = roles
	m.InitList(m)
	return m
}

// NewStringList returns a new list model of [Text] with the given values.
func NewStringList(values ...string) *ListModel[*Text] {
	ps := make([]*Text, len(values))
	for i, v := range values {
		ps[i] = NewText(v)
	}
	return NewListModel(func() *Text { return &Text{} }, models.TextRoles, ps...)
}

// NewItemList returns a new list model of the given [Item]s.
func NewItemList(items ...*Item) *ListModel[*Item] {
	return NewListModel(func() *Item { return &Item{} }, ItemRoles, items...)
}

func (m *ListModel[P]) CellData(row, col int, role models.Role) any {
	return m.List.At(row).Data(role)
}

func (m *ListModel[P]) SetCellData(row, col int, data any, role models.Role) error {
	return m.List.At(row).SetData(data, role)
}

// Payload returns the payload at the given index,
// and false if the index is not a current index of the model.
func (m *ListModel[P]) Payload(idx models.Index) (P, bool) {
	if m.CheckIndex(idx) != nil || idx.Row() >= m.List.Len() {
		var zv P
		return zv, false
	}
	return m.List.At(idx.Row()), true
}

// Values returns a copy of the list of payloads.
func (m *ListModel[P]) Values() []P {
	return slices.Clone(m.List.Values)
}

// Append appends rows with the given payloads, emitting
// a single [models.RowsInserted].
func (m *ListModel[P]) Append(values ...P) error {
	if err := m.CheckAlive(); err != nil {
		return err
	}
	at := m.List.Len()
	if err := m.CheckInsert(at, len(values), at); err != nil {
		return err
	}
	m.List.Values = append(m.List.Values, values...)
	m.EmitRowsInserted(at, len(values), models.Index{})
	return nil
}

// DuplicateRows inserts deep copies of the count rows starting at
// at right after them, emitting a single [models.RowsInserted].
func (m *ListModel[P]) DuplicateRows(at, count int) error {
	if err := m.CheckAlive(); err != nil {
		return err
	}
	if err := m.CheckRemove(at, count, m.List.Len()); err != nil {
		return err
	}
	dups, err := duplicate(m.List.New, m.List.Values[at:at+count])
	if err != nil {
		return err
	}
	m.List.Values = slices.Insert(m.List.Values, at+count, dups...)
	m.EmitRowsInserted(at+count, count, models.Index{})
	return nil
}

// StringValues returns the text of each row of a string list.
func StringValues(m *ListModel[*Text]) []string {
	vs := make([]string, m.List.Len())
	for i, tx := range m.List.Values {
		vs[i] = tx.Text
	}
	return vs
}
