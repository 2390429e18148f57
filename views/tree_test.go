// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"fmt"
	"testing"

	"cogentcore.org/modelview/events"
	"cogentcore.org/modelview/events/key"
	"cogentcore.org/modelview/items"
	"cogentcore.org/modelview/math32"
	"cogentcore.org/modelview/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// appendText appends a row with the given text and returns its id.
func appendText(t *testing.T, m *items.TreeModel[*items.Text], parent int, text string) int {
	t.Helper()
	idx, err := m.AppendRow(m.IndexByID(parent), items.NewText(text))
	require.NoError(t, err)
	id, ok := m.ID(idx)
	require.True(t, ok)
	return id
}

func TestTreeView(t *testing.T) {
	m := items.NewStringTree(1)
	a := appendText(t, m, 0, "a")
	appendText(t, m, a, "a0")
	appendText(t, m, a, "a1")
	b := appendText(t, m, 0, "b")
	appendText(t, m, b, "b0")

	tv := NewTreeView(nil)
	tv.SetSize(math32.Vec2(200, 200))
	tv.SetModel(m)
	assert.Equal(t, []string{"a", "a0", "a1", "b", "b0"}, texts(tv))
	assert.Equal(t, float32(100), tv.Root.Height)
	assert.Equal(t, float32(60), tv.Node(m.IndexByID(a)).Height)
	assert.Equal(t, float32(60), tv.Node(m.IndexByID(b)).Offset)

	box, ok := tv.IndexBox(m.Index(0, 0, m.IndexByID(a)))
	require.True(t, ok)
	assert.Equal(t, math32.B2(16, 20, 120, 40), box)
	assert.Equal(t, "a1", tv.HitTest(math32.Vec2(30, 45)).String())
	assert.Nil(t, tv.HitTest(math32.Vec2(30, 150)))

	tv.SetExpanded(m.IndexByID(a), false)
	assert.False(t, tv.IsExpanded(m.IndexByID(a)))
	assert.Equal(t, []string{"a", "b", "b0"}, texts(tv))
	assert.Equal(t, float32(20), tv.Node(m.IndexByID(b)).Offset)
	assert.Equal(t, float32(60), tv.Root.Height)
	assert.Equal(t, 3, tv.Materialized())

	bn := tv.Node(m.IndexByID(b))
	appendText(t, m, b, "b1")
	assert.Equal(t, []string{"a", "b", "b0", "b1"}, texts(tv))
	assert.Same(t, bn, tv.Node(m.IndexByID(b)))
	assert.False(t, tv.IsExpanded(m.IndexByID(a)))

	tv.Toggle(m.IndexByID(a))
	assert.Equal(t, []string{"a", "a0", "a1", "b", "b0", "b1"}, texts(tv))
	tv.Toggle(m.IndexByID(a))

	b0 := m.Index(0, 0, m.IndexByID(b))
	require.True(t, tv.SetCurrentIndex(b0))
	require.NoError(t, m.RemoveRows(0, 1, root))
	assert.Equal(t, []string{"b", "b0", "b1"}, texts(tv))
	assert.Equal(t, "b0", m.ItemData(tv.CurrentIndex(), models.DisplayRole))
	assert.True(t, tv.ItemWidget(tv.CurrentIndex()).IsSelected())

	// the collapsed state of a removed row is not inherited by new rows
	c := appendText(t, m, 0, "c")
	appendText(t, m, c, "c0")
	assert.Equal(t, []string{"b", "b0", "b1", "c", "c0"}, texts(tv))

	require.NoError(t, m.MoveRows(m.IndexByID(b), 1, root, 0, 1))
	assert.Equal(t, []string{"b1", "b", "b0", "c", "c0"}, texts(tv))
	assert.Equal(t, 2, tv.Node(tv.CurrentIndex()).Level)
	assert.Equal(t, "b0", m.ItemData(tv.CurrentIndex(), models.DisplayRole))
}

func TestTreeViewNavigation(t *testing.T) {
	m := items.NewStringTree(1)
	a := appendText(t, m, 0, "a")
	appendText(t, m, a, "a0")
	b := appendText(t, m, 0, "b")
	appendText(t, m, b, "b0")

	tv := NewTreeView(nil)
	tv.SetSize(math32.Vec2(200, 200))
	tv.SetModel(m)
	press := func(code key.Codes) any {
		tv.HandleEvent(events.NewKey(code, 0))
		return m.ItemData(tv.CurrentIndex(), models.DisplayRole)
	}

	assert.Equal(t, "a", press(key.CodeDownArrow))
	assert.Equal(t, "a", press(key.CodeUpArrow))
	assert.Equal(t, "a0", press(key.CodeDownArrow))
	assert.Equal(t, "b", press(key.CodeDownArrow))
	assert.Equal(t, "b0", press(key.CodeEnd))
	assert.Equal(t, "b", press(key.CodeLeftArrow))
	assert.Equal(t, "b", press(key.CodeLeftArrow))
	assert.False(t, tv.IsExpanded(m.IndexByID(b)))
	assert.Equal(t, []string{"a", "a0", "b"}, texts(tv))
	assert.Equal(t, "b", press(key.CodeRightArrow))
	assert.True(t, tv.IsExpanded(m.IndexByID(b)))
	assert.Equal(t, "b0", press(key.CodeRightArrow))
	assert.Equal(t, "a", press(key.CodeHome))
	assert.Equal(t, "b0", press(key.CodePageDown))

	tv.HandleEvent(events.NewMouse(events.MouseDown, events.Left, math32.Vec2(40, 25)))
	tv.HandleEvent(events.NewMouse(events.MouseUp, events.Left, math32.Vec2(50, 35)))
	assert.Equal(t, "a0", m.ItemData(tv.CurrentIndex(), models.DisplayRole))
}

func TestTreeViewVirtualization(t *testing.T) {
	m := items.NewStringTree(2)
	for g := 0; g < 50; g++ {
		id := appendText(t, m, 0, fmt.Sprintf("g%d", g))
		appendText(t, m, id, fmt.Sprintf("g%d.0", g))
		appendText(t, m, id, fmt.Sprintf("g%d.1", g))
	}
	tv := NewTreeView(nil)
	tv.SetSize(math32.Vec2(300, 100))
	tv.SetModel(m)
	assert.Equal(t, float32(3000), tv.Root.Height)
	assert.Len(t, tv.Visible(), 10)
	assert.Equal(t, 10, tv.Materialized())

	tv.ScrollTo(math32.Vec2(0, 1000))
	var col0 []string
	for _, c := range tv.Visible() {
		if c.Index().Col() == 0 {
			col0 = append(col0, c.String())
		}
	}
	assert.Equal(t, []string{"g16.1", "g17", "g17.0", "g17.1", "g18"}, col0)
	assert.Equal(t, 10, tv.Materialized())
	for _, c := range tv.Visible() {
		assert.False(t, c.Index().IsStale())
	}

	tv.SetExpanded(m.Index(17, 0, root), false)
	assert.Equal(t, float32(2960), tv.Root.Height)
	assert.Equal(t, float32(1040), tv.Node(m.Index(18, 0, root)).Offset)

	require.NoError(t, m.InsertCols(1, 1, root))
	assert.Equal(t, 3, tv.Widths.Len())
	assert.Equal(t, float32(2960), tv.Root.Height)
	for _, c := range tv.Visible() {
		assert.False(t, c.Index().IsStale())
	}
}

func TestTreeViewReusedID(t *testing.T) {
	m := items.NewStringTree(1)
	a := appendText(t, m, 0, "a")
	appendText(t, m, 0, "b")

	tv := NewTreeView(nil)
	tv.SetSize(math32.Vec2(200, 200))
	tv.SetModel(m)
	var changes []models.Index
	tv.OnCurrentChanged(func(old, cur models.Index) {
		changes = append(changes, cur)
	})
	require.True(t, tv.SetCurrentIndex(m.IndexByID(a)))
	tv.SetExpanded(m.IndexByID(a), false)

	// within one batch, a is removed and z takes its freed id
	var z int
	m.Silently(func() {
		require.NoError(t, m.RemoveRows(0, 1, root))
		require.NoError(t, m.InsertRows(0, 1, root))
		zidx := m.Index(0, 0, root)
		require.NoError(t, m.SetItemData(zidx, "z", models.DisplayRole))
		z, _ = m.ID(zidx)
		appendText(t, m, z, "z0")
	})
	require.Equal(t, a, z)

	assert.False(t, tv.CurrentIndex().IsValid())
	require.Len(t, changes, 2)
	assert.False(t, changes[1].IsValid())
	assert.True(t, tv.IsExpanded(m.IndexByID(z)))
	assert.Equal(t, []string{"z", "z0", "b"}, texts(tv))
	for _, c := range tv.Visible() {
		assert.False(t, c.Index().IsStale())
	}
}
