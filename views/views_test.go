// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"fmt"
	"path/filepath"
	"testing"

	"cogentcore.org/modelview/events"
	"cogentcore.org/modelview/events/key"
	"cogentcore.org/modelview/items"
	"cogentcore.org/modelview/math32"
	"cogentcore.org/modelview/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedList(n int) *items.ListModel[*items.Text] {
	vals := make([]string, n)
	for i := range vals {
		vals[i] = fmt.Sprintf("s%d", i)
	}
	return items.NewStringList(vals...)
}

// texts returns the strings of the visible companions.
func texts(v View) []string {
	var s []string
	for _, c := range v.Visible() {
		s = append(s, c.String())
	}
	return s
}

// assertPool checks that the pool of the given view has the shape of
// its model, and that every companion in it has the fresh index of its slot.
func assertPool(t *testing.T, fb *FlatBase) {
	t.Helper()
	m := fb.Model()
	rows, cols := fb.Shape()
	require.Equal(t, m.RowCount(root), rows)
	require.Equal(t, m.ColCount(root), cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			comp := fb.Companion(r, c)
			if comp == nil {
				continue
			}
			assert.True(t, comp.Index().Equal(m.Index(r, c, root)), "slot %d,%d has %v", r, c, comp.Index())
			assert.False(t, comp.Index().IsStale())
		}
	}
}

func TestListViewVirtualization(t *testing.T) {
	m := numberedList(100)
	lv := NewListView(nil)
	lv.SetSize(math32.Vec2(200, 50))
	lv.SetModel(m)
	assert.Equal(t, []string{"s0", "s1", "s2"}, texts(lv))
	assert.Equal(t, 3, lv.Materialized())
	assert.Equal(t, math32.Vec2(200, 2000), lv.ContentSize())
	assertPool(t, &lv.FlatBase)

	lv.ScrollTo(math32.Vec2(0, 1000))
	assert.Equal(t, []string{"s50", "s51", "s52"}, texts(lv))
	assert.Equal(t, 3, lv.Materialized())
	assertPool(t, &lv.FlatBase)

	lv.ScrollTo(math32.Vec2(0, 5000))
	assert.Equal(t, float32(1950), lv.Scroll.Y)
	assert.Equal(t, []string{"s97", "s98", "s99"}, texts(lv))

	lv.HandleEvent(events.NewScroll(math32.Vec2(10, 10), math32.Vec2(0, -1950)))
	assert.Equal(t, float32(0), lv.Scroll.Y)
	assert.Equal(t, "s0", lv.Visible()[0].String())
}

func TestListViewInPlace(t *testing.T) {
	m := numberedList(100)
	lv := NewListView(nil)
	lv.SetSize(math32.Vec2(200, 50))
	lv.SetModel(m)
	first := lv.Companion(0, 0)

	require.NoError(t, m.InsertRows(0, 2, root))
	assert.Equal(t, []string{"", "", "s0"}, texts(lv))
	assert.Same(t, first, lv.Companion(2, 0))
	assert.Equal(t, 3, lv.Materialized())
	assertPool(t, &lv.FlatBase)

	require.NoError(t, m.RemoveRows(0, 3, root))
	assert.Equal(t, []string{"s1", "s2", "s3"}, texts(lv))
	assertPool(t, &lv.FlatBase)

	require.NoError(t, m.MoveRows(root, 0, root, 10, 1))
	assert.Equal(t, []string{"s2", "s3", "s4"}, texts(lv))
	assertPool(t, &lv.FlatBase)

	require.NoError(t, m.SetItemData(m.Index(1, 0, root), "changed", models.DisplayRole))
	assert.Equal(t, []string{"s2", "changed", "s4"}, texts(lv))

	require.NoError(t, m.Append(items.NewText("last")))
	assert.Equal(t, 100, m.RowCount(root))
	assertPool(t, &lv.FlatBase)

	m.Silently(func() {
		m.List.Values = m.List.Values[:5]
	})
	m.EmitModelUpdated()
	assertPool(t, &lv.FlatBase)
	assert.Equal(t, []string{"s2", "changed", "s4"}, texts(lv))
}

func TestListViewReuse(t *testing.T) {
	made := 0
	reg := NewStandardRegistry()
	reg.Register(models.TextKind, func(v View, rt models.RoleType) Companion {
		made++
		return NewLabel(v, rt.Role)
	})
	lv := NewListView(reg)
	lv.SetSize(math32.Vec2(200, 50))
	lv.SetModel(numberedList(100))
	assert.Equal(t, 3, made)
	for y := float32(100); y < 1500; y += 100 {
		lv.ScrollTo(math32.Vec2(0, y))
	}
	assert.Equal(t, 3, made)
	lv.ScrollTo(math32.Vec2(0, 15))
	assert.Equal(t, 4, made)
	assert.Equal(t, 4, lv.Materialized())

	lv.Settings.ReleaseHidden = false
	lv.ScrollTo(math32.Vec2(0, 500))
	assert.Equal(t, 7, lv.Materialized())
	assert.Len(t, lv.Visible(), 3)
	assertPool(t, &lv.FlatBase)
}

func TestCurrentIndex(t *testing.T) {
	m := items.NewStringList("a", "b", "c", "d")
	lv := NewListView(nil)
	lv.SetSize(math32.Vec2(100, 200))
	lv.SetModel(m)
	changes := 0
	lv.OnCurrentChanged(func(old, cur models.Index) { changes++ })
	data := func() any { return m.ItemData(lv.CurrentIndex(), models.DisplayRole) }

	assert.False(t, lv.CurrentIndex().IsValid())
	assert.True(t, lv.SetCurrentIndex(m.Index(2, 0, root)))
	assert.False(t, lv.SetCurrentIndex(m.Index(2, 0, root)))
	assert.Equal(t, 1, changes)
	assert.True(t, lv.ItemWidget(lv.CurrentIndex()).IsSelected())

	require.NoError(t, m.InsertRows(0, 1, root))
	assert.Equal(t, 3, lv.CurrentIndex().Row())
	assert.Equal(t, "c", data())
	assert.True(t, lv.ItemWidget(lv.CurrentIndex()).IsSelected())
	assert.False(t, lv.Companion(2, 0).IsSelected())

	require.NoError(t, m.MoveRows(root, 3, root, 0, 1))
	assert.Equal(t, 0, lv.CurrentIndex().Row())
	assert.Equal(t, "c", data())
	assert.Equal(t, 1, changes)

	require.NoError(t, m.RemoveRows(0, 1, root))
	assert.False(t, lv.CurrentIndex().IsValid())
	assert.Equal(t, 2, changes)
	for _, c := range lv.Visible() {
		assert.False(t, c.IsSelected())
	}

	idx := m.Index(0, 0, root)
	require.NoError(t, m.InsertRows(0, 1, root))
	assert.False(t, lv.SetCurrentIndex(idx))
	other := items.NewStringList("x")
	assert.False(t, lv.SetCurrentIndex(other.Index(0, 0, root)))
	assert.Equal(t, 2, changes)
}

func TestSelectionPress(t *testing.T) {
	m := items.NewStringList("a", "b", "c", "d")
	lv := NewListView(nil)
	lv.SetSize(math32.Vec2(100, 100))
	lv.SetModel(m)
	changes := 0
	lv.OnCurrentChanged(func(old, cur models.Index) { changes++ })
	mouse := func(typ events.Types, y float32) {
		lv.HandleEvent(events.NewMouse(typ, events.Left, math32.Vec2(10, y)))
	}

	mouse(events.MouseDown, 25)
	assert.True(t, lv.Companion(1, 0).IsSelected())
	assert.False(t, lv.CurrentIndex().IsValid())
	mouse(events.MouseUp, 65)
	assert.False(t, lv.Companion(1, 0).IsSelected())
	assert.False(t, lv.CurrentIndex().IsValid())
	assert.Equal(t, 0, changes)

	mouse(events.MouseDown, 25)
	mouse(events.MouseUp, 30)
	assert.Equal(t, 1, lv.CurrentIndex().Row())
	assert.True(t, lv.Companion(1, 0).IsSelected())
	assert.Equal(t, 1, changes)

	mouse(events.MouseDown, 22)
	mouse(events.MouseUp, 38)
	assert.Equal(t, 1, changes)

	mouse(events.MouseDown, 65)
	assert.True(t, lv.Companion(3, 0).IsSelected())
	lv.HandleEvent(events.NewBase(events.FocusLost))
	assert.False(t, lv.Companion(3, 0).IsSelected())
	assert.True(t, lv.Companion(1, 0).IsSelected())
	mouse(events.MouseUp, 65)
	assert.Equal(t, 1, lv.CurrentIndex().Row())

	lv.HandleEvent(events.NewMouse(events.MouseDown, events.Right, math32.Vec2(10, 65)))
	assert.False(t, lv.Companion(3, 0).IsSelected())
	assert.Nil(t, lv.HitTest(math32.Vec2(10, 150)))
}

func TestKeyNavigation(t *testing.T) {
	m := numberedList(10)
	lv := NewListView(nil)
	lv.SetSize(math32.Vec2(100, 60))
	lv.SetModel(m)
	press := func(code key.Codes) int {
		lv.HandleEvent(events.NewKey(code, 0))
		return lv.CurrentIndex().Row()
	}

	assert.Equal(t, 0, press(key.CodeDownArrow))
	assert.Equal(t, 1, press(key.CodeDownArrow))
	assert.Equal(t, 9, press(key.CodeEnd))
	assert.Equal(t, float32(140), lv.Scroll.Y)
	assert.True(t, lv.ItemWidget(lv.CurrentIndex()).IsSelected())
	assert.Equal(t, 8, press(key.CodeUpArrow))
	assert.Equal(t, float32(140), lv.Scroll.Y)
	assert.Equal(t, 0, press(key.CodeHome))
	assert.Equal(t, float32(0), lv.Scroll.Y)
	assert.Equal(t, 0, press(key.CodeUpArrow))
	assert.Equal(t, 3, press(key.CodePageDown))
	assert.Equal(t, float32(20), lv.Scroll.Y)
	assert.Equal(t, 0, press(key.CodePageUp))
	assert.Equal(t, 0, press(key.CodeRightArrow))
	press(key.CodeEscape)
	assert.False(t, lv.CurrentIndex().IsValid())
}

func TestToggleCheck(t *testing.T) {
	m := items.NewItemList(items.NewItem("i", "one", false), items.NewItem("j", "two", true))
	lv := NewListView(nil)
	lv.SetSize(math32.Vec2(300, 100))
	lv.SetModel(m)
	cp, ok := lv.Companion(0, 0).(*Composite)
	require.True(t, ok)
	assert.Equal(t, "<i> one [ ]", cp.String())
	assert.Equal(t, "<j> two [x]", lv.Companion(1, 0).String())

	lv.SetCurrentIndex(m.Index(0, 0, root))
	lv.HandleEvent(events.NewKey(key.CodeSpacebar, 0))
	assert.Equal(t, true, m.ItemData(m.Index(0, 0, root), models.CheckRole))
	assert.Equal(t, "<i> one [x]", cp.String())

	ck := cp.Part(models.CheckRole).(*Check)
	require.NoError(t, ck.Toggle())
	assert.Equal(t, "<i> one [ ]", cp.String())
	assert.NoError(t, lv.ToggleCheck(models.Index{}))

	box := cp.Box()
	assert.Equal(t, math32.B2(0, 0, 300, 20), box)
	assert.Equal(t, float32(300), cp.Part(models.CheckRole).Box().Max.X)
}

func TestModelLifecycle(t *testing.T) {
	m := items.NewStringList("a", "b")
	lv := NewListView(nil)
	lv.SetSize(math32.Vec2(100, 100))
	lv.SetModel(m)
	assert.Equal(t, 1, m.AttachCount())
	assert.ErrorIs(t, m.Destroy(false), models.ErrAttached)

	other := items.NewStringList("x")
	lv.SetModel(other)
	assert.Equal(t, 0, m.AttachCount())
	require.NoError(t, m.InsertRows(0, 1, root))
	assert.Equal(t, []string{"x"}, texts(lv))

	lv.SetCurrentIndex(other.Index(0, 0, root))
	require.NoError(t, other.Destroy(true))
	assert.Nil(t, lv.Model())
	assert.False(t, lv.CurrentIndex().IsValid())
	assert.Empty(t, lv.Visible())
	rows, cols := lv.Shape()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 0, cols)
}

func TestTableView(t *testing.T) {
	m := items.NewStringTable(5, 3)
	tv := NewTableView(nil)
	tv.SetSize(math32.Vec2(200, 50))
	tv.SetModel(m)
	assert.Len(t, tv.Visible(), 6)
	assert.Equal(t, math32.Vec2(360, 100), tv.ContentSize())
	assertPool(t, &tv.FlatBase)

	require.NoError(t, m.InsertCols(1, 1, root))
	assertPool(t, &tv.FlatBase)
	require.NoError(t, m.RemoveCols(0, 2, root))
	assertPool(t, &tv.FlatBase)
	require.NoError(t, m.InsertCols(0, 1, root))
	require.NoError(t, m.MoveCols(root, 0, root, 3, 1))
	assertPool(t, &tv.FlatBase)
	require.NoError(t, m.InsertRows(1, 2, root))
	assertPool(t, &tv.FlatBase)

	c := tv.HitTest(math32.Vec2(130, 25))
	require.NotNil(t, c)
	assert.Equal(t, 1, c.Index().Row())
	assert.Equal(t, 1, c.Index().Col())

	require.NoError(t, m.SetItemData(m.Index(0, 0, root), "hello world", models.DisplayRole))
	tv.FitColumn(0)
	assert.Equal(t, float32(88), tv.Widths.Size(0))
	assert.Equal(t, float32(88), tv.Companion(0, 0).Box().Max.X)

	tv.SetCurrentIndex(m.Index(0, 0, root))
	tv.HandleEvent(events.NewKey(key.CodeRightArrow, 0))
	assert.Equal(t, 1, tv.CurrentIndex().Col())
	tv.HandleEvent(events.NewKey(key.CodeEnd, 0))
	assert.Equal(t, 6, tv.CurrentIndex().Row())
	assert.Equal(t, 1, tv.CurrentIndex().Col())

	tv.SetRowHeight(0, 40)
	box, ok := tv.IndexBox(m.Index(1, 0, root))
	require.True(t, ok)
	assert.Equal(t, float32(40), box.Min.Y)
}

func TestSharedModel(t *testing.T) {
	m := items.NewStringTable(20, 2)
	for r := 0; r < 20; r++ {
		for c := 0; c < 2; c++ {
			require.NoError(t, m.SetItemData(m.Index(r, c, root), fmt.Sprintf("r%d c%d", r, c), models.DisplayRole))
		}
	}
	lv := NewListView(nil)
	lv.SetSize(math32.Vec2(200, 50))
	lv.SetModel(m)
	tv := NewTableView(nil)
	tv.SetSize(math32.Vec2(200, 50))
	tv.SetModel(m)

	var order []string
	lv.OnCurrentChanged(func(old, cur models.Index) { order = append(order, "list") })
	tv.OnCurrentChanged(func(old, cur models.Index) { order = append(order, "table") })
	m.On(models.RowsRemoved, &order, func(n *models.Notification) { order = append(order, "model") })

	require.True(t, lv.SetCurrentIndex(m.Index(5, 0, root)))
	require.True(t, tv.SetCurrentIndex(m.Index(5, 1, root)))
	order = nil

	check := func() {
		t.Helper()
		assertPool(t, &lv.FlatBase)
		assertPool(t, &tv.FlatBase)
		assert.Equal(t, lv.CurrentIndex().Row(), tv.CurrentIndex().Row())
	}

	require.NoError(t, m.InsertRows(0, 2, root))
	check()
	assert.Equal(t, 7, lv.CurrentIndex().Row())
	assert.Equal(t, "r5 c1", m.ItemData(tv.CurrentIndex(), models.DisplayRole))

	require.NoError(t, m.MoveRows(root, 7, root, 0, 1))
	check()
	assert.Equal(t, 0, tv.CurrentIndex().Row())
	assert.Equal(t, []string{"r5 c0", "", ""}, texts(lv))

	require.NoError(t, m.RemoveRows(1, 1, root))
	check()
	assert.Equal(t, []string{"model"}, order)

	order = nil
	require.NoError(t, m.RemoveRows(0, 1, root))
	check()
	assert.False(t, lv.CurrentIndex().IsValid())
	assert.False(t, tv.CurrentIndex().IsValid())
	assert.Equal(t, []string{"list", "table", "model"}, order)
	assert.Equal(t, 20, m.RowCount(root))
}

func TestFlowView(t *testing.T) {
	m := numberedList(10)
	fv := NewFlowView(nil)
	fv.SetSize(math32.Vec2(250, 100))
	fv.SetModel(m)
	assert.Equal(t, 3, fv.PerLine())
	assert.Equal(t, []string{"s0", "s1", "s2", "s3", "s4", "s5"}, texts(fv))
	assert.Equal(t, math32.Vec2(240, 320), fv.ContentSize())
	assertPool(t, &fv.FlatBase)

	box, ok := fv.IndexBox(m.Index(4, 0, root))
	require.True(t, ok)
	assert.Equal(t, math32.B2(80, 80, 160, 160), box)
	assert.Equal(t, 5, fv.HitTest(math32.Vec2(170, 90)).Index().Row())
	assert.Nil(t, fv.HitTest(math32.Vec2(245, 10)))

	nav := func(row int, code key.Codes) int {
		return fv.Navigate(m.Index(row, 0, root), code).Row()
	}
	assert.Equal(t, 7, nav(4, key.CodeDownArrow))
	assert.Equal(t, 1, nav(4, key.CodeUpArrow))
	assert.Equal(t, 5, nav(4, key.CodeRightArrow))
	assert.Equal(t, 3, nav(4, key.CodeLeftArrow))
	assert.Equal(t, 8, nav(8, key.CodeDownArrow))
	assert.Equal(t, 9, nav(0, key.CodeEnd))

	fv.SetSize(math32.Vec2(170, 100))
	assert.Equal(t, 2, fv.PerLine())
	assert.Equal(t, []string{"s0", "s1", "s2", "s3"}, texts(fv))
	assert.Equal(t, 4, fv.Materialized())
	assert.Equal(t, math32.Vec2(160, 400), fv.ContentSize())

	require.NoError(t, m.RemoveRows(0, 1, root))
	assert.Equal(t, []string{"s1", "s2", "s3", "s4"}, texts(fv))
	assertPool(t, &fv.FlatBase)

	fv.SetLineHeight(0, 10)
	assert.Equal(t, []string{"s1", "s2", "s3", "s4", "s5", "s6"}, texts(fv))
}

func TestRegistry(t *testing.T) {
	r := NewStandardRegistry()
	lv := NewListView(r)
	_, ok := r.New(lv, models.TextRoles).(*Label)
	assert.True(t, ok)
	_, ok = r.New(lv, nil).(*Label)
	assert.True(t, ok)
	_, ok = r.New(lv, []models.RoleType{{Role: models.UserRole, Kind: models.RoleKinds(99)}}).(*Label)
	assert.True(t, ok)

	cp, ok := r.New(lv, items.ItemRoles).(*Composite)
	require.True(t, ok)
	assert.Len(t, cp.Parts, 3)
	_, ok = cp.Part(models.CheckRole).(*Check)
	assert.True(t, ok)
	_, ok = cp.Part(models.IconRole).(*Icon)
	assert.True(t, ok)
	assert.Nil(t, cp.Part(models.ToolTipRole))

	assert.True(t, r.Has(models.IconKind))
	assert.False(t, NewRegistry().Has(models.IconKind))
	r.Register(models.IconKind, func(v View, rt models.RoleType) Companion { return NewLabel(v, rt.Role) })
	_, ok = r.New(lv, []models.RoleType{{Role: models.IconRole, Kind: models.IconKind}}).(*Label)
	assert.True(t, ok)

	assert.True(t, r.Unregister(models.CheckKind))
	assert.False(t, r.Unregister(models.CheckKind))
	assert.False(t, r.Has(models.CheckKind))
	_, ok = r.New(lv, []models.RoleType{{Role: models.CheckRole, Kind: models.CheckKind}}).(*Label)
	assert.True(t, ok)
}

func TestSettings(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range []string{".toml", ".yaml", ".json"} {
		var se Settings
		se.Defaults()
		se.RowHeight = 24
		se.ReleaseHidden = false
		se.OpenDepth = 3
		fn := filepath.Join(dir, "settings"+ext)
		require.NoError(t, SaveSettings(&se, fn))

		var got Settings
		got.Defaults()
		require.NoError(t, OpenSettings(&got, fn))
		assert.Equal(t, se, got, ext)
	}
	var se Settings
	assert.Error(t, OpenSettings(&se, filepath.Join(dir, "missing.toml")))
}
