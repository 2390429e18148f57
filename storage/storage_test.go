// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	ls := NewList(func() string { return "?" }, "a", "b", "c")
	ls.InsertRows(1, 2)
	assert.Equal(t, []string{"a", "?", "?", "b", "c"}, ls.Values)
	ls.MoveRows(0, 1, 3)
	assert.Equal(t, []string{"?", "?", "a", "b", "c"}, ls.Values)
	ls.RemoveRows(0, 2)
	assert.Equal(t, []string{"a", "b", "c"}, ls.Values)
	ls.Set(1, "B")
	*ls.Ptr(2) = "C"
	assert.Equal(t, "B", ls.At(1))
	assert.Equal(t, 3, ls.Len())
	assert.Equal(t, "C", ls.At(2))
}

// tableRows returns the table values as rows, for comparison.
func tableRows[T any](tb *Table[T]) [][]T {
	rows := make([][]T, tb.Len())
	for r := range rows {
		rows[r] = append([]T(nil), tb.Row(r)...)
	}
	return rows
}

func TestTable(t *testing.T) {
	n := 0
	tb := NewTable(2, 2, func() int { n++; return n })
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, tableRows(tb))

	tb.InsertCols(1, 1)
	assert.Equal(t, [][]int{{1, 5, 2}, {3, 6, 4}}, tableRows(tb))
	tb.InsertRows(0, 1)
	assert.Equal(t, [][]int{{7, 8, 9}, {1, 5, 2}, {3, 6, 4}}, tableRows(tb))

	tb.MoveRows(0, 1, 3)
	want := [][]int{{1, 5, 2}, {3, 6, 4}, {7, 8, 9}}
	if diff := cmp.Diff(want, tableRows(tb)); diff != "" {
		t.Errorf("after MoveRows (-want +got):\n%s", diff)
	}
	tb.MoveCols(2, 1, 0)
	want = [][]int{{2, 1, 5}, {4, 3, 6}, {9, 7, 8}}
	if diff := cmp.Diff(want, tableRows(tb)); diff != "" {
		t.Errorf("after MoveCols (-want +got):\n%s", diff)
	}
	tb.RemoveCols(1, 2)
	tb.RemoveRows(1, 1)
	assert.Equal(t, [][]int{{2}, {9}}, tableRows(tb))
	assert.Equal(t, 1, tb.Cols())
	tb.Set(1, 0, 90)
	assert.Equal(t, 90, tb.At(1, 0))
	assert.Equal(t, 90, *tb.Ptr(1, 0))
}

// snapshot describes the tree below the given id as nested names.
type snapshot struct {
	Value string
	Kids  []snapshot
}

func snap(tr *Tree[string], id int) snapshot {
	s := snapshot{Value: tr.Value(id)}
	for _, k := range tr.Children(id) {
		s.Kids = append(s.Kids, snap(tr, k))
	}
	return s
}

func TestTreeRemoveRelocates(t *testing.T) {
	tr := NewTree[string](nil)
	ids := tr.Insert(0, 0, 2)
	assert.Equal(t, []int{1, 2}, ids)
	tr.SetValue(1, "one")
	tr.SetValue(2, "two")
	assert.Equal(t, 2, tr.idToSlot[2])

	removed := tr.Remove(0, 0, 1)
	assert.Equal(t, []int{1}, removed)
	// the last node fills the freed slot
	assert.Equal(t, 1, tr.idToSlot[2])
	assert.Equal(t, -1, tr.idToSlot[1])
	assert.True(t, tr.Has(2))
	assert.False(t, tr.Has(1))
	assert.Equal(t, "two", tr.Value(2))
	assert.Equal(t, 0, tr.Row(2))
	require.NoError(t, tr.checkInvariants())

	// freed ids are reused before new ones
	assert.Equal(t, []int{1, 3}, tr.Insert(2, 0, 2))
	require.NoError(t, tr.checkInvariants())
	assert.Equal(t, 1, tr.Reuses(1))
	assert.Equal(t, 0, tr.Reuses(2))
	assert.Equal(t, 0, tr.Reuses(3))
	assert.Equal(t, 0, tr.Reuses(99))

	tr.Remove(2, 0, 1)
	assert.Equal(t, 2, tr.Reuses(1))
}

func TestTreeEdits(t *testing.T) {
	tr := NewTree(func() string { return "" })
	top := tr.Insert(0, 0, 3) // 1 2 3
	for i, id := range top {
		tr.SetValue(id, string(rune('a'+i)))
	}
	kids := tr.Insert(1, 0, 2) // 4 5 under a
	tr.SetValue(kids[0], "a1")
	tr.SetValue(kids[1], "a2")
	grand := tr.Insert(kids[1], 0, 1)
	tr.SetValue(grand[0], "a2x")
	require.NoError(t, tr.checkInvariants())
	assert.Equal(t, 7, tr.Len())

	want := snapshot{Kids: []snapshot{
		{Value: "a", Kids: []snapshot{{Value: "a1"}, {Value: "a2", Kids: []snapshot{{Value: "a2x"}}}}},
		{Value: "b"}, {Value: "c"},
	}}
	if diff := cmp.Diff(want, snap(tr, 0)); diff != "" {
		t.Fatalf("built tree (-want +got):\n%s", diff)
	}

	// a node can not be moved under itself
	assert.ErrorIs(t, tr.Move(0, 0, kids[1], 0, 1), ErrMoveIntoSelf)

	// move a2 (with a2x) to the end of the root
	require.NoError(t, tr.Move(1, 1, 0, 3, 1))
	assert.Equal(t, 0, tr.Parent(kids[1]))
	assert.Equal(t, 3, tr.Row(kids[1]))
	require.NoError(t, tr.checkInvariants())

	// same-parent move, dst after the block lands at dst-count
	require.NoError(t, tr.Move(0, 0, 0, 2, 1))
	assert.Equal(t, []int{2, 1, 3, kids[1]}, tr.Children(0))
	require.NoError(t, tr.checkInvariants())

	// removing a subtree removes its descendants in pre-order, and
	// every surviving id still resolves to its own node
	removed := tr.Remove(0, 3, 1)
	assert.Equal(t, []int{kids[1], grand[0]}, removed)
	require.NoError(t, tr.checkInvariants())
	for _, id := range []int{1, 2, 3, kids[0]} {
		assert.True(t, tr.Has(id))
		assert.Equal(t, id, tr.nodes[tr.idToSlot[id]].id)
	}
	assert.Equal(t, "a1", tr.Value(tr.Child(1, 0)))

	var order []int
	tr.Walk(0, func(id int) bool {
		order = append(order, id)
		return id != 1
	})
	assert.Equal(t, []int{0, 2, 1, 3}, order)
}
