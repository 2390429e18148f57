// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"slices"

	"cogentcore.org/modelview/base/errors"
	"cogentcore.org/modelview/base/slicesx"
)

// treeNode is one node of a [Tree], stored in a slot of the dense node array.
type treeNode[T any] struct {
	id     int
	parent int
	row    int
	kids   []int
	value  T
}

// Tree is a tree of values addressed by stable integer ids.
// Id 0 is the root, which always exists.
//
// Nodes live in a dense array of slots, and idToSlot maps each id to the
// slot that currently holds it. Removing a node moves the last node
// of the array into the freed slot, so slots of unrelated nodes change
// on removal but their ids never do. Only ids are exposed.
// Freed ids are reused before new ones are assigned, and the reuse
// count of each id tells a reused id apart from its earlier holders.
type Tree[T any] struct {
	// New makes the value of each inserted node.
	// If it is nil, zero values are used.
	New func() T

	nodes    []treeNode[T]
	idToSlot []int

	// reuses counts the times each id has been freed.
	reuses []int

	// free is the stack of freed ids.
	free []int
}

// NewTree returns a new [Tree] containing only the root,
// using the given fill function for new values.
func NewTree[T any](fill func() T) *Tree[T] {
	t := &Tree[T]{New: fill}
	t.alloc(-1)
	return t
}

// newValue returns a new value for an inserted node.
func (t *Tree[T]) newValue() T {
	if t.New != nil {
		return t.New()
	}
	var zv T
	return zv
}

// alloc makes a new node with the given parent and returns its id.
func (t *Tree[T]) alloc(parent int) int {
	var id int
	if n := len(t.free); n > 0 {
		id = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		id = len(t.idToSlot)
		t.idToSlot = append(t.idToSlot, -1)
		t.reuses = append(t.reuses, 0)
	}
	t.idToSlot[id] = len(t.nodes)
	t.nodes = append(t.nodes, treeNode[T]{id: id, parent: parent, value: t.newValue()})
	return id
}

// release frees the node with the given id, filling its slot
// with the last node of the array.
func (t *Tree[T]) release(id int) {
	slot := t.idToSlot[id]
	last := len(t.nodes) - 1
	if slot != last {
		t.nodes[slot] = t.nodes[last]
		t.idToSlot[t.nodes[slot].id] = slot
	}
	t.nodes[last] = treeNode[T]{}
	t.nodes = t.nodes[:last]
	t.idToSlot[id] = -1
	t.reuses[id]++
	t.free = append(t.free, id)
}

// at returns the node with the given id, which must be live.
// The pointer is only valid until the next structural change.
func (t *Tree[T]) at(id int) *treeNode[T] {
	return &t.nodes[t.idToSlot[id]]
}

// restamp sets the row of the children of the given node from row on.
func (t *Tree[T]) restamp(id, row int) {
	kids := t.at(id).kids
	for i := row; i < len(kids); i++ {
		t.at(kids[i]).row = i
	}
}

// Len returns the number of live nodes, including the root.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Has returns whether the given id is a live node.
func (t *Tree[T]) Has(id int) bool {
	return id >= 0 && id < len(t.idToSlot) && t.idToSlot[id] >= 0
}

// Reuses returns the number of times the given id has been freed,
// so that a node holding a reused id can be told apart from the
// earlier nodes that held it.
func (t *Tree[T]) Reuses(id int) int {
	if id < 0 || id >= len(t.reuses) {
		return 0
	}
	return t.reuses[id]
}

// Parent returns the id of the parent of the given node, or -1 for the root.
func (t *Tree[T]) Parent(id int) int {
	return t.at(id).parent
}

// Row returns the row of the given node within its parent.
func (t *Tree[T]) Row(id int) int {
	return t.at(id).row
}

// ChildCount returns the number of children of the given node.
func (t *Tree[T]) ChildCount(id int) int {
	return len(t.at(id).kids)
}

// Child returns the id of the child at the given row of the given node.
func (t *Tree[T]) Child(id, row int) int {
	return t.at(id).kids[row]
}

// Children returns a copy of the ids of the children of the given node.
func (t *Tree[T]) Children(id int) []int {
	return slices.Clone(t.at(id).kids)
}

// Value returns the value of the given node.
func (t *Tree[T]) Value(id int) T {
	return t.at(id).value
}

// SetValue sets the value of the given node.
func (t *Tree[T]) SetValue(id int, v T) {
	t.at(id).value = v
}

// Ptr returns a pointer to the value of the given node,
// valid until the next structural change.
func (t *Tree[T]) Ptr(id int) *T {
	return &t.at(id).value
}

// Insert inserts count new nodes at the given row of the parent,
// and returns their ids.
func (t *Tree[T]) Insert(parent, row, count int) []int {
	ids := make([]int, count)
	for i := range ids {
		ids[i] = t.alloc(parent)
	}
	p := t.at(parent)
	p.kids = slices.Insert(p.kids, row, ids...)
	t.restamp(parent, row)
	return ids
}

// Remove removes count children of the parent starting at the given row,
// with all of their descendants, and returns the removed ids in pre-order.
// The cost is proportional to the number of removed nodes.
func (t *Tree[T]) Remove(parent, row, count int) []int {
	p := t.at(parent)
	var removed []int
	for _, root := range p.kids[row : row+count] {
		t.Walk(root, func(id int) bool {
			removed = append(removed, id)
			return true
		})
	}
	p.kids = slices.Delete(p.kids, row, row+count)
	t.restamp(parent, row)
	for _, id := range removed {
		t.release(id)
	}
	return removed
}

// ErrMoveIntoSelf is returned by [Tree.Move] for a destination
// inside one of the moved subtrees.
var ErrMoveIntoSelf = errors.New("storage: cannot move a node into its own subtree")

// Move moves count children of srcParent starting at srcRow to the gap
// dstRow under dstParent. Within one parent, a destination inside
// [srcRow, srcRow+count] leaves the tree unchanged.
func (t *Tree[T]) Move(srcParent, srcRow, dstParent, dstRow, count int) error {
	for a := dstParent; a > 0; a = t.Parent(a) {
		if t.Parent(a) == srcParent && t.Row(a) >= srcRow && t.Row(a) < srcRow+count {
			return fmt.Errorf("%w: node %d", ErrMoveIntoSelf, a)
		}
	}
	if srcParent == dstParent {
		kids := t.at(srcParent).kids
		slicesx.MoveBlock(kids, srcRow, count, dstRow)
		t.restamp(srcParent, min(srcRow, dstRow))
		return nil
	}
	src := t.at(srcParent)
	moved := slices.Clone(src.kids[srcRow : srcRow+count])
	src.kids = slices.Delete(src.kids, srcRow, srcRow+count)
	t.restamp(srcParent, srcRow)
	dst := t.at(dstParent)
	dst.kids = slices.Insert(dst.kids, dstRow, moved...)
	for _, id := range moved {
		t.at(id).parent = dstParent
	}
	t.restamp(dstParent, dstRow)
	return nil
}

// Walk calls the given function on the given node and its descendants
// in pre-order. Returning false skips the children of that node.
func (t *Tree[T]) Walk(id int, fun func(id int) bool) {
	stack := []int{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fun(cur) {
			continue
		}
		kids := t.at(cur).kids
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
}

// checkInvariants returns an error describing the first broken
// invariant of the storage, if any.
func (t *Tree[T]) checkInvariants() error {
	for slot, n := range t.nodes {
		if t.idToSlot[n.id] != slot {
			return fmt.Errorf("slot %d holds id %d, which maps to slot %d", slot, n.id, t.idToSlot[n.id])
		}
		for row, k := range n.kids {
			kn := t.at(k)
			if kn.parent != n.id || kn.row != row {
				return fmt.Errorf("child %d of %d has parent %d row %d, want row %d", k, n.id, kn.parent, kn.row, row)
			}
		}
	}
	live := 0
	for _, s := range t.idToSlot {
		if s >= 0 {
			live++
		}
	}
	if live != len(t.nodes) {
		return fmt.Errorf("%d ids are live but there are %d nodes", live, len(t.nodes))
	}
	return nil
}
