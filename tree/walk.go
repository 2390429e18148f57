// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides iterative traversal functions
// in up and down directions, used for keyboard navigation
// through the visible rows of a tree.

package tree

// Last returns the last node in the given node's subtree,
// in depth-first order.
func Last(n Node) Node {
	nb := n.AsTree()
	if nb.HasChildren() {
		return Last(nb.Child(nb.NumChildren() - 1))
	}
	return n
}

// Previous returns the previous node in the tree,
// or nil if this is the root node.
func Previous(n Node) Node {
	nb := n.AsTree()
	if nb.Parent == nil {
		return nil
	}
	myidx := nb.IndexInParent()
	if myidx > 0 {
		return Last(nb.Parent.AsTree().Child(myidx - 1))
	}
	return nb.Parent
}

// Next returns next node in the tree,
// or nil if this is the last node.
func Next(n Node) Node {
	if !n.AsTree().HasChildren() {
		return NextSibling(n)
	}
	return n.AsTree().Child(0)
}

// NextSibling returns the next sibling of this node,
// or of its nearest parent that has one, or nil if there is none.
func NextSibling(n Node) Node {
	nb := n.AsTree()
	if nb.Parent == nil {
		return nil
	}
	myidx := nb.IndexInParent()
	if myidx >= 0 && myidx < nb.Parent.AsTree().NumChildren()-1 {
		return nb.Parent.AsTree().Child(myidx + 1)
	}
	return NextSibling(nb.Parent)
}
