// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"slices"
)

// NodeBase implements the [Node] interface and provides the core functionality
// for the tree system. You must use NodeBase as an embedded struct
// in all higher-level tree types.
type NodeBase struct {

	// Name is the name of this node, used for paths and debugging.
	Name string

	// This is the value of this Node as its true underlying type. This allows methods
	// defined on base types to call methods defined on higher-level types.
	// It is set to nil when the node is destroyed.
	This Node

	// Parent is the parent of this node, which is set automatically when this node is
	// added as a child of a parent.
	Parent Node

	// Children is the list of children of this node. All of them are set to have this node
	// as their parent.
	Children []Node

	// index is the last value of our index, which is used as a starting point for
	// finding us in our parent next time. It is not guaranteed to be accurate;
	// use the [NodeBase.IndexInParent] method.
	index int
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// String returns the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// Path returns the path to this node from the tree root,
// using node names separated by / delimiters.
func (n *NodeBase) Path() string {
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + n.Name
	}
	return "/" + n.Name
}

// Parents:

// IndexInParent returns our index within our parent node. It caches the
// last value and uses that for an optimized search so subsequent calls
// are typically quite fast. Returns -1 if we don't have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	idx := IndexOf(n.Parent.AsTree().Children, n.This, n.index) // very fast if index is close
	n.index = idx
	return idx
}

// Depth returns the number of parents above this node.
func (n *NodeBase) Depth() int {
	d := 0
	n.WalkUpParent(func(Node) bool {
		d++
		return Continue
	})
	return d
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first child that has the given name, and nil
// if no such element is found.
func (n *NodeBase) ChildByName(name string) Node {
	i := slices.IndexFunc(n.Children, func(k Node) bool { return k.AsTree().Name == name })
	return n.Child(i)
}

// Adding and Inserting Children:

// AddChild adds given child at end of children list.
// The kid node is assumed to not be on another tree.
func (n *NodeBase) AddChild(kid Node) {
	InitNode(kid)
	n.Children = append(n.Children, kid)
	kid.AsTree().Parent = n.This
	kid.AsTree().index = len(n.Children) - 1
}

// InsertChild adds given child at position in children list.
// The kid node is assumed to not be on another tree.
func (n *NodeBase) InsertChild(kid Node, index int) {
	InitNode(kid)
	n.Children = slices.Insert(n.Children, index, kid)
	kid.AsTree().Parent = n.This
	kid.AsTree().index = index
}

// Deleting Children:

// DeleteChildAt deletes child at the given index. It returns false
// if there is no child at the given index.
func (n *NodeBase) DeleteChildAt(index int) bool {
	child := n.Child(index)
	if child == nil {
		return false
	}
	n.Children = slices.Delete(n.Children, index, index+1)
	child.Destroy()
	return true
}

// DeleteChildren deletes all children nodes.
func (n *NodeBase) DeleteChildren() {
	kids := n.Children
	n.Children = n.Children[:0] // preserves capacity of list
	for _, kid := range kids {
		if kid == nil {
			continue
		}
		kid.Destroy()
	}
}

// Destroy recursively deletes and destroys the node, all of its children,
// and all of its children's children, etc.
func (n *NodeBase) Destroy() {
	if n.This == nil { // already destroyed
		return
	}
	n.DeleteChildren()
	n.Parent = nil
	n.This = nil
}

// Tree Walking:

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the node and all of its parents.
// It stops walking if the function returns [Break] and keeps walking if
// it returns [Continue]. It returns whether walking was finished
// (false if it was aborted with [Break]).
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	if !fun(n.This) {
		return false
	}
	return n.WalkUpParent(fun)
}

// WalkUpParent calls the given function on all of the node's parents (but not
// the node itself). It stops walking if the function returns [Break].
func (n *NodeBase) WalkUpParent(fun func(n Node) bool) bool {
	cur := n.Parent
	for cur != nil {
		if !fun(cur) {
			return false
		}
		parent := cur.AsTree().Parent
		if parent == cur { // prevent loops
			return true
		}
		cur = parent
	}
	return true
}

// WalkDown calls the given function on the node and all of its children
// in a depth-first manner, sequentially in the current goroutine.
// It stops walking the current branch of the tree if the function
// returns [Break] and keeps walking if it returns [Continue].
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	if !fun(n.This) || n.This == nil {
		return
	}
	for _, kid := range n.Children {
		kid.AsTree().WalkDown(fun)
	}
}
