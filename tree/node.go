// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides a small tree system of parent-owned nodes,
// centered on the core [Node] interface. Views use it to hold
// their per-item container nodes.
package tree

// Node is an interface that all tree nodes satisfy. The core functionality
// of a tree node is defined on [NodeBase], and all higher-level tree types
// must embed it. You can call [Node.AsTree] to get the [NodeBase] of a Node
// and access the core tree functionality.
type Node interface {

	// AsTree returns the [NodeBase] of this Node. Most core
	// tree functionality is implemented on [NodeBase].
	AsTree() *NodeBase

	// Destroy recursively deletes and destroys the node, all of its children,
	// and all of its children's children, etc. Node types can implement this
	// to do additional necessary destruction; if they do, they should call
	// [NodeBase.Destroy] at the end of their implementation.
	Destroy()
}

// InitNode sets the [NodeBase.This] field of the given node,
// which must be done before it is used. [NodeBase.AddChild] and
// [NodeBase.InsertChild] call it automatically.
func InitNode(n Node) {
	nb := n.AsTree()
	if nb.This != n {
		nb.This = n
	}
}

// New returns a new initialized root node of the given type,
// with the given name.
func New[T any, PT interface {
	Node
	*T
}](name string) PT {
	n := PT(new(T))
	InitNode(n)
	n.AsTree().Name = name
	return n
}

// IsRoot returns whether the given node is the root node in its tree.
func IsRoot(n Node) bool {
	return n.AsTree().Parent == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	if IsRoot(n) {
		return n
	}
	return Root(n.AsTree().Parent)
}

// IndexOf returns the index of the given node in the given slice,
// or -1 if it is not found. The optional startIndex argument allows
// for optimized bidirectional searching when there is a guess about
// where the node might be.
func IndexOf(slice []Node, child Node, startIndex ...int) int {
	return search(slice, func(e Node) bool { return e == child }, startIndex...)
}

// search looks outward from the given starting index.
func search(slice []Node, match func(e Node) bool, startIndex ...int) int {
	n := len(slice)
	if n == 0 {
		return -1
	}
	si := n / 2
	if len(startIndex) > 0 && startIndex[0] >= 0 {
		si = min(startIndex[0], n-1)
	}
	for d := 0; si-d >= 0 || si+d < n; d++ {
		if i := si + d; i < n && match(slice[i]) {
			return i
		}
		if i := si - d; d > 0 && i >= 0 && match(slice[i]) {
			return i
		}
	}
	return -1
}
