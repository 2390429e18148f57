// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"log/slog"
	"sort"

	"cogentcore.org/modelview/base/plan"
	"cogentcore.org/modelview/events/key"
	"cogentcore.org/modelview/math32"
	"cogentcore.org/modelview/models"
	"cogentcore.org/modelview/tree"
)

// TreeNode is the container of one row of a [TreeView]. The children
// of a node are only built while it is expanded, so the nodes of a
// tree view are always the rows that can be shown.
type TreeNode struct {
	tree.NodeBase

	// View is the tree view that owns the node.
	View *TreeView

	// Level is the depth of the row in the model, 1 for top-level rows.
	// The root node, which has no row, is at level 0.
	Level int

	// Expanded is whether the children of the row are shown.
	Expanded bool

	// Offset is the top of the node relative to the top of its parent.
	Offset float32

	// Height is the height of the row plus that of all the shown
	// descendants of it.
	Height float32

	// Companions are the companions of each column of the row,
	// nil where not materialized.
	Companions []Companion

	// index is the column 0 index of the row, and parent that of its parent.
	index, parent models.Index
}

// Index returns the column 0 index of the row of the node.
func (tn *TreeNode) Index() models.Index {
	return tn.index
}

// parentNode returns the parent of the node, or nil for the root.
func (tn *TreeNode) parentNode() *TreeNode {
	if tn.Parent == nil {
		return nil
	}
	return tn.Parent.(*TreeNode)
}

// child returns the given child of the node.
func (tn *TreeNode) child(i int) *TreeNode {
	return tn.Children[i].(*TreeNode)
}

// Top returns the top of the node in content coordinates.
func (tn *TreeNode) Top() float32 {
	y := float32(0)
	for n := tn; n != nil; n = n.parentNode() {
		y += n.Offset
	}
	return y
}

// rowHeight returns the height of the node's own row.
func (tn *TreeNode) rowHeight() float32 {
	if tn.Level == 0 {
		return 0
	}
	return tn.View.Settings.RowHeight
}

// cellIndex returns the index of the given column of the row.
func (tn *TreeNode) cellIndex(col int) models.Index {
	return tn.index.Model().Index(tn.index.Row(), col, tn.parent)
}

// restamp points the companions of the node at its current row.
func (tn *TreeNode) restamp() {
	for col, c := range tn.Companions {
		if c != nil {
			c.SetIndex(tn.cellIndex(col))
			tn.View.selectMaterialized(c)
		}
	}
}

// releaseCompanions releases all of the companions of the node.
func (tn *TreeNode) releaseCompanions() {
	for i, c := range tn.Companions {
		if c != nil {
			if c == tn.View.pressed {
				tn.View.pressed = nil
			}
			tn.View.pool.release(c)
			tn.Companions[i] = nil
		}
	}
}

// Destroy releases the companions of the node and all of its
// descendants, and forgets them in the view.
func (tn *TreeNode) Destroy() {
	if tn.This == nil {
		return
	}
	tn.releaseCompanions()
	if tn.Level > 0 && tn.View.nodes[tn.index.Tag()] == tn {
		delete(tn.View.nodes, tn.index.Tag())
	}
	tn.NodeBase.Destroy()
}

// TreeView is a view of a tree model, with a [TreeNode] for each row
// that can be shown. It syncs its nodes with the model on every
// structural change, keeping the node, companions and expansion state
// of each row by its stable [models.RowTag].
type TreeView struct {
	ViewBase

	// Root is the node of the invisible root of the model.
	Root *TreeNode

	// Widths are the widths of the columns.
	Widths Extents

	// expanded are the expansion states that differ from the default.
	expanded map[models.RowTag]bool

	// nodes are the nodes by the tag of their row.
	nodes map[models.RowTag]*TreeNode

	// pool only holds the free companions.
	pool pool

	// live are the nodes with materialized companions.
	live []*TreeNode

	// visible are the nodes whose row intersects the viewport, in order.
	visible []*TreeNode

	// pass numbers the layout passes, to find nodes that are no longer visible.
	pass  int
	marks map[*TreeNode]int
}

// NewTreeView returns a new [TreeView] with the given companion
// registry, or a standard one if it is nil.
func NewTreeView(reg *Registry) *TreeView {
	tv := &TreeView{}
	tv.InitView(tv, reg)
	tv.expanded = map[models.RowTag]bool{}
	tv.nodes = map[models.RowTag]*TreeNode{}
	tv.marks = map[*TreeNode]int{}
	tv.Root = tv.newNode(0)
	return tv
}

func (tv *TreeView) newNode(level int) *TreeNode {
	tn := &TreeNode{View: tv, Level: level}
	tree.InitNode(tn)
	tn.Height = tn.rowHeight()
	return tn
}

// Node returns the node of the given index, or nil if it is not shown.
func (tv *TreeView) Node(idx models.Index) *TreeNode {
	if !tv.isCurrent(idx) {
		return nil
	}
	return tv.nodes[idx.Tag()]
}

func (tv *TreeView) isCurrent(idx models.Index) bool {
	return idx.IsValid() && tv.model != nil && idx.Model() == tv.model && !idx.IsStale()
}

// isAlive returns whether the row with the given tag is still in the
// model. A row that reuses the id of a removed row has a different tag.
func (tv *TreeView) isAlive(tag models.RowTag) bool {
	im, ok := tv.model.(idModel)
	return ok && im.IsLive(tag)
}

// expandedState returns whether the row with the given tag at the
// given level is expanded.
func (tv *TreeView) expandedState(tag models.RowTag, level int) bool {
	if tag.Kind() == models.NoTagKind {
		return false
	}
	if exp, ok := tv.expanded[tag]; ok {
		return exp
	}
	return level <= tv.Settings.OpenDepth
}

// Resync syncs all of the nodes with the model. Rows that are still
// in the model keep their nodes, and the others are destroyed.
func (tv *TreeView) Resync() {
	tv.cancelPress()
	tv.visible = tv.visible[:0]
	if _, ok := tv.model.(idModel); !ok {
		tv.Root.DeleteChildren()
	}
	tv.Root.Height = 0
	if tv.model == nil {
		tv.pool.free = nil
		tv.Widths.Reset(0, 0)
		return
	}
	for tag := range tv.expanded {
		if !tv.isAlive(tag) {
			delete(tv.expanded, tag)
		}
	}
	if cols := tv.model.ColCount(models.Index{}); cols != tv.Widths.Len() {
		tv.Widths.Reset(cols, tv.Settings.ColWidth)
		for _, tn := range tv.live {
			tn.releaseCompanions()
			tn.Companions = nil
		}
	}
	if tv.current.IsStale() {
		tv.remapCurrent(&models.Notification{Kind: models.ModelUpdated})
	}
	tv.build(tv.Root)
	slog.Debug("tree sync", "view", tv.Name, "nodes", len(tv.nodes))
	tv.ScrollTo(tv.Scroll)
}

// SetModel attaches the view to the given model.
// The companions of the old model are not reused.
func (tv *TreeView) SetModel(m models.Model) {
	if m != tv.model {
		tv.Root.DeleteChildren()
		tv.pool.free = nil
		clear(tv.expanded)
	}
	tv.ViewBase.SetModel(m)
}

// build syncs the children of the given node with the rows of the model,
// recursively for expanded rows, and sets the height of the node.
// Existing children are matched to rows by tag.
func (tv *TreeView) build(tn *TreeNode) {
	n := tv.model.RowCount(tn.index)
	tn.Children, _ = plan.Update(tn.Children, n,
		func(r int) models.RowTag { return tv.model.Index(r, 0, tn.index).Tag() },
		func(k tree.Node) models.RowTag { return k.(*TreeNode).index.Tag() },
		func(tag models.RowTag, r int) tree.Node { return tv.newNode(tn.Level + 1) },
		func(k tree.Node) { k.Destroy() })
	y := tn.rowHeight()
	for r := range tn.Children {
		kid := tn.child(r)
		idx := tv.model.Index(r, 0, tn.index)
		kid.Parent = tn.This
		kid.Level = tn.Level + 1
		kid.index, kid.parent = idx, tn.index
		kid.Offset = y
		kid.Expanded = tv.expandedState(idx.Tag(), kid.Level)
		tv.nodes[idx.Tag()] = kid
		kid.restamp()
		if kid.Expanded && tv.model.HasChildren(idx) {
			tv.build(kid)
		} else {
			kid.DeleteChildren()
			kid.Height = kid.rowHeight()
		}
		y += kid.Height
	}
	tn.Height = y
}

func (tv *TreeView) ContentSize() math32.Vector2 {
	return math32.Vec2(tv.Widths.Total(), tv.Root.Height)
}

// rowBox returns the box of the given column of the row of the given
// node, in content coordinates. Column 0 is indented by level.
func (tv *TreeView) rowBox(tn *TreeNode, col int) math32.Box2 {
	top := tn.Top()
	x0 := tv.Widths.Start(col)
	x1 := tv.Widths.End(col)
	if col == 0 {
		x0 = min(x0+float32(tn.Level-1)*tv.Settings.IndentWidth, x1)
	}
	return math32.B2(x0, top, x1, top+tn.rowHeight())
}

// firstBelow returns the first child of the given node that ends
// below the given position, relative to the top of the node.
func firstBelow(tn *TreeNode, y float32) int {
	return sort.Search(len(tn.Children), func(i int) bool {
		k := tn.child(i)
		return k.Offset+k.Height > y
	})
}

// collectVisible appends the descendants of the given node whose row
// intersects [y0, y1), in display order. It only descends into the
// children that intersect the window.
func (tv *TreeView) collectVisible(tn *TreeNode, top, y0, y1 float32) {
	for i := firstBelow(tn, y0-top); i < len(tn.Children); i++ {
		k := tn.child(i)
		ktop := top + k.Offset
		if ktop >= y1 {
			break
		}
		if ktop+k.rowHeight() > y0 {
			tv.visible = append(tv.visible, k)
		}
		if len(k.Children) > 0 {
			tv.collectVisible(k, ktop, y0, y1)
		}
	}
}

// Layout materializes the companions of the rows that intersect
// the viewport, and releases those of rows that no longer do if
// [Settings.ReleaseHidden].
func (tv *TreeView) Layout() {
	if tv.model == nil {
		return
	}
	tv.pass++
	tv.visible = tv.visible[:0]
	vp := tv.Viewport()
	tv.collectVisible(tv.Root, 0, vp.Min.Y, vp.Max.Y)
	c0, c1 := tv.Widths.Range(vp.Min.X, tv.Size.X)
	for _, tn := range tv.visible {
		if tv.marks[tn] == 0 {
			tv.live = append(tv.live, tn)
		}
		tv.marks[tn] = tv.pass
		if len(tn.Companions) != tv.Widths.Len() {
			tn.releaseCompanions()
			tn.Companions = make([]Companion, tv.Widths.Len())
		}
		for col := range tn.Companions {
			c := tn.Companions[col]
			if col < c0 || col >= c1 {
				if c != nil && tv.Settings.ReleaseHidden {
					if c == tv.pressed {
						tv.pressed = nil
					}
					tv.pool.release(c)
					tn.Companions[col] = nil
				}
				continue
			}
			if c == nil {
				c = tv.pool.take(tv.newCompanion)
				c.SetIndex(tn.cellIndex(col))
				tv.selectMaterialized(c)
				tn.Companions[col] = c
			}
			c.SetBox(tv.rowBox(tn, col))
		}
	}
	keep := tv.live[:0]
	for _, tn := range tv.live {
		switch {
		case tn.This == nil: // destroyed
			delete(tv.marks, tn)
		case tv.marks[tn] != tv.pass && tv.Settings.ReleaseHidden:
			tn.releaseCompanions()
			delete(tv.marks, tn)
		default:
			keep = append(keep, tn)
		}
	}
	clear(tv.live[len(keep):])
	tv.live = keep
}

// Visible returns the materialized companions of the rows that
// intersect the viewport, in display order.
func (tv *TreeView) Visible() []Companion {
	var vis []Companion
	for _, tn := range tv.visible {
		for _, c := range tn.Companions {
			if c != nil {
				vis = append(vis, c)
			}
		}
	}
	return vis
}

// Materialized returns the number of materialized companions.
func (tv *TreeView) Materialized() int {
	n := 0
	for _, tn := range tv.live {
		for _, c := range tn.Companions {
			if c != nil {
				n++
			}
		}
	}
	return n
}

func (tv *TreeView) ItemWidget(idx models.Index) Companion {
	tn := tv.Node(idx)
	if tn == nil || idx.Col() >= len(tn.Companions) {
		return nil
	}
	c := tn.Companions[idx.Col()]
	if c == nil || !c.Index().Equal(idx) {
		return nil
	}
	return c
}

// nodeAt returns the node whose row contains the given y position
// in content coordinates, or nil.
func (tv *TreeView) nodeAt(y float32) *TreeNode {
	tn, top := tv.Root, float32(0)
	for {
		i := firstBelow(tn, y-top)
		if i >= len(tn.Children) {
			return nil
		}
		k := tn.child(i)
		ktop := top + k.Offset
		if y < ktop {
			return nil
		}
		if y < ktop+k.rowHeight() {
			return k
		}
		tn, top = k, ktop
	}
}

func (tv *TreeView) HitTest(pos math32.Vector2) Companion {
	if tv.model == nil || !math32.B2Size(math32.Vector2{}, tv.Size).ContainsPoint(pos) {
		return nil
	}
	cp := pos.Add(tv.Scroll)
	tn := tv.nodeAt(cp.Y)
	if tn == nil {
		return nil
	}
	col, ok := tv.Widths.At(cp.X)
	if !ok || col >= len(tn.Companions) {
		return nil
	}
	return tn.Companions[col]
}

func (tv *TreeView) IndexBox(idx models.Index) (math32.Box2, bool) {
	tn := tv.Node(idx)
	if tn == nil || idx.Col() >= tv.Widths.Len() {
		return math32.Box2{}, false
	}
	return tv.rowBox(tn, idx.Col()), true
}

// IsExpanded returns whether the row of the given index is expanded.
func (tv *TreeView) IsExpanded(idx models.Index) bool {
	if tn := tv.Node(idx); tn != nil {
		return tn.Expanded
	}
	if !tv.isCurrent(idx) {
		return false
	}
	level := 0
	for p := idx; p.IsValid(); p = tv.model.Parent(p) {
		level++
	}
	return tv.expandedState(idx.Tag(), level)
}

// Toggle toggles whether the row of the given index is expanded.
func (tv *TreeView) Toggle(idx models.Index) {
	tv.SetExpanded(idx, !tv.IsExpanded(idx))
}

// SetExpanded sets whether the row of the given index is expanded.
// If the row is shown, its children are built or deleted, and the
// change in height is propagated up to the root.
func (tv *TreeView) SetExpanded(idx models.Index, exp bool) {
	if !tv.isCurrent(idx) || idx.Tag().Kind() == models.NoTagKind {
		return
	}
	tv.expanded[idx.Tag()] = exp
	tn := tv.nodes[idx.Tag()]
	if tn == nil || tn.Expanded == exp {
		return
	}
	tn.Expanded = exp
	old := tn.Height
	if exp {
		tv.build(tn)
	} else {
		tn.DeleteChildren()
		tn.Height = tn.rowHeight()
	}
	delta := tn.Height - old
	for k, p := tn, tn.parentNode(); p != nil; k, p = p, p.parentNode() {
		for i := k.IndexInParent() + 1; i < len(p.Children); i++ {
			p.child(i).Offset += delta
		}
		p.Height += delta
	}
	slog.Debug("tree toggle", "view", tv.Name, "index", idx, "expanded", exp)
	tv.ScrollTo(tv.Scroll)
}

// Navigate moves up and down through the shown rows, keeping the column.
// Left collapses an expanded row, or moves to the parent row,
// and Right expands a collapsed row, or moves to its first child.
func (tv *TreeView) Navigate(idx models.Index, code key.Codes) models.Index {
	if tv.model == nil || len(tv.Root.Children) == 0 {
		return models.Index{}
	}
	tn := tv.Node(idx)
	if tn == nil {
		if code == key.CodeEnd {
			return tree.Last(tv.Root).(*TreeNode).index
		}
		return tv.Root.child(0).index
	}
	var to tree.Node
	switch code {
	case key.CodeUpArrow:
		to = tree.Previous(tn)
	case key.CodeDownArrow:
		to = tree.Next(tn)
	case key.CodePageUp, key.CodePageDown:
		step := tree.Previous
		if code == key.CodePageDown {
			step = tree.Next
		}
		to = tn
		for i, n := 0, tv.pageRows(); i < n; i++ {
			nx := step(to)
			if nx == nil || nx == tree.Node(tv.Root) {
				break
			}
			to = nx
		}
	case key.CodeHome:
		to = tv.Root.child(0)
	case key.CodeEnd:
		to = tree.Last(tv.Root)
	case key.CodeLeftArrow:
		if tn.Expanded && tv.model.HasChildren(tn.index) {
			tv.SetExpanded(tn.index, false)
			return tn.cellIndex(idx.Col())
		}
		to = tn.Parent
	case key.CodeRightArrow:
		if !tn.Expanded && tv.model.HasChildren(tn.index) {
			tv.SetExpanded(tn.index, true)
			return tn.cellIndex(idx.Col())
		}
		if len(tn.Children) > 0 {
			to = tn.Children[0]
		}
	}
	if to == nil || to == tree.Node(tv.Root) {
		return idx
	}
	return to.(*TreeNode).cellIndex(idx.Col())
}
