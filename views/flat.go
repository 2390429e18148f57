// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"log/slog"

	"cogentcore.org/modelview/events/key"
	"cogentcore.org/modelview/math32"
	"cogentcore.org/modelview/models"
)

// flatLayout is implemented by views that embed [FlatBase],
// to provide the geometry of their cells.
type flatLayout interface {
	View

	// AsFlatBase returns the [FlatBase] of the view.
	AsFlatBase() *FlatBase

	// resetExtents resets all of the sizes for the current shape of the model.
	resetExtents(rows, cols int)

	// syncExtents updates any sizes that depend on the viewport size.
	syncExtents()

	// visibleCells returns the half-open row and column ranges of the
	// cells that intersect the viewport.
	visibleCells() (r0, r1, c0, c1 int)

	// cellBox returns the box of the given cell in content coordinates.
	cellBox(row, col int) math32.Box2

	// cellAt returns the cell at the given position in content coordinates.
	cellAt(pos math32.Vector2) (row, col int, ok bool)
}

// FlatBase is the base of views over models without hierarchy, that
// keep one companion slot per cell in a pool shaped like the model, and
// adjust it in place for structural changes.
type FlatBase struct {
	ViewBase

	// Heights are the heights of the rows.
	Heights Extents

	// Widths are the widths of the columns.
	Widths Extents

	pool pool

	// live are the materialized companions.
	live []Companion

	layout flatLayout
}

// InitFlat initializes the flat base for the given view.
func (fb *FlatBase) InitFlat(this flatLayout, reg *Registry) {
	fb.layout = this
	fb.InitView(this, reg)
}

func (fb *FlatBase) AsFlatBase() *FlatBase {
	return fb
}

// root is the parent of all of the cells of a flat model.
var root = models.Index{}

// Shape returns the shape of the companion pool, which is always
// the number of rows and columns of the model.
func (fb *FlatBase) Shape() (rows, cols int) {
	return fb.pool.rows(), fb.pool.cols()
}

// Materialized returns the number of materialized companions.
func (fb *FlatBase) Materialized() int {
	return len(fb.live)
}

// Companion returns the companion in the pool slot of the given cell, or nil.
func (fb *FlatBase) Companion(row, col int) Companion {
	return fb.pool.at(row, col)
}

// Resync rebuilds the pool and the sizes from the model.
func (fb *FlatBase) Resync() {
	fb.live = fb.live[:0]
	fb.pressed = nil
	rows, cols := 0, 0
	if fb.model != nil {
		rows, cols = fb.model.RowCount(root), fb.model.ColCount(root)
	}
	// roles can differ across models, so old companions are not reused
	fb.pool.reset(rows, cols, true)
	fb.layout.resetExtents(rows, cols)
	if fb.current.IsStale() {
		fb.remapCurrent(&models.Notification{Kind: models.ModelUpdated})
	}
	slog.Debug("view resync", "view", fb.Name, "rows", rows, "cols", cols)
	fb.ScrollTo(fb.Scroll)
}

func (fb *FlatBase) resetExtents(rows, cols int) {
	fb.Heights.Reset(rows, fb.Settings.RowHeight)
	fb.Widths.Reset(cols, fb.Settings.ColWidth)
}

func (fb *FlatBase) syncExtents() {}

func (fb *FlatBase) visibleCells() (r0, r1, c0, c1 int) {
	vp := fb.Viewport()
	r0, r1 = fb.Heights.Range(vp.Min.Y, fb.Size.Y)
	c0, c1 = fb.Widths.Range(vp.Min.X, fb.Size.X)
	return
}

func (fb *FlatBase) cellBox(row, col int) math32.Box2 {
	return math32.B2(fb.Widths.Start(col), fb.Heights.Start(row), fb.Widths.End(col), fb.Heights.End(row))
}

func (fb *FlatBase) cellAt(pos math32.Vector2) (row, col int, ok bool) {
	row, ok = fb.Heights.At(pos.Y)
	if !ok {
		return
	}
	col, ok = fb.Widths.At(pos.X)
	return
}

func (fb *FlatBase) ContentSize() math32.Vector2 {
	fb.layout.syncExtents()
	return math32.Vec2(fb.Widths.Total(), fb.Heights.Total())
}

// Layout materializes the companions of the visible cells, and
// releases those that are no longer visible if [Settings.ReleaseHidden].
func (fb *FlatBase) Layout() {
	if fb.model == nil {
		return
	}
	fb.layout.syncExtents()
	r0, r1, c0, c1 := fb.layout.visibleCells()
	inside := func(row, col int) bool {
		return row >= r0 && row < r1 && col >= c0 && col < c1
	}
	if fb.Settings.ReleaseHidden {
		keep := fb.live[:0]
		for _, c := range fb.live {
			idx := c.Index()
			if inside(idx.Row(), idx.Col()) {
				keep = append(keep, c)
				continue
			}
			if c == fb.pressed {
				fb.pressed = nil
			}
			fb.pool.releaseCell(idx.Row(), idx.Col())
		}
		clear(fb.live[len(keep):])
		fb.live = keep
	}
	for r := r0; r < r1; r++ {
		for col := c0; col < c1; col++ {
			c := fb.pool.at(r, col)
			if c == nil {
				c = fb.pool.acquire(r, col, fb.newCompanion)
				c.SetIndex(fb.model.Index(r, col, root))
				fb.selectMaterialized(c)
				fb.live = append(fb.live, c)
			}
			c.SetBox(fb.layout.cellBox(r, col))
		}
	}
}

// Visible returns the materialized companions of the visible cells,
// in row major order.
func (fb *FlatBase) Visible() []Companion {
	if fb.model == nil {
		return nil
	}
	r0, r1, c0, c1 := fb.layout.visibleCells()
	var vis []Companion
	for r := r0; r < r1; r++ {
		for col := c0; col < c1; col++ {
			if c := fb.pool.at(r, col); c != nil {
				vis = append(vis, c)
			}
		}
	}
	return vis
}

// isCurrent returns whether the given index is a current index of the model.
func (fb *FlatBase) isCurrent(idx models.Index) bool {
	return idx.IsValid() && fb.model != nil && idx.Model() == fb.model && !idx.IsStale()
}

func (fb *FlatBase) ItemWidget(idx models.Index) Companion {
	if !fb.isCurrent(idx) {
		return nil
	}
	c := fb.pool.at(idx.Row(), idx.Col())
	if c == nil || !c.Index().Equal(idx) {
		return nil
	}
	return c
}

func (fb *FlatBase) HitTest(pos math32.Vector2) Companion {
	if fb.model == nil || !math32.B2Size(math32.Vector2{}, fb.Size).ContainsPoint(pos) {
		return nil
	}
	row, col, ok := fb.layout.cellAt(pos.Add(fb.Scroll))
	if !ok {
		return nil
	}
	return fb.pool.at(row, col)
}

func (fb *FlatBase) IndexBox(idx models.Index) (math32.Box2, bool) {
	if !fb.isCurrent(idx) {
		return math32.Box2{}, false
	}
	rows, cols := fb.Shape()
	if idx.Row() >= rows || idx.Col() >= cols {
		return math32.Box2{}, false
	}
	return fb.layout.cellBox(idx.Row(), idx.Col()), true
}

// Navigate moves by rows and columns, clamped to the model.
// From no index, any key moves to the first cell, except End.
func (fb *FlatBase) Navigate(idx models.Index, code key.Codes) models.Index {
	rows, cols := fb.Shape()
	if fb.model == nil || rows == 0 || cols == 0 {
		return models.Index{}
	}
	if !fb.isCurrent(idx) {
		if code == key.CodeEnd {
			return fb.model.Index(rows-1, 0, root)
		}
		return fb.model.Index(0, 0, root)
	}
	row, col := idx.Row(), idx.Col()
	switch code {
	case key.CodeUpArrow:
		row--
	case key.CodeDownArrow:
		row++
	case key.CodeLeftArrow:
		col--
	case key.CodeRightArrow:
		col++
	case key.CodePageUp:
		row -= fb.pageRows()
	case key.CodePageDown:
		row += fb.pageRows()
	case key.CodeHome:
		row = 0
	case key.CodeEnd:
		row = rows - 1
	}
	return fb.model.Index(min(max(row, 0), rows-1), min(max(col, 0), cols-1), root)
}

// SetRowHeight sets the height of the given row.
func (fb *FlatBase) SetRowHeight(row int, height float32) {
	fb.Heights.Set(row, height)
	fb.ScrollTo(fb.Scroll)
}

// In place structural changes:

func (fb *FlatBase) OnRowsInserted(n *models.Notification) {
	if n.Parent.IsValid() {
		return
	}
	fb.pool.insertRows(n.At, n.Count)
	fb.Heights.Insert(n.At, n.Count, fb.Settings.RowHeight)
	fb.restamp(n)
}

func (fb *FlatBase) OnRowsRemoved(n *models.Notification) {
	if n.Parent.IsValid() {
		return
	}
	fb.pool.removeRows(n.At, n.Count)
	fb.Heights.Remove(n.At, n.Count)
	fb.restamp(n)
}

func (fb *FlatBase) OnRowsMoved(n *models.Notification) {
	if n.SrcParent.IsValid() || n.DstParent.IsValid() {
		return
	}
	fb.pool.moveRows(n.SrcAt, n.Count, n.DstAt)
	fb.Heights.Move(n.SrcAt, n.Count, n.DstAt)
	fb.restamp(n)
}

func (fb *FlatBase) OnColsInserted(n *models.Notification) {
	fb.pool.insertCols(n.At, n.Count)
	fb.Widths.Insert(n.At, n.Count, fb.Settings.ColWidth)
	fb.restamp(n)
}

func (fb *FlatBase) OnColsRemoved(n *models.Notification) {
	fb.pool.removeCols(n.At, n.Count)
	fb.Widths.Remove(n.At, n.Count)
	fb.restamp(n)
}

func (fb *FlatBase) OnColsMoved(n *models.Notification) {
	fb.pool.moveCols(n.SrcAt, n.Count, n.DstAt)
	fb.Widths.Move(n.SrcAt, n.Count, n.DstAt)
	fb.restamp(n)
}

// restamp finishes an in place change after the pool and the sizes
// have been updated: it remaps the current index, gives every live
// companion the fresh index of its cell, and updates the layout.
func (fb *FlatBase) restamp(n *models.Notification) {
	fb.cancelPress()
	fb.remapCurrent(n)
	keep := fb.live[:0]
	for _, c := range fb.live {
		idx := c.Index()
		if !idx.IsValid() { // released by the change
			continue
		}
		row, col := shiftCell(n, idx.Row(), idx.Col())
		c.SetIndex(fb.model.Index(row, col, root))
		fb.selectMaterialized(c)
		keep = append(keep, c)
	}
	clear(fb.live[len(keep):])
	fb.live = keep
	fb.ScrollTo(fb.Scroll)
}
