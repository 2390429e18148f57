// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"cogentcore.org/modelview/events/key"
	"cogentcore.org/modelview/math32"
	"cogentcore.org/modelview/models"
)

// FlowView is a view of the rows of a list model flowing left to right
// into lines, with as many fixed width cells per line as fit in the
// viewport, and a height per line.
type FlowView struct {
	FlatBase

	// Lines are the heights of the lines.
	Lines Extents

	// perLine is the number of items per line that Lines is sized for.
	perLine int
}

// NewFlowView returns a new [FlowView] with the given companion
// registry, or a standard one if it is nil.
func NewFlowView(reg *Registry) *FlowView {
	fv := &FlowView{}
	fv.InitFlat(fv, reg)
	return fv
}

// PerLine returns the number of items on each line for the current
// viewport width, which is always at least 1.
func (fv *FlowView) PerLine() int {
	if fv.Settings.FlowCellWidth <= 0 {
		return 1
	}
	return max(1, int(math32.Floor(fv.Size.X/fv.Settings.FlowCellWidth)))
}

// numLines returns the number of lines needed for the given items.
func numLines(items, perLine int) int {
	return (items + perLine - 1) / perLine
}

func (fv *FlowView) resetExtents(rows, cols int) {
	fv.FlatBase.resetExtents(rows, min(cols, 1))
	fv.perLine = 0
	fv.syncExtents()
}

// syncExtents sizes the lines for the number of items and the
// viewport width. The line heights are reset when the width changes
// the number of items per line.
func (fv *FlowView) syncExtents() {
	per := fv.PerLine()
	lines := numLines(fv.Heights.Len(), per)
	if per != fv.perLine {
		fv.perLine = per
		fv.Lines.Reset(lines, fv.Settings.FlowCellHeight)
		return
	}
	fv.Lines.Resize(lines, fv.Settings.FlowCellHeight)
}

// SetLineHeight sets the height of the given line.
func (fv *FlowView) SetLineHeight(line int, height float32) {
	fv.syncExtents()
	fv.Lines.Set(line, height)
	fv.ScrollTo(fv.Scroll)
}

func (fv *FlowView) ContentSize() math32.Vector2 {
	fv.syncExtents()
	if fv.Heights.Len() == 0 {
		return math32.Vector2{}
	}
	per := min(fv.perLine, fv.Heights.Len())
	return math32.Vec2(float32(per)*fv.Settings.FlowCellWidth, fv.Lines.Total())
}

func (fv *FlowView) visibleCells() (r0, r1, c0, c1 int) {
	n := fv.Heights.Len()
	l0, l1 := fv.Lines.Range(fv.Scroll.Y, fv.Size.Y)
	if l0 == l1 || fv.Widths.Len() == 0 {
		return 0, 0, 0, 0
	}
	return l0 * fv.perLine, min(l1*fv.perLine, n), 0, 1
}

func (fv *FlowView) cellBox(row, col int) math32.Box2 {
	line, pos := row/fv.perLine, row%fv.perLine
	w := fv.Settings.FlowCellWidth
	return math32.B2(float32(pos)*w, fv.Lines.Start(line), float32(pos+1)*w, fv.Lines.End(line))
}

func (fv *FlowView) cellAt(pos math32.Vector2) (row, col int, ok bool) {
	line, ok := fv.Lines.At(pos.Y)
	if !ok || pos.X < 0 {
		return -1, -1, false
	}
	p := int(pos.X / fv.Settings.FlowCellWidth)
	row = line*fv.perLine + p
	if p >= fv.perLine || row >= fv.Heights.Len() {
		return -1, -1, false
	}
	return row, 0, true
}

// Navigate moves left and right by items, up and down by lines,
// and page up and down by the number of visible lines.
func (fv *FlowView) Navigate(idx models.Index, code key.Codes) models.Index {
	n := fv.Heights.Len()
	if fv.model == nil || n == 0 || fv.Widths.Len() == 0 {
		return models.Index{}
	}
	if !fv.isCurrent(idx) {
		if code == key.CodeEnd {
			return fv.model.Index(n-1, 0, root)
		}
		return fv.model.Index(0, 0, root)
	}
	fv.syncExtents()
	per := fv.perLine
	pageLines := 1
	if h := fv.Settings.FlowCellHeight; h > 0 {
		pageLines = max(1, int(fv.Size.Y/h))
	}
	row := idx.Row()
	switch code {
	case key.CodeLeftArrow:
		row--
	case key.CodeRightArrow:
		row++
	case key.CodeUpArrow:
		if row-per >= 0 {
			row -= per
		}
	case key.CodeDownArrow:
		if row+per < n {
			row += per
		}
	case key.CodePageUp:
		row -= pageLines * per
	case key.CodePageDown:
		row += pageLines * per
	case key.CodeHome:
		row = 0
	case key.CodeEnd:
		row = n - 1
	}
	return fv.model.Index(min(max(row, 0), n-1), 0, root)
}
