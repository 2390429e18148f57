// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

// ListView is a view of the rows of a list model, one per line,
// each as wide as the viewport. It can show any model without
// hierarchy, but only its first column.
type ListView struct {
	FlatBase
}

// NewListView returns a new [ListView] with the given companion
// registry, or a standard one if it is nil.
func NewListView(reg *Registry) *ListView {
	lv := &ListView{}
	lv.InitFlat(lv, reg)
	return lv
}

func (lv *ListView) resetExtents(rows, cols int) {
	lv.Heights.Reset(rows, lv.Settings.RowHeight)
	lv.Widths.Reset(min(cols, 1), lv.Settings.ColWidth)
	lv.syncExtents()
}

// syncExtents makes the single column fill the viewport.
func (lv *ListView) syncExtents() {
	if lv.Widths.Len() == 1 {
		lv.Widths.Set(0, max(lv.Size.X, lv.Settings.ColWidth))
	}
}
