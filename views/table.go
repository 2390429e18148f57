// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import "log/slog"

// TableView is a view of the cells of a table model, with
// per-row heights and per-column widths.
type TableView struct {
	FlatBase
}

// NewTableView returns a new [TableView] with the given companion
// registry, or a standard one if it is nil.
func NewTableView(reg *Registry) *TableView {
	tv := &TableView{}
	tv.InitFlat(tv, reg)
	return tv
}

// SetColWidth sets the width of the given column.
func (tv *TableView) SetColWidth(col int, width float32) {
	tv.Widths.Set(col, width)
	tv.ScrollTo(tv.Scroll)
}

// FitColumn sets the width of the given column to the widest
// size hint of its materialized companions, and at least one character.
func (tv *TableView) FitColumn(col int) {
	w := float32(charWidth)
	for _, c := range tv.live {
		if c.Index().Col() == col {
			w = max(w, c.SizeHint().X)
		}
	}
	slog.Debug("fit column", "view", tv.Name, "col", col, "width", w)
	tv.SetColWidth(col, w)
}
