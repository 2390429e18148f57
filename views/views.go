// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package views provides the view side of the model/view system.
// A view attaches to a [models.Model], keeps one [Companion] per
// visible cell, and keeps them in sync with every notification of
// the model before the mutating call returns.
//
// Only companions that intersect the viewport are materialized.
// Flat views ([ListView], [TableView], [FlowView]) find them with
// binary searches over the row and column [Extents], and adjust
// their companion pools in place on structural changes. The
// [TreeView] resyncs its tree of [TreeNode]s on every structural
// change, matching children to rows by [models.RowTag], so rows that
// survive the change keep their nodes and companions.
package views

import (
	"cogentcore.org/modelview/events/key"
	"cogentcore.org/modelview/math32"
	"cogentcore.org/modelview/models"
)

// View is the interface that all views satisfy. All views must
// embed [ViewBase], which implements model attachment, the current
// index state machine, event handling and scrolling.
type View interface {
	// AsViewBase returns the [ViewBase] of the view.
	AsViewBase() *ViewBase

	// SetModel attaches the view to the given model, detaching it from
	// any previous one. A nil model just detaches.
	SetModel(m models.Model)

	// Model returns the model the view is attached to.
	Model() models.Model

	// ItemWidget returns the companion of the given index,
	// or nil if it is not materialized.
	ItemWidget(idx models.Index) Companion

	// CurrentIndex returns the current index, which is invalid if there is none.
	CurrentIndex() models.Index

	// SetCurrentIndex makes the given index current, returning whether it changed.
	SetCurrentIndex(idx models.Index) bool

	// OnModelUpdated is called when anything in the model may have changed.
	OnModelUpdated(n *models.Notification)

	// OnModelDeleted is called when the model is being destroyed.
	OnModelDeleted(n *models.Notification)

	// OnItemUpdated is called when the data of one cell changed.
	OnItemUpdated(n *models.Notification)

	OnRowsInserted(n *models.Notification)
	OnColsInserted(n *models.Notification)
	OnRowsRemoved(n *models.Notification)
	OnColsRemoved(n *models.Notification)
	OnRowsMoved(n *models.Notification)
	OnColsMoved(n *models.Notification)

	// Resync rebuilds all of the view state from the model.
	Resync()

	// Layout updates the visible set of companions for the
	// current viewport size and scroll position.
	Layout()

	// HitTest returns the companion at the given position in
	// viewport coordinates, or nil.
	HitTest(pos math32.Vector2) Companion

	// IndexBox returns the box of the given index in content
	// coordinates, and false if it has no box.
	IndexBox(idx models.Index) (math32.Box2, bool)

	// ContentSize returns the total size of the content.
	ContentSize() math32.Vector2

	// Navigate returns the index that the given navigation key moves
	// to from the given index.
	Navigate(idx models.Index, code key.Codes) models.Index

	// Visible returns the materialized companions that intersect
	// the viewport, in display order.
	Visible() []Companion
}
