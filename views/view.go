// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"log/slog"

	"cogentcore.org/modelview/base/slicesx"
	"cogentcore.org/modelview/events"
	"cogentcore.org/modelview/math32"
	"cogentcore.org/modelview/models"
)

// ViewBase implements the state and behavior shared by all views.
// Call [ViewBase.InitView] before using a view.
type ViewBase struct {

	// This is the view as its true underlying type, so that methods
	// defined on ViewBase can call methods of the full view.
	This View

	// Name is the name of the view, used in logs.
	Name string

	// Registry makes the companions of the view.
	Registry *Registry

	// Settings are the layout settings of the view.
	Settings Settings

	// Listeners are the input event listeners of the view.
	Listeners events.Listeners

	// Size is the size of the viewport.
	Size math32.Vector2

	// Scroll is the offset of the viewport within the content.
	Scroll math32.Vector2

	model models.Model

	// current is the current index, invalid if there is none.
	current models.Index

	// pressed is the companion provisionally selected by a press.
	pressed Companion

	// focused is whether the view has keyboard focus.
	focused bool

	// currentChanged are called when the current index changes.
	currentChanged []func(old, cur models.Index)
}

// idModel is implemented by models with stable node ids, such as trees.
type idModel interface {
	ID(idx models.Index) (int, bool)
	IndexByID(id int) models.Index
	IsLive(tag models.RowTag) bool
}

// InitView initializes the view base for the given view, with the
// given companion registry, or a standard one if it is nil.
func (vb *ViewBase) InitView(this View, reg *Registry) {
	vb.This = this
	if reg == nil {
		reg = NewStandardRegistry()
	}
	vb.Registry = reg
	vb.Settings.Defaults()
	vb.handleEvents()
}

func (vb *ViewBase) AsViewBase() *ViewBase {
	return vb
}

func (vb *ViewBase) Model() models.Model {
	return vb.model
}

// roles returns the roles of the model.
func (vb *ViewBase) roles() []models.RoleType {
	if vb.model == nil {
		return nil
	}
	return vb.model.Roles()
}

// newCompanion makes a new companion for the model's roles.
func (vb *ViewBase) newCompanion() Companion {
	return vb.Registry.New(vb.This, vb.roles())
}

// SetModel attaches the view to the given model, subscribing to all
// of its notifications, and detaches it from the previous model.
// Setting a nil model unsubscribes all of the view's handlers.
func (vb *ViewBase) SetModel(m models.Model) {
	if m == vb.model {
		return
	}
	vb.This.SetCurrentIndex(models.Index{})
	vb.pressed = nil
	if vb.model != nil {
		vb.model.AsModelBase().Detach(vb)
	}
	vb.model = m
	if m != nil {
		mb := m.AsModelBase()
		mb.Attach(vb)
		vb.subscribe(mb)
	}
	vb.This.Resync()
}

// subscribe registers the view's hooks for every kind of notification.
func (vb *ViewBase) subscribe(mb *models.ModelBase) {
	v := vb.This
	hooks := map[models.Kinds]func(n *models.Notification){
		models.ModelUpdated: v.OnModelUpdated,
		models.ModelDeleted: v.OnModelDeleted,
		models.ItemUpdated:  v.OnItemUpdated,
		models.RowsInserted: v.OnRowsInserted,
		models.ColsInserted: v.OnColsInserted,
		models.RowsRemoved:  v.OnRowsRemoved,
		models.ColsRemoved:  v.OnColsRemoved,
		models.RowsMoved:    v.OnRowsMoved,
		models.ColsMoved:    v.OnColsMoved,
	}
	for k := models.Kinds(0); k < models.KindsN; k++ {
		mb.On(k, vb, hooks[k])
	}
}

// Current index:

func (vb *ViewBase) CurrentIndex() models.Index {
	return vb.current
}

// SetCurrentIndex makes the given index current: it deselects the
// companion of the old current index, selects the new one, and calls
// the [ViewBase.OnCurrentChanged] functions. It does nothing and
// returns false if the index is already current, or if it is a stale
// index or one of another model. An invalid index clears the current index.
func (vb *ViewBase) SetCurrentIndex(idx models.Index) bool {
	if idx.Equal(vb.current) {
		return false
	}
	if idx.IsValid() && (idx.Model() != vb.model || idx.IsStale()) {
		return false
	}
	old := vb.current
	if c := vb.This.ItemWidget(old); c != nil {
		c.SetSelected(false)
	}
	vb.current = idx
	if c := vb.This.ItemWidget(idx); c != nil {
		c.SetSelected(true)
	}
	vb.notifyCurrent(old, idx)
	return true
}

// OnCurrentChanged adds a function to call when the current index changes.
func (vb *ViewBase) OnCurrentChanged(fun func(old, cur models.Index)) {
	vb.currentChanged = append(vb.currentChanged, fun)
}

func (vb *ViewBase) notifyCurrent(old, cur models.Index) {
	slog.Debug("view current changed", "view", vb.Name, "old", old, "current", cur)
	for _, f := range vb.currentChanged {
		f(old, cur)
	}
}

// remapCurrent updates the current index after the given notification,
// following its item across the change, and clearing it if the item
// was removed.
func (vb *ViewBase) remapCurrent(n *models.Notification) {
	cur := vb.current
	if !cur.IsValid() || vb.model == nil {
		return
	}
	row, col := shiftCell(n, cur.Row(), cur.Col())
	var nidx models.Index
	if im, ok := vb.model.(idModel); ok && cur.Tag().Kind() == models.IDKind {
		if id, ok := im.ID(cur); ok && col >= 0 {
			pidx := im.IndexByID(id)
			nidx = vb.model.Sibling(pidx.Row(), col, pidx)
		}
	} else if row >= 0 && col >= 0 {
		nidx = vb.model.Index(row, col, models.Index{})
	}
	vb.current = nidx
	if !nidx.IsValid() {
		vb.notifyCurrent(cur, nidx)
	}
}

// shiftCell returns where the cell at the given row and column of the
// root goes after the given notification, with -1 if it was removed.
func shiftCell(n *models.Notification, row, col int) (int, int) {
	switch n.Kind {
	case models.RowsInserted:
		row = shiftInserted(row, n.At, n.Count)
	case models.RowsRemoved:
		row = shiftRemoved(row, n.At, n.Count)
	case models.RowsMoved:
		row = slicesx.MovedIndex(row, n.SrcAt, n.Count, n.DstAt)
	case models.ColsInserted:
		col = shiftInserted(col, n.At, n.Count)
	case models.ColsRemoved:
		col = shiftRemoved(col, n.At, n.Count)
	case models.ColsMoved:
		col = slicesx.MovedIndex(col, n.SrcAt, n.Count, n.DstAt)
	}
	return row, col
}

// shiftInserted returns where position i goes after inserting count at at.
func shiftInserted(i, at, count int) int {
	if i >= at {
		return i + count
	}
	return i
}

// shiftRemoved returns where position i goes after removing count at at,
// or -1 if it was removed.
func shiftRemoved(i, at, count int) int {
	switch {
	case i >= at+count:
		return i - count
	case i >= at:
		return -1
	}
	return i
}

// Notification hooks:

// OnModelUpdated resyncs the whole view.
func (vb *ViewBase) OnModelUpdated(n *models.Notification) {
	vb.remapCurrent(n)
	vb.This.Resync()
}

// OnModelDeleted detaches the view from the model.
func (vb *ViewBase) OnModelDeleted(n *models.Notification) {
	vb.This.SetModel(nil)
}

// OnItemUpdated refreshes the companion of the updated index, if any.
func (vb *ViewBase) OnItemUpdated(n *models.Notification) {
	if c := vb.This.ItemWidget(n.Index); c != nil {
		c.Refresh()
	}
}

// The structural hooks of ViewBase remap the current index and then
// resync the whole view. Views that adjust in place override them.

func (vb *ViewBase) OnRowsInserted(n *models.Notification) { vb.OnModelUpdated(n) }
func (vb *ViewBase) OnColsInserted(n *models.Notification) { vb.OnModelUpdated(n) }
func (vb *ViewBase) OnRowsRemoved(n *models.Notification)  { vb.OnModelUpdated(n) }
func (vb *ViewBase) OnColsRemoved(n *models.Notification)  { vb.OnModelUpdated(n) }
func (vb *ViewBase) OnRowsMoved(n *models.Notification)    { vb.OnModelUpdated(n) }
func (vb *ViewBase) OnColsMoved(n *models.Notification)    { vb.OnModelUpdated(n) }

// Scrolling:

// Viewport returns the visible box in content coordinates.
func (vb *ViewBase) Viewport() math32.Box2 {
	return math32.B2Size(vb.Scroll, vb.Size)
}

// SetSize sets the size of the viewport and updates the layout.
func (vb *ViewBase) SetSize(sz math32.Vector2) {
	vb.Size = sz
	vb.ScrollTo(vb.Scroll)
}

// ScrollTo scrolls the viewport to the given offset,
// clamped to the content, and updates the layout.
func (vb *ViewBase) ScrollTo(pos math32.Vector2) {
	mx := vb.This.ContentSize().Sub(vb.Size)
	vb.Scroll = math32.Vec2(math32.Clamp(pos.X, 0, max(mx.X, 0)), math32.Clamp(pos.Y, 0, max(mx.Y, 0)))
	vb.This.Layout()
}

// ScrollBy scrolls the viewport by the given delta.
func (vb *ViewBase) ScrollBy(delta math32.Vector2) {
	vb.ScrollTo(vb.Scroll.Add(delta))
}

// ScrollToIndex ensures that the given index is visible by scrolling
// as needed, returning whether it scrolled.
func (vb *ViewBase) ScrollToIndex(idx models.Index) bool {
	box, ok := vb.This.IndexBox(idx)
	if !ok {
		return false
	}
	pos := vb.Scroll
	switch {
	case box.Min.Y < pos.Y || box.Size().Y > vb.Size.Y:
		pos.Y = box.Min.Y
	case box.Max.Y > pos.Y+vb.Size.Y:
		pos.Y = box.Max.Y - vb.Size.Y
	}
	switch {
	case box.Min.X < pos.X || box.Size().X > vb.Size.X:
		pos.X = box.Min.X
	case box.Max.X > pos.X+vb.Size.X:
		pos.X = box.Max.X - vb.Size.X
	}
	if pos == vb.Scroll {
		return false
	}
	vb.ScrollTo(pos)
	return true
}

// pageRows returns the number of rows moved by page up and down.
func (vb *ViewBase) pageRows() int {
	if vb.Settings.PageRows > 0 {
		return vb.Settings.PageRows
	}
	if vb.Settings.RowHeight <= 0 {
		return 1
	}
	return max(1, int(vb.Size.Y/vb.Settings.RowHeight))
}

// selectMaterialized sets the selected state of a newly placed companion.
func (vb *ViewBase) selectMaterialized(c Companion) {
	c.SetSelected(c.Index().Equal(vb.current))
}
