// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"cogentcore.org/modelview/math32"
	"cogentcore.org/modelview/models"
)

// Companion is the on-screen element that presents one cell of
// a view's model. A view keeps companions only for visible cells,
// and restamps their index after every structural change.
type Companion interface {
	// AsCompanionBase returns the [CompanionBase] of the companion.
	AsCompanionBase() *CompanionBase

	// SetIndex sets the index the companion presents and refreshes it.
	SetIndex(idx models.Index)

	// Index returns the index the companion presents.
	Index() models.Index

	// SetSelected sets whether the companion is shown as selected.
	SetSelected(sel bool)

	// IsSelected returns whether the companion is shown as selected.
	IsSelected() bool

	// Refresh updates the companion from the data of its index.
	Refresh()

	// Box returns the rectangle of the companion in content coordinates.
	Box() math32.Box2

	// SetBox sets the rectangle of the companion in content coordinates.
	SetBox(b math32.Box2)

	// SizeHint returns the preferred size of the companion.
	SizeHint() math32.Vector2

	fmt.Stringer
}

const (
	// charWidth is the width of one character for size hints.
	charWidth = 8

	// lineHeight is the height of one line of text for size hints.
	lineHeight = 20
)

// CompanionBase implements the state shared by all companions.
type CompanionBase struct {
	// This is the companion as its true underlying type.
	This Companion

	// View is the view that made the companion.
	View View

	// Role is the role presented, for single-role companions.
	Role models.Role

	index    models.Index
	selected bool
	box      math32.Box2
}

func (cb *CompanionBase) AsCompanionBase() *CompanionBase { return cb }

func (cb *CompanionBase) SetIndex(idx models.Index) {
	cb.index = idx
	cb.This.Refresh()
}

func (cb *CompanionBase) Index() models.Index { return cb.index }

func (cb *CompanionBase) SetSelected(sel bool) { cb.selected = sel }

func (cb *CompanionBase) IsSelected() bool { return cb.selected }

func (cb *CompanionBase) Box() math32.Box2 { return cb.box }

func (cb *CompanionBase) SetBox(b math32.Box2) { cb.box = b }

// data returns the data of the companion's index for its role.
func (cb *CompanionBase) data() any {
	if !cb.index.IsValid() {
		return nil
	}
	return cb.index.Model().ItemData(cb.index, cb.Role)
}

// Label is a companion that shows text.
type Label struct {
	CompanionBase

	// Text is the text shown.
	Text string
}

// NewLabel returns a new [Label] for the given role.
func NewLabel(v View, role models.Role) *Label {
	lb := &Label{}
	lb.This = lb
	lb.View = v
	lb.Role = role
	return lb
}

func (lb *Label) Refresh() {
	lb.Text = ""
	if s, ok := lb.data().(string); ok {
		lb.Text = s
	}
}

func (lb *Label) SizeHint() math32.Vector2 {
	return math32.Vec2(float32(utf8.RuneCountInString(lb.Text)*charWidth), lineHeight)
}

func (lb *Label) String() string { return lb.Text }

// Icon is a companion that shows an icon by name.
type Icon struct {
	CompanionBase

	// Icon is the name of the icon shown.
	Icon string
}

// NewIcon returns a new [Icon] for the given role.
func NewIcon(v View, role models.Role) *Icon {
	ic := &Icon{}
	ic.This = ic
	ic.View = v
	ic.Role = role
	return ic
}

func (ic *Icon) Refresh() {
	ic.Icon = ""
	if s, ok := ic.data().(string); ok {
		ic.Icon = s
	}
}

func (ic *Icon) SizeHint() math32.Vector2 {
	return math32.Vec2(lineHeight, lineHeight)
}

func (ic *Icon) String() string {
	if ic.Icon == "" {
		return ""
	}
	return "<" + ic.Icon + ">"
}

// Check is a companion that shows a checkbox.
type Check struct {
	CompanionBase

	// Checked is the state shown.
	Checked bool
}

// NewCheck returns a new [Check] for the given role.
func NewCheck(v View, role models.Role) *Check {
	ck := &Check{}
	ck.This = ck
	ck.View = v
	ck.Role = role
	return ck
}

func (ck *Check) Refresh() {
	b, _ := ck.data().(bool)
	ck.Checked = b
}

// Toggle sets the opposite check state in the model.
func (ck *Check) Toggle() error {
	idx := ck.Index()
	if !idx.IsValid() {
		return models.ErrInvalidIndex
	}
	return idx.Model().SetItemData(idx, !ck.Checked, ck.Role)
}

func (ck *Check) SizeHint() math32.Vector2 {
	return math32.Vec2(lineHeight, lineHeight)
}

func (ck *Check) String() string {
	if ck.Checked {
		return "[x]"
	}
	return "[ ]"
}

// Composite is a companion made of one part per role,
// laid out left to right.
type Composite struct {
	CompanionBase

	// Parts are the companions of each role.
	Parts []Companion
}

func (cp *Composite) SetIndex(idx models.Index) {
	cp.index = idx
	for _, p := range cp.Parts {
		p.AsCompanionBase().index = idx
	}
	cp.Refresh()
}

func (cp *Composite) SetSelected(sel bool) {
	cp.selected = sel
	for _, p := range cp.Parts {
		p.SetSelected(sel)
	}
}

func (cp *Composite) Refresh() {
	for _, p := range cp.Parts {
		p.Refresh()
	}
}

// SetBox sets the box of the composite, placing each part at its
// preferred width, with the last part taking the rest.
func (cp *Composite) SetBox(b math32.Box2) {
	cp.box = b
	x := b.Min.X
	for i, p := range cp.Parts {
		w := p.SizeHint().X
		if i == len(cp.Parts)-1 {
			w = max(b.Max.X-x, 0)
		}
		p.SetBox(math32.B2(x, b.Min.Y, min(x+w, b.Max.X), b.Max.Y))
		x += w
	}
}

func (cp *Composite) SizeHint() math32.Vector2 {
	var sz math32.Vector2
	for _, p := range cp.Parts {
		h := p.SizeHint()
		sz.X += h.X
		sz.Y = max(sz.Y, h.Y)
	}
	return sz
}

func (cp *Composite) String() string {
	strs := make([]string, 0, len(cp.Parts))
	for _, p := range cp.Parts {
		if s := p.String(); s != "" {
			strs = append(strs, s)
		}
	}
	return strings.Join(strs, " ")
}

// Part returns the part presenting the given role, or nil.
func (cp *Composite) Part(role models.Role) Companion {
	for _, p := range cp.Parts {
		if p.AsCompanionBase().Role == role {
			return p
		}
	}
	return nil
}
