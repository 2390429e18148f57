// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import (
	"fmt"
)

// TagKinds are the kinds of [RowTag].
type TagKinds int32

const (
	// NoTagKind is used by flat models, whose rows are addressed by position only.
	NoTagKind TagKinds = iota

	// IDKind tags hold a stable integer id, as used by tree models.
	IDKind

	// PointerKind tags hold a pointer to an application object.
	PointerKind
)

// RowTag is the extra addressing information carried by an [Index].
// It holds either nothing, a stable id, or a pointer, and the kind
// always says which one, so the two addressing modes can not be confused.
type RowTag struct {
	kind TagKinds
	id   int
	ptr  any

	// reuse is the number of times the id had been freed when the
	// tag was made, which tells apart the holders of a reused id.
	reuse int
}

// NoTag is the empty [RowTag].
var NoTag = RowTag{}

// IDTag returns a [RowTag] holding the given stable id.
func IDTag(id int) RowTag {
	return RowTag{kind: IDKind, id: id}
}

// ReusedIDTag returns a [RowTag] holding the given stable id, which
// has been freed and reused the given number of times. Tags of the
// same id with different reuse counts are not equal.
func ReusedIDTag(id, reuse int) RowTag {
	return RowTag{kind: IDKind, id: id, reuse: reuse}
}

// PointerTag returns a [RowTag] holding the given pointer,
// which must be a comparable value.
func PointerTag(p any) RowTag {
	return RowTag{kind: PointerKind, ptr: p}
}

// Kind returns the kind of the tag.
func (t RowTag) Kind() TagKinds {
	return t.kind
}

// ID returns the stable id held by the tag, and whether it is an id tag.
func (t RowTag) ID() (int, bool) {
	return t.id, t.kind == IDKind
}

// Reuse returns the reuse count of the id held by the tag.
func (t RowTag) Reuse() int {
	return t.reuse
}

// Pointer returns the pointer held by the tag, and whether it is a pointer tag.
func (t RowTag) Pointer() (any, bool) {
	return t.ptr, t.kind == PointerKind
}

// Equal returns whether the two tags are of the same kind and hold the same value.
func (t RowTag) Equal(o RowTag) bool {
	if t.kind != o.kind {
		return false
	}
	switch t.kind {
	case IDKind:
		return t.id == o.id && t.reuse == o.reuse
	case PointerKind:
		return t.ptr == o.ptr
	}
	return true
}

func (t RowTag) String() string {
	switch t.kind {
	case IDKind:
		if t.reuse > 0 {
			return fmt.Sprintf("id:%d.%d", t.id, t.reuse)
		}
		return fmt.Sprintf("id:%d", t.id)
	case PointerKind:
		return fmt.Sprintf("ptr:%p", t.ptr)
	}
	return "-"
}

// Index addresses one cell of one [Model]. It is a transient handle:
// any structural mutation of the model makes it stale, and
// models reject stale indexes with [ErrStaleIndex].
// The zero Index is invalid, and as a parent it denotes the root.
type Index struct {
	row, col int
	tag      RowTag
	model    Model

	// gen is the generation of the model when the index was made.
	gen uint64
}

// NewIndex returns a new [Index] for the given cell of the given model,
// stamped with the model's current generation. It should only be
// called by model implementations.
func NewIndex(row, col int, tag RowTag, m Model) Index {
	idx := Index{row: row, col: col, tag: tag, model: m}
	if m != nil {
		idx.gen = m.AsModelBase().Generation()
	}
	return idx
}

// Row returns the row of the index, relative to its parent.
func (idx Index) Row() int { return idx.row }

// Col returns the column of the index.
func (idx Index) Col() int { return idx.col }

// Tag returns the row tag of the index.
func (idx Index) Tag() RowTag { return idx.tag }

// Model returns the model the index belongs to.
func (idx Index) Model() Model { return idx.model }

// IsValid returns whether the index refers to a cell: its row and
// column are non-negative and it has a model.
func (idx Index) IsValid() bool {
	return idx.row >= 0 && idx.col >= 0 && idx.model != nil
}

// Equal returns whether the two indexes have the same model, tag,
// row and column. The generation is not compared.
func (idx Index) Equal(o Index) bool {
	return idx.model == o.model && idx.tag.Equal(o.tag) && idx.row == o.row && idx.col == o.col
}

// IsStale returns whether the model has been structurally mutated
// since the index was made.
func (idx Index) IsStale() bool {
	return idx.model != nil && idx.gen != idx.model.AsModelBase().Generation()
}

func (idx Index) String() string {
	if !idx.IsValid() {
		return "Index{invalid}"
	}
	return fmt.Sprintf("Index{%d, %d, %v, %s}", idx.row, idx.col, idx.tag, idx.model.AsModelBase().ID().String()[:8])
}
