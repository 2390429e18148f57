// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import (
	"slices"
	"strconv"
)

// Kinds are the kinds of [Notification] that a model emits.
type Kinds int32

const (
	// ModelUpdated means that anything in the model may have changed,
	// and views should resync completely.
	ModelUpdated Kinds = iota

	// ModelDeleted means that the model is being destroyed,
	// and views must detach from it.
	ModelDeleted

	// ItemUpdated means that the data of one cell changed.
	ItemUpdated

	// RowsInserted means that rows were inserted.
	RowsInserted

	// ColsInserted means that columns were inserted.
	ColsInserted

	// RowsRemoved means that rows were removed.
	RowsRemoved

	// ColsRemoved means that columns were removed.
	ColsRemoved

	// RowsMoved means that rows were moved.
	RowsMoved

	// ColsMoved means that columns were moved.
	ColsMoved

	KindsN
)

var kindsNames = [...]string{"ModelUpdated", "ModelDeleted", "ItemUpdated", "RowsInserted", "ColsInserted", "RowsRemoved", "ColsRemoved", "RowsMoved", "ColsMoved"}

func (k Kinds) String() string {
	if k < 0 || k >= KindsN {
		return "Kinds(" + strconv.Itoa(int(k)) + ")"
	}
	return kindsNames[k]
}

// IsStructural returns whether the kind is an insert, remove or move.
func (k Kinds) IsStructural() bool {
	return k >= RowsInserted && k < KindsN
}

// Notification is one change emitted by a model. Which fields are
// meaningful depends on the Kind:
//   - ItemUpdated: Index, Role.
//   - inserts and removes: At, Count, Parent.
//   - moves: SrcParent, SrcAt, DstParent, DstAt, Count.
type Notification struct {
	Kind  Kinds
	Model Model

	Index Index
	Role  Role

	At     int
	Count  int
	Parent Index

	SrcParent Index
	SrcAt     int
	DstParent Index
	DstAt     int
}

// Listener is one registered notification function with its owner.
type Listener struct {
	// Owner is the object that registered the function,
	// typically a view, used for removal.
	Owner any

	// Func is the function called for each notification.
	Func func(n *Notification)
}

// Listeners registers lists of listener functions to receive
// different kinds of notification. Unlike input events,
// all listeners are always called, in registration order.
type Listeners map[Kinds][]Listener

// Add adds a function owned by the given owner for the given kind.
func (ls *Listeners) Add(kind Kinds, owner any, fun func(n *Notification)) {
	if *ls == nil {
		*ls = make(map[Kinds][]Listener)
	}
	(*ls)[kind] = append((*ls)[kind], Listener{Owner: owner, Func: fun})
}

// RemoveOwner removes all functions registered by the given owner.
func (ls *Listeners) RemoveOwner(owner any) {
	for k, l := range *ls {
		l = slices.DeleteFunc(slices.Clone(l), func(e Listener) bool { return e.Owner == owner })
		if len(l) == 0 {
			delete(*ls, k)
		} else {
			(*ls)[k] = l
		}
	}
}

// Call calls all functions for the kind of the given notification,
// synchronously in registration order. A listener added or removed
// during the call takes effect from the next call.
func (ls *Listeners) Call(n *Notification) {
	for _, l := range (*ls)[n.Kind] {
		l.Func(n)
	}
}
