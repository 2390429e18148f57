// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
)

// ModelBase provides the state and behavior shared by all models:
// identity, the generation counter used to detect stale indexes,
// view attachment, the signal lock, and notification emission.
// Call [ModelBase.Init] before using a model.
type ModelBase struct {

	// This is the value of this model as its true underlying type, so that
	// methods defined on base types can make indexes for the full model.
	This Model

	// id identifies the model in logs and index strings.
	id uuid.UUID

	// gen is bumped on every structural mutation.
	gen uint64

	// listeners are the registered notification functions.
	listeners Listeners

	// attached are the attached owners, in attachment order.
	attached []any

	// locked is the signal lock depth.
	locked int

	// deleted is set once the model has been destroyed.
	deleted bool
}

// Init sets [ModelBase.This] and assigns the model a new id.
func (mb *ModelBase) Init(this Model) {
	mb.This = this
	mb.id = uuid.New()
}

// AsModelBase returns the [ModelBase] of the model.
func (mb *ModelBase) AsModelBase() *ModelBase {
	return mb
}

// ID returns the unique id of the model.
func (mb *ModelBase) ID() uuid.UUID {
	return mb.id
}

// Generation returns the number of structural mutations so far.
func (mb *ModelBase) Generation() uint64 {
	return mb.gen
}

// IsDeleted returns whether [ModelBase.Destroy] has been called.
func (mb *ModelBase) IsDeleted() bool {
	return mb.deleted
}

// Attachment:

// Attach attaches the given owner, typically a view, to the model,
// and returns the number of attached owners. Attaching an owner
// that is already attached does nothing.
func (mb *ModelBase) Attach(owner any) int {
	if !slices.Contains(mb.attached, owner) {
		mb.attached = append(mb.attached, owner)
	}
	return len(mb.attached)
}

// Detach detaches the given owner and removes all of its listeners,
// returning the number of owners still attached.
func (mb *ModelBase) Detach(owner any) int {
	if i := slices.Index(mb.attached, owner); i >= 0 {
		mb.attached = slices.Delete(mb.attached, i, i+1)
	}
	mb.listeners.RemoveOwner(owner)
	return len(mb.attached)
}

// AttachCount returns the number of attached owners.
func (mb *ModelBase) AttachCount() int {
	return len(mb.attached)
}

// IsAttached returns whether the given owner is attached.
func (mb *ModelBase) IsAttached(owner any) bool {
	return slices.Contains(mb.attached, owner)
}

// On registers the given function to be called for notifications of
// the given kind, owned by the given owner.
func (mb *ModelBase) On(kind Kinds, owner any, fun func(n *Notification)) {
	mb.listeners.Add(kind, owner, fun)
}

// Signal lock:

// LockSignals suppresses notifications until the matching
// [ModelBase.UnlockSignals]. Locks nest.
func (mb *ModelBase) LockSignals() {
	mb.locked++
}

// UnlockSignals releases one level of the signal lock.
func (mb *ModelBase) UnlockSignals() {
	if mb.locked > 0 {
		mb.locked--
	}
}

// SignalsLocked returns whether notifications are currently suppressed.
func (mb *ModelBase) SignalsLocked() bool {
	return mb.locked > 0
}

// Silently calls the given function with signals locked, and then
// emits a single [ModelUpdated] notification so that views resync
// once for the whole batch of edits.
func (mb *ModelBase) Silently(fun func()) {
	mb.LockSignals()
	func() {
		defer mb.UnlockSignals()
		fun()
	}()
	mb.EmitModelUpdated()
}

// Destroy destroys the model. It fails with [ErrAttached] if views are
// still attached, unless force is true, in which case it broadcasts
// [ModelDeleted] so that every view detaches. Any later mutation
// returns [ErrDeleted].
func (mb *ModelBase) Destroy(force bool) error {
	if mb.deleted {
		return nil
	}
	if len(mb.attached) > 0 && !force {
		return fmt.Errorf("%w: %d attached", ErrAttached, len(mb.attached))
	}
	n := &Notification{Kind: ModelDeleted, Model: mb.This}
	slog.Debug("model notification", "kind", n.Kind, "model", mb.id)
	mb.listeners.Call(n)
	mb.deleted = true
	mb.attached = nil
	mb.listeners = nil
	return nil
}

// Emission:

// emit sends the given notification to all listeners unless signals are locked.
func (mb *ModelBase) emit(n *Notification) {
	if mb.SignalsLocked() {
		return
	}
	n.Model = mb.This
	slog.Debug("model notification", "kind", n.Kind, "model", mb.id, "at", n.At, "count", n.Count)
	mb.listeners.Call(n)
}

// bump advances the generation, making all existing indexes stale.
func (mb *ModelBase) bump() {
	mb.gen++
}

// EmitModelUpdated emits a [ModelUpdated] notification.
// Because anything may have changed, existing indexes become stale.
func (mb *ModelBase) EmitModelUpdated() {
	mb.bump()
	mb.emit(&Notification{Kind: ModelUpdated})
}

// EmitItemUpdated emits an [ItemUpdated] notification for the given cell and role.
func (mb *ModelBase) EmitItemUpdated(idx Index, role Role) {
	mb.emit(&Notification{Kind: ItemUpdated, Index: idx, Role: role})
}

// EmitRowsInserted emits a [RowsInserted] notification.
// The generation is bumped even when signals are locked.
func (mb *ModelBase) EmitRowsInserted(at, count int, parent Index) {
	mb.bump()
	mb.emit(&Notification{Kind: RowsInserted, At: at, Count: count, Parent: mb.fresh(parent)})
}

// EmitColsInserted emits a [ColsInserted] notification.
func (mb *ModelBase) EmitColsInserted(at, count int, parent Index) {
	mb.bump()
	mb.emit(&Notification{Kind: ColsInserted, At: at, Count: count, Parent: mb.fresh(parent)})
}

// EmitRowsRemoved emits a [RowsRemoved] notification.
func (mb *ModelBase) EmitRowsRemoved(at, count int, parent Index) {
	mb.bump()
	mb.emit(&Notification{Kind: RowsRemoved, At: at, Count: count, Parent: mb.fresh(parent)})
}

// EmitColsRemoved emits a [ColsRemoved] notification.
func (mb *ModelBase) EmitColsRemoved(at, count int, parent Index) {
	mb.bump()
	mb.emit(&Notification{Kind: ColsRemoved, At: at, Count: count, Parent: mb.fresh(parent)})
}

// EmitRowsMoved emits a [RowsMoved] notification.
func (mb *ModelBase) EmitRowsMoved(srcParent Index, srcAt int, dstParent Index, dstAt, count int) {
	mb.bump()
	mb.emit(&Notification{Kind: RowsMoved, SrcParent: mb.fresh(srcParent), SrcAt: srcAt,
		DstParent: mb.fresh(dstParent), DstAt: dstAt, Count: count})
}

// EmitColsMoved emits a [ColsMoved] notification.
func (mb *ModelBase) EmitColsMoved(srcParent Index, srcAt int, dstParent Index, dstAt, count int) {
	mb.bump()
	mb.emit(&Notification{Kind: ColsMoved, SrcParent: mb.fresh(srcParent), SrcAt: srcAt,
		DstParent: mb.fresh(dstParent), DstAt: dstAt, Count: count})
}

// fresh restamps the given parent with the current generation.
// Callers must pass a parent whose row is correct after the mutation.
func (mb *ModelBase) fresh(parent Index) Index {
	if parent.IsValid() {
		parent.gen = mb.gen
	}
	return parent
}

// Preconditions:

// CheckAlive returns [ErrDeleted] if the model has been destroyed.
func (mb *ModelBase) CheckAlive() error {
	if mb.deleted {
		return ErrDeleted
	}
	return nil
}

// CheckIndex returns an error if the given index is not a valid,
// current index of this model.
func (mb *ModelBase) CheckIndex(idx Index) error {
	switch {
	case !idx.IsValid():
		return fmt.Errorf("%w: %v", ErrInvalidIndex, idx)
	case idx.model.AsModelBase() != mb:
		return fmt.Errorf("%w: %v belongs to another model", ErrInvalidIndex, idx)
	case idx.IsStale():
		return fmt.Errorf("%w: %v", ErrStaleIndex, idx)
	}
	return nil
}

// CheckParent is like [ModelBase.CheckIndex], except that an invalid
// index is accepted, as it denotes the root.
func (mb *ModelBase) CheckParent(parent Index) error {
	if !parent.IsValid() {
		return nil
	}
	return mb.CheckIndex(parent)
}

// CheckInsert checks inserting count items at the gap at,
// in a sequence of n items.
func (mb *ModelBase) CheckInsert(at, count, n int) error {
	if count < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if at < 0 || at > n {
		return fmt.Errorf("%w: insert at %d, must be in [0, %d]", ErrOutOfRange, at, n)
	}
	return nil
}

// CheckRemove checks removing count items starting at at,
// in a sequence of n items.
func (mb *ModelBase) CheckRemove(at, count, n int) error {
	if count < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if at < 0 || at > n || count > n-at {
		return fmt.Errorf("%w: remove %d at %d from %d", ErrOutOfRange, count, at, n)
	}
	return nil
}

// CheckMove checks moving count items starting at src, in a
// sequence of srcN items, to the gap dst in a sequence of dstN items.
// When both are under the same parent, a destination inside
// [src, src+count] returns [ErrMoveNoOp].
func (mb *ModelBase) CheckMove(src, dst, count, srcN, dstN int, sameParent bool) error {
	if count < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if src < 0 || src > srcN || count > srcN-src {
		return fmt.Errorf("%w: move %d at %d from %d", ErrOutOfRange, count, src, srcN)
	}
	if dst < 0 || dst > dstN {
		return fmt.Errorf("%w: move to %d, must be in [0, %d]", ErrOutOfRange, dst, dstN)
	}
	if sameParent && dst >= src && dst <= src+count {
		return fmt.Errorf("%w: [%d, %d) to %d", ErrMoveNoOp, src, src+count, dst)
	}
	return nil
}
