// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import "cogentcore.org/modelview/base/errors"

var (
	// ErrInvalidIndex is returned when an [Index] is not valid, belongs to
	// another model, or refers to a row or node that does not exist.
	ErrInvalidIndex = errors.New("models: invalid index")

	// ErrStaleIndex is returned when an [Index] was made before the most
	// recent structural mutation of its model.
	ErrStaleIndex = errors.New("models: stale index")

	// ErrOutOfRange is returned when a row or column is outside of the
	// range allowed by the operation.
	ErrOutOfRange = errors.New("models: out of range")

	// ErrInvalidCount is returned when a structural operation is given
	// a count less than one.
	ErrInvalidCount = errors.New("models: count must be at least 1")

	// ErrMoveNoOp is returned when a move would leave the rows or columns
	// where they are. No notification is emitted.
	ErrMoveNoOp = errors.New("models: move destination is inside the moved range")

	// ErrMoveIntoSelf is returned when a tree move would place a node
	// under itself or one of its own descendants.
	ErrMoveIntoSelf = errors.New("models: cannot move a node into its own subtree")

	// ErrUnsupported is returned for operations that do not apply to the
	// shape of the model, such as inserting columns into a list.
	ErrUnsupported = errors.New("models: operation not supported by this model")

	// ErrDeleted is returned for any mutation of a destroyed model.
	ErrDeleted = errors.New("models: model has been destroyed")

	// ErrAttached is returned by [ModelBase.Destroy] when views are
	// still attached and destruction is not forced.
	ErrAttached = errors.New("models: model still has attached views")

	// ErrRole is returned when a payload does not accept data for a role,
	// or the data has the wrong type for it.
	ErrRole = errors.New("models: unsupported role or data type")
)
