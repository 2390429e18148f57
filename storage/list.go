// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import (
	"slices"

	"cogentcore.org/modelview/base/slicesx"
)

// List is a contiguous list of values.
type List[T any] struct {
	// New makes the value of each inserted row.
	// If it is nil, zero values are inserted.
	New func() T

	// Values are the values of the rows.
	Values []T
}

// NewList returns a new [List] with the given fill function and values.
func NewList[T any](fill func() T, values ...T) *List[T] {
	return &List[T]{New: fill, Values: values}
}

// Len returns the number of rows.
func (ls *List[T]) Len() int {
	return len(ls.Values)
}

// At returns the value at the given row.
func (ls *List[T]) At(row int) T {
	return ls.Values[row]
}

// Set sets the value at the given row.
func (ls *List[T]) Set(row int, v T) {
	ls.Values[row] = v
}

// Ptr returns a pointer to the value at the given row,
// valid until the next structural change.
func (ls *List[T]) Ptr(row int) *T {
	return &ls.Values[row]
}

func (ls *List[T]) InsertRows(at, count int) {
	ls.Values = slicesx.InsertN(ls.Values, at, count, ls.New)
}

func (ls *List[T]) RemoveRows(at, count int) {
	ls.Values = slices.Delete(ls.Values, at, at+count)
}

func (ls *List[T]) MoveRows(src, count, dst int) {
	slicesx.MoveBlock(ls.Values, src, count, dst)
}
