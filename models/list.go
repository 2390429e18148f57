// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import "fmt"

// ListBase is the base for list models: a single column of rows without
// children. Column operations always fail with [ErrUnsupported].
// The embedding type sets Rows and Cells, and calls [ListBase.InitList].
type ListBase struct {
	TableBase

	// Rows is the row storage.
	Rows RowStore
}

// InitList initializes the list base for the given model,
// using the Rows store as a one-column grid.
func (lb *ListBase) InitList(this Model) {
	lb.Init(this)
	lb.Grid = oneColumn{lb.Rows}
}

// oneColumn adapts a [RowStore] to a [GridStore] with one fixed column.
type oneColumn struct {
	RowStore
}

func (oc oneColumn) Cols() int { return 1 }
func (oc oneColumn) InsertCols(at, count int) {}
func (oc oneColumn) RemoveCols(at, count int) {}
func (oc oneColumn) MoveCols(src, count, dst int) {}

func (lb *ListBase) InsertCols(at, count int, parent Index) error {
	return fmt.Errorf("%w: list InsertCols", ErrUnsupported)
}

func (lb *ListBase) RemoveCols(at, count int, parent Index) error {
	return fmt.Errorf("%w: list RemoveCols", ErrUnsupported)
}

func (lb *ListBase) MoveCols(srcParent Index, srcAt int, dstParent Index, dstAt int, count int) error {
	return fmt.Errorf("%w: list MoveCols", ErrUnsupported)
}

func (lb *ListBase) Capabilities() Capabilities {
	return RowEdits
}
