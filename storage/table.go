// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import (
	"slices"

	"cogentcore.org/modelview/base/slicesx"
)

// Table is a 2-D array of values stored in row-major order,
// with independent row and column counts.
type Table[T any] struct {
	// New makes the value of each inserted cell.
	// If it is nil, zero values are inserted.
	New func() T

	rows, cols int
	cells      []T
}

// NewTable returns a new [Table] of the given size, with every cell
// made by the given fill function.
func NewTable[T any](rows, cols int, fill func() T) *Table[T] {
	tb := &Table[T]{New: fill, rows: rows, cols: cols}
	tb.cells = slicesx.InsertN(tb.cells, 0, rows*cols, fill)
	return tb
}

// Len returns the number of rows.
func (tb *Table[T]) Len() int { return tb.rows }

// Cols returns the number of columns.
func (tb *Table[T]) Cols() int { return tb.cols }

// At returns the value of the given cell.
func (tb *Table[T]) At(row, col int) T {
	return tb.cells[row*tb.cols+col]
}

// Set sets the value of the given cell.
func (tb *Table[T]) Set(row, col int, v T) {
	tb.cells[row*tb.cols+col] = v
}

// Ptr returns a pointer to the value of the given cell,
// valid until the next structural change.
func (tb *Table[T]) Ptr(row, col int) *T {
	return &tb.cells[row*tb.cols+col]
}

// Row returns the values of the given row, sharing storage with the table.
func (tb *Table[T]) Row(row int) []T {
	return tb.cells[row*tb.cols : (row+1)*tb.cols]
}

func (tb *Table[T]) InsertRows(at, count int) {
	tb.cells = slicesx.InsertN(tb.cells, at*tb.cols, count*tb.cols, tb.New)
	tb.rows += count
}

func (tb *Table[T]) RemoveRows(at, count int) {
	tb.cells = slices.Delete(tb.cells, at*tb.cols, (at+count)*tb.cols)
	tb.rows -= count
}

func (tb *Table[T]) MoveRows(src, count, dst int) {
	slicesx.MoveBlock(tb.cells, src*tb.cols, count*tb.cols, dst*tb.cols)
}

func (tb *Table[T]) InsertCols(at, count int) {
	nc := tb.cols + count
	cells := make([]T, 0, tb.rows*nc)
	for r := 0; r < tb.rows; r++ {
		row := tb.Row(r)
		cells = append(cells, row[:at]...)
		cells = slicesx.InsertN(cells, len(cells), count, tb.New)
		cells = append(cells, row[at:]...)
	}
	tb.cells = cells
	tb.cols = nc
}

func (tb *Table[T]) RemoveCols(at, count int) {
	nc := tb.cols - count
	cells := make([]T, 0, tb.rows*nc)
	for r := 0; r < tb.rows; r++ {
		row := tb.Row(r)
		cells = append(cells, row[:at]...)
		cells = append(cells, row[at+count:]...)
	}
	tb.cells = cells
	tb.cols = nc
}

func (tb *Table[T]) MoveCols(src, count, dst int) {
	for r := 0; r < tb.rows; r++ {
		slicesx.MoveBlock(tb.Row(r), src, count, dst)
	}
}
