// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"slices"

	"cogentcore.org/modelview/base/slicesx"
	"cogentcore.org/modelview/models"
)

// pool holds the companions of a flat view, shaped like the model:
// one slot per row and column, nil for cells that are not materialized.
// Released companions are kept on a free list for reuse.
type pool struct {
	cells [][]Companion
	free  []Companion
	ncols int
}

func (p *pool) rows() int {
	return len(p.cells)
}

func (p *pool) cols() int {
	return p.ncols
}

// at returns the companion at the given cell, or nil.
func (p *pool) at(row, col int) Companion {
	if row < 0 || row >= len(p.cells) || col < 0 || col >= len(p.cells[row]) {
		return nil
	}
	return p.cells[row][col]
}

// acquire returns the companion at the given cell,
// taking a new one if there is none.
func (p *pool) acquire(row, col int, newFunc func() Companion) Companion {
	if c := p.cells[row][col]; c != nil {
		return c
	}
	c := p.take(newFunc)
	p.cells[row][col] = c
	return c
}

// take returns a companion from the free list,
// or a new one from newFunc if it is empty.
func (p *pool) take(newFunc func() Companion) Companion {
	if n := len(p.free); n > 0 {
		c := p.free[n-1]
		p.free = p.free[:n-1]
		return c
	}
	return newFunc()
}

// releaseCell releases the companion at the given cell, if any.
func (p *pool) releaseCell(row, col int) {
	if c := p.cells[row][col]; c != nil {
		p.cells[row][col] = nil
		p.release(c)
	}
}

// release puts the given companion on the free list.
func (p *pool) release(c Companion) {
	if c == nil {
		return
	}
	c.SetSelected(false)
	c.SetIndex(models.Index{})
	p.free = append(p.free, c)
}

// releaseAll releases every companion.
func (p *pool) releaseAll() {
	for r := range p.cells {
		for c := range p.cells[r] {
			p.releaseCell(r, c)
		}
	}
}

// reset releases every companion and reshapes the pool,
// dropping the free list if dropFree is set.
func (p *pool) reset(rows, cols int, dropFree bool) {
	p.releaseAll()
	if dropFree {
		p.free = nil
	}
	p.ncols = cols
	p.cells = slicesx.SetLength(p.cells, rows)
	for r := range p.cells {
		p.cells[r] = slicesx.SetLength(p.cells[r], cols)
		clear(p.cells[r])
	}
}

func (p *pool) insertRows(at, count int) {
	p.cells = slicesx.InsertN(p.cells, at, count, func() []Companion { return make([]Companion, p.ncols) })
}

func (p *pool) removeRows(at, count int) {
	for r := at; r < at+count; r++ {
		for c := range p.cells[r] {
			p.releaseCell(r, c)
		}
	}
	p.cells = slices.Delete(p.cells, at, at+count)
}

func (p *pool) moveRows(src, count, dst int) {
	slicesx.MoveBlock(p.cells, src, count, dst)
}

func (p *pool) insertCols(at, count int) {
	p.ncols += count
	for r := range p.cells {
		p.cells[r] = slicesx.InsertN(p.cells[r], at, count, nil)
	}
}

func (p *pool) removeCols(at, count int) {
	p.ncols -= count
	for r := range p.cells {
		for c := at; c < at+count; c++ {
			p.releaseCell(r, c)
		}
		p.cells[r] = slices.Delete(p.cells[r], at, at+count)
	}
}

func (p *pool) moveCols(src, count, dst int) {
	for r := range p.cells {
		slicesx.MoveBlock(p.cells[r], src, count, dst)
	}
}
