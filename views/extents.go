// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"slices"
	"sort"

	"cogentcore.org/modelview/base/slicesx"
)

// Extents are the sizes of a sequence of rows or columns, with
// their positions as prefix sums. Positions are computed lazily,
// so that a run of edits costs one pass when positions are next needed.
// The zero value is an empty sequence.
type Extents struct {
	sizes []float32

	// pos[i] is the start of item i, and pos[len(sizes)] is the total.
	// Only pos[:valid+1] is up to date.
	pos   []float32
	valid int
}

// Len returns the number of items.
func (ex *Extents) Len() int {
	return len(ex.sizes)
}

// Size returns the size of the given item.
func (ex *Extents) Size(i int) float32 {
	return ex.sizes[i]
}

// invalidate marks positions after item i as out of date.
func (ex *Extents) invalidate(i int) {
	ex.valid = min(ex.valid, i)
}

// update brings all of the positions up to date.
func (ex *Extents) update() {
	n := len(ex.sizes)
	ex.pos = slicesx.SetLength(ex.pos, n+1)
	if ex.valid > n {
		ex.valid = n
	}
	ex.pos[0] = 0
	for i := ex.valid; i < n; i++ {
		ex.pos[i+1] = ex.pos[i] + ex.sizes[i]
	}
	ex.valid = n
}

// Set sets the size of the given item.
func (ex *Extents) Set(i int, size float32) {
	if ex.sizes[i] == size {
		return
	}
	ex.sizes[i] = size
	ex.invalidate(i)
}

// Resize sets the number of items, giving new items the given size.
func (ex *Extents) Resize(n int, size float32) {
	old := len(ex.sizes)
	if n == old {
		return
	}
	ex.sizes = slicesx.SetLength(ex.sizes, n)
	for i := old; i < n; i++ {
		ex.sizes[i] = size
	}
	ex.invalidate(min(old, n))
}

// Reset sets the number of items, all with the given size.
func (ex *Extents) Reset(n int, size float32) {
	ex.sizes = slicesx.SetLength(ex.sizes, n)
	for i := range ex.sizes {
		ex.sizes[i] = size
	}
	ex.invalidate(0)
}

// Insert inserts count items of the given size at the given gap.
func (ex *Extents) Insert(at, count int, size float32) {
	ex.sizes = slicesx.InsertN(ex.sizes, at, count, func() float32 { return size })
	ex.invalidate(at)
}

// Remove removes count items starting at at.
func (ex *Extents) Remove(at, count int) {
	ex.sizes = slices.Delete(ex.sizes, at, at+count)
	ex.invalidate(at)
}

// Move moves count items starting at src to the gap dst,
// in pre-move coordinates.
func (ex *Extents) Move(src, count, dst int) {
	slicesx.MoveBlock(ex.sizes, src, count, dst)
	ex.invalidate(min(src, dst))
}

// Start returns the start position of the given item,
// which may be [Extents.Len] for the end of the last item.
func (ex *Extents) Start(i int) float32 {
	if ex.valid < i || len(ex.pos) != len(ex.sizes)+1 {
		ex.update()
	}
	return ex.pos[i]
}

// End returns the end position of the given item.
func (ex *Extents) End(i int) float32 {
	return ex.Start(i + 1)
}

// Total returns the sum of all sizes.
func (ex *Extents) Total() float32 {
	return ex.Start(len(ex.sizes))
}

// Range returns the half-open range [min, max) of the items that
// intersect the window [offset, offset+extent), using two binary
// searches over the positions.
func (ex *Extents) Range(offset, extent float32) (minI, maxI int) {
	n := len(ex.sizes)
	if n == 0 || extent <= 0 {
		return 0, 0
	}
	ex.update()
	end := offset + extent
	minI = sort.Search(n, func(i int) bool { return ex.pos[i+1] > offset })
	maxI = sort.Search(n, func(i int) bool { return ex.pos[i] >= end })
	maxI = max(maxI, minI)
	return minI, maxI
}

// At returns the item that contains the given position,
// and false if it is outside of all items.
func (ex *Extents) At(pos float32) (int, bool) {
	n := len(ex.sizes)
	if n == 0 || pos < 0 {
		return -1, false
	}
	ex.update()
	if pos >= ex.pos[n] {
		return -1, false
	}
	return sort.Search(n, func(i int) bool { return ex.pos[i+1] > pos }), true
}
