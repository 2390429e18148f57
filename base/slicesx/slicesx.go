// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides additional slice functions
// beyond those in the standard [slices] package.
package slicesx

import "slices"

// SetLength sets the length of the given slice,
// re-using and preserving existing values to the extent possible.
func SetLength[E any](s []E, n int) []E {
	if len(s) == n {
		return s
	}
	if s == nil {
		return make([]E, n)
	}
	if cap(s) < n {
		s = slices.Grow(s, n-len(s))
	}
	s = s[:n]
	return s
}

// Move moves the element in the given slice at the given
// old position to the given new position and returns the
// resulting slice.
func Move[E any](s []E, from, to int) []E {
	temp := s[from]
	s = slices.Delete(s, from, from+1)
	s = slices.Insert(s, to, temp)
	return s
}

// InsertN inserts n new elements at the given index, calling the
// optional fill function to make each one; otherwise zero values
// are inserted. It returns the resulting slice.
func InsertN[E any](s []E, at, n int, fill func() E) []E {
	if n <= 0 {
		return s
	}
	ns := make([]E, n)
	if fill != nil {
		for i := range ns {
			ns[i] = fill()
		}
	}
	return slices.Insert(s, at, ns...)
}

// MoveBlock moves the n elements starting at src so that they are
// placed in front of the element that was at dst before the move.
// dst is thus a gap position in the original coordinates, in [0, len(s)].
// If dst is within [src, src+n] the slice is unchanged. The move
// is done in place by rotating the affected range.
func MoveBlock[E any](s []E, src, n, dst int) {
	switch {
	case n <= 0 || (dst >= src && dst <= src+n):
		return
	case dst < src:
		rotate(s[dst:src+n], src-dst)
	default:
		rotate(s[src:dst], n)
	}
}

// MovedIndex returns where the element at index i ends up after
// [MoveBlock] is called with the given src, n, and dst.
func MovedIndex(i, src, n, dst int) int {
	switch {
	case n <= 0 || (dst >= src && dst <= src+n):
		return i
	case i >= src && i < src+n:
		if dst < src {
			return dst + (i - src)
		}
		return dst - n + (i - src)
	case dst < src && i >= dst && i < src:
		return i + n
	case dst > src+n && i >= src+n && i < dst:
		return i - n
	}
	return i
}

// rotate rotates the slice left by k positions, so that
// the element at index k ends up at index 0.
func rotate[E any](s []E, k int) {
	if k <= 0 || k >= len(s) {
		return
	}
	slices.Reverse(s[:k])
	slices.Reverse(s[k:])
	slices.Reverse(s)
}

// Search returns the index of the item in the given slice that matches the target
// according to the given match function, using the given optional starting index
// to optimize the search by searching bidirectionally outward from given index.
// This is much faster when you have some idea about where the item might be.
// If no start index is given, it starts in the middle, which is a good default.
// It returns -1 if no item matching the match function is found.
func Search[E any](slice []E, match func(e E) bool, startIndex ...int) int {
	n := len(slice)
	if n == 0 {
		return -1
	}
	si := -1
	if len(startIndex) > 0 {
		si = startIndex[0]
	}
	if si < 0 {
		si = n / 2
	}
	if si == 0 {
		for idx, e := range slice {
			if match(e) {
				return idx
			}
		}
	} else {
		if si >= n {
			si = n - 1
		}
		ui := si + 1
		di := si
		upo := false
		for {
			if !upo && ui < n {
				if match(slice[ui]) {
					return ui
				}
				ui++
			} else {
				upo = true
			}
			if di >= 0 {
				if match(slice[di]) {
					return di
				}
				di--
			} else if upo {
				break
			}
		}
	}
	return -1
}
