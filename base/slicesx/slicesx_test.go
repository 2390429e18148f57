// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slicesx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLength(t *testing.T) {
	var s []int
	s = SetLength(s, 3)
	assert.Equal(t, 3, len(s))

	s[2] = 2
	s = SetLength(s, 40)
	assert.Equal(t, 40, len(s))
	assert.Equal(t, 2, s[2])

	s = SetLength(s, 4)
	assert.Equal(t, 4, len(s))
	assert.Equal(t, 2, s[2])
}

func TestMove(t *testing.T) {
	s := []string{"a", "b", "c", "d"}
	s = Move(s, 0, 2)
	assert.Equal(t, []string{"b", "c", "a", "d"}, s)
	s = Move(s, 3, 0)
	assert.Equal(t, []string{"d", "b", "c", "a"}, s)
}

func TestInsertN(t *testing.T) {
	s := []string{"a", "b", "c"}
	s = InsertN(s, 1, 2, nil)
	assert.Equal(t, []string{"a", "", "", "b", "c"}, s)
	s = InsertN(s, 5, 1, func() string { return "z" })
	assert.Equal(t, []string{"a", "", "", "b", "c", "z"}, s)
	s = InsertN(s, 0, 0, nil)
	assert.Len(t, s, 6)
}

func TestMoveBlock(t *testing.T) {
	tests := []struct {
		src, n, dst int
		want        []int
	}{
		{0, 1, 3, []int{1, 2, 0, 3, 4}},
		{3, 2, 0, []int{3, 4, 0, 1, 2}},
		{1, 2, 5, []int{0, 3, 4, 1, 2}},
		{4, 1, 1, []int{0, 4, 1, 2, 3}},
		{1, 2, 1, []int{0, 1, 2, 3, 4}}, // dst == src
		{1, 2, 3, []int{0, 1, 2, 3, 4}}, // dst == src+n
		{1, 2, 2, []int{0, 1, 2, 3, 4}}, // inside
	}
	for _, tt := range tests {
		s := []int{0, 1, 2, 3, 4}
		MoveBlock(s, tt.src, tt.n, tt.dst)
		assert.Equal(t, tt.want, s, "src %d n %d dst %d", tt.src, tt.n, tt.dst)
		for i := 0; i < 5; i++ {
			assert.Equal(t, i, s[MovedIndex(i, tt.src, tt.n, tt.dst)], "moved index of %d", i)
		}
	}
}

func TestSearch(t *testing.T) {
	s := []int{5, 6, 7, 8, 9}
	assert.Equal(t, 3, Search(s, func(e int) bool { return e == 8 }))
	assert.Equal(t, 0, Search(s, func(e int) bool { return e == 5 }, 4))
	assert.Equal(t, 4, Search(s, func(e int) bool { return e == 9 }, 0))
	assert.Equal(t, -1, Search(s, func(e int) bool { return e == 1 }))
}
