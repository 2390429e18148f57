// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type keyObj struct {
	key int
}

func keys(s []*keyObj) []int {
	ks := make([]int, len(s))
	for i, e := range s {
		ks[i] = e.key
	}
	return ks
}

func update(s []*keyObj, target []int, made, destroyed *int) ([]*keyObj, bool) {
	return Update(s, len(target),
		func(i int) int { return target[i] },
		func(e *keyObj) int { return e.key },
		func(k, i int) *keyObj { *made++; return &keyObj{key: k} },
		func(e *keyObj) { *destroyed++ })
}

func TestUpdate(t *testing.T) {
	var s []*keyObj
	made, destroyed := 0, 0

	s, mods := update(s, []int{1, 2, 3}, &made, &destroyed)
	assert.True(t, mods)
	assert.Equal(t, []int{1, 2, 3}, keys(s))
	assert.Equal(t, 3, made)

	two := s[1]
	s, mods = update(s, []int{1, 4, 2, 3}, &made, &destroyed)
	assert.True(t, mods)
	assert.Equal(t, []int{1, 4, 2, 3}, keys(s))
	assert.Equal(t, 4, made)
	assert.Same(t, two, s[2])

	s, mods = update(s, []int{3, 1, 2}, &made, &destroyed)
	assert.True(t, mods)
	assert.Equal(t, []int{3, 1, 2}, keys(s))
	assert.Equal(t, 4, made)
	assert.Equal(t, 1, destroyed)
	assert.Same(t, two, s[2])

	s, mods = update(s, []int{3, 1, 2}, &made, &destroyed)
	assert.False(t, mods)
	assert.Len(t, s, 3)

	s, mods = update(s, nil, &made, &destroyed)
	assert.True(t, mods)
	assert.Empty(t, s)
	assert.Equal(t, 4, destroyed)
}
