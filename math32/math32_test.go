// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2(t *testing.T) {
	b := B2(0, 10, 100, 30)
	assert.Equal(t, Vec2(100, 20), b.Size())
	assert.True(t, b.ContainsPoint(Vec2(0, 10)))
	assert.False(t, b.ContainsPoint(Vec2(50, 30)))
	assert.False(t, b.IsEmpty())

	o := B2(50, 25, 150, 60)
	assert.True(t, b.Overlaps(o))
	assert.Equal(t, B2(50, 25, 100, 30), b.Intersect(o))

	// touching edges do not overlap
	assert.False(t, b.Overlaps(B2(0, 30, 100, 50)))

	assert.Equal(t, B2(5, 5, 105, 25), b.Translate(Vec2(5, -5)))
	assert.Equal(t, B2(1, 2, 4, 6), B2Size(Vec2(1, 2), Vec2(3, 4)))
}

func TestScalars(t *testing.T) {
	assert.Equal(t, float32(3), Max(3, -1))
	assert.Equal(t, float32(-1), Min(3, -1))
	assert.Equal(t, float32(2), Floor(2.7))
	assert.Equal(t, float32(10), Clamp(12, 0, 10))
}
