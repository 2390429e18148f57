// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtentsRange(t *testing.T) {
	var ex Extents
	assert.Equal(t, float32(0), ex.Total())
	mn, mx := ex.Range(0, 100)
	assert.Equal(t, 0, mn)
	assert.Equal(t, 0, mx)

	sizes := []float32{10, 20, 5, 40, 15, 10, 30}
	ex.Reset(len(sizes), 1)
	for i, s := range sizes {
		ex.Set(i, s)
	}
	assert.Equal(t, float32(130), ex.Total())

	for off := float32(-20); off <= 150; off += 2.5 {
		for _, ext := range []float32{1, 7, 25, 60, 200} {
			var want []int
			for i := range sizes {
				if ex.Start(i) < off+ext && ex.End(i) > off {
					want = append(want, i)
				}
			}
			mn, mx := ex.Range(off, ext)
			var got []int
			for i := mn; i < mx; i++ {
				got = append(got, i)
			}
			assert.Equal(t, want, got, "offset %g extent %g", off, ext)
		}
	}
}

func TestExtentsAt(t *testing.T) {
	var ex Extents
	ex.Reset(4, 10)
	i, ok := ex.At(0)
	assert.True(t, ok)
	assert.Equal(t, 0, i)
	i, ok = ex.At(25)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	i, ok = ex.At(30)
	assert.True(t, ok)
	assert.Equal(t, 3, i)
	_, ok = ex.At(40)
	assert.False(t, ok)
	_, ok = ex.At(-1)
	assert.False(t, ok)
}

func TestExtentsEdits(t *testing.T) {
	var ex Extents
	ex.Reset(3, 10)
	ex.Insert(1, 2, 5)
	require.Equal(t, 5, ex.Len())
	assert.Equal(t, float32(40), ex.Total())
	assert.Equal(t, float32(15), ex.Start(2))

	ex.Set(0, 20)
	assert.Equal(t, float32(30), ex.Start(2))

	ex.Move(0, 1, 5)
	assert.Equal(t, []float32{5, 5, 10, 10, 20}, ex.sizes)
	assert.Equal(t, float32(30), ex.Start(4))

	ex.Remove(0, 2)
	assert.Equal(t, float32(40), ex.Total())
	assert.Equal(t, float32(20), ex.End(1))

	ex.Resize(4, 1)
	assert.Equal(t, float32(41), ex.Total())
	ex.Resize(1, 1)
	assert.Equal(t, float32(10), ex.Total())
}
