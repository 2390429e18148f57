// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	kl := New[string, int]()
	kl.Set("text", 1)
	kl.Set("icon", 2)
	assert.NoError(t, kl.Add("check", 3))
	assert.Error(t, kl.Add("icon", 4))
	assert.Equal(t, 3, kl.Len())
	assert.Equal(t, []string{"text", "icon", "check"}, kl.Keys)

	kl.Set("text", 10)
	assert.Equal(t, 10, kl.At("text"))
	assert.Equal(t, 0, kl.IndexByKey("text"))

	_, ok := kl.AtTry("missing")
	assert.False(t, ok)
	assert.Equal(t, -1, kl.IndexByKey("missing"))

	assert.True(t, kl.DeleteByKey("text"))
	assert.False(t, kl.DeleteByKey("text"))
	assert.Equal(t, []int{2, 3}, kl.Values)
	assert.Equal(t, 1, kl.IndexByKey("check"))

	var nl *List[string, int]
	assert.Equal(t, 0, nl.Len())
}
