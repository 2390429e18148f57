// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plan provides an efficient mechanism for updating a slice
// to contain a target list of elements, generating minimal edits to
// modify the current slice contents to match the target.
// The mechanism depends on unique comparable keys to determine
// whether an element is already present, so that existing elements
// are kept and moved rather than recreated.
package plan

import (
	"log/slog"
	"slices"

	"cogentcore.org/modelview/base/slicesx"
)

// Update ensures that the slice contains the elements of the plan,
// specified by unique keys, with n = total number of items in the
// target slice. key returns the target key at each position and keyOf
// the key of an existing element. If a new item is needed then new is
// called to create it, for given key at given index position.
// If destroy is non-nil, then it is called on any element
// that is being deleted from the slice.
// It returns the updated slice and whether any changes were made.
func Update[T any, K comparable](s []T, n int, key func(i int) K, keyOf func(e T) K, new func(k K, i int) T, destroy func(e T)) (r []T, mods bool) {
	keys := make([]K, n)
	nmap := make(map[K]int, n)
	smap := make(map[K]int, len(s))
	for i := 0; i < n; i++ {
		k := key(i)
		keys[i] = k
		if _, has := nmap[k]; has {
			slog.Error("plan.Update: duplicate key", "key", k)
		}
		nmap[k] = i
	}
	// first remove anything we don't want
	r = s
	for i := len(r) - 1; i >= 0; i-- {
		k := keyOf(r[i])
		if _, ok := nmap[k]; !ok {
			mods = true
			if destroy != nil {
				destroy(r[i])
			}
			r = slices.Delete(r, i, i+1)
			continue
		}
		smap[k] = i
	}
	// next add and move items as needed; in order so guaranteed
	for i, tk := range keys {
		ci := slicesx.Search(r, func(e T) bool { return keyOf(e) == tk }, smap[tk])
		if ci < 0 { // item not currently on the list
			mods = true
			r = slices.Insert(r, i, new(tk, i))
			continue
		}
		if ci != i {
			mods = true
			r = slicesx.Move(r, ci, i)
		}
	}
	return
}
