// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSettings struct {
	RowHeight float32 `yaml:"row-height"`
	Name      string  `yaml:"name"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.yaml")
	s := &testSettings{RowHeight: 18, Name: "list"}
	require.NoError(t, Save(s, fn))

	o := &testSettings{}
	require.NoError(t, Open(o, fn))
	assert.Equal(t, s, o)
}

func TestReadBytes(t *testing.T) {
	s := &testSettings{}
	require.NoError(t, ReadBytes(s, []byte("row-height: 24\nname: tree\n")))
	assert.Equal(t, float32(24), s.RowHeight)
	assert.Equal(t, "tree", s.Name)
}
