// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import (
	"path/filepath"

	"cogentcore.org/modelview/base/iox/jsonx"
	"cogentcore.org/modelview/base/iox/tomlx"
	"cogentcore.org/modelview/base/iox/yamlx"
)

// Settings are the layout settings of a view.
type Settings struct {

	// RowHeight is the default height of a row.
	RowHeight float32 `toml:"row_height" yaml:"row_height" json:"row_height"`

	// ColWidth is the default width of a table or tree column.
	ColWidth float32 `toml:"col_width" yaml:"col_width" json:"col_width"`

	// IndentWidth is the indent of each level of a tree.
	IndentWidth float32 `toml:"indent_width" yaml:"indent_width" json:"indent_width"`

	// FlowCellWidth is the width of each item in a flow view.
	FlowCellWidth float32 `toml:"flow_cell_width" yaml:"flow_cell_width" json:"flow_cell_width"`

	// FlowCellHeight is the default height of each line in a flow view.
	FlowCellHeight float32 `toml:"flow_cell_height" yaml:"flow_cell_height" json:"flow_cell_height"`

	// PageRows is the number of rows moved by page up and page down.
	// If it is 0, the number of visible rows is used.
	PageRows int `toml:"page_rows" yaml:"page_rows" json:"page_rows"`

	// ReleaseHidden is whether companions scrolled out of view are
	// released for reuse, instead of being kept up to date.
	ReleaseHidden bool `toml:"release_hidden" yaml:"release_hidden" json:"release_hidden"`

	// OpenDepth is the depth to which tree nodes start out expanded.
	OpenDepth int `toml:"open_depth" yaml:"open_depth" json:"open_depth"`
}

// Defaults sets the default values for all of the settings.
func (se *Settings) Defaults() {
	se.RowHeight = 20
	se.ColWidth = 120
	se.IndentWidth = 16
	se.FlowCellWidth = 80
	se.FlowCellHeight = 80
	se.PageRows = 0
	se.ReleaseHidden = true
	se.OpenDepth = 1
}

// OpenSettings opens the given settings from the given file.
// The settings are assumed to be in TOML unless they have a .json,
// .yaml or .yml file extension. Fields missing from the file
// keep their current values.
func OpenSettings(se *Settings, filename string) error {
	switch filepath.Ext(filename) {
	case ".json":
		return jsonx.Open(se, filename)
	case ".yaml", ".yml":
		return yamlx.Open(se, filename)
	}
	return tomlx.Open(se, filename)
}

// SaveSettings saves the given settings to the given file, in a format
// chosen by the file extension as in [OpenSettings].
func SaveSettings(se *Settings, filename string) error {
	switch filepath.Ext(filename) {
	case ".json":
		return jsonx.Save(se, filename)
	case ".yaml", ".yml":
		return yamlx.Save(se, filename)
	}
	return tomlx.Save(se, filename)
}
