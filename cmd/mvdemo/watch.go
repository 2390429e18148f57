// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"path/filepath"

	"cogentcore.org/modelview/base/errors"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// watchSettings watches the given settings file, and calls send with a
// [settingsMsg] whenever it is written. The directory is watched rather
// than the file, so that editors that replace the file are seen.
func watchSettings(path string, send func(msg tea.Msg)) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		errors.Log(w.Close())
		return nil, err
	}
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				slog.Debug("settings file changed", "file", path, "op", ev.Op)
				send(settingsMsg{path: path})
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Error("watching settings", "err", err)
			}
		}
	}()
	return w, nil
}
