// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mvdemo is a terminal demo of the model and view packages.
// It shows a built-in model in a list, table, flow or tree view, and
// edits the model from the keyboard, so that every change reaches the
// view through the model notifications.
package main

import (
	"io"
	"os"

	"cogentcore.org/modelview/base/errors"
	"cogentcore.org/modelview/base/logx"
	"github.com/spf13/cobra"
)

// Config is the command line configuration of mvdemo.
type Config struct {

	// View is the kind of view to show: list, table, flow or tree.
	View string

	// Settings is an optional view settings file in TOML, YAML or JSON,
	// which is reloaded whenever it is written.
	Settings string

	// Rows is the number of rows of the model.
	Rows int

	// Log is an optional file to write the log to.
	Log string

	// Verbose, VeryVerbose and Quiet set the log level.
	Verbose, VeryVerbose, Quiet bool
}

func main() {
	cfg := &Config{}
	cmd := &cobra.Command{
		Use:   "mvdemo",
		Short: "browse and edit a model in a terminal view",
		Example: `
mvdemo --view tree
mvdemo --view table --rows 500 --settings view.toml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&cfg.View, "view", "list", "the view to show: list, table, flow or tree")
	fs.StringVar(&cfg.Settings, "settings", "", "a view settings file to load and watch")
	fs.IntVar(&cfg.Rows, "rows", 100, "the number of rows of the model")
	fs.StringVar(&cfg.Log, "log", "", "a file to write the log to")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log info messages")
	fs.BoolVar(&cfg.VeryVerbose, "vv", false, "log debug messages, including every model notification")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", false, "only log errors")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLog directs the default logger to the log file of the config,
// as the terminal is taken by the user interface. The returned file
// is nil if there is no log file.
func setupLog(cfg *Config) (*os.File, error) {
	logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
	if cfg.Log == "" {
		logx.SetDefaultLogger(io.Discard)
		return nil, nil
	}
	f, err := os.Create(cfg.Log)
	if err != nil {
		return nil, err
	}
	logx.SetDefaultLogger(f)
	return f, nil
}

func run(cfg *Config) error {
	lf, err := setupLog(cfg)
	if err != nil {
		return err
	}
	if lf != nil {
		defer func() { errors.Log(lf.Close()) }()
	}
	ap, err := newApp(cfg)
	if err != nil {
		return err
	}
	return ap.run()
}
