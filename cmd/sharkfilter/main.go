// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sharkfilter replays dashboard events against a shark
// incident dataset and prints the resulting derived table or views.
//
// Usage:
//
//	sharkfilter -d incidents.csv publish [-o out] [--format json] [script]
//	sharkfilter -d incidents.csv view bar --x State --color Site.category [-s script]
//	sharkfilter -d incidents.csv repl
//
// A script holds one event per line; see package script for the
// syntax. A script of "-" is read from standard input.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/aclements/sharkfilter/config"
	"github.com/aclements/sharkfilter/crossfilter"
	"github.com/aclements/sharkfilter/incident"
	"github.com/aclements/sharkfilter/script"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "sharkfilter: %v\n", err)
		return 1
	}
	return 0
}

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	data     string
	config   string
	logLevel string
	log      *log.Logger
}

func newRootCmd() *cobra.Command {
	g := new(globals)
	root := &cobra.Command{
		Use:           "sharkfilter",
		Short:         "Cross-filter shark incident data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := log.ParseLevel(g.logLevel)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			g.log = &log.Logger{Handler: cli.New(cmd.ErrOrStderr()), Level: lvl}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&g.data, "data", "d", "", "incident `file` (.csv or .xlsx)")
	root.PersistentFlags().StringVarP(&g.config, "config", "c", "", "dashboard config `file` (YAML)")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "log `level` (debug, info, warn, error)")

	root.AddCommand(newPublishCmd(g), newViewCmd(g), newReplCmd(g))
	return root
}

// session loads the data and config named by g and starts a session
// in the configured initial state.
func (g *globals) session() (*crossfilter.Session, error) {
	if g.data == "" {
		return nil, fmt.Errorf("no data file; use --data")
	}
	cfg := config.Default()
	if g.config != "" {
		var err error
		if cfg, err = config.Load(g.config); err != nil {
			return nil, err
		}
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	base, err := incident.Open(g.data)
	if err != nil {
		return nil, err
	}
	g.log.WithFields(log.Fields{
		"file": g.data,
		"rows": base.Len(),
	}).Info("loaded incidents")
	return crossfilter.NewSession(base, cfg.State(crossfilter.InitialState(base)), opts, g.log), nil
}

// replay dispatches the events of the script at path, if any. A path
// of "-" reads the script from cmd's input.
func replay(cmd *cobra.Command, s *crossfilter.Session, path string) error {
	if path == "" {
		return nil
	}
	r := cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	events, err := script.Parse(r)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, ev := range events {
		s.Dispatch(ev)
	}
	return nil
}

// create opens path for writing, or returns cmd's output if path is
// empty. The returned close function must be called; it reports any
// error from writing the file.
func create(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	bw := bufio.NewWriter(f)
	closeFn := func() error {
		err := bw.Flush()
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		return nil
	}
	return bw, closeFn, nil
}

func checkFormat(format string) error {
	if format != "table" && format != "json" {
		return fmt.Errorf("unsupported format %q: use table or json", format)
	}
	return nil
}
