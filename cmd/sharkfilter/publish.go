// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/aclements/go-gg/table"
	"github.com/spf13/cobra"
)

func newPublishCmd(g *globals) *cobra.Command {
	var (
		out    string
		format string
	)
	cmd := &cobra.Command{
		Use:   "publish [script]",
		Short: "Replay a script and print the derived table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			s, err := g.session()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if err := replay(cmd, s, args[0]); err != nil {
					return err
				}
			}

			w, closeOut, err := create(cmd, out)
			if err != nil {
				return err
			}
			d := s.Derived()
			if format == "json" {
				err = json.NewEncoder(w).Encode(d)
			} else {
				err = table.Fprint(w, d.Frame())
			}
			if cerr := closeOut(); err == nil {
				err = cerr
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write output to `file` (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "table", "output format (table, json)")
	return cmd
}
