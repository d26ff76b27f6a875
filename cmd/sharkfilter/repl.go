// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/aclements/sharkfilter/crossfilter"
	"github.com/aclements/sharkfilter/script"
)

const replHelp = `Events:
  map all | map none | map UID...
  years LO HI
  color PRIMARY [SECONDARY]
  bar SERIES X
  parcat UID...
  clear
Commands:
  show      print the derived table
  state     print the selection state
  help      print this message
  quit      exit
`

func newReplCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read events interactively and summarize each derived table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := g.session()
			if err != nil {
				return err
			}
			in := cmd.InOrStdin()
			return repl(in, cmd.OutOrStdout(), s, isTerminal(in))
		},
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok || os.Getenv("TERM") == "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return terminal.IsTerminal(int(f.Fd()))
}

// repl dispatches each event read from r and prints a summary of the
// new derived table to w. Malformed lines are reported and skipped.
func repl(r io.Reader, w io.Writer, s *crossfilter.Session, prompt bool) error {
	sc := bufio.NewScanner(r)
	summarize(w, s.Derived())
	for {
		if prompt {
			fmt.Fprint(w, "> ")
		}
		if !sc.Scan() {
			return sc.Err()
		}
		switch strings.TrimSpace(sc.Text()) {
		case "quit", "exit":
			return nil
		case "help", "?":
			fmt.Fprint(w, replHelp)
			continue
		case "show":
			if err := table.Fprint(w, s.Derived().Frame()); err != nil {
				return err
			}
			continue
		case "state":
			printState(w, s.State())
			continue
		}

		ev, err := script.ParseLine(sc.Text())
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		if ev == nil {
			continue
		}
		summarize(w, s.Dispatch(ev))
	}
}

func summarize(w io.Writer, d *crossfilter.Derived) {
	fmt.Fprintf(w, "%d rows (%d-%d), %d selected, %d highlighted\n",
		d.Len(), d.State().Years.Lo, d.State().Years.Hi, d.NumSelected(), d.NumHighlighted())
}

func printState(w io.Writer, st crossfilter.State) {
	fmt.Fprintf(w, "years %s\nmap %s\nlast %s\ncolor %s %s\n", st.Years, st.Map, st.Last, st.Primary, st.Secondary)
}
