// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package script reads and writes dashboard event scripts.
//
// A script is a sequence of UI events, one per line. Words are split
// with shell quoting rules, so values containing spaces can be
// quoted. Blank lines and lines starting with '#' are ignored.
//
//	map all              select every row on the map
//	map none             lasso that selected nothing
//	map 5 9 12           lasso selecting UIDs 5, 9 and 12
//	years 1900 2000      move the year slider
//	color State -        set the primary and secondary color features
//	bar 1 "New South Wales"
//	                     click series 1 of the bar at x
//	parcat 3 4           click a parallel categories ribbon
//	clear                press the clear button
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/aclements/sharkfilter/crossfilter"
)

// A SyntaxError reports a malformed script line.
type SyntaxError struct {
	Line int
	Text string
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %q", e.Msg, e.Text)
	}
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Msg, e.Text)
}

// Parse parses the script in r.
func Parse(r io.Reader) ([]crossfilter.Event, error) {
	var events []crossfilter.Event
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		ev, err := ParseLine(scanner.Text())
		if err != nil {
			if se, ok := err.(*SyntaxError); ok {
				se.Line = lineno
			}
			return nil, err
		}
		if ev != nil {
			events = append(events, ev)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// ParseLine parses a single script line. It returns a nil Event for
// blank and comment lines.
func ParseLine(line string) (crossfilter.Event, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}
	f, err := shellquote.Split(trimmed)
	if err != nil {
		return nil, &SyntaxError{Text: line, Msg: err.Error()}
	}
	bad := func(msg string) (crossfilter.Event, error) {
		return nil, &SyntaxError{Text: line, Msg: msg}
	}

	args := f[1:]
	switch f[0] {
	case "map":
		if len(args) == 0 {
			return bad("map needs all, none or UIDs")
		}
		if len(args) == 1 && args[0] == "all" {
			return crossfilter.MapSelectionChanged{Selection: crossfilter.SelectAll()}, nil
		}
		if len(args) == 1 && args[0] == "none" {
			return crossfilter.MapSelectionChanged{Selection: crossfilter.SelectUIDs()}, nil
		}
		uids, ok := ints(args)
		if !ok {
			return bad("bad UID")
		}
		return crossfilter.MapSelectionChanged{Selection: crossfilter.SelectUIDs(uids...)}, nil

	case "years":
		ys, ok := ints(args)
		if !ok || len(ys) != 2 {
			return bad("years needs two years")
		}
		return crossfilter.YearRangeChanged{Lo: ys[0], Hi: ys[1]}, nil

	case "bar":
		if len(args) != 2 {
			return bad("bar needs a series index and an x value")
		}
		series, err := strconv.Atoi(args[0])
		if err != nil {
			return bad("bad series index")
		}
		return crossfilter.BarClicked{SeriesIndex: series, X: args[1]}, nil

	case "parcat":
		uids, ok := ints(args)
		if !ok {
			return bad("bad UID")
		}
		return crossfilter.ParcatClicked{UIDs: uids}, nil

	case "clear":
		if len(args) != 0 {
			return bad("clear takes no arguments")
		}
		return crossfilter.ClearClicked{}, nil

	case "color":
		if len(args) < 1 || len(args) > 2 {
			return bad("color needs a primary and optional secondary feature")
		}
		ev := crossfilter.ColorFeaturesChanged{Primary: crossfilter.FeatureOf(args[0])}
		if len(args) == 2 {
			ev.Secondary = crossfilter.FeatureOf(args[1])
		}
		return ev, nil
	}
	return bad("unknown event")
}

func ints(args []string) ([]int, bool) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}
